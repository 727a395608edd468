package cypherlite

// EntityKind distinguishes what a pattern variable is bound to.
type EntityKind int

const (
	EntityNode EntityKind = iota
	EntityRelationship
)

// EntityID identifies a matched graph entity. Nodes are identified by index;
// relationships by their endpoints and type.
type EntityID struct {
	Kind    EntityKind
	Node    int
	From    int
	To      int
	RelType string
}

// Bindings maps pattern variables to the entities they matched.
type Bindings map[string]EntityID

func (b Bindings) clone() Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// matchClause evaluates every pattern of a MATCH clause, folding each part
// into the accumulated binding list. The seed is a single empty binding so
// that the first pattern alone produces its cartesian expansion.
func matchClause(g *Graph, m *MatchClause) []Bindings {
	bindings := []Bindings{{}}
	for _, part := range m.Patterns {
		bindings = matchPart(g, part, bindings)
	}
	return bindings
}

func matchPart(g *Graph, part *PatternPart, in []Bindings) []Bindings {
	out := matchNode(g, part.Node, in)
	lastVar := part.Node.Variable
	for _, chain := range part.Chain {
		if lastVar == "" {
			// Traversal needs a variable on an earlier node to anchor on.
			continue
		}
		out = matchChain(g, chain, lastVar, out)
		// An anonymous chain node keeps the previous anchor, so the next
		// hop starts from the last named node.
		if chain.Node.Variable != "" {
			lastVar = chain.Node.Variable
		}
	}
	return out
}

// matchNode expands or filters bindings against a node pattern. A variable
// already bound is checked in place; an unbound or anonymous pattern fans
// out over every matching node.
func matchNode(g *Graph, p *NodePattern, in []Bindings) []Bindings {
	var out []Bindings
	for _, b := range in {
		if p.Variable != "" {
			if ent, ok := b[p.Variable]; ok {
				if ent.Kind == EntityNode && labelMatches(g.Node(ent.Node), p.Labels) {
					out = append(out, b)
				}
				continue
			}
		}
		for idx := range g.nodes {
			if !labelMatches(&g.nodes[idx], p.Labels) {
				continue
			}
			nb := b.clone()
			if p.Variable != "" {
				nb[p.Variable] = EntityID{Kind: EntityNode, Node: idx}
			}
			out = append(out, nb)
		}
	}
	return out
}

// labelMatches reports whether a node satisfies a label list. An empty list
// matches anything; otherwise any one of the alternatives must equal the
// node's label.
func labelMatches(n *Node, labels []string) bool {
	if len(labels) == 0 {
		return true
	}
	for _, l := range labels {
		if n.Label == l {
			return true
		}
	}
	return false
}

type hop struct {
	edge     Edge
	neighbor int
}

// matchChain traverses one relationship hop from the node bound to lastVar.
// Bindings whose start variable is missing or not a node are dropped.
func matchChain(g *Graph, chain *PatternChain, lastVar string, in []Bindings) []Bindings {
	dir := chain.Rel.Direction()
	relType := chain.Rel.FirstType()
	relVar := chain.Rel.Variable()
	endVar := chain.Node.Variable

	outgoing := make(map[int][]int)
	incoming := make(map[int][]int)
	for i, e := range g.edges {
		outgoing[e.From] = append(outgoing[e.From], i)
		incoming[e.To] = append(incoming[e.To], i)
	}

	var out []Bindings
	for _, b := range in {
		start, ok := b[lastVar]
		if !ok || start.Kind != EntityNode {
			continue
		}

		var hops []hop
		if dir == DirectionRight || dir == DirectionBoth {
			for _, ei := range outgoing[start.Node] {
				hops = append(hops, hop{g.edges[ei], g.edges[ei].To})
			}
		}
		if dir == DirectionLeft || dir == DirectionBoth {
			for _, ei := range incoming[start.Node] {
				hops = append(hops, hop{g.edges[ei], g.edges[ei].From})
			}
		}

		for _, h := range hops {
			if relType != "" && h.edge.Type != relType {
				continue
			}
			if !labelMatches(g.Node(h.neighbor), chain.Node.Labels) {
				continue
			}
			if endVar != "" {
				if bound, bok := b[endVar]; bok {
					if bound.Kind != EntityNode || bound.Node != h.neighbor {
						continue
					}
					nb := b.clone()
					if relVar != "" {
						nb[relVar] = relationshipEntity(h.edge)
					}
					out = append(out, nb)
					continue
				}
			}
			nb := b.clone()
			if endVar != "" {
				nb[endVar] = EntityID{Kind: EntityNode, Node: h.neighbor}
			}
			if relVar != "" {
				nb[relVar] = relationshipEntity(h.edge)
			}
			out = append(out, nb)
		}
	}
	return out
}

func relationshipEntity(e Edge) EntityID {
	return EntityID{Kind: EntityRelationship, From: e.From, To: e.To, RelType: e.Type}
}
