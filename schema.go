package cypherlite

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// defaultLabel groups nodes that carry no label.
const defaultLabel = "Node"

// Schema summarizes the shape of a graph: labels with node counts, property
// types sampled per label, and relationship types with their endpoint
// labels.
type Schema struct {
	NodeCounts    map[string]int
	Properties    map[string]map[string]string
	Relationships map[string]RelEndpoints
}

// RelEndpoints lists which labels a relationship type connects.
type RelEndpoints struct {
	FromLabels []string
	ToLabels   []string
}

// GraphSchema inspects a graph. Property types are sampled from the first
// node of each label.
func GraphSchema(g *Graph) *Schema {
	s := &Schema{
		NodeCounts:    map[string]int{},
		Properties:    map[string]map[string]string{},
		Relationships: map[string]RelEndpoints{},
	}

	for i := range g.nodes {
		n := &g.nodes[i]
		label := n.Label
		if label == "" {
			label = defaultLabel
		}
		s.NodeCounts[label]++
		if _, ok := s.Properties[label]; !ok {
			props := map[string]string{}
			for k, v := range n.Props {
				props[k] = jsonTypeName(v)
			}
			s.Properties[label] = props
		}
	}

	type endpointSets struct{ from, to map[string]bool }
	rels := map[string]endpointSets{}
	for _, e := range g.edges {
		sets, ok := rels[e.Type]
		if !ok {
			sets = endpointSets{from: map[string]bool{}, to: map[string]bool{}}
			rels[e.Type] = sets
		}
		sets.from[nodeLabel(g.Node(e.From))] = true
		sets.to[nodeLabel(g.Node(e.To))] = true
	}
	for relType, sets := range rels {
		s.Relationships[relType] = RelEndpoints{
			FromLabels: sortedKeys(sets.from),
			ToLabels:   sortedKeys(sets.to),
		}
	}

	return s
}

func nodeLabel(n *Node) string {
	if n.Label == "" {
		return defaultLabel
	}
	return n.Label
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case string:
		return "STRING"
	case json.Number, float64, int, int64:
		return "NUMBER"
	case bool:
		return "BOOLEAN"
	case []any:
		return "ARRAY"
	case map[string]any:
		return "OBJECT"
	case nil:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the schema as a human-readable report.
func (s *Schema) String() string {
	var b strings.Builder
	b.WriteString("Graph Schema\n")
	b.WriteString("============\n\n")

	if len(s.NodeCounts) == 0 {
		b.WriteString("No nodes in graph\n")
		return b.String()
	}

	labels := make([]string, 0, len(s.NodeCounts))
	for l := range s.NodeCounts {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	b.WriteString("Node Types:\n")
	for _, l := range labels {
		fmt.Fprintf(&b, "  (:%s %d nodes)\n", l, s.NodeCounts[l])
	}
	b.WriteString("\n")

	b.WriteString("Properties:\n")
	for _, l := range labels {
		props := s.Properties[l]
		if len(props) == 0 {
			continue
		}
		names := make([]string, 0, len(props))
		for k := range props {
			names = append(names, k)
		}
		sort.Strings(names)
		pairs := make([]string, len(names))
		for i, k := range names {
			pairs[i] = k + ": " + props[k]
		}
		fmt.Fprintf(&b, "  :%s {%s}\n", l, strings.Join(pairs, ", "))
	}
	b.WriteString("\n")

	if len(s.Relationships) > 0 {
		b.WriteString("Relationship Types:\n")
		relTypes := make([]string, 0, len(s.Relationships))
		for t := range s.Relationships {
			relTypes = append(relTypes, t)
		}
		sort.Strings(relTypes)
		for _, t := range relTypes {
			ep := s.Relationships[t]
			fmt.Fprintf(&b, "  (:%s)-[:%s]->(:%s)\n",
				strings.Join(ep.FromLabels, "|"), t, strings.Join(ep.ToLabels, "|"))
		}
	}

	return b.String()
}
