package cypherlite

// Node is a labeled vertex with arbitrary JSON-like properties.
type Node struct {
	ID    string
	Label string
	Props map[string]any
}

// Edge is a typed, directed relationship between two nodes, referenced by
// their indices in the owning graph.
type Edge struct {
	From int
	To   int
	Type string
}

// Graph is an in-memory property graph. Nodes and edges keep their insertion
// order, which makes query results deterministic.
//
// A Graph is not safe for concurrent mutation. Once fully built it may be
// queried from any number of goroutines.
type Graph struct {
	nodes []Node
	edges []Edge
	byID  map[string]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{byID: map[string]int{}}
}

// AddNode appends a node and returns its index. A node with a duplicate ID
// is still appended; lookups by ID resolve to the first occurrence.
func (g *Graph) AddNode(n Node) int {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)
	if _, ok := g.byID[n.ID]; !ok {
		g.byID[n.ID] = idx
	}
	return idx
}

// AddEdge appends an edge between two node indices.
func (g *Graph) AddEdge(e Edge) {
	g.edges = append(g.edges, e)
}

// Connect adds an edge between two nodes referenced by ID. It reports
// whether both endpoints exist; nothing is added otherwise.
func (g *Graph) Connect(fromID, toID, relType string) bool {
	from, okFrom := g.byID[fromID]
	to, okTo := g.byID[toID]
	if !okFrom || !okTo {
		return false
	}
	g.AddEdge(Edge{From: from, To: to, Type: relType})
	return true
}

// NodeIndex returns the index of the node with the given ID.
func (g *Graph) NodeIndex(id string) (int, bool) {
	idx, ok := g.byID[id]
	return idx, ok
}

// Node returns the node at idx. The pointer stays valid until the next
// AddNode.
func (g *Graph) Node(idx int) *Node {
	return &g.nodes[idx]
}

// Nodes returns the backing node slice in insertion order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the backing edge slice in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
