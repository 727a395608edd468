// Package cypherlite is an embeddable interpreter for a subset of the Cypher
// graph query language, executed against an in-memory property graph.
//
// It supports MATCH/WHERE/RETURN queries with COUNT and SUM aggregation,
// letting an application query semi-structured data as a graph without
// running an external graph database.
//
// # Usage
//
//	g := cypherlite.NewGraph()
//	g.AddNode(cypherlite.Node{ID: "1", Label: "User", Props: map[string]any{"name": "Alice"}})
//	g.AddNode(cypherlite.Node{ID: "2", Label: "User", Props: map[string]any{"name": "Bob"}})
//	g.AddEdge(cypherlite.Edge{From: 0, To: 1, Type: "knows"})
//
//	res, err := cypherlite.Execute(`MATCH (a)-[:knows]->(b) RETURN a.name, b.name`, g)
//
// Graphs can also be built from JSON documents via LoadGraph and a
// GraphConfig, or with automatic schema detection through the Engine facade
// (see FromJSONAuto and the analysis package).
//
// # Query language surface
//
//	MATCH <pattern> [, <pattern>]*
//	[WHERE <bool-expr>]
//	RETURN <item> [AS alias] [, <item> [AS alias]]*
//
// Keywords are case-insensitive; identifiers are case-sensitive. Patterns are
// linear chains of node patterns like (v:Label) connected by relationship
// patterns -[r:type]->, <-[r:type]- or -[r:type]-.
//
// Comparison operators coerce both sides to strings and compare
// lexicographically; numeric-looking values are NOT compared numerically.
package cypherlite
