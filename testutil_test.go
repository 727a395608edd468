package cypherlite_test

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rlch/cypherlite"
)

// cmpIgnorePos ignores lexer positions so tests compare AST structure
// without pinning exact source offsets.
var cmpIgnorePos = cmp.Options{
	cmpopts.IgnoreTypes(lexer.Position{}),
}

// ptr returns a pointer to the given value.
func ptr[T any](v T) *T {
	return &v
}

// socialGraph builds the fixture most tests run against:
//
//	(1 Alice Smith, admin, 30) -knows-> (2 Bob Smith, user, 25) -knows-> (3 Charlie Jones, user, 35)
func socialGraph() *cypherlite.Graph {
	g := cypherlite.NewGraph()
	g.AddNode(cypherlite.Node{ID: "1", Label: "admin", Props: map[string]any{
		"id": "1", "name": "Alice Smith", "age": 30,
	}})
	g.AddNode(cypherlite.Node{ID: "2", Label: "user", Props: map[string]any{
		"id": "2", "name": "Bob Smith", "age": 25,
	}})
	g.AddNode(cypherlite.Node{ID: "3", Label: "user", Props: map[string]any{
		"id": "3", "name": "Charlie Jones", "age": 35,
	}})
	g.Connect("1", "2", "knows")
	g.Connect("2", "3", "knows")
	return g
}
