package cypherlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/cypherlite"
)

func TestGraph_AddAndLookup(t *testing.T) {
	t.Parallel()

	g := cypherlite.NewGraph()
	i := g.AddNode(cypherlite.Node{ID: "a", Label: "User"})
	j := g.AddNode(cypherlite.Node{ID: "b"})

	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
	assert.Equal(t, 2, g.NodeCount())

	idx, ok := g.NodeIndex("b")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "User", g.Node(0).Label)

	_, ok = g.NodeIndex("missing")
	assert.False(t, ok)
}

func TestGraph_DuplicateIDKeepsFirst(t *testing.T) {
	t.Parallel()

	g := cypherlite.NewGraph()
	g.AddNode(cypherlite.Node{ID: "a", Label: "first"})
	g.AddNode(cypherlite.Node{ID: "a", Label: "second"})

	idx, ok := g.NodeIndex("a")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 2, g.NodeCount())
}

func TestGraph_Connect(t *testing.T) {
	t.Parallel()

	g := cypherlite.NewGraph()
	g.AddNode(cypherlite.Node{ID: "a"})
	g.AddNode(cypherlite.Node{ID: "b"})

	assert.True(t, g.Connect("a", "b", "knows"))
	assert.False(t, g.Connect("a", "ghost", "knows"))
	assert.False(t, g.Connect("ghost", "b", "knows"))

	require.Equal(t, 1, g.EdgeCount())
	e := g.Edges()[0]
	assert.Equal(t, cypherlite.Edge{From: 0, To: 1, Type: "knows"}, e)
}
