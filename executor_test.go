package cypherlite_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/cypherlite"
)

func mustExecute(t *testing.T, query string, g *cypherlite.Graph) *cypherlite.Result {
	t.Helper()

	res, err := cypherlite.Execute(query, g)
	require.NoError(t, err, "query %q", query)
	return res
}

func TestExecute_CountAllNodes(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (n) RETURN COUNT(*)", g)

	require.Equal(t, []string{"COUNT(*)"}, res.Columns)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, int64(3), res.Rows[0]["COUNT(*)"])
}

func TestExecute_CountByLabel(t *testing.T) {
	t.Parallel()

	g := socialGraph()

	res := mustExecute(t, "MATCH (n:user) RETURN COUNT(n) AS total", g)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, int64(2), res.Rows[0]["total"])

	res = mustExecute(t, "MATCH (n:admin) RETURN COUNT(n) AS total", g)
	assert.Equal(t, int64(1), res.Rows[0]["total"])

	res = mustExecute(t, "MATCH (n:ghost) RETURN COUNT(n) AS total", g)
	assert.Equal(t, int64(0), res.Rows[0]["total"])
}

func TestExecute_LabelAlternatives(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (n:admin|user) RETURN COUNT(*) AS total", g)
	assert.Equal(t, int64(3), res.Rows[0]["total"])
}

func TestExecute_ReturnProperties(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (n:user) RETURN n.name, n.age", g)

	want := []cypherlite.Row{
		{"n.name": "Bob Smith", "n.age": int64(25)},
		{"n.name": "Charlie Jones", "n.age": int64(35)},
	}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_BareVariableReturnsID(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (n:admin) RETURN n", g)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, int64(1), res.Rows[0]["n"])
}

func TestExecute_MissingPropertyIsNull(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (n:admin) RETURN n.nickname", g)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "null", res.Rows[0]["n.nickname"])
}

func TestExecute_RelationshipTraversal(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (a)-[:knows]->(b) RETURN a.name, b.name", g)

	want := []cypherlite.Row{
		{"a.name": "Alice Smith", "b.name": "Bob Smith"},
		{"a.name": "Bob Smith", "b.name": "Charlie Jones"},
	}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_ReverseTraversal(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (a)<-[:knows]-(b) RETURN a.name, b.name", g)

	want := []cypherlite.Row{
		{"a.name": "Bob Smith", "b.name": "Alice Smith"},
		{"a.name": "Charlie Jones", "b.name": "Bob Smith"},
	}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_UndirectedTraversal(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (a:user)-[:knows]-(b) RETURN a.name, b.name", g)

	// Bob has an outgoing edge to Charlie and an incoming one from Alice;
	// Charlie only the incoming one from Bob.
	want := []cypherlite.Row{
		{"a.name": "Bob Smith", "b.name": "Charlie Jones"},
		{"a.name": "Bob Smith", "b.name": "Alice Smith"},
		{"a.name": "Charlie Jones", "b.name": "Bob Smith"},
	}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_TypeFilter(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	g.Connect("1", "3", "blocks")

	res := mustExecute(t, "MATCH (a)-[:blocks]->(b) RETURN a.name, b.name", g)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Alice Smith", res.Rows[0]["a.name"])
	assert.Equal(t, "Charlie Jones", res.Rows[0]["b.name"])

	// Untyped pattern matches every edge.
	res = mustExecute(t, "MATCH (a)-->(b) RETURN a.name", g)
	assert.Len(t, res.Rows, 3)
}

func TestExecute_FirstTypeAlternativeWins(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	g.Connect("1", "3", "blocks")

	// Only the first alternative is matched; blocks edges do not appear.
	res := mustExecute(t, "MATCH (a)-[:knows|blocks]->(b) RETURN a.name", g)
	assert.Len(t, res.Rows, 2)
}

func TestExecute_RelationshipBinding(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (a:admin)-[r:knows]->(b) RETURN r.type, r", g)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "knows", res.Rows[0]["r.type"])
	assert.Equal(t, "knows", res.Rows[0]["r"])
}

func TestExecute_ChainTraversal(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (a)-[:knows]->(b)-[:knows]->(c) RETURN a.name, c.name", g)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Alice Smith", res.Rows[0]["a.name"])
	assert.Equal(t, "Charlie Jones", res.Rows[0]["c.name"])
}

func TestExecute_RevisitedVariableJoins(t *testing.T) {
	t.Parallel()

	g := socialGraph()

	// The second pattern narrows b to :user nodes already reached by the
	// first pattern.
	res := mustExecute(t, "MATCH (a)-[:knows]->(b), (b:user) RETURN a.name, b.name", g)
	assert.Len(t, res.Rows, 2)

	res = mustExecute(t, "MATCH (a)-[:knows]->(b), (b:admin) RETURN a.name", g)
	assert.Len(t, res.Rows, 0)
}

func TestExecute_MultiplePatternsCartesian(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (a:admin), (b:user) RETURN a.name, b.name", g)
	assert.Len(t, res.Rows, 2)
}

func TestExecute_AnonymousEndNode(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (a)-[:knows]->() RETURN a.name", g)

	want := []cypherlite.Row{
		{"a.name": "Alice Smith"},
		{"a.name": "Bob Smith"},
	}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_AnonymousStartSkipsTraversal(t *testing.T) {
	t.Parallel()

	// Without a variable on the start node there is nothing to anchor the
	// hop on, so the chain is skipped and the pattern degenerates to the
	// node match alone.
	g := socialGraph()
	res := mustExecute(t, "MATCH ()-[:knows]->(b) RETURN b", g)

	require.Len(t, res.Rows, 3)
	assert.Equal(t, "null", res.Rows[0]["b"])
}

func TestExecute_AnonymousMiddleNodeKeepsAnchor(t *testing.T) {
	t.Parallel()

	// An anonymous middle node leaves the anchor on the last named node,
	// so both hops start from a.
	g := socialGraph()
	res := mustExecute(t, "MATCH (a)-[:knows]->()-[:knows]->(c) RETURN a.name, c.name", g)

	want := []cypherlite.Row{
		{"a.name": "Alice Smith", "c.name": "Bob Smith"},
		{"a.name": "Bob Smith", "c.name": "Charlie Jones"},
	}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_HopRangeSingleHopOnly(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (a)-[:knows*1..3]->(b) RETURN a.name, b.name", g)

	// Ranges parse but traversal stays single-hop.
	assert.Len(t, res.Rows, 2)
}

func TestExecute_Where(t *testing.T) {
	t.Parallel()

	g := socialGraph()

	tests := []struct {
		name  string
		query string
		rows  int
	}{
		{"equality", `MATCH (n) WHERE n.name = "Bob Smith" RETURN n`, 1},
		{"inequality", `MATCH (n) WHERE n.name <> "Bob Smith" RETURN n`, 2},
		{"contains", `MATCH (n) WHERE n.name CONTAINS "Smith" RETURN n`, 2},
		{"contains no match", `MATCH (n) WHERE n.name CONTAINS "Brown" RETURN n`, 0},
		{"greater", `MATCH (n) WHERE n.age > "30" RETURN n`, 1},
		{"greater equal", `MATCH (n) WHERE n.age >= "30" RETURN n`, 2},
		{"int literal", "MATCH (n) WHERE n.age = 25 RETURN n", 1},
		{"property vs property", "MATCH (a)-[:knows]->(b) WHERE a.age > b.age RETURN a", 1},
		{"truthiness present", "MATCH (n) WHERE n.name RETURN n", 3},
		{"truthiness missing", "MATCH (n) WHERE n.nickname RETURN n", 0},
		{"and both hold", `MATCH (n) WHERE n.age > "20" AND n.name CONTAINS "Smith" RETURN n`, 2},
		{"and one fails", `MATCH (n) WHERE n.age > "20" AND n.name = "Bob Smith" RETURN n`, 1},
		{"and none hold", `MATCH (n) WHERE n.nickname AND n.name RETURN n`, 0},
		{"or either holds", `MATCH (n) WHERE n.name = "Bob Smith" OR n.name = "Charlie Jones" RETURN n`, 2},
		{"or neither holds", `MATCH (n) WHERE n.name = "x" OR n.name = "y" RETURN n`, 0},
		{"and binds tighter than or", `MATCH (n) WHERE n.name = "Alice Smith" OR n.age = "25" AND n.name CONTAINS "Jones" RETURN n`, 1},
		{"three way or", `MATCH (n) WHERE n.age = 30 OR n.age = 25 OR n.age = 35 RETURN n`, 3},
		{"chained and", `MATCH (n) WHERE n.age > "20" AND n.age < "34" AND n.name CONTAINS "Smith" RETURN n`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := mustExecute(t, tt.query, g)
			assert.Len(t, res.Rows, tt.rows)
		})
	}
}

func TestExecute_WhereIsLexicographic(t *testing.T) {
	t.Parallel()

	g := cypherlite.NewGraph()
	g.AddNode(cypherlite.Node{ID: "a", Props: map[string]any{"v": 10}})
	g.AddNode(cypherlite.Node{ID: "b", Props: map[string]any{"v": 9}})

	// "10" < "9" as strings, so the comparison is not numeric.
	res := mustExecute(t, `MATCH (n) WHERE n.v < "9" RETURN n`, g)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "a", res.Rows[0]["n"])
}

func TestExecute_Sum(t *testing.T) {
	t.Parallel()

	g := socialGraph()

	res := mustExecute(t, "MATCH (n) RETURN SUM(n.age) AS total", g)
	assert.Equal(t, int64(90), res.Rows[0]["total"])

	res = mustExecute(t, "MATCH (n:user) RETURN SUM(n.age) AS total", g)
	assert.Equal(t, int64(60), res.Rows[0]["total"])
}

func TestExecute_SumSkipsMissingAndNonInteger(t *testing.T) {
	t.Parallel()

	g := cypherlite.NewGraph()
	g.AddNode(cypherlite.Node{ID: "1", Props: map[string]any{"age": 30}})
	g.AddNode(cypherlite.Node{ID: "2", Props: map[string]any{"age": "thirty"}})
	g.AddNode(cypherlite.Node{ID: "3", Props: map[string]any{}})
	g.AddNode(cypherlite.Node{ID: "4", Props: map[string]any{"age": 12.5}})
	g.AddNode(cypherlite.Node{ID: "5", Props: map[string]any{"age": 5.0}})

	res := mustExecute(t, "MATCH (n) RETURN SUM(n.age) AS total", g)
	assert.Equal(t, int64(35), res.Rows[0]["total"])
}

func TestExecute_MultipleAggregates(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (n) RETURN COUNT(*) AS c, SUM(n.age) AS s", g)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, int64(3), res.Rows[0]["c"])
	assert.Equal(t, int64(90), res.Rows[0]["s"])
}

func TestExecute_AggregateAfterWhere(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, `MATCH (n) WHERE n.name CONTAINS "Smith" RETURN COUNT(*) AS c`, g)
	assert.Equal(t, int64(2), res.Rows[0]["c"])
}

func TestExecute_MixedReturnFails(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	_, err := cypherlite.Execute("MATCH (n) RETURN n.name, COUNT(*)", g)
	require.Error(t, err)
	assert.ErrorIs(t, err, cypherlite.ErrMixedReturn)

	var eerr *cypherlite.ExecError
	assert.ErrorAs(t, err, &eerr)
}

func TestRun_UnimplementedAggregates(t *testing.T) {
	t.Parallel()

	// AVG/MIN/MAX never get past Parse, but the evaluator keeps them as
	// extension points for hand-built queries.
	g := socialGraph()
	for _, fn := range []string{"AVG", "MIN", "MAX"} {
		q := &cypherlite.Query{
			Match: &cypherlite.MatchClause{
				Patterns: []*cypherlite.PatternPart{{
					Node: &cypherlite.NodePattern{Variable: "n"},
				}},
			},
			Return: &cypherlite.ReturnClause{
				Items: []*cypherlite.ReturnItem{{
					Aggregate: &cypherlite.AggregateCall{
						Func: fn,
						Arg:  &cypherlite.PropertyRef{Variable: "n", Property: "age"},
					},
				}},
			},
		}

		_, err := cypherlite.Run(q, g)
		require.Error(t, err, fn)
		assert.ErrorIs(t, err, cypherlite.ErrNotImplemented, fn)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	query := `MATCH (a)-[:knows]->(b) WHERE b.name CONTAINS "Smith" RETURN a.name, b.name`

	first := mustExecute(t, query, g)
	second := mustExecute(t, query, g)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ between runs (-first +second):\n%s", diff)
	}
}

func TestExecute_EmptyGraph(t *testing.T) {
	t.Parallel()

	g := cypherlite.NewGraph()

	res := mustExecute(t, "MATCH (n) RETURN n", g)
	assert.Len(t, res.Rows, 0)

	res = mustExecute(t, "MATCH (n) RETURN COUNT(*)", g)
	assert.Equal(t, int64(0), res.Rows[0]["COUNT(*)"])
}

func TestRun_ReusesParsedQuery(t *testing.T) {
	t.Parallel()

	q, err := cypherlite.Parse("MATCH (n) RETURN COUNT(*) AS c")
	require.NoError(t, err)

	small := cypherlite.NewGraph()
	small.AddNode(cypherlite.Node{ID: "x"})

	res1, err := cypherlite.Run(q, socialGraph())
	require.NoError(t, err)
	res2, err := cypherlite.Run(q, small)
	require.NoError(t, err)

	assert.Equal(t, int64(3), res1.Rows[0]["c"])
	assert.Equal(t, int64(1), res2.Rows[0]["c"])
}

func TestResult_SingleValue(t *testing.T) {
	t.Parallel()

	g := socialGraph()

	res := mustExecute(t, "MATCH (n) RETURN COUNT(*)", g)
	v, err := res.SingleValue()
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	empty := mustExecute(t, "MATCH (n:ghost) RETURN n", g)
	_, err = empty.SingleValue()
	assert.Error(t, err)
}

func TestResult_Records(t *testing.T) {
	t.Parallel()

	g := socialGraph()
	res := mustExecute(t, "MATCH (n:user) RETURN n.name", g)

	records := res.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Bob Smith", records[0]["n.name"])
}
