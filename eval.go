package cypherlite

import (
	"encoding/json"
	"strconv"
	"strings"
)

// missing is the sentinel value for absent properties and unbound variables.
// Comparisons and truthiness treat it as false-y but it still compares
// lexicographically like any other string.
const missing = "null"

// resolveRef resolves a property reference against a binding to its string
// form. A node without a property access resolves to its ID; a relationship
// resolves only its "type" pseudo-property.
func resolveRef(g *Graph, b Bindings, ref *PropertyRef) string {
	ent, ok := b[ref.Variable]
	if !ok {
		return missing
	}
	switch ent.Kind {
	case EntityNode:
		n := g.Node(ent.Node)
		if ref.Property == "" {
			return n.ID
		}
		v, vok := PropertyString(n.Props[ref.Property])
		if !vok {
			return missing
		}
		return v
	case EntityRelationship:
		if ref.Property == "" || ref.Property == "type" {
			return ent.RelType
		}
		return missing
	}
	return missing
}

// PropertyString coerces a property value to its string form. It reports
// false for nil and for types that have no sensible string rendering.
func PropertyString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// PropertyInt coerces a property value to an integer. Floats qualify only
// when whole.
func PropertyInt(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		i, err := t.Int64()
		return i, err == nil
	case int:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		if t == float64(int64(t)) {
			return int64(t), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// operandValue resolves an operand to the string all comparisons work on.
func operandValue(g *Graph, b Bindings, op *Operand) string {
	switch {
	case op.String != nil:
		return unquote(*op.String)
	case op.Int != nil:
		return *op.Int
	case op.Ref != nil:
		return resolveRef(g, b, op.Ref)
	}
	return missing
}

// truthy reports whether a resolved value counts as true: anything except
// the empty string and the missing sentinel.
func truthy(v string) bool {
	return v != "" && v != missing
}

// evalOr is true when any OR operand holds.
func evalOr(g *Graph, b Bindings, e *OrExpr) bool {
	if evalAnd(g, b, e.Left) {
		return true
	}
	for _, term := range e.Right {
		if evalAnd(g, b, term.Expr) {
			return true
		}
	}
	return false
}

// evalAnd is true when every AND operand holds.
func evalAnd(g *Graph, b Bindings, e *AndExpr) bool {
	if !evalCondition(g, b, e.Left) {
		return false
	}
	for _, term := range e.Right {
		if !evalCondition(g, b, term.Expr) {
			return false
		}
	}
	return true
}

// evalCondition evaluates a single comparison against one binding. All
// operators compare strings; ordering is lexicographic even for values that
// look numeric, so "10" sorts before "9".
func evalCondition(g *Graph, b Bindings, c *Condition) bool {
	left := operandValue(g, b, c.Left)
	if c.Op == "" {
		return truthy(left)
	}
	right := operandValue(g, b, c.Right)
	switch strings.ToUpper(c.Op) {
	case "=":
		return left == right
	case "<>":
		return left != right
	case "<":
		return left < right
	case ">":
		return left > right
	case "<=":
		return left <= right
	case ">=":
		return left >= right
	case "CONTAINS":
		return strings.Contains(left, right)
	default:
		return false
	}
}

// filterBindings applies a WHERE clause, keeping the bindings the condition
// holds for. A nil clause keeps everything.
func filterBindings(g *Graph, w *WhereClause, in []Bindings) []Bindings {
	if w == nil {
		return in
	}
	out := in[:0:0]
	for _, b := range in {
		if evalOr(g, b, w.Condition) {
			out = append(out, b)
		}
	}
	return out
}

// itemValue resolves a non-aggregate RETURN item to a row value. Values
// that round-trip as integers come back typed, everything else stays a
// string.
func itemValue(g *Graph, b Bindings, ref *PropertyRef) any {
	s := resolveRef(g, b, ref)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}
