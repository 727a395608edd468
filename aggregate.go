package cypherlite

import (
	"fmt"
	"strings"
)

// evalAggregate computes an aggregate over the full binding list. COUNT and
// SUM are supported; the other standard aggregates are recognized here as
// extension points but report ErrNotImplemented.
func evalAggregate(g *Graph, bindings []Bindings, call *AggregateCall) (any, error) {
	switch strings.ToUpper(call.Func) {
	case "COUNT":
		return int64(len(bindings)), nil
	case "SUM":
		return evalSum(g, bindings, call.Arg), nil
	case "AVG", "MIN", "MAX":
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, strings.ToUpper(call.Func))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAggregate, call.Func)
	}
}

// evalSum adds up an integer property across bindings. Bindings where the
// variable is unbound, not a node, or the property is missing or not an
// integer contribute nothing.
func evalSum(g *Graph, bindings []Bindings, arg *PropertyRef) int64 {
	var sum int64
	if arg == nil || arg.Property == "" {
		return sum
	}
	for _, b := range bindings {
		ent, ok := b[arg.Variable]
		if !ok || ent.Kind != EntityNode {
			continue
		}
		v, vok := PropertyInt(g.Node(ent.Node).Props[arg.Property])
		if !vok {
			continue
		}
		sum += v
	}
	return sum
}
