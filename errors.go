package cypherlite

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMatch is returned when a query has no MATCH clause.
	ErrMissingMatch = errors.New("query has no MATCH clause")

	// ErrMissingReturn is returned when a query has no RETURN clause.
	ErrMissingReturn = errors.New("query has no RETURN clause")

	// ErrUnknownAggregate is returned when a RETURN item calls a function
	// that is not a recognized aggregate.
	ErrUnknownAggregate = errors.New("unknown aggregate function")

	// ErrMixedReturn is returned when a RETURN clause mixes aggregate and
	// non-aggregate items.
	ErrMixedReturn = errors.New("cannot mix aggregate and non-aggregate items in RETURN")

	// ErrNotImplemented is returned by the evaluator for aggregate
	// functions it recognizes but cannot execute yet, such as AVG, MIN and
	// MAX. Parse rejects those names, so it is reachable only through
	// hand-built queries.
	ErrNotImplemented = errors.New("not implemented")

	// ErrConfigNotFound is returned by FindConfig when no configuration file
	// exists in the directory or any of its parents.
	ErrConfigNotFound = errors.New("no .cypherlite.yaml found")

	// ErrInvalidData is returned when input JSON does not match the shape a
	// GraphConfig describes, such as a node object with no id field.
	ErrInvalidData = errors.New("invalid graph data")
)

// ParseError wraps any failure to turn query text into an executable Query,
// including post-parse validation such as missing clauses.
type ParseError struct {
	Query string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExecError wraps failures raised while executing a parsed query against a
// graph.
type ExecError struct {
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("execution error: %v", e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }
