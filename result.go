package cypherlite

import (
	"errors"
	"fmt"
)

// Row is one result row, keyed by column name.
type Row map[string]any

// Result is the outcome of executing a query. Columns preserve the RETURN
// item order; Rows preserve the graph's insertion order.
type Result struct {
	Columns []string
	Rows    []Row
}

// Records returns the rows as plain maps, ready for JSON encoding.
func (r *Result) Records() []map[string]any {
	out := make([]map[string]any, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row
	}
	return out
}

// SingleValue returns the first column of the first row. It is a
// convenience for aggregate queries like RETURN COUNT(n).
func (r *Result) SingleValue() (any, error) {
	if len(r.Rows) == 0 || len(r.Columns) == 0 {
		return nil, errors.New("result has no value")
	}
	v, ok := r.Rows[0][r.Columns[0]]
	if !ok {
		return nil, fmt.Errorf("result has no column %q", r.Columns[0])
	}
	return v, nil
}
