package cypherlite

// Execute parses and runs a query against a graph.
func Execute(query string, g *Graph) (*Result, error) {
	q, err := Parse(query)
	if err != nil {
		return nil, err
	}
	return Run(q, g)
}

// Run executes an already parsed query. The graph is only read; a parsed
// Query may be reused across calls and goroutines.
func Run(q *Query, g *Graph) (*Result, error) {
	bindings := matchClause(g, q.Match)
	bindings = filterBindings(g, q.Where, bindings)

	items := q.Return.Items
	columns := make([]string, len(items))
	aggregates := 0
	for i, item := range items {
		columns[i] = item.ColumnName()
		if item.Aggregate != nil {
			aggregates++
		}
	}
	if aggregates > 0 && aggregates < len(items) {
		return nil, &ExecError{Err: ErrMixedReturn}
	}

	if aggregates > 0 {
		row := make(Row, len(items))
		for i, item := range items {
			v, err := evalAggregate(g, bindings, item.Aggregate)
			if err != nil {
				return nil, &ExecError{Err: err}
			}
			row[columns[i]] = v
		}
		return &Result{Columns: columns, Rows: []Row{row}}, nil
	}

	rows := make([]Row, 0, len(bindings))
	for _, b := range bindings {
		row := make(Row, len(items))
		for i, item := range items {
			row[columns[i]] = itemValue(g, b, item.Ref)
		}
		rows = append(rows, row)
	}
	return &Result{Columns: columns, Rows: rows}, nil
}
