package querybuilder

import (
	"fmt"
	"strings"
)

// InsertQuery renders a multi-row INSERT.
type InsertQuery struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func Insert(table string, columns ...string) *InsertQuery {
	return &InsertQuery{table: table, columns: append([]string(nil), columns...)}
}

func (q *InsertQuery) Row(values ...any) *InsertQuery {
	q.rows = append(q.rows, append([]any(nil), values...))
	return q
}

func (q *InsertQuery) Suffix(sql string) *InsertQuery {
	q.suffix = strings.TrimSpace(sql)
	return q
}

func (q *InsertQuery) Build() (string, []any, error) {
	if strings.TrimSpace(q.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(q.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(q.rows) == 0 {
		return "", nil, fmt.Errorf("insert rows are required")
	}

	tuple := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(q.columns)), ", ") + ")"
	tuples := make([]string, 0, len(q.rows))
	args := make([]any, 0, len(q.rows)*len(q.columns))
	for i, row := range q.rows {
		if len(row) != len(q.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(q.columns))
		}
		tuples = append(tuples, tuple)
		args = append(args, row...)
	}

	sql := "INSERT INTO " + q.table + " (" + strings.Join(q.columns, ", ") + ") VALUES " + strings.Join(tuples, ", ")
	if q.suffix != "" {
		sql += " " + q.suffix
	}
	return number(sql), args, nil
}
