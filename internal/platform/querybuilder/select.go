// Package querybuilder renders small Postgres statements with numbered placeholders.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Pred is a WHERE predicate written with ? markers.
type Pred struct {
	sql  string
	args []any
}

func Eq(column string, value any) Pred {
	return Pred{sql: column + " = ?", args: []any{value}}
}

func Gte(column string, value any) Pred {
	return Pred{sql: column + " >= ?", args: []any{value}}
}

func Gt(column string, value any) Pred {
	return Pred{sql: column + " > ?", args: []any{value}}
}

// In matches nothing when values is empty.
func In[T any](column string, values []T) Pred {
	if len(values) == 0 {
		return Pred{sql: "1=0"}
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	args := make([]any, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return Pred{sql: column + " IN (" + marks + ")", args: args}
}

func Raw(sql string, args ...any) Pred {
	return Pred{sql: sql, args: args}
}

type SelectQuery struct {
	columns []string
	table   string
	preds   []Pred
	orderBy []string
	limit   int
	offset  int
	lock    bool
}

func Select(columns ...string) *SelectQuery {
	return &SelectQuery{columns: append([]string(nil), columns...)}
}

func (q *SelectQuery) From(table string) *SelectQuery {
	q.table = table
	return q
}

func (q *SelectQuery) Where(preds ...Pred) *SelectQuery {
	q.preds = append(q.preds, preds...)
	return q
}

func (q *SelectQuery) OrderBy(parts ...string) *SelectQuery {
	q.orderBy = append(q.orderBy, parts...)
	return q
}

func (q *SelectQuery) Limit(n int) *SelectQuery {
	q.limit = n
	return q
}

func (q *SelectQuery) Offset(n int) *SelectQuery {
	q.offset = n
	return q
}

func (q *SelectQuery) ForUpdate() *SelectQuery {
	q.lock = true
	return q
}

func (q *SelectQuery) Build() (string, []any, error) {
	if len(q.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(q.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.table)

	var args []any
	if len(q.preds) > 0 {
		parts := make([]string, 0, len(q.preds))
		for _, p := range q.preds {
			parts = append(parts, p.sql)
			args = append(args, p.args...)
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(parts, " AND "))
	}
	if len(q.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(q.orderBy, ", "))
	}
	if q.limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(q.limit))
	}
	if q.offset > 0 {
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.Itoa(q.offset))
	}
	if q.lock {
		sb.WriteString(" FOR UPDATE")
	}

	return number(sb.String()), args, nil
}

// number rewrites ? markers into $1..$n in order of appearance.
func number(sql string) string {
	var out strings.Builder
	out.Grow(len(sql) + 8)
	n := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] != '?' {
			out.WriteByte(sql[i])
			continue
		}
		n++
		out.WriteByte('$')
		out.WriteString(strconv.Itoa(n))
	}
	return out.String()
}
