package repo

import (
	"fmt"
	"strings"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// whereBuilder accumulates AND-ed clauses starting from 1=1. Every value is
// appended to args at the same moment its placeholder number is taken, so
// placeholders and args can never drift apart.
type whereBuilder struct {
	clauses []string
	args    []any
}

// add appends a clause. format holds one %[1]d verb per use of the
// placeholder, e.g. "status = $%[1]d".
func (b *whereBuilder) add(format string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf(format, len(b.args)))
}

func (b *whereBuilder) where() string {
	return strings.Join(append([]string{"1=1"}, b.clauses...), " AND ")
}

// buildList renders the SELECT for a filtered list. Clause order is fixed:
// status, visibility, entity filters in declared order, search, then
// ORDER BY, LIMIT and OFFSET.
func buildList(table, selectList string, filters []Filter, search []string, statuses domain.StatusSet, orderBy string, q domain.ListQuery) (string, []any) {
	var b whereBuilder

	if statuses.Enabled() {
		if q.Status != "" {
			b.add("status = $%[1]d", q.Status)
		}
		if !q.IncludeHidden {
			// An empty visible set matches nothing.
			b.add("status = ANY($%[1]d)", append([]string{}, statuses.Visible...))
		}
	}

	for _, f := range filters {
		v := q.Filter(f.Key)
		if v == "" {
			continue
		}
		switch f.Op {
		case OpContains:
			b.add(f.Column+" ILIKE $%[1]d", containsPattern(v))
		default:
			if f.Cast != "" {
				b.add(f.Column+" = $%[1]d::text::"+f.Cast, v)
			} else {
				b.add(f.Column+" = $%[1]d", v)
			}
		}
	}

	if q.Search != "" && len(search) > 0 {
		ors := make([]string, len(search))
		for i, col := range search {
			ors[i] = col + " ILIKE $%[1]d"
		}
		b.add("("+strings.Join(ors, " OR ")+")", containsPattern(q.Search))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s WHERE %s", selectList, table, b.where())
	if orderBy != "" {
		sb.WriteString(" ORDER BY " + orderBy)
	}
	args := b.args
	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}
	return sb.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user input into an ILIKE substring pattern with the
// LIKE wildcards escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
