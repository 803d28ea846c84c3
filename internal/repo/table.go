package repo

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

var tracer = otel.Tracer("github.com/pkordes/travel-agency/backend/internal/repo")

// Repository is the persistence contract shared by every entity.
// The service layer depends on this interface (or an entity-specific
// extension of it), not the concrete Postgres implementation, which allows
// services to be unit-tested with a mock.
type Repository[T any, P any] interface {
	// Create inserts a record, applying the entity's defaults, and returns
	// the persisted row with its generated id and timestamps.
	Create(ctx context.Context, v T) (T, error)

	// FindByID returns domain.ErrNotFound when no row has that id.
	FindByID(ctx context.Context, id int64) (T, error)

	// FindAll lists records matching q in the entity's fixed order.
	// The result is never nil.
	FindAll(ctx context.Context, q domain.ListQuery) ([]T, error)

	// Update writes only the fields set in p and refreshes updated_at.
	// A patch with no fields set returns the current row unchanged.
	Update(ctx context.Context, id int64, p P) (T, error)

	// Delete removes the row and returns it as it was before removal.
	Delete(ctx context.Context, id int64) (T, error)
}

// Op is the comparison a Filter applies.
type Op int

const (
	// OpEqual matches the column exactly.
	OpEqual Op = iota
	// OpContains is a case-insensitive substring match (ILIKE).
	OpContains
)

// Filter maps a ListQuery filter key onto a column. Cast, when set, is the
// SQL type the text value is converted to before comparing (e.g. "bigint").
type Filter struct {
	Key    string
	Column string
	Op     Op
	Cast   string
}

// field is one column/value pair of an INSERT or UPDATE.
type field struct {
	column string
	value  any
}

// entity declares how one domain type is stored.
type entity[T any, P any] struct {
	name     string // used in error prefixes, e.g. "TripRepo"
	table    string
	columns  []string // select list, in scan order
	scan     func(scanner) (T, error)
	insert   func(T) ([]field, error)
	patch    func(P) ([]field, error)
	filters  []Filter
	search   []string
	statuses domain.StatusSet
	orderBy  string
	touch    bool // table has updated_at
}

func (e entity[T, P]) selectList() string {
	return strings.Join(e.columns, ", ")
}

// Table is the generic Postgres implementation of Repository.
type Table[T any, P any] struct {
	db db
	e  entity[T, P]
}

func newTable[T any, P any](db db, e entity[T, P]) *Table[T, P] {
	return &Table[T, P]{db: db, e: e}
}

// Create inserts a new row. An empty status is replaced by the entity's
// default status.
func (t *Table[T, P]) Create(ctx context.Context, v T) (_ T, err error) {
	ctx, span := t.start(ctx, "Create")
	defer func() { finish(span, err) }()

	fields, err := t.e.insert(v)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.Create: encode: %w", t.e.name, err)
	}
	fields = t.withDefaultStatus(fields)

	cols := make([]string, len(fields))
	marks := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		cols[i] = f.column
		marks[i] = fmt.Sprintf("$%d", i+1)
		args[i] = f.value
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.e.table, strings.Join(cols, ", "), strings.Join(marks, ", "), t.e.selectList())

	result, err := t.e.scan(t.db.QueryRow(ctx, q, args...))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.Create: %w", t.e.name, translate(err))
	}
	return result, nil
}

// FindByID retrieves a row by primary key.
func (t *Table[T, P]) FindByID(ctx context.Context, id int64) (_ T, err error) {
	ctx, span := t.start(ctx, "FindByID")
	defer func() { finish(span, err) }()

	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", t.e.selectList(), t.e.table)
	result, err := t.e.scan(t.db.QueryRow(ctx, q, id))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.FindByID: %w", t.e.name, translate(err))
	}
	return result, nil
}

// findOne retrieves the single row whose unique column equals value.
// column always comes from a declaration, never from a caller.
func (t *Table[T, P]) findOne(ctx context.Context, op, column string, value any) (_ T, err error) {
	ctx, span := t.start(ctx, op)
	defer func() { finish(span, err) }()

	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.e.selectList(), t.e.table, column)
	result, err := t.e.scan(t.db.QueryRow(ctx, q, value))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.%s: %w", t.e.name, op, translate(err))
	}
	return result, nil
}

// FindAll lists rows matching q.
func (t *Table[T, P]) FindAll(ctx context.Context, q domain.ListQuery) (_ []T, err error) {
	ctx, span := t.start(ctx, "FindAll")
	defer func() { finish(span, err) }()

	sql, args := buildList(t.e.table, t.e.selectList(), t.e.filters, t.e.search, t.e.statuses, t.e.orderBy, q)
	return t.query(ctx, "FindAll", sql, args...)
}

// query runs a multi-row SELECT and maps every row.
func (t *Table[T, P]) query(ctx context.Context, op, sql string, args ...any) ([]T, error) {
	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repo.%s.%s: %w", t.e.name, op, translate(err))
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := t.e.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.%s.%s: scan: %w", t.e.name, op, translate(err))
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.%s.%s: rows: %w", t.e.name, op, translate(err))
	}
	return out, nil
}

// Update writes the patch's set fields. Zero set fields is a read-through.
func (t *Table[T, P]) Update(ctx context.Context, id int64, p P) (_ T, err error) {
	fields, err := t.e.patch(p)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.Update: encode: %w", t.e.name, err)
	}
	if len(fields) == 0 {
		return t.FindByID(ctx, id)
	}

	ctx, span := t.start(ctx, "Update")
	defer func() { finish(span, err) }()

	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		args = append(args, f.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", f.column, len(args)))
	}
	if t.e.touch {
		sets = append(sets, "updated_at = now()")
	}
	args = append(args, id)

	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		t.e.table, strings.Join(sets, ", "), len(args), t.e.selectList())

	result, err := t.e.scan(t.db.QueryRow(ctx, q, args...))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.Update: %w", t.e.name, translate(err))
	}
	return result, nil
}

// Delete removes a row and returns its pre-image.
func (t *Table[T, P]) Delete(ctx context.Context, id int64) (_ T, err error) {
	ctx, span := t.start(ctx, "Delete")
	defer func() { finish(span, err) }()

	q := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", t.e.table, t.e.selectList())
	result, err := t.e.scan(t.db.QueryRow(ctx, q, id))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.%s.Delete: %w", t.e.name, translate(err))
	}
	return result, nil
}

func (t *Table[T, P]) withDefaultStatus(fields []field) []field {
	if !t.e.statuses.Enabled() {
		return fields
	}
	for i, f := range fields {
		if f.column == "status" {
			if s, ok := f.value.(string); ok && s == "" {
				fields[i].value = t.e.statuses.Default
			}
			return fields
		}
	}
	return append(fields, field{"status", t.e.statuses.Default})
}

func (t *Table[T, P]) start(ctx context.Context, op string) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, "repo."+t.e.table+"."+op, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", op),
		attribute.String("db.table", t.e.table),
	)
	return ctx, span
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
