package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

var header = []string{"id", "status", "created_at", "updated_at"}

// querier is the subset of pgxpool.Pool the tables use.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ querier = (*pgxpool.Pool)(nil)

// table stores one resource type. columns lists the resource's own columns
// after the record header, and values returns them in the same order.
type table[T any, P domain.Entity[T]] struct {
	db       querier
	name     string
	columns  []string
	values   func(*T) []any
	notFound error
	uniques  map[string]error
}

func newTable[T any, P domain.Entity[T]](db querier, name string, notFound error, columns []string, values func(*T) []any) *table[T, P] {
	return &table[T, P]{
		db:       db,
		name:     name,
		columns:  columns,
		values:   values,
		notFound: notFound,
		uniques:  map[string]error{},
	}
}

// unique maps a named unique constraint to the conflict its violation reports.
func (r *table[T, P]) unique(constraint string, conflict error) *table[T, P] {
	r.uniques[constraint] = conflict
	return r
}

func (r *table[T, P]) selectSQL() string {
	return "SELECT " + strings.Join(append(append([]string{}, header...), r.columns...), ", ") + " FROM " + r.name
}

func (r *table[T, P]) insertSQL() string {
	cols := append(append([]string{}, header...), r.columns...)
	marks := make([]string, len(cols))
	for i := range cols {
		marks[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", r.name, strings.Join(cols, ", "), strings.Join(marks, ", "))
}

func (r *table[T, P]) updateSQL() string {
	sets := []string{"status = $2", "updated_at = $3"}
	for i, col := range r.columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+4))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", r.name, strings.Join(sets, ", "))
}

func (r *table[T, P]) Create(ctx context.Context, v *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := P(v).Base()
	args := append([]any{rec.ID, rec.Status, rec.CreatedAt, rec.UpdatedAt}, r.values(v)...)
	if _, err := r.db.Exec(ctx, r.insertSQL(), args...); err != nil {
		return r.writeError(err, "insert")
	}
	return nil
}

func (r *table[T, P]) List(ctx context.Context) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, r.selectSQL()+" ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("%s select: %w", r.name, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("%s scan: %w", r.name, err)
	}
	return items, nil
}

func (r *table[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	if uuid.Validate(id) != nil {
		return nil, r.notFound
	}
	return r.findOne(ctx, "id", id)
}

func (r *table[T, P]) Update(ctx context.Context, v *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := P(v).Base()
	if uuid.Validate(rec.ID) != nil {
		return r.notFound
	}
	args := append([]any{rec.ID, rec.Status, rec.UpdatedAt}, r.values(v)...)
	tag, err := r.db.Exec(ctx, r.updateSQL(), args...)
	if err != nil {
		return r.writeError(err, "update")
	}
	if tag.RowsAffected() == 0 {
		return r.notFound
	}
	return nil
}

func (r *table[T, P]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if uuid.Validate(id) != nil {
		return r.notFound
	}
	tag, err := r.db.Exec(ctx, "DELETE FROM "+r.name+" WHERE id = $1", id)
	if err != nil {
		return r.writeError(err, "delete")
	}
	if tag.RowsAffected() == 0 {
		return r.notFound
	}
	return nil
}

// findOne returns the single row whose column equals value.
func (r *table[T, P]) findOne(ctx context.Context, column string, value any) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, r.selectSQL()+" WHERE "+column+" = $1 LIMIT 1", value)
	if err != nil {
		return nil, r.readError(err, "select")
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, r.readError(err, "scan")
	}
	return v, nil
}

// readError reports a missing row as the resource's NotFound error.
func (r *table[T, P]) readError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return r.notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation {
		return r.notFound
	}
	return fmt.Errorf("%s %s: %w", r.name, op, err)
}

func (r *table[T, P]) writeError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if conflict, ok := r.uniques[pgErr.ConstraintName]; ok {
				return conflict
			}
			return domain.Conflict("Record already exists")
		case pgerrcode.InvalidTextRepresentation:
			return r.notFound
		}
	}
	return fmt.Errorf("%s %s: %w", r.name, op, err)
}
