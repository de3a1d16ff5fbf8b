// Package memory is a process-local store for development runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

// uniqueKey mirrors a unique index: two rows may not share a non-empty key.
type uniqueKey[T any] struct {
	key      func(*T) string
	conflict error
}

// table is a mutex-guarded map of rows keyed by record id. Rows are copied
// in and out so callers never share memory with the store.
type table[T any, P domain.Entity[T]] struct {
	mu       sync.RWMutex
	rows     map[string]T
	notFound error
	uniques  []uniqueKey[T]
}

func newTable[T any, P domain.Entity[T]](notFound error, uniques ...uniqueKey[T]) *table[T, P] {
	return &table[T, P]{rows: make(map[string]T), notFound: notFound, uniques: uniques}
}

func (t *table[T, P]) Create(ctx context.Context, v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := P(v).Base().ID
	if _, ok := t.rows[id]; ok {
		return domain.Conflict("Record already exists")
	}
	if err := t.checkUnique(v, id); err != nil {
		return err
	}
	t.rows[id] = *v
	return nil
}

func (t *table[T, P]) List(ctx context.Context) ([]*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.rows))
	for _, row := range t.rows {
		row := row
		out = append(out, &row)
	}
	slices.SortFunc(out, func(a, b *T) int {
		return P(a).Base().CreatedAt.Compare(P(b).Base().CreatedAt)
	})
	return out, nil
}

func (t *table[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, t.notFound
	}
	return &row, nil
}

func (t *table[T, P]) Update(ctx context.Context, v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := P(v).Base().ID
	if _, ok := t.rows[id]; !ok {
		return t.notFound
	}
	if err := t.checkUnique(v, id); err != nil {
		return err
	}
	t.rows[id] = *v
	return nil
}

func (t *table[T, P]) Delete(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return t.notFound
	}
	delete(t.rows, id)
	return nil
}

// findOne returns the first row, by creation time, that matches.
func (t *table[T, P]) findOne(match func(*T) bool) (*T, error) {
	rows, _ := t.List(context.Background())
	for _, row := range rows {
		if match(row) {
			return row, nil
		}
	}
	return nil, t.notFound
}

// checkUnique must be called with the write lock held.
func (t *table[T, P]) checkUnique(v *T, selfID string) error {
	for _, u := range t.uniques {
		key := u.key(v)
		if key == "" {
			continue
		}
		for id, row := range t.rows {
			if id != selfID && u.key(&row) == key {
				return u.conflict
			}
		}
	}
	return nil
}
