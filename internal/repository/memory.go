package repository

import (
	"fmt"
	"sync"
)

// orderedTable is an in-memory table that keeps insertion order and hands
// out copies made by clone.
type orderedTable[T any] struct {
	mu    sync.RWMutex
	ids   []string
	rows  map[string]T
	clone func(T) T
}

func newOrderedTable[T any](clone func(T) T) *orderedTable[T] {
	return &orderedTable[T]{rows: make(map[string]T), clone: clone}
}

func (t *orderedTable[T]) insert(id string, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; exists {
		return fmt.Errorf("duplicate id %q", id)
	}
	t.ids = append(t.ids, id)
	t.rows[id] = t.clone(row)
	return nil
}

func (t *orderedTable[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(row), true
}

func (t *orderedTable[T]) replace(id string, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = t.clone(row)
	return true
}

// filter returns copies of the rows accepted by keep, in insertion order.
func (t *orderedTable[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}
