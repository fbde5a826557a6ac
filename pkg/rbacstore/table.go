package rbacstore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// table is a typed view over sync.Map keyed by entity ID.
// Every method is a single atomic map primitive; nothing spans two keys.
type table[T comparable] struct {
	kind string
	m    sync.Map
}

func newTable[T comparable](kind string) *table[T] {
	return &table[T]{kind: kind}
}

// insert stores v under id only if the key is free.
func (t *table[T]) insert(id uuid.UUID, v T) error {
	if _, loaded := t.m.LoadOrStore(id, v); loaded {
		return errors.Join(ErrConflict, fmt.Errorf("%s %s already exists", t.kind, id))
	}
	return nil
}

func (t *table[T]) get(id uuid.UUID) (T, error) {
	v, ok := t.m.Load(id)
	if !ok {
		var zero T
		return zero, errors.Join(ErrNotFound, fmt.Errorf("%s %s", t.kind, id))
	}
	return v.(T), nil
}

func (t *table[T]) exists(id uuid.UUID) bool {
	_, ok := t.m.Load(id)
	return ok
}

// replace reads the current value and swaps it for next in one compare-and-swap.
// A writer that slipped in between the read and the swap makes it fail with ErrConflict.
func (t *table[T]) replace(id uuid.UUID, next T) (T, error) {
	current, err := t.get(id)
	if err != nil {
		return current, err
	}
	if !t.m.CompareAndSwap(id, current, next) {
		var zero T
		return zero, errors.Join(ErrConflict, fmt.Errorf("%s %s was modified concurrently", t.kind, id))
	}
	return next, nil
}

// remove looks the entry up and then deletes it.
// Losing the entry to a concurrent delete between the two steps is reported, not masked.
func (t *table[T]) remove(id uuid.UUID) error {
	if _, err := t.get(id); err != nil {
		return err
	}
	if _, loaded := t.m.LoadAndDelete(id); !loaded {
		return errors.Join(ErrNotFound, fmt.Errorf("%s %s was deleted concurrently", t.kind, id))
	}
	return nil
}

// scan calls fn for every entry until fn returns false.
func (t *table[T]) scan(fn func(id uuid.UUID, v T) bool) {
	t.m.Range(func(k, v any) bool {
		return fn(k.(uuid.UUID), v.(T))
	})
}

func (t *table[T]) len() int {
	n := 0
	t.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
