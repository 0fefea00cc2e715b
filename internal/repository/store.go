package repository

import (
	"sync"
	"time"
)

// Schema tells a Store where the bookkeeping fields of T live.
type Schema[T any] struct {
	// Prefix starts every synthetic id of this kind (e.g. "semester").
	Prefix    string
	ID        func(*T) *string
	CreatedAt func(*T) *time.Time
	UpdatedAt func(*T) *time.Time
}

// Store is an in-memory mapping from identifier to the latest snapshot of one
// entity kind. Snapshots are kept and returned by value; All and Filter
// preserve insertion order.
//
// A single RWMutex guards the mapping so concurrent writers cannot interleave
// partial mutations. It does not make operations across several stores
// atomic.
type Store[T any] struct {
	schema Schema[T]
	clock  func() time.Time
	newID  IDGenerator

	mu    sync.RWMutex
	order []string
	items map[string]T
}

func NewStore[T any](schema Schema[T], opts Options) *Store[T] {
	opts = opts.withDefaults()
	return &Store[T]{
		schema: schema,
		clock:  opts.Clock,
		newID:  opts.IDs,
		items:  make(map[string]T),
	}
}

func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	return v, ok
}

// Filter returns the snapshots matching keep, in insertion order. The result
// is never nil.
func (s *Store[T]) Filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range s.order {
		if v := s.items[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first snapshot, in insertion order, matching keep.
func (s *Store[T]) First(keep func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if v := s.items[id]; keep(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Insert stores v as a new snapshot. A non-empty id on v is kept, otherwise a
// synthetic one is assigned. Both timestamps are stamped with the current
// time. Inserting over an existing id replaces that snapshot in place.
func (s *Store[T]) Insert(v T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	id := s.schema.ID(&v)
	if *id == "" {
		*id = s.newID(s.schema.Prefix, now)
	}
	*s.schema.CreatedAt(&v) = now
	*s.schema.UpdatedAt(&v) = now

	if _, exists := s.items[*id]; !exists {
		s.order = append(s.order, *id)
	}
	s.items[*id] = v
	return v
}

// Update applies merge to a copy of the snapshot stored under id. The id is
// forced back to the target id whatever merge did, and UpdatedAt is refreshed.
// It reports false when id is not stored.
func (s *Store[T]) Update(id string, merge func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}

	next := merge(current)
	*s.schema.ID(&next) = id
	*s.schema.CreatedAt(&next) = *s.schema.CreatedAt(&current)
	*s.schema.UpdatedAt(&next) = s.clock()

	s.items[id] = next
	return next, true
}

// Delete removes the snapshot stored under id and reports whether one existed.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// DeleteWhere removes every snapshot matching drop and returns how many went.
func (s *Store[T]) DeleteWhere(drop func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	removed := 0
	for _, id := range s.order {
		if drop(s.items[id]) {
			delete(s.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
