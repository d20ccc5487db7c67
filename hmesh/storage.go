package hmesh

import (
	"sort"
	"sync/atomic"
)

// storageKey is the constraint satisfied by every key type a Storage can be
// keyed by.
type storageKey interface {
	~uint64
}

// Storage is an arena mapping keys of a single entity kind (vertex, edge, or
// face) to their records. It provides O(1) lookup, insertion, and removal,
// and hands out fresh keys that are never reused for the lifetime of the
// process. A Storage only ever holds the record itself, never references to
// other records; all cross-links between entities are keys resolved through
// another Storage.
type Storage[K storageKey, T any] struct {
	records map[K]*T
	next    uint64
}

// NewStorage creates an empty Storage. Keys start at 1; 0 is reserved for
// "absent" (see key.go).
func NewStorage[K storageKey, T any]() *Storage[K, T] {
	return &Storage[K, T]{records: make(map[K]*T)}
}

// Len returns the number of live entities.
func (s *Storage[K, T]) Len() int {
	return len(s.records)
}

// Contains reports whether key names a live entity.
func (s *Storage[K, T]) Contains(key K) bool {
	_, ok := s.records[key]
	return ok
}

// Get returns a pointer to the record for key, suitable for both reads and
// in-place mutation, and a bool reporting whether it was found.
func (s *Storage[K, T]) Get(key K) (*T, bool) {
	rec, ok := s.records[key]
	return rec, ok
}

// Insert stores rec under a freshly allocated key and returns that key.
func (s *Storage[K, T]) Insert(rec T) K {
	id := atomic.AddUint64(&s.next, 1)
	key := K(id)
	s.records[key] = &rec
	return key
}

// Remove deletes the record named by key, returning it and whether it was
// present.
func (s *Storage[K, T]) Remove(key K) (T, bool) {
	rec, ok := s.records[key]
	if !ok {
		var zero T
		return zero, false
	}
	delete(s.records, key)
	return *rec, true
}

// Keys returns every live key in ascending order. Map iteration order is
// unspecified in Go, and callers need deterministic iteration for a given
// mutation sequence; sorting the keys (which are monotonically assigned)
// gives that for free.
func (s *Storage[K, T]) Keys() []K {
	keys := make([]K, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone returns a deep, key-preserving copy of the storage: every record is
// duplicated behind a fresh pointer, but keys and the atomic counter are
// carried over unchanged. The mutation transaction uses this to snapshot
// storage before a plan runs, so it can restore the pre-mutation state on
// rollback without the plan's in-place edits bleeding into the snapshot.
func (s *Storage[K, T]) Clone() *Storage[K, T] {
	out := &Storage[K, T]{
		records: make(map[K]*T, len(s.records)),
		next:    atomic.LoadUint64(&s.next),
	}
	for k, rec := range s.records {
		cp := *rec
		out.records[k] = &cp
	}
	return out
}
