package viewstate

import (
	"sync"

	"github.com/google/uuid"
)

// Snapshot is one committed generation of a view's collection. ID identifies
// the generation in logs; Data is the whole collection, never a partial
// update.
type Snapshot[T any] struct {
	ID   uuid.UUID
	Data T
}

// Store holds the collection a mounted view renders from. Snapshots are
// replaced wholesale on every load. Each load claims a token before its fetch
// starts, and only the most recently claimed token may commit, so a slow
// response from an earlier load is detected and discarded instead of
// overwriting newer data.
type Store[T any] struct {
	mu        sync.Mutex
	latest    uint64
	current   Snapshot[T]
	committed bool
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Begin claims a load token. Call before issuing the fetch.
func (s *Store[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Commit replaces the snapshot if token is still the most recently claimed.
// It reports whether the data was applied; a false return means a newer load
// has claimed the view and this response is stale.
func (s *Store[T]) Commit(token uint64, data T) (Snapshot[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.latest {
		return s.current, false
	}

	s.current = Snapshot[T]{ID: uuid.New(), Data: data}
	s.committed = true
	return s.current, true
}

// Current returns the latest committed snapshot, if any.
func (s *Store[T]) Current() (Snapshot[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.committed
}
