// Package memo caches results of pure computations keyed by their inputs.
package memo

import "sync"

// Store holds computed values for the lifetime of the process.
type Store[K comparable, V any] struct {
	data   map[K]V
	hits   int
	misses int
	mu     sync.RWMutex
}

// New creates an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{data: make(map[K]V)}
}

// Get returns the cached value for key, calling compute and caching its
// result on a miss. compute must be pure.
func (s *Store[K, V]) Get(key K, compute func() V) V {
	s.mu.RLock()
	v, ok := s.data[key]
	s.mu.RUnlock()
	if ok {
		s.mu.Lock()
		s.hits++
		s.mu.Unlock()
		return v
	}

	v = compute()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.misses++
	s.data[key] = v
	return v
}

// Lookup returns the cached value for key without computing it.
func (s *Store[K, V]) Lookup(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Len returns the number of cached entries.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Stats returns hit and miss counts since the last Clear.
func (s *Store[K, V]) Stats() (hits, misses int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hits, s.misses
}

// Clear drops every entry and resets the counters.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[K]V)
	s.hits, s.misses = 0, 0
}
