package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type item[V any] struct {
	value V
	built time.Time
}

// Store is a bounded TTL cache. Concurrent misses on the same key share a
// single build.
type Store[V any] struct {
	mu    sync.RWMutex
	items map[string]item[V]
	sf    singleflight.Group
	ttl   time.Duration
	size  int
	now   func() time.Time
}

// New creates a store from cfg.
func New[V any](cfg Config) *Store[V] {
	return &Store[V]{
		items: make(map[string]item[V]),
		ttl:   cfg.TTL(),
		size:  cfg.Size,
		now:   time.Now,
	}
}

// Enabled reports whether results are retained at all.
func (s *Store[V]) Enabled() bool {
	return s.ttl > 0 && s.size > 0
}

func (s *Store[V]) expired(it item[V]) bool {
	return s.now().Sub(it.built) > s.ttl
}

// Get returns a fresh cached value.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()

	if !ok || s.expired(it) {
		var zero V
		return zero, false
	}
	return it.value, true
}

// GetOrBuild returns the cached value for key, or runs build and stores its
// result. Errors are returned to every waiter and never cached.
func (s *Store[V]) GetOrBuild(key string, build func() (V, error)) (V, error) {
	if !s.Enabled() {
		return build()
	}

	// Fast path
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	result, err, _ := s.sf.Do(key, func() (any, error) {
		// Double-check after joining the flight
		if v, ok := s.Get(key); ok {
			return v, nil
		}

		v, err := build()
		if err != nil {
			return nil, err
		}
		s.put(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

// put stores v, evicting expired entries first and then arbitrary ones
// while the store is full.
func (s *Store[V]) put(key string, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[key]; !exists && len(s.items) >= s.size {
		for k, it := range s.items {
			if s.expired(it) {
				delete(s.items, k)
			}
		}
		for k := range s.items {
			if len(s.items) < s.size {
				break
			}
			delete(s.items, k)
		}
	}
	s.items[key] = item[V]{value: v, built: s.now()}
}

// Invalidate removes key from the store.
func (s *Store[V]) Invalidate(key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}

// Purge empties the store.
func (s *Store[V]) Purge() {
	s.mu.Lock()
	s.items = make(map[string]item[V])
	s.mu.Unlock()
}

// Len returns the number of stored entries, fresh or not.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
