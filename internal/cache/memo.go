// Package cache holds the process-lifetime memo tables of the mock backend.
// Entries are never evicted; Clear is the only lifecycle operation.
package cache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo maps a parameter tuple to a value computed once per key.
// Concurrent misses on the same key share a single computation.
type Memo[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	group   singleflight.Group
}

func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{entries: make(map[K]V)}
}

func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *Memo[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. compute must be a pure function of key.
func (m *Memo[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	res, _, _ := m.group.Do(fmt.Sprint(key), func() (any, error) {
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		v := compute()
		m.Set(key, v)
		return v, nil
	})
	return res.(V)
}

// GetOrTry is GetOrCompute for computations that can fail. Failures are
// returned to every waiter and are not cached.
func (m *Memo[K, V]) GetOrTry(key K, compute func() (V, error)) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	res, err, _ := m.group.Do(fmt.Sprint(key), func() (any, error) {
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memo[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[K]V)
}
