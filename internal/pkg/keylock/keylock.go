// Package keylock provides a mutex per key. Entries are reference counted and
// dropped once no goroutine holds or waits on them.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyedMutex[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry
}

func New[K comparable]() *KeyedMutex[K] {
	return &KeyedMutex[K]{entries: make(map[K]*entry)}
}

// Lock blocks until the lock for key is held and returns its release func.
func (m *KeyedMutex[K]) Lock(key K) (unlock func()) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			m.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(m.entries, key)
			}
			m.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or awaited.
func (m *KeyedMutex[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
