// internal/store/memory.go
//
// In-memory cache of solved boards.
// Solving is deterministic, so the word list for a board never changes; the
// HTTP layer uses this cache to avoid re-solving the same ticket on every
// solve, check or hint request.
//
// Characteristics:
//   - Keyed by Board.String().
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Bounded: when full, an arbitrary entry is evicted before inserting.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// DefaultCapacity bounds the memory cache when no capacity is given.
const DefaultCapacity = 1024

// Cache stores the sorted word list of solved boards.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Cache interface {
	// Get returns the cached words for key, if present.
	Get(ctx context.Context, key string) ([]string, bool)

	// Put stores words for key, replacing any previous entry.
	Put(ctx context.Context, key string, words []string) error
}

// memory is an in-memory map-based Cache implementation.
type memory struct {
	mu       sync.RWMutex
	capacity int
	boards   map[string][]string
}

// NewMemoryCache constructs an in-memory Cache holding at most capacity boards.
func NewMemoryCache(capacity int) Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &memory{capacity: capacity, boards: make(map[string][]string)}
}

func (m *memory) Get(_ context.Context, key string) ([]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	words, ok := m.boards[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), words...), true
}

func (m *memory) Put(_ context.Context, key string, words []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.boards[key]; !ok && len(m.boards) >= m.capacity {
		for k := range m.boards {
			delete(m.boards, k)
			break
		}
	}
	m.boards[key] = append([]string(nil), words...)
	return nil
}
