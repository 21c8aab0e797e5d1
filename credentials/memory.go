// credentials/memory.go
package credentials

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. It is the default backend for tests
// and short-lived tooling; anything that must survive a restart should use
// RedisStore or another persistent implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	pair Pair
	held bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (Pair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.held {
		return Pair{}, ErrNotFound
	}
	return s.pair, nil
}

func (s *MemoryStore) Set(ctx context.Context, pair Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	s.held = true
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = Pair{}
	s.held = false
	return nil
}
