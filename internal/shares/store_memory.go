package shares

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the dev fallback when Redis is not configured.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Share
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]Share),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Put(ctx context.Context, share Share) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[share.ID] = share
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Share, error) {
	if err := ctx.Err(); err != nil {
		return Share{}, err
	}
	s.mu.RLock()
	share, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return Share{}, ErrNotFound
	}
	if s.now().After(share.ExpiresAt) {
		s.mu.Lock()
		delete(s.items, id)
		s.mu.Unlock()
		return Share{}, ErrNotFound
	}
	return share, nil
}
