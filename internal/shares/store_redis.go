package shares

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"toolintel-backend/internal/shared/storage/kv"
)

const keyPrefix = "share:"

// RedisStore keeps share snapshots in Redis with a per-key TTL, so
// expiry needs no sweeper.
type RedisStore struct {
	KV *kv.Client
}

func NewRedisStore(client *kv.Client) *RedisStore {
	return &RedisStore{KV: client}
}

func (s *RedisStore) Put(ctx context.Context, share Share) error {
	payload, err := json.Marshal(share)
	if err != nil {
		return fmt.Errorf("marshal share %s: %w", share.ID, err)
	}
	ttl := time.Until(share.ExpiresAt)
	if ttl <= 0 {
		ttl = shareTTL
	}
	return s.KV.Set(ctx, keyPrefix+share.ID, payload, ttl)
}

func (s *RedisStore) Get(ctx context.Context, id string) (Share, error) {
	payload, err := s.KV.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return Share{}, ErrNotFound
		}
		return Share{}, err
	}
	var share Share
	if err := json.Unmarshal(payload, &share); err != nil {
		return Share{}, fmt.Errorf("unmarshal share %s: %w", id, err)
	}
	return share, nil
}
