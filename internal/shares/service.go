package shares

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"toolintel-backend/internal/recommender"
)

type Service struct {
	Store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		Store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create snapshots a profile plus its recommendation and returns the stored share.
func (s *Service) Create(ctx context.Context, profile recommender.Profile, result recommender.Result) (Share, error) {
	if s == nil || s.Store == nil {
		return Share{}, errors.New("shares service not configured")
	}
	now := s.now()
	share := Share{
		ID:             uuid.NewString(),
		Profile:        profile,
		Recommendation: result,
		CreatedAt:      now,
		ExpiresAt:      now.Add(shareTTL),
	}
	if err := s.Store.Put(ctx, share); err != nil {
		return Share{}, err
	}
	return share, nil
}

// Get loads a share by id. Expired or unknown ids return ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Share, error) {
	if s == nil || s.Store == nil {
		return Share{}, errors.New("shares service not configured")
	}
	return s.Store.Get(ctx, id)
}
