package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const maxNameLength = 64

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save upserts a named profile for the user.
func (s *Service) Save(ctx context.Context, saved SavedProfile) error {
	if s == nil || s.Repo == nil {
		return errors.New("profiles service not configured")
	}
	saved.Name = strings.TrimSpace(saved.Name)
	if strings.TrimSpace(saved.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if saved.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(saved.Name) > maxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxNameLength)
	}
	return s.Repo.Upsert(ctx, saved)
}

// Get fetches one saved profile by name.
func (s *Service) Get(ctx context.Context, userID, name string) (SavedProfile, error) {
	if s == nil || s.Repo == nil {
		return SavedProfile{}, errors.New("profiles service not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return SavedProfile{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return s.Repo.GetByName(ctx, userID, name)
}

// List returns all profiles saved by the user, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]SavedProfile, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("profiles service not configured")
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes one saved profile by name.
func (s *Service) Delete(ctx context.Context, userID, name string) error {
	if s == nil || s.Repo == nil {
		return errors.New("profiles service not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, userID, name)
}
