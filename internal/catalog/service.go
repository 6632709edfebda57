package catalog

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns the tools in a product category; an empty category lists all.
func (s *Service) List(ctx context.Context, category string) ([]Tool, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("catalog service not configured")
	}
	return s.Repo.ListByCategory(ctx, strings.TrimSpace(category))
}

// Get returns a single tool by slug.
func (s *Service) Get(ctx context.Context, slug string) (Tool, error) {
	if s == nil || s.Repo == nil {
		return Tool{}, errors.New("catalog service not configured")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Tool{}, ErrInvalidInput
	}
	return s.Repo.GetBySlug(ctx, slug)
}
