package catalog

import "context"

// Repo defines persistence operations for the tool catalog.
type Repo interface {
	ListByCategory(ctx context.Context, category string) ([]Tool, error)
	GetBySlug(ctx context.Context, slug string) (Tool, error)
	Upsert(ctx context.Context, tool Tool) error
}
