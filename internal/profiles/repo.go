package profiles

import "context"

// Repo defines persistence operations for saved buyer profiles.
type Repo interface {
	Upsert(ctx context.Context, saved SavedProfile) error
	GetByName(ctx context.Context, userID, name string) (SavedProfile, error)
	ListByUser(ctx context.Context, userID string) ([]SavedProfile, error)
	Delete(ctx context.Context, userID, name string) error
}
