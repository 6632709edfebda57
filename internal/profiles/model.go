package profiles

import (
	"time"

	"toolintel-backend/internal/recommender"
)

// SavedProfile is a buyer's saved intake, keyed by user+name so it can be
// re-run later.
type SavedProfile struct {
	UserID    string
	Name      string
	Profile   recommender.Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}
