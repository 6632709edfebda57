package shares

import (
	"time"

	"toolintel-backend/internal/recommender"
)

// shareTTL bounds how long a shared snapshot stays retrievable.
const shareTTL = 90 * 24 * time.Hour

// Share is an immutable snapshot of a recommendation run.
type Share struct {
	ID             string              `json:"shareId"`
	Profile        recommender.Profile `json:"profile"`
	Recommendation recommender.Result  `json:"recommendation"`
	CreatedAt      time.Time           `json:"createdAt"`
	ExpiresAt      time.Time           `json:"expiresAt"`
}
