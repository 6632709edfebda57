package analytics

import (
	"time"

	"github.com/google/uuid"

	"toolintel-backend/internal/recommender"
)

// Event is an anonymized record of one recommendation submission.
// It carries profile facets only, never user identity.
type Event struct {
	ID         string          `json:"id"`
	Category   string          `json:"category"`
	TeamSize   string          `json:"teamSize"`
	Industry   string          `json:"industry"`
	Budget     string          `json:"budget"`
	Priorities []string        `json:"priorities"`
	Flags      map[string]bool `json:"flags"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// EventFromProfile projects a submitted profile into an analytics event.
func EventFromProfile(profile recommender.Profile) Event {
	return Event{
		ID:         uuid.NewString(),
		Category:   profile.Category,
		TeamSize:   profile.TeamSize,
		Industry:   profile.Industry,
		Budget:     profile.Budget,
		Priorities: append([]string(nil), profile.Priorities...),
		Flags: map[string]bool{
			"sensitiveData":   profile.SensitiveData,
			"apiAccess":       profile.APIAccess,
			"supportCritical": profile.SupportCritical,
		},
		CreatedAt: time.Now().UTC(),
	}
}
