package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PGStore struct {
	DB *sql.DB
}

func (s *PGStore) Insert(ctx context.Context, event Event) error {
	priorities, err := json.Marshal(event.Priorities)
	if err != nil {
		return fmt.Errorf("marshal priorities: %w", err)
	}
	flags, err := json.Marshal(event.Flags)
	if err != nil {
		return fmt.Errorf("marshal flags: %w", err)
	}
	const query = `
INSERT INTO analytics_events (id, category, team_size, industry, budget, priorities, flags, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = s.DB.ExecContext(ctx, query,
		event.ID, event.Category, event.TeamSize, event.Industry, event.Budget,
		priorities, flags, event.CreatedAt)
	return err
}
