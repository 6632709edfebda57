package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, saved SavedProfile) error {
	payload, err := json.Marshal(saved.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	const query = `
INSERT INTO saved_profiles (user_id, name, profile, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (user_id, name) DO UPDATE SET
  profile = EXCLUDED.profile,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query, saved.UserID, saved.Name, payload)
	return err
}

func (r *PGRepo) GetByName(ctx context.Context, userID, name string) (SavedProfile, error) {
	const query = `
SELECT user_id, name, profile, created_at, updated_at
FROM saved_profiles
WHERE user_id = $1 AND name = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID, name)
	saved, err := scanSavedProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SavedProfile{}, ErrNotFound
		}
		return SavedProfile{}, err
	}
	return saved, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]SavedProfile, error) {
	const query = `
SELECT user_id, name, profile, created_at, updated_at
FROM saved_profiles
WHERE user_id = $1
ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved profiles: %w", err)
	}
	defer rows.Close()

	var out []SavedProfile
	for rows.Next() {
		saved, err := scanSavedProfile(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, userID, name string) error {
	const query = `DELETE FROM saved_profiles WHERE user_id = $1 AND name = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSavedProfile(scan func(dest ...any) error) (SavedProfile, error) {
	var saved SavedProfile
	var payload []byte
	var updatedAt sql.NullTime
	if err := scan(&saved.UserID, &saved.Name, &payload, &saved.CreatedAt, &updatedAt); err != nil {
		return SavedProfile{}, err
	}
	if updatedAt.Valid {
		saved.UpdatedAt = updatedAt.Time
	} else {
		saved.UpdatedAt = time.Now().UTC()
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &saved.Profile); err != nil {
			return SavedProfile{}, fmt.Errorf("unmarshal profile %s/%s: %w", saved.UserID, saved.Name, err)
		}
	}
	return saved, nil
}
