package catalog

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

func (r *PGRepo) ListByCategory(ctx context.Context, category string) ([]Tool, error) {
	const query = `
SELECT slug, name, category, verdict, scores, price_per_user, created_at, updated_at
FROM tools
WHERE category = $1 OR $1 = ''
ORDER BY slug`
	rows, err := r.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()

	var out []Tool
	for rows.Next() {
		tool, err := scanTool(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, tool)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (Tool, error) {
	const query = `
SELECT slug, name, category, verdict, scores, price_per_user, created_at, updated_at
FROM tools
WHERE slug = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, slug)
	tool, err := scanTool(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tool{}, ErrNotFound
		}
		return Tool{}, err
	}
	return tool, nil
}

func (r *PGRepo) Upsert(ctx context.Context, tool Tool) error {
	scoresJSON, err := json.Marshal(tool.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	const query = `
INSERT INTO tools (slug, name, category, verdict, scores, price_per_user, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
ON CONFLICT (slug) DO UPDATE SET
  name = EXCLUDED.name,
  category = EXCLUDED.category,
  verdict = EXCLUDED.verdict,
  scores = EXCLUDED.scores,
  price_per_user = EXCLUDED.price_per_user,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query,
		tool.Slug,
		tool.Name,
		tool.Category,
		tool.Verdict,
		scoresJSON,
		tool.PricePerUser,
	)
	return err
}

func scanTool(scan func(dest ...any) error) (Tool, error) {
	var tool Tool
	var scoresJSON []byte
	var verdict sql.NullString
	var updatedAt sql.NullTime
	if err := scan(
		&tool.Slug,
		&tool.Name,
		&tool.Category,
		&verdict,
		&scoresJSON,
		&tool.PricePerUser,
		&tool.CreatedAt,
		&updatedAt,
	); err != nil {
		return Tool{}, err
	}
	if verdict.Valid {
		tool.Verdict = verdict.String
	}
	if updatedAt.Valid {
		tool.UpdatedAt = updatedAt.Time
	} else {
		tool.UpdatedAt = time.Now().UTC()
	}
	if len(scoresJSON) > 0 {
		if err := json.Unmarshal(scoresJSON, &tool.Scores); err != nil {
			return Tool{}, fmt.Errorf("unmarshal scores for %s: %w", tool.Slug, err)
		}
	}
	return tool, nil
}
