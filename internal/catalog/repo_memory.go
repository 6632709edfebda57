package catalog

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{tools: make(map[string]Tool)}
}

func (r *MemoryRepo) ListByCategory(ctx context.Context, category string) ([]Tool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Tool
	for _, tool := range r.tools {
		if category == "" || tool.Category == category {
			out = append(out, tool)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (r *MemoryRepo) GetBySlug(ctx context.Context, slug string) (Tool, error) {
	if err := ctx.Err(); err != nil {
		return Tool{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[slug]
	if !ok {
		return Tool{}, ErrNotFound
	}
	return tool, nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, tool Tool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.tools[tool.Slug]; ok {
		tool.CreatedAt = existing.CreatedAt
	} else {
		tool.CreatedAt = now
	}
	tool.UpdatedAt = now
	r.tools[tool.Slug] = tool
	return nil
}
