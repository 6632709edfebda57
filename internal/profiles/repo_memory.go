package profiles

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]SavedProfile
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]SavedProfile)}
}

func key(userID, name string) string {
	return userID + "|" + name
}

func (r *MemoryRepo) Upsert(ctx context.Context, saved SavedProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.items[key(saved.UserID, saved.Name)]; ok {
		saved.CreatedAt = existing.CreatedAt
	} else {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now
	r.items[key(saved.UserID, saved.Name)] = saved
	return nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, userID, name string) (SavedProfile, error) {
	if err := ctx.Err(); err != nil {
		return SavedProfile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	saved, ok := r.items[key(userID, name)]
	if !ok {
		return SavedProfile{}, ErrNotFound
	}
	return saved, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]SavedProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []SavedProfile
	for _, saved := range r.items {
		if saved.UserID == userID {
			out = append(out, saved)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[key(userID, name)]; !ok {
		return ErrNotFound
	}
	delete(r.items, key(userID, name))
	return nil
}
