package shares

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("share not found")

// Store persists share snapshots until they expire.
type Store interface {
	Put(ctx context.Context, share Share) error
	Get(ctx context.Context, id string) (Share, error)
}
