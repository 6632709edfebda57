package analytics

import "context"

// Store persists analytics events.
type Store interface {
	Insert(ctx context.Context, event Event) error
}
