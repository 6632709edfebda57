package analytics

import (
	"context"
	"time"

	"toolintel-backend/internal/recommender"
	"toolintel-backend/internal/shared/metrics"
	"toolintel-backend/internal/shared/telemetry"
)

const (
	defaultBufferSize = 256
	insertTimeout     = 5 * time.Second
)

// AsyncSink records submissions without ever blocking the request path.
// Events go through a buffered channel to a single drain goroutine; a
// full buffer drops the event and bumps a counter.
type AsyncSink struct {
	store  Store
	events chan Event
	done   chan struct{}
}

// NewAsyncSink starts the drain goroutine and returns the sink.
func NewAsyncSink(store Store) *AsyncSink {
	s := &AsyncSink{
		store:  store,
		events: make(chan Event, defaultBufferSize),
		done:   make(chan struct{}),
	}
	go s.drain()
	return s
}

// RecordSubmission queues an anonymized event. Never blocks.
func (s *AsyncSink) RecordSubmission(profile recommender.Profile) {
	event := EventFromProfile(profile)
	select {
	case s.events <- event:
	default:
		metrics.IncAnalyticsDropped()
		telemetry.Warn("analytics.dropped", map[string]any{
			"category": event.Category,
			"reason":   "buffer full",
		})
	}
}

// Close stops accepting events and waits for the buffer to flush.
func (s *AsyncSink) Close() {
	close(s.events)
	<-s.done
}

func (s *AsyncSink) drain() {
	defer close(s.done)
	for event := range s.events {
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		err := s.store.Insert(ctx, event)
		cancel()
		if err != nil {
			telemetry.Error("analytics.insert_failed", map[string]any{
				"event_id": event.ID,
				"error":    err.Error(),
			})
			continue
		}
		metrics.IncAnalyticsRecorded()
	}
}
