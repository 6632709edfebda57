package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"toolintel-backend/internal/recommender"
)

type failingStore struct{}

func (failingStore) Insert(ctx context.Context, event Event) error {
	return errors.New("insert failed")
}

func TestAsyncSinkRecordsEvents(t *testing.T) {
	store := NewMemoryStore()
	sink := NewAsyncSink(store)

	sink.RecordSubmission(recommender.Profile{
		Category:      "writing",
		Budget:        "10to25",
		Priorities:    []string{"core_ai"},
		SensitiveData: true,
	})
	sink.Close()

	events := store.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	event := events[0]
	if event.Category != "writing" || event.Budget != "10to25" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if !event.Flags["sensitiveData"] || event.Flags["apiAccess"] {
		t.Fatalf("flags mismatch: %+v", event.Flags)
	}
	if event.ID == "" {
		t.Fatalf("event must carry an id")
	}
}

func TestAsyncSinkSwallowsStoreErrors(t *testing.T) {
	sink := NewAsyncSink(failingStore{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			sink.RecordSubmission(recommender.Profile{Category: "coding"})
		}
		sink.Close()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("RecordSubmission must never block the caller")
	}
}

func TestAsyncSinkDropsWhenBufferFull(t *testing.T) {
	// A sink with no drain consumer: fill the channel directly.
	s := &AsyncSink{
		store:  NewMemoryStore(),
		events: make(chan Event, 1),
		done:   make(chan struct{}),
	}

	s.RecordSubmission(recommender.Profile{Category: "a"})

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.RecordSubmission(recommender.Profile{Category: "b"})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("a full buffer must drop, not block")
	}
}

func TestEventEncodingRoundTrip(t *testing.T) {
	event := EventFromProfile(recommender.Profile{
		Category:        "image",
		TeamSize:        "mid",
		Industry:        "Retail",
		Budget:          "25to50",
		Priorities:      []string{"innovation", "pricing"},
		APIAccess:       true,
		SupportCritical: true,
	})

	body, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}
	decoded, err := DecodeEvent(body)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if decoded.ID != event.ID || decoded.Category != "image" {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	if len(decoded.Priorities) != 2 || !decoded.Flags["apiAccess"] {
		t.Fatalf("payload mismatch: %+v", decoded)
	}
}
