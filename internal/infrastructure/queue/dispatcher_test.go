package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
)

type collectingSink struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{}
	want   int
}

func newCollectingSink(want int) *collectingSink {
	return &collectingSink{done: make(chan struct{}), want: want}
}

func (s *collectingSink) Process(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	sink := newCollectingSink(3)
	d := NewDispatcher(2, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.AuditEvent{Username: "alice", Action: domain.AuditActionLogin, Success: true})
	d.Record(domain.AuditEvent{Username: "bob", Action: domain.AuditActionLogin, Success: false})
	d.Record(domain.AuditEvent{Username: "alice", Action: domain.AuditActionRegister, Success: true})

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("events not processed in time")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(sink.events))
	}
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	sink := newCollectingSink(10)
	d := NewDispatcher(4, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Record(domain.AuditEvent{
			Username:  "alice",
			Action:    domain.AuditActionLogin,
			Success:   i%2 == 0,
			Timestamp: time.Unix(int64(i), 0),
		})
	}

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("events not processed in time")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	for i, e := range sink.events {
		if e.Timestamp.Unix() != int64(i) {
			t.Fatalf("per-user ordering broken at index %d: %v", i, e.Timestamp)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, newCollectingSink(0), zerolog.Nop())

	a := d.shardIndex("alice")
	for i := 0; i < 100; i++ {
		if d.shardIndex("alice") != a {
			t.Fatalf("shard index not stable")
		}
	}
}
