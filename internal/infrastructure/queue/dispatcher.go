package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/api/metrics"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditSink consumes dispatched audit events.
type AuditSink interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the username, so per-user audit ordering is preserved while
// handlers never block on audit writes.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	sink    AuditSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink AuditSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an audit event on the worker responsible for its username.
// When the worker's buffer is full the event is dropped rather than blocking
// the authentication path.
func (d *Dispatcher) Record(event domain.AuditEvent) {
	i := d.shardIndex(event.Username)
	select {
	case d.workers[i] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		d.log.Warn().Str("username", event.Username).Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a username deterministically to a worker index.
func (d *Dispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.sink.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("username", event.Username).
					Int("worker_id", id).
					Msg("audit event processing failed")
			}
		}
	}
}
