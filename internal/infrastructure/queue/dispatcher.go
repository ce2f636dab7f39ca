package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nhutty0402/quanly-nhatro/internal/api/metrics"
	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher routes auth audit events to a fixed set of workers using
// consistent hashing on the phone number, guaranteeing per-account ordering
// in the audit trail.
type AuditDispatcher struct {
	workers []chan domain.AuthEvent
	service ports.AuditService
	log     zerolog.Logger
}

// NewAuditDispatcher creates an AuditDispatcher with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuthEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an event to the worker responsible for its phone number.
// Fire-and-forget: when the worker channel is full the event is dropped
// rather than blocking the login path.
func (d *AuditDispatcher) Record(event domain.AuthEvent) {
	idx := d.shardIndex(event.Phone)
	select {
	case d.workers[idx] <- event:
	default:
		d.log.Warn().Str("phone", event.Phone).Str("kind", string(event.Kind)).Msg("audit queue full, event dropped")
	}
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a phone number deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(phone string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(phone))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				metrics.AuditErrorsTotal.WithLabelValues("persist_failed").Inc()
				d.log.Error().Err(err).
					Str("phone", event.Phone).
					Int("worker_id", id).
					Msg("audit event processing failed")
			}
			metrics.AuditQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}
