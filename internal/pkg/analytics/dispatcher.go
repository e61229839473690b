package analytics

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// DefaultDeliveryTimeout bounds a single Deliver call.
const DefaultDeliveryTimeout = 5 * time.Second

// AsyncDispatcher delivers events on a bounded worker pool.
// Dispatch never blocks: when every worker is busy the event is dropped
// and counted.
type AsyncDispatcher struct {
	sink    Sink
	pool    *ants.Pool
	logger  *zap.Logger
	timeout time.Duration

	delivered atomic.Int64
	dropped   atomic.Int64
	failed    atomic.Int64
}

// NewAsyncDispatcher creates a dispatcher with the given number of workers.
func NewAsyncDispatcher(sink Sink, workers int, logger *zap.Logger) (*AsyncDispatcher, error) {
	logger = logger.Named("analytics")
	pool, err := ants.NewPool(workers,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p any) {
			logger.Error("analytics sink panicked", zap.Any("panic", p))
		}),
	)
	if err != nil {
		return nil, err
	}

	return &AsyncDispatcher{
		sink:    sink,
		pool:    pool,
		logger:  logger,
		timeout: DefaultDeliveryTimeout,
	}, nil
}

// Dispatch queues e for delivery and reports whether it was accepted.
func (d *AsyncDispatcher) Dispatch(e Event) bool {
	err := d.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.sink.Deliver(ctx, e); err != nil {
			d.failed.Add(1)
			d.logger.Warn("analytics delivery failed", zap.String("event_id", e.ID), zap.Error(err))
			return
		}
		d.delivered.Add(1)
	})
	if err != nil {
		d.dropped.Add(1)
		if !errors.Is(err, ants.ErrPoolOverload) && !errors.Is(err, ants.ErrPoolClosed) {
			d.logger.Error("analytics submit failed", zap.Error(err))
		}
		return false
	}
	return true
}

// Stats reports delivered, failed and dropped event counts.
func (d *AsyncDispatcher) Stats() (delivered, failed, dropped int64) {
	return d.delivered.Load(), d.failed.Load(), d.dropped.Load()
}

// Close stops accepting events and waits up to timeout for in-flight
// deliveries to finish.
func (d *AsyncDispatcher) Close(timeout time.Duration) error {
	return d.pool.ReleaseTimeout(timeout)
}
