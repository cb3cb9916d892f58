package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/matchup/internal/domain/dedupe"
	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/pkg/logger"
	"github.com/okian/matchup/pkg/metrics"
)

// DefaultSpacing is the pause between two posts.
const DefaultSpacing = 60 * time.Second

// Message is what the dispatcher reads off the outbox.
type Message = model.Publication

// Queue defines how the dispatcher receives messages.
type Queue interface {
	Next(ctx context.Context) (Message, error)
}

// Sink delivers one publication.
type Sink interface {
	Publish(ctx context.Context, m Message) error
}

// Dispatcher drains the outbox into a sink. Deliveries are serial and spaced;
// a list already published for its slate date is skipped.
type Dispatcher struct {
	queue   Queue
	sink    Sink
	ledger  dedupe.Ledger
	name    string
	spacing time.Duration

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewDispatcher creates a dispatcher with configuration options.
func NewDispatcher(q Queue, sink Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		queue:    q,
		sink:     sink,
		name:     "dispatcher",
		spacing:  DefaultSpacing,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.ledger == nil {
		d.ledger = dedupe.NewInMemoryLedger()
	}
	if d.logger == nil {
		d.logger = logger.Get().Named(d.name)
	}
	return d
}

// Run delivers messages until ctx is cancelled, Shutdown is called, or the
// queue closes.
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)

	// Shutdown cancels the pending receive so no message is taken off the
	// outbox that will not be delivered.
	recvCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-d.shutdown:
			cancel()
		case <-recvCtx.Done():
		}
	}()

	var last time.Time
	for {
		if !last.IsZero() && !d.wait(ctx, time.Until(last.Add(d.spacing))) {
			return
		}
		m, err := d.queue.Next(recvCtx)
		if err != nil {
			return
		}
		if d.deliver(ctx, m) {
			last = time.Now()
		}
	}
}

// wait blocks for dur. It reports false if the dispatcher was stopped first.
func (d *Dispatcher) wait(ctx context.Context, dur time.Duration) bool {
	if dur <= 0 {
		return true
	}
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	case <-d.shutdown:
		return false
	}
}

// deliver publishes m once per ledger key. It reports whether the sink was
// called.
func (d *Dispatcher) deliver(ctx context.Context, m Message) bool { //nolint:gocritic // hugeParam: value from channel
	key := dedupe.Key{Date: m.Date, Kind: string(m.Kind)}
	if !d.ledger.Claim(ctx, key) {
		metrics.RecordPublication(string(m.Kind), metrics.StatusSkipped)
		d.logger.Info(ctx, "list already published", logger.String("key", key.String()))
		return false
	}

	start := time.Now()
	err := d.sink.Publish(ctx, m)
	metrics.RecordPublishLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		d.ledger.Release(ctx, key)
		metrics.RecordPublication(string(m.Kind), metrics.StatusFailure)
		d.logger.Error(ctx, "publication failed",
			logger.String("key", key.String()),
			logger.Error(fmt.Errorf("publish %s: %w", key, err)),
		)
		return true
	}

	metrics.RecordPublication(string(m.Kind), metrics.StatusSuccess)
	d.logger.Info(ctx, "list published",
		logger.String("key", key.String()),
		logger.Int("entries", m.Len()),
	)
	return true
}

// Shutdown stops the dispatcher and waits for the current delivery.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	select {
	case <-d.shutdown:
	default:
		close(d.shutdown)
	}

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		d.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// Done is closed when Run returns.
func (d *Dispatcher) Done() <-chan struct{} { return d.done }
