// Package queue holds publications waiting for delivery.
package queue

import (
	"context"
	"sync"

	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/pkg/metrics"
)

// DefaultCapacity holds several days of lists.
const DefaultCapacity = 64

// Message is the payload flowing through the outbox.
type Message = model.Publication

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a message. It fails with ErrFull or ErrClosed without
	// blocking.
	Enqueue(ctx context.Context, m Message) error

	// Dequeue returns a channel that receives messages in enqueue order. The
	// channel is closed when the queue is closed and drained, or ctx is done.
	Dequeue(ctx context.Context) <-chan Message

	// Next blocks for the oldest message. It fails with ErrClosed once the
	// queue is closed and drained, or with ctx's error. A message is only
	// removed when it is returned.
	Next(ctx context.Context) (Message, error)

	// Len returns the current number of pending messages.
	Len() int

	// Close stops accepting messages; pending ones can still be drained.
	Close() error

	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	messages chan Message
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewInMemoryQueue creates a new in-memory outbox.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(q)
	}
	q.messages = make(chan Message, q.capacity)

	metrics.UpdateOutboxCapacity(q.capacity)
	metrics.UpdateOutboxSize(0)
	return q
}

// Enqueue adds a message to the outbox.
func (q *InMemoryQueue) Enqueue(ctx context.Context, m Message) error { //nolint:gocritic // hugeParam: value semantics for channel send
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordOutboxEnqueueError()
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		metrics.RecordOutboxEnqueueError()
		return err
	}

	select {
	case q.messages <- m:
		metrics.RecordOutboxEnqueue()
		metrics.UpdateOutboxSize(len(q.messages))
		return nil
	default:
		metrics.RecordOutboxEnqueueError()
		return ErrFull
	}
}

// Dequeue returns a channel that will receive messages as they become available.
// A message already taken off the outbox when ctx ends is dropped; consumers
// that stop mid-stream should use Next.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan Message {
	out := make(chan Message)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-q.messages:
				if !ok {
					return
				}
				select {
				case out <- m:
					metrics.RecordOutboxDequeue()
					metrics.UpdateOutboxSize(len(q.messages))
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Next removes and returns the oldest message.
func (q *InMemoryQueue) Next(ctx context.Context) (Message, error) {
	if err := ctx.Err(); err != nil {
		return Message{}, err
	}
	select {
	case <-ctx.Done():
		return Message{}, ctx.Err()
	case m, ok := <-q.messages:
		if !ok {
			return Message{}, ErrClosed
		}
		metrics.RecordOutboxDequeue()
		metrics.UpdateOutboxSize(len(q.messages))
		return m, nil
	}
}

// Len returns the current number of pending messages.
func (q *InMemoryQueue) Len() int {
	size := len(q.messages)
	metrics.UpdateOutboxSize(size)
	return size
}

// Close stops the outbox. It is safe to call more than once.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.messages)
	q.closed = true
	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
