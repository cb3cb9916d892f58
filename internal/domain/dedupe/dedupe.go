// Package dedupe tracks which ranking lists were already published for a
// slate date so a re-run never posts the same list twice.
package dedupe

import (
	"context"
	"sync"
)

// DefaultMaxSize bounds the ledger; a season has a few hundred slate dates
// and three lists per date.
const DefaultMaxSize = 4096

// Key identifies one publication: a list kind on a slate date.
type Key struct {
	Date string
	Kind string
}

// String renders the key as "<date>:<kind>".
func (k Key) String() string { return k.Date + ":" + k.Kind }

// Ledger records publications to ensure at-most-once delivery per key.
type Ledger interface {
	// Claim atomically records key. It returns false if key was already
	// claimed, true if the caller now owns it.
	Claim(ctx context.Context, key Key) bool

	// Release forgets key so a failed delivery can be retried.
	Release(ctx context.Context, key Key)

	// Claimed reports whether key is recorded.
	Claimed(key Key) bool

	Size() int
}

// inMemoryLedger keeps keys in insertion order and evicts the oldest once
// maxSize is reached. maxSize <= 0 means unbounded.
type inMemoryLedger struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string
	maxSize int
}

// NewInMemoryLedger creates an in-memory ledger.
func NewInMemoryLedger(opts ...Option) Ledger {
	l := &inMemoryLedger{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(l)
	}
	l.seen = make(map[string]struct{})
	return l
}

func (l *inMemoryLedger) Claim(_ context.Context, key Key) bool {
	id := key.String()

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[id]; ok {
		return false
	}
	if l.maxSize > 0 && len(l.order) >= l.maxSize {
		oldest := l.order[0]
		l.order = l.order[1:]
		delete(l.seen, oldest)
	}
	l.seen[id] = struct{}{}
	l.order = append(l.order, id)
	return true
}

func (l *inMemoryLedger) Release(_ context.Context, key Key) {
	id := key.String()

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[id]; !ok {
		return
	}
	delete(l.seen, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *inMemoryLedger) Claimed(key Key) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.seen[key.String()]
	return ok
}

func (l *inMemoryLedger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}
