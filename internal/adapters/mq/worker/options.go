// Package worker delivers queued publications to a sink, one at a time.
package worker

import (
	"time"

	"github.com/okian/matchup/internal/domain/dedupe"
	"github.com/okian/matchup/pkg/logger"
)

// Option applies a configuration option to the Dispatcher.
type Option func(*Dispatcher)

// WithName sets the dispatcher name for identification and logging.
func WithName(name string) Option {
	return func(d *Dispatcher) {
		if name != "" {
			d.name = name
		}
	}
}

// WithLogger sets a custom logger for the dispatcher.
func WithLogger(l logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSpacing sets the pause between two deliveries.
func WithSpacing(spacing time.Duration) Option {
	return func(d *Dispatcher) {
		if spacing >= 0 {
			d.spacing = spacing
		}
	}
}

// WithLedger sets the ledger that guards against duplicate posts.
func WithLedger(l dedupe.Ledger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.ledger = l
		}
	}
}
