package queue

import "errors"

// Sentinel kinds for outbox errors.
var (
	ErrClosed = errors.New("outbox closed")
	ErrFull   = errors.New("outbox full")
)
