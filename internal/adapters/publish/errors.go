package publish

import "errors"

// Sentinel kinds for publishing errors.
var (
	ErrPublish     = errors.New("publish failed")
	ErrRateLimited = errors.New("rate limited")
)
