package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotFound     = errors.New("run not found")
	ErrInvalidLimit = errors.New("invalid limit")
	ErrNoRuns       = errors.New("no runs recorded")
)
