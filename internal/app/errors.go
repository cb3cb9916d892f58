package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrRunInProgress = errors.New("a scoring run is already in progress")
	ErrNoTables      = errors.New("no input tables configured")
)
