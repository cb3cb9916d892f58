package scoring

import "errors"

// Sentinel kinds for scoring outcomes that callers count as missing.
var (
	// ErrNoArsenal means the pitcher has no usable arsenal to weight against.
	ErrNoArsenal = errors.New("pitcher has no arsenal")
	// ErrNoOverlap means no pitch type carries both usage and batter data.
	ErrNoOverlap = errors.New("no overlapping pitch data")
)
