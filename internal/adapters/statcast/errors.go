package statcast

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for table errors.
var (
	ErrInputShape = errors.New("malformed input table")
	ErrNotFound   = errors.New("player not found")
)

// InputShapeError describes a table that violates the expected column
// contract. It aborts the run.
type InputShapeError struct {
	Table   string
	Missing []string // required columns not present in the header
	Row     int      // 1-based data row, 0 for header problems
	Column  string
	Detail  string
}

func (e *InputShapeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s table: %s", e.Table, ErrInputShape.Error())
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ": missing columns [%s]", strings.Join(e.Missing, ", "))
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, ": row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

// Unwrap lets callers match with errors.Is(err, ErrInputShape).
func (e *InputShapeError) Unwrap() error { return ErrInputShape }
