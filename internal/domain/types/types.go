// Package types contains common types used across the application
package types

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// Stat is a statistic that may be absent in the source data. An absent value
// means "no data" and is distinct from zero.
type Stat struct {
	value float64
	valid bool
}

// Some returns a present statistic.
func Some(v float64) Stat { return Stat{value: v, valid: true} }

// None returns an absent statistic.
func None() Stat { return Stat{} }

// FromPtr converts a nullable pointer into a Stat.
func FromPtr(p *float64) Stat {
	if p == nil {
		return None()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (s Stat) Get() (float64, bool) { return s.value, s.valid }

// Valid reports whether the statistic is present.
func (s Stat) Valid() bool { return s.valid }

// OrZero returns the value, or 0 when absent.
func (s Stat) OrZero() float64 { return s.Or(0) }

// Or returns the value, or fallback when absent.
func (s Stat) Or(fallback float64) float64 {
	if !s.valid {
		return fallback
	}
	return s.value
}

// String renders the value or "null".
func (s Stat) String() string {
	if !s.valid {
		return "null"
	}
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}

// MarshalJSON encodes an absent statistic as null.
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON decodes null as an absent statistic.
func (s *Stat) UnmarshalJSON(b []byte) error {
	var p *float64
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = FromPtr(p)
	return nil
}
