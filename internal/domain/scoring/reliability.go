package scoring

import "github.com/okian/matchup/internal/domain/model"

// Default plate-appearance boundaries.
const (
	DefaultMediumPA = 10
	DefaultHighPA   = 50
)

// Thresholds are the plate-appearance boundaries between tiers: below MediumPA
// is LOW, below HighPA is MEDIUM, anything else HIGH.
type Thresholds struct {
	MediumPA int
	HighPA   int
}

// DefaultThresholds returns the 10/50 boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{MediumPA: DefaultMediumPA, HighPA: DefaultHighPA}
}

// Valid reports whether the thresholds are positive and ordered.
func (t Thresholds) Valid() bool {
	return t.MediumPA > 0 && t.HighPA > t.MediumPA
}

// Classify assigns a reliability tier to a plate-appearance total. It is
// advisory only and never excludes a matchup.
func Classify(totalPA int, th Thresholds) model.Reliability {
	switch {
	case totalPA >= th.HighPA:
		return model.ReliabilityHigh
	case totalPA >= th.MediumPA:
		return model.ReliabilityMedium
	default:
		return model.ReliabilityLow
	}
}
