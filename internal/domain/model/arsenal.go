// Package model contains domain models passed between layers.
package model

import (
	"sort"

	"github.com/okian/matchup/internal/domain/pitch"
)

// ArsenalEntry is one pitch type in a pitcher's normalized arsenal.
type ArsenalEntry struct {
	PitchType       pitch.Type `json:"pitch_type"`
	Name            string     `json:"name"`
	AverageVelocity float64    `json:"avg_speed"`
	UsageRate       float64    `json:"usage_rate"` // fraction in [0,1]
}

// PitcherArsenal maps pitch types to entries for one pitcher. It is rebuilt
// on every run and never persisted.
type PitcherArsenal struct {
	Pitcher string                      `json:"pitcher"`
	Entries map[pitch.Type]ArsenalEntry `json:"pitches"`
}

// Len returns the number of pitch types.
func (a PitcherArsenal) Len() int { return len(a.Entries) }

// Empty reports whether the arsenal has no qualifying pitch types.
func (a PitcherArsenal) Empty() bool { return len(a.Entries) == 0 }

// Entry returns the entry for t.
func (a PitcherArsenal) Entry(t pitch.Type) (ArsenalEntry, bool) {
	e, ok := a.Entries[t]
	return e, ok
}

// TotalUsage sums usage rates; 1.0 for a normalized, non-empty arsenal.
func (a PitcherArsenal) TotalUsage() float64 {
	var total float64
	for _, t := range a.Types() {
		total += a.Entries[t].UsageRate
	}
	return total
}

// Types returns pitch types ordered by usage, most used first. Equal usage
// falls back to code order so the result is deterministic.
func (a PitcherArsenal) Types() []pitch.Type {
	out := make([]pitch.Type, 0, len(a.Entries))
	for t := range a.Entries {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		ui, uj := a.Entries[out[i]].UsageRate, a.Entries[out[j]].UsageRate
		if ui != uj {
			return ui > uj
		}
		return out[i] < out[j]
	})
	return out
}

// Usages returns the usage distribution in Types order.
func (a PitcherArsenal) Usages() []pitch.Usage {
	types := a.Types()
	out := make([]pitch.Usage, len(types))
	for i, t := range types {
		out[i] = pitch.Usage{Type: t, Rate: a.Entries[t].UsageRate}
	}
	return out
}

// Mix returns the arsenal mix label.
func (a PitcherArsenal) Mix() string { return pitch.DescribeMix(a.Usages()) }
