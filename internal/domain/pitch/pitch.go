// Package pitch defines the pitch-type catalogue shared by arsenals and
// batter statistics.
package pitch

import (
	"sort"
	"strings"
)

// Type is a Statcast pitch-type code, e.g. "FF" or "SL".
type Type string

// Known pitch types.
const (
	FourSeam    Type = "FF"
	Sinker      Type = "SI"
	Cutter      Type = "FC"
	Slider      Type = "SL"
	Changeup    Type = "CH"
	Curveball   Type = "CU"
	Sweeper     Type = "ST"
	Splitter    Type = "FS"
	Knuckleball Type = "KN"
	Slurve      Type = "SV"
)

// Family groups pitch types by how they move.
type Family string

// Pitch families.
const (
	FamilyFastball Family = "fastball"
	FamilyBreaking Family = "breaking"
	FamilyOffspeed Family = "offspeed"
)

// Mix labels returned by DescribeMix.
const (
	MixFastballHeavy = "fastball-heavy mix"
	MixBreakingHeavy = "breaking-heavy mix"
	MixChangeupHeavy = "changeup-heavy mix"
	MixMixed         = "mixed arsenal"
)

type info struct {
	name   string
	family Family
}

var catalogue = map[Type]info{ //nolint:gochecknoglobals // read-only lookup table
	FourSeam:    {"Four-Seam", FamilyFastball},
	Sinker:      {"Sinker", FamilyFastball},
	Cutter:      {"Cutter", FamilyFastball},
	Slider:      {"Slider", FamilyBreaking},
	Changeup:    {"Changeup", FamilyOffspeed},
	Curveball:   {"Curveball", FamilyBreaking},
	Sweeper:     {"Sweeper", FamilyBreaking},
	Splitter:    {"Splitter", FamilyOffspeed},
	Knuckleball: {"Knuckleball", FamilyOffspeed},
	Slurve:      {"Slurve", FamilyBreaking},
}

// order is the column order used by the arsenal leaderboard.
var order = []Type{FourSeam, Sinker, Cutter, Slider, Changeup, Curveball, Sweeper, Splitter, Knuckleball, Slurve} //nolint:gochecknoglobals // read-only

// All returns every known pitch type in leaderboard order.
func All() []Type {
	out := make([]Type, len(order))
	copy(out, order)
	return out
}

// Parse converts a code such as "ff" or " SL " into a Type.
func Parse(code string) (Type, bool) {
	t := Type(strings.ToUpper(strings.TrimSpace(code)))
	_, ok := catalogue[t]
	return t, ok
}

// Known reports whether t is in the catalogue.
func (t Type) Known() bool {
	_, ok := catalogue[t]
	return ok
}

// Name returns the display name, or the raw code for unknown types.
func (t Type) Name() string {
	if i, ok := catalogue[t]; ok {
		return i.name
	}
	return string(t)
}

// Family returns the pitch family. Unknown codes are treated as offspeed.
func (t Type) Family() Family {
	if i, ok := catalogue[t]; ok {
		return i.family
	}
	return FamilyOffspeed
}

// Abbr returns the lower-case code used in leaderboard column names.
func (t Type) Abbr() string { return strings.ToLower(string(t)) }

// Usage pairs a pitch type with its share of a pitcher's mix.
type Usage struct {
	Type Type
	Rate float64
}

// DescribeMix labels an arsenal by its two most-used pitches.
func DescribeMix(usages []Usage) string {
	if len(usages) < 2 {
		return MixMixed
	}
	sorted := make([]Usage, len(usages))
	copy(sorted, usages)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rate > sorted[j].Rate })

	f1, f2 := sorted[0].Type.Family(), sorted[1].Type.Family()
	switch {
	case f1 == FamilyFastball && f2 == FamilyFastball:
		return MixFastballHeavy
	case f1 == FamilyBreaking || f2 == FamilyBreaking:
		return MixBreakingHeavy
	case f1 == FamilyOffspeed || f2 == FamilyOffspeed:
		return MixChangeupHeavy
	default:
		return MixMixed
	}
}
