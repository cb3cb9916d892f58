package model

import (
	"github.com/okian/matchup/internal/domain/pitch"
	"github.com/okian/matchup/internal/domain/types"
)

// PitchStat is one batter's results against one pitch type. Averages are
// fractions; whiff, strikeout and hard-hit rates are percentages.
type PitchStat struct {
	PitchType               pitch.Type `json:"pitch_type"`
	BattingAverage          types.Stat `json:"ba"`
	EstimatedBattingAverage types.Stat `json:"est_ba"`
	Slugging                types.Stat `json:"slg"`
	HardHitRate             types.Stat `json:"hard_hit_percent"`
	WhiffRate               types.Stat `json:"whiff_percent"`
	StrikeoutRate           types.Stat `json:"k_percent"`
	PlateAppearances        int        `json:"pa"`
	PitchesSeen             int        `json:"pitches"`
}

// HasScoredMetric reports whether any of the four composite metrics is present.
func (s PitchStat) HasScoredMetric() bool {
	return s.BattingAverage.Valid() || s.WhiffRate.Valid() || s.StrikeoutRate.Valid() || s.HardHitRate.Valid()
}

// SeasonLine is a batter's full-season baseline.
type SeasonLine struct {
	PlateAppearances int        `json:"season_pa"`
	BattingAverage   types.Stat `json:"season_avg"`
	StrikeoutRate    types.Stat `json:"season_k_pct"`
}

// PitchContribution is one pitch type's share of a weighted matchup.
type PitchContribution struct {
	PitchType            pitch.Type `json:"pitch_type"`
	PitchName            string     `json:"pitch_name"`
	UsageRate            float64    `json:"usage_rate"`
	BattingAverage       types.Stat `json:"ba"`
	WhiffRate            types.Stat `json:"whiff_percent"`
	StrikeoutRate        types.Stat `json:"k_percent"`
	HardHitRate          types.Stat `json:"hard_hit_percent"`
	PlateAppearances     int        `json:"pa"`
	WeightedContribution float64    `json:"weighted_contribution"`
}

// WeightedMatchupResult is the usage-weighted view of a batter against one
// arsenal. ArsenalCoverage is the usage mass the composite represents.
type WeightedMatchupResult struct {
	WeightedBattingAverage          float64             `json:"weighted_batting_average"`
	WeightedEstimatedBattingAverage types.Stat          `json:"weighted_estimated_batting_average"`
	WeightedSlugging                types.Stat          `json:"weighted_slugging"`
	WeightedWhiffRate               float64             `json:"weighted_whiff_rate"`
	WeightedStrikeoutRate           float64             `json:"weighted_strikeout_rate"`
	WeightedHardHitRate             float64             `json:"weighted_hard_hit_rate"`
	ArsenalCoverage                 float64             `json:"arsenal_coverage"`
	CompositeScore                  float64             `json:"composite_score"`
	TotalPlateAppearances           int                 `json:"total_pa"`
	PerPitchContributions           []PitchContribution `json:"per_pitch_contributions"`
}

// Reliability is the confidence tier of a matchup's sample size.
type Reliability string

// Reliability tiers, ordered LOW < MEDIUM < HIGH.
const (
	ReliabilityLow    Reliability = "LOW"
	ReliabilityMedium Reliability = "MEDIUM"
	ReliabilityHigh   Reliability = "HIGH"
)

// Rank orders tiers for comparisons.
func (r Reliability) Rank() int {
	switch r {
	case ReliabilityHigh:
		return 2
	case ReliabilityMedium:
		return 1
	default:
		return 0
	}
}
