package scoring

import "math"

// Calibration bounds. Averages are fractions, rates are fractions of 1 after
// the percentage inputs are divided by 100.
const (
	battingAverageFloor = 0.200
	battingAverageSpan  = 0.150
	whiffCeiling        = 0.40
	whiffSpan           = 0.30
	strikeoutCeiling    = 0.35
	strikeoutSpan       = 0.25
	hardHitFloor        = 0.25
	hardHitSpan         = 0.25

	maxSubScore = 100
	percent     = 100
)

// Composite weights; they sum to 1.
const (
	WeightBattingAverage = 0.35
	WeightWhiff          = 0.25
	WeightStrikeout      = 0.25
	WeightHardHit        = 0.15
)

// SubScores are the 0-100 components of the composite score.
type SubScores struct {
	BattingAverage float64
	Whiff          float64
	Strikeout      float64
	HardHit        float64
}

// Rescale maps weighted metrics onto 0-100 sub-scores, higher meaning better
// for the batter. whiff, strikeout and hardHit are percentages.
func Rescale(battingAverage, whiff, strikeout, hardHit float64) SubScores {
	return SubScores{
		BattingAverage: clamp((battingAverage - battingAverageFloor) / battingAverageSpan * maxSubScore),
		Whiff:          clamp((whiffCeiling - whiff/percent) / whiffSpan * maxSubScore),
		Strikeout:      clamp((strikeoutCeiling - strikeout/percent) / strikeoutSpan * maxSubScore),
		HardHit:        clamp((hardHit/percent - hardHitFloor) / hardHitSpan * maxSubScore),
	}
}

// Total combines the sub-scores with the fixed weights.
func (s SubScores) Total() float64 {
	return s.BattingAverage*WeightBattingAverage +
		s.Whiff*WeightWhiff +
		s.Strikeout*WeightStrikeout +
		s.HardHit*WeightHardHit
}

// Composite returns the 0-100 matchup score for the weighted metrics.
func Composite(battingAverage, whiff, strikeout, hardHit float64) float64 {
	return Rescale(battingAverage, whiff, strikeout, hardHit).Total()
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(maxSubScore, v))
}
