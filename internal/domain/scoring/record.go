package scoring

import (
	"math"

	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/types"
)

// Record flattens a result into the serializable matchup record. Averages are
// rounded to 3 places, percentages and the score to 1, coverage to 2.
func Record(res model.WeightedMatchupResult, tier model.Reliability, batter, team, pitcher string) model.Matchup {
	return model.Matchup{
		Batter:           batter,
		Team:             team,
		VsPitcher:        pitcher,
		WeightedAvgBA:    Round(res.WeightedBattingAverage, 3),
		WeightedEstBA:    roundStat(res.WeightedEstimatedBattingAverage, 3),
		WeightedSlugging: roundStat(res.WeightedSlugging, 3),
		WeightedWhiff:    Round(res.WeightedWhiffRate, 1),
		WeightedKRate:    Round(res.WeightedStrikeoutRate, 1),
		WeightedHardHit:  Round(res.WeightedHardHitRate, 1),
		MatchupScore:     Round(res.CompositeScore, 1),
		ArsenalCoverage:  Round(res.ArsenalCoverage, 2),
		TotalPA:          res.TotalPlateAppearances,
		Reliability:      tier,
		PitchBreakdown:   res.PerPitchContributions,
	}
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func roundStat(s types.Stat, places int) types.Stat {
	v, ok := s.Get()
	if !ok {
		return s
	}
	return types.Some(Round(v, places))
}
