// Package scoring computes usage-weighted matchup metrics for a batter against
// a pitcher's arsenal, the composite matchup score, and the reliability tier
// of the sample behind it.
package scoring

import (
	"fmt"
	"math"

	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/pitch"
	"github.com/okian/matchup/internal/domain/types"
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithThresholds sets the plate-appearance boundaries of the reliability tiers.
// Invalid pairs are ignored.
func WithThresholds(th Thresholds) Option {
	return func(s *Scorer) {
		if th.Valid() {
			s.thresholds = th
		}
	}
}

// Scorer bundles aggregation and classification. It holds no mutable state, so
// a single instance may be shared.
type Scorer struct {
	thresholds Thresholds
}

// NewScorer creates a Scorer with default thresholds.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{thresholds: DefaultThresholds()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Thresholds returns the configured reliability thresholds.
func (s *Scorer) Thresholds() Thresholds { return s.thresholds }

// Score aggregates the batter's stats against the arsenal and classifies the
// result. It returns ErrNoArsenal or ErrNoOverlap when nothing can be scored.
func (s *Scorer) Score(stats []model.PitchStat, ars model.PitcherArsenal) (model.WeightedMatchupResult, model.Reliability, error) {
	res, err := Aggregate(stats, ars)
	if err != nil {
		return model.WeightedMatchupResult{}, model.ReliabilityLow, err
	}
	return res, Classify(res.TotalPlateAppearances, s.thresholds), nil
}

// Aggregate computes the usage-weighted metrics of stats against ars.
//
// Only pitch types present in both inputs with at least one of the four scored
// metrics contribute. Within a contributing pitch type a null metric counts as
// zero in the numerator; its usage still counts in the denominator. Expected
// average and slugging are weighted over the pitch types where they are present.
// The first record per pitch type wins.
func Aggregate(stats []model.PitchStat, ars model.PitcherArsenal) (model.WeightedMatchupResult, error) {
	if ars.Empty() {
		return model.WeightedMatchupResult{}, fmt.Errorf("%s: %w", ars.Pitcher, ErrNoArsenal)
	}

	var (
		ba, whiff, k, hardHit float64
		estNum, estDen        float64
		slgNum, slgDen        float64
		total                 float64
		pa                    int
		contributions         []model.PitchContribution
	)
	seen := make(map[pitch.Type]struct{}, len(stats))

	for _, st := range stats {
		if _, dup := seen[st.PitchType]; dup {
			continue
		}
		entry, ok := ars.Entry(st.PitchType)
		if !ok || !st.HasScoredMetric() {
			continue
		}
		seen[st.PitchType] = struct{}{}

		usage := entry.UsageRate
		ba += st.BattingAverage.OrZero() * usage
		whiff += st.WhiffRate.OrZero() * usage
		k += st.StrikeoutRate.OrZero() * usage
		hardHit += st.HardHitRate.OrZero() * usage
		total += usage
		pa += st.PlateAppearances

		if v, ok := st.EstimatedBattingAverage.Get(); ok {
			estNum += v * usage
			estDen += usage
		}
		if v, ok := st.Slugging.Get(); ok {
			slgNum += v * usage
			slgDen += usage
		}

		contributions = append(contributions, model.PitchContribution{
			PitchType:            st.PitchType,
			PitchName:            entry.Name,
			UsageRate:            usage,
			BattingAverage:       st.BattingAverage,
			WhiffRate:            st.WhiffRate,
			StrikeoutRate:        st.StrikeoutRate,
			HardHitRate:          st.HardHitRate,
			PlateAppearances:     st.PlateAppearances,
			WeightedContribution: st.BattingAverage.OrZero() * usage,
		})
	}

	if total <= 0 {
		return model.WeightedMatchupResult{}, fmt.Errorf("%s: %w", ars.Pitcher, ErrNoOverlap)
	}

	res := model.WeightedMatchupResult{
		WeightedBattingAverage:          ba / total,
		WeightedEstimatedBattingAverage: weighted(estNum, estDen),
		WeightedSlugging:                weighted(slgNum, slgDen),
		WeightedWhiffRate:               whiff / total,
		WeightedStrikeoutRate:           k / total,
		WeightedHardHitRate:             hardHit / total,
		ArsenalCoverage:                 math.Min(1, total),
		TotalPlateAppearances:           pa,
		PerPitchContributions:           contributions,
	}
	res.CompositeScore = Composite(res.WeightedBattingAverage, res.WeightedWhiffRate, res.WeightedStrikeoutRate, res.WeightedHardHitRate)
	return res, nil
}

func weighted(num, den float64) types.Stat {
	if den <= 0 {
		return types.None()
	}
	return types.Some(num / den)
}
