package ranking

import (
	"sort"
	"strings"

	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/pitch"
)

// Defaults for the daily lists.
const (
	DefaultThreshold      = 5.0
	DefaultStrikeoutTopN  = 3
	DefaultBatterTopN     = 5
	DefaultLeagueKRate    = 22.5
	DefaultLeagueBA       = 0.250
	boostWeight           = 0.6
	expectedWeight        = 0.4
	averageToPoints       = 1000
	averageToPercentScale = 100
)

// LeagueAverages are the placeholders for batters missing season data.
// StrikeoutRate is a percentage, BattingAverage a fraction.
type LeagueAverages struct {
	StrikeoutRate  float64
	BattingAverage float64
}

// Selector builds the strikeout and hitter lists. Ties keep input order: game
// order, away pitcher before home, then lineup order.
type Selector struct {
	threshold              float64
	league                 LeagueAverages
	strikeoutTopN          int
	batterTopN             int
	excludeMissingBaseline bool
}

// NewSelector creates a Selector with default thresholds and placeholders.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		threshold:     DefaultThreshold,
		league:        LeagueAverages{StrikeoutRate: DefaultLeagueKRate, BattingAverage: DefaultLeagueBA},
		strikeoutTopN: DefaultStrikeoutTopN,
		batterTopN:    DefaultBatterTopN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select computes all three lists.
func (s *Selector) Select(reports []model.GameReport) model.Rankings {
	boosts := s.pitcherBoosts(reports)
	return model.Rankings{
		StrikeoutWatch: s.watch(boosts),
		StrikeoutFades: s.fades(boosts),
		HitterTargets:  s.HitterTargets(reports),
	}
}

// StrikeoutWatch returns pitchers whose opposing lineup strikes out at least
// threshold points more against their arsenal than over the season, biggest first.
func (s *Selector) StrikeoutWatch(reports []model.GameReport) []model.PitcherBoost {
	return s.watch(s.pitcherBoosts(reports))
}

// StrikeoutFades returns pitchers whose opposing lineup strikes out at least
// threshold points less against their arsenal, most negative first.
func (s *Selector) StrikeoutFades(reports []model.GameReport) []model.PitcherBoost {
	return s.fades(s.pitcherBoosts(reports))
}

func (s *Selector) watch(all []model.PitcherBoost) []model.PitcherBoost {
	out := make([]model.PitcherBoost, 0, len(all))
	for _, b := range all {
		if b.KBoost >= s.threshold {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].KBoost > out[j].KBoost })
	return head(out, s.strikeoutTopN)
}

func (s *Selector) fades(all []model.PitcherBoost) []model.PitcherBoost {
	out := make([]model.PitcherBoost, 0, len(all))
	for _, b := range all {
		if b.KBoost <= -s.threshold {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].KBoost < out[j].KBoost })
	return head(out, s.strikeoutTopN)
}

// pitcherBoosts computes the strikeout swing for every pitcher with an arsenal.
func (s *Selector) pitcherBoosts(reports []model.GameReport) []model.PitcherBoost {
	var out []model.PitcherBoost
	for _, r := range reports {
		sides := []struct {
			p        model.PitcherReport
			opponent string
		}{
			{r.Pitchers.Away, r.HomeTeam},
			{r.Pitchers.Home, r.AwayTeam},
		}
		for _, side := range sides {
			if !side.p.HasArsenal() {
				continue
			}
			season, arsenalK, n := s.LineupRates(r, side.p.Name)
			out = append(out, model.PitcherBoost{
				Pitcher:        DisplayName(side.p.Name),
				Opponent:       side.opponent,
				Game:           r.Matchup,
				LineupSeasonK:  season,
				LineupArsenalK: arsenalK,
				KBoost:         arsenalK - season,
				BattersScored:  n,
				ArsenalMix:     side.p.Arsenal.Mix(),
			})
		}
	}
	return out
}

// LineupRates returns the lineup's mean season strikeout rate, its mean
// weighted strikeout rate against the pitcher's arsenal, and the number of
// scored batters. With no scored batters both rates are the league placeholder.
func (s *Selector) LineupRates(r model.GameReport, pitcherName string) (season, arsenal float64, n int) {
	var seasonSum, arsenalSum float64
	var seasonN int
	for _, m := range r.KeyMatchups {
		if m.VsPitcher != pitcherName {
			continue
		}
		n++
		arsenalSum += m.WeightedKRate

		if m.Baseline != nil && m.Baseline.StrikeoutRate.Valid() {
			seasonSum += m.Baseline.StrikeoutRate.OrZero()
			seasonN++
			continue
		}
		if !s.excludeMissingBaseline {
			seasonSum += s.league.StrikeoutRate
			seasonN++
		}
	}

	if n == 0 {
		return s.league.StrikeoutRate, s.league.StrikeoutRate, 0
	}
	season = s.league.StrikeoutRate
	if seasonN > 0 {
		season = seasonSum / float64(seasonN)
	}
	return season, arsenalSum / float64(n), n
}

// HitterTargets ranks batters by 0.6*(xBA - season BA) + 0.4*(xBA*100).
// Batters without any season line are skipped.
func (s *Selector) HitterTargets(reports []model.GameReport) []model.BatterTarget {
	var out []model.BatterTarget
	for _, r := range reports {
		for _, m := range r.KeyMatchups {
			if m.Baseline == nil {
				continue
			}
			expected := m.WeightedEstBA.Or(s.league.BattingAverage)
			season := m.Baseline.BattingAverage.Or(s.league.BattingAverage)
			boost := expected - season

			out = append(out, model.BatterTarget{
				Batter:       DisplayName(m.Batter),
				Team:         m.Team,
				Pitcher:      DisplayName(m.VsPitcher),
				SeasonBA:     season,
				ExpectedBA:   expected,
				BABoost:      boost,
				BAPoints:     int(boost * averageToPoints),
				MatchupScore: TargetKey(expected, season),
				Reliability:  m.Reliability,
				ArsenalMix:   mixFor(r, m.VsPitcher),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchupScore > out[j].MatchupScore })
	return head(out, s.batterTopN)
}

// TargetKey is the hitter ranking key.
func TargetKey(expected, season float64) float64 {
	return boostWeight*(expected-season) + expectedWeight*(expected*averageToPercentScale)
}

// DisplayName turns "Last, First" into "First Last".
func DisplayName(name string) string {
	last, first, ok := strings.Cut(name, ",")
	first = strings.TrimSpace(first)
	if !ok || first == "" {
		return strings.TrimSpace(name)
	}
	return first + " " + strings.TrimSpace(last)
}

func mixFor(r model.GameReport, pitcherName string) string {
	for _, p := range []model.PitcherReport{r.Pitchers.Away, r.Pitchers.Home} {
		if p.Name == pitcherName && p.HasArsenal() {
			return p.Arsenal.Mix()
		}
	}
	return pitch.MixMixed
}

func head[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}
