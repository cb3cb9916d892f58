package ranking_test

import (
	"fmt"
	"testing"

	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/pitch"
	"github.com/okian/matchup/internal/domain/ranking"
	"github.com/okian/matchup/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func pitcher(name string) model.PitcherReport {
	return model.PitcherReport{
		Name: name,
		Arsenal: &model.PitcherArsenal{Pitcher: name, Entries: map[pitch.Type]model.ArsenalEntry{
			pitch.FourSeam: {PitchType: pitch.FourSeam, UsageRate: 0.6},
			pitch.Slider:   {PitchType: pitch.Slider, UsageRate: 0.4},
		}},
	}
}

func matchup(batter, vs string, kRate float64, seasonK *float64) model.Matchup {
	m := model.Matchup{Batter: batter, VsPitcher: vs, WeightedKRate: kRate}
	if seasonK != nil {
		m.Baseline = &model.SeasonLine{StrikeoutRate: types.Some(*seasonK), BattingAverage: types.Some(0.250)}
	}
	return m
}

func f(v float64) *float64 { return &v }

// game builds a report where the home lineup faces the away pitcher with
// awayK and the away lineup faces the home pitcher with homeK.
func game(away, home string, awayK, homeK float64) model.GameReport {
	ap, hp := "Away"+away+", Sam", "Home"+home+", Lou"
	r := model.GameReport{
		Matchup:  fmt.Sprintf("%s @ %s", away, home),
		AwayTeam: away,
		HomeTeam: home,
		Pitchers: model.Pitchers{Away: pitcher(ap), Home: pitcher(hp)},
	}
	for i := 0; i < 3; i++ {
		r.KeyMatchups = append(r.KeyMatchups,
			matchup(fmt.Sprintf("H%d, Bat", i), ap, awayK, f(20)),
			matchup(fmt.Sprintf("A%d, Bat", i), hp, homeK, f(20)),
		)
	}
	return r
}

func TestLineupRates(t *testing.T) {
	Convey("Given a lineup with one batter missing season data", t, func() {
		r := model.GameReport{KeyMatchups: []model.Matchup{
			matchup("A, A", "P, P", 30, f(20)),
			matchup("B, B", "P, P", 30, f(25)),
			matchup("C, C", "P, P", 30, nil),
			matchup("D, D", "Other, O", 10, f(10)),
		}}

		Convey("When the placeholder is substituted", func() {
			season, arsenalK, n := ranking.NewSelector().LineupRates(r, "P, P")
			So(n, ShouldEqual, 3)
			So(season, ShouldAlmostEqual, (20+25+22.5)/3, 1e-9)
			So(arsenalK, ShouldAlmostEqual, 30, 1e-9)
		})

		Convey("When missing batters are excluded", func() {
			season, _, n := ranking.NewSelector(ranking.WithExcludeMissingBaseline(true)).LineupRates(r, "P, P")
			So(n, ShouldEqual, 3)
			So(season, ShouldAlmostEqual, 22.5, 1e-9)
		})

		Convey("When custom league placeholders are configured", func() {
			s := ranking.NewSelector(ranking.WithLeagueAverages(ranking.LeagueAverages{StrikeoutRate: 30}))
			season, _, _ := s.LineupRates(r, "P, P")
			So(season, ShouldAlmostEqual, (20+25+30)/3.0, 1e-9)
		})
	})

	Convey("Given no scored batters against the pitcher", t, func() {
		season, arsenalK, n := ranking.NewSelector().LineupRates(model.GameReport{}, "P, P")
		So(n, ShouldEqual, 0)
		So(season, ShouldEqual, ranking.DefaultLeagueKRate)
		So(arsenalK, ShouldEqual, ranking.DefaultLeagueKRate)
	})
}

func TestStrikeoutLists(t *testing.T) {
	Convey("Given several games with strikeout swings", t, func() {
		reports := []model.GameReport{
			game("NYY", "BOS", 27, 12), // away pitcher +7, home pitcher -8
			game("TEX", "BAL", 32, 24), // away +12, home +4
			game("LAD", "SFG", 26, 14), // away +6, home -6
			game("SEA", "HOU", 25, 20), // away +5, home 0
		}

		Convey("When selecting the strikeout watch", func() {
			watch := ranking.NewSelector().StrikeoutWatch(reports)

			Convey("Then the top three boosts are ordered descending", func() {
				So(watch, ShouldHaveLength, 3)
				So(watch[0].KBoost, ShouldAlmostEqual, 12, 1e-9)
				So(watch[0].Pitcher, ShouldEqual, "Sam AwayTEX")
				So(watch[0].Opponent, ShouldEqual, "BAL")
				So(watch[0].Game, ShouldEqual, "TEX @ BAL")
				So(watch[0].BattersScored, ShouldEqual, 3)
				So(watch[0].ArsenalMix, ShouldEqual, pitch.MixBreakingHeavy)
				So(watch[1].KBoost, ShouldAlmostEqual, 7, 1e-9)
				So(watch[2].KBoost, ShouldAlmostEqual, 6, 1e-9)
			})
		})

		Convey("When the threshold admits a boost of exactly five", func() {
			watch := ranking.NewSelector(ranking.WithLimits(10, 5)).StrikeoutWatch(reports)
			So(watch, ShouldHaveLength, 4)
			So(watch[3].KBoost, ShouldAlmostEqual, 5, 1e-9)
		})

		Convey("When selecting the fades", func() {
			fades := ranking.NewSelector().StrikeoutFades(reports)

			Convey("Then the most negative comes first", func() {
				So(fades, ShouldHaveLength, 2)
				So(fades[0].KBoost, ShouldAlmostEqual, -8, 1e-9)
				So(fades[0].Opponent, ShouldEqual, "NYY")
				So(fades[1].KBoost, ShouldAlmostEqual, -6, 1e-9)
			})
		})

		Convey("When a larger threshold is configured", func() {
			rk := ranking.NewSelector(ranking.WithThreshold(10)).Select(reports)
			So(rk.StrikeoutWatch, ShouldHaveLength, 1)
			So(rk.StrikeoutFades, ShouldBeEmpty)
		})
	})

	Convey("Given equal boosts", t, func() {
		reports := []model.GameReport{game("AAA", "BBB", 28, 20), game("CCC", "DDD", 28, 20)}
		watch := ranking.NewSelector().StrikeoutWatch(reports)

		Convey("Then input order breaks the tie", func() {
			So(watch, ShouldHaveLength, 2)
			So(watch[0].Game, ShouldEqual, "AAA @ BBB")
			So(watch[1].Game, ShouldEqual, "CCC @ DDD")
		})
	})

	Convey("Given a pitcher without an arsenal", t, func() {
		r := game("NYY", "BOS", 40, 40)
		r.Pitchers.Away.Arsenal = nil
		watch := ranking.NewSelector().StrikeoutWatch([]model.GameReport{r})
		So(watch, ShouldHaveLength, 1)
		So(watch[0].Opponent, ShouldEqual, "NYY")
	})
}

func TestHitterTargets(t *testing.T) {
	Convey("Given scored batters with and without baselines", t, func() {
		r := game("NYY", "BOS", 20, 20)
		r.KeyMatchups = nil
		add := func(name string, xba types.Stat, season *float64) {
			m := model.Matchup{Batter: name, Team: "NYY", VsPitcher: r.Pitchers.Home.Name, WeightedEstBA: xba, Reliability: model.ReliabilityHigh}
			m.Baseline = &model.SeasonLine{BattingAverage: types.None()}
			if season != nil {
				m.Baseline.BattingAverage = types.Some(*season)
			}
			r.KeyMatchups = append(r.KeyMatchups, m)
		}
		add("Judge, Aaron", types.Some(0.320), f(0.290))
		add("Soto, Juan", types.Some(0.300), f(0.250))
		add("Volpe, Anthony", types.None(), f(0.210))
		add("Wells, Austin", types.Some(0.260), nil)
		r.KeyMatchups = append(r.KeyMatchups, model.Matchup{Batter: "NoBase, Ned", WeightedEstBA: types.Some(0.400)})

		Convey("When ranking hitters", func() {
			targets := ranking.NewSelector().HitterTargets([]model.GameReport{r})

			Convey("Then batters without a baseline are skipped", func() {
				So(targets, ShouldHaveLength, 4)
			})

			Convey("Then the ranking key orders the list", func() {
				So(targets[0].Batter, ShouldEqual, "Aaron Judge")
				So(targets[0].MatchupScore, ShouldAlmostEqual, 0.6*0.030+0.4*32.0, 1e-9)
				So(targets[0].BAPoints, ShouldEqual, 30)
				So(targets[0].Pitcher, ShouldEqual, "Lou HomeBOS")
				So(targets[0].ArsenalMix, ShouldEqual, pitch.MixBreakingHeavy)
				So(targets[1].Batter, ShouldEqual, "Juan Soto")
			})

			Convey("Then average points truncate toward zero", func() {
				// .300 - .250 is just under .050 in binary floating point.
				So(targets[1].BABoost, ShouldAlmostEqual, 0.050, 1e-9)
				So(targets[1].BAPoints, ShouldEqual, 49)
			})

			Convey("Then missing values use league placeholders", func() {
				var volpe, wells model.BatterTarget
				for _, tg := range targets {
					switch tg.Batter {
					case "Anthony Volpe":
						volpe = tg
					case "Austin Wells":
						wells = tg
					}
				}
				So(volpe.ExpectedBA, ShouldEqual, ranking.DefaultLeagueBA)
				So(volpe.BAPoints, ShouldEqual, 40)
				So(wells.SeasonBA, ShouldEqual, ranking.DefaultLeagueBA)
				So(wells.BAPoints, ShouldEqual, 10)
			})
		})

		Convey("When the limit is smaller than the pool", func() {
			targets := ranking.NewSelector(ranking.WithLimits(3, 2)).HitterTargets([]model.GameReport{r})
			So(targets, ShouldHaveLength, 2)
		})
	})
}

func TestDisplayName(t *testing.T) {
	Convey("Given stored name keys", t, func() {
		So(ranking.DisplayName("Cole, Gerrit"), ShouldEqual, "Gerrit Cole")
		So(ranking.DisplayName("Witt Jr., Bobby"), ShouldEqual, "Bobby Witt Jr.")
		So(ranking.DisplayName("Ohtani"), ShouldEqual, "Ohtani")
		So(ranking.DisplayName("Ohtani,"), ShouldEqual, "Ohtani,")
	})
}
