package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/okian/matchup/internal/domain/types"
)

// Missing reasons recorded for batters that could not be scored.
const (
	ReasonNotFound  = "not_found"
	ReasonNoOverlap = "no_overlap"
	ReasonNoArsenal = "no_arsenal"
)

// Matchup is the flat, serializable record for one scored batter.
type Matchup struct {
	Batter           string              `json:"batter"`
	Team             string              `json:"team"`
	VsPitcher        string              `json:"vs_pitcher"`
	WeightedAvgBA    float64             `json:"weighted_avg_ba"`
	WeightedEstBA    types.Stat          `json:"weighted_est_ba"`
	WeightedSlugging types.Stat          `json:"weighted_slg"`
	WeightedWhiff    float64             `json:"weighted_whiff"`
	WeightedKRate    float64             `json:"weighted_k_rate"`
	WeightedHardHit  float64             `json:"weighted_hard_hit"`
	MatchupScore     float64             `json:"matchup_score"`
	ArsenalCoverage  float64             `json:"arsenal_coverage"`
	TotalPA          int                 `json:"total_pa"`
	Reliability      Reliability         `json:"reliability"`
	PitchBreakdown   []PitchContribution `json:"pitch_breakdown"`
	Baseline         *SeasonLine         `json:"baseline_stats,omitempty"`
}

// MissingBatter records a lineup entry that produced no matchup.
type MissingBatter struct {
	Batter    string `json:"batter"`
	Team      string `json:"team"`
	VsPitcher string `json:"vs_pitcher"`
	Reason    string `json:"reason"`
}

// PitcherReport describes one starting pitcher in a game.
type PitcherReport struct {
	Name         string          `json:"name"`
	OriginalName string          `json:"original_name"`
	Team         string          `json:"team"`
	Arsenal      *PitcherArsenal `json:"arsenal"`
	Mix          string          `json:"arsenal_desc"`
}

// HasArsenal reports whether the pitcher was resolved to a non-empty arsenal.
func (p PitcherReport) HasArsenal() bool { return p.Arsenal != nil && !p.Arsenal.Empty() }

// Pitchers holds both starters of a game.
type Pitchers struct {
	Away PitcherReport `json:"away"`
	Home PitcherReport `json:"home"`
}

// GameReport is the scored output for one game.
type GameReport struct {
	GameDate       string          `json:"game_date"`
	Matchup        string          `json:"matchup"`
	AwayTeam       string          `json:"away_team"`
	HomeTeam       string          `json:"home_team"`
	Pitchers       Pitchers        `json:"pitchers"`
	KeyMatchups    []Matchup       `json:"key_matchups"`
	BattersFound   int             `json:"batters_found"`
	BattersMissing int             `json:"batters_missing"`
	Missing        []MissingBatter `json:"missing"`
}

// PitcherBoost is one entry of the strikeout rankings. Rates are percentages.
type PitcherBoost struct {
	Pitcher        string  `json:"pitcher"`
	Opponent       string  `json:"opponent"`
	Game           string  `json:"matchup"`
	LineupSeasonK  float64 `json:"lineup_season_k"`
	LineupArsenalK float64 `json:"lineup_arsenal_k"`
	KBoost         float64 `json:"k_boost"`
	BattersScored  int     `json:"batters_scored"`
	ArsenalMix     string  `json:"arsenal_desc"`
}

// BatterTarget is one entry of the hitter rankings.
type BatterTarget struct {
	Batter       string      `json:"batter"`
	Team         string      `json:"team"`
	Pitcher      string      `json:"pitcher"`
	SeasonBA     float64     `json:"season_ba"`
	ExpectedBA   float64     `json:"expected_ba"`
	BABoost      float64     `json:"ba_boost"`
	BAPoints     int         `json:"ba_points"`
	MatchupScore float64     `json:"matchup_score"`
	Reliability  Reliability `json:"reliability"`
	ArsenalMix   string      `json:"arsenal_desc"`
}

// Rankings holds the three daily lists.
type Rankings struct {
	StrikeoutWatch []PitcherBoost `json:"strikeout_watch"`
	StrikeoutFades []PitcherBoost `json:"strikeout_fades"`
	HitterTargets  []BatterTarget `json:"hitter_targets"`
}

// RunSummary aggregates per-entity outcomes across a run.
type RunSummary struct {
	BattersFound   int     `json:"batters_found"`
	BattersMissing int     `json:"batters_missing"`
	Coverage       float64 `json:"coverage"`
}

// RunReport is the full output of one scoring run.
type RunReport struct {
	RunID          uuid.UUID    `json:"run_id"`
	Timestamp      time.Time    `json:"timestamp"`
	Date           string       `json:"date"`
	Season         int          `json:"season"`
	GamesProcessed int          `json:"games_processed"`
	Reports        []GameReport `json:"reports"`
	Rankings       Rankings     `json:"rankings"`
	Summary        RunSummary   `json:"summary"`
}

// Summarize totals found and missing batters over the reports.
func Summarize(reports []GameReport) RunSummary {
	var s RunSummary
	for _, r := range reports {
		s.BattersFound += r.BattersFound
		s.BattersMissing += r.BattersMissing
	}
	if total := s.BattersFound + s.BattersMissing; total > 0 {
		s.Coverage = float64(s.BattersFound) / float64(total)
	}
	return s
}
