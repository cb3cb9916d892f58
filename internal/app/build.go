package service

import (
	"context"
	"errors"

	"github.com/okian/matchup/internal/adapters/slate"
	"github.com/okian/matchup/internal/adapters/statcast"
	"github.com/okian/matchup/internal/domain/arsenal"
	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/pitch"
	"github.com/okian/matchup/internal/domain/scoring"
	"github.com/okian/matchup/pkg/logger"
	"github.com/okian/matchup/pkg/metrics"
)

// buildGame scores both lineups of g against the opposing starter.
func (s *Service) buildGame(ctx context.Context, tables *statcast.Tables, g slate.Game, date string) model.GameReport {
	away := s.pitcherReport(ctx, tables, g.AwayPitcher, g.AwayTeam)
	home := s.pitcherReport(ctx, tables, g.HomePitcher, g.HomeTeam)

	r := model.GameReport{
		GameDate:    date,
		Matchup:     g.Label(),
		AwayTeam:    g.AwayTeam,
		HomeTeam:    g.HomeTeam,
		Pitchers:    model.Pitchers{Away: away, Home: home},
		KeyMatchups: []model.Matchup{},
		Missing:     []model.MissingBatter{},
	}
	s.scoreLineup(ctx, tables, &r, g.AwayLineup, g.AwayTeam, home)
	s.scoreLineup(ctx, tables, &r, g.HomeLineup, g.HomeTeam, away)

	s.logger.Debug(ctx, "game scored",
		logger.String("matchup", r.Matchup),
		logger.Int("found", r.BattersFound),
		logger.Int("missing", r.BattersMissing),
	)
	return r
}

// pitcherReport resolves a starter's arsenal. A missing or degenerate arsenal
// leaves Arsenal nil.
func (s *Service) pitcherReport(ctx context.Context, tables *statcast.Tables, raw, team string) model.PitcherReport {
	p := model.PitcherReport{
		Name:         slate.ParsePitcherName(raw),
		OriginalName: raw,
		Team:         team,
		Mix:          pitch.MixMixed,
	}

	row, err := tables.Arsenals.Find(p.Name)
	if err != nil {
		s.logger.Debug(ctx, "pitcher not found", logger.String("pitcher", p.Name))
		return p
	}
	ars, err := arsenal.Normalize(p.Name, row.Pitches)
	if err != nil {
		s.logger.Debug(ctx, "pitcher has no usable arsenal", logger.String("pitcher", p.Name), logger.Error(err))
		return p
	}
	p.Arsenal = &ars
	p.Mix = ars.Mix()
	return p
}

// scoreLineup appends a matchup or a missing entry for every lineup batter.
func (s *Service) scoreLineup(ctx context.Context, tables *statcast.Tables, r *model.GameReport, lineup []string, team string, opp model.PitcherReport) {
	for _, entry := range lineup {
		name := slate.ParseBatterName(entry)
		if name == "" {
			continue
		}

		m, reason := s.scoreBatter(tables, name, team, opp)
		if reason != "" {
			r.BattersMissing++
			r.Missing = append(r.Missing, model.MissingBatter{Batter: name, Team: team, VsPitcher: opp.Name, Reason: reason})
			metrics.RecordBatterMissing(reason)
			s.logger.Debug(ctx, "batter not scored",
				logger.String("batter", name),
				logger.String("vs_pitcher", opp.Name),
				logger.String("reason", reason),
			)
			continue
		}
		r.BattersFound++
		r.KeyMatchups = append(r.KeyMatchups, m)
		metrics.RecordBatterScored(string(m.Reliability))
	}
}

// scoreBatter returns the matchup record, or the reason it could not be built.
func (s *Service) scoreBatter(tables *statcast.Tables, name, team string, opp model.PitcherReport) (model.Matchup, string) {
	if !opp.HasArsenal() {
		return model.Matchup{}, model.ReasonNoArsenal
	}

	stats, err := tables.BatterPitch.Find(name, opp.Arsenal.Types())
	if err != nil {
		return model.Matchup{}, model.ReasonNotFound
	}

	res, tier, err := s.scorer.Score(stats, *opp.Arsenal)
	switch {
	case errors.Is(err, scoring.ErrNoArsenal):
		return model.Matchup{}, model.ReasonNoArsenal
	case err != nil:
		return model.Matchup{}, model.ReasonNoOverlap
	}

	m := scoring.Record(res, tier, name, team, opp.Name)
	if line, err := tables.Seasons.Find(name); err == nil {
		m.Baseline = &line
	}
	return m, ""
}
