package service

import (
	"time"

	"github.com/okian/matchup/internal/adapters/repository"
	"github.com/okian/matchup/internal/adapters/slate"
	"github.com/okian/matchup/internal/adapters/statcast"
	"github.com/okian/matchup/internal/domain/ranking"
	"github.com/okian/matchup/internal/domain/scoring"
	"github.com/okian/matchup/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTables sets where the leaderboard exports are read from.
func WithTables(p statcast.Paths) Option {
	return func(s *Service) {
		s.paths = p
	}
}

// WithSlateSource sets the slate file path or URL.
func WithSlateSource(source string) Option {
	return func(s *Service) {
		s.slateSource = source
	}
}

// WithSlateLoader replaces the slate loader.
func WithSlateLoader(l *slate.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.slates = l
		}
	}
}

// WithScorer sets the matchup scorer.
func WithScorer(sc *scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithSelector sets the ranking selector.
func WithSelector(sel *ranking.Selector) Option {
	return func(s *Service) {
		if sel != nil {
			s.selector = sel
		}
	}
}

// WithStore sets the run history.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithArchive enables writing every run report to disk.
func WithArchive(a Archive) Option {
	return func(s *Service) {
		s.archive = a
	}
}

// WithOutbox enables queuing the ranking lists for publication.
func WithOutbox(o Outbox) Option {
	return func(s *Service) {
		s.outbox = o
	}
}

// WithSeason records the season of the input tables.
func WithSeason(season int) Option {
	return func(s *Service) {
		if season > 0 {
			s.season = season
		}
	}
}

// WithLocation sets the timezone the slate date is computed in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
