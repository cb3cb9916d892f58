// Package service runs one scoring pass end to end: load the tables and the
// slate, score every lineup against the opposing arsenal, rank, store,
// archive and queue the lists for publication.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/okian/matchup/internal/adapters/repository"
	"github.com/okian/matchup/internal/adapters/slate"
	"github.com/okian/matchup/internal/adapters/statcast"
	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/ranking"
	"github.com/okian/matchup/internal/domain/scoring"
	"github.com/okian/matchup/pkg/logger"
	"github.com/okian/matchup/pkg/metrics"
)

// DateLayout formats slate dates.
const DateLayout = "2006-01-02"

// Archive persists run reports.
type Archive interface {
	Write(ctx context.Context, r model.RunReport) (string, error)
}

// Outbox accepts publications for asynchronous delivery.
type Outbox interface {
	Enqueue(ctx context.Context, p model.Publication) error
	Len() int
}

// Service implements the scoring run and the API's read dependencies.
type Service struct {
	paths       statcast.Paths
	slateSource string
	slates      *slate.Loader
	scorer      *scoring.Scorer
	selector    *ranking.Selector
	store       repository.Store
	archive     Archive
	outbox      Outbox
	season      int
	loc         *time.Location
	now         func() time.Time

	running atomic.Bool

	mu      sync.RWMutex
	runs    int
	failed  int
	lastAt  time.Time
	lastDur time.Duration
	lastErr string

	logger logger.Logger
}

// New constructs a Service with default collaborators.
func New(opts ...Option) *Service {
	s := &Service{
		slates:   slate.NewLoader(),
		scorer:   scoring.NewScorer(),
		selector: ranking.NewSelector(),
		season:   time.Now().Year(),
		loc:      time.UTC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewHistory()
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	return s
}

// Store returns the run history.
func (s *Service) Store() repository.Store { return s.store }

// Running reports whether a run is in progress.
func (s *Service) Running() bool { return s.running.Load() }

// Run executes one scoring pass. Only one run may be active; a concurrent
// call fails with ErrRunInProgress. Malformed input tables abort the run with
// a *statcast.InputShapeError.
func (s *Service) Run(ctx context.Context) (model.RunReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return model.RunReport{}, ErrRunInProgress
	}
	defer s.running.Store(false)

	start := s.now()
	report, err := s.run(ctx, start)
	dur := s.now().Sub(start)

	s.mu.Lock()
	s.runs++
	s.lastAt = start
	s.lastDur = dur
	s.lastErr = ""
	if err != nil {
		s.failed++
		s.lastErr = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		metrics.RecordRun(metrics.StatusFailure, dur)
		s.logger.Error(ctx, "scoring run failed", logger.Error(err), logger.Duration("took", dur))
		return model.RunReport{}, err
	}
	metrics.RecordRun(metrics.StatusSuccess, dur)
	metrics.UpdateLastRun(start, report.Summary.Coverage)
	s.logger.Info(ctx, "scoring run finished",
		logger.String("run_id", report.RunID.String()),
		logger.String("date", report.Date),
		logger.Int("games", report.GamesProcessed),
		logger.Int("batters_found", report.Summary.BattersFound),
		logger.Int("batters_missing", report.Summary.BattersMissing),
		logger.Float64("coverage", scoring.Round(report.Summary.Coverage, 3)),
		logger.Duration("took", dur),
	)
	return report, nil
}

func (s *Service) run(ctx context.Context, at time.Time) (model.RunReport, error) {
	if s.paths.Arsenals == "" || s.paths.BatterPitch == "" {
		return model.RunReport{}, ErrNoTables
	}
	s.logger.Info(ctx, "scoring run started", logger.Int("season", s.season))

	tables, err := statcast.LoadFiles(s.paths)
	if err != nil {
		return model.RunReport{}, fmt.Errorf("load tables: %w", err)
	}
	games, err := s.slates.Load(ctx, s.slateSource)
	if err != nil {
		return model.RunReport{}, fmt.Errorf("load slate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return model.RunReport{}, err
	}

	report := s.Build(ctx, tables, games, at)

	if err := s.store.Save(ctx, report); err != nil {
		return model.RunReport{}, fmt.Errorf("save run: %w", err)
	}
	s.archiveReport(ctx, report)
	s.enqueue(ctx, report)
	return report, nil
}

// Build scores every game of the slate and ranks the result. It performs no
// I/O beyond logging and metrics.
func (s *Service) Build(ctx context.Context, tables *statcast.Tables, games []slate.Game, at time.Time) model.RunReport {
	date := at.In(s.loc).Format(DateLayout)

	reports := make([]model.GameReport, 0, len(games))
	for _, g := range games {
		reports = append(reports, s.buildGame(ctx, tables, g, date))
	}
	metrics.RecordGamesProcessed(len(reports))

	rankings := s.selector.Select(reports)
	metrics.UpdateRankingListLength(string(model.ListStrikeoutWatch), len(rankings.StrikeoutWatch))
	metrics.UpdateRankingListLength(string(model.ListStrikeoutFades), len(rankings.StrikeoutFades))
	metrics.UpdateRankingListLength(string(model.ListHitterTargets), len(rankings.HitterTargets))

	return model.RunReport{
		RunID:          uuid.New(),
		Timestamp:      at,
		Date:           date,
		Season:         s.season,
		GamesProcessed: len(reports),
		Reports:        reports,
		Rankings:       rankings,
		Summary:        model.Summarize(reports),
	}
}

func (s *Service) archiveReport(ctx context.Context, r model.RunReport) { //nolint:gocritic // read-only copy
	if s.archive == nil {
		return
	}
	path, err := s.archive.Write(ctx, r)
	if err != nil {
		s.logger.Error(ctx, "archive failed", logger.String("run_id", r.RunID.String()), logger.Error(err))
		return
	}
	s.logger.Info(ctx, "run archived", logger.String("path", path))
}

func (s *Service) enqueue(ctx context.Context, r model.RunReport) { //nolint:gocritic // read-only copy
	if s.outbox == nil {
		return
	}
	for _, p := range model.Publications(r) {
		if err := s.outbox.Enqueue(ctx, p); err != nil {
			s.logger.Error(ctx, "publication not queued",
				logger.String("kind", string(p.Kind)),
				logger.Error(err),
			)
		}
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"running":     s.running.Load(),
		"runs":        s.runs,
		"failed_runs": s.failed,
		"season":      s.season,
		"history":     s.store.Count(context.Background()),
	}
	if !s.lastAt.IsZero() {
		stats["last_run_at"] = s.lastAt.UTC().Format(time.RFC3339)
		stats["last_run_ms"] = s.lastDur.Milliseconds()
	}
	if s.lastErr != "" {
		stats["last_error"] = s.lastErr
	}
	if s.outbox != nil {
		stats["outbox_length"] = s.outbox.Len()
	}
	return stats
}

// IsInputShape reports whether err aborted a run because an input table was
// malformed.
func IsInputShape(err error) bool {
	var shape *statcast.InputShapeError
	return errors.As(err, &shape)
}
