package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/matchup/internal/adapters/http/api"
	"github.com/okian/matchup/internal/adapters/http/swagger"
	"github.com/okian/matchup/internal/adapters/mq/queue"
	"github.com/okian/matchup/internal/adapters/mq/worker"
	"github.com/okian/matchup/internal/adapters/publish"
	"github.com/okian/matchup/internal/adapters/repository"
	"github.com/okian/matchup/internal/adapters/statcast"
	service "github.com/okian/matchup/internal/app"
	"github.com/okian/matchup/internal/config"
	"github.com/okian/matchup/internal/domain/dedupe"
	"github.com/okian/matchup/internal/domain/ranking"
	"github.com/okian/matchup/internal/domain/scoring"
	"github.com/okian/matchup/pkg/logger"
	"github.com/robfig/cron/v3"
)

// bot holds the wired components of one process.
type bot struct {
	svc        *service.Service
	history    *repository.History
	outbox     *queue.InMemoryQueue
	dispatcher *worker.Dispatcher
	mux        *http.ServeMux
	log        logger.Logger
}

// build wires every component from cfg. It starts nothing.
func build(cfg *config.Config, log logger.Logger) *bot {
	history := repository.NewHistory(repository.WithHistorySize(cfg.HistorySize))
	outbox := queue.NewInMemoryQueue(queue.WithCapacity(cfg.OutboxSize))

	dispatcher := worker.NewDispatcher(outbox, newSink(cfg, log),
		worker.WithSpacing(cfg.PublishSpacing()),
		worker.WithLedger(dedupe.NewInMemoryLedger(dedupe.WithMaxSize(cfg.LedgerSize))),
		worker.WithLogger(log.Named("dispatcher")),
	)

	opts := []service.Option{
		service.WithTables(statcast.Paths{
			Arsenals:    cfg.ArsenalCSV,
			BatterPitch: cfg.BatterPitchCSV,
			SeasonLines: cfg.SeasonCSV,
		}),
		service.WithSlateSource(cfg.SlatePath),
		service.WithScorer(scoring.NewScorer(scoring.WithThresholds(scoring.Thresholds{
			MediumPA: cfg.ReliabilityMediumPA,
			HighPA:   cfg.ReliabilityHighPA,
		}))),
		service.WithSelector(ranking.NewSelector(
			ranking.WithThreshold(cfg.KBoostThreshold),
			ranking.WithLeagueAverages(ranking.LeagueAverages{
				StrikeoutRate:  cfg.LeagueKRate,
				BattingAverage: cfg.LeagueBattingAverage,
			}),
			ranking.WithLimits(cfg.StrikeoutTopN, cfg.BatterTopN),
			ranking.WithExcludeMissingBaseline(cfg.ExcludeMissingBaseline),
		)),
		service.WithStore(history),
		service.WithOutbox(outbox),
		service.WithSeason(cfg.Season),
		service.WithLocation(cfg.Location()),
		service.WithLogger(log.Named("service")),
	}
	if cfg.ArchiveDir != "" {
		opts = append(opts, service.WithArchive(repository.NewFileArchive(cfg.ArchiveDir)))
	}
	svc := service.New(opts...)

	mux := http.NewServeMux()
	swagger.Register(mux)
	api.NewServer(svc, history.Board()).Register(mux)

	return &bot{
		svc:        svc,
		history:    history,
		outbox:     outbox,
		dispatcher: dispatcher,
		mux:        mux,
		log:        log,
	}
}

// newSink posts to the webhook when one is configured and logs otherwise.
func newSink(cfg *config.Config, log logger.Logger) worker.Sink {
	if cfg.WebhookURL == "" {
		return publish.NewLogSink(log.Named("publish"))
	}
	return publish.NewWebhookSink(cfg.WebhookURL, publish.WithTimeout(cfg.WebhookTimeout()))
}

// schedule registers the daily run in the configured timezone.
func (b *bot) schedule(ctx context.Context, cfg *config.Config) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(cfg.Location()))
	if _, err := c.AddFunc(cfg.Schedule, func() { b.trigger(ctx, "schedule") }); err != nil {
		return nil, fmt.Errorf("schedule %q: %w", cfg.Schedule, err)
	}
	return c, nil
}

// trigger runs one scoring pass and logs its outcome.
func (b *bot) trigger(ctx context.Context, source string) {
	b.log.Info(ctx, "run triggered", logger.String("source", source))
	// Service.Run logs its own failures.
	if _, err := b.svc.Run(ctx); errors.Is(err, service.ErrRunInProgress) {
		b.log.Warn(ctx, "run skipped; another run is active", logger.String("source", source))
	}
}

// runOnce scores the slate, then waits until every queued list is delivered.
func (b *bot) runOnce(ctx context.Context) error {
	_, err := b.svc.Run(ctx)
	_ = b.outbox.Close()
	select {
	case <-b.dispatcher.Done():
	case <-ctx.Done():
	}
	return err
}
