// Package publish delivers ranking lists to their audience.
package publish

import (
	"context"

	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/pkg/logger"
)

// Sink delivers one publication.
type Sink interface {
	Publish(ctx context.Context, p model.Publication) error
}

// LogSink writes publications to the log. It is used when no webhook is
// configured.
type LogSink struct {
	logger logger.Logger
}

// NewLogSink returns a sink that logs each list.
func NewLogSink(l logger.Logger) *LogSink {
	return &LogSink{logger: l}
}

func (s *LogSink) Publish(ctx context.Context, p model.Publication) error { //nolint:gocritic // Sink contract
	s.logger.Info(ctx, "publication",
		logger.String("date", p.Date),
		logger.String("kind", string(p.Kind)),
		logger.Int("entries", p.Len()),
		logger.Any("pitchers", p.Pitchers),
		logger.Any("hitters", p.Hitters),
	)
	return nil
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, p model.Publication) error

func (f SinkFunc) Publish(ctx context.Context, p model.Publication) error { //nolint:gocritic // Sink contract
	return f(ctx, p)
}
