package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/pkg/metrics"
)

// History is a bounded in-memory Store. Reports are kept newest last.
type History struct {
	mu      sync.RWMutex
	size    int
	reports []model.RunReport
	board   *Board
}

// NewHistory creates an empty history.
func NewHistory(opts ...Option) *History {
	h := &History{size: DefaultHistorySize, board: NewBoard()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *History) Save(_ context.Context, r model.RunReport) error { //nolint:gocritic // reports are stored by value
	if r.RunID == uuid.Nil {
		return fmt.Errorf("save run: missing run id")
	}

	h.mu.Lock()
	h.reports = append(h.reports, r)
	if over := len(h.reports) - h.size; over > 0 {
		h.reports = append([]model.RunReport(nil), h.reports[over:]...)
	}
	n := len(h.reports)
	h.mu.Unlock()

	h.board.Publish(r)
	metrics.UpdateHistorySize(n)
	return nil
}

func (h *History) Latest(_ context.Context) (model.RunReport, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.reports) == 0 {
		return model.RunReport{}, ErrNoRuns
	}
	return h.reports[len(h.reports)-1], nil
}

func (h *History) Get(_ context.Context, id uuid.UUID) (model.RunReport, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for i := len(h.reports) - 1; i >= 0; i-- {
		if h.reports[i].RunID == id {
			return h.reports[i], nil
		}
	}
	return model.RunReport{}, fmt.Errorf("run %s: %w", id, ErrNotFound)
}

func (h *History) List(_ context.Context, n int) ([]RunInfo, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]RunInfo, 0, min(n, len(h.reports)))
	for i := len(h.reports) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, infoOf(&h.reports[i]))
	}
	return out, nil
}

func (h *History) Count(_ context.Context) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.reports)
}

// Board returns the matchup board of the latest saved run.
func (h *History) Board() *Board { return h.board }
