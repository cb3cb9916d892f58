// Package repository keeps run reports in memory, indexes scored matchups and
// archives reports to disk.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/okian/matchup/internal/domain/model"
)

// Store provides read/write access to past run reports.
type Store interface {
	// Save records a run report; the newest one becomes Latest.
	Save(ctx context.Context, r model.RunReport) error

	// Latest returns the most recent report, or ErrNoRuns.
	Latest(ctx context.Context) (model.RunReport, error)

	// Get returns a report by run id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (model.RunReport, error)

	// List returns up to n summaries, newest first.
	List(ctx context.Context, n int) ([]RunInfo, error)

	// Count returns the number of reports held.
	Count(ctx context.Context) int
}

// RunInfo is the list view of one report.
type RunInfo struct {
	RunID          uuid.UUID        `json:"run_id"`
	Date           string           `json:"date"`
	GamesProcessed int              `json:"games_processed"`
	Summary        model.RunSummary `json:"summary"`
}

func infoOf(r *model.RunReport) RunInfo {
	return RunInfo{RunID: r.RunID, Date: r.Date, GamesProcessed: r.GamesProcessed, Summary: r.Summary}
}
