// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/okian/matchup/internal/adapters/repository"
	"github.com/okian/matchup/internal/domain/model"
)

// DefaultMaxLimit caps list endpoints.
const DefaultMaxLimit = 100

// Runner triggers a scoring run.
type Runner interface {
	Run(ctx context.Context) (model.RunReport, error)
}

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]any
}

// Dependencies required by HTTP handlers.
type Dependencies interface {
	Runner
	StatsProvider

	// Store exposes stored run reports.
	Store() repository.Store
}

// BoardReader reads the ranked matchups of the latest run.
type BoardReader interface {
	TopN(n int) ([]repository.Entry, error)
	BottomN(n int) ([]repository.Entry, error)
	Find(batter string) ([]repository.Entry, error)
}

// Option configures a Server.
type Option func(*Server)

// WithMaxLimit caps the n and limit query parameters.
func WithMaxLimit(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// Server wires HTTP routes for the bot API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	runsHandler     *RunsHandler
	matchupsHandler *MatchupsHandler
	maxLimit        int
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, board BoardReader, opts ...Option) *Server {
	s := &Server{maxLimit: DefaultMaxLimit}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler(deps.Store())
	s.statsHandler = NewStatsHandler(deps)
	s.runsHandler = NewRunsHandler(deps, deps.Store(), s.maxLimit)
	s.matchupsHandler = NewMatchupsHandler(board, s.maxLimit)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("/metrics", MetricsHandler())
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/run", MetricsMiddleware(s.runsHandler.HandleRun, "run"))
	mux.HandleFunc("/latest", MetricsMiddleware(s.runsHandler.HandleLatest, "latest"))
	mux.HandleFunc("/rankings", MetricsMiddleware(s.runsHandler.HandleRankings, "rankings"))
	mux.HandleFunc("/runs", MetricsMiddleware(s.runsHandler.HandleListRuns, "runs"))
	mux.HandleFunc("/runs/", MetricsMiddleware(s.runsHandler.HandleGetRun, "run_by_id"))
	mux.HandleFunc("/matchups/top", MetricsMiddleware(s.matchupsHandler.HandleTop, "matchups_top"))
	mux.HandleFunc("/matchups/bottom", MetricsMiddleware(s.matchupsHandler.HandleBottom, "matchups_bottom"))
	mux.HandleFunc("/matchups/batter/", MetricsMiddleware(s.matchupsHandler.HandleBatter, "matchups_batter"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// parseLimit reads a positive integer query parameter, falling back to def
// when it is absent.
func parseLimit(r *http.Request, key string, def, maxLimit int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrBadRequest, key)
	}
	if n > maxLimit {
		return 0, fmt.Errorf("%w: %s > %d", ErrLimitExceeded, key, maxLimit)
	}
	return n, nil
}

func writeLimitError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrLimitExceeded) {
		writeError(w, http.StatusBadRequest, "limit_exceeded", err)
		return
	}
	writeError(w, http.StatusBadRequest, "bad_request", err)
}
