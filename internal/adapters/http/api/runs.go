package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/okian/matchup/internal/adapters/repository"
	service "github.com/okian/matchup/internal/app"
	"github.com/okian/matchup/internal/domain/model"
)

const defaultRunsLimit = 10

// RunsHandler serves stored run reports and triggers new runs.
type RunsHandler struct {
	runner   Runner
	store    repository.Store
	maxLimit int
}

// NewRunsHandler creates a new runs handler.
func NewRunsHandler(runner Runner, store repository.Store, maxLimit int) *RunsHandler {
	return &RunsHandler{runner: runner, store: store, maxLimit: maxLimit}
}

type rankingsResponse struct {
	RunID    uuid.UUID      `json:"run_id"`
	Date     string         `json:"date"`
	Rankings model.Rankings `json:"rankings"`
}

// HandleRun handles POST /run requests.
func (h *RunsHandler) HandleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	report, err := h.runner.Run(r.Context())
	switch {
	case errors.Is(err, service.ErrRunInProgress):
		writeError(w, http.StatusConflict, "run_in_progress", err)
		return
	case service.IsInputShape(err):
		writeError(w, http.StatusUnprocessableEntity, "input_shape", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, repository.RunInfo{
		RunID:          report.RunID,
		Date:           report.Date,
		GamesProcessed: report.GamesProcessed,
		Summary:        report.Summary,
	})
}

// HandleLatest handles GET /latest requests.
func (h *RunsHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	report, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleRankings handles GET /rankings requests.
func (h *RunsHandler) HandleRankings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	report, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rankingsResponse{RunID: report.RunID, Date: report.Date, Rankings: report.Rankings})
}

// HandleListRuns handles GET /runs?limit=N requests.
func (h *RunsHandler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n, err := parseLimit(r, "limit", defaultRunsLimit, h.maxLimit)
	if err != nil {
		writeLimitError(w, err)
		return
	}
	runs, err := h.store.List(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

// HandleGetRun handles GET /runs/{run_id} requests.
func (h *RunsHandler) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/runs/")
	id, err := uuid.Parse(path)
	if path == "" || strings.Contains(path, "/") || err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRunID)
		return
	}
	report, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *RunsHandler) latest(w http.ResponseWriter, r *http.Request) (model.RunReport, bool) {
	report, err := h.store.Latest(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoRuns) {
			writeError(w, http.StatusNotFound, "no_runs", err)
			return model.RunReport{}, false
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return model.RunReport{}, false
	}
	return report, true
}
