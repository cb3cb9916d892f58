package api

import (
	"net/http"

	"github.com/okian/matchup/internal/adapters/repository"
	"github.com/okian/matchup/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	store repository.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store repository.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

type healthResponse struct {
	Status     string `json:"status"`
	Runs       int    `json:"runs"`
	LatestDate string `json:"latest_date,omitempty"`
}

// HandleHealth handles GET /healthz requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	resp := healthResponse{Status: "ok", Runs: h.store.Count(r.Context())}
	if latest, err := h.store.Latest(r.Context()); err == nil {
		resp.LatestDate = latest.Date
	}
	writeJSON(w, http.StatusOK, resp)
}

// MetricsHandler serves the bot's metrics registry.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})
}
