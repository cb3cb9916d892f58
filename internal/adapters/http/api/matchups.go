package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/okian/matchup/internal/adapters/repository"
)

const defaultBoardLimit = 5

// MatchupsHandler serves the matchup board of the latest run.
type MatchupsHandler struct {
	board    BoardReader
	maxLimit int
}

// NewMatchupsHandler creates a new matchups handler.
func NewMatchupsHandler(board BoardReader, maxLimit int) *MatchupsHandler {
	return &MatchupsHandler{board: board, maxLimit: maxLimit}
}

// HandleTop handles GET /matchups/top?n=N requests.
func (h *MatchupsHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	h.serveSlice(w, r, h.board.TopN)
}

// HandleBottom handles GET /matchups/bottom?n=N requests.
func (h *MatchupsHandler) HandleBottom(w http.ResponseWriter, r *http.Request) {
	h.serveSlice(w, r, h.board.BottomN)
}

// HandleBatter handles GET /matchups/batter/{name} requests, where name is
// the "Last, First" key.
func (h *MatchupsHandler) HandleBatter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw := strings.TrimPrefix(r.URL.EscapedPath(), "/matchups/batter/")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	entries, err := h.board.Find(name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *MatchupsHandler) serveSlice(w http.ResponseWriter, r *http.Request, read func(int) ([]repository.Entry, error)) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n, err := parseLimit(r, "n", defaultBoardLimit, h.maxLimit)
	if err != nil {
		writeLimitError(w, err)
		return
	}
	entries, err := read(n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if entries == nil {
		entries = []repository.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
