// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/podium/internal/domain/model"
)

// WinnersDependencies defines the interface for season-winner queries.
type WinnersDependencies interface {
	SeasonWinners(ctx context.Context) map[int]model.Entry
}

// WinnersHandler handles season-winner requests.
type WinnersHandler struct {
	deps WinnersDependencies
}

// NewWinnersHandler creates a new winners handler.
func NewWinnersHandler(deps WinnersDependencies) *WinnersHandler {
	return &WinnersHandler{deps: deps}
}

// HandleGetWinners handles GET /winners requests, returning the
// highest-scoring entry per season.
func (h *WinnersHandler) HandleGetWinners(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	winners := h.deps.SeasonWinners(r.Context())
	out := make(map[int]entryResponse, len(winners))
	for season, entry := range winners {
		out[season] = toEntryResponse(entry)
	}
	writeJSON(w, http.StatusOK, out)
}
