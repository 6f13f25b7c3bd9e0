// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// WinsDependencies defines the interface for total-wins queries.
type WinsDependencies interface {
	TotalWinsPerSeason(ctx context.Context) map[int]int
}

// WinsHandler handles total-wins requests.
type WinsHandler struct {
	deps WinsDependencies
}

// NewWinsHandler creates a new wins handler.
func NewWinsHandler(deps WinsDependencies) *WinsHandler {
	return &WinsHandler{deps: deps}
}

// HandleGetWins handles GET /wins requests, returning summed race wins
// per season.
func (h *WinsHandler) HandleGetWins(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.TotalWinsPerSeason(r.Context()))
}
