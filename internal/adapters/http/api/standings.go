// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/podium/internal/domain/query"
)

// StandingsDependencies defines the interface for season-standings queries.
type StandingsDependencies interface {
	SeasonsByTotalPointsAscending(ctx context.Context) []query.SeasonPoints
}

// StandingsHandler handles season-standings requests.
type StandingsHandler struct {
	deps StandingsDependencies
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps StandingsDependencies) *StandingsHandler {
	return &StandingsHandler{deps: deps}
}

// HandleGetStandings handles GET /standings requests. The response is an
// ordered array, lowest total first; clients must not re-sort it.
func (h *StandingsHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	standings := h.deps.SeasonsByTotalPointsAscending(r.Context())
	if standings == nil {
		standings = []query.SeasonPoints{}
	}
	writeJSON(w, http.StatusOK, standings)
}
