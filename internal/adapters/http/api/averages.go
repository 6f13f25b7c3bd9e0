// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// AveragesDependencies defines the interface for average-points queries.
type AveragesDependencies interface {
	AveragePointsPerSeason(ctx context.Context) map[int]decimal.Decimal
}

// AveragesHandler handles average-points requests.
type AveragesHandler struct {
	deps AveragesDependencies
}

// NewAveragesHandler creates a new averages handler.
func NewAveragesHandler(deps AveragesDependencies) *AveragesHandler {
	return &AveragesHandler{deps: deps}
}

// HandleGetAverages handles GET /averages requests, returning the rounded
// mean points per season.
func (h *AveragesHandler) HandleGetAverages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.AveragePointsPerSeason(r.Context()))
}
