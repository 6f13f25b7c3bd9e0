// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/podium/internal/domain/model"
)

// SeasonsDependencies defines the interface for season-entry lookups.
type SeasonsDependencies interface {
	SeasonEntries(ctx context.Context, season int) ([]model.Entry, bool)
	ValidateSeason(token string) (int, error)
}

// SeasonsHandler handles single-season lookups.
type SeasonsHandler struct {
	deps SeasonsDependencies
}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler(deps SeasonsDependencies) *SeasonsHandler {
	return &SeasonsHandler{deps: deps}
}

// seasonResponse is the wire shape for GET /seasons/{year}.
type seasonResponse struct {
	Season  int             `json:"season"`
	Entries []entryResponse `json:"entries"`
}

// HandleGetSeason handles GET /seasons/{year} requests. The year token is
// validated against the ledger's season keys; unknown years get a 404
// whose message names the valid range.
func (h *SeasonsHandler) HandleGetSeason(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	token := strings.TrimPrefix(r.URL.Path, "/seasons/")
	if token == "" || strings.Contains(token, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	season, err := h.deps.ValidateSeason(token)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}

	entries, ok := h.deps.SeasonEntries(r.Context(), season)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, seasonResponse{
		Season:  season,
		Entries: toEntryResponses(entries),
	})
}
