// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// CareerDependencies defines the interface for career-points queries.
type CareerDependencies interface {
	DriverCareerPoints(ctx context.Context, name string) decimal.Decimal
	ValidateName(token string) (string, error)
}

// CareerHandler handles driver career-points requests.
type CareerHandler struct {
	deps CareerDependencies
}

// NewCareerHandler creates a new career handler.
func NewCareerHandler(deps CareerDependencies) *CareerHandler {
	return &CareerHandler{deps: deps}
}

// careerResponse is the wire shape for GET /career/{driver}.
type careerResponse struct {
	Driver       string          `json:"driver"`
	CareerPoints decimal.Decimal `json:"career_points"`
}

// HandleGetCareer handles GET /career/{driver} requests. The driver name
// is validated against the ledger's name domain first; unknown names get a
// 404 whose message names an example of the expected format.
func (h *CareerHandler) HandleGetCareer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw := strings.TrimPrefix(r.URL.Path, "/career/")
	if raw == "" || strings.Contains(raw, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	name, err := url.PathUnescape(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	canonical, err := h.deps.ValidateName(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err)
		return
	}

	writeJSON(w, http.StatusOK, careerResponse{
		Driver:       canonical,
		CareerPoints: h.deps.DriverCareerPoints(r.Context(), canonical),
	})
}
