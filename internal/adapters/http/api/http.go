// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/query"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	SeasonWinners(ctx context.Context) map[int]model.Entry
	TotalWinsPerSeason(ctx context.Context) map[int]int
	AveragePointsPerSeason(ctx context.Context) map[int]decimal.Decimal
	SeasonsByTotalPointsAscending(ctx context.Context) []query.SeasonPoints
	DriverCareerPoints(ctx context.Context, name string) decimal.Decimal
	SeasonEntries(ctx context.Context, season int) ([]model.Entry, bool)

	ValidateSeason(token string) (int, error)
	ValidateName(token string) (string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	winnersHandler   *WinnersHandler
	winsHandler      *WinsHandler
	averagesHandler  *AveragesHandler
	standingsHandler *StandingsHandler
	careerHandler    *CareerHandler
	seasonsHandler   *SeasonsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		winnersHandler:   NewWinnersHandler(deps),
		winsHandler:      NewWinsHandler(deps),
		averagesHandler:  NewAveragesHandler(deps),
		standingsHandler: NewStandingsHandler(deps),
		careerHandler:    NewCareerHandler(deps),
		seasonsHandler:   NewSeasonsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/winners", RequestIDMiddleware(MetricsMiddleware(s.winnersHandler.HandleGetWinners, "winners")))
	mux.HandleFunc("/wins", RequestIDMiddleware(MetricsMiddleware(s.winsHandler.HandleGetWins, "wins")))
	mux.HandleFunc("/averages", RequestIDMiddleware(MetricsMiddleware(s.averagesHandler.HandleGetAverages, "averages")))
	mux.HandleFunc("/standings", RequestIDMiddleware(MetricsMiddleware(s.standingsHandler.HandleGetStandings, "standings")))
	mux.HandleFunc("/career/", RequestIDMiddleware(MetricsMiddleware(s.careerHandler.HandleGetCareer, "career")))
	mux.HandleFunc("/seasons/", RequestIDMiddleware(MetricsMiddleware(s.seasonsHandler.HandleGetSeason, "seasons")))
}

// entryResponse mirrors the wire shape of a single season entry.
type entryResponse struct {
	Name   string          `json:"name"`
	Points decimal.Decimal `json:"points"`
	Wins   int             `json:"wins"`
}

func toEntryResponse(e model.Entry) entryResponse {
	return entryResponse{Name: e.Name, Points: e.Points, Wins: e.Wins}
}

func toEntryResponses(entries []model.Entry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
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
