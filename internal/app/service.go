// Package service provides the core business service that wires the ledger
// parser, store, query engine, and validator together and implements the
// dependencies required by the HTTP API and the interactive console.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/parse"
	"github.com/okian/podium/internal/domain/query"
	"github.com/okian/podium/internal/domain/validate"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Default configuration values.
const (
	defaultRoundingDigits = 2
	defaultMenuSize       = 5
)

// Service owns the loaded ledger and answers queries over it. The ledger
// is parsed exactly once via Load; afterwards the service is read-only and
// safe for concurrent use.
type Service struct {
	store     repository.Store
	engine    *query.Engine
	validator *validate.Validator

	// Configuration
	roundingMode   query.RoundingMode
	roundingDigits int32
	namePolicy     validate.NamePolicy
	menuSize       int

	// State
	loadedAt   time.Time
	ledgerPath string

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRounding sets the rounding mode and digits for point averages.
func WithRounding(mode query.RoundingMode, digits int32) Option {
	return func(s *Service) {
		if mode != "" {
			s.roundingMode = mode
		}
		if digits >= 0 {
			s.roundingDigits = digits
		}
	}
}

// WithNamePolicy sets the driver-name validation policy.
func WithNamePolicy(policy validate.NamePolicy) Option {
	return func(s *Service) {
		if policy != "" {
			s.namePolicy = policy
		}
	}
}

// WithMenuSize sets the number of actions the menu validator accepts.
func WithMenuSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.menuSize = n
		}
	}
}

// New constructs a Service with default configuration. The service is not
// usable until Load has succeeded.
func New(opts ...Option) *Service {
	s := &Service{
		roundingMode:   query.RoundHalfUp,
		roundingDigits: defaultRoundingDigits,
		namePolicy:     validate.AcceptAnyCase,
		menuSize:       defaultMenuSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	return s
}

// Load parses the ledger file at path and freezes the resulting store.
// A parse failure is fatal for the caller: no valid ledger means no
// queries can ever run, so startup must abort.
func (s *Service) Load(ctx context.Context, path string) error {
	start := time.Now()

	records, err := parse.ParseFile(path)
	if err != nil {
		metrics.RecordParseFailure()
		return fmt.Errorf("load ledger %q: %w", path, err)
	}

	s.store = repository.New(records)
	s.engine = query.New(s.store, query.WithRounding(s.roundingMode, s.roundingDigits))
	s.validator = validate.New(s.store,
		validate.WithMenuSize(s.menuSize),
		validate.WithNamePolicy(s.namePolicy),
	)
	s.loadedAt = time.Now()
	s.ledgerPath = path

	elapsed := time.Since(start)
	metrics.RecordParseDuration(float64(elapsed.Milliseconds()))
	metrics.RecordLedgerLoaded(s.loadedAt)

	s.log.Info(ctx, "ledger loaded",
		logger.String("path", path),
		logger.Int("seasons", s.store.SeasonCount()),
		logger.Int("entries", s.store.EntryCount()),
		logger.Int("drivers", len(s.store.DriverNames())),
		logger.String("elapsed", elapsed.String()),
	)
	return nil
}

// Query operations. Each delegates to the pure engine and counts the call.

// SeasonWinners returns the highest-scoring entry per season.
func (s *Service) SeasonWinners(ctx context.Context) map[int]model.Entry {
	metrics.RecordQuery("season_winners")
	return s.engine.SeasonWinners()
}

// TotalWinsPerSeason returns summed race wins per season.
func (s *Service) TotalWinsPerSeason(ctx context.Context) map[int]int {
	metrics.RecordQuery("total_wins")
	return s.engine.TotalWinsPerSeason()
}

// AveragePointsPerSeason returns the rounded mean points per season.
func (s *Service) AveragePointsPerSeason(ctx context.Context) map[int]decimal.Decimal {
	metrics.RecordQuery("average_points")
	return s.engine.AveragePointsPerSeason()
}

// SeasonsByTotalPointsAscending returns seasons ordered by total points.
func (s *Service) SeasonsByTotalPointsAscending(ctx context.Context) []query.SeasonPoints {
	metrics.RecordQuery("seasons_by_points")
	return s.engine.SeasonsByTotalPointsAscending()
}

// DriverCareerPoints returns a driver's career point total.
func (s *Service) DriverCareerPoints(ctx context.Context, name string) decimal.Decimal {
	metrics.RecordQuery("career_points")
	return s.engine.DriverCareerPoints(name)
}

// SeasonEntries returns the raw entry sequence for a season.
func (s *Service) SeasonEntries(ctx context.Context, season int) ([]model.Entry, bool) {
	metrics.RecordQuery("season_entries")
	return s.engine.SeasonEntries(season)
}

// Validation operations, delegating to the token validator.

// ValidateMenuOption validates a menu token.
func (s *Service) ValidateMenuOption(token string) (int, error) {
	return s.validator.MenuOption(token)
}

// ValidateSeason validates a season token.
func (s *Service) ValidateSeason(token string) (int, error) {
	return s.validator.Season(token)
}

// ValidateName validates a driver-name token and returns its canonical form.
func (s *Service) ValidateName(token string) (string, error) {
	return s.validator.Name(token)
}

// Seasons returns all season keys ascending.
func (s *Service) Seasons() []int {
	return s.store.Seasons()
}

// DriverNames returns the distinct driver names in the ledger.
func (s *Service) DriverNames() []string {
	return s.store.DriverNames()
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"ledgerPath":     s.ledgerPath,
		"loadedAt":       s.loadedAt.Format(time.RFC3339),
		"roundingMode":   string(s.roundingMode),
		"roundingDigits": s.roundingDigits,
		"namePolicy":     string(s.namePolicy),
	}
	if s.store != nil {
		stats["seasonCount"] = s.store.SeasonCount()
		stats["entryCount"] = s.store.EntryCount()
		stats["driverCount"] = len(s.store.DriverNames())
		if seasons := s.store.Seasons(); len(seasons) > 0 {
			stats["firstSeason"] = seasons[0]
			stats["lastSeason"] = seasons[len(seasons)-1]
		}
	}
	return stats
}
