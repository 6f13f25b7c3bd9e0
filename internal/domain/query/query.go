// Package query computes the analytical views over a parsed ledger.
//
// Every operation is a pure read: the store is immutable and nothing here
// keeps state between calls, so an Engine is safe to share across
// goroutines.
package query

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/model"
)

// Default rounding configuration for point averages.
const (
	defaultRoundingMode   = RoundHalfUp
	defaultRoundingDigits = 2
)

// SeasonPoints is the ordered (season, total points) pair returned by
// SeasonsByTotalPointsAscending.
type SeasonPoints = model.SeasonPoints

// Engine answers the fixed query set over a ledger store.
type Engine struct {
	store  repository.Store
	mode   RoundingMode
	digits int32
}

// New creates an Engine over store with the given options.
func New(store repository.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		mode:   defaultRoundingMode,
		digits: defaultRoundingDigits,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SeasonWinners returns, per season, the entry with the highest points.
// Among entries sharing the maximum the first one in ledger order wins;
// wins counts and names play no part in the tie-break. Seasons without
// entries are omitted.
func (e *Engine) SeasonWinners() map[int]model.Entry {
	winners := make(map[int]model.Entry, e.store.SeasonCount())
	for _, rec := range e.store.Records() {
		if len(rec.Entries) == 0 {
			continue
		}
		best := rec.Entries[0]
		for _, entry := range rec.Entries[1:] {
			if entry.Points.GreaterThan(best.Points) {
				best = entry
			}
		}
		winners[rec.Season] = best
	}
	return winners
}

// TotalWinsPerSeason returns the summed race wins per season, zero for a
// season with no entries.
func (e *Engine) TotalWinsPerSeason() map[int]int {
	totals := make(map[int]int, e.store.SeasonCount())
	for _, rec := range e.store.Records() {
		wins := 0
		for _, entry := range rec.Entries {
			wins += entry.Wins
		}
		totals[rec.Season] = wins
	}
	return totals
}

// AveragePointsPerSeason returns the rounded arithmetic mean of points per
// season. A season with no entries yields exactly zero rather than a
// division error.
func (e *Engine) AveragePointsPerSeason() map[int]decimal.Decimal {
	averages := make(map[int]decimal.Decimal, e.store.SeasonCount())
	for _, rec := range e.store.Records() {
		if len(rec.Entries) == 0 {
			averages[rec.Season] = decimal.Zero
			continue
		}
		sum := decimal.Zero
		for _, entry := range rec.Entries {
			sum = sum.Add(entry.Points)
		}
		mean := sum.Div(decimal.NewFromInt(int64(len(rec.Entries))))
		averages[rec.Season] = e.round(mean)
	}
	return averages
}

// SeasonsByTotalPointsAscending returns every season with its summed
// points, ordered by total ascending. Equal totals keep the seasons'
// ledger encounter order; the result is a slice because that order is
// part of the contract.
func (e *Engine) SeasonsByTotalPointsAscending() []SeasonPoints {
	records := e.store.Records()
	totals := make([]SeasonPoints, 0, len(records))
	for _, rec := range records {
		sum := decimal.Zero
		for _, entry := range rec.Entries {
			sum = sum.Add(entry.Points)
		}
		totals = append(totals, SeasonPoints{Season: rec.Season, Points: sum})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Points.LessThan(totals[j].Points)
	})
	return totals
}

// DriverCareerPoints sums a driver's points across all seasons. The name is
// matched case-insensitively with interior whitespace collapsed. An unknown
// name yields zero; rejecting it up front is the validator's job.
func (e *Engine) DriverCareerPoints(name string) decimal.Decimal {
	want := model.FoldName(name)
	total := decimal.Zero
	for _, rec := range e.store.Records() {
		for _, entry := range rec.Entries {
			if model.FoldName(entry.Name) == want {
				total = total.Add(entry.Points)
			}
		}
	}
	return total
}

// SeasonEntries returns a season's entries in ledger order. The second
// return is false for an unknown season key.
func (e *Engine) SeasonEntries(season int) ([]model.Entry, bool) {
	return e.store.Entries(season)
}

// RoundingMode reports the configured average-points rounding mode.
func (e *Engine) RoundingMode() RoundingMode {
	return e.mode
}

func (e *Engine) round(d decimal.Decimal) decimal.Decimal {
	if e.mode == RoundCeil {
		return d.RoundCeil(e.digits)
	}
	// decimal.Round is half away from zero, which is half-up for the
	// non-negative points domain.
	return d.Round(e.digits)
}
