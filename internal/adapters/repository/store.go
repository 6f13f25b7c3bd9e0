// Package repository defines the read-only ledger store interface.
package repository

import "github.com/okian/podium/internal/domain/model"

// Store provides read access to the parsed ledger. Implementations are
// frozen at construction time; nothing may mutate them afterwards, which
// also makes every method safe for concurrent use.
type Store interface {
	// Seasons returns all season keys in ascending order.
	Seasons() []int

	// Records returns the season records in ledger encounter order.
	// Callers must treat the returned slices as read-only.
	Records() []model.SeasonRecord

	// Entries returns the entry sequence for a season in ledger order.
	// The second return is false for an unknown season key.
	Entries(season int) ([]model.Entry, bool)

	// HasSeason reports whether the season key exists in the ledger.
	HasSeason(season int) bool

	// DriverNames returns the distinct driver names across all seasons,
	// sorted, with the ledger's original spelling preserved.
	DriverNames() []string

	// SeasonCount returns the number of distinct seasons.
	SeasonCount() int

	// EntryCount returns the total number of entries across all seasons.
	EntryCount() int
}
