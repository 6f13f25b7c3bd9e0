// Package model contains domain models passed between layers.
package model

import "github.com/shopspring/decimal"

// Entry represents one driver's result within a single season.
// Entries are value types and must not be mutated after parsing.
type Entry struct {
	Name   string          // driver name as written in the ledger
	Points decimal.Decimal // championship points, >= 0
	Wins   int             // race wins, >= 0
}

// SeasonRecord groups the entries recorded for one season.
// Entry order follows the ledger file; it carries no meaning beyond
// acting as a stable tie-break during aggregation.
type SeasonRecord struct {
	Season  int
	Entries []Entry
}

// SeasonPoints pairs a season with its summed points, used where the
// ordering of results is part of the contract.
type SeasonPoints struct {
	Season int             `json:"season"`
	Points decimal.Decimal `json:"points"`
}
