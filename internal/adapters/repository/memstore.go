package repository

import (
	"sort"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/metrics"
)

// MemStore is the in-memory Store implementation. It merges the parser's
// record sequence into unique season keys while remembering the order in
// which each season was first encountered.
type MemStore struct {
	records  []model.SeasonRecord // encounter order, unique seasons
	bySeason map[int][]model.Entry
	seasons  []int // ascending
	names    []string

	publishMetrics bool
}

// New builds a frozen MemStore from parsed season records. Records that
// repeat an earlier season key have their entries appended to that season,
// preserving ledger order.
func New(records []model.SeasonRecord, opts ...Option) *MemStore {
	s := &MemStore{
		bySeason:       make(map[int][]model.Entry, len(records)),
		publishMetrics: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	index := make(map[int]int, len(records))
	for _, rec := range records {
		if at, ok := index[rec.Season]; ok {
			s.records[at].Entries = append(s.records[at].Entries, rec.Entries...)
			continue
		}
		index[rec.Season] = len(s.records)
		s.records = append(s.records, model.SeasonRecord{
			Season:  rec.Season,
			Entries: append([]model.Entry(nil), rec.Entries...),
		})
	}

	seen := make(map[string]struct{})
	entryCount := 0
	for _, rec := range s.records {
		s.bySeason[rec.Season] = rec.Entries
		s.seasons = append(s.seasons, rec.Season)
		entryCount += len(rec.Entries)
		for _, e := range rec.Entries {
			if _, ok := seen[e.Name]; ok {
				continue
			}
			seen[e.Name] = struct{}{}
			s.names = append(s.names, e.Name)
		}
	}
	sort.Ints(s.seasons)
	sort.Strings(s.names)

	if s.publishMetrics {
		metrics.UpdateLedgerSeasons(len(s.seasons))
		metrics.UpdateLedgerEntries(entryCount)
		metrics.UpdateLedgerDrivers(len(s.names))
	}

	return s
}

func (s *MemStore) Seasons() []int {
	return s.seasons
}

func (s *MemStore) Records() []model.SeasonRecord {
	return s.records
}

func (s *MemStore) Entries(season int) ([]model.Entry, bool) {
	entries, ok := s.bySeason[season]
	return entries, ok
}

func (s *MemStore) HasSeason(season int) bool {
	_, ok := s.bySeason[season]
	return ok
}

func (s *MemStore) DriverNames() []string {
	return s.names
}

func (s *MemStore) SeasonCount() int {
	return len(s.seasons)
}

func (s *MemStore) EntryCount() int {
	n := 0
	for _, rec := range s.records {
		n += len(rec.Entries)
	}
	return n
}
