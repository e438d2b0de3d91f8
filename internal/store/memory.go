package store

import (
	"context"
	"sort"
	"sync"

	"github.com/roach88/tackle/internal/clock"
)

// MemoryStore keeps catch records in process memory. It follows the same
// ordering and aggregation rules as the SQL backends.
type MemoryStore struct {
	mu      sync.RWMutex
	clock   clock.Clock
	nextID  int64
	records []Record
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{clock: clock.OrReal(clk)}
}

// Backend implements Store.
func (s *MemoryStore) Backend() string {
	return BackendMemory
}

// EnsureSchema implements Store. There is no schema to create.
func (s *MemoryStore) EnsureSchema(_ context.Context) error {
	return nil
}

// SaveCatch implements Store.
func (s *MemoryStore) SaveCatch(_ context.Context, angler, species string, weight float64) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	rec := Record{
		ID:         s.nextID,
		Angler:     NormalizeName(angler),
		Species:    NormalizeName(species),
		Weight:     weight,
		CapturedAt: s.clock.Now().UTC(),
	}
	s.records = append(s.records, rec)
	return rec, nil
}

// AllCatches implements Store.
func (s *MemoryStore) AllCatches(_ context.Context, angler string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := NormalizeName(angler)
	out := []Record{}
	for _, rec := range s.records {
		if key == "" || rec.Angler == key {
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CapturedAt.Equal(out[j].CapturedAt) {
			return out[i].CapturedAt.After(out[j].CapturedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// CatchSummary implements Store.
func (s *MemoryStore) CatchSummary(_ context.Context, angler string) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := NormalizeName(angler)
	var sum Summary
	for _, rec := range s.records {
		if rec.Angler == key {
			sum.Count++
			sum.TotalWeight += rec.Weight
		}
	}
	return sum, nil
}
