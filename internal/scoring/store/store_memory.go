package store

import (
	"context"
	"sync"

	"kredi/internal/scoring"
	"kredi/pkg/domain"
	"kredi/pkg/platform/sentinel"
)

// InMemoryResultStore keeps score records in memory for tests and local runs.
type InMemoryResultStore struct {
	mu         sync.RWMutex
	byID       map[domain.ScoreID]*scoring.Record
	byBorrower map[domain.BorrowerID][]*scoring.Record
}

func NewMemory() *InMemoryResultStore {
	return &InMemoryResultStore{
		byID:       make(map[domain.ScoreID]*scoring.Record),
		byBorrower: make(map[domain.BorrowerID][]*scoring.Record),
	}
}

func (s *InMemoryResultStore) Save(_ context.Context, record *scoring.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[record.ID]; exists {
		return sentinel.ErrConflict
	}
	s.byID[record.ID] = record
	s.byBorrower[record.BorrowerID] = append(s.byBorrower[record.BorrowerID], record)
	return nil
}

func (s *InMemoryResultStore) Get(_ context.Context, scoreID domain.ScoreID) (*scoring.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.byID[scoreID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	return record, nil
}

func (s *InMemoryResultStore) LatestByBorrower(_ context.Context, borrowerID domain.BorrowerID) (*scoring.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.byBorrower[borrowerID]
	if len(records) == 0 {
		return nil, sentinel.ErrNotFound
	}
	return records[len(records)-1], nil
}
