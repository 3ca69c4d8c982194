package memory

import (
	"context"
	"sync"

	"kredi/pkg/domain"
	"kredi/pkg/platform/audit"
)

// Store is an in-memory append-only audit log for tests and local runs.
type Store struct {
	mu     sync.RWMutex
	events []audit.Event
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *Store) ListByBorrower(_ context.Context, borrowerID domain.BorrowerID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []audit.Event
	for _, e := range s.events {
		if e.BorrowerID == borrowerID {
			out = append(out, e)
		}
	}
	return out, nil
}
