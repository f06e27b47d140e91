// Package memory provides an in-process snapshot store for tests and
// ephemeral deployments.
package memory

import (
	"context"
	"sync"

	"broodcore/pkg/domain"
)

// Store keeps at most one dataset snapshot in memory.
type Store struct {
	mu      sync.Mutex
	present bool
	dataset domain.Dataset
}

// NewStore constructs an empty in-memory snapshot store.
func NewStore() *Store {
	return &Store{}
}

// Save replaces the stored snapshot.
func (s *Store) Save(_ context.Context, ds domain.Dataset) error {
	s.mu.Lock()
	s.dataset = ds
	s.present = true
	s.mu.Unlock()
	return nil
}

// Load returns the stored snapshot, if any.
func (s *Store) Load(_ context.Context) (domain.Dataset, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return domain.Dataset{}, false, nil
	}
	return s.dataset, true, nil
}

// Close releases nothing; it exists to satisfy the store contract.
func (s *Store) Close() error { return nil }
