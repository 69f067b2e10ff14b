package inmem

import "github.com/kompox/groceryops/domain"

// Store provides a unified interface for all in-memory repositories.
type Store struct {
	RunRepo *RunRepository
}

// NewStore creates a new in-memory store with all repositories.
func NewStore() *Store {
	return &Store{RunRepo: NewRunRepository()}
}

// Repositories returns the store's repositories for use case wiring.
func (s *Store) Repositories() *domain.Repositories {
	return &domain.Repositories{Run: s.RunRepo}
}

// Compile-time assertions
var _ domain.RunRepository = (*RunRepository)(nil)
