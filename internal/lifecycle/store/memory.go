// Package store persists the lifecycle configuration singleton. Both
// implementations create the row with defaults on first read.
package store

import (
	"context"
	"sync"

	"newsdesk/internal/lifecycle/models"
)

// InMemory holds the config singleton behind a mutex. Used by unit tests
// and local development.
type InMemory struct {
	mu  sync.Mutex
	cfg *models.Config
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

// Get returns the singleton, creating it with defaults if absent.
func (s *InMemory) Get(_ context.Context) (*models.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg == nil {
		s.cfg = models.NewDefaultConfig()
	}
	return s.cfg.Clone(), nil
}

// Save replaces the singleton.
func (s *InMemory) Save(_ context.Context, cfg *models.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg.Clone()
	return nil
}
