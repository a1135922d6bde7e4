package homepage

import (
	"context"
	"sync"

	"newsdesk/pkg/domain"
)

// MemoryStore holds the slot singleton behind a mutex.
type MemoryStore struct {
	mu  sync.Mutex
	cfg *Config
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the singleton, creating an empty one if absent.
func (s *MemoryStore) Get(_ context.Context) (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg == nil {
		s.cfg = &Config{SubFeatured: []domain.ArticleID{}}
	}
	return s.cfg.Clone(), nil
}

// Save replaces the singleton.
func (s *MemoryStore) Save(_ context.Context, cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg.Clone()
	return nil
}
