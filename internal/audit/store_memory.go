package audit

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps entries in memory for unit tests and local development.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *MemoryStore) List(_ context.Context, q ListQuery) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	for _, e := range s.entries {
		if q.Actor != nil && (e.ActorID == nil || *e.ActorID != *q.Actor) {
			continue
		}
		if q.Action != "" && e.Action != q.Action {
			continue
		}
		if q.TargetType != "" && e.TargetType != q.TargetType {
			continue
		}
		if q.TargetID != "" && e.TargetID != q.TargetID {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *MemoryStore) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	var purged int64
	for _, e := range s.entries {
		if e.OccurredAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return purged, nil
}
