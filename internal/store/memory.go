package store

import (
	"context"
	"sync"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
)

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]domain.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string]domain.Snapshot)}
}

func (s *MemoryStore) Save(_ context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snap.Key] = snap
	return nil
}

func (s *MemoryStore) Latest(_ context.Context, key string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[key]
	if !ok {
		return domain.Snapshot{}, ErrNotFound
	}
	return snap, nil
}
