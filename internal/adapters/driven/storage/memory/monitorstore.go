package memory

import (
	"context"
	"sync"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// Ensure MonitorStateStore implements the interface.
var _ driven.MonitorStateStore = (*MonitorStateStore)(nil)

// MonitorStateStore is an in-memory implementation of driven.MonitorStateStore.
type MonitorStateStore struct {
	mu     sync.RWMutex
	hashes map[string]string
}

// NewMonitorStateStore creates a new in-memory monitor state store.
func NewMonitorStateStore() *MonitorStateStore {
	return &MonitorStateStore{
		hashes: make(map[string]string),
	}
}

// GetHash returns the stored hash for the key.
func (s *MonitorStateStore) GetHash(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.hashes[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return hash, nil
}

// SetHash stores the hash for the key.
func (s *MonitorStateStore) SetHash(_ context.Context, key, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[key] = hash
	return nil
}
