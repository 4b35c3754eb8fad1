package memory

import (
	"context"
	"sync"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// Ensure IndexMetaStore implements the interface.
var _ driven.IndexMetaStore = (*IndexMetaStore)(nil)

// IndexMetaStore is an in-memory implementation of driven.IndexMetaStore.
type IndexMetaStore struct {
	mu    sync.RWMutex
	model string
}

// NewIndexMetaStore creates a new in-memory index meta store.
func NewIndexMetaStore() *IndexMetaStore {
	return &IndexMetaStore{}
}

// GetEmbeddingModel returns the model the index was built with.
func (s *IndexMetaStore) GetEmbeddingModel(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.model == "" {
		return "", domain.ErrNotFound
	}
	return s.model, nil
}

// SetEmbeddingModel records the model used to build the index.
func (s *IndexMetaStore) SetEmbeddingModel(_ context.Context, model string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = model
	return nil
}
