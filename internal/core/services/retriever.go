package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// RetrievalService fetches the most similar chunks for a query.
type RetrievalService struct {
	embedder  driven.EmbeddingService
	index     driven.VectorIndex
	docStore  driven.DocumentStore
	metaStore driven.IndexMetaStore
}

// NewRetrievalService creates a retriever.
func NewRetrievalService(
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	docStore driven.DocumentStore,
	metaStore driven.IndexMetaStore,
) *RetrievalService {
	return &RetrievalService{
		embedder:  embedder,
		index:     index,
		docStore:  docStore,
		metaStore: metaStore,
	}
}

// Retrieve embeds the query, searches the index, and returns up to k
// chunks ordered most similar first. Results are deduplicated by exact
// content, preserving first-seen rank order.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, k int) ([]domain.RetrievedChunk, error) {
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	if k <= 0 {
		k = domain.DefaultRetrievalK
	}

	if err := s.checkModelIdentity(ctx); err != nil {
		return nil, err
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	// Over-fetch so content-level deduplication can still fill k slots.
	hits, err := s.index.Search(ctx, vector, k*2)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	logger.Debug("Retrieval: %d raw hits for k=%d", len(hits), k)

	seen := make(map[string]bool, len(hits))
	results := make([]domain.RetrievedChunk, 0, k)

	for _, hit := range hits {
		if len(results) == k {
			break
		}

		chunk, err := s.docStore.GetChunk(ctx, hit.ChunkID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue // Chunk was removed since indexing.
			}
			return nil, fmt.Errorf("get chunk %s: %w", hit.ChunkID, err)
		}

		if seen[chunk.Content] {
			continue
		}
		seen[chunk.Content] = true

		results = append(results, domain.RetrievedChunk{
			Chunk: *chunk,
			Score: hit.Similarity,
			Rank:  len(results),
		})
	}

	return results, nil
}

// checkModelIdentity refuses to serve queries when the index was built
// with a different embedding model than the active one.
func (s *RetrievalService) checkModelIdentity(ctx context.Context) error {
	indexed, err := s.metaStore.GetEmbeddingModel(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrIndexUnavailable
		}
		return err
	}

	if active := s.embedder.ModelName(); indexed != active {
		return fmt.Errorf("%w: index built with %q, active model is %q",
			domain.ErrIndexModelMismatch, indexed, active)
	}
	return nil
}
