package driven

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// DocumentStore persists corpus documents and chunks.
// Backed by SQLite for metadata and embedding storage.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks stores chunks for a document, replacing any previous set.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetChunks retrieves all chunks for a document, ordered by position.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// GetChunk retrieves a specific chunk by ID.
	GetChunk(ctx context.Context, id string) (*domain.Chunk, error)

	// ListDocuments returns all indexed documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// ListChunks returns every chunk in the index, for bulk index loading.
	ListChunks(ctx context.Context) ([]domain.Chunk, error)

	// DeleteDocument removes a document and its chunks.
	DeleteDocument(ctx context.Context, id string) error

	// CountChunks returns the total number of stored chunks.
	CountChunks(ctx context.Context) (int, error)
}

// IndexMetaStore records facts about how the similarity index was built.
// The embedding model identity must match between index and query time;
// a silent mismatch degrades retrieval quality without failing.
type IndexMetaStore interface {
	// GetEmbeddingModel returns the model the index was built with.
	// Returns domain.ErrNotFound when no index has been built.
	GetEmbeddingModel(ctx context.Context) (string, error)

	// SetEmbeddingModel records the model used to build the index.
	SetEmbeddingModel(ctx context.Context, model string) error
}
