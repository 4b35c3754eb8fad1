package driving

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// AssistantService answers user queries through the full pipeline:
// relevance gate, retrieval, generation, enrichment, composition.
type AssistantService interface {
	// Ask produces a composite answer for the query and appends the
	// completed turn to the session.
	Ask(ctx context.Context, session *domain.Session, query string) (domain.CompositeAnswer, error)
}

// IndexSummary reports the outcome of an index build.
type IndexSummary struct {
	// Documents is the number of documents indexed.
	Documents int

	// Chunks is the number of chunks embedded and stored.
	Chunks int

	// EmbeddingModel is the model identity recorded with the index.
	EmbeddingModel string
}

// IndexService builds and inspects the similarity index.
type IndexService interface {
	// BuildIndex ingests the documents at the given paths: extract,
	// chunk, embed, persist. Re-running against an unchanged corpus is
	// idempotent.
	BuildIndex(ctx context.Context, paths []string) (IndexSummary, error)

	// Status reports the current index state.
	// Returns domain.ErrIndexUnavailable when no index has been built.
	Status(ctx context.Context) (IndexSummary, error)
}
