package driven

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// WebSearchService fetches web results for a query.
// Results carry the provider's own ranking; no local re-ranking happens.
type WebSearchService interface {
	// Search returns up to n results for the query.
	Search(ctx context.Context, query string, n int) ([]domain.WebResult, error)

	// Close releases resources.
	Close() error
}

// VideoSearchService fetches video results for a query.
type VideoSearchService interface {
	// Search returns up to n video results for the query.
	Search(ctx context.Context, query string, n int) ([]domain.VideoResult, error)

	// Close releases resources.
	Close() error
}
