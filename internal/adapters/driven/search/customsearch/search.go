// Package customsearch adapts the Google Programmable Search Engine API
// to the web-search port.
package customsearch

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/search"
	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// maxResultsPerCall is the API's hard cap on the num parameter.
const maxResultsPerCall = 10

// Ensure SearchService implements the interface.
var _ driven.WebSearchService = (*SearchService)(nil)

// Config holds the credentials for the Programmable Search Engine API.
type Config struct {
	// APIKey authenticates requests.
	APIKey string

	// EngineID is the search engine (cx) identifier.
	EngineID string
}

// SearchService implements driven.WebSearchService on top of the
// Programmable Search Engine API.
type SearchService struct {
	svc      *customsearch.Service
	engineID string
	limiter  *search.RateLimiter
}

// NewSearchService creates a web search service.
func NewSearchService(ctx context.Context, config Config) (*SearchService, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("customsearch: %w: API key required", domain.ErrInvalidInput)
	}
	if config.EngineID == "" {
		return nil, fmt.Errorf("customsearch: %w: engine ID required", domain.ErrInvalidInput)
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create customsearch service: %w", err)
	}

	return &SearchService{
		svc:      svc,
		engineID: config.EngineID,
		limiter:  search.NewRateLimiter(search.ServiceWeb),
	}, nil
}

// Search returns up to n results for the query, in provider order.
func (s *SearchService) Search(ctx context.Context, query string, n int) ([]domain.WebResult, error) {
	if query == "" {
		return nil, fmt.Errorf("customsearch: %w: empty query", domain.ErrInvalidInput)
	}
	if n <= 0 || n > maxResultsPerCall {
		n = maxResultsPerCall
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.svc.Cse.List().
		Q(query).
		Cx(s.engineID).
		Num(int64(n)).
		Context(ctx).
		Do()
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == 429 {
			s.limiter.RecordRateLimitError(0)
		}
		return nil, fmt.Errorf("web search: %w", err)
	}

	results := make([]domain.WebResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, domain.WebResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}

// Close releases resources.
func (s *SearchService) Close() error {
	return nil
}
