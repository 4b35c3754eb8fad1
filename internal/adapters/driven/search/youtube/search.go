// Package youtube adapts the YouTube Data API to the video-search port.
package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/search"
	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

const watchURL = "https://www.youtube.com/watch?v=%s"

// Ensure SearchService implements the interface.
var _ driven.VideoSearchService = (*SearchService)(nil)

// Config holds the credentials for the YouTube Data API.
type Config struct {
	// APIKey authenticates requests.
	APIKey string
}

// SearchService implements driven.VideoSearchService on top of the
// YouTube Data API.
type SearchService struct {
	svc     *youtube.Service
	limiter *search.RateLimiter
}

// NewSearchService creates a video search service.
func NewSearchService(ctx context.Context, config Config) (*SearchService, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("youtube: %w: API key required", domain.ErrInvalidInput)
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &SearchService{
		svc:     svc,
		limiter: search.NewRateLimiter(search.ServiceVideo),
	}, nil
}

// Search returns up to n video results for the query, in provider order.
func (s *SearchService) Search(ctx context.Context, query string, n int) ([]domain.VideoResult, error) {
	if query == "" {
		return nil, fmt.Errorf("youtube: %w: empty query", domain.ErrInvalidInput)
	}
	if n <= 0 {
		n = 3
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(n)).
		Context(ctx).
		Do()
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == 429 {
			s.limiter.RecordRateLimitError(0)
		}
		return nil, fmt.Errorf("video search: %w", err)
	}

	results := make([]domain.VideoResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		results = append(results, domain.VideoResult{
			Title:   item.Snippet.Title,
			URL:     fmt.Sprintf(watchURL, item.Id.VideoId),
			Channel: item.Snippet.ChannelTitle,
		})
	}
	return results, nil
}

// Close releases resources.
func (s *SearchService) Close() error {
	return nil
}
