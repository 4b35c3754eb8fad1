package services

import (
	"context"
	"sync"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// EnrichmentResult carries the auxiliary search results for one query.
// A failed leg is reported via its error field; the results are simply
// empty in that case. Failures never propagate as pipeline errors.
type EnrichmentResult struct {
	Web      []domain.WebResult
	Videos   []domain.VideoResult
	WebErr   error
	VideoErr error
}

// EnrichmentService runs the independent web and video lookups.
// Both legs fail soft: an error on one never blocks the other.
type EnrichmentService struct {
	web    driven.WebSearchService
	videos driven.VideoSearchService
}

// NewEnrichmentService creates the enrichment service.
// Either service may be nil; the corresponding section stays empty.
func NewEnrichmentService(web driven.WebSearchService, videos driven.VideoSearchService) *EnrichmentService {
	return &EnrichmentService{web: web, videos: videos}
}

// Enrich fetches web and video results in parallel.
func (s *EnrichmentService) Enrich(ctx context.Context, query string, webN, videoN int) EnrichmentResult {
	var result EnrichmentResult

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if s.web == nil {
			return
		}
		result.Web, result.WebErr = s.web.Search(ctx, query, webN)
		if result.WebErr != nil {
			logger.Warn("Web search failed: %v", result.WebErr)
			result.Web = nil
		}
	}()

	go func() {
		defer wg.Done()
		if s.videos == nil {
			return
		}
		result.Videos, result.VideoErr = s.videos.Search(ctx, query, videoN)
		if result.VideoErr != nil {
			logger.Warn("Video search failed: %v", result.VideoErr)
			result.Videos = nil
		}
	}()

	wg.Wait()

	// Truncate to the requested counts; providers may return more.
	if webN > 0 && len(result.Web) > webN {
		result.Web = result.Web[:webN]
	}
	if videoN > 0 && len(result.Videos) > videoN {
		result.Videos = result.Videos[:videoN]
	}

	return result
}
