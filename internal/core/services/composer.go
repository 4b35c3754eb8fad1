package services

import (
	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// composeAnswer merges the generator output and enrichment results into
// one composite answer with per-section failure metadata. Pure
// formatting: a failure in one section never blocks the other two.
func composeAnswer(
	knowledge string,
	used []domain.RetrievedChunk,
	knowledgeErr error,
	enrichment EnrichmentResult,
) domain.CompositeAnswer {
	answer := domain.CompositeAnswer{
		Knowledge:    knowledge,
		SourceChunks: used,
		Web:          enrichment.Web,
		Videos:       enrichment.Videos,
	}

	if knowledgeErr != nil {
		answer.Knowledge = ""
		answer.SourceChunks = nil
		answer.Failures = append(answer.Failures, domain.SectionFailure{
			Section: domain.SectionKnowledge,
			Reason:  knowledgeErr.Error(),
		})
	}
	if enrichment.WebErr != nil {
		answer.Failures = append(answer.Failures, domain.SectionFailure{
			Section: domain.SectionWeb,
			Reason:  enrichment.WebErr.Error(),
		})
	}
	if enrichment.VideoErr != nil {
		answer.Failures = append(answer.Failures, domain.SectionFailure{
			Section: domain.SectionVideo,
			Reason:  enrichment.VideoErr.Error(),
		})
	}

	return answer
}

// refusalAnswer is the fixed short-circuit for gated-out queries.
func refusalAnswer() domain.CompositeAnswer {
	return domain.CompositeAnswer{Refused: true}
}
