package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// Assistant is the single parameterised answering pipeline:
// gate, then retrieval + generation concurrently with enrichment,
// then composition. The gate short-circuits the whole turn.
type Assistant struct {
	gate       RelevanceGate
	retriever  *RetrievalService
	answerer   *AnswerService
	enrichment *EnrichmentService
	settings   domain.PipelineSettings
}

// NewAssistant creates the assistant pipeline.
func NewAssistant(
	gate RelevanceGate,
	retriever *RetrievalService,
	answerer *AnswerService,
	enrichment *EnrichmentService,
	settings domain.PipelineSettings,
) *Assistant {
	settings.Normalise()
	return &Assistant{
		gate:       gate,
		retriever:  retriever,
		answerer:   answerer,
		enrichment: enrichment,
		settings:   settings,
	}
}

// Ask runs one turn of the pipeline and appends the result to the session.
func (a *Assistant) Ask(ctx context.Context, session *domain.Session, query string) (domain.CompositeAnswer, error) {
	logger.Section("Assistant Turn")
	logger.Debug("Query: %q (gate=%s, k=%d)", query, a.settings.Gate, a.settings.RetrievalK)

	relevant, err := a.gate.IsRelevant(ctx, query)
	if err != nil {
		return domain.CompositeAnswer{}, fmt.Errorf("relevance gate: %w", err)
	}
	if !relevant {
		logger.Info("Gate rejected query; returning refusal")
		answer := refusalAnswer()
		session.Append(query, answer)
		return answer, nil
	}

	// Knowledge-base leg and enrichment leg run concurrently; they share
	// nothing but the query.
	var (
		wg           sync.WaitGroup
		knowledge    string
		used         []domain.RetrievedChunk
		knowledgeErr error
		enrichment   EnrichmentResult
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		knowledge, used, knowledgeErr = a.answerFromKnowledgeBase(ctx, query)
		if knowledgeErr != nil {
			logger.Warn("Knowledge-base leg failed: %v", knowledgeErr)
		}
	}()

	go func() {
		defer wg.Done()
		enrichment = a.enrichment.Enrich(ctx, query, a.settings.WebResults, a.settings.VideoResults)
	}()

	wg.Wait()

	// A missing or mismatched index is fatal to the query and surfaced;
	// backend failures merely degrade the knowledge section.
	if errors.Is(knowledgeErr, domain.ErrIndexUnavailable) || errors.Is(knowledgeErr, domain.ErrIndexModelMismatch) {
		return domain.CompositeAnswer{}, knowledgeErr
	}

	answer := composeAnswer(knowledge, used, knowledgeErr, enrichment)
	session.Append(query, answer)

	logger.Info("Turn complete: kb=%d chars, web=%d, videos=%d, failures=%d",
		len(answer.Knowledge), len(answer.Web), len(answer.Videos), len(answer.Failures))
	return answer, nil
}

// answerFromKnowledgeBase runs retrieval then generation.
func (a *Assistant) answerFromKnowledgeBase(ctx context.Context, query string) (string, []domain.RetrievedChunk, error) {
	chunks, err := a.retriever.Retrieve(ctx, query, a.settings.RetrievalK)
	if err != nil {
		return "", nil, err
	}
	return a.answerer.Generate(ctx, query, chunks)
}
