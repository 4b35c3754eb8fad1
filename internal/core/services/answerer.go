package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// Ensure AnswerService can use custom prompts.
var _ driven.PromptStoreAware = (*AnswerService)(nil)

// AnswerService generates an answer from the query and retrieved chunks
// using the "stuff" strategy: the full text of every chunk goes into one
// prompt. There is no recursive summarisation, so the assembled context
// is capped at a character budget to stay inside the backend's window.
type AnswerService struct {
	llm           driven.LLMService
	prompts       driven.PromptStore
	contextBudget int
}

// NewAnswerService creates an answer generator.
func NewAnswerService(llm driven.LLMService, contextBudget int) *AnswerService {
	if contextBudget <= 0 {
		contextBudget = domain.DefaultContextBudget
	}
	return &AnswerService{llm: llm, contextBudget: contextBudget}
}

// SetPromptStore sets the prompt store for the answer template.
func (s *AnswerService) SetPromptStore(store driven.PromptStore) {
	s.prompts = store
}

// Generate produces the knowledge-base answer. It returns the generated
// text together with the chunks actually supplied, for citation.
func (s *AnswerService) Generate(
	ctx context.Context, query string, chunks []domain.RetrievedChunk,
) (string, []domain.RetrievedChunk, error) {
	if s.llm == nil {
		return "", nil, domain.ErrLLMUnavailable
	}

	contextText, used := s.stuffContext(chunks)
	logger.Debug("Answer generation: %d/%d chunks stuffed (%d chars)",
		len(used), len(chunks), len(contextText))

	prompt := fmt.Sprintf(loadPrompt(s.prompts, driven.PromptAnswer), contextText, query)
	answer, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		Temperature: 0.2,
	})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	return strings.TrimSpace(answer), used, nil
}

// stuffContext concatenates chunk texts up to the budget, source-tagged.
// Chunks arrive most relevant first, so truncation drops the tail.
func (s *AnswerService) stuffContext(chunks []domain.RetrievedChunk) (string, []domain.RetrievedChunk) {
	var b strings.Builder
	var used []domain.RetrievedChunk

	for _, rc := range chunks {
		entry := fmt.Sprintf("[%s]\n%s\n\n", rc.Chunk.Source, rc.Chunk.Content)
		if b.Len()+len(entry) > s.contextBudget && len(used) > 0 {
			logger.Warn("Context budget reached, dropping %d chunks", len(chunks)-len(used))
			break
		}
		b.WriteString(entry)
		used = append(used, rc)
	}

	return strings.TrimRight(b.String(), "\n"), used
}
