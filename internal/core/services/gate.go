package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// RelevanceGate classifies whether a query is in-domain before the full
// pipeline runs. Both strategies honour the same contract.
type RelevanceGate interface {
	// IsRelevant reports whether the query is about poultry farming.
	IsRelevant(ctx context.Context, query string) (bool, error)
}

// defaultGateKeywords is the allow-list for the keyword strategy.
var defaultGateKeywords = []string{
	"poultry", "chicken", "hen", "rooster", "broiler", "layer",
	"egg", "chick", "coop", "hatchery", "feed",
}

// KeywordGate is the offline gate strategy: substring containment
// against a small allow-list. Cheap, but prone to false negatives on
// paraphrased in-domain questions.
type KeywordGate struct {
	keywords []string
}

// NewKeywordGate creates a keyword gate. With no keywords the default
// allow-list is used.
func NewKeywordGate(keywords ...string) *KeywordGate {
	if len(keywords) == 0 {
		keywords = defaultGateKeywords
	}
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return &KeywordGate{keywords: lowered}
}

// IsRelevant reports whether the query contains any allow-listed term.
func (g *KeywordGate) IsRelevant(_ context.Context, query string) (bool, error) {
	q := strings.ToLower(query)
	for _, k := range g.keywords {
		if strings.Contains(q, k) {
			return true, nil
		}
	}
	return false, nil
}

// ModelGate asks the LLM for a single-shot YES/NO classification.
// Anything other than an exact "YES" (after trimming and case folding)
// counts as NO, keeping the gate total even when the backend rambles.
type ModelGate struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewModelGate creates a model-classifier gate.
func NewModelGate(llm driven.LLMService) *ModelGate {
	return &ModelGate{llm: llm}
}

// SetPromptStore sets the prompt store for the classification prompt.
func (g *ModelGate) SetPromptStore(store driven.PromptStore) {
	g.prompts = store
}

// IsRelevant classifies the query with the LLM.
func (g *ModelGate) IsRelevant(ctx context.Context, query string) (bool, error) {
	if g.llm == nil {
		return false, domain.ErrLLMUnavailable
	}

	prompt := fmt.Sprintf(loadPrompt(g.prompts, driven.PromptRelevanceGate), query)
	reply, err := g.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   4,
		Temperature: 0,
	})
	if err != nil {
		return false, fmt.Errorf("gate classification: %w", err)
	}

	verdict := strings.ToUpper(strings.TrimSpace(reply))
	logger.Debug("Model gate verdict for %q: %q", query, verdict)
	return verdict == "YES", nil
}

// NewRelevanceGate selects the gate implementation for the configured
// strategy.
func NewRelevanceGate(strategy domain.GateStrategy, llm driven.LLMService) (RelevanceGate, error) {
	switch strategy {
	case domain.GateKeyword:
		return NewKeywordGate(), nil
	case domain.GateModel:
		return NewModelGate(llm), nil
	default:
		return nil, fmt.Errorf("%w: gate strategy %q", domain.ErrUnsupportedType, strategy)
	}
}
