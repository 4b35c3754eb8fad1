// Package groq provides an LLM service adapter for the Groq inference
// API. Groq exposes an OpenAI-compatible surface, so the adapter is a
// thin wrapper over the openai package with Groq defaults.
package groq

import (
	"time"

	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driven/llm/openai"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// Default configuration values.
const (
	DefaultBaseURL  = "https://api.groq.com/openai/v1"
	DefaultLLMModel = "llama3-8b-8192"
)

// LLMConfig holds configuration for the Groq LLM service.
type LLMConfig struct {
	// APIKey is the Groq API key (required).
	APIKey string

	// Model is the chat model to use (default: llama3-8b-8192).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// NewLLMService creates a new Groq LLM service.
func NewLLMService(cfg LLMConfig) (driven.LLMService, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultLLMModel
	}

	return openai.NewLLMService(openai.LLMConfig{
		APIKey:  cfg.APIKey,
		BaseURL: DefaultBaseURL,
		Model:   model,
		Timeout: cfg.Timeout,
	})
}
