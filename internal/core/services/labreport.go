package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

var _ driving.LabReportAnalyser = (*LabReportService)(nil)

// LabReportService extracts text from an uploaded lab report and asks
// the language model for a veterinary interpretation.
type LabReportService struct {
	extractors driven.ExtractorRegistry
	llm        driven.LLMService
	prompts    driven.PromptStore
}

// NewLabReportService creates the lab report analyser.
func NewLabReportService(extractors driven.ExtractorRegistry, llm driven.LLMService) *LabReportService {
	return &LabReportService{extractors: extractors, llm: llm}
}

// SetPromptStore wires an optional prompt override store.
func (s *LabReportService) SetPromptStore(store driven.PromptStore) {
	s.prompts = store
}

// Analyse extracts the report content and generates an interpretation.
func (s *LabReportService) Analyse(ctx context.Context, file *domain.UploadedFile) (string, error) {
	if file == nil {
		return "", domain.ErrInvalidInput
	}

	extractor, err := s.extractors.ForFile(file)
	if err != nil {
		return "", fmt.Errorf("lab report %q: %w", file.Name, err)
	}

	text, err := extractor.Extract(ctx, file)
	if err != nil {
		return "", fmt.Errorf("extracting lab report %q: %w", file.Name, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("lab report %q: %w", file.Name, domain.ErrExtractionFailed)
	}

	prompt := loadPrompt(s.prompts, driven.PromptLabAnalysis)
	logger.Debug("Analysing lab report %q (%d bytes extracted)", file.Name, len(text))

	result, err := s.llm.Generate(ctx, fmt.Sprintf(prompt, text), driven.GenerateOptions{
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("lab analysis: %w", err)
	}
	return strings.TrimSpace(result), nil
}
