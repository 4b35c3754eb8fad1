// Package image extracts text from images by OCR through the vision
// backend.
package image

import (
	"context"
	"fmt"
	"strings"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// defaultOCRPrompt is used when no PromptStore override is present.
const defaultOCRPrompt = `Transcribe all text visible in this image. Return only the transcribed text, preserving line breaks.`

// Extractor transcribes photographed or scanned documents with the
// multimodal backend. It needs network access, unlike the other
// extractors.
type Extractor struct {
	vision  driven.VisionService
	prompts driven.PromptStore
}

// New creates a new image OCR extractor.
func New(vision driven.VisionService) *Extractor {
	return &Extractor{vision: vision}
}

// SetPromptStore wires an optional prompt override store.
func (e *Extractor) SetPromptStore(store driven.PromptStore) {
	e.prompts = store
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "image-ocr"
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{"jpg", "jpeg", "png"}
}

// Extract asks the vision backend for a transcription.
func (e *Extractor) Extract(ctx context.Context, file *domain.UploadedFile) (string, error) {
	if file == nil {
		return "", domain.ErrInvalidInput
	}
	if e.vision == nil {
		return "", domain.ErrVisionUnavailable
	}

	prompt := defaultOCRPrompt
	if e.prompts != nil {
		if p, err := e.prompts.Load(driven.PromptOCR); err == nil && p != "" {
			prompt = p
		}
	}

	text, err := e.vision.Describe(ctx, prompt, file.Content, file.MIMEType())
	if err != nil {
		return "", fmt.Errorf("transcribing %s: %w", file.Name, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%s: %w", file.Name, domain.ErrExtractionFailed)
	}
	return text, nil
}
