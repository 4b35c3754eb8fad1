// Package plaintext extracts text files verbatim.
package plaintext

import (
	"context"
	"strings"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "plaintext"
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{"txt", "md", "text"}
}

// Extract returns the file content as-is, trimmed of trailing whitespace.
func (e *Extractor) Extract(_ context.Context, file *domain.UploadedFile) (string, error) {
	if file == nil {
		return "", domain.ErrInvalidInput
	}

	text := strings.TrimRight(string(file.Content), " \t\n\r")
	if text == "" {
		return "", domain.ErrExtractionFailed
	}
	return text, nil
}
