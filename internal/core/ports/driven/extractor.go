package driven

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// Extractor converts an uploaded file of one format into plain text.
//
// Implementations exist per format: plain text passthrough, PDF page-text
// concatenation, CSV tabular dump, and image OCR via the vision backend.
type Extractor interface {
	// Name returns the extractor name for logging.
	Name() string

	// SupportedExtensions returns the lower-case file extensions
	// (without dot) this extractor handles.
	SupportedExtensions() []string

	// Extract returns the plain-text content of the file.
	// Returns domain.ErrExtractionFailed when the file yields no text.
	Extract(ctx context.Context, file *domain.UploadedFile) (string, error)
}

// TableExtractor is implemented by extractors that can additionally
// recover tabular regions from a document. Each table is serialised
// with " | " between cells and a newline between rows.
type TableExtractor interface {
	// ExtractTables returns the serialised tables found in the file.
	// A document without tables yields an empty slice, not an error.
	ExtractTables(ctx context.Context, file *domain.UploadedFile) ([]string, error)
}

// ExtractorRegistry selects an extractor for an uploaded file.
type ExtractorRegistry interface {
	// ForFile returns the extractor for the file's extension.
	// Returns domain.ErrUnsupportedType when no extractor matches.
	ForFile(file *domain.UploadedFile) (Extractor, error)

	// Register adds an extractor to the registry.
	Register(e Extractor)
}
