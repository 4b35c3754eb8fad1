// Package csvfile extracts CSV files as readable row text.
package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles CSV documents. Each row becomes one line with the
// header column names inlined, so the chunks read as prose rather than
// bare comma runs.
type Extractor struct{}

// New creates a new CSV extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "csv"
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{"csv"}
}

// Extract renders the CSV as "header: value" lines per record.
func (e *Extractor) Extract(_ context.Context, file *domain.UploadedFile) (string, error) {
	if file == nil {
		return "", domain.ErrInvalidInput
	}

	reader := csv.NewReader(bytes.NewReader(file.Content))
	reader.FieldsPerRecord = -1 // Tolerate ragged rows.

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", file.Name, err)
	}
	if len(records) == 0 {
		return "", domain.ErrExtractionFailed
	}

	header := records[0]
	var b strings.Builder

	if len(records) == 1 {
		b.WriteString(strings.Join(header, ", "))
		return b.String(), nil
	}

	for _, record := range records[1:] {
		pairs := make([]string, 0, len(record))
		for i, value := range record {
			if i < len(header) {
				pairs = append(pairs, fmt.Sprintf("%s: %s", header[i], value))
			} else {
				pairs = append(pairs, value)
			}
		}
		b.WriteString(strings.Join(pairs, ", "))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
