package tui

import (
	"errors"

	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
)

// ErrMissingAssistantService indicates the chat view has no backend.
var ErrMissingAssistantService = errors.New("assistant service is required")

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers questions through the full pipeline.
	Assistant driving.AssistantService

	// Index reports index status for the header line.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	// Index is optional; the header degrades to "index status unknown".
	return nil
}
