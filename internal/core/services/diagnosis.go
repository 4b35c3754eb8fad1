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

var _ driving.DiseaseDiagnoser = (*DiagnosisService)(nil)

// DiagnosisService sends bird photographs to a vision model for a
// preliminary disease assessment.
type DiagnosisService struct {
	vision  driven.VisionService
	prompts driven.PromptStore
}

// NewDiagnosisService creates the diagnosis service.
func NewDiagnosisService(vision driven.VisionService) *DiagnosisService {
	return &DiagnosisService{vision: vision}
}

// SetPromptStore wires an optional prompt override store.
func (s *DiagnosisService) SetPromptStore(store driven.PromptStore) {
	s.prompts = store
}

// Diagnose runs the vision model over the uploaded image. Only image
// uploads are accepted.
func (s *DiagnosisService) Diagnose(ctx context.Context, file *domain.UploadedFile) (string, error) {
	if file == nil {
		return "", domain.ErrInvalidInput
	}
	if !file.IsImage() {
		return "", fmt.Errorf("diagnose %q: %w", file.Name, domain.ErrUnsupportedType)
	}
	if len(file.Content) == 0 {
		return "", fmt.Errorf("diagnose %q: empty file: %w", file.Name, domain.ErrInvalidInput)
	}

	prompt := loadPrompt(s.prompts, driven.PromptDiagnosis)
	logger.Debug("Diagnosing image %q (%d bytes, %s)", file.Name, len(file.Content), file.MIMEType())

	result, err := s.vision.Describe(ctx, prompt, file.Content, file.MIMEType())
	if err != nil {
		return "", fmt.Errorf("diagnosis: %w", err)
	}
	return strings.TrimSpace(result), nil
}
