package driven

import "context"

// VisionService provides multimodal (image + text) generation.
// It backs disease diagnosis from photos and OCR transcription of
// uploaded report images.
type VisionService interface {
	// Describe sends an image with an instruction prompt and returns the
	// model's free-text response. mimeType identifies the image format
	// (image/jpeg or image/png).
	Describe(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)

	// ModelName returns the name of the multimodal model being used.
	ModelName() string

	// Ping validates the service is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
