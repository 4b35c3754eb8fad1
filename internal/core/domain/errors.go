package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown extractor or provider type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrDocumentNotFound indicates a corpus document path does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrExtractionFailed indicates a document or upload yielded no usable text.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrIndexUnavailable indicates the similarity index has not been built.
	// Retrieval is impossible until `eggspert index` has been run.
	ErrIndexUnavailable = errors.New("index unavailable")

	// ErrIndexModelMismatch indicates the index was built with a different
	// embedding model than the one currently configured. Serving queries
	// against a mismatched index silently degrades retrieval, so it is refused.
	ErrIndexModelMismatch = errors.New("index embedding model mismatch")

	// ErrGeneration indicates the text-generation backend failed.
	ErrGeneration = errors.New("generation failed")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	// The retrieval pipeline is disabled without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrVisionUnavailable indicates the multimodal backend is not configured.
	// Disease diagnosis and image OCR are disabled without it.
	ErrVisionUnavailable = errors.New("vision service unavailable")

	// ErrWeatherUnavailable indicates the weather backend could not be reached.
	ErrWeatherUnavailable = errors.New("weather unavailable")

	// ErrMonitorLocked indicates another price-monitor instance holds the lock.
	// Concurrent monitors would race on the persisted hash, so only one runs.
	ErrMonitorLocked = errors.New("price monitor already running")

	// ErrRateLimited indicates an API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
