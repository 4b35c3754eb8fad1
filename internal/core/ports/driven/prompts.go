package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed defaults in the
// binary; users can override individual prompts on disk.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible
	// default or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptAnswer conditions generation on retrieved context.
	// The template expects %s (context) and %s (question) placeholders.
	PromptAnswer = "answer"

	// PromptRelevanceGate is the single-shot in-domain classification.
	// The template expects a %s placeholder for the query.
	PromptRelevanceGate = "relevance_gate"

	// PromptLabAnalysis is the fixed veterinary lab-report instruction.
	// The template expects a %s placeholder for the extracted report text.
	PromptLabAnalysis = "lab_analysis"

	// PromptDiagnosis is the fixed disease-diagnosis instruction sent with
	// an uploaded image. No format placeholders.
	PromptDiagnosis = "diagnosis"

	// PromptOCR instructs the vision backend to transcribe an image.
	// No format placeholders.
	PromptOCR = "ocr"
)

// PromptStoreAware is an optional interface for services that can use custom prompts.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the service should use hardcoded default prompts.
	SetPromptStore(store PromptStore)
}
