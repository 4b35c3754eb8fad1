package domain

const unknownDescription = "Unknown"

// GateStrategy defines how query relevance is decided before the pipeline runs.
type GateStrategy string

// Available gate strategies.
const (
	// GateKeyword matches the query against a small allow-list of terms.
	// Cheap and offline, but prone to false negatives on paraphrases.
	GateKeyword GateStrategy = "keyword"

	// GateModel asks the LLM for a single-shot YES/NO classification.
	GateModel GateStrategy = "model"
)

// IsValid returns true if the gate strategy is recognised.
func (g GateStrategy) IsValid() bool {
	switch g {
	case GateKeyword, GateModel:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (g GateStrategy) String() string {
	return string(g)
}

// Description returns a human-readable description of the strategy.
func (g GateStrategy) Description() string {
	switch g {
	case GateKeyword:
		return "Keyword (offline allow-list match)"
	case GateModel:
		return "Model (single-shot LLM classification)"
	default:
		return unknownDescription
	}
}

// AIProvider identifies an AI service provider for embeddings or LLM.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGroq is the Groq cloud API (OpenAI-compatible).
	AIProviderGroq AIProvider = "groq"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderGemini is the Google Gemini API (multimodal).
	AIProviderGemini AIProvider = "gemini"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGroq, AIProviderOpenAI, AIProviderOllama, AIProviderGemini:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p != AIProviderOllama
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Default pipeline parameters.
const (
	// DefaultRetrievalK is the number of chunks fetched per query.
	DefaultRetrievalK = 3

	// DefaultWebResults is the number of web hits included per answer.
	DefaultWebResults = 3

	// DefaultVideoResults is the number of video hits included per answer.
	DefaultVideoResults = 3

	// DefaultChunkSize is the chunk window length in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the overlap between adjacent chunks.
	DefaultChunkOverlap = 100

	// DefaultContextBudget caps the total characters of chunk text stuffed
	// into one generation prompt. The "stuff" strategy has no recursive
	// summarisation, so k * chunk size must stay inside the backend's
	// input window.
	DefaultContextBudget = 12000
)

// PipelineSettings collapses the answering pipeline's tunables into one
// configuration object. The five near-identical flow variants of the
// original tool become a single pipeline parameterised by this.
type PipelineSettings struct {
	// Gate selects the relevance gate strategy.
	Gate GateStrategy

	// RetrievalK is the number of chunks retrieved per query.
	RetrievalK int

	// WebResults is the number of web-search hits to include.
	WebResults int

	// VideoResults is the number of video-search hits to include.
	VideoResults int

	// ContextBudget caps the characters of context given to the generator.
	ContextBudget int
}

// DefaultPipelineSettings returns the defaults used when nothing is configured.
func DefaultPipelineSettings() PipelineSettings {
	return PipelineSettings{
		Gate:          GateKeyword,
		RetrievalK:    DefaultRetrievalK,
		WebResults:    DefaultWebResults,
		VideoResults:  DefaultVideoResults,
		ContextBudget: DefaultContextBudget,
	}
}

// Normalise fills zero values with defaults.
func (s *PipelineSettings) Normalise() {
	def := DefaultPipelineSettings()
	if !s.Gate.IsValid() {
		s.Gate = def.Gate
	}
	if s.RetrievalK <= 0 {
		s.RetrievalK = def.RetrievalK
	}
	if s.WebResults <= 0 {
		s.WebResults = def.WebResults
	}
	if s.VideoResults <= 0 {
		s.VideoResults = def.VideoResults
	}
	if s.ContextBudget <= 0 {
		s.ContextBudget = def.ContextBudget
	}
}
