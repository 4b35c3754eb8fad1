package services

import (
	"context"
	"fmt"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	response    string
	generateErr error
	calls       int
	lastPrompt  string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.response, nil
}

func (m *mockLLM) Chat(_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	m.calls++
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockEmbedder implements driven.EmbeddingService for testing.
type mockEmbedder struct {
	model    string
	embedErr error
	calls    int
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return fakeVector(text), nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = fakeVector(t)
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int { return 4 }

func (m *mockEmbedder) ModelName() string {
	if m.model == "" {
		return "mock-embed"
	}
	return m.model
}

func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                 { return nil }

// fakeVector derives a deterministic vector from the text length.
func fakeVector(text string) []float32 {
	n := float32(len(text))
	return []float32{n, n + 1, n + 2, n + 3}
}

// mockVectorIndex implements driven.VectorIndex for testing.
type mockVectorIndex struct {
	hits      []driven.VectorHit
	added     map[string][]float32
	searchErr error
	calls     int
}

func (m *mockVectorIndex) Add(_ context.Context, chunkID string, embedding []float32) error {
	if m.added == nil {
		m.added = make(map[string][]float32)
	}
	m.added[chunkID] = embedding
	return nil
}

func (m *mockVectorIndex) Delete(_ context.Context, _ string) error { return nil }

func (m *mockVectorIndex) Search(_ context.Context, _ []float32, k int) ([]driven.VectorHit, error) {
	m.calls++
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if k > len(m.hits) {
		return m.hits, nil
	}
	return m.hits[:k], nil
}

func (m *mockVectorIndex) Len() int     { return len(m.added) }
func (m *mockVectorIndex) Close() error { return nil }

// mockDocStore implements driven.DocumentStore for testing.
type mockDocStore struct {
	docs   map[string]domain.Document
	chunks map[string]domain.Chunk
}

func newMockDocStore() *mockDocStore {
	return &mockDocStore{
		docs:   make(map[string]domain.Document),
		chunks: make(map[string]domain.Chunk),
	}
}

func (m *mockDocStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	m.docs[doc.ID] = *doc
	return nil
}

func (m *mockDocStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	for _, c := range chunks {
		m.chunks[c.ID] = c
	}
	return nil
}

func (m *mockDocStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (m *mockDocStore) GetChunks(_ context.Context, documentID string) ([]domain.Chunk, error) {
	var out []domain.Chunk
	for _, c := range m.chunks {
		if c.DocumentID == documentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockDocStore) GetChunk(_ context.Context, id string) (*domain.Chunk, error) {
	c, ok := m.chunks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m *mockDocStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(m.docs))
	for _, d := range m.docs {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDocStore) ListChunks(_ context.Context) ([]domain.Chunk, error) {
	out := make([]domain.Chunk, 0, len(m.chunks))
	for _, c := range m.chunks {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockDocStore) DeleteDocument(_ context.Context, id string) error {
	delete(m.docs, id)
	for cid, c := range m.chunks {
		if c.DocumentID == id {
			delete(m.chunks, cid)
		}
	}
	return nil
}

func (m *mockDocStore) CountChunks(_ context.Context) (int, error) {
	return len(m.chunks), nil
}

// mockMetaStore implements driven.IndexMetaStore for testing.
type mockMetaStore struct {
	model string
}

func (m *mockMetaStore) GetEmbeddingModel(_ context.Context) (string, error) {
	if m.model == "" {
		return "", domain.ErrNotFound
	}
	return m.model, nil
}

func (m *mockMetaStore) SetEmbeddingModel(_ context.Context, model string) error {
	m.model = model
	return nil
}

// mockWebSearch implements driven.WebSearchService for testing.
type mockWebSearch struct {
	results []domain.WebResult
	err     error
	calls   int
}

func (m *mockWebSearch) Search(_ context.Context, _ string, n int) ([]domain.WebResult, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if n > len(m.results) {
		return m.results, nil
	}
	return m.results[:n], nil
}

func (m *mockWebSearch) Close() error { return nil }

// mockVideoSearch implements driven.VideoSearchService for testing.
type mockVideoSearch struct {
	results []domain.VideoResult
	err     error
	calls   int
}

func (m *mockVideoSearch) Search(_ context.Context, _ string, n int) ([]domain.VideoResult, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if n > len(m.results) {
		return m.results, nil
	}
	return m.results[:n], nil
}

func (m *mockVideoSearch) Close() error { return nil }

// mockWeather implements driven.WeatherService for testing.
type mockWeather struct {
	report *domain.WeatherReport
	err    error
}

func (m *mockWeather) Current(_ context.Context, city string) (*domain.WeatherReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	report := *m.report
	report.City = city
	return &report, nil
}

// mockVision implements driven.VisionService for testing.
type mockVision struct {
	response   string
	err        error
	lastPrompt string
	lastMIME   string
}

func (m *mockVision) Describe(_ context.Context, prompt string, _ []byte, mimeType string) (string, error) {
	m.lastPrompt = prompt
	m.lastMIME = mimeType
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockVision) ModelName() string            { return "mock-vision" }
func (m *mockVision) Ping(_ context.Context) error { return nil }
func (m *mockVision) Close() error                 { return nil }

// mockExtractor implements driven.Extractor for testing.
type mockExtractor struct {
	name       string
	extensions []string
	text       string
	err        error
}

func (m *mockExtractor) Name() string                  { return m.name }
func (m *mockExtractor) SupportedExtensions() []string { return m.extensions }

func (m *mockExtractor) Extract(_ context.Context, _ *domain.UploadedFile) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// mockRegistry implements driven.ExtractorRegistry for testing.
type mockRegistry struct {
	extractor driven.Extractor
	err       error
}

func (m *mockRegistry) ForFile(_ *domain.UploadedFile) (driven.Extractor, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.extractor, nil
}

func (m *mockRegistry) Register(_ driven.Extractor) {}

// passthroughRegistry returns the file content as extracted text.
type passthroughRegistry struct{}

type passthroughExtractor struct{}

func (passthroughExtractor) Name() string                  { return "passthrough" }
func (passthroughExtractor) SupportedExtensions() []string { return []string{"txt"} }

func (passthroughExtractor) Extract(_ context.Context, file *domain.UploadedFile) (string, error) {
	return string(file.Content), nil
}

func (passthroughRegistry) ForFile(file *domain.UploadedFile) (driven.Extractor, error) {
	if file.Extension() != "txt" {
		return nil, domain.ErrUnsupportedType
	}
	return passthroughExtractor{}, nil
}

func (passthroughRegistry) Register(_ driven.Extractor) {}

// anyFileRegistry hands every file to the given extractor, whatever
// its extension.
type anyFileRegistry struct{ extractor driven.Extractor }

func (r anyFileRegistry) ForFile(_ *domain.UploadedFile) (driven.Extractor, error) {
	return r.extractor, nil
}

func (anyFileRegistry) Register(_ driven.Extractor) {}

// tableExtractor is a passthrough extractor that also reports the
// configured tables.
type tableExtractor struct {
	tables    []string
	tablesErr error
}

func (tableExtractor) Name() string                  { return "table-passthrough" }
func (tableExtractor) SupportedExtensions() []string { return []string{"pdf"} }

func (tableExtractor) Extract(_ context.Context, file *domain.UploadedFile) (string, error) {
	return string(file.Content), nil
}

func (e tableExtractor) ExtractTables(_ context.Context, _ *domain.UploadedFile) ([]string, error) {
	return e.tables, e.tablesErr
}

// mockPriceSource implements driven.PriceSource for testing.
type mockPriceSource struct {
	tables []domain.CityPrices
	err    error
}

func (m *mockPriceSource) Fetch(_ context.Context) ([]domain.CityPrices, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tables, nil
}

// mockNotifier implements driven.Notifier for testing.
type mockNotifier struct {
	err      error
	calls    int
	subjects []string
}

func (m *mockNotifier) Notify(_ context.Context, subject, _ string) error {
	m.calls++
	m.subjects = append(m.subjects, subject)
	return m.err
}

// mockStateStore implements driven.MonitorStateStore for testing.
type mockStateStore struct {
	hashes map[string]string
}

func newMockStateStore() *mockStateStore {
	return &mockStateStore{hashes: make(map[string]string)}
}

func (m *mockStateStore) GetHash(_ context.Context, key string) (string, error) {
	h, ok := m.hashes[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return h, nil
}

func (m *mockStateStore) SetHash(_ context.Context, key, hash string) error {
	m.hashes[key] = hash
	return nil
}

// mockPromptStore implements driven.PromptStore for testing.
type mockPromptStore struct {
	prompts map[string]string
}

func (m *mockPromptStore) Load(name string) (string, error) {
	p, ok := m.prompts[name]
	if !ok {
		return "", fmt.Errorf("prompt %s: %w", name, domain.ErrNotFound)
	}
	return p, nil
}

func (m *mockPromptStore) Reload() {}
