package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

type assistantFixture struct {
	llm       *mockLLM
	embedder  *mockEmbedder
	index     *mockVectorIndex
	store     *mockDocStore
	meta      *mockMetaStore
	web       *mockWebSearch
	videos    *mockVideoSearch
	assistant *Assistant
}

func newAssistantFixture(t *testing.T) *assistantFixture {
	t.Helper()

	store, hits := storeWithChunks("Layers need 16% protein feed.", "Provide clean water daily.")
	f := &assistantFixture{
		llm:      &mockLLM{response: "Feed layers a 16% protein ration."},
		embedder: &mockEmbedder{},
		index:    &mockVectorIndex{hits: hits},
		store:    store,
		meta:     &mockMetaStore{model: "mock-embed"},
		web:      &mockWebSearch{results: []domain.WebResult{{Title: "Feed guide", URL: "https://example.com"}}},
		videos:   &mockVideoSearch{results: []domain.VideoResult{{Title: "Feeding layers", URL: "https://example.com/v"}}},
	}

	retriever := NewRetrievalService(f.embedder, f.index, f.store, f.meta)
	answerer := NewAnswerService(f.llm, 0)
	enrichment := NewEnrichmentService(f.web, f.videos)

	f.assistant = NewAssistant(NewKeywordGate(), retriever, answerer, enrichment, domain.PipelineSettings{})
	return f
}

func TestAskComposesAllSections(t *testing.T) {
	f := newAssistantFixture(t)
	session := domain.NewSession("test-session")

	answer, err := f.assistant.Ask(context.Background(), session, "What should I feed my layer hens?")
	require.NoError(t, err)

	assert.False(t, answer.Refused)
	assert.Equal(t, "Feed layers a 16% protein ration.", answer.Knowledge)
	assert.NotEmpty(t, answer.SourceChunks)
	assert.Len(t, answer.Web, 1)
	assert.Len(t, answer.Videos, 1)
	assert.Empty(t, answer.Failures)
	assert.Equal(t, 1, session.Len())
}

func TestAskRefusalShortCircuits(t *testing.T) {
	f := newAssistantFixture(t)
	session := domain.NewSession("test-session")

	answer, err := f.assistant.Ask(context.Background(), session, "What is the capital of France?")
	require.NoError(t, err)

	assert.True(t, answer.Refused)
	assert.Contains(t, answer.Render(), domain.RefusalMessage)

	// Nothing downstream of the gate may run.
	assert.Equal(t, 0, f.embedder.calls)
	assert.Equal(t, 0, f.index.calls)
	assert.Equal(t, 0, f.llm.calls)
	assert.Equal(t, 0, f.web.calls)
	assert.Equal(t, 0, f.videos.calls)

	// The refused turn still lands in the session.
	assert.Equal(t, 1, session.Len())
}

func TestAskWebFailureIsSoft(t *testing.T) {
	f := newAssistantFixture(t)
	f.web.err = errors.New("quota exceeded")
	session := domain.NewSession("test-session")

	answer, err := f.assistant.Ask(context.Background(), session, "How much feed per chicken?")
	require.NoError(t, err)

	assert.NotEmpty(t, answer.Knowledge)
	assert.Empty(t, answer.Web)
	assert.Len(t, answer.Videos, 1)

	reason, ok := answer.FailureFor(domain.SectionWeb)
	require.True(t, ok)
	assert.Contains(t, reason, "quota exceeded")
}

func TestAskGenerationFailureDegradesKnowledge(t *testing.T) {
	f := newAssistantFixture(t)
	f.llm.generateErr = errors.New("backend down")
	session := domain.NewSession("test-session")

	answer, err := f.assistant.Ask(context.Background(), session, "How much feed per chicken?")
	require.NoError(t, err)

	assert.Empty(t, answer.Knowledge)
	assert.Empty(t, answer.SourceChunks)
	assert.Len(t, answer.Web, 1)
	assert.Len(t, answer.Videos, 1)

	_, ok := answer.FailureFor(domain.SectionKnowledge)
	assert.True(t, ok)
}

func TestAskMissingIndexIsFatal(t *testing.T) {
	f := newAssistantFixture(t)
	f.meta.model = "" // no index built

	_, err := f.assistant.Ask(context.Background(), domain.NewSession("test-session"), "chicken coop size")
	assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
}

func TestAskModelMismatchIsFatal(t *testing.T) {
	f := newAssistantFixture(t)
	f.meta.model = "some-other-model"

	_, err := f.assistant.Ask(context.Background(), domain.NewSession("test-session"), "chicken coop size")
	assert.ErrorIs(t, err, domain.ErrIndexModelMismatch)
}
