package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

func retrieved(source, content string) domain.RetrievedChunk {
	return domain.RetrievedChunk{
		Chunk: domain.Chunk{Source: source, Content: content},
	}
}

func TestGenerateStuffsContext(t *testing.T) {
	llm := &mockLLM{response: "  An answer.  "}
	answerer := NewAnswerService(llm, 0)

	chunks := []domain.RetrievedChunk{
		retrieved("a.txt", "first chunk"),
		retrieved("b.txt", "second chunk"),
	}

	answer, used, err := answerer.Generate(context.Background(), "question?", chunks)
	require.NoError(t, err)

	assert.Equal(t, "An answer.", answer)
	assert.Len(t, used, 2)
	assert.Contains(t, llm.lastPrompt, "[a.txt]\nfirst chunk")
	assert.Contains(t, llm.lastPrompt, "[b.txt]\nsecond chunk")
	assert.Contains(t, llm.lastPrompt, "question?")
}

func TestGenerateRespectsContextBudget(t *testing.T) {
	llm := &mockLLM{response: "ok"}
	answerer := NewAnswerService(llm, 50)

	chunks := []domain.RetrievedChunk{
		retrieved("a.txt", strings.Repeat("x", 30)),
		retrieved("b.txt", strings.Repeat("y", 30)),
	}

	_, used, err := answerer.Generate(context.Background(), "q", chunks)
	require.NoError(t, err)

	// The second chunk does not fit the 50-char budget.
	require.Len(t, used, 1)
	assert.Equal(t, "a.txt", used[0].Chunk.Source)
	assert.NotContains(t, llm.lastPrompt, "yyy")
}

func TestGenerateAlwaysKeepsFirstChunk(t *testing.T) {
	llm := &mockLLM{response: "ok"}
	answerer := NewAnswerService(llm, 10)

	chunks := []domain.RetrievedChunk{
		retrieved("a.txt", strings.Repeat("x", 100)),
	}

	_, used, err := answerer.Generate(context.Background(), "q", chunks)
	require.NoError(t, err)
	assert.Len(t, used, 1, "the most relevant chunk is never dropped")
}

func TestGenerateBackendFailure(t *testing.T) {
	llm := &mockLLM{generateErr: assert.AnError}
	answerer := NewAnswerService(llm, 0)

	_, _, err := answerer.Generate(context.Background(), "q", nil)
	assert.ErrorIs(t, err, domain.ErrGeneration)
}

func TestGeneratePromptOverride(t *testing.T) {
	llm := &mockLLM{response: "ok"}
	answerer := NewAnswerService(llm, 0)
	answerer.SetPromptStore(&mockPromptStore{prompts: map[string]string{
		driven.PromptAnswer: "CUSTOM %s :: %s",
	}})

	_, _, err := answerer.Generate(context.Background(), "my question", []domain.RetrievedChunk{
		retrieved("a.txt", "ctx"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(llm.lastPrompt, "CUSTOM "))
	assert.Contains(t, llm.lastPrompt, "my question")
}
