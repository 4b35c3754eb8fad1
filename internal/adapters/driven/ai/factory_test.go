package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

func TestCreateLLMService_NotConfigured(t *testing.T) {
	svc, err := CreateLLMService(nil)
	require.NoError(t, err)
	assert.Nil(t, svc)

	// Cloud provider without an API key is not configured.
	svc, err = CreateLLMService(&domain.LLMSettings{Provider: domain.AIProviderGroq})
	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestCreateLLMService_Providers(t *testing.T) {
	groq, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderGroq,
		APIKey:   "gsk-test",
	})
	require.NoError(t, err)
	require.NotNil(t, groq)
	assert.Equal(t, "llama3-8b-8192", groq.ModelName())

	ollama, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderOllama,
		Model:    "llama3",
	})
	require.NoError(t, err)
	require.NotNil(t, ollama)

	openAI, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderOpenAI,
		APIKey:   "sk-test",
	})
	require.NoError(t, err)
	require.NotNil(t, openAI)
}

func TestCreateLLMService_GeminiRejected(t *testing.T) {
	_, err := CreateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderGemini,
		APIKey:   "key",
	})
	assert.Error(t, err)
}

func TestCreateEmbeddingService_NotConfigured(t *testing.T) {
	svc, err := CreateEmbeddingService(nil)
	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestCreateEmbeddingService_Providers(t *testing.T) {
	ollama, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderOllama,
	})
	require.NoError(t, err)
	require.NotNil(t, ollama)
	assert.Equal(t, "nomic-embed-text", ollama.ModelName())

	openAI, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderOpenAI,
		APIKey:   "sk-test",
	})
	require.NoError(t, err)
	require.NotNil(t, openAI)
	assert.Equal(t, 1536, openAI.Dimensions())
}

func TestCreateEmbeddingService_TextOnlyProvidersRejected(t *testing.T) {
	_, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderGroq,
		APIKey:   "gsk-test",
	})
	assert.Error(t, err)
}

func TestCreateVisionService(t *testing.T) {
	svc, err := CreateVisionService(nil)
	require.NoError(t, err)
	assert.Nil(t, svc)

	svc, err = CreateVisionService(&domain.VisionSettings{APIKey: "key"})
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "gemini-1.5-flash", svc.ModelName())
}
