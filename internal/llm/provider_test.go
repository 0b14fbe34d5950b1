package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eveporcello/repo-to-presentation/internal/config"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), &config.Config{LLMProvider: config.ProviderOpenAI}, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewProviders(t *testing.T) {
	gen, err := New(context.Background(), &config.Config{
		LLMProvider: config.ProviderOpenAI,
		LLMAPIKey:   "k",
		LLMBaseURL:  "https://api.openai.com/v1",
		LLMModel:    "gpt-4o-mini",
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, gen)

	gen, err = New(context.Background(), &config.Config{
		LLMProvider: config.ProviderAnthropic,
		LLMAPIKey:   "k",
		LLMBaseURL:  "https://api.anthropic.com/v1",
		LLMModel:    "claude-sonnet-4-20250514",
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &AnthropicClient{}, gen)
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), &config.Config{LLMProvider: "cohere", LLMAPIKey: "k"}, nil)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
