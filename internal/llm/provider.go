package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eveporcello/repo-to-presentation/internal/config"
)

// New builds the Generator for the configured provider. The client is meant
// to be created once per process and shared across requests.
func New(ctx context.Context, cfg *config.Config, httpClient *http.Client) (Generator, error) {
	if cfg.LLMAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, httpClient), nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, httpClient), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, httpClient)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.LLMProvider)
}
