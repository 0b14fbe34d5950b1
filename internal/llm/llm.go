package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Sampling parameters shared by every backend.
const (
	MaxOutputTokens = 4000
	Temperature     = 0.7
)

var (
	ErrUnexpectedResponseType = errors.New("unexpected response type from generation service")
	ErrMissingAPIKey          = errors.New("generation service API key is not configured")
	ErrUnknownProvider        = errors.New("unknown generation provider")
)

// Generator turns a prompt into raw model text. One outbound call per
// Generate; no retries.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(baseURL, apiKey, model string, httpClient *http.Client) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		// No ResponseFormat; not every compatible endpoint supports
		// json_object mode. The prompt asks for pure JSON instead.
		MaxTokens:   MaxOutputTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrUnexpectedResponseType)
	}

	choice := resp.Choices[0]
	switch {
	case len(choice.Message.ToolCalls) > 0 || choice.Message.FunctionCall != nil:
		return "", fmt.Errorf("%w: tool call", ErrUnexpectedResponseType)
	case choice.Message.Content == "":
		return "", fmt.Errorf("%w: empty content (finish reason %q)", ErrUnexpectedResponseType, choice.FinishReason)
	}
	return choice.Message.Content, nil
}
