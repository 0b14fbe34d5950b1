package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GITHUB_TOKEN", "GITHUB_API_URL", "LLM_PROVIDER", "LLM_BASE_URL",
		"LLM_API_KEY", "LLM_MODEL", "LISTEN_ADDR", "REQUEST_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLMBaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LLMAPIKey)
}

func TestLoadProviderDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", " Anthropic ")

	cfg := Load()
	assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
	assert.Equal(t, "https://api.anthropic.com/v1", cfg.LLMBaseURL)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.LLMModel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_BASE_URL", "http://localhost:11434/v1/")
	t.Setenv("LLM_MODEL", "llama3")
	t.Setenv("REQUEST_TIMEOUT", "45s")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:8080")

	cfg := Load()
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLMBaseURL)
	assert.Equal(t, "llama3", cfg.LLMModel)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")

	assert.Equal(t, 2*time.Minute, Load().RequestTimeout)
}
