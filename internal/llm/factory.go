// In file: internal/llm/factory.go
package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderConfig selects and configures a remote model provider.
type ProviderConfig struct {
	// Provider is "groq" (default), "openai" or "gemini".
	Provider string
	// Model overrides the provider's default model.
	Model string
	// BaseURL overrides the endpoint of OpenAI-compatible providers.
	BaseURL string
}

// ModelID returns the model that will be requested.
func (c ProviderConfig) ModelID() string {
	if c.Model != "" {
		return c.Model
	}
	if c.provider() == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultGroqModel
}

func (c ProviderConfig) provider() string {
	p := strings.ToLower(strings.TrimSpace(c.Provider))
	if p == "" {
		return ProviderGroq
	}
	return p
}

// NewClient creates a client for the configured provider authenticated with apiKey.
func NewClient(ctx context.Context, cfg ProviderConfig, apiKey string) (LLMClient, error) {
	var (
		client LLMClient
		err    error
	)
	switch cfg.provider() {
	case ProviderGroq:
		client, err = NewOpenAIClient(apiKey, cfg.BaseURL)
	case ProviderOpenAI:
		base := cfg.BaseURL
		if base == "" {
			base = "https://api.openai.com/v1"
		}
		client, err = NewOpenAIClient(apiKey, base)
	case ProviderGemini:
		client, err = NewGeminiClient(ctx, apiKey, cfg.ModelID())
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}
