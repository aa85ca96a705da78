// In file: internal/llm/constants.go
package llm

import "time"

// This file centralizes constants shared across the clients in the llm package.
const (
	defaultTimeout = 60 * time.Second

	// GroqBaseURL is the OpenAI-compatible endpoint used when no base URL is configured.
	GroqBaseURL = "https://api.groq.com/openai/v1"
	// DefaultGroqModel is used when LLM_MODEL is not set.
	DefaultGroqModel = "llama-3.3-70b-versatile"
	// DefaultGeminiModel is used for the gemini provider when LLM_MODEL is not set.
	DefaultGeminiModel = "gemini-1.5-flash"

	defaultMaxOutputTokens = 1024
)

// Provider names accepted by NewClient.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)
