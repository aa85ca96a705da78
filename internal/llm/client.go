// In file: internal/llm/client.go
package llm

import (
	"context"

	"github.com/dileep-u-k/math-assist/internal/api"
	"github.com/dileep-u-k/math-assist/internal/tools"
)

// =================================================================================
// Core Data Structures
// =================================================================================

// Role represents the originator of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerationConfig holds the parameters that control one generation.
type GenerationConfig struct {
	// The model to use, e.g. "llama-3.3-70b-versatile" on Groq.
	Model string
	// Controls randomness. A pointer distinguishes 0.0 from unset.
	Temperature *float32
	// The maximum number of tokens to generate in the response.
	MaxTokens int
	// JSONMode asks the provider for a JSON object reply where supported.
	JSONMode bool
}

// GenerationResult holds the complete output of one model call.
type GenerationResult struct {
	// The generated text content from the model.
	Content string
	// Tool calls requested by the model, in the order the model listed them.
	ToolCalls []*tools.ToolCall
	// Token usage statistics for the generation request.
	Usage api.Usage
}

// =================================================================================
// LLM Client Interface
// =================================================================================

// LLMClient is the interface every model provider implements.
type LLMClient interface {
	// Generate performs one blocking request with the full conversation.
	// Errors are *RemoteError values so callers can decide whether to retry.
	Generate(
		ctx context.Context,
		messages []Message,
		config *GenerationConfig,
		availableTools []tools.Tool,
	) (*GenerationResult, error)

	// Close releases any connection held by the client.
	Close() error
}
