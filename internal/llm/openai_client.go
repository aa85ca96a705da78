// In file: internal/llm/openai_client.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dileep-u-k/math-assist/internal/api"
	"github.com/dileep-u-k/math-assist/internal/tools"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
// With the default base URL it is a Groq client.
type OpenAIClient struct {
	client   *openai.Client
	provider string
}

// Statically verify that OpenAIClient implements the LLMClient interface.
var _ LLMClient = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client for baseURL. An empty baseURL means Groq.
func NewOpenAIClient(apiKey, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, &RemoteError{Kind: Auth, Provider: ProviderGroq, Err: errors.New("API key cannot be empty")}
	}
	provider := ProviderOpenAI
	if baseURL == "" || baseURL == GroqBaseURL {
		baseURL = GroqBaseURL
		provider = ProviderGroq
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), provider: provider}, nil
}

// Generate performs one chat completion. Retrying is left to the caller.
func (c *OpenAIClient) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	req := openai.ChatCompletionRequest{
		Messages: toOpenAIMessages(messages),
		Tools:    toOpenAITools(availableTools),
	}
	if config != nil {
		req.Model = config.Model
		req.MaxTokens = config.MaxTokens
		if config.Temperature != nil {
			req.Temperature = *config.Temperature
		}
		if config.JSONMode && len(availableTools) == 0 {
			req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
		}
	}
	if len(req.Tools) > 0 {
		req.ToolChoice = "auto"
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, c.classify(err)
	}
	return parseOpenAIResponse(c.provider, resp)
}

// Close is a no-op; the HTTP client keeps no session.
func (c *OpenAIClient) Close() error { return nil }

// classify turns go-openai errors into RemoteError values.
func (c *OpenAIClient) classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &RemoteError{Kind: Transient, Provider: c.provider, Err: err}
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(c.provider, apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(c.provider, reqErr.HTTPStatusCode, err)
	}
	return &RemoteError{Kind: Transient, Provider: c.provider, Err: err}
}

// toOpenAIMessages converts our internal message slice to the OpenAI API format.
func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := openai.ChatMessageRoleUser
		switch msg.Role {
		case RoleSystem:
			role = openai.ChatMessageRoleSystem
		case RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	return out
}

// toOpenAITools converts our internal tool slice to the OpenAI API format.
func toOpenAITools(availableTools []tools.Tool) []openai.Tool {
	if len(availableTools) == 0 {
		return nil
	}
	out := make([]openai.Tool, 0, len(availableTools))
	for _, t := range availableTools {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Function.Name,
				Description: t.Function.Description,
				Parameters:  t.Function.Parameters,
			},
		})
	}
	return out
}

// parseOpenAIResponse converts a chat completion to our internal GenerationResult.
func parseOpenAIResponse(provider string, resp openai.ChatCompletionResponse) (*GenerationResult, error) {
	if len(resp.Choices) == 0 {
		return nil, NewMalformedError(provider, fmt.Errorf("no choices returned"))
	}
	msg := resp.Choices[0].Message
	result := &GenerationResult{
		Content: msg.Content,
		Usage: api.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	for _, tc := range msg.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, &tools.ToolCall{
			ID:   tc.ID,
			Type: tools.ToolTypeFunction,
			Function: tools.ToolCallFunction{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return result, nil
}
