// In file: internal/llm/gemini_client.go
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/dileep-u-k/math-assist/internal/tools"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient is the client for interacting with Google's Gemini models.
// It configures its model per call, so one client serves one cycle at a time.
type GeminiClient struct {
	conn  *genai.Client
	model *genai.GenerativeModel
}

var _ LLMClient = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &RemoteError{Kind: Auth, Provider: ProviderGemini, Err: errors.New("gemini API key cannot be empty")}
	}
	conn, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, classifyGemini(fmt.Errorf("failed to create Gemini client: %w", err))
	}
	return &GeminiClient{conn: conn, model: conn.GenerativeModel(modelID)}, nil
}

// Generate performs a standard, blocking request to the Gemini API.
func (c *GeminiClient) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	system, conversation := splitSystem(messages)
	if len(conversation) == 0 {
		return nil, &RemoteError{Kind: Rejected, Provider: ProviderGemini, Err: errors.New("no user message to send")}
	}
	c.configureModel(system, config, availableTools)

	chat := c.model.StartChat()
	chat.History = toGeminiContentHistory(conversation[:len(conversation)-1])
	last := conversation[len(conversation)-1]
	resp, err := chat.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return nil, classifyGemini(err)
	}
	return parseGeminiResponse(resp)
}

// Close releases the underlying gRPC connection.
func (c *GeminiClient) Close() error { return c.conn.Close() }

// configureModel applies per-call settings using the SDK's setter methods.
func (c *GeminiClient) configureModel(system string, config *GenerationConfig, availableTools []tools.Tool) {
	c.model.SystemInstruction = nil
	if system != "" {
		c.model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}
	c.model.SetMaxOutputTokens(defaultMaxOutputTokens)
	c.model.ResponseMIMEType = ""
	if config != nil {
		if config.Temperature != nil {
			c.model.SetTemperature(*config.Temperature)
		}
		if config.MaxTokens > 0 {
			c.model.SetMaxOutputTokens(int32(config.MaxTokens))
		}
		if config.JSONMode && len(availableTools) == 0 {
			c.model.ResponseMIMEType = "application/json"
		}
	}
	c.model.Tools = nil
	if len(availableTools) > 0 {
		c.model.Tools = toGeminiTools(availableTools)
	}
}

// splitSystem pulls system messages out as one instruction string.
func splitSystem(messages []Message) (string, []Message) {
	var system []string
	rest := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		rest = append(rest, m)
	}
	return strings.Join(system, "\n\n"), rest
}

// toGeminiTools converts our tool definitions into one Gemini tool holding
// every function declaration.
func toGeminiTools(toolsToConvert []tools.Tool) []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(toolsToConvert))
	for _, t := range toolsToConvert {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Function.Name,
			Description: t.Function.Description,
			Parameters:  convertSchema(t.Function.Parameters),
		})
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// convertSchema converts our JSONSchema to the Gemini SDK's schema type.
func convertSchema(s tools.JSONSchema) *genai.Schema {
	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}
	switch s.Type {
	case "object":
		out.Type = genai.TypeObject
	case "string":
		out.Type = genai.TypeString
	case "number":
		out.Type = genai.TypeNumber
	case "integer":
		out.Type = genai.TypeInteger
	case "array":
		out.Type = genai.TypeArray
	}
	if s.Items != nil {
		out.Items = convertSchema(*s.Items)
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = convertSchema(*v)
		}
	}
	return out
}

// toGeminiContentHistory converts our message history to the Gemini SDK's format.
func toGeminiContentHistory(messages []Message) []*genai.Content {
	var history []*genai.Content
	for _, msg := range messages {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return history
}

// parseGeminiResponse converts a Gemini API response into our internal GenerationResult.
func parseGeminiResponse(resp *genai.GenerateContentResponse) (*GenerationResult, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, NewMalformedError(ProviderGemini, errors.New("no content returned from Gemini"))
	}

	var content strings.Builder
	var toolCalls []*tools.ToolCall
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			content.WriteString(string(v))
		case genai.FunctionCall:
			args, err := json.Marshal(v.Args)
			if err != nil {
				log.Printf("WARNING: could not marshal Gemini tool call args: %v", err)
				continue
			}
			toolCalls = append(toolCalls, &tools.ToolCall{
				ID:   fmt.Sprintf("gemini-toolcall-%s", v.Name),
				Type: tools.ToolTypeFunction,
				Function: tools.ToolCallFunction{
					Name:      v.Name,
					Arguments: string(args),
				},
			})
		}
	}

	result := &GenerationResult{
		Content:   strings.TrimSpace(content.String()),
		ToolCalls: toolCalls,
	}
	if resp.UsageMetadata != nil {
		result.Usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.Usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		result.Usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return result, nil
}

// classifyGemini maps googleapi errors to RemoteError kinds.
func classifyGemini(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &RemoteError{Kind: Transient, Provider: ProviderGemini, Err: err}
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return classifyStatus(ProviderGemini, gerr.Code, err)
	}
	return &RemoteError{Kind: Transient, Provider: ProviderGemini, Err: err}
}
