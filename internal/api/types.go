// In file: internal/api/types.go

// Package api holds the request and response shapes shared by the HTTP
// handlers, the orchestrator and the model clients.
package api

// Kinds of AssistantResponse.
const (
	KindToolResult = "tool_result"
	KindMessage    = "message"
	KindError      = "error"
)

// Usage holds token accounting for one or more model calls.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another call's usage into u.
func (u *Usage) Add(o Usage) {
	u.PromptTokens += o.PromptTokens
	u.CompletionTokens += o.CompletionTokens
	u.TotalTokens += o.TotalTokens
}

// AssistantResponse is the unified answer to one question. Kind selects which
// fields are meaningful:
//
//	tool_result: Tool, Arguments, Result, ExplanationBrief, ExplanationDetailed
//	message:     Text
//	error:       Message
type AssistantResponse struct {
	Kind string `json:"kind"`

	Tool                string         `json:"tool,omitempty"`
	Arguments           map[string]any `json:"arguments,omitempty"`
	Result              any            `json:"result,omitempty"`
	ExplanationBrief    *string        `json:"explanationBrief"`
	ExplanationDetailed *string        `json:"explanationDetailed"`

	Text    string `json:"text,omitempty"`
	Message string `json:"message,omitempty"`

	// CycleID correlates the response with server logs.
	CycleID string `json:"cycleId,omitempty"`
	Usage   Usage  `json:"usage"`
}

// ToolResult builds a tool_result response. Either explanation may be nil.
func ToolResult(tool string, args map[string]any, result any, brief, detailed *string) AssistantResponse {
	return AssistantResponse{
		Kind:                KindToolResult,
		Tool:                tool,
		Arguments:           args,
		Result:              result,
		ExplanationBrief:    brief,
		ExplanationDetailed: detailed,
	}
}

// Message builds a message response carrying the model's text verbatim.
func Message(text string) AssistantResponse {
	return AssistantResponse{Kind: KindMessage, Text: text}
}

// Error builds an error response.
func Error(message string) AssistantResponse {
	return AssistantResponse{Kind: KindError, Message: message}
}

// AssistRequest is the body of POST /forms/:form/assist.
type AssistRequest struct {
	Question string `json:"question" binding:"required"`
	// APIKey overrides the server's configured key for this question only.
	APIKey string `json:"apiKey,omitempty"`
}

// DispatchRequest is the body of POST /forms/:form/dispatch.
type DispatchRequest struct {
	Tool      string         `json:"tool" binding:"required"`
	Arguments map[string]any `json:"arguments"`
}
