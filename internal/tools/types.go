// In file: internal/tools/types.go

// Package tools holds the calculation tool registries, the descriptors that
// advertise them to a language model, and the dispatcher that turns a tool
// name plus an argument bag into a formula call with a well-defined outcome.
//
// The wire types in this file are provider-agnostic; the llm package
// translates them into the format of a specific API (OpenAI-compatible chat
// completions, Gemini function declarations).
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool defines the schema for a function that can be described to an LLM.
// This is the information sent *to* the model to make it aware of a tool.
type Tool struct {
	// Type specifies the type of tool, which is always "function".
	Type string `json:"type"`
	// Function holds the detailed definition of the function.
	Function Function `json:"function"`
}

// Function defines the name, description, and parameters of a callable tool.
type Function struct {
	Name string `json:"name"`
	// Description is what the model reads to decide when to use the tool.
	Description string `json:"description"`
	// Parameters defines the arguments the function accepts, as a JSON Schema.
	Parameters JSONSchema `json:"parameters"`
}

// JSONSchema is the subset of JSON Schema used to describe tool parameters.
type JSONSchema struct {
	// Type is "object" at the top level and "number", "string" or "array" below it.
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	// Properties maps parameter names to their schemas.
	Properties map[string]*JSONSchema `json:"properties,omitempty"`
	// Items is the element schema of an array parameter.
	Items *JSONSchema `json:"items,omitempty"`
	// Required lists the parameter names that must be supplied.
	Required []string `json:"required,omitempty"`
}

// ToolCall represents a request *from* the LLM to execute a specific tool.
type ToolCall struct {
	// ID matches the tool result back to the model's request when a provider needs it.
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction holds the name and arguments of a function call requested by the LLM.
type ToolCallFunction struct {
	Name string `json:"name"`
	// Arguments is the JSON object text produced by the model. It is untrusted.
	Arguments string `json:"arguments"`
}

// NewFunctionTool is a helper that builds a Tool of type "function".
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}
