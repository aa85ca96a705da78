package assist

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dileep-u-k/math-assist/internal/tools"
)

var formTitles = map[string]string{
	"form3": "Form 3",
	"form4": "Form 4",
}

// selectionInstruction is the system message of the tool-selection call.
func selectionInstruction(registry *tools.Registry) string {
	title := formTitles[registry.Name()]
	if title == "" {
		title = registry.Name()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You are a mathematics tutor for %s secondary school students.\n", title)
	b.WriteString("When the question can be answered by one of the provided calculation tools, call exactly one tool ")
	b.WriteString("with every required argument taken from the question. Use plain numbers, degrees for angles ")
	b.WriteString("and percentages for interest rates. Never compute the answer yourself when a tool exists.\n")
	b.WriteString("If the question is a greeting, is unclear, or is missing a value a tool needs, reply in short ")
	b.WriteString("plain text instead and ask for what is missing.")
	return b.String()
}

const explanationInstruction = `You explain results that have already been calculated. Do not recalculate or change any number.
Reply with only a JSON object of the form {"brief": "...", "detailed": "..."}.
"brief" is one or two sentences stating the answer.
"detailed" is a step-by-step explanation of the method a student would write down, using the given arguments and result.`

type explanationRequest struct {
	Question  string     `json:"question"`
	ToolName  string     `json:"toolName"`
	Arguments tools.Args `json:"arguments"`
	Result    any        `json:"result"`
}

// explanationPrompt is the user message of the explanation call.
func explanationPrompt(question, tool string, args tools.Args, result any) (string, error) {
	payload, err := json.MarshalIndent(explanationRequest{
		Question:  question,
		ToolName:  tool,
		Arguments: args,
		Result:    result,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode explanation request: %w", err)
	}
	return "Explain this calculation:\n" + string(payload), nil
}
