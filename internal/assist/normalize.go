package assist

import (
	"encoding/json"
	"strings"
)

// stripFences removes a surrounding Markdown code fence, with or without a
// language tag, from a model reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// The rest of the opening line is a language tag such as "json".
		if tag := strings.TrimSpace(s[:nl]); !strings.ContainsAny(tag, "{[\"") {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// normalizeExplanation turns the explanation reply into its two fields.
// A JSON object with both "brief" and "detailed" strings is used as is;
// anything else keeps the raw reply as the detailed explanation and no
// brief one. An empty reply yields neither.
func normalizeExplanation(reply string) (brief, detailed *string) {
	raw := strings.TrimSpace(reply)
	if raw == "" {
		return nil, nil
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(stripFences(raw)), &fields); err == nil {
		b, okB := fields["brief"].(string)
		d, okD := fields["detailed"].(string)
		if okB && okD {
			return &b, &d
		}
	}
	return nil, &raw
}
