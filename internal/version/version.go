// In file: internal/version/version.go

// Package version centralizes the versioning for the logical components of
// the assistant.
//
// Usage statistics are stored under keys that carry these version strings, so
// changing a tool registry starts a fresh set of counters instead of mixing
// numbers from two different tool sets.
package version

import (
	"fmt"
	"strings"
)

// ComponentVersions holds the version strings for different logical parts of the application.
// Manually increment a version number here before you deploy a change to that component.
var ComponentVersions = struct {
	// Form3Tools changes whenever a Form 3 tool is added, removed or changes meaning.
	Form3Tools string

	// Form4Tools is the same for the Form 4 registry.
	Form4Tools string

	// PromptLogic changes with the system instruction or the explanation prompt.
	PromptLogic string
}{
	Form3Tools:  "v1.0",
	Form4Tools:  "v1.0",
	PromptLogic: "v1.0",
}

// ToolsVersion returns the registry version for a form, or "v0" for an unknown one.
func ToolsVersion(form string) string {
	switch form {
	case "form3":
		return ComponentVersions.Form3Tools
	case "form4":
		return ComponentVersions.Form4Tools
	}
	return "v0"
}

// StatsKey builds a Redis key for per-form statistics, e.g.
// "mathassist:tools:form4:tv1.0_pv1.0".
func StatsKey(kind, form string) string {
	return fmt.Sprintf("mathassist:%s:%s:tv%s_pv%s",
		kind, form, strings.TrimPrefix(ToolsVersion(form), "v"), strings.TrimPrefix(ComponentVersions.PromptLogic, "v"))
}
