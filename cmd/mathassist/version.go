// In file: cmd/mathassist/version.go
package main

import (
	"fmt"
	"runtime"

	cacheversion "github.com/dileep-u-k/math-assist/internal/version"
)

var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

type BuildInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	GitCommit   string `json:"git_commit"`
	GoVersion   string `json:"go_version"`
	Platform    string `json:"platform"`
	Form3Tools  string `json:"form3_tools"`
	Form4Tools  string `json:"form4_tools"`
	PromptLogic string `json:"prompt_logic"`
}

func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:     version,
		BuildDate:   buildDate,
		GitCommit:   gitCommit,
		GoVersion:   runtime.Version(),
		Platform:    fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Form3Tools:  cacheversion.ComponentVersions.Form3Tools,
		Form4Tools:  cacheversion.ComponentVersions.Form4Tools,
		PromptLogic: cacheversion.ComponentVersions.PromptLogic,
	}
}
