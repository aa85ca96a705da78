package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dileep-u-k/math-assist/internal/assist"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPolicy(t *testing.T) {
	path := writeFile(t, "max_attempts: 5\nretry_delay: 250ms\nrate_limit_delay: 2s\ntemperature: 0.5\n")
	policy, err := loadPolicy(path)
	if err != nil {
		t.Fatal(err)
	}
	if policy.MaxAttempts != 5 || policy.RetryDelay != 250*time.Millisecond || policy.RateLimitDelay != 2*time.Second {
		t.Errorf("unexpected policy %+v", policy)
	}
	if policy.Temperature != 0.5 {
		t.Errorf("expected temperature 0.5, got %v", policy.Temperature)
	}
	// Keys absent from the file keep their defaults.
	if policy.CycleTimeout != assist.DefaultConfig().CycleTimeout || policy.MaxTokens != 1024 {
		t.Errorf("defaults were not kept: %+v", policy)
	}
}

func TestLoadPolicyMissingFile(t *testing.T) {
	policy, err := loadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("a missing file should not be an error: %v", err)
	}
	if policy != assist.DefaultConfig() {
		t.Errorf("expected defaults, got %+v", policy)
	}
}

func TestLoadPolicyMalformed(t *testing.T) {
	if _, err := loadPolicy(writeFile(t, "retry_delay: [not a duration\n")); err == nil {
		t.Error("expected a parse error")
	}
	if _, err := loadPolicy(writeFile(t, "retry_delay: soon\n")); err == nil {
		t.Error("expected an invalid duration to be rejected")
	}
}

func TestAPIKeyFor(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "groq")
	t.Setenv("GEMINI_API_KEY", "gemini")
	if apiKeyFor("groq") != "groq" || apiKeyFor("") != "groq" {
		t.Error("groq should be the default provider key")
	}
	if apiKeyFor("gemini") != "gemini" {
		t.Error("expected the Gemini key")
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("LLM_MODEL", "llama-3.1-8b-instant")
	t.Setenv("GROQ_API_KEY", "secret")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("CONFIG_FILE", writeFile(t, "max_attempts: 2\n"))

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9090" || cfg.APIKey != "secret" || cfg.Provider.ModelID() != "llama-3.1-8b-instant" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Assist.MaxAttempts != 2 {
		t.Errorf("expected max_attempts 2, got %d", cfg.Assist.MaxAttempts)
	}
}
