// In file: cmd/mathassist/config.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/dileep-u-k/math-assist/internal/assist"
	"github.com/dileep-u-k/math-assist/internal/llm"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "config.yaml"

// AppConfig holds all configuration for the server, loaded from the environment and config.yaml.
type AppConfig struct {
	Port      string
	Provider  llm.ProviderConfig
	APIKey    string
	RedisAddr string
	Assist    assist.Config
}

// LoadConfig loads configuration from a .env file, environment variables, and config.yaml.
func LoadConfig() (*AppConfig, error) {
	// In release mode configuration comes straight from the environment.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		Port: getEnv("PORT", "8080"),
		Provider: llm.ProviderConfig{
			Provider: getEnv("LLM_PROVIDER", llm.ProviderGroq),
			Model:    os.Getenv("LLM_MODEL"),
			BaseURL:  os.Getenv("LLM_BASE_URL"),
		},
		RedisAddr: os.Getenv("REDIS_ADDR"),
	}
	cfg.APIKey = apiKeyFor(cfg.Provider.Provider)

	policy, err := loadPolicy(getEnv("CONFIG_FILE", defaultConfigFile))
	if err != nil {
		return nil, err
	}
	cfg.Assist = policy
	return cfg, nil
}

// apiKeyFor maps a provider name to the environment variable holding its key.
func apiKeyFor(provider string) string {
	switch provider {
	case llm.ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	case llm.ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	default:
		return os.Getenv("GROQ_API_KEY")
	}
}

// loadPolicy reads the retry policy from path on top of the defaults. A
// missing file is not an error.
func loadPolicy(path string) (assist.Config, error) {
	policy := assist.DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARNING: %s not found, using the default retry policy.", path)
		return policy, nil
	}
	if err != nil {
		return policy, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return policy, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return policy, nil
}

// getEnv reads an env var or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
