// Package config provides configuration for the decision-support API.
package config

import (
	"errors"
	"os"
	"strconv"
)

// DefaultModel is used when OPENAI_MODEL is not set.
const DefaultModel = "gpt-4-turbo-preview"

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort    int
	FrontendURL string

	// OpenAI settings
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Session log settings
	LogDir string

	// Process logging
	LogMode string
}

// Load loads configuration from environment variables. The OpenAI API key is
// required; the service must not start without it.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:      getEnvInt("HTTP_PORT", 8000),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", DefaultModel),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		LogDir:        getEnv("LOG_DIR", "logs"),
		LogMode:       getEnv("LOG_MODE", "development"),
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY not found in environment variables")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
