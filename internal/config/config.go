package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Supported LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Supported session store backings.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	LLMProvider     string
	ModelName       string
	AnthropicAPIKey string
	GeminiAPIKey    string

	SessionStore string
	RedisURL     string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		ModelName:       getEnv("MODEL_NAME", "gemini-2.0-flash"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		SessionStore:    strings.ToLower(getEnv("SESSION_STORE", StoreMemory)),
		RedisURL:        getEnv("REDIS_URL", "localhost:6379"),
	}

	switch cfg.LLMProvider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return nil, fmt.Errorf("invalid LLM provider: %s", cfg.LLMProvider)
	}

	switch cfg.SessionStore {
	case StoreMemory, StoreRedis:
	default:
		return nil, fmt.Errorf("invalid session store: %s", cfg.SessionStore)
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
