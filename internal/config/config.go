// Package config provides runtime configuration for both services.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	APIAddr       string
	EngineAddr    string
	EngineBaseURL string

	DatabaseURL string

	OpenAIKey   string
	OpenAIModel string

	JWTSecret string
	AdminKey  string

	NotificationTTL time.Duration
	HistoryLimit    int
	HTTPTimeout     time.Duration

	LogLevel  string
	LogFormat string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		APIAddr:         getenv("API_ADDR", ":8080"),
		EngineAddr:      getenv("ENGINE_ADDR", ":8090"),
		EngineBaseURL:   getenv("ENGINE_BASE_URL", "http://localhost:8090"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     os.Getenv("OPENAI_MODEL"),
		JWTSecret:       getenv("ENGINE_JWT_SECRET", "dev-secret"),
		AdminKey:        os.Getenv("ADMIN_KEY"),
		NotificationTTL: durenvs("NOTIFY_TTL_SECONDS", 5),
		HistoryLimit:    atoienv("HISTORY_LIMIT", 20),
		HTTPTimeout:     durenvs("HTTP_TIMEOUT_SECONDS", 30),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "console"),
	}
}
