package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

// OpenAIConfig configures the chat-completions provider. The API key may be
// empty at load time; calls that need it fail at request time instead.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

type ChatConfig struct {
	SubmitTimeout time.Duration
	HistoryWindow int
	SessionTTL    time.Duration
}

type Config struct {
	Repositories RepositoriesConfig
	OpenAI       OpenAIConfig
	Chat         ChatConfig
	ServerPort   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
				DB:       getEnvOrDefault("POSTGRES_DB", "chiapas_guide"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: 30,
				MinConns: 5,
			},
		},
		OpenAI: OpenAIConfig{
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: 0.7,
			MaxTokens:   getEnvIntOrDefault("OPENAI_MAX_TOKENS", 1200),
		},
		Chat: ChatConfig{
			SubmitTimeout: getEnvDurationOrDefault("CHAT_SUBMIT_TIMEOUT", 60*time.Second),
			HistoryWindow: getEnvIntOrDefault("CHAT_HISTORY_WINDOW", 6),
			SessionTTL:    getEnvDurationOrDefault("CHAT_SESSION_TTL", 24*time.Hour),
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
	}

	if cfg.Repositories.Postgres.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
