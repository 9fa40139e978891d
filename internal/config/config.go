package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken     string
	VocabFile    string
	NumQuestions int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:  os.Getenv("BOT_TOKEN"),
		VocabFile: getEnv("VOCAB_FILE", "vocab.toml"),
	}

	numQuestions, err := getEnvInt("NUM_QUESTIONS", 5)
	if err != nil {
		return nil, err
	}
	cfg.NumQuestions = numQuestions

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.NumQuestions < 1 {
		return nil, fmt.Errorf("NUM_QUESTIONS must be at least 1, got %d", cfg.NumQuestions)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
