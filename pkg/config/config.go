package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Telegram Bot configuration
	BotToken string

	// OpenAI configuration
	OpenAIAPIBase string
	OpenAIAPIKey  string
	OpenAIModel   string

	// Storage configuration
	DataDir string

	// Suggestion defaults
	MaxSuggestions     int
	MinMatchPercentage float64
	ExpiringSoonDays   int

	// Scheduler configuration
	ReminderHour int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{}

	// Required configurations
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is required")
	}
	cfg.BotToken = botToken

	openAIAPIKey := os.Getenv("OPENAI_API_KEY")
	if openAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	cfg.OpenAIAPIKey = openAIAPIKey

	// Optional configurations with defaults
	cfg.OpenAIAPIBase = getEnvWithDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	cfg.DataDir = getEnvWithDefault("DATA_DIR", "./data")

	cfg.MaxSuggestions, err = getEnvInt("MAX_SUGGESTIONS", 5)
	if err != nil {
		return nil, err
	}
	if cfg.MaxSuggestions < 0 {
		return nil, fmt.Errorf("MAX_SUGGESTIONS must not be negative")
	}

	// A fraction in [0,1]: 0.3 means a recipe needs 30% of its
	// ingredients available to qualify.
	cfg.MinMatchPercentage, err = getEnvFloat("MIN_MATCH_PERCENTAGE", 0.3)
	if err != nil {
		return nil, err
	}
	if cfg.MinMatchPercentage < 0 || cfg.MinMatchPercentage > 1 {
		return nil, fmt.Errorf("MIN_MATCH_PERCENTAGE must be between 0 and 1")
	}

	cfg.ExpiringSoonDays, err = getEnvInt("EXPIRING_SOON_DAYS", 3)
	if err != nil {
		return nil, err
	}

	cfg.ReminderHour, err = getEnvInt("REMINDER_HOUR", 15)
	if err != nil {
		return nil, err
	}
	if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		return nil, fmt.Errorf("REMINDER_HOUR must be between 0 and 23")
	}

	// Log configuration with sensitive data redacted
	logCfg := *cfg
	if len(logCfg.BotToken) > 8 {
		logCfg.BotToken = logCfg.BotToken[:8] + "...REDACTED..."
	}
	if len(logCfg.OpenAIAPIKey) > 8 {
		logCfg.OpenAIAPIKey = logCfg.OpenAIAPIKey[:8] + "...REDACTED..."
	}
	log.Printf("Configuration loaded: %+v", logCfg)
	return cfg, nil
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt parses an integer environment variable with a default
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

// getEnvFloat parses a float environment variable with a default
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
