package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string // optional; enables room narration
	LogFile      string
	LogLevel     zapcore.Level
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	level := zapcore.InfoLevel
	if s := os.Getenv("DETECTIVE_LOG_LEVEL"); s != "" {
		var err error
		level, err = zapcore.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("DETECTIVE_LOG_LEVEL: %w", err)
		}
	}

	return &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		LogFile:      os.Getenv("DETECTIVE_LOG_FILE"),
		LogLevel:     level,
	}, nil
}

// CanNarrate reports whether a Gemini key is available.
func (c *Config) CanNarrate() bool {
	return c.GeminiAPIKey != ""
}
