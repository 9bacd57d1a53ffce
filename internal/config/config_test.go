package config

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DETECTIVE_LOG_FILE", "")
	t.Setenv("DETECTIVE_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.CanNarrate() {
		t.Error("expected narration to be off without an API key")
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("DETECTIVE_LOG_FILE", "/tmp/detective.log")
	t.Setenv("DETECTIVE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !cfg.CanNarrate() {
		t.Error("expected narration to be available")
	}
	if cfg.LogFile != "/tmp/detective.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestLoadConfigBadLevel(t *testing.T) {
	t.Setenv("DETECTIVE_LOG_LEVEL", "loud")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}
