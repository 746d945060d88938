package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DEVREV_MCP_HOST", "DEVREV_MCP_PORT", "DEVREV_MCP_LOG_LEVEL",
		"DEVREV_MCP_DEBUG", "DEVREV_API_BASE_URL", "DEVREV_API_TIMEOUT",
		"DEVREV_API_RETRIES", "DEVREV_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %s, want 127.0.0.1", cfg.Host)
	}
	if cfg.Port != 8888 {
		t.Errorf("Port = %d, want 8888", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.Debug {
		t.Error("Debug = true, want false")
	}
	if cfg.BaseURL != "https://api.devrev.ai" {
		t.Errorf("BaseURL = %s, want https://api.devrev.ai", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Retries != 3 {
		t.Errorf("Retries = %d, want 3", cfg.Retries)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVREV_MCP_HOST", "0.0.0.0")
	t.Setenv("DEVREV_MCP_PORT", "9000")
	t.Setenv("DEVREV_MCP_LOG_LEVEL", "debug")
	t.Setenv("DEVREV_MCP_DEBUG", "true")
	t.Setenv("DEVREV_API_BASE_URL", "https://api.example.com")
	t.Setenv("DEVREV_API_TIMEOUT", "5")
	t.Setenv("DEVREV_API_RETRIES", "1")
	t.Setenv("DEVREV_API_KEY", "pat-123")

	cfg := Load()

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %s, want 0.0.0.0", cfg.Host)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("BaseURL = %s, want https://api.example.com", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.Retries != 1 {
		t.Errorf("Retries = %d, want 1", cfg.Retries)
	}
	if cfg.APIKey != "pat-123" {
		t.Errorf("APIKey = %q, want pat-123", cfg.APIKey)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVREV_MCP_PORT", "not-a-number")
	t.Setenv("DEVREV_API_RETRIES", "three")

	cfg := Load()

	if cfg.Port != 8888 {
		t.Errorf("Port = %d, want default 8888", cfg.Port)
	}
	if cfg.Retries != 3 {
		t.Errorf("Retries = %d, want default 3", cfg.Retries)
	}
}
