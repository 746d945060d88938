// Package config loads process-wide settings from the environment. The
// resulting Config is immutable after Load and safe to share.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all server and API settings.
type Config struct {
	// Server
	Host     string
	Port     int
	LogLevel string
	Debug    bool

	// DevRev API
	BaseURL string
	Timeout time.Duration
	Retries int
	APIKey  string
}

// Load reads configuration from environment variables, falling back to
// the documented defaults. Load never fails; a missing API key is left
// empty and rejected at startup instead.
func Load() *Config {
	return &Config{
		Host:     getEnv("DEVREV_MCP_HOST", DefaultHost),
		Port:     getEnvInt("DEVREV_MCP_PORT", DefaultPort),
		LogLevel: getEnv("DEVREV_MCP_LOG_LEVEL", DefaultLogLevel),
		Debug:    getEnvBool("DEVREV_MCP_DEBUG"),
		BaseURL:  getEnv("DEVREV_API_BASE_URL", DefaultBaseURL),
		Timeout:  time.Duration(getEnvInt("DEVREV_API_TIMEOUT", DefaultTimeoutSeconds)) * time.Second,
		Retries:  getEnvInt("DEVREV_API_RETRIES", DefaultRetries),
		APIKey:   os.Getenv("DEVREV_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string) bool {
	switch os.Getenv(key) {
	case "true", "1", "yes":
		return true
	}
	return false
}
