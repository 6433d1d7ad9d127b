// Package config provides centralized configuration management for civiget.
// It handles environment variables, the token-file fallback, and the
// model-type destination map.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config holds all runtime settings for civiget.
type Config struct {
	// Token authenticates requests for gated content. Optional; absence
	// means unauthenticated requests are attempted. Never logged.
	Token string

	// BaseURL is the origin to talk to. Overridden in tests.
	BaseURL string

	// Output settings
	Quiet     bool
	DebugMode bool
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// Default values
const (
	DefaultBaseURL = "https://civitai.com"
)

// Get returns the global configuration, loading from environment if not already loaded
func Get() *Config {
	configOnce.Do(func() {
		globalConfig = loadFromEnv()
	})
	return globalConfig
}

// Reset clears the global configuration, forcing reload on next Get()
// This is primarily useful for testing
func Reset() {
	configOnce = sync.Once{}
	globalConfig = nil
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv() *Config {
	token := getEnv("CIVITAI_TOKEN", "")
	if token == "" {
		token = tokenFromFile()
	}
	return &Config{
		Token:     token,
		BaseURL:   getEnv("CIVIGET_BASE_URL", DefaultBaseURL),
		Quiet:     getEnvBool("CIVIGET_QUIET", false),
		DebugMode: getEnvBool("CIVIGET_DEBUG", false),
	}
}

// tokenFromFile reads ~/.civitai/config, the token location shared with
// other civitai tooling. A missing or unreadable file just means no token.
func tokenFromFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(home, ".civitai", "config"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return defaultValue
}
