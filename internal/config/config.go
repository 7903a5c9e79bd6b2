// ABOUTME: Centralized configuration for the concierge services
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the concierge system
type Config struct {
	// Storage settings
	DBPath string

	// HTTP server settings
	Port string

	// LiveKit settings
	LiveKitURL       string
	LiveKitAPIKey    string
	LiveKitAPISecret string
	AgentName        string
	ProviderTimeout  time.Duration

	// Session settings
	ContextWindow int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DBPath:           getEnv("CONCIERGE_DB_PATH", "hotel.db"),
		Port:             getEnv("PORT", "5000"),
		LiveKitURL:       os.Getenv("LIVEKIT_URL"),
		LiveKitAPIKey:    os.Getenv("LIVEKIT_API_KEY"),
		LiveKitAPISecret: os.Getenv("LIVEKIT_API_SECRET"),
		AgentName:        getEnv("CONCIERGE_AGENT_NAME", "concierge-agent"),
		ProviderTimeout:  getEnvDuration("LIVEKIT_TIMEOUT", 10*time.Second),
		ContextWindow:    getEnvInt("CONCIERGE_CONTEXT_WINDOW", 5),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ContextWindow <= 0 {
		return fmt.Errorf("CONCIERGE_CONTEXT_WINDOW must be positive, got %d", c.ContextWindow)
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("LIVEKIT_TIMEOUT must be positive, got %s", c.ProviderTimeout)
	}
	return nil
}

// HasLiveKitCredentials reports whether all provider credentials are set.
func (c *Config) HasLiveKitCredentials() bool {
	return c.LiveKitURL != "" && c.LiveKitAPIKey != "" && c.LiveKitAPISecret != ""
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
