// ABOUTME: Tests for environment-based configuration loading
// ABOUTME: Verifies defaults, overrides, and validation failures
package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != "hotel.db" {
		t.Errorf("DBPath = %q, want hotel.db", cfg.DBPath)
	}
	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.AgentName != "concierge-agent" {
		t.Errorf("AgentName = %q, want concierge-agent", cfg.AgentName)
	}
	if cfg.ContextWindow != 5 {
		t.Errorf("ContextWindow = %d, want 5", cfg.ContextWindow)
	}
	if cfg.ProviderTimeout != 10*time.Second {
		t.Errorf("ProviderTimeout = %s, want 10s", cfg.ProviderTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONCIERGE_DB_PATH", "/data/pinkperl.db")
	t.Setenv("PORT", "8080")
	t.Setenv("CONCIERGE_CONTEXT_WINDOW", "10")
	t.Setenv("LIVEKIT_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != "/data/pinkperl.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.ContextWindow != 10 {
		t.Errorf("ContextWindow = %d", cfg.ContextWindow)
	}
	if cfg.ProviderTimeout != 30*time.Second {
		t.Errorf("ProviderTimeout = %s", cfg.ProviderTimeout)
	}
}

func TestValidateRejectsBadWindow(t *testing.T) {
	t.Setenv("CONCIERGE_CONTEXT_WINDOW", "-1")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject a negative context window")
	}
}

func TestHasLiveKitCredentials(t *testing.T) {
	t.Setenv("LIVEKIT_URL", "wss://hotel.livekit.cloud")
	t.Setenv("LIVEKIT_API_KEY", "key")
	t.Setenv("LIVEKIT_API_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HasLiveKitCredentials() {
		t.Error("HasLiveKitCredentials() = true with missing secret")
	}

	t.Setenv("LIVEKIT_API_SECRET", "secret")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.HasLiveKitCredentials() {
		t.Error("HasLiveKitCredentials() = false with all credentials set")
	}
}
