// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Store access, time formatting, and string helpers
package commands

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"github.com/pinkperl/concierge/internal/config"
	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

// openStore opens the hotel database the services write to.
// The caller owns the returned handle and must Close it.
func openStore() (*sqlite.DB, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening hotel store: %w", err)
	}
	return db, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatTime formats a time for display
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("2006-01-02")
}

// orDefault substitutes a placeholder for empty display fields
func orDefault(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
