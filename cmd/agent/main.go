// ABOUTME: Main entry point for the concierge agent with stdio transport
// ABOUTME: Opens the hotel store, starts a guest session, and serves MCP tools
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pinkperl/concierge/internal/booking"
	"github.com/pinkperl/concierge/internal/config"
	conciergemcp "github.com/pinkperl/concierge/internal/mcp"
	"github.com/pinkperl/concierge/internal/models"
	"github.com/pinkperl/concierge/internal/session"
	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

// Version information (set by goreleaser)
var version = "dev"

func main() {
	guestFlag := flag.String("guest", "", "guest identity for this session (defaults to CONCIERGE_GUEST_ID)")
	flag.Parse()

	// stdout carries the MCP stream, so all logging goes to stderr
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix: "agent",
	})

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	identity := *guestFlag
	if identity == "" {
		identity = os.Getenv("CONCIERGE_GUEST_ID")
	}
	if identity == "" {
		logger.Fatal("no guest identity: pass --guest or set CONCIERGE_GUEST_ID")
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open hotel store", "path", cfg.DBPath, "error", err)
	}
	defer db.Close()

	ledger := booking.NewLedger(db, logger)
	bridge := session.NewBridge(db, ledger, logger, identity)
	bridge.SetContextWindow(cfg.ContextWindow)
	defer bridge.Close()

	greeting, turns, err := bridge.Start()
	if err != nil {
		logger.Fatal("failed to start session", "guest", identity, "error", err)
	}

	server := mcpserver.NewMCPServer(
		"Pink Perl Concierge",
		version,
		mcpserver.WithInstructions(buildInstructions(greeting, turns)),
	)
	conciergemcp.RegisterTools(server, bridge)

	logger.Info("concierge agent starting on stdio", "guest", identity)
	if err := mcpserver.ServeStdio(server); err != nil {
		logger.Fatal("server error", "error", err)
	}
}

// buildInstructions seeds the model with the opening line and any
// recent conversation history for this guest.
func buildInstructions(greeting string, turns []models.Turn) string {
	var b strings.Builder
	b.WriteString("You are Kriti, the voice concierge for the Pink Perl hotel. ")
	b.WriteString("Greet the guest with exactly this line and then assist them:\n\n")
	b.WriteString(greeting)
	if len(turns) > 0 {
		b.WriteString("\n\nRecent conversation with this guest:\n")
		for _, t := range turns {
			fmt.Fprintf(&b, "%s: %s\n", t.Speaker, t.Message)
		}
	}
	return b.String()
}
