// ABOUTME: Main entry point for the concierge HTTP server
// ABOUTME: Serves LiveKit token issuance, admin queries, and health checks
package main

import (
	"net/http"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/pinkperl/concierge/internal/config"
	"github.com/pinkperl/concierge/internal/rooms"
	"github.com/pinkperl/concierge/internal/server"
	"github.com/pinkperl/concierge/internal/storage/sqlite"
)

func main() {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix:          "server",
		ReportTimestamp: true,
	})

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open hotel store", "path", cfg.DBPath, "error", err)
	}
	defer db.Close()

	// Token issuance is degraded, not fatal, without provider credentials.
	var provider server.RoomProvider
	if cfg.HasLiveKitCredentials() {
		client, err := rooms.NewClient(cfg.LiveKitURL, cfg.LiveKitAPIKey, cfg.LiveKitAPISecret, cfg.AgentName)
		if err != nil {
			logger.Fatal("failed to create LiveKit client", "error", err)
		}
		provider = client
	} else {
		logger.Warn("LiveKit credentials not set, token issuance disabled")
	}

	mux := http.NewServeMux()
	server.NewTokenHandler(provider, cfg.ProviderTimeout, logger).RegisterRoutes(mux)
	server.NewAdminHandler(sqlite.NewAdminStore(db), logger).RegisterRoutes(mux)
	(&server.HealthHandler{}).RegisterRoutes(mux)

	handler := server.CORS(server.RequestLogger(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("concierge server listening", "addr", addr, "db", db.Path())
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
