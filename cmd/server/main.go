// Package main implements the entry point for the coursebook server, which
// keeps courses and student enrollments and serves them over a JSON API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/coursebook/internal/config"
	"github.com/phrazzld/coursebook/internal/platform/logger"
)

// main is the entry point for the coursebook server.
// It loads configuration, sets up logging, opens storage, wires the
// dispatcher and starts the HTTP server.
func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("coursebook: %v", err)
	}
}

// run wires the application and serves until SIGINT or SIGTERM.
func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := initializeApp()
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

// initializeApp loads configuration and sets up logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_driver", cfg.Storage.Driver)
	slog.Debug("Storage configuration", "path", cfg.Storage.Path)

	return cfg, nil
}
