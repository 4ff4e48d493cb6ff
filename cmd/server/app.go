package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/coursebook/internal/api/feed"
	"github.com/phrazzld/coursebook/internal/config"
	"github.com/phrazzld/coursebook/internal/events"
	"github.com/phrazzld/coursebook/internal/service"
	"github.com/phrazzld/coursebook/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Storage
	gateway      store.Gateway
	closeGateway func() error
	catalog      *store.Catalog

	// Command interface
	dispatcher *service.Dispatcher

	// Event system
	eventEmitter *events.InMemoryEventEmitter
	feedHub      *feed.Hub
}

// newApplication creates a new application instance with all dependencies initialized.
// The feed hub is started and stops when ctx is done.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.gateway, app.closeGateway, err = openGateway(cfg.Storage, logger.With("component", "gateway"))
	if err != nil {
		return nil, err
	}

	app.catalog, err = store.Open(ctx, app.gateway, store.WithLogger(logger))
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		"courses", len(app.catalog.Courses.List()),
		"enrollments", len(app.catalog.Enrollments.List()))

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.feedHub = feed.NewHub(logger)
	app.eventEmitter.RegisterHandler(app.feedHub)
	go app.feedHub.Run(ctx)

	app.dispatcher, err = service.NewDispatcher(app.catalog, app.eventEmitter, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}

	return app, nil
}

// cleanup releases storage. It is safe to call more than once.
func (app *application) cleanup() {
	if app.closeGateway == nil {
		return
	}
	if err := app.closeGateway(); err != nil {
		app.logger.Error("Failed to close storage", "error", err)
	}
	app.closeGateway = nil
}
