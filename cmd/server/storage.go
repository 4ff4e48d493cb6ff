package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/coursebook/internal/config"
	"github.com/phrazzld/coursebook/internal/platform/boltdb"
	"github.com/phrazzld/coursebook/internal/platform/memory"
	"github.com/phrazzld/coursebook/internal/platform/yamlfile"
	"github.com/phrazzld/coursebook/internal/store"
)

// openGateway opens the snapshot storage selected by cfg. The returned close
// function releases it and is never nil.
func openGateway(cfg config.StorageConfig, logger *slog.Logger) (store.Gateway, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverBolt:
		gw, err := boltdb.Open(cfg.Path, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open bolt storage at %s: %w", cfg.Path, err)
		}
		return gw, gw.Close, nil

	case config.DriverYAML:
		gw, err := yamlfile.New(cfg.Path, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open yaml storage at %s: %w", cfg.Path, err)
		}
		return gw, noop, nil

	case config.DriverMemory:
		logger.Warn("using in-memory storage; changes are lost on exit")
		return memory.New(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
