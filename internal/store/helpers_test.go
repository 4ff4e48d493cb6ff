package store_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/coursebook/internal/platform/memory"
	"github.com/phrazzld/coursebook/internal/store"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

var errDiskFull = errors.New("disk full")

func testOptions() []store.Option {
	return []store.Option{
		store.WithClock(func() time.Time { return fixedTime }),
		store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
}

func openCatalog(t *testing.T, gw store.Gateway) *store.Catalog {
	t.Helper()
	c, err := store.Open(context.Background(), gw, testOptions()...)
	require.NoError(t, err)
	return c
}

// failingGateway wraps a memory gateway and can be told to reject saves.
type failingGateway struct {
	*memory.Gateway
	failSaves bool
}

func (g *failingGateway) Save(ctx context.Context, key string, v any) error {
	if g.failSaves {
		return errDiskFull
	}
	return g.Gateway.Save(ctx, key, v)
}
