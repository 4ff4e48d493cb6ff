// Package yamlfile provides a store.Gateway that keeps each snapshot as a
// YAML document in its own file, which makes the data easy to read and edit
// by hand.
package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/phrazzld/coursebook/internal/store"
	"gopkg.in/yaml.v3"
)

// Gateway is a store.Gateway over a directory of "<key>.yaml" files.
type Gateway struct {
	dir    string
	mutex  sync.RWMutex
	logger *slog.Logger
}

// New returns a Gateway rooted at dir, creating the directory if needed.
func New(dir string, logger *slog.Logger) (*Gateway, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &Gateway{
		dir:    dir,
		logger: logger.With("component", "yaml_gateway"),
	}, nil
}

// Path returns the file that holds the snapshot for key.
func (g *Gateway) Path(key string) string {
	return filepath.Join(g.dir, key+".yaml")
}

// Load implements store.Gateway.
func (g *Gateway) Load(ctx context.Context, key string, dst any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	g.mutex.RLock()
	defer g.mutex.RUnlock()

	data, err := os.ReadFile(g.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	if err := yaml.Unmarshal(data, dst); err != nil {
		return true, fmt.Errorf("%w: %s: %v", store.ErrSnapshotUnreadable, key, err)
	}

	g.logger.Debug("snapshot loaded", "key", key)
	return true, nil
}

// Save implements store.Gateway. The document is written to a temporary file
// in the same directory and renamed over the old one.
func (g *Gateway) Save(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	tmp, err := os.CreateTemp(g.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, g.Path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", key, err)
	}

	g.logger.Debug("snapshot saved", "key", key, "bytes", len(data))
	return nil
}
