// Package boltdb provides a store.Gateway on a single bbolt database file.
// Every snapshot is one JSON value in the "snapshots" bucket, and every Save
// is one bbolt write transaction.
package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/phrazzld/coursebook/internal/store"
	"go.etcd.io/bbolt"
)

var snapshotsBucket = []byte("snapshots")

// openTimeout bounds how long Open waits for another process's file lock.
const openTimeout = time.Second

// Gateway is a store.Gateway backed by bbolt.
type Gateway struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// Open opens (or creates) the database file at path.
func Open(path string, logger *slog.Logger) (*Gateway, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bolt database %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshots bucket: %w", err)
	}

	logger.Debug("bolt database ready", "path", path)
	return &Gateway{
		db:     db,
		logger: logger.With("component", "bolt_gateway"),
	}, nil
}

// Close releases the database file.
func (g *Gateway) Close() error {
	return g.db.Close()
}

// Load implements store.Gateway.
func (g *Gateway) Load(ctx context.Context, key string, dst any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var found bool
	err := g.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(snapshotsBucket)
		if b == nil {
			return fmt.Errorf("bucket %s not found", snapshotsBucket)
		}

		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}
		found = true

		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("%w: %s: %v", store.ErrSnapshotUnreadable, key, err)
		}
		return nil
	})
	if err != nil {
		return found, err
	}

	g.logger.Debug("snapshot loaded", "key", key, "found", found)
	return found, nil
}

// Save implements store.Gateway.
func (g *Gateway) Save(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	err = g.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(snapshotsBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	g.logger.Debug("snapshot saved", "key", key, "bytes", len(data))
	return nil
}
