// Package memory provides an in-process store.Gateway. Snapshots are kept as
// encoded JSON so that callers never share memory with the stores, the same
// way a browser's local storage holds strings.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/phrazzld/coursebook/internal/store"
)

// Gateway is a store.Gateway backed by a map. The zero value is not usable;
// create one with New.
type Gateway struct {
	mu    sync.Mutex
	blobs map[string][]byte
	saves map[string]int
}

// New returns an empty Gateway.
func New() *Gateway {
	return &Gateway{
		blobs: make(map[string][]byte),
		saves: make(map[string]int),
	}
}

// Load implements store.Gateway.
func (g *Gateway) Load(ctx context.Context, key string, dst any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	g.mu.Lock()
	blob, ok := g.blobs[key]
	g.mu.Unlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(blob, dst); err != nil {
		return true, fmt.Errorf("%w: %s: %v", store.ErrSnapshotUnreadable, key, err)
	}
	return true, nil
}

// Save implements store.Gateway.
func (g *Gateway) Save(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.blobs[key] = blob
	g.saves[key]++
	return nil
}

// Put stores raw bytes under key as if they had been saved, for seeding
// snapshots written by other tools.
func (g *Gateway) Put(key string, raw []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.blobs[key] = append([]byte(nil), raw...)
}

// Raw returns a copy of the bytes stored under key.
func (g *Gateway) Raw(key string) ([]byte, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	blob, ok := g.blobs[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), blob...), true
}

// Saves returns how many times key has been saved.
func (g *Gateway) Saves(key string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves[key]
}
