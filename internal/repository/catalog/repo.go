// Package catalog loads the catalog snapshot from a JSON file and serves it
// as an immutable, ordered list. Refreshing means loading a new snapshot and
// swapping it in; individual items are never mutated.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	domcat "github.com/hearthlib/curator/internal/domain/catalog"
)

// Repo holds the current catalog snapshot.
type Repo struct {
	mu    sync.RWMutex
	items []domcat.Item
}

// Load reads and validates a catalog file.
func Load(path string) (*Repo, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	items, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	return &Repo{items: items}, nil
}

// Reload replaces the snapshot with the contents of the given file.
func (r *Repo) Reload(path string) error {
	fresh, err := Load(path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.items = fresh.items
	r.mu.Unlock()
	return nil
}

// Snapshot returns the current ordered catalog. Callers must treat the slice
// as read-only; it is shared between concurrent searches.
func (r *Repo) Snapshot(_ context.Context) []domcat.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items
}

// Count returns the number of items in the current snapshot.
func (r *Repo) Count(ctx context.Context) int {
	return len(r.Snapshot(ctx))
}
