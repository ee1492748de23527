package search

import (
	"context"

	"github.com/hearthlib/curator/internal/domain/catalog"
)

// CatalogProvider supplies the catalog snapshot to search against.
// The returned slice is a read-only, ordered view; the service never mutates it.
type CatalogProvider interface {
	Snapshot(ctx context.Context) []catalog.Item
}
