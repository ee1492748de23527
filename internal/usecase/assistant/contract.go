package assistant

import (
	"context"

	"github.com/hearthlib/curator/internal/domain/catalog"
)

// CatalogProvider supplies the catalog snapshot for prompting and grounding.
type CatalogProvider interface {
	Snapshot(ctx context.Context) []catalog.Item
}
