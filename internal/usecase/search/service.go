package search

import (
	"context"

	"github.com/hearthlib/curator/internal/domain/catalog"
	"github.com/hearthlib/curator/internal/usecase/relevance"
)

// Service handles catalog search requests.
type Service struct {
	catalog      CatalogProvider
	defaultLimit int
	maxLimit     int
}

// New creates a search service.
func New(catalog CatalogProvider) *Service {
	return &Service{catalog: catalog, defaultLimit: 20, maxLimit: 100}
}

// WithPagination overrides the default and maximum result limits.
func (s *Service) WithPagination(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// Search ranks the current catalog snapshot against the query.
// limit <= 0 applies the default limit; limits above the maximum are clamped.
func (s *Service) Search(ctx context.Context, raw string, limit int, boost relevance.BoostFunc) []catalog.Item {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	return Rank(raw, s.catalog.Snapshot(ctx), limit, boost)
}
