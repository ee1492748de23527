// Package search ranks catalog items against a patron query: expand the
// query once, score every item, keep positive scores, sort, truncate.
package search

import (
	"sort"

	"github.com/hearthlib/curator/internal/domain/catalog"
	"github.com/hearthlib/curator/internal/domain/search/query"
	"github.com/hearthlib/curator/internal/usecase/expand"
	"github.com/hearthlib/curator/internal/usecase/relevance"
)

// Rank scores every catalog item against the raw query and returns the
// matching items ordered by descending relevance. Equal scores keep their
// catalog order (stable sort). limit <= 0 means no truncation. boost may be
// nil. An empty or whitespace-only query, or an empty catalog, yields nil
// without scoring anything.
func Rank(raw string, items []catalog.Item, limit int, boost relevance.BoostFunc) []catalog.Item {
	q := query.New(raw)
	if q.IsEmpty() || len(items) == 0 {
		return nil
	}

	expanded := expand.Terms(raw)

	type scored struct {
		item  catalog.Item
		score int
	}
	hits := make([]scored, 0, len(items))
	for _, item := range items {
		if s := relevance.Score(item, q, expanded, boost); s > 0 {
			hits = append(hits, scored{item: item, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	results := make([]catalog.Item, len(hits))
	for i, h := range hits {
		results[i] = h.item
	}
	return results
}
