// Package recommend grounds free-form model replies against the catalog.
// Model text is not trusted to only reference real items; this package
// re-derives, from the text alone, which catalog items are genuinely named,
// so the caller never offers a hold or checkout on a fabricated title.
package recommend

import (
	"sort"
	"strings"

	"github.com/hearthlib/curator/internal/domain/catalog"
)

// MaxRecommendations caps how many grounded items are attached to one reply.
const MaxRecommendations = 6

const creatorProximity = 50

// Extract returns the catalog items genuinely referenced by the response
// text, ordered by the position of their title in the text and capped at
// MaxRecommendations. Items matched only indirectly (title absent, so its
// index is -1) sort before every literal title match; the -1-first ordering
// is inherited behavior, kept as-is pending product clarification.
func Extract(response string, items []catalog.Item) []catalog.Item {
	if response == "" || len(items) == 0 {
		return nil
	}

	respLower := strings.ToLower(response)

	type match struct {
		item catalog.Item
		pos  int
	}
	var matches []match
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		if _, ok := seen[item.ID()]; ok {
			continue
		}
		titleLower := strings.ToLower(item.Title())
		creatorLower := strings.ToLower(item.Creator())

		if !referenced(respLower, titleLower, creatorLower, item.ISBN()) {
			continue
		}
		seen[item.ID()] = struct{}{}
		matches = append(matches, match{item: item, pos: strings.Index(respLower, titleLower)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].pos < matches[j].pos
	})

	if len(matches) > MaxRecommendations {
		matches = matches[:MaxRecommendations]
	}

	results := make([]catalog.Item, len(matches))
	for i, m := range matches {
		results[i] = m.item
	}
	return results
}

// referenced applies the independent string heuristics that decide whether
// the response genuinely names the item.
func referenced(respLower, titleLower, creatorLower, isbn string) bool {
	// Verbatim title.
	if strings.Contains(respLower, titleLower) {
		return true
	}

	// Title with a leading "The " stripped.
	if rest, ok := strings.CutPrefix(titleLower, "the "); ok && strings.Contains(respLower, rest) {
		return true
	}

	// Quoted or bolded title.
	if strings.Contains(respLower, `"`+titleLower+`"`) {
		return true
	}
	if strings.Contains(respLower, "**"+titleLower+"**") {
		return true
	}

	// First title token near the creator name.
	if creatorLower != "" {
		if first, _, _ := strings.Cut(titleLower, " "); first != "" {
			ti := strings.Index(respLower, first)
			ci := strings.Index(respLower, creatorLower)
			if ti >= 0 && ci >= 0 && abs(ti-ci) < creatorProximity {
				return true
			}
		}
	}

	// Exact ISBN.
	if isbn != "" && strings.Contains(respLower, strings.ToLower(isbn)) {
		return true
	}

	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
