// Package expand widens a query's token set using a static association table
// before scoring. Matching is a bidirectional substring check, not exact
// lookup: short terms can reach many keys. That recall-maximizing behavior is
// inherited from the product and must not be tightened silently.
package expand

import (
	"strings"

	"github.com/hearthlib/curator/internal/domain/search/query"
)

// Terms expands a raw query into its deduplicated semantic term set.
// Every original token is always present in the result; additions follow the
// table order, so the output is deterministic. An empty or whitespace-only
// query yields an empty set.
func Terms(raw string) []string {
	original := query.Terms(raw)
	if len(original) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(original)*4)
	out := make([]string, 0, len(original)*4)
	add := func(term string) {
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}

	for _, term := range original {
		add(term)

		for _, assoc := range associations {
			// Term touches the key: pull in the related set.
			if overlaps(assoc.key, term) {
				for _, rel := range assoc.related {
					add(rel)
				}
			}

			// Term touches a related value: pull in the key and the whole set.
			for _, rel := range assoc.related {
				if overlaps(rel, term) {
					add(assoc.key)
					for _, r := range assoc.related {
						add(r)
					}
					break
				}
			}
		}
	}

	return out
}

// overlaps reports whether either string contains the other.
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
