package relevance

import (
	"strings"

	"github.com/hearthlib/curator/internal/domain/catalog"
)

// materialGroup is one precedence tier of the material-type heuristic.
type materialGroup struct {
	phrases []string
	boost   func(kind catalog.Kind) int
}

// materialGroups is evaluated top to bottom against the full lower-cased
// query string. The first group whose phrase appears in the query decides the
// boost for every item: if the item kind fails that group's kind check, the
// boost is 0 even when a later group's phrase is also present. The precedence
// is a product decision; do not reorder or fall through.
var materialGroups = []materialGroup{
	{
		phrases: []string{"internet of things", "iot", "arduino", "raspberry pi"},
		boost:   kindBoost(15, catalog.KindEquipment, catalog.KindThing),
	},
	{
		phrases: []string{"watch", "movie", "film"},
		boost:   kindBoost(10, catalog.KindMedia),
	},
	{
		phrases: []string{"game", "play"},
		boost:   kindBoost(12, catalog.KindGame),
	},
	{
		phrases: []string{"fix", "repair", "broken"},
		boost:   kindBoost(10, catalog.KindEquipment, catalog.KindThing),
	},
	{
		phrases: []string{"learn", "how to"},
		boost: func(kind catalog.Kind) int {
			switch kind {
			case catalog.KindMedia:
				return 5
			case catalog.KindEquipment, catalog.KindThing:
				return 3
			}
			return 0
		},
	},
}

// materialBoost favors certain item kinds when the query's wording suggests
// that kind. normalizedQuery is the full lower-cased query string, not a token.
func materialBoost(normalizedQuery string, kind catalog.Kind) int {
	for _, g := range materialGroups {
		for _, phrase := range g.phrases {
			if strings.Contains(normalizedQuery, phrase) {
				return g.boost(kind)
			}
		}
	}
	return 0
}

func kindBoost(boost int, kinds ...catalog.Kind) func(catalog.Kind) int {
	return func(kind catalog.Kind) int {
		for _, k := range kinds {
			if kind == k {
				return boost
			}
		}
		return 0
	}
}
