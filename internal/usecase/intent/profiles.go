package intent

import "github.com/hearthlib/curator/internal/domain/catalog"

// keywordBoost adds to an item's score when its description mentions the keyword.
type keywordBoost struct {
	keyword string
	boost   int
}

// profile describes one intent: the query phrasings that signal it, the
// material kinds that suit it, and the description keywords worth extra score.
type profile struct {
	primary   Primary
	patterns  []string
	materials []catalog.Kind
	keywords  []keywordBoost
}

// profiles is evaluated in order; exploration last doubles as the fallback.
var profiles = []profile{
	{
		primary:   Learn,
		patterns:  []string{"how to", "learn", "understand", "basics of", "introduction to", "tutorial", "teach me", "guide to", "explain"},
		materials: []catalog.Kind{catalog.KindBook, catalog.KindMedia, catalog.KindEquipment},
		keywords: []keywordBoost{
			{"instructional", 10},
			{"beginner", 8},
			{"tutorial", 12},
		},
	},
	{
		primary:   Solve,
		patterns:  []string{"fix", "solve", "repair", "troubleshoot", "broken", "not working", "help with", "issue with", "problem"},
		materials: []catalog.Kind{catalog.KindThing, catalog.KindEquipment, catalog.KindBook, catalog.KindMedia},
		keywords: []keywordBoost{
			{"practical", 15},
			{"tools", 12},
			{"step-by-step", 10},
		},
	},
	{
		primary:   Enjoy,
		patterns:  []string{"fun", "enjoy", "watch", "play", "relax", "weekend", "bored", "leisure", "pass time"},
		materials: []catalog.Kind{catalog.KindMedia, catalog.KindGame, catalog.KindComic, catalog.KindBook},
		keywords: []keywordBoost{
			{"entertaining", 10},
			{"award", 8},
			{"bestseller", 5},
		},
	},
	{
		primary:   Research,
		patterns:  []string{"research", "study", "academic", "thesis", "deep dive", "comprehensive", "analysis", "investigate", "scholarly"},
		materials: []catalog.Kind{catalog.KindBook, catalog.KindMedia},
		keywords: []keywordBoost{
			{"comprehensive", 12},
			{"authoritative", 10},
			{"definitive", 8},
		},
	},
	{
		primary:   Create,
		patterns:  []string{"make", "build", "create", "design", "craft", "diy", "project", "art", "write"},
		materials: []catalog.Kind{catalog.KindThing, catalog.KindEquipment, catalog.KindBook},
		keywords: []keywordBoost{
			{"hands-on", 15},
			{"project", 10},
			{"creative", 12},
		},
	},
	{
		primary:   Explore,
		patterns:  []string{"interested in", "curious about", "what about", "tell me about", "explore", "discover", "find out"},
		materials: []catalog.Kind{catalog.KindBook, catalog.KindMedia, catalog.KindEquipment},
		keywords: []keywordBoost{
			{"introduction", 8},
			{"overview", 6},
			{"guide", 6},
		},
	},
}

func profileFor(p Primary) profile {
	for _, prof := range profiles {
		if prof.primary == p {
			return prof
		}
	}
	return profiles[len(profiles)-1]
}
