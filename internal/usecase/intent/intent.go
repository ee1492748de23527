// Package intent classifies what a patron is actually trying to do
// (learn, solve, enjoy, ...) and turns that into an additive scoring boost.
// The ranking core consumes this package only through a relevance.BoostFunc,
// so it stays an opaque collaborator behind the scorer's boundary.
package intent

import (
	"strings"

	"github.com/hearthlib/curator/internal/domain/catalog"
)

// Primary is the dominant patron goal.
type Primary string

// Primary intents.
const (
	Learn    Primary = "learn"
	Create   Primary = "create"
	Explore  Primary = "explore"
	Solve    Primary = "solve"
	Enjoy    Primary = "enjoy"
	Research Primary = "research"
)

// Stage is how far along the patron's journey the query sounds.
type Stage string

// Journey stages.
const (
	Beginner     Stage = "beginner"
	Intermediate Stage = "intermediate"
	Advanced     Stage = "advanced"
	Exploring    Stage = "exploring"
)

// Intent is the classification signal for one query.
type Intent struct {
	Primary            Primary
	Secondary          []Primary
	Confidence         float64
	SuggestedMaterials []catalog.Kind
	Stage              Stage
}

const patternWeight = 10

// Analyze classifies a patron query. Unrecognized queries default to
// exploration with zero confidence.
func Analyze(rawQuery string) Intent {
	queryLower := strings.ToLower(rawQuery)

	best := profiles[len(profiles)-1] // exploration fallback
	bestScore := 0
	var secondary []Primary

	for _, p := range profiles {
		score := 0
		for _, pattern := range p.patterns {
			if strings.Contains(queryLower, pattern) {
				score += patternWeight
			}
		}
		if score > 0 {
			secondary = append(secondary, p.primary)
		}
		if score > bestScore {
			best = p
			bestScore = score
		}
	}

	confidence := float64(bestScore) / patternWeight
	if confidence > 1 {
		confidence = 1
	}

	filtered := secondary[:0]
	for _, s := range secondary {
		if s != best.primary {
			filtered = append(filtered, s)
		}
	}

	return Intent{
		Primary:            best.primary,
		Secondary:          filtered,
		Confidence:         confidence,
		SuggestedMaterials: best.materials,
		Stage:              detectStage(queryLower),
	}
}

// Boost returns the additive score contribution for an item under the given
// intent: a flat bonus when the item kind suits the intent, description
// keyword bonuses from the intent profile, and a journey-stage bonus.
func Boost(item catalog.Item, in Intent) int {
	p := profileFor(in.Primary)
	boost := 0

	for _, kind := range p.materials {
		if item.Kind() == kind {
			boost += 5
			break
		}
	}

	descLower := strings.ToLower(item.Description())
	if descLower == "" {
		return boost
	}

	for _, kb := range p.keywords {
		if strings.Contains(descLower, kb.keyword) {
			boost += kb.boost
		}
	}

	switch in.Stage {
	case Beginner:
		if containsAny(descLower, "beginner", "introduction", "basics") {
			boost += 8
		}
	case Advanced:
		if containsAny(descLower, "advanced", "professional", "expert") {
			boost += 8
		}
	}

	return boost
}

// IsMaterialTypeQuery reports whether the patron is asking what kinds of
// materials the library carries rather than searching for a topic.
func IsMaterialTypeQuery(rawQuery string) bool {
	queryLower := strings.ToLower(rawQuery)
	return containsAny(queryLower,
		"what can i borrow",
		"besides books",
		"other than books",
		"what else",
		"what materials",
		"what types",
		"available to borrow",
	)
}

func detectStage(queryLower string) Stage {
	switch {
	case containsAny(queryLower, "beginner", "start", "basics"):
		return Beginner
	case containsAny(queryLower, "advanced", "expert", "professional"):
		return Advanced
	case containsAny(queryLower, "improve", "better", "next"):
		return Intermediate
	}
	return Exploring
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
