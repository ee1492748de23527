// Package relevance assigns catalog items a numeric score against a query.
// All signals are additive and computed on lower-cased fields with literal
// substring matching only; there is no fuzzy or typo-tolerant matching.
package relevance

import (
	"strings"

	"github.com/hearthlib/curator/internal/domain/catalog"
	"github.com/hearthlib/curator/internal/domain/search/query"
)

// BoostFunc is an opaque, externally owned scoring oracle. The scorer adds
// whatever it returns; there is no contract beyond "pure and finite".
type BoostFunc func(item catalog.Item) int

// Signal weights.
const (
	weightTitleExact       = 20
	weightTitleSubstring   = 10
	weightCreator          = 8
	weightSubjectExact     = 12
	weightSubjectSubstring = 6
	weightExpandedExact    = 4
	weightExpandedPartial  = 2
	weightDescription      = 3
)

// highRatingThreshold is the minimum rating that earns the rating boost.
const highRatingThreshold = 4.0

// Score computes the relevance of an item against a query and its expanded
// term set. The exact and substring tiers are independent checks: an exact
// title match also satisfies the substring check and earns both weights.
// boost may be nil.
func Score(item catalog.Item, q query.Query, expanded []string, boost BoostFunc) int {
	score := 0
	original := q.Terms()

	titleLower := strings.ToLower(item.Title())
	for _, term := range original {
		if titleLower == term {
			score += weightTitleExact
		}
		if strings.Contains(titleLower, term) {
			score += weightTitleSubstring
		}
	}

	creatorLower := strings.ToLower(item.Creator())
	if creatorLower != "" {
		for _, term := range original {
			if strings.Contains(creatorLower, term) {
				score += weightCreator
			}
		}
	}

	for _, subject := range item.Subjects() {
		subjectLower := strings.ToLower(subject)
		for _, term := range original {
			if subjectLower == term {
				score += weightSubjectExact
			}
			if strings.Contains(subjectLower, term) {
				score += weightSubjectSubstring
			}
		}
		for _, term := range expanded {
			if subjectLower == term {
				score += weightExpandedExact
			}
			if strings.Contains(subjectLower, term) {
				score += weightExpandedPartial
			}
		}
	}

	descLower := strings.ToLower(item.Description())
	if descLower != "" {
		// Literal occurrence counting. Query terms are never compiled into a
		// pattern, so pattern metacharacters in patron input cannot break the
		// scoring pass.
		for _, term := range original {
			score += strings.Count(descLower, term) * weightDescription
		}
		for _, term := range expanded {
			if strings.Contains(descLower, term) && !containsTerm(original, term) {
				score++
			}
		}
	}

	score += materialBoost(q.Normalized(), item.Kind())

	if item.Popular() {
		score++
	}
	if rating, ok := item.Rating(); ok && rating >= highRatingThreshold {
		score++
	}

	if boost != nil {
		score += boost(item)
	}

	return score
}

func containsTerm(terms []string, term string) bool {
	for _, t := range terms {
		if t == term {
			return true
		}
	}
	return false
}
