// Package query holds the search query value type.
package query

import "strings"

// Query is a raw patron search string with its normalized token view.
// No normalization is guaranteed upstream: the raw string may be empty,
// whitespace-only, or contain arbitrary punctuation.
type Query struct {
	raw        string
	normalized string
	terms      []string
}

// New creates a Query from a raw search string.
func New(raw string) Query {
	norm := strings.ToLower(raw)
	return Query{raw: raw, normalized: norm, terms: strings.Fields(norm)}
}

// Raw returns the query exactly as supplied.
func (q Query) Raw() string { return q.raw }

// Normalized returns the full lower-cased query string.
func (q Query) Normalized() string { return q.normalized }

// Terms returns the lower-cased whitespace-split tokens, empty tokens dropped.
func (q Query) Terms() []string { return q.terms }

// IsEmpty reports whether the query has no tokens.
func (q Query) IsEmpty() bool { return len(q.terms) == 0 }

// Terms tokenizes a raw query without building a Query value.
func Terms(raw string) []string {
	return strings.Fields(strings.ToLower(raw))
}
