// Package catalog holds the catalog item model: one orderable or holdable
// entity in the library system, discriminated by kind.
package catalog

import (
	"fmt"
	"strings"
)

// Kind discriminates catalog item variants.
type Kind string

// Catalog item kinds.
const (
	KindBook      Kind = "book"
	KindMedia     Kind = "media"
	KindGame      Kind = "game"
	KindEquipment Kind = "equipment"
	KindComic     Kind = "comic"
	KindThing     Kind = "thing"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindBook, KindMedia, KindGame, KindEquipment, KindComic, KindThing:
		return true
	}
	return false
}

// Item is a catalog entry (immutable value object).
// Kind-specific fields (author, director, developer, subjects, isbn) are only
// reachable through the accessors, which resolve them per kind.
type Item struct {
	id          string
	kind        Kind
	title       string
	description string
	author      string
	director    string
	developer   string
	subjects    []string
	isbn        string
	formats     []Format
	rating      float64
	rated       bool
	popular     bool
}

// Option configures optional item fields during construction.
type Option func(*Item)

// WithDescription sets the free-text description.
func WithDescription(d string) Option { return func(i *Item) { i.description = d } }

// WithAuthor sets the author (book kind).
func WithAuthor(a string) Option { return func(i *Item) { i.author = a } }

// WithDirector sets the director (media kind).
func WithDirector(d string) Option { return func(i *Item) { i.director = d } }

// WithDeveloper sets the developer (game kind).
func WithDeveloper(d string) Option { return func(i *Item) { i.developer = d } }

// WithSubjects sets the subject tags (book-like kinds).
func WithSubjects(s ...string) Option {
	return func(i *Item) { i.subjects = append([]string(nil), s...) }
}

// WithISBN sets the ISBN (book-like kinds).
func WithISBN(isbn string) Option { return func(i *Item) { i.isbn = isbn } }

// WithRating sets the patron rating, 0.0-5.0.
func WithRating(r float64) Option { return func(i *Item) { i.rating = r; i.rated = true } }

// Popular marks the item as popular.
func Popular() Option { return func(i *Item) { i.popular = true } }

// New validates and creates an Item.
// ID and title must be non-empty, formats must be non-empty, rating (if set)
// must be within 0.0-5.0, and kind-specific fields must match the kind.
func New(id string, kind Kind, title string, formats []Format, opts ...Option) (Item, error) {
	if strings.TrimSpace(id) == "" {
		return Item{}, fmt.Errorf("item ID is required")
	}
	if !kind.Valid() {
		return Item{}, fmt.Errorf("unknown item kind %q", kind)
	}
	if strings.TrimSpace(title) == "" {
		return Item{}, fmt.Errorf("item %s: title is required", id)
	}
	if len(formats) == 0 {
		return Item{}, fmt.Errorf("item %s: at least one format is required", id)
	}

	it := Item{
		id:      id,
		kind:    kind,
		title:   title,
		formats: append([]Format(nil), formats...),
	}
	for _, o := range opts {
		o(&it)
	}

	if it.rated && (it.rating < 0 || it.rating > 5) {
		return Item{}, fmt.Errorf("item %s: rating %.2f out of range [0, 5]", id, it.rating)
	}
	if it.author != "" && kind != KindBook {
		return Item{}, fmt.Errorf("item %s: author is only valid for books", id)
	}
	if it.director != "" && kind != KindMedia {
		return Item{}, fmt.Errorf("item %s: director is only valid for media", id)
	}
	if it.developer != "" && kind != KindGame {
		return Item{}, fmt.Errorf("item %s: developer is only valid for games", id)
	}
	if len(it.subjects) > 0 && !supportsSubjects(kind) {
		return Item{}, fmt.Errorf("item %s: subjects are not valid for kind %q", id, kind)
	}
	if it.isbn != "" && !supportsISBN(kind) {
		return Item{}, fmt.Errorf("item %s: isbn is not valid for kind %q", id, kind)
	}

	return it, nil
}

// Reconstruct creates an Item without validation (storage hydration).
func Reconstruct(
	id string, kind Kind, title, description string,
	author, director, developer string,
	subjects []string, isbn string, formats []Format,
	rating float64, rated, popular bool,
) Item {
	return Item{
		id: id, kind: kind, title: title, description: description,
		author: author, director: director, developer: developer,
		subjects: subjects, isbn: isbn, formats: formats,
		rating: rating, rated: rated, popular: popular,
	}
}

// ID returns the stable item identifier, unique across the catalog.
func (i *Item) ID() string { return i.id }

// Kind returns the item kind discriminant.
func (i *Item) Kind() Kind { return i.kind }

// Title returns the item title.
func (i *Item) Title() string { return i.title }

// Description returns the free-text description (may be empty).
func (i *Item) Description() string { return i.description }

// Formats returns the ordered format list.
func (i *Item) Formats() []Format { return i.formats }

// Rating returns the patron rating and whether one is set.
func (i *Item) Rating() (float64, bool) { return i.rating, i.rated }

// Popular reports whether the item is marked popular.
func (i *Item) Popular() bool { return i.popular }

// Creator resolves the single creator field for the item kind:
// author for books, director for media, developer for games.
// Kinds without a creator resolve to the empty string.
func (i *Item) Creator() string {
	switch i.kind {
	case KindBook:
		return i.author
	case KindMedia:
		return i.director
	case KindGame:
		return i.developer
	}
	return ""
}

// Subjects returns the free-text subject tags for kinds that carry them.
func (i *Item) Subjects() []string {
	if supportsSubjects(i.kind) {
		return i.subjects
	}
	return nil
}

// ISBN returns the ISBN for book-like kinds, empty otherwise.
func (i *Item) ISBN() string {
	if supportsISBN(i.kind) {
		return i.isbn
	}
	return ""
}

// Available reports whether any format is currently available.
func (i *Item) Available() bool {
	for _, f := range i.formats {
		if f.Status() == Available {
			return true
		}
	}
	return false
}

func supportsSubjects(k Kind) bool { return k == KindBook || k == KindComic }

func supportsISBN(k Kind) bool { return k == KindBook || k == KindComic }
