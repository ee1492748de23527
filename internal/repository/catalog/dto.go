package catalog

import (
	"encoding/json"
	"fmt"

	domcat "github.com/hearthlib/curator/internal/domain/catalog"
)

// itemDTO is the on-disk catalog item shape.
type itemDTO struct {
	ID          string      `json:"id"`
	ItemType    string      `json:"itemType"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Author      string      `json:"author,omitempty"`
	Director    string      `json:"director,omitempty"`
	Developer   string      `json:"developer,omitempty"`
	Subjects    []string    `json:"subjects,omitempty"`
	ISBN        string      `json:"isbn,omitempty"`
	Formats     []formatDTO `json:"formats"`
	Rating      *float64    `json:"rating,omitempty"`
	Popular     bool        `json:"popular,omitempty"`
}

type formatDTO struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

// parseCatalog decodes a catalog file: either a bare item array or an object
// with an "items" field.
func parseCatalog(data []byte) ([]domcat.Item, error) {
	var dtos []itemDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		var wrapper struct {
			Items []itemDTO `json:"items"`
		}
		if err2 := json.Unmarshal(data, &wrapper); err2 != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		dtos = wrapper.Items
	}

	items := make([]domcat.Item, 0, len(dtos))
	seen := make(map[string]struct{}, len(dtos))
	for _, dto := range dtos {
		if _, ok := seen[dto.ID]; ok {
			return nil, fmt.Errorf("duplicate item id %q", dto.ID)
		}
		seen[dto.ID] = struct{}{}

		item, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (d itemDTO) toDomain() (domcat.Item, error) {
	formats := make([]domcat.Format, len(d.Formats))
	for i, f := range d.Formats {
		formats[i] = domcat.NewFormat(f.Type, domcat.Availability(f.Status))
	}

	opts := []domcat.Option{}
	if d.Description != "" {
		opts = append(opts, domcat.WithDescription(d.Description))
	}
	if d.Author != "" {
		opts = append(opts, domcat.WithAuthor(d.Author))
	}
	if d.Director != "" {
		opts = append(opts, domcat.WithDirector(d.Director))
	}
	if d.Developer != "" {
		opts = append(opts, domcat.WithDeveloper(d.Developer))
	}
	if len(d.Subjects) > 0 {
		opts = append(opts, domcat.WithSubjects(d.Subjects...))
	}
	if d.ISBN != "" {
		opts = append(opts, domcat.WithISBN(d.ISBN))
	}
	if d.Rating != nil {
		opts = append(opts, domcat.WithRating(*d.Rating))
	}
	if d.Popular {
		opts = append(opts, domcat.Popular())
	}

	return domcat.New(d.ID, domcat.Kind(d.ItemType), d.Title, formats, opts...)
}
