package chi

import (
	"fmt"

	"github.com/hearthlib/curator/internal/domain"
	"github.com/hearthlib/curator/internal/domain/catalog"
)

type searchRequest struct {
	Query       string `json:"query"`
	Limit       int    `json:"limit,omitempty"`
	IntentAware *bool  `json:"intent_aware,omitempty"`
}

type searchResponse struct {
	Results []itemJSON `json:"results"`
	Count   int        `json:"count"`
}

type chatRequest struct {
	Messages []messageJSON `json:"messages"`
}

type chatResponse struct {
	Content         string     `json:"content"`
	Recommendations []itemJSON `json:"recommendations"`
	Fallback        bool       `json:"fallback,omitempty"`
}

type messageJSON struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type itemJSON struct {
	ID          string       `json:"id"`
	ItemType    string       `json:"itemType"`
	Title       string       `json:"title"`
	Creator     string       `json:"creator,omitempty"`
	Description string       `json:"description,omitempty"`
	Subjects    []string     `json:"subjects,omitempty"`
	ISBN        string       `json:"isbn,omitempty"`
	Formats     []formatJSON `json:"formats"`
	Rating      *float64     `json:"rating,omitempty"`
	Popular     bool         `json:"popular,omitempty"`
	Available   bool         `json:"available"`
}

type formatJSON struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

func itemsToJSON(items []catalog.Item) []itemJSON {
	out := make([]itemJSON, len(items))
	for i, it := range items {
		out[i] = itemToJSON(it)
	}
	return out
}

func itemToJSON(it catalog.Item) itemJSON {
	formats := make([]formatJSON, len(it.Formats()))
	for i, f := range it.Formats() {
		formats[i] = formatJSON{Type: f.Name(), Status: string(f.Status())}
	}

	j := itemJSON{
		ID:          it.ID(),
		ItemType:    string(it.Kind()),
		Title:       it.Title(),
		Creator:     it.Creator(),
		Description: it.Description(),
		Subjects:    it.Subjects(),
		ISBN:        it.ISBN(),
		Formats:     formats,
		Popular:     it.Popular(),
		Available:   it.Available(),
	}
	if rating, ok := it.Rating(); ok {
		j.Rating = &rating
	}
	return j
}

func messagesFromJSON(msgs []messageJSON) ([]domain.Message, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("messages is required")
	}

	out := make([]domain.Message, len(msgs))
	for i, m := range msgs {
		switch domain.Role(m.Role) {
		case domain.RoleUser, domain.RoleAssistant:
		default:
			return nil, fmt.Errorf("message %d: unknown role %q", i, m.Role)
		}
		if m.Content == "" {
			return nil, fmt.Errorf("message %d: content is required", i)
		}
		out[i] = domain.Message{Role: domain.Role(m.Role), Content: m.Content}
	}
	return out, nil
}
