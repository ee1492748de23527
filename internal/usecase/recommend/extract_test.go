package recommend

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/hearthlib/curator/internal/domain/catalog"
)

func mustBook(t *testing.T, id, title, author, isbn string) catalog.Item {
	t.Helper()
	opts := []catalog.Option{catalog.WithAuthor(author)}
	if isbn != "" {
		opts = append(opts, catalog.WithISBN(isbn))
	}
	it, err := catalog.New(id, catalog.KindBook, title, []catalog.Format{
		catalog.NewFormat("hardcover", catalog.Available),
	}, opts...)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return it
}

func fixture(t *testing.T) []catalog.Item {
	t.Helper()
	return []catalog.Item{
		mustBook(t, "crawdads", "Where the Crawdads Sing", "Delia Owens", ""),
		mustBook(t, "thursday", "The Thursday Murder Club", "Richard Osman", ""),
		mustBook(t, "educated", "Educated", "Tara Westover", ""),
		mustBook(t, "silent", "The Silent Patient", "Alex Michaelides", "978-1250301697"),
		mustBook(t, "midnight", "The Midnight Library", "Matt Haig", ""),
	}
}

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID()
	}
	return out
}

func TestExtract_VerbatimTitle(t *testing.T) {
	got := Extract("You might enjoy The Midnight Library for a reflective read.", fixture(t))
	if !reflect.DeepEqual(ids(got), []string{"midnight"}) {
		t.Errorf("got %v, want [midnight]", ids(got))
	}
}

func TestExtract_QuotedTitle(t *testing.T) {
	got := Extract(`I recommend "The Silent Patient" by Alex Michaelides.`, fixture(t))
	if !reflect.DeepEqual(ids(got), []string{"silent"}) {
		t.Errorf("got %v, want [silent]", ids(got))
	}
}

func TestExtract_BoldedTitle(t *testing.T) {
	got := Extract("Start with **Educated** if memoirs appeal to you.", fixture(t))
	if !reflect.DeepEqual(ids(got), []string{"educated"}) {
		t.Errorf("got %v, want [educated]", ids(got))
	}
}

func TestExtract_TheStrippedTitle(t *testing.T) {
	got := Extract("Fans of cozy crime rate Thursday Murder Club highly.", fixture(t))
	if !reflect.DeepEqual(ids(got), []string{"thursday"}) {
		t.Errorf("got %v, want [thursday]", ids(got))
	}
}

func TestExtract_CreatorProximity(t *testing.T) {
	// Full title absent; the title's first token lands close enough to the
	// author's name.
	got := Extract("Anything by Alex Michaelides in the thriller section works.", fixture(t))
	if !reflect.DeepEqual(ids(got), []string{"silent"}) {
		t.Errorf("got %v, want [silent]", ids(got))
	}
}

func TestExtract_CreatorTooFar(t *testing.T) {
	resp := "Alex Michaelides penned one famous novel. " +
		strings.Repeat("Unrelated filler sentences follow here. ", 3) +
		"The word appears only now."
	got := Extract(resp, []catalog.Item{
		mustBook(t, "far", "Word Patient", "Alex Michaelides", ""),
	})
	if len(got) != 0 {
		t.Errorf("got %v, want none beyond the proximity window", ids(got))
	}
}

func TestExtract_ISBN(t *testing.T) {
	got := Extract("The edition with ISBN 978-1250301697 is back on the shelf.", fixture(t))
	if !reflect.DeepEqual(ids(got), []string{"silent"}) {
		t.Errorf("got %v, want [silent]", ids(got))
	}
}

func TestExtract_IndirectMatchesSortFirst(t *testing.T) {
	// midnight is matched verbatim at a real position; silent is matched only
	// through creator proximity, so its title index is -1 and it sorts first.
	resp := "The Midnight Library is a gem; also try Alex Michaelides."
	got := Extract(resp, fixture(t))
	if !reflect.DeepEqual(ids(got), []string{"silent", "midnight"}) {
		t.Errorf("got %v, want [silent midnight]", ids(got))
	}
}

func TestExtract_OrderFollowsTextPosition(t *testing.T) {
	resp := "Educated comes first here, then The Midnight Library."
	got := Extract(resp, fixture(t))
	if !reflect.DeepEqual(ids(got), []string{"educated", "midnight"}) {
		t.Errorf("got %v, want [educated midnight]", ids(got))
	}
}

func TestExtract_CapsAtMax(t *testing.T) {
	items := make([]catalog.Item, 0, MaxRecommendations+3)
	var sb strings.Builder
	for i := 0; i < MaxRecommendations+3; i++ {
		title := fmt.Sprintf("Uniquebook%02d", i)
		items = append(items, mustBook(t, fmt.Sprintf("b%02d", i), title, "", ""))
		sb.WriteString(title)
		sb.WriteString(", ")
	}

	got := Extract(sb.String(), items)
	if len(got) != MaxRecommendations {
		t.Errorf("got %d items, want cap %d", len(got), MaxRecommendations)
	}
}

func TestExtract_NoDuplicates(t *testing.T) {
	resp := "Educated, then Educated again, and once more Educated."
	got := Extract(resp, fixture(t))
	if !reflect.DeepEqual(ids(got), []string{"educated"}) {
		t.Errorf("got %v, want [educated]", ids(got))
	}
}

func TestExtract_EmptyInputs(t *testing.T) {
	if got := Extract("", fixture(t)); got != nil {
		t.Errorf("expected nil for empty response, got %v", ids(got))
	}
	if got := Extract("anything", nil); got != nil {
		t.Errorf("expected nil for empty catalog, got %v", ids(got))
	}
}

func TestExtract_Deterministic(t *testing.T) {
	resp := "Educated, The Midnight Library, and The Silent Patient are all in."
	first := ids(Extract(resp, fixture(t)))
	for i := 0; i < 10; i++ {
		if again := ids(Extract(resp, fixture(t))); !reflect.DeepEqual(first, again) {
			t.Fatalf("extraction changed between runs:\nfirst: %v\nagain: %v", first, again)
		}
	}
}
