package intent

import (
	"testing"

	"github.com/hearthlib/curator/internal/domain/catalog"
)

func mustItem(t *testing.T, id string, kind catalog.Kind, desc string) catalog.Item {
	t.Helper()
	it, err := catalog.New(id, kind, "Untitled", []catalog.Format{
		catalog.NewFormat("kit", catalog.Available),
	}, catalog.WithDescription(desc))
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return it
}

func TestAnalyze_Primary(t *testing.T) {
	tests := []struct {
		query string
		want  Primary
	}{
		{"how to knit a sweater", Learn},
		{"teach me spanish", Learn},
		{"fix my broken bike", Solve},
		{"something fun for the weekend", Enjoy},
		{"academic research on urban planning", Research},
		{"build a birdhouse project", Create},
		{"curious about astronomy", Explore},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			in := Analyze(tt.query)
			if in.Primary != tt.want {
				t.Errorf("Analyze(%q).Primary = %s, want %s", tt.query, in.Primary, tt.want)
			}
		})
	}
}

func TestAnalyze_UnrecognizedFallsBackToExplore(t *testing.T) {
	in := Analyze("victorian gothic novels")
	if in.Primary != Explore {
		t.Errorf("Primary = %s, want %s", in.Primary, Explore)
	}
	if in.Confidence != 0 {
		t.Errorf("Confidence = %g, want 0", in.Confidence)
	}
}

func TestAnalyze_MultiplePatternsRaiseConfidence(t *testing.T) {
	one := Analyze("learn pottery")
	two := Analyze("learn how to make pottery")

	if one.Confidence <= 0 {
		t.Fatalf("single pattern confidence = %g, want > 0", one.Confidence)
	}
	if two.Primary != Learn {
		t.Errorf("Primary = %s, want %s", two.Primary, Learn)
	}
	if two.Confidence > 1 {
		t.Errorf("Confidence = %g, want capped at 1", two.Confidence)
	}
}

func TestAnalyze_SecondaryExcludesPrimary(t *testing.T) {
	// "fix" signals Solve; "learn" signals Learn. Learn wins only if its
	// pattern count is higher, otherwise order decides; either way the
	// winner never repeats in Secondary.
	in := Analyze("learn to fix small engines")
	for _, s := range in.Secondary {
		if s == in.Primary {
			t.Errorf("Secondary contains the primary intent %s", s)
		}
	}
	if len(in.Secondary) == 0 {
		t.Error("expected at least one secondary intent")
	}
}

func TestAnalyze_Stage(t *testing.T) {
	tests := []struct {
		query string
		want  Stage
	}{
		{"beginner piano lessons", Beginner},
		{"where to start with watercolors", Beginner},
		{"advanced woodworking joints", Advanced},
		{"get better at chess", Intermediate},
		{"japanese cinema", Exploring},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := Analyze(tt.query).Stage; got != tt.want {
				t.Errorf("Stage = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBoost_KindMatch(t *testing.T) {
	in := Intent{Primary: Enjoy, Stage: Exploring}

	game := mustItem(t, "g", catalog.KindGame, "")
	equipment := mustItem(t, "e", catalog.KindEquipment, "")

	if got := Boost(game, in); got != 5 {
		t.Errorf("game boost = %d, want 5", got)
	}
	if got := Boost(equipment, in); got != 0 {
		t.Errorf("equipment boost = %d, want 0", got)
	}
}

func TestBoost_DescriptionKeywords(t *testing.T) {
	in := Intent{Primary: Learn, Stage: Exploring}
	it := mustItem(t, "b", catalog.KindBook, "A beginner tutorial with instructional videos")

	// Kind bonus 5, plus instructional 10, beginner 8, tutorial 12.
	if got := Boost(it, in); got != 35 {
		t.Errorf("boost = %d, want 35", got)
	}
}

func TestBoost_StageMatch(t *testing.T) {
	beginner := Intent{Primary: Learn, Stage: Beginner}
	advanced := Intent{Primary: Learn, Stage: Advanced}

	it := mustItem(t, "b", catalog.KindBook, "an introduction for newcomers")

	// Kind 5, keyword none, stage "introduction" 8.
	if got := Boost(it, beginner); got != 13 {
		t.Errorf("beginner boost = %d, want 13", got)
	}
	// Advanced stage finds no matching cue.
	if got := Boost(it, advanced); got != 5 {
		t.Errorf("advanced boost = %d, want 5", got)
	}
}

func TestIsMaterialTypeQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"what can I borrow besides books?", true},
		{"What types of materials do you have?", true},
		{"what else is available to borrow", true},
		{"books about borrowing money", false},
		{"mystery novels", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := IsMaterialTypeQuery(tt.query); got != tt.want {
				t.Errorf("IsMaterialTypeQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
