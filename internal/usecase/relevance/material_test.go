package relevance

import (
	"testing"

	"github.com/hearthlib/curator/internal/domain/catalog"
)

func TestMaterialBoost_KindMatch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		kind  catalog.Kind
		want  int
	}{
		{"arduino equipment", "learn arduino", catalog.KindEquipment, 15},
		{"arduino thing", "arduino projects", catalog.KindThing, 15},
		{"iot inside a sentence", "getting started with iot sensors", catalog.KindEquipment, 15},
		{"movie media", "a movie for tonight", catalog.KindMedia, 10},
		{"watch media", "something to watch", catalog.KindMedia, 10},
		{"game kind", "a game for the family", catalog.KindGame, 12},
		{"repair equipment", "repair my bike", catalog.KindEquipment, 10},
		{"broken thing", "my lamp is broken", catalog.KindThing, 10},
		{"learn media", "learn to cook", catalog.KindMedia, 5},
		{"learn equipment", "learn to cook", catalog.KindEquipment, 3},
		{"how to thing", "how to paint", catalog.KindThing, 3},
		{"learn book", "learn to cook", catalog.KindBook, 0},
		{"no phrase", "victorian novels", catalog.KindMedia, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := materialBoost(tt.query, tt.kind); got != tt.want {
				t.Errorf("materialBoost(%q, %s) = %d, want %d", tt.query, tt.kind, got, tt.want)
			}
		})
	}
}

func TestMaterialBoost_FirstGroupWins(t *testing.T) {
	// "learn arduino" hits the electronics group first. A media item gets
	// nothing from it, and the later learning group must not apply either.
	if got := materialBoost("learn arduino", catalog.KindMedia); got != 0 {
		t.Errorf("materialBoost = %d, want 0 (no fall-through to later groups)", got)
	}

	// Same precedence for games: "fix my game console" hits the game group
	// before the repair group.
	if got := materialBoost("play a fix-it game", catalog.KindGame); got != 12 {
		t.Errorf("materialBoost = %d, want 12", got)
	}
	if got := materialBoost("play a fix-it game", catalog.KindEquipment); got != 0 {
		t.Errorf("materialBoost = %d, want 0 for equipment once the game group matched", got)
	}
}
