package query

import (
	"reflect"
	"testing"
)

func TestNew_Normalizes(t *testing.T) {
	q := New("  Python   Programming ")

	if q.Raw() != "  Python   Programming " {
		t.Errorf("raw = %q, want untouched input", q.Raw())
	}
	if q.Normalized() != "  python   programming " {
		t.Errorf("normalized = %q", q.Normalized())
	}
	if want := []string{"python", "programming"}; !reflect.DeepEqual(q.Terms(), want) {
		t.Errorf("terms = %v, want %v", q.Terms(), want)
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		raw   string
		empty bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"a", false},
		{"  x  ", false},
	}
	for _, tt := range tests {
		if got := New(tt.raw).IsEmpty(); got != tt.empty {
			t.Errorf("IsEmpty(%q) = %v, want %v", tt.raw, got, tt.empty)
		}
	}
}

func TestTerms_Package(t *testing.T) {
	if got := Terms("Fix MY Bike"); !reflect.DeepEqual(got, []string{"fix", "my", "bike"}) {
		t.Errorf("Terms = %v", got)
	}
	if got := Terms("   "); len(got) != 0 {
		t.Errorf("Terms of blank = %v, want empty", got)
	}
}
