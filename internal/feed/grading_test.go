package feed

import (
	"testing"

	"github.com/abhisek/skillscroll/internal/content"
)

func TestGradeExact(t *testing.T) {
	card := &content.ScrollCard{Answer: "3/4", ItemType: content.ItemExact}
	tests := []struct {
		answer string
		want   bool
	}{
		{"3/4", true},
		{"  3/4  ", true},
		{"3 / 4", false},
		{"0.75", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := gradeExact(card, tc.answer); got != tc.want {
			t.Errorf("gradeExact(%q) = %v, want %v", tc.answer, got, tc.want)
		}
	}
}

func TestGradeNumeric(t *testing.T) {
	card := &content.ScrollCard{Answer: "42", ItemType: content.ItemNumeric}
	tests := []struct {
		answer string
		want   bool
	}{
		{"42", true},
		{"42.0", true},
		{" 42 ", true},
		{"41.999", false},
		{"forty-two", false},
	}
	for _, tc := range tests {
		if got := gradeNumeric(card, tc.answer); got != tc.want {
			t.Errorf("gradeNumeric(%q) = %v, want %v", tc.answer, got, tc.want)
		}
	}
}

func TestGradeMultipleChoice(t *testing.T) {
	card := &content.ScrollCard{
		Options:  []string{"40", "42", "44"},
		Answer:   "42",
		ItemType: content.ItemMultipleChoice,
	}
	tests := []struct {
		answer string
		want   bool
	}{
		{"2", true},  // 1-based option index
		{"42", true}, // option text
		{"1", false},
		{"4", false}, // out of range
		{"0", false},
		{"40", false},
	}
	for _, tc := range tests {
		if got := gradeMultipleChoice(card, tc.answer); got != tc.want {
			t.Errorf("gradeMultipleChoice(%q) = %v, want %v", tc.answer, got, tc.want)
		}
	}
}
