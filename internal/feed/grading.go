package feed

import (
	"strconv"
	"strings"

	"github.com/abhisek/skillscroll/internal/content"
)

// GradeFunc decides whether a learner answer satisfies a card. Strategies
// are pure and total: any input grades to correct or incorrect, never an
// error.
type GradeFunc func(card *content.ScrollCard, answer string) bool

// DefaultGraders returns the grading strategy for each item type.
func DefaultGraders() map[content.ItemType]GradeFunc {
	return map[content.ItemType]GradeFunc{
		content.ItemExact:          gradeExact,
		content.ItemNumeric:        gradeNumeric,
		content.ItemMultipleChoice: gradeMultipleChoice,
	}
}

func gradeExact(card *content.ScrollCard, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(card.Answer))
}

// gradeNumeric compares parsed values so "7.0" matches "7". Unparseable
// input falls back to exact comparison.
func gradeNumeric(card *content.ScrollCard, answer string) bool {
	got, errGot := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	want, errWant := strconv.ParseFloat(strings.TrimSpace(card.Answer), 64)
	if errGot != nil || errWant != nil {
		return gradeExact(card, answer)
	}
	return got == want
}

// gradeMultipleChoice accepts either the 1-based option number or the
// option text itself.
func gradeMultipleChoice(card *content.ScrollCard, answer string) bool {
	trimmed := strings.TrimSpace(answer)
	if idx, err := strconv.Atoi(trimmed); err == nil {
		if idx >= 1 && idx <= len(card.Options) {
			return strings.EqualFold(card.Options[idx-1], card.Answer)
		}
		return false
	}
	return strings.EqualFold(trimmed, strings.TrimSpace(card.Answer))
}
