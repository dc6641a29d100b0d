// Package content supplies scroll cards: the units of content the feed
// offers the learner. The Provider interface is the seam to whatever
// authors and stores content; the bundled Bank serves cards from a static,
// schema-validated set.
package content

import "time"

// ItemType selects the grading strategy for a card. The set is closed:
// new item types require a new grading rule in the feed engine.
type ItemType string

const (
	// ItemExact grades by normalized exact text match.
	ItemExact ItemType = "exact"
	// ItemNumeric grades by numeric equivalence ("3.50" matches "3.5").
	ItemNumeric ItemType = "numeric"
	// ItemMultipleChoice grades by option index (1-based) or option text.
	ItemMultipleChoice ItemType = "multiple_choice"
)

// ScrollCard is one unit of content offered to the learner.
// Immutable once issued; it is consumed by exactly one grading event or
// expires unanswered.
type ScrollCard struct {
	// ID is unique per issued card, not per underlying item.
	ID         string    `json:"id"`
	ConceptID  string    `json:"concept_id"`
	Difficulty float64   `json:"difficulty"` // in [0,1]
	Prompt     string    `json:"prompt"`
	Options    []string  `json:"options,omitempty"` // multiple choice only
	Answer     string    `json:"answer"`
	ItemType   ItemType  `json:"item_type"`
	GeneratedAt time.Time `json:"generated_at"`
}
