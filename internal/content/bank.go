package content

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
)

// item is one authored card template in the bank. Issued ScrollCards are
// stamped copies of an item.
type item struct {
	ConceptID  string   `json:"concept_id"`
	Difficulty float64  `json:"difficulty"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options,omitempty"`
	Answer     string   `json:"answer"`
	ItemType   ItemType `json:"item_type"`
}

type bankDocument struct {
	Cards []item `json:"cards"`
}

// Bank serves cards from a static authored set.
type Bank struct {
	byConcept map[string][]item
	now       func() time.Time
}

// NewBank builds a bank from authored items.
func NewBank(items []item) *Bank {
	b := &Bank{byConcept: make(map[string][]item), now: time.Now}
	for _, it := range items {
		b.byConcept[it.ConceptID] = append(b.byConcept[it.ConceptID], it)
	}
	return b
}

// LoadBank reads and validates a card bank JSON file.
func LoadBank(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card bank: %w", err)
	}
	if err := validateBankDocument(raw); err != nil {
		return nil, fmt.Errorf("card bank %s: %w", path, err)
	}
	var doc bankDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode card bank: %w", err)
	}
	for _, it := range doc.Cards {
		if it.ItemType == ItemMultipleChoice && len(it.Options) < 2 {
			return nil, fmt.Errorf("card bank %s: multiple choice card %q needs at least 2 options", path, it.Prompt)
		}
	}
	return NewBank(doc.Cards), nil
}

// Concepts returns the concept IDs the bank has cards for.
func (b *Bank) Concepts() []string {
	out := make([]string, 0, len(b.byConcept))
	for id := range b.byConcept {
		out = append(out, id)
	}
	return out
}

// FetchCard issues the card closest to the requested difficulty within the
// tolerance. Each issue stamps a fresh ID and timestamp: an issued card is
// consumed exactly once.
func (b *Bank) FetchCard(_ context.Context, req Request) (*ScrollCard, error) {
	candidates := b.byConcept[req.ConceptID]
	bestIdx := -1
	bestDist := math.Inf(1)
	for i, it := range candidates {
		dist := math.Abs(it.Difficulty - req.Difficulty)
		if dist <= req.Tolerance && dist < bestDist {
			bestIdx = i
			bestDist = dist
		}
	}
	if bestIdx < 0 {
		return nil, &ErrNotFound{ConceptID: req.ConceptID, Difficulty: req.Difficulty}
	}

	it := candidates[bestIdx]
	card := &ScrollCard{
		ID:          uuid.New().String(),
		ConceptID:   it.ConceptID,
		Difficulty:  it.Difficulty,
		Prompt:      it.Prompt,
		Answer:      it.Answer,
		ItemType:    it.ItemType,
		GeneratedAt: b.now(),
	}
	if len(it.Options) > 0 {
		card.Options = append([]string(nil), it.Options...)
	}
	return card, nil
}
