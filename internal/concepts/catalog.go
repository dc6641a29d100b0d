package concepts

import (
	"fmt"
	"sort"
)

// Catalog is an immutable set of concepts keyed by ID.
type Catalog struct {
	byID  map[string]Concept
	order []string
}

// NewCatalog builds a catalog and validates prerequisite references.
func NewCatalog(list []Concept) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Concept, len(list))}
	for _, concept := range list {
		if concept.ID == "" {
			return nil, fmt.Errorf("concept with empty ID")
		}
		if _, dup := c.byID[concept.ID]; dup {
			return nil, fmt.Errorf("duplicate concept ID %q", concept.ID)
		}
		c.byID[concept.ID] = concept
		c.order = append(c.order, concept.ID)
	}
	for _, concept := range list {
		for _, pre := range concept.Prerequisites {
			if _, ok := c.byID[pre]; !ok {
				return nil, fmt.Errorf("concept %q: unknown prerequisite %q", concept.ID, pre)
			}
		}
	}
	sort.Strings(c.order)
	return c, nil
}

// Get returns the concept for an ID.
func (c *Catalog) Get(id string) (Concept, error) {
	concept, ok := c.byID[id]
	if !ok {
		return Concept{}, fmt.Errorf("unknown concept %q", id)
	}
	return concept, nil
}

// All returns every concept ID in sorted order.
func (c *Catalog) All() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Eligible returns the concepts whose prerequisites are all in the
// mastered set, sorted by ID. Concepts already mastered stay eligible:
// the sequencer decides whether more practice is worth it.
func (c *Catalog) Eligible(mastered map[string]bool) []string {
	var out []string
	for _, id := range c.order {
		concept := c.byID[id]
		ok := true
		for _, pre := range concept.Prerequisites {
			if !mastered[pre] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}
	return out
}

// Default returns the built-in catalog matching the bundled card bank.
func Default() *Catalog {
	c, err := NewCatalog(defaultConcepts())
	if err != nil {
		panic(err) // seed data is compiled in; a bad edge is a programming error
	}
	return c
}

func defaultConcepts() []Concept {
	return []Concept{
		{ID: "place-value", Name: "Place Value", Area: AreaNumberSense},
		{ID: "rounding", Name: "Rounding", Area: AreaNumberSense, Prerequisites: []string{"place-value"}},
		{ID: "addition", Name: "Multi-digit Addition", Area: AreaOperations, Prerequisites: []string{"place-value"}},
		{ID: "subtraction", Name: "Multi-digit Subtraction", Area: AreaOperations, Prerequisites: []string{"place-value"}},
		{ID: "multiplication", Name: "Multiplication", Area: AreaOperations, Prerequisites: []string{"addition"}},
		{ID: "division", Name: "Division", Area: AreaOperations, Prerequisites: []string{"multiplication"}},
		{ID: "fraction-basics", Name: "Fraction Basics", Area: AreaFractions, Prerequisites: []string{"division"}},
		{ID: "fraction-compare", Name: "Comparing Fractions", Area: AreaFractions, Prerequisites: []string{"fraction-basics"}},
	}
}
