package concepts

import "testing"

func TestNewCatalog_RejectsBadEdges(t *testing.T) {
	_, err := NewCatalog([]Concept{{ID: "a", Prerequisites: []string{"missing"}}})
	if err == nil {
		t.Fatal("want error for unknown prerequisite")
	}
	_, err = NewCatalog([]Concept{{ID: "a"}, {ID: "a"}})
	if err == nil {
		t.Fatal("want error for duplicate ID")
	}
}

func TestEligible_GatesOnPrerequisites(t *testing.T) {
	cat, err := NewCatalog([]Concept{
		{ID: "base"},
		{ID: "mid", Prerequisites: []string{"base"}},
		{ID: "top", Prerequisites: []string{"mid", "base"}},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	got := cat.Eligible(nil)
	if len(got) != 1 || got[0] != "base" {
		t.Errorf("no mastery: eligible = %v, want [base]", got)
	}

	got = cat.Eligible(map[string]bool{"base": true})
	if len(got) != 2 || got[0] != "base" || got[1] != "mid" {
		t.Errorf("base mastered: eligible = %v, want [base mid]", got)
	}

	got = cat.Eligible(map[string]bool{"base": true, "mid": true})
	if len(got) != 3 {
		t.Errorf("all prereqs mastered: eligible = %v, want 3 concepts", got)
	}
}

func TestDefault_CatalogIsWellFormed(t *testing.T) {
	cat := Default()
	if len(cat.All()) == 0 {
		t.Fatal("default catalog is empty")
	}
	// The entry concept must be reachable with zero mastery.
	if got := cat.Eligible(nil); len(got) == 0 {
		t.Error("default catalog has no entry concept")
	}
}
