package feed

import (
	"fmt"
	"testing"

	"github.com/abhisek/skillscroll/internal/content"
)

func queueCard(conceptID string) *content.ScrollCard {
	return &content.ScrollCard{
		ID:        "card-" + conceptID,
		ConceptID: conceptID,
		Prompt:    "q",
		Answer:    "a",
		ItemType:  content.ItemExact,
	}
}

func TestEnqueueRemediationEvictsOldestAtCapacity(t *testing.T) {
	s := NewFeedState("s", testTime())
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("c%d", i)
		s.EnqueueRemediation(QueueEntry{ConceptID: id, Card: queueCard(id), CooldownUntil: i}, 3)
	}
	if len(s.Queue) != 3 {
		t.Fatalf("queue length = %d, want 3", len(s.Queue))
	}
	want := []string{"c2", "c3", "c4"}
	for i, entry := range s.Queue {
		if entry.ConceptID != want[i] {
			t.Errorf("queue[%d] = %s, want %s", i, entry.ConceptID, want[i])
		}
	}
}

func TestEnqueueRemediationDedupesByConcept(t *testing.T) {
	s := NewFeedState("s", testTime())
	s.EnqueueRemediation(QueueEntry{ConceptID: "c1", Card: queueCard("c1"), CooldownUntil: 4}, 10)
	s.EnqueueRemediation(QueueEntry{ConceptID: "c2", Card: queueCard("c2"), CooldownUntil: 5}, 10)
	s.EnqueueRemediation(QueueEntry{ConceptID: "c1", Card: queueCard("c1"), CooldownUntil: 9}, 10)

	if len(s.Queue) != 2 {
		t.Fatalf("queue length = %d, want 2", len(s.Queue))
	}
	if s.Queue[0].ConceptID != "c1" || s.Queue[0].EnqueueCount != 2 {
		t.Errorf("entry = %+v, want c1 with enqueue count 2", s.Queue[0])
	}
	if s.Queue[0].CooldownUntil != 9 {
		t.Errorf("cooldown = %d, want refreshed to 9", s.Queue[0].CooldownUntil)
	}
}

func TestNextRemediationHonorsCooldown(t *testing.T) {
	s := NewFeedState("s", testTime())
	s.EnqueueRemediation(QueueEntry{ConceptID: "c1", Card: queueCard("c1"), CooldownUntil: 4}, 10)
	s.EnqueueRemediation(QueueEntry{ConceptID: "c2", Card: queueCard("c2"), CooldownUntil: 2}, 10)

	if _, _, ok := s.NextRemediation(1); ok {
		t.Fatal("entry surfaced before any cooldown elapsed")
	}
	entry, idx, ok := s.NextRemediation(3)
	if !ok || entry.ConceptID != "c2" {
		t.Fatalf("NextRemediation(3) = %+v ok=%v, want c2", entry, ok)
	}
	s.removeQueueAt(idx)

	entry, _, ok = s.NextRemediation(4)
	if !ok || entry.ConceptID != "c1" {
		t.Fatalf("NextRemediation(4) = %+v ok=%v, want c1", entry, ok)
	}
}
