package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSequenceIsGloballyMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", ConceptID: "c1", CardID: "card-1",
		Prompt: "p", ExpectedAnswer: "a", GivenAnswer: "a",
		Correct: true, ItemType: "exact",
	}); err != nil {
		t.Fatalf("append answer event: %v", err)
	}

	cur, err := s.seq.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != 2 {
		t.Errorf("sequence after two events = %d, want 2", cur)
	}
}

func TestConceptAccuracy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	acc, n, err := repo.ConceptAccuracy(ctx, "c1")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 || n != 0 {
		t.Errorf("empty concept: (%v,%d), want (0,0)", acc, n)
	}

	for i, correct := range []bool{true, true, false, true} {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", ConceptID: "c1", CardID: "card",
			Prompt: "p", ExpectedAnswer: "a", GivenAnswer: "a",
			Correct: correct, ItemType: "exact",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	acc, n, err = repo.ConceptAccuracy(ctx, "c1")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if n != 4 || acc != 0.75 {
		t.Errorf("accuracy = (%v,%d), want (0.75,4)", acc, n)
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SnapshotRepo()

	latest, err := repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	for i := 0; i < 3; i++ {
		if err := repo.Save(ctx, "s1", map[string]any{"turn": float64(i)}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	latest, err = repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.Data["turn"] != float64(2) {
		t.Errorf("latest = %+v, want turn 2", latest)
	}

	if err := repo.Prune(ctx, "s1", 1); err != nil {
		t.Fatalf("prune: %v", err)
	}
	latest, err = repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if latest == nil || latest.Data["turn"] != float64(2) {
		t.Errorf("latest after prune = %+v, want turn 2 retained", latest)
	}
}

func TestTotalXP(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	total, err := repo.TotalXP(ctx)
	if err != nil {
		t.Fatalf("total (empty): %v", err)
	}
	if total != 0 {
		t.Errorf("empty total = %d, want 0", total)
	}

	for _, xp := range []int{10, 15, 20} {
		err := repo.AppendRewardEvent(ctx, RewardEventData{
			SessionID: "s1", ConceptID: "c1", XP: xp, Streak: 1, Multiplier: 1,
		})
		if err != nil {
			t.Fatalf("append reward: %v", err)
		}
	}

	total, err = repo.TotalXP(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 45 {
		t.Errorf("total = %d, want 45", total)
	}
}
