package feed

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/skillscroll/internal/bandit"
	"github.com/abhisek/skillscroll/internal/bkt"
	"github.com/abhisek/skillscroll/internal/calibration"
	"github.com/abhisek/skillscroll/internal/config"
	"github.com/abhisek/skillscroll/internal/content"
)

func populatedState(t *testing.T) *FeedState {
	t.Helper()
	now := testTime()
	s := NewFeedState("sess-1", now)
	s.Turn = 7
	s.CorrectCount = 5
	s.Streak = 2
	s.BestStreak = 4
	s.ConsecutiveWrong = 0
	s.XP = 135
	s.FastAnswers = 4
	s.SlowAnswers = 3
	s.TotalTimeMs = 41250
	s.RecentDeltas = []float64{0.1, -0.05, 0.2}

	params := config.Default().Mastery.Params()
	ms := bkt.NewState(params)
	ms.PMastered = 0.62
	ms.Attempts = 4
	s.Mastery["addition"] = ms
	s.Arms["addition"] = &bandit.Arm{Successes: 3, Failures: 1}
	s.History = []calibration.Record{
		{ConceptID: "addition", Correct: true, Confidence: 80, LatencyMs: 3200, Timestamp: now},
		{ConceptID: "addition", Correct: false, Confidence: 90, LatencyMs: 9100, Timestamp: now.Add(time.Minute)},
	}
	s.CurrentCard = &content.ScrollCard{
		ID: "card-9", ConceptID: "addition", Difficulty: 0.4,
		Prompt: "17 + 25 = ?", Answer: "42", ItemType: content.ItemNumeric,
		GeneratedAt: now,
	}
	s.EnqueueRemediation(QueueEntry{
		ConceptID: "subtraction", Card: queueCard("subtraction"), CooldownUntil: 9,
	}, 20)
	return s
}

func TestSnapshotRoundTripLossless(t *testing.T) {
	fullQueue := populatedState(t)
	for i := 0; i < 6; i++ {
		id := fmt.Sprintf("extra-%d", i)
		fullQueue.EnqueueRemediation(QueueEntry{ConceptID: id, Card: queueCard(id), CooldownUntil: i}, 4)
	}

	for _, tc := range []struct {
		name  string
		state *FeedState
	}{
		{"populated", populatedState(t)},
		{"fresh", NewFeedState("sess-2", testTime())},
		{"queue at capacity", fullQueue},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := tc.state.ToMap()
			if err != nil {
				t.Fatalf("ToMap: %v", err)
			}
			got, err := FromMap(doc)
			if err != nil {
				t.Fatalf("FromMap: %v", err)
			}
			if !reflect.DeepEqual(got, tc.state) {
				t.Errorf("round trip changed state:\n got  %+v\n want %+v", got, tc.state)
			}
		})
	}
}

func TestFromMapRejectsCorruptDocuments(t *testing.T) {
	valid, err := populatedState(t).ToMap()
	if err != nil {
		t.Fatal(err)
	}

	corrupt := func(mutate func(m map[string]any)) map[string]any {
		doc, err := populatedState(t).ToMap()
		if err != nil {
			t.Fatal(err)
		}
		mutate(doc)
		return doc
	}

	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"wrong version", corrupt(func(m map[string]any) { m["version"] = 99 })},
		{"empty session id", corrupt(func(m map[string]any) { m["session_id"] = "" })},
		{"unknown phase", corrupt(func(m map[string]any) { m["phase"] = "limbo" })},
		{"negative turn", corrupt(func(m map[string]any) { m["turn"] = -1 })},
		{"mastery out of range", corrupt(func(m map[string]any) {
			m["mastery"] = map[string]any{"addition": map[string]any{"p_mastered": 1.7}}
		})},
		{"queue entry without card", corrupt(func(m map[string]any) {
			m["queue"] = []any{map[string]any{"concept_id": "x", "card": nil}}
		})},
		{"non-object field", corrupt(func(m map[string]any) { m["arms"] = "garbage" })},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromMap(tc.doc)
			var corruptErr *ErrCorruptState
			if !errors.As(err, &corruptErr) {
				t.Errorf("FromMap error = %v, want *ErrCorruptState", err)
			}
		})
	}

	if _, err := FromMap(valid); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}
}
