package feed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/skillscroll/internal/concepts"
	"github.com/abhisek/skillscroll/internal/config"
	"github.com/abhisek/skillscroll/internal/content"
	"github.com/abhisek/skillscroll/internal/store"
)

// fakeProvider serves one template card per concept. Every issue gets a
// fresh ID at the requested difficulty.
type fakeProvider struct {
	answers   map[string]string // concept -> expected answer
	failTight bool              // reject requests below the relaxed tolerance
	issued    int
	calls     []content.Request
}

func (p *fakeProvider) FetchCard(_ context.Context, req content.Request) (*content.ScrollCard, error) {
	p.calls = append(p.calls, req)
	answer, ok := p.answers[req.ConceptID]
	if !ok {
		return nil, &content.ErrNotFound{ConceptID: req.ConceptID, Difficulty: req.Difficulty}
	}
	if p.failTight && req.Tolerance < 1.0 {
		return nil, &content.ErrNotFound{ConceptID: req.ConceptID, Difficulty: req.Difficulty}
	}
	p.issued++
	return &content.ScrollCard{
		ID:          fmt.Sprintf("card-%d", p.issued),
		ConceptID:   req.ConceptID,
		Difficulty:  req.Difficulty,
		Prompt:      "? ",
		Answer:      answer,
		ItemType:    content.ItemNumeric,
		GeneratedAt: testTime(),
	}, nil
}

// memSnapshots is an in-memory store.SnapshotRepo.
type memSnapshots struct {
	entries  []store.SnapshotEntry
	failSave bool
}

func (m *memSnapshots) Save(_ context.Context, sessionID string, data map[string]any) error {
	if m.failSave {
		return errors.New("save failed")
	}
	m.entries = append(m.entries, store.SnapshotEntry{
		ID: len(m.entries) + 1, SessionID: sessionID, Data: data,
	})
	return nil
}

func (m *memSnapshots) Latest(_ context.Context, sessionID string) (*store.SnapshotEntry, error) {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].SessionID == sessionID {
			entry := m.entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (m *memSnapshots) LatestAny(_ context.Context) (*store.SnapshotEntry, error) {
	if len(m.entries) == 0 {
		return nil, nil
	}
	entry := m.entries[len(m.entries)-1]
	return &entry, nil
}

func (m *memSnapshots) Prune(_ context.Context, _ string, _ int) error { return nil }

// memEvents is an in-memory store.EventRepo.
type memEvents struct {
	sessions []store.SessionEventData
	answers  []store.AnswerEventData
	mastery  []store.MasteryEventData
	rewards  []store.RewardEventData
}

func (m *memEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	m.sessions = append(m.sessions, d)
	return nil
}

func (m *memEvents) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	m.answers = append(m.answers, d)
	return nil
}

func (m *memEvents) AppendMasteryEvent(_ context.Context, d store.MasteryEventData) error {
	m.mastery = append(m.mastery, d)
	return nil
}

func (m *memEvents) AppendRewardEvent(_ context.Context, d store.RewardEventData) error {
	m.rewards = append(m.rewards, d)
	return nil
}

func (m *memEvents) ConceptAccuracy(_ context.Context, conceptID string) (float64, int, error) {
	correct, total := 0, 0
	for _, a := range m.answers {
		if a.ConceptID != conceptID {
			continue
		}
		total++
		if a.Correct {
			correct++
		}
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(correct) / float64(total), total, nil
}

func (m *memEvents) LatestAnswerTime(_ context.Context, _ string) (t time.Time, err error) {
	return t, nil
}

func (m *memEvents) TotalXP(_ context.Context) (int, error) {
	sum := 0
	for _, r := range m.rewards {
		sum += r.XP
	}
	return sum, nil
}

func testCatalog(t *testing.T) *concepts.Catalog {
	t.Helper()
	cat, err := concepts.NewCatalog([]concepts.Concept{
		{ID: "addition", Name: "Addition", Area: "arithmetic"},
		{ID: "subtraction", Name: "Subtraction", Area: "arithmetic"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func testEngine(t *testing.T, cfg config.Config, provider content.Provider, snaps *memSnapshots, events *memEvents) *Engine {
	t.Helper()
	var sr store.SnapshotRepo
	var er store.EventRepo
	if snaps != nil {
		sr = snaps
	}
	if events != nil {
		er = events
	}
	eng, err := NewEngine(cfg, testCatalog(t), provider, sr, er, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestStartSessionIssuesCardAndPersists(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	snaps := &memSnapshots{}
	events := &memEvents{}
	eng := testEngine(t, config.Default(), provider, snaps, events)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if card == nil || card.ID == "" {
		t.Fatal("no card issued")
	}
	if len(snaps.entries) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snaps.entries))
	}
	if len(events.sessions) != 1 || events.sessions[0].Action != "start" {
		t.Fatalf("session events = %+v, want one start", events.sessions)
	}
}

func TestGradeAndAdvanceCorrectAnswer(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	events := &memEvents{}
	eng := testEngine(t, config.Default(), provider, &memSnapshots{}, events)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	res, err := eng.GradeAndAdvance(ctx, "s1", Response{
		CardID: card.ID, Answer: card.Answer, StatedConfidence: 70, LatencyMs: 2000,
	})
	if err != nil {
		t.Fatalf("GradeAndAdvance: %v", err)
	}
	if !res.Correct {
		t.Error("correct answer graded incorrect")
	}
	if res.XPAwarded <= 0 {
		t.Errorf("XPAwarded = %d, want positive", res.XPAwarded)
	}
	if res.Streak != 1 || res.Turn != 1 {
		t.Errorf("streak=%d turn=%d, want 1 and 1", res.Streak, res.Turn)
	}
	if res.MasteryDelta <= 0 {
		t.Errorf("mastery delta = %f, want positive after correct answer", res.MasteryDelta)
	}
	if res.NextCard == nil || res.NextCard.ID == card.ID {
		t.Error("no fresh next card issued")
	}
	if len(events.answers) != 1 || !events.answers[0].Correct {
		t.Errorf("answer events = %+v", events.answers)
	}
	if len(events.rewards) != 1 {
		t.Errorf("reward events = %d, want 1", len(events.rewards))
	}
}

func TestGradeAndAdvanceStaleResponse(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	eng := testEngine(t, config.Default(), provider, nil, nil)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	_, err = eng.GradeAndAdvance(ctx, "s1", Response{CardID: "not-the-card", Answer: "42"})
	var stale *ErrStaleResponse
	if !errors.As(err, &stale) {
		t.Fatalf("error = %v, want *ErrStaleResponse", err)
	}
	if stale.Current == nil || stale.Current.ID != card.ID {
		t.Errorf("stale.Current = %+v, want outstanding card %s", stale.Current, card.ID)
	}

	// The outstanding card is still answerable exactly once.
	if _, err := eng.GradeAndAdvance(ctx, "s1", Response{CardID: card.ID, Answer: card.Answer}); err != nil {
		t.Fatalf("grading outstanding card after stale submission: %v", err)
	}
	_, err = eng.GradeAndAdvance(ctx, "s1", Response{CardID: card.ID, Answer: card.Answer})
	if !errors.As(err, &stale) {
		t.Fatalf("second grade of same card: error = %v, want *ErrStaleResponse", err)
	}
}

// A missed card must stay in cooldown for the configured number of turns
// and then resurface.
func TestRemediationCooldownAndReintroduction(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Feed.CooldownTurns = 3
	cfg.Feed.ReintroduceProbability = 1.0 // deterministic once cooled down
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	eng := testEngine(t, cfg, provider, nil, nil)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	missed := card.ConceptID

	res, err := eng.GradeAndAdvance(ctx, "s1", Response{CardID: card.ID, Answer: "bogus"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct {
		t.Fatal("bogus answer graded correct")
	}
	if res.XPAwarded != 0 {
		t.Errorf("XP for incorrect answer = %d, want 0", res.XPAwarded)
	}

	// Turns 2 and 3 grade while the entry cools down; the reissue may only
	// appear as the card issued after turn 4.
	for turn := 2; turn <= 4; turn++ {
		if res.Remediation {
			t.Fatalf("remediation surfaced before cooldown elapsed, at turn %d", res.Turn+1)
		}
		res, err = eng.GradeAndAdvance(ctx, "s1", Response{CardID: res.NextCard.ID, Answer: res.NextCard.Answer})
		if err != nil {
			t.Fatal(err)
		}
	}
	if !res.Remediation {
		t.Fatal("cooled-down entry never resurfaced")
	}
	if res.NextCard.ConceptID != missed {
		t.Errorf("reissued concept = %s, want %s", res.NextCard.ConceptID, missed)
	}
	if res.NextCard.ID == card.ID {
		t.Error("reissued card kept the original issue ID")
	}
}

func TestForcedReintroductionWhenQueueNearlyFull(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Feed.QueueCapacity = 2
	cfg.Feed.CooldownTurns = 1
	cfg.Feed.ReintroduceProbability = 0 // only the forced path may trigger
	cfg.Feed.ForceReintroduceAt = 0.5
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	eng := testEngine(t, cfg, provider, nil, nil)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	res, err := eng.GradeAndAdvance(ctx, "s1", Response{CardID: card.ID, Answer: "bogus"})
	if err != nil {
		t.Fatal(err)
	}
	// One queued entry reaches the 50% fill threshold of capacity 2; after
	// the one-turn cooldown the reintroduction is forced.
	res, err = eng.GradeAndAdvance(ctx, "s1", Response{CardID: res.NextCard.ID, Answer: res.NextCard.Answer})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Remediation {
		t.Fatal("nearly-full queue did not force reintroduction")
	}
}

func TestContentUnavailableLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	snaps := &memSnapshots{}
	eng := testEngine(t, config.Default(), provider, snaps, nil)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	persisted := len(snaps.entries)

	provider.answers = map[string]string{} // content dries up
	_, err = eng.GradeAndAdvance(ctx, "s1", Response{CardID: card.ID, Answer: card.Answer})
	var unavailable *ErrContentUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want *ErrContentUnavailable", err)
	}
	if len(snaps.entries) != persisted {
		t.Error("failed transition persisted a snapshot")
	}

	// Content returns; the same card is still outstanding and gradable.
	provider.answers = map[string]string{"addition": "42", "subtraction": "7"}
	res, err := eng.GradeAndAdvance(ctx, "s1", Response{CardID: card.ID, Answer: card.Answer})
	if err != nil {
		t.Fatalf("grading after recovery: %v", err)
	}
	if res.Turn != 1 {
		t.Errorf("turn = %d, want 1: the failed transition must not have counted", res.Turn)
	}
}

func TestRelaxedRetryWidensTolerance(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{
		answers:   map[string]string{"addition": "42", "subtraction": "7"},
		failTight: true,
	}
	eng := testEngine(t, config.Default(), provider, nil, nil)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatalf("StartSession with tight misses: %v", err)
	}
	if card == nil {
		t.Fatal("no card from relaxed retry")
	}
	if len(provider.calls) != 2 {
		t.Fatalf("fetch calls = %d, want tight then relaxed", len(provider.calls))
	}
	if provider.calls[0].Tolerance >= provider.calls[1].Tolerance {
		t.Errorf("tolerances = %.2f then %.2f, want widening", provider.calls[0].Tolerance, provider.calls[1].Tolerance)
	}
}

func TestPersistFailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	snaps := &memSnapshots{}
	eng := testEngine(t, config.Default(), provider, snaps, nil)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}

	snaps.failSave = true
	if _, err := eng.GradeAndAdvance(ctx, "s1", Response{CardID: card.ID, Answer: card.Answer}); err == nil {
		t.Fatal("expected persist failure to fail the transition")
	}

	snaps.failSave = false
	res, err := eng.GradeAndAdvance(ctx, "s1", Response{CardID: card.ID, Answer: card.Answer})
	if err != nil {
		t.Fatalf("retry after persist recovery: %v", err)
	}
	if res.Turn != 1 {
		t.Errorf("turn = %d, want 1", res.Turn)
	}
}

func TestStartSessionResumesPersistedState(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	snaps := &memSnapshots{}
	eng := testEngine(t, config.Default(), provider, snaps, nil)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	res, err := eng.GradeAndAdvance(ctx, "s1", Response{CardID: card.ID, Answer: card.Answer})
	if err != nil {
		t.Fatal(err)
	}

	// A new engine over the same store resumes mid-session.
	eng2 := testEngine(t, config.Default(), provider, snaps, nil)
	resumed, err := eng2.StartSession(ctx, "s1")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.ID != res.NextCard.ID {
		t.Errorf("resumed card = %s, want outstanding %s", resumed.ID, res.NextCard.ID)
	}
}

func TestStartSessionRecoversFromCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	snaps := &memSnapshots{}
	events := &memEvents{}
	if err := snaps.Save(ctx, "s1", map[string]any{"version": 99, "junk": true}); err != nil {
		t.Fatal(err)
	}
	eng := testEngine(t, config.Default(), provider, snaps, events)

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatalf("StartSession over corrupt snapshot: %v", err)
	}
	if card == nil {
		t.Fatal("no card after recovery")
	}
	found := false
	for _, ev := range events.sessions {
		if ev.Action == "corrupt-state-recovery" {
			found = true
		}
	}
	if !found {
		t.Error("recovery not recorded in the event log")
	}
}

func TestEndSessionSummaryAndShutdown(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{answers: map[string]string{"addition": "42", "subtraction": "7"}}
	eng := testEngine(t, config.Default(), provider, &memSnapshots{}, &memEvents{})

	card, err := eng.StartSession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	var res *TurnResult
	answers := []bool{true, true, false, true}
	current := card
	for _, right := range answers {
		answer := current.Answer
		if !right {
			answer = "bogus"
		}
		res, err = eng.GradeAndAdvance(ctx, "s1", Response{
			CardID: current.ID, Answer: answer, StatedConfidence: 75, LatencyMs: 1500,
		})
		if err != nil {
			t.Fatal(err)
		}
		current = res.NextCard
	}

	summary, err := eng.EndSession(ctx, "s1")
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if summary.Turns != 4 || summary.CorrectAnswers != 3 {
		t.Errorf("turns=%d correct=%d, want 4 and 3", summary.Turns, summary.CorrectAnswers)
	}
	if summary.XP != res.TotalXP {
		t.Errorf("summary XP = %d, want %d", summary.XP, res.TotalXP)
	}
	if summary.Calibration.Samples != 4 {
		t.Errorf("calibration samples = %d, want 4", summary.Calibration.Samples)
	}
	if len(summary.Mastery) == 0 {
		t.Error("summary has no mastery probabilities")
	}

	_, err = eng.GradeAndAdvance(ctx, "s1", Response{CardID: current.ID, Answer: "1"})
	if err == nil {
		t.Error("transition accepted after session end")
	}
}
