package feed

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skillscroll/internal/bandit"
	"github.com/abhisek/skillscroll/internal/bkt"
	"github.com/abhisek/skillscroll/internal/calibration"
	"github.com/abhisek/skillscroll/internal/concepts"
	"github.com/abhisek/skillscroll/internal/config"
	"github.com/abhisek/skillscroll/internal/content"
	"github.com/abhisek/skillscroll/internal/store"
	"github.com/abhisek/skillscroll/internal/zpd"
)

// Difficulty tolerances for content fetches. The relaxed value accepts any
// card of the concept and is tried once before giving up.
const (
	fetchTolerance   = 0.25
	relaxedTolerance = 1.0
)

// snapshotsToKeep bounds per-session snapshot history in the store.
const snapshotsToKeep = 5

// Engine runs feed sessions. All mutation of a session's state happens
// under that session's lock, one transition at a time; concurrent calls
// for different sessions do not contend.
type Engine struct {
	cfg       config.Config
	catalog   *concepts.Catalog
	provider  content.Provider
	sequencer *bandit.Sequencer
	// rngMu guards rng and the sequencer's draws: sessions lock
	// independently but share the one random source.
	rngMu sync.Mutex
	rng   *rand.Rand

	graders map[content.ItemType]GradeFunc
	now     func() time.Time

	// snapshots and events may be nil for store-less runs (tests, dry runs).
	snapshots store.SnapshotRepo
	events    store.EventRepo

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu    sync.Mutex
	state *FeedState
}

// NewEngine wires the decision core together. The random source drives both
// the sequencer's sampling and the reintroduction coin flip, so a seeded
// source makes whole sessions replayable.
func NewEngine(cfg config.Config, catalog *concepts.Catalog, provider content.Provider, snapshots store.SnapshotRepo, events store.EventRepo, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("feed engine config: %w", err)
	}
	if catalog == nil {
		return nil, errors.New("feed engine: nil concept catalog")
	}
	if provider == nil {
		return nil, errors.New("feed engine: nil content provider")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		cfg:       cfg,
		catalog:   catalog,
		provider:  provider,
		sequencer: bandit.NewSequencer(rng),
		rng:       rng,
		graders:   DefaultGraders(),
		now:       time.Now,
		snapshots: snapshots,
		events:    events,
		sessions:  make(map[string]*session),
	}, nil
}

// RegisterGrader installs or replaces the grading strategy for an item type.
func (e *Engine) RegisterGrader(t content.ItemType, fn GradeFunc) {
	e.graders[t] = fn
}

func (e *Engine) session(id string) *session {
	e.mu.Lock()
	defer e.mu.Unlock()
	sess, ok := e.sessions[id]
	if !ok {
		sess = &session{}
		e.sessions[id] = sess
	}
	return sess
}

// StartSession begins or resumes a session and returns the outstanding
// card. An existing persisted snapshot is restored; a corrupt one is
// reported through the event log and replaced with a fresh session.
func (e *Engine) StartSession(ctx context.Context, sessionID string) (*content.ScrollCard, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	sess := e.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != nil && sess.state.CurrentCard != nil {
		return sess.state.CurrentCard, nil
	}

	st, resumed, err := e.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if resumed && st.CurrentCard != nil && st.Phase == PhaseAwaitingResponse {
		sess.state = st
		return st.CurrentCard, nil
	}

	card, remediation, err := e.selectNext(ctx, st)
	if err != nil {
		return nil, err
	}
	st.CurrentCard = card
	st.CurrentIsRemediation = remediation
	st.Phase = PhaseAwaitingResponse
	st.UpdatedAt = e.now().UTC()
	if err := e.persist(ctx, st); err != nil {
		return nil, err
	}
	sess.state = st
	if !resumed {
		e.appendSessionEvent(ctx, st, "start")
	}
	return card, nil
}

func (e *Engine) loadOrCreate(ctx context.Context, sessionID string) (*FeedState, bool, error) {
	if e.snapshots == nil {
		return NewFeedState(sessionID, e.now()), false, nil
	}
	entry, err := e.snapshots.Latest(ctx, sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("loading session %s: %w", sessionID, err)
	}
	if entry == nil {
		return NewFeedState(sessionID, e.now()), false, nil
	}
	st, err := FromMap(entry.Data)
	if err != nil {
		var corrupt *ErrCorruptState
		if !errors.As(err, &corrupt) {
			return nil, false, err
		}
		// Damaged snapshot: record the recovery and start clean rather
		// than operating on bad state.
		fmt.Fprintln(os.Stderr, "corrupt feed state for session", sessionID+";", "starting fresh:", err)
		if e.events != nil {
			_ = e.events.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID: sessionID,
				Action:    "corrupt-state-recovery",
			})
		}
		return NewFeedState(sessionID, e.now()), false, nil
	}
	return st, true, nil
}

// GradeAndAdvance runs the full per-turn transition: grade the response,
// update mastery and calibration evidence, shape the reward, maintain the
// remediation queue, feed the sequencer, and issue the next card. The
// transition is atomic: it mutates a clone and commits only after the new
// state is fully built and persisted, so any error leaves the session on
// its previous state with the same card outstanding.
func (e *Engine) GradeAndAdvance(ctx context.Context, sessionID string, resp Response) (*TurnResult, error) {
	sess := e.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	st := sess.state
	if st == nil {
		return nil, fmt.Errorf("session %s not started", sessionID)
	}
	if st.Phase != PhaseAwaitingResponse || st.CurrentCard == nil || st.CurrentCard.ID != resp.CardID {
		return nil, &ErrStaleResponse{CardID: resp.CardID, Current: st.CurrentCard}
	}

	work, err := st.clone()
	if err != nil {
		return nil, err
	}
	card := work.CurrentCard
	gradedRemediation := work.CurrentIsRemediation
	work.Phase = PhaseGraded
	work.Turn++

	correct := e.grade(card, resp.Answer)

	ms, ok := work.Mastery[card.ConceptID]
	if !ok {
		ms = bkt.NewState(e.cfg.Mastery.Params())
	}
	before := ms.PMastered
	ms, err = bkt.Update(ms, correct)
	if err != nil {
		return nil, fmt.Errorf("mastery update for %s: %w", card.ConceptID, err)
	}
	work.Mastery[card.ConceptID] = ms
	delta := ms.PMastered - before

	work.History = append(work.History, calibration.Record{
		ConceptID:  card.ConceptID,
		Correct:    correct,
		Confidence: resp.StatedConfidence,
		LatencyMs:  resp.LatencyMs,
		Timestamp:  e.now().UTC(),
	})

	var xp int
	multiplier := 1.0
	if correct {
		work.CorrectCount++
		work.Streak++
		work.ConsecutiveWrong = 0
		if work.Streak > work.BestStreak {
			work.BestStreak = work.Streak
		}
		xp, multiplier = XPAward(card.Difficulty, work.Streak, e.cfg.Feed)
		work.XP += xp
	} else {
		work.Streak = 0
		work.ConsecutiveWrong++
		work.EnqueueRemediation(QueueEntry{
			ConceptID:     card.ConceptID,
			Card:          card,
			CooldownUntil: work.Turn + e.cfg.Feed.CooldownTurns,
		}, e.cfg.Feed.QueueCapacity)
	}

	if resp.LatencyMs <= e.cfg.Feed.FastAnswerMs {
		work.FastAnswers++
	} else {
		work.SlowAnswers++
	}
	work.TotalTimeMs += resp.LatencyMs

	e.updateArm(work, card.ConceptID, correct, delta)

	next, remediation, err := e.selectNext(ctx, work)
	if err != nil {
		return nil, err
	}
	work.PushDelta(next.Difficulty-card.Difficulty, e.cfg.Feed.DeltaWindow)
	work.CurrentCard = next
	work.CurrentIsRemediation = remediation
	work.Phase = PhaseAwaitingResponse
	work.UpdatedAt = e.now().UTC()

	if err := e.persist(ctx, work); err != nil {
		return nil, err
	}
	sess.state = work

	e.appendTurnEvents(ctx, work, card, resp, correct, gradedRemediation, before, ms.PMastered, ms.Attempts, xp, multiplier)

	return &TurnResult{
		Correct:      correct,
		XPAwarded:    xp,
		Multiplier:   multiplier,
		Streak:       work.Streak,
		BestStreak:   work.BestStreak,
		TotalXP:      work.XP,
		Turn:         work.Turn,
		MasteryDelta: delta,
		PMastered:    ms.PMastered,
		NextCard:     next,
		Remediation:  remediation,
	}, nil
}

// EndSession closes a session, persists its final state and returns the
// summary. Further transitions for the session are rejected until it is
// started again.
func (e *Engine) EndSession(ctx context.Context, sessionID string) (*Summary, error) {
	sess := e.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	st := sess.state
	if st == nil {
		return nil, fmt.Errorf("session %s not started", sessionID)
	}
	st.UpdatedAt = e.now().UTC()
	if err := e.persist(ctx, st); err != nil {
		return nil, err
	}

	mastery := make(map[string]float64, len(st.Mastery))
	for id, ms := range st.Mastery {
		mastery[id] = ms.PMastered
	}
	summary := &Summary{
		SessionID:      st.SessionID,
		Turns:          st.Turn,
		CorrectAnswers: st.CorrectCount,
		XP:             st.XP,
		BestStreak:     st.BestStreak,
		Duration:       st.UpdatedAt.Sub(st.StartedAt),
		FastAnswers:    st.FastAnswers,
		SlowAnswers:    st.SlowAnswers,
		Mastery:        mastery,
		Calibration:    calibration.Compute(st.History),
		Overconfident: calibration.Overconfident(st.History,
			e.cfg.Calibration.OverconfidenceThreshold, e.cfg.Calibration.MinSamples),
	}

	e.appendSessionEvent(ctx, st, "end")

	e.mu.Lock()
	delete(e.sessions, sessionID)
	e.mu.Unlock()

	return summary, nil
}

func (e *Engine) grade(card *content.ScrollCard, answer string) bool {
	fn, ok := e.graders[card.ItemType]
	if !ok {
		fn = gradeExact
	}
	return fn(card, answer)
}

// updateArm feeds the sequencer's reward signal: meaningful mastery gain
// counts, and so does a correct answer on a concept the learner is
// overconfident about, since practicing it repairs calibration even when
// mastery barely moves.
func (e *Engine) updateArm(work *FeedState, conceptID string, correct bool, delta float64) {
	reward := 0
	if delta >= e.cfg.Feed.RewardThreshold {
		reward = 1
	} else if correct {
		flagged := calibration.Overconfident(work.History,
			e.cfg.Calibration.OverconfidenceThreshold, e.cfg.Calibration.MinSamples)
		for _, id := range flagged {
			if id == conceptID {
				reward = 1
				break
			}
		}
	}
	arm := work.Arms[conceptID]
	if arm == nil {
		arm = &bandit.Arm{}
		work.Arms[conceptID] = arm
	}
	_ = arm.Update(reward)
}

// selectNext decides the next card. A cooled-down remediation entry wins
// either probabilistically or, when the queue is nearly full, by force;
// otherwise the sequencer picks a concept from the eligible frontier and
// the ZPD selector sets its difficulty.
func (e *Engine) selectNext(ctx context.Context, work *FeedState) (*content.ScrollCard, bool, error) {
	if entry, idx, ok := work.NextRemediation(work.Turn); ok {
		forceAt := int(math.Ceil(e.cfg.Feed.ForceReintroduceAt * float64(e.cfg.Feed.QueueCapacity)))
		forced := forceAt > 0 && len(work.Queue) >= forceAt
		e.rngMu.Lock()
		roll := e.rng.Float64()
		e.rngMu.Unlock()
		if forced || roll < e.cfg.Feed.ReintroduceProbability {
			work.removeQueueAt(idx)
			reissued := *entry.Card
			reissued.ID = uuid.New().String()
			reissued.GeneratedAt = e.now().UTC()
			return &reissued, true, nil
		}
	}

	eligible := e.catalog.Eligible(work.MasteredSet(e.cfg.Mastery.MasteredThreshold))
	e.rngMu.Lock()
	conceptID, err := e.sequencer.ChooseNext(work.Arms, eligible)
	e.rngMu.Unlock()
	if err != nil {
		return nil, false, err
	}

	ms, ok := work.Mastery[conceptID]
	if !ok {
		ms = bkt.NewState(e.cfg.Mastery.Params())
	}
	difficulty := zpd.SelectDifficulty(ms.PMastered, e.cfg.ZPD.TargetSuccessRate)
	momentum := zpd.Momentum{
		StreakThreshold: e.cfg.ZPD.MomentumStreak,
		Step:            e.cfg.ZPD.MomentumStep,
		Cap:             e.cfg.ZPD.MomentumCap,
	}
	difficulty = momentum.Adjust(difficulty, work.Streak, work.ConsecutiveWrong)

	card, err := e.provider.FetchCard(ctx, content.Request{
		ConceptID:  conceptID,
		Difficulty: difficulty,
		Tolerance:  fetchTolerance,
	})
	if err == nil {
		return card, false, nil
	}
	var notFound *content.ErrNotFound
	if !errors.As(err, &notFound) {
		return nil, false, fmt.Errorf("fetching card for %s: %w", conceptID, err)
	}
	// One relaxed retry before giving up on the concept.
	card, err = e.provider.FetchCard(ctx, content.Request{
		ConceptID:  conceptID,
		Difficulty: difficulty,
		Tolerance:  relaxedTolerance,
	})
	if err != nil {
		return nil, false, &ErrContentUnavailable{ConceptID: conceptID, Err: err}
	}
	return card, false, nil
}

func (e *Engine) persist(ctx context.Context, st *FeedState) error {
	if e.snapshots == nil {
		return nil
	}
	doc, err := st.ToMap()
	if err != nil {
		return err
	}
	if err := e.snapshots.Save(ctx, st.SessionID, doc); err != nil {
		return fmt.Errorf("persisting session %s: %w", st.SessionID, err)
	}
	_ = e.snapshots.Prune(ctx, st.SessionID, snapshotsToKeep)
	return nil
}

// Event appends are best-effort: the in-memory transition already
// committed and a failed log write should not fail the turn.
func (e *Engine) appendTurnEvents(ctx context.Context, work *FeedState, card *content.ScrollCard, resp Response, correct, remediation bool, pBefore, pAfter float64, attempts, xp int, multiplier float64) {
	if e.events == nil {
		return
	}
	_ = e.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:        work.SessionID,
		ConceptID:        card.ConceptID,
		CardID:           card.ID,
		Prompt:           card.Prompt,
		ExpectedAnswer:   card.Answer,
		GivenAnswer:      resp.Answer,
		Correct:          correct,
		StatedConfidence: resp.StatedConfidence,
		LatencyMs:        resp.LatencyMs,
		Difficulty:       card.Difficulty,
		ItemType:         string(card.ItemType),
		Remediation:      remediation,
	})
	_ = e.events.AppendMasteryEvent(ctx, store.MasteryEventData{
		SessionID: work.SessionID,
		ConceptID: card.ConceptID,
		PBefore:   pBefore,
		PAfter:    pAfter,
		Correct:   correct,
		Attempts:  attempts,
	})
	if xp > 0 {
		_ = e.events.AppendRewardEvent(ctx, store.RewardEventData{
			SessionID:  work.SessionID,
			ConceptID:  card.ConceptID,
			XP:         xp,
			Streak:     work.Streak,
			Multiplier: multiplier,
		})
	}
}

func (e *Engine) appendSessionEvent(ctx context.Context, st *FeedState, action string) {
	if e.events == nil {
		return
	}
	_ = e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      st.SessionID,
		Action:         action,
		Turns:          st.Turn,
		CorrectAnswers: st.CorrectCount,
		XPTotal:        st.XP,
		BestStreak:     st.BestStreak,
		DurationSecs:   int(st.UpdatedAt.Sub(st.StartedAt) / time.Second),
	})
}
