// Package feed is the orchestrating state machine of the decision core.
//
// One FeedState exists per active learning session. Each learner action
// runs the full per-turn loop: grade the response, update mastery via
// knowledge tracing, record calibration evidence, shape the XP/streak
// reward, maintain the remediation queue, and pick the next card through
// the bandit sequencer and the ZPD difficulty selector.
package feed

import (
	"time"

	"github.com/abhisek/skillscroll/internal/bandit"
	"github.com/abhisek/skillscroll/internal/bkt"
	"github.com/abhisek/skillscroll/internal/calibration"
	"github.com/abhisek/skillscroll/internal/content"
)

// snapshotVersion guards the key-value serialization format.
const snapshotVersion = 1

// Phase is the feed state machine position.
type Phase string

const (
	// PhaseAwaitingResponse means a card has been issued and not yet graded.
	PhaseAwaitingResponse Phase = "awaiting_response"
	// PhaseGraded means the response was processed and the next selection
	// is pending. The phase is transient within a transition; persisted
	// states are always awaiting a response.
	PhaseGraded Phase = "graded"
)

// QueueEntry is one missed item awaiting resurfacing.
type QueueEntry struct {
	ConceptID string `json:"concept_id"`
	// Card is the missed card, re-issued on reintroduction.
	Card *content.ScrollCard `json:"card"`
	// CooldownUntil is the first turn index at which the entry may
	// resurface.
	CooldownUntil int `json:"cooldown_until"`
	// EnqueueCount counts how many times this concept's card was missed
	// and re-enqueued.
	EnqueueCount int `json:"enqueue_count"`
}

// FeedState is the session-scoped aggregate the engine owns exclusively.
// It is mutated only inside a grading transition and serializes losslessly
// to a flat key-value form for the persistence collaborator.
type FeedState struct {
	Version   int    `json:"version"`
	SessionID string `json:"session_id"`
	Phase     Phase  `json:"phase"`

	// Turn counts graded responses; it indexes queue cooldowns.
	Turn         int `json:"turn"`
	CorrectCount int `json:"correct_count"`

	Streak           int `json:"streak"`
	BestStreak       int `json:"best_streak"`
	ConsecutiveWrong int `json:"consecutive_wrong"`
	XP               int `json:"xp"`

	Queue []QueueEntry `json:"queue"`

	// Engagement counters.
	FastAnswers int   `json:"fast_answers"`
	SlowAnswers int   `json:"slow_answers"`
	TotalTimeMs int64 `json:"total_time_ms"`

	// RecentDeltas holds the last N difficulty deltas between consecutive
	// cards, newest last.
	RecentDeltas []float64 `json:"recent_deltas"`

	// Mastery maps concept ID to its knowledge tracing state for concepts
	// seen this session.
	Mastery map[string]bkt.State `json:"mastery"`

	// Arms holds the sequencer's per-concept beliefs.
	Arms map[string]*bandit.Arm `json:"arms"`

	// History is the ordered calibration evidence for this session.
	History []calibration.Record `json:"history"`

	// CurrentCard is the outstanding card, nil only before the first issue.
	CurrentCard *content.ScrollCard `json:"current_card"`
	// CurrentIsRemediation marks the outstanding card as a remediation
	// reissue rather than a fresh selection.
	CurrentIsRemediation bool `json:"current_is_remediation"`

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFeedState creates the state for a fresh session.
func NewFeedState(sessionID string, now time.Time) *FeedState {
	return &FeedState{
		Version:   snapshotVersion,
		SessionID: sessionID,
		Phase:     PhaseAwaitingResponse,
		Mastery:   make(map[string]bkt.State),
		Arms:      make(map[string]*bandit.Arm),
		StartedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// MasteredSet returns the concepts whose mastery probability has reached
// the threshold.
func (s *FeedState) MasteredSet(threshold float64) map[string]bool {
	out := make(map[string]bool)
	for id, ms := range s.Mastery {
		if ms.PMastered >= threshold {
			out[id] = true
		}
	}
	return out
}

// PushDelta appends a difficulty delta, keeping only the last window entries.
func (s *FeedState) PushDelta(delta float64, window int) {
	s.RecentDeltas = append(s.RecentDeltas, delta)
	if window > 0 && len(s.RecentDeltas) > window {
		s.RecentDeltas = s.RecentDeltas[len(s.RecentDeltas)-window:]
	}
}
