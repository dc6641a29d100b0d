package store

import (
	"context"
	"time"
)

// SessionEventData captures a session lifecycle action.
type SessionEventData struct {
	SessionID      string
	Action         string // "start", "end", "corrupt-state-recovery"
	Turns          int
	CorrectAnswers int
	XPTotal        int
	BestStreak     int
	DurationSecs   int
}

// AnswerEventData captures one graded response.
type AnswerEventData struct {
	SessionID        string
	ConceptID        string
	CardID           string
	Prompt           string
	ExpectedAnswer   string
	GivenAnswer      string
	Correct          bool
	StatedConfidence float64
	LatencyMs        int64
	Difficulty       float64
	ItemType         string
	Remediation      bool
}

// MasteryEventData captures one knowledge-tracing update.
type MasteryEventData struct {
	SessionID string
	ConceptID string
	PBefore   float64
	PAfter    float64
	Correct   bool
	Attempts  int
}

// RewardEventData captures one XP award.
type RewardEventData struct {
	SessionID  string
	ConceptID  string
	XP         int
	Streak     int
	Multiplier float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// ConceptAccuracy returns the all-time accuracy for a concept.
	ConceptAccuracy(ctx context.Context, conceptID string) (float64, int, error)
	// LatestAnswerTime returns when the concept was last practiced.
	// Zero time if never.
	LatestAnswerTime(ctx context.Context, conceptID string) (time.Time, error)
	// TotalXP returns the lifetime XP sum across all sessions.
	TotalXP(ctx context.Context) (int, error)
}

// SnapshotEntry is a stored feed snapshot.
type SnapshotEntry struct {
	ID        int
	SessionID string
	Sequence  int64
	Timestamp time.Time
	Data      map[string]any
}

// SnapshotRepo manages per-session feed state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot of a session's feed state.
	Save(ctx context.Context, sessionID string, data map[string]any) error
	// Latest returns the most recent snapshot for a session, or nil if
	// none exists.
	Latest(ctx context.Context, sessionID string) (*SnapshotEntry, error)
	// LatestAny returns the most recent snapshot across all sessions,
	// or nil if none exists.
	LatestAny(ctx context.Context) (*SnapshotEntry, error)
	// Prune deletes all but the N most recent snapshots for a session.
	Prune(ctx context.Context, sessionID string, keep int) error
}
