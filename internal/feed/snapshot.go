package feed

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/skillscroll/internal/bandit"
	"github.com/abhisek/skillscroll/internal/bkt"
)

// ToMap serializes the state into the flat key-value document the snapshot
// store persists. The round trip through FromMap is lossless.
func (s *FeedState) ToMap() (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding feed state: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decoding feed state document: %w", err)
	}
	return m, nil
}

// FromMap restores a persisted snapshot document. Any structural or semantic
// violation yields *ErrCorruptState so callers can fall back to a fresh
// session instead of operating on damaged data.
func FromMap(m map[string]any) (*FeedState, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, &ErrCorruptState{Reason: "unencodable snapshot document", Err: err}
	}
	var s FeedState
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &ErrCorruptState{Reason: "undecodable snapshot document", Err: err}
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Mastery == nil {
		s.Mastery = make(map[string]bkt.State)
	}
	if s.Arms == nil {
		s.Arms = make(map[string]*bandit.Arm)
	}
	return &s, nil
}

func (s *FeedState) validate() error {
	if s.Version != snapshotVersion {
		return &ErrCorruptState{Reason: fmt.Sprintf("unsupported snapshot version %d", s.Version)}
	}
	if s.SessionID == "" {
		return &ErrCorruptState{Reason: "empty session id"}
	}
	if s.Phase != PhaseAwaitingResponse && s.Phase != PhaseGraded {
		return &ErrCorruptState{Reason: fmt.Sprintf("unknown phase %q", s.Phase)}
	}
	if s.Turn < 0 || s.XP < 0 || s.Streak < 0 || s.ConsecutiveWrong < 0 {
		return &ErrCorruptState{Reason: "negative counter"}
	}
	for id, ms := range s.Mastery {
		if ms.PMastered < 0 || ms.PMastered > 1 {
			return &ErrCorruptState{Reason: fmt.Sprintf("mastery probability out of range for %s", id)}
		}
	}
	for _, entry := range s.Queue {
		if entry.Card == nil {
			return &ErrCorruptState{Reason: fmt.Sprintf("queue entry for %s has no card", entry.ConceptID)}
		}
	}
	return nil
}

// clone deep-copies the state so a transition can mutate freely and commit
// only on success.
func (s *FeedState) clone() (*FeedState, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("cloning feed state: %w", err)
	}
	var out FeedState
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("cloning feed state: %w", err)
	}
	if out.Mastery == nil {
		out.Mastery = make(map[string]bkt.State)
	}
	if out.Arms == nil {
		out.Arms = make(map[string]*bandit.Arm)
	}
	return &out, nil
}
