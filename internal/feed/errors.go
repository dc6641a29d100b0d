package feed

import (
	"fmt"

	"github.com/abhisek/skillscroll/internal/content"
)

// ErrStaleResponse is returned when a graded response references a card
// that is no longer the outstanding one, which happens on duplicate
// submissions or out-of-order delivery. Current carries the card actually
// awaiting a response so callers can resynchronize.
type ErrStaleResponse struct {
	CardID  string
	Current *content.ScrollCard
}

func (e *ErrStaleResponse) Error() string {
	if e.Current == nil {
		return fmt.Sprintf("stale response for card %s: no card outstanding", e.CardID)
	}
	return fmt.Sprintf("stale response for card %s: current card is %s", e.CardID, e.Current.ID)
}

// ErrContentUnavailable is returned when no card could be fetched for the
// selected concept, even after relaxing the difficulty tolerance. The
// session keeps its last persisted state.
type ErrContentUnavailable struct {
	ConceptID string
	Err       error
}

func (e *ErrContentUnavailable) Error() string {
	return fmt.Sprintf("no card available for concept %s: %v", e.ConceptID, e.Err)
}

func (e *ErrContentUnavailable) Unwrap() error { return e.Err }

// ErrCorruptState is returned when a persisted snapshot cannot be restored
// into a valid feed state.
type ErrCorruptState struct {
	Reason string
	Err    error
}

func (e *ErrCorruptState) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt feed state: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("corrupt feed state: %s", e.Reason)
}

func (e *ErrCorruptState) Unwrap() error { return e.Err }
