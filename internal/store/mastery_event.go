package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetConceptID(data.ConceptID).
		SetPBefore(data.PBefore).
		SetPAfter(data.PAfter).
		SetCorrect(data.Correct).
		SetAttempts(data.Attempts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}
