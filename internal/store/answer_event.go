package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/skillscroll/ent"
	"github.com/abhisek/skillscroll/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetConceptID(data.ConceptID).
		SetCardID(data.CardID).
		SetPrompt(data.Prompt).
		SetExpectedAnswer(data.ExpectedAnswer).
		SetGivenAnswer(data.GivenAnswer).
		SetCorrect(data.Correct).
		SetStatedConfidence(data.StatedConfidence).
		SetLatencyMs(data.LatencyMs).
		SetDifficulty(data.Difficulty).
		SetItemType(data.ItemType).
		SetRemediation(data.Remediation).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) ConceptAccuracy(ctx context.Context, conceptID string) (float64, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.ConceptID(conceptID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query concept accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}

func (r *eventRepo) LatestAnswerTime(ctx context.Context, conceptID string) (time.Time, error) {
	ae, err := r.client.AnswerEvent.Query().
		Where(answerevent.ConceptID(conceptID)).
		Order(ent.Desc(answerevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest answer time: %w", err)
	}
	return ae.Timestamp, nil
}
