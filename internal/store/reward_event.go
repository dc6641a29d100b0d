package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillscroll/ent"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetConceptID(data.ConceptID).
		SetXp(data.XP).
		SetStreak(data.Streak).
		SetMultiplier(data.Multiplier).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) TotalXP(ctx context.Context) (int, error) {
	var rows []struct {
		Sum int `json:"sum"`
	}
	err := r.client.RewardEvent.Query().
		Aggregate(ent.Sum("xp")).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("sum reward xp: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Sum, nil
}
