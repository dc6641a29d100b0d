package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillscroll/ent"
	"github.com/abhisek/skillscroll/ent/feedsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, sessionID string, data map[string]any) error {
	seqNum, err := r.seq.Current(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.FeedSnapshot.Create().
		SetSessionID(sessionID).
		SetSequence(seqNum).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save feed snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, sessionID string) (*SnapshotEntry, error) {
	s, err := r.client.FeedSnapshot.Query().
		Where(feedsnapshot.SessionID(sessionID)).
		Order(ent.Desc(feedsnapshot.FieldTimestamp), ent.Desc(feedsnapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entToEntry(s), nil
}

func (r *snapshotRepo) LatestAny(ctx context.Context) (*SnapshotEntry, error) {
	s, err := r.client.FeedSnapshot.Query().
		Order(ent.Desc(feedsnapshot.FieldTimestamp), ent.Desc(feedsnapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entToEntry(s), nil
}

func (r *snapshotRepo) Prune(ctx context.Context, sessionID string, keep int) error {
	old, err := r.client.FeedSnapshot.Query().
		Where(feedsnapshot.SessionID(sessionID)).
		Order(ent.Desc(feedsnapshot.FieldTimestamp), ent.Desc(feedsnapshot.FieldID)).
		Offset(keep).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	for _, s := range old {
		if err := r.client.FeedSnapshot.DeleteOne(s).Exec(ctx); err != nil {
			return fmt.Errorf("prune snapshot %d: %w", s.ID, err)
		}
	}
	return nil
}

func entToEntry(s *ent.FeedSnapshot) *SnapshotEntry {
	return &SnapshotEntry{
		ID:        s.ID,
		SessionID: s.SessionID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}
}
