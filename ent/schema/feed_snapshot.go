package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedSnapshot captures a session's full feed state, enabling restore
// without replaying the event log.
type FeedSnapshot struct {
	ent.Schema
}

func (FeedSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session this state belongs to"),
		field.Int64("sequence").
			Comment("Event sequence number at the time of the snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Feed state in its flat key-value form"),
	}
}

func (FeedSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp"),
		index.Fields("sequence"),
	}
}
