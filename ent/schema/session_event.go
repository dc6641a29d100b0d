package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records a session lifecycle action with the session's
// running totals at that point.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{LedgerMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session"),
		field.String("action").
			NotEmpty().
			Comment("start, end, or corrupt-state-recovery"),
		field.Int("turns").
			Default(0).
			Comment("Graded turns so far"),
		field.Int("correct_answers").
			Default(0),
		field.Int("xp_total").
			Default(0).
			Comment("Cumulative XP at the time of the event"),
		field.Int("best_streak").
			Default(0),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session duration, end events only"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
