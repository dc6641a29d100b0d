package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records one XP award with the streak band that shaped it.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{LedgerMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Int("xp").
			Comment("XP awarded this turn"),
		field.Int("streak").
			Comment("Streak length after the award"),
		field.Float("multiplier").
			Comment("Streak multiplier applied"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
