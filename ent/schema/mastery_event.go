package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records one knowledge-tracing update: the mastery
// probability before and after a graded response.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{LedgerMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("concept_id").
			NotEmpty(),
		field.Float("p_before").
			Comment("Mastery probability before the update"),
		field.Float("p_after").
			Comment("Mastery probability after the update"),
		field.Bool("correct"),
		field.Int("attempts").
			Comment("Total attempts on the concept after the update"),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
	}
}
