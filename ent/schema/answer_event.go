package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded response within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{LedgerMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("concept_id").
			NotEmpty().
			Comment("Concept the card practiced"),
		field.String("card_id").
			NotEmpty().
			Comment("Issued card this response answered"),
		field.String("prompt").
			NotEmpty().
			Comment("The prompt shown"),
		field.String("expected_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("given_answer").
			Comment("What the learner entered"),
		field.Bool("correct").
			Comment("Whether the answer was graded correct"),
		field.Float("stated_confidence").
			Comment("Learner-stated confidence in [0,100]"),
		field.Int64("latency_ms").
			Comment("Milliseconds to answer"),
		field.Float("difficulty").
			Comment("Card difficulty in [0,1]"),
		field.String("item_type").
			NotEmpty().
			Comment("Grading strategy used"),
		field.Bool("remediation").
			Default(false).
			Comment("True when the card came from the remediation queue"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("concept_id"),
	}
}
