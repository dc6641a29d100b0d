package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// LedgerMixin carries the ordering fields every appended event shares.
// The sequence value comes from the store's global counter, so events of
// different types still form one totally ordered ledger.
type LedgerMixin struct {
	mixin.Schema
}

func (LedgerMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Position in the global event ledger"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the event was appended"),
	}
}

func (LedgerMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
