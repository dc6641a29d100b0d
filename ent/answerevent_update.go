// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillscroll/ent/answerevent"
	"github.com/abhisek/skillscroll/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *AnswerEventUpdate) SetConceptID(v string) *AnswerEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableConceptID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *AnswerEventUpdate) SetCardID(v string) *AnswerEventUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCardID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdate) SetPrompt(v string) *AnswerEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePrompt(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *AnswerEventUpdate) SetExpectedAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableExpectedAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AnswerEventUpdate) SetGivenAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableGivenAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetStatedConfidence sets the "stated_confidence" field.
func (_u *AnswerEventUpdate) SetStatedConfidence(v float64) *AnswerEventUpdate {
	_u.mutation.ResetStatedConfidence()
	_u.mutation.SetStatedConfidence(v)
	return _u
}

// SetNillableStatedConfidence sets the "stated_confidence" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStatedConfidence(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetStatedConfidence(*v)
	}
	return _u
}

// AddStatedConfidence adds value to the "stated_confidence" field.
func (_u *AnswerEventUpdate) AddStatedConfidence(v float64) *AnswerEventUpdate {
	_u.mutation.AddStatedConfidence(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AnswerEventUpdate) SetLatencyMs(v int64) *AnswerEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableLatencyMs(v *int64) *AnswerEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AnswerEventUpdate) AddLatencyMs(v int64) *AnswerEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdate) SetDifficulty(v float64) *AnswerEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficulty(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdate) AddDifficulty(v float64) *AnswerEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *AnswerEventUpdate) SetItemType(v string) *AnswerEventUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableItemType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *AnswerEventUpdate) SetRemediation(v bool) *AnswerEventUpdate {
	_u.mutation.SetRemediation(v)
	return _u
}

// SetNillableRemediation sets the "remediation" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableRemediation(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetRemediation(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := answerevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := answerevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedAnswer(); ok {
		if err := answerevent.ExpectedAnswerValidator(v); err != nil {
			return &ValidationError{Name: "expected_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := answerevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(answerevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(answerevent.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(answerevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(answerevent.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StatedConfidence(); ok {
		_spec.SetField(answerevent.FieldStatedConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStatedConfidence(); ok {
		_spec.AddField(answerevent.FieldStatedConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(answerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(answerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(answerevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(answerevent.FieldRemediation, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *AnswerEventUpdateOne) SetConceptID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableConceptID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *AnswerEventUpdateOne) SetCardID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCardID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdateOne) SetPrompt(v string) *AnswerEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePrompt(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *AnswerEventUpdateOne) SetExpectedAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableExpectedAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AnswerEventUpdateOne) SetGivenAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableGivenAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetStatedConfidence sets the "stated_confidence" field.
func (_u *AnswerEventUpdateOne) SetStatedConfidence(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetStatedConfidence()
	_u.mutation.SetStatedConfidence(v)
	return _u
}

// SetNillableStatedConfidence sets the "stated_confidence" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStatedConfidence(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStatedConfidence(*v)
	}
	return _u
}

// AddStatedConfidence adds value to the "stated_confidence" field.
func (_u *AnswerEventUpdateOne) AddStatedConfidence(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddStatedConfidence(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AnswerEventUpdateOne) SetLatencyMs(v int64) *AnswerEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableLatencyMs(v *int64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AnswerEventUpdateOne) AddLatencyMs(v int64) *AnswerEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdateOne) SetDifficulty(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficulty(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdateOne) AddDifficulty(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *AnswerEventUpdateOne) SetItemType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableItemType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *AnswerEventUpdateOne) SetRemediation(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetRemediation(v)
	return _u
}

// SetNillableRemediation sets the "remediation" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableRemediation(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetRemediation(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := answerevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := answerevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedAnswer(); ok {
		if err := answerevent.ExpectedAnswerValidator(v); err != nil {
			return &ValidationError{Name: "expected_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := answerevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(answerevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(answerevent.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(answerevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(answerevent.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StatedConfidence(); ok {
		_spec.SetField(answerevent.FieldStatedConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStatedConfidence(); ok {
		_spec.AddField(answerevent.FieldStatedConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(answerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(answerevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(answerevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(answerevent.FieldRemediation, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
