// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillscroll/ent/masteryevent"
	"github.com/abhisek/skillscroll/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdate) SetSessionID(v string) *MasteryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSessionID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryEventUpdate) SetConceptID(v string) *MasteryEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableConceptID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPBefore sets the "p_before" field.
func (_u *MasteryEventUpdate) SetPBefore(v float64) *MasteryEventUpdate {
	_u.mutation.ResetPBefore()
	_u.mutation.SetPBefore(v)
	return _u
}

// SetNillablePBefore sets the "p_before" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillablePBefore(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetPBefore(*v)
	}
	return _u
}

// AddPBefore adds value to the "p_before" field.
func (_u *MasteryEventUpdate) AddPBefore(v float64) *MasteryEventUpdate {
	_u.mutation.AddPBefore(v)
	return _u
}

// SetPAfter sets the "p_after" field.
func (_u *MasteryEventUpdate) SetPAfter(v float64) *MasteryEventUpdate {
	_u.mutation.ResetPAfter()
	_u.mutation.SetPAfter(v)
	return _u
}

// SetNillablePAfter sets the "p_after" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillablePAfter(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetPAfter(*v)
	}
	return _u
}

// AddPAfter adds value to the "p_after" field.
func (_u *MasteryEventUpdate) AddPAfter(v float64) *MasteryEventUpdate {
	_u.mutation.AddPAfter(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *MasteryEventUpdate) SetCorrect(v bool) *MasteryEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableCorrect(v *bool) *MasteryEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *MasteryEventUpdate) SetAttempts(v int) *MasteryEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableAttempts(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *MasteryEventUpdate) AddAttempts(v int) *MasteryEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := masteryevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PBefore(); ok {
		_spec.SetField(masteryevent.FieldPBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPBefore(); ok {
		_spec.AddField(masteryevent.FieldPBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PAfter(); ok {
		_spec.SetField(masteryevent.FieldPAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPAfter(); ok {
		_spec.AddField(masteryevent.FieldPAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(masteryevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(masteryevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(masteryevent.FieldAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdateOne) SetSessionID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSessionID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryEventUpdateOne) SetConceptID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableConceptID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPBefore sets the "p_before" field.
func (_u *MasteryEventUpdateOne) SetPBefore(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetPBefore()
	_u.mutation.SetPBefore(v)
	return _u
}

// SetNillablePBefore sets the "p_before" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillablePBefore(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetPBefore(*v)
	}
	return _u
}

// AddPBefore adds value to the "p_before" field.
func (_u *MasteryEventUpdateOne) AddPBefore(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddPBefore(v)
	return _u
}

// SetPAfter sets the "p_after" field.
func (_u *MasteryEventUpdateOne) SetPAfter(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetPAfter()
	_u.mutation.SetPAfter(v)
	return _u
}

// SetNillablePAfter sets the "p_after" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillablePAfter(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetPAfter(*v)
	}
	return _u
}

// AddPAfter adds value to the "p_after" field.
func (_u *MasteryEventUpdateOne) AddPAfter(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddPAfter(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *MasteryEventUpdateOne) SetCorrect(v bool) *MasteryEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableCorrect(v *bool) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *MasteryEventUpdateOne) SetAttempts(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableAttempts(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *MasteryEventUpdateOne) AddAttempts(v int) *MasteryEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := masteryevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PBefore(); ok {
		_spec.SetField(masteryevent.FieldPBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPBefore(); ok {
		_spec.AddField(masteryevent.FieldPBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PAfter(); ok {
		_spec.SetField(masteryevent.FieldPAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPAfter(); ok {
		_spec.AddField(masteryevent.FieldPAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(masteryevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(masteryevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(masteryevent.FieldAttempts, field.TypeInt, value)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
