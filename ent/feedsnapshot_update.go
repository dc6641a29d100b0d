// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillscroll/ent/feedsnapshot"
	"github.com/abhisek/skillscroll/ent/predicate"
)

// FeedSnapshotUpdate is the builder for updating FeedSnapshot entities.
type FeedSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *FeedSnapshotMutation
}

// Where appends a list predicates to the FeedSnapshotUpdate builder.
func (_u *FeedSnapshotUpdate) Where(ps ...predicate.FeedSnapshot) *FeedSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FeedSnapshotUpdate) SetSessionID(v string) *FeedSnapshotUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedSnapshotUpdate) SetNillableSessionID(v *string) *FeedSnapshotUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *FeedSnapshotUpdate) SetSequence(v int64) *FeedSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *FeedSnapshotUpdate) SetNillableSequence(v *int64) *FeedSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *FeedSnapshotUpdate) AddSequence(v int64) *FeedSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *FeedSnapshotUpdate) SetTimestamp(v time.Time) *FeedSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *FeedSnapshotUpdate) SetNillableTimestamp(v *time.Time) *FeedSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *FeedSnapshotUpdate) SetData(v map[string]interface{}) *FeedSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the FeedSnapshotMutation object of the builder.
func (_u *FeedSnapshotUpdate) Mutation() *FeedSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedSnapshotUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := feedsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "FeedSnapshot.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedsnapshot.Table, feedsnapshot.Columns, sqlgraph.NewFieldSpec(feedsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(feedsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(feedsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(feedsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(feedsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(feedsnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedSnapshotUpdateOne is the builder for updating a single FeedSnapshot entity.
type FeedSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedSnapshotMutation
}

// SetSessionID sets the "session_id" field.
func (_u *FeedSnapshotUpdateOne) SetSessionID(v string) *FeedSnapshotUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedSnapshotUpdateOne) SetNillableSessionID(v *string) *FeedSnapshotUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *FeedSnapshotUpdateOne) SetSequence(v int64) *FeedSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *FeedSnapshotUpdateOne) SetNillableSequence(v *int64) *FeedSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *FeedSnapshotUpdateOne) AddSequence(v int64) *FeedSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *FeedSnapshotUpdateOne) SetTimestamp(v time.Time) *FeedSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *FeedSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *FeedSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *FeedSnapshotUpdateOne) SetData(v map[string]interface{}) *FeedSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the FeedSnapshotMutation object of the builder.
func (_u *FeedSnapshotUpdateOne) Mutation() *FeedSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedSnapshotUpdate builder.
func (_u *FeedSnapshotUpdateOne) Where(ps ...predicate.FeedSnapshot) *FeedSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedSnapshotUpdateOne) Select(field string, fields ...string) *FeedSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedSnapshot entity.
func (_u *FeedSnapshotUpdateOne) Save(ctx context.Context) (*FeedSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedSnapshotUpdateOne) SaveX(ctx context.Context) *FeedSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := feedsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "FeedSnapshot.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *FeedSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedsnapshot.Table, feedsnapshot.Columns, sqlgraph.NewFieldSpec(feedsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedsnapshot.FieldID)
		for _, f := range fields {
			if !feedsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedsnapshot.FieldID {
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
		_spec.SetField(feedsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(feedsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(feedsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(feedsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(feedsnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &FeedSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
