// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/predicate"
)

// AnalysisHistoryUpdate is the builder for updating AnalysisHistory entities.
type AnalysisHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisHistoryMutation
}

// Where appends a list predicates to the AnalysisHistoryUpdate builder.
func (_u *AnalysisHistoryUpdate) Where(ps ...predicate.AnalysisHistory) *AnalysisHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AnalysisHistoryMutation object of the builder.
func (_u *AnalysisHistoryUpdate) Mutation() *AnalysisHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisHistoryUpdate) check() error {
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisHistory.ticket"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisHistory.session"`)
	}
	return nil
}

func (_u *AnalysisHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysishistory.Table, analysishistory.Columns, sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.JustificationCleared() {
		_spec.ClearField(analysishistory.FieldJustification, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysishistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisHistoryUpdateOne is the builder for updating a single AnalysisHistory entity.
type AnalysisHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisHistoryMutation
}

// Mutation returns the AnalysisHistoryMutation object of the builder.
func (_u *AnalysisHistoryUpdateOne) Mutation() *AnalysisHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisHistoryUpdate builder.
func (_u *AnalysisHistoryUpdateOne) Where(ps ...predicate.AnalysisHistory) *AnalysisHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisHistoryUpdateOne) Select(field string, fields ...string) *AnalysisHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisHistory entity.
func (_u *AnalysisHistoryUpdateOne) Save(ctx context.Context) (*AnalysisHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisHistoryUpdateOne) SaveX(ctx context.Context) *AnalysisHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisHistoryUpdateOne) check() error {
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisHistory.ticket"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisHistory.session"`)
	}
	return nil
}

func (_u *AnalysisHistoryUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysishistory.Table, analysishistory.Columns, sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysishistory.FieldID)
		for _, f := range fields {
			if !analysishistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysishistory.FieldID {
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
	if _u.mutation.JustificationCleared() {
		_spec.ClearField(analysishistory.FieldJustification, field.TypeJSON)
	}
	_node = &AnalysisHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysishistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
