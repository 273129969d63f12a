// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/predicate"
)

// AnalysisHistoryDelete is the builder for deleting a AnalysisHistory entity.
type AnalysisHistoryDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisHistoryMutation
}

// Where appends a list predicates to the AnalysisHistoryDelete builder.
func (_d *AnalysisHistoryDelete) Where(ps ...predicate.AnalysisHistory) *AnalysisHistoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisHistoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysishistory.Table, sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalysisHistoryDeleteOne is the builder for deleting a single AnalysisHistory entity.
type AnalysisHistoryDeleteOne struct {
	_d *AnalysisHistoryDelete
}

// Where appends a list predicates to the AnalysisHistoryDelete builder.
func (_d *AnalysisHistoryDeleteOne) Where(ps ...predicate.AnalysisHistory) *AnalysisHistoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysishistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
