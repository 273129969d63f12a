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
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/boardscope"
	"github.com/talan-labs/cardtriage/ent/predicate"
)

// AnalysisSessionUpdate is the builder for updating AnalysisSession entities.
type AnalysisSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisSessionMutation
}

// Where appends a list predicates to the AnalysisSessionUpdate builder.
func (_u *AnalysisSessionUpdate) Where(ps ...predicate.AnalysisSession) *AnalysisSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisSessionUpdate) SetUpdatedAt(v time.Time) *AnalysisSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScopeIDs adds the "scopes" edge to the BoardScope entity by IDs.
func (_u *AnalysisSessionUpdate) AddScopeIDs(ids ...int) *AnalysisSessionUpdate {
	_u.mutation.AddScopeIDs(ids...)
	return _u
}

// AddScopes adds the "scopes" edges to the BoardScope entity.
func (_u *AnalysisSessionUpdate) AddScopes(v ...*BoardScope) *AnalysisSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScopeIDs(ids...)
}

// AddHistoryIDs adds the "histories" edge to the AnalysisHistory entity by IDs.
func (_u *AnalysisSessionUpdate) AddHistoryIDs(ids ...int) *AnalysisSessionUpdate {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistories adds the "histories" edges to the AnalysisHistory entity.
func (_u *AnalysisSessionUpdate) AddHistories(v ...*AnalysisHistory) *AnalysisSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the AnalysisSessionMutation object of the builder.
func (_u *AnalysisSessionUpdate) Mutation() *AnalysisSessionMutation {
	return _u.mutation
}

// ClearScopes clears all "scopes" edges to the BoardScope entity.
func (_u *AnalysisSessionUpdate) ClearScopes() *AnalysisSessionUpdate {
	_u.mutation.ClearScopes()
	return _u
}

// RemoveScopeIDs removes the "scopes" edge to BoardScope entities by IDs.
func (_u *AnalysisSessionUpdate) RemoveScopeIDs(ids ...int) *AnalysisSessionUpdate {
	_u.mutation.RemoveScopeIDs(ids...)
	return _u
}

// RemoveScopes removes "scopes" edges to BoardScope entities.
func (_u *AnalysisSessionUpdate) RemoveScopes(v ...*BoardScope) *AnalysisSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScopeIDs(ids...)
}

// ClearHistories clears all "histories" edges to the AnalysisHistory entity.
func (_u *AnalysisSessionUpdate) ClearHistories() *AnalysisSessionUpdate {
	_u.mutation.ClearHistories()
	return _u
}

// RemoveHistoryIDs removes the "histories" edge to AnalysisHistory entities by IDs.
func (_u *AnalysisSessionUpdate) RemoveHistoryIDs(ids ...int) *AnalysisSessionUpdate {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistories removes "histories" edges to AnalysisHistory entities.
func (_u *AnalysisSessionUpdate) RemoveHistories(v ...*AnalysisHistory) *AnalysisSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysissession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AnalysisSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysissession.Table, analysissession.Columns, sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysissession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScopesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.ScopesTable,
			Columns: []string{analysissession.ScopesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(boardscope.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScopesIDs(); len(nodes) > 0 && !_u.mutation.ScopesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.ScopesTable,
			Columns: []string{analysissession.ScopesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(boardscope.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScopesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.ScopesTable,
			Columns: []string{analysissession.ScopesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(boardscope.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.HistoriesTable,
			Columns: []string{analysissession.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoriesIDs(); len(nodes) > 0 && !_u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.HistoriesTable,
			Columns: []string{analysissession.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.HistoriesTable,
			Columns: []string{analysissession.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysissession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisSessionUpdateOne is the builder for updating a single AnalysisSession entity.
type AnalysisSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisSessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisSessionUpdateOne) SetUpdatedAt(v time.Time) *AnalysisSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddScopeIDs adds the "scopes" edge to the BoardScope entity by IDs.
func (_u *AnalysisSessionUpdateOne) AddScopeIDs(ids ...int) *AnalysisSessionUpdateOne {
	_u.mutation.AddScopeIDs(ids...)
	return _u
}

// AddScopes adds the "scopes" edges to the BoardScope entity.
func (_u *AnalysisSessionUpdateOne) AddScopes(v ...*BoardScope) *AnalysisSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScopeIDs(ids...)
}

// AddHistoryIDs adds the "histories" edge to the AnalysisHistory entity by IDs.
func (_u *AnalysisSessionUpdateOne) AddHistoryIDs(ids ...int) *AnalysisSessionUpdateOne {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistories adds the "histories" edges to the AnalysisHistory entity.
func (_u *AnalysisSessionUpdateOne) AddHistories(v ...*AnalysisHistory) *AnalysisSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the AnalysisSessionMutation object of the builder.
func (_u *AnalysisSessionUpdateOne) Mutation() *AnalysisSessionMutation {
	return _u.mutation
}

// ClearScopes clears all "scopes" edges to the BoardScope entity.
func (_u *AnalysisSessionUpdateOne) ClearScopes() *AnalysisSessionUpdateOne {
	_u.mutation.ClearScopes()
	return _u
}

// RemoveScopeIDs removes the "scopes" edge to BoardScope entities by IDs.
func (_u *AnalysisSessionUpdateOne) RemoveScopeIDs(ids ...int) *AnalysisSessionUpdateOne {
	_u.mutation.RemoveScopeIDs(ids...)
	return _u
}

// RemoveScopes removes "scopes" edges to BoardScope entities.
func (_u *AnalysisSessionUpdateOne) RemoveScopes(v ...*BoardScope) *AnalysisSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScopeIDs(ids...)
}

// ClearHistories clears all "histories" edges to the AnalysisHistory entity.
func (_u *AnalysisSessionUpdateOne) ClearHistories() *AnalysisSessionUpdateOne {
	_u.mutation.ClearHistories()
	return _u
}

// RemoveHistoryIDs removes the "histories" edge to AnalysisHistory entities by IDs.
func (_u *AnalysisSessionUpdateOne) RemoveHistoryIDs(ids ...int) *AnalysisSessionUpdateOne {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistories removes "histories" edges to AnalysisHistory entities.
func (_u *AnalysisSessionUpdateOne) RemoveHistories(v ...*AnalysisHistory) *AnalysisSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Where appends a list predicates to the AnalysisSessionUpdate builder.
func (_u *AnalysisSessionUpdateOne) Where(ps ...predicate.AnalysisSession) *AnalysisSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisSessionUpdateOne) Select(field string, fields ...string) *AnalysisSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisSession entity.
func (_u *AnalysisSessionUpdateOne) Save(ctx context.Context) (*AnalysisSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisSessionUpdateOne) SaveX(ctx context.Context) *AnalysisSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysissession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AnalysisSessionUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysissession.Table, analysissession.Columns, sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysissession.FieldID)
		for _, f := range fields {
			if !analysissession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysissession.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysissession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ScopesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.ScopesTable,
			Columns: []string{analysissession.ScopesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(boardscope.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScopesIDs(); len(nodes) > 0 && !_u.mutation.ScopesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.ScopesTable,
			Columns: []string{analysissession.ScopesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(boardscope.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScopesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.ScopesTable,
			Columns: []string{analysissession.ScopesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(boardscope.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.HistoriesTable,
			Columns: []string{analysissession.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoriesIDs(); len(nodes) > 0 && !_u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.HistoriesTable,
			Columns: []string{analysissession.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.HistoriesTable,
			Columns: []string{analysissession.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysissession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
