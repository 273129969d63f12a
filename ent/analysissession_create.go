// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/boardscope"
)

// AnalysisSessionCreate is the builder for creating a AnalysisSession entity.
type AnalysisSessionCreate struct {
	config
	mutation *AnalysisSessionMutation
	hooks    []Hook
}

// SetReference sets the "reference" field.
func (_c *AnalysisSessionCreate) SetReference(v string) *AnalysisSessionCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetReanalyse sets the "reanalyse" field.
func (_c *AnalysisSessionCreate) SetReanalyse(v bool) *AnalysisSessionCreate {
	_c.mutation.SetReanalyse(v)
	return _c
}

// SetNillableReanalyse sets the "reanalyse" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableReanalyse(v *bool) *AnalysisSessionCreate {
	if v != nil {
		_c.SetReanalyse(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisSessionCreate) SetCreatedAt(v time.Time) *AnalysisSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableCreatedAt(v *time.Time) *AnalysisSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnalysisSessionCreate) SetUpdatedAt(v time.Time) *AnalysisSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableUpdatedAt(v *time.Time) *AnalysisSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddScopeIDs adds the "scopes" edge to the BoardScope entity by IDs.
func (_c *AnalysisSessionCreate) AddScopeIDs(ids ...int) *AnalysisSessionCreate {
	_c.mutation.AddScopeIDs(ids...)
	return _c
}

// AddScopes adds the "scopes" edges to the BoardScope entity.
func (_c *AnalysisSessionCreate) AddScopes(v ...*BoardScope) *AnalysisSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScopeIDs(ids...)
}

// AddHistoryIDs adds the "histories" edge to the AnalysisHistory entity by IDs.
func (_c *AnalysisSessionCreate) AddHistoryIDs(ids ...int) *AnalysisSessionCreate {
	_c.mutation.AddHistoryIDs(ids...)
	return _c
}

// AddHistories adds the "histories" edges to the AnalysisHistory entity.
func (_c *AnalysisSessionCreate) AddHistories(v ...*AnalysisHistory) *AnalysisSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHistoryIDs(ids...)
}

// Mutation returns the AnalysisSessionMutation object of the builder.
func (_c *AnalysisSessionCreate) Mutation() *AnalysisSessionMutation {
	return _c.mutation
}

// Save creates the AnalysisSession in the database.
func (_c *AnalysisSessionCreate) Save(ctx context.Context) (*AnalysisSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisSessionCreate) SaveX(ctx context.Context) *AnalysisSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisSessionCreate) defaults() {
	if _, ok := _c.mutation.Reanalyse(); !ok {
		v := analysissession.DefaultReanalyse
		_c.mutation.SetReanalyse(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysissession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := analysissession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisSessionCreate) check() error {
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`ent: missing required field "AnalysisSession.reference"`)}
	}
	if _, ok := _c.mutation.Reanalyse(); !ok {
		return &ValidationError{Name: "reanalyse", err: errors.New(`ent: missing required field "AnalysisSession.reanalyse"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AnalysisSession.updated_at"`)}
	}
	return nil
}

func (_c *AnalysisSessionCreate) sqlSave(ctx context.Context) (*AnalysisSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisSessionCreate) createSpec() (*AnalysisSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysissession.Table, sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(analysissession.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.Reanalyse(); ok {
		_spec.SetField(analysissession.FieldReanalyse, field.TypeBool, value)
		_node.Reanalyse = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysissession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(analysissession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ScopesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HistoriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisSessionCreateBulk is the builder for creating many AnalysisSession entities in bulk.
type AnalysisSessionCreateBulk struct {
	config
	err      error
	builders []*AnalysisSessionCreate
}

// Save creates the AnalysisSession entities in the database.
func (_c *AnalysisSessionCreateBulk) Save(ctx context.Context) ([]*AnalysisSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisSessionCreateBulk) SaveX(ctx context.Context) []*AnalysisSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
