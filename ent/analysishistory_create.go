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
	"github.com/talan-labs/cardtriage/ent/ticket"
)

// AnalysisHistoryCreate is the builder for creating a AnalysisHistory entity.
type AnalysisHistoryCreate struct {
	config
	mutation *AnalysisHistoryMutation
	hooks    []Hook
}

// SetTicketID sets the "ticket_id" field.
func (_c *AnalysisHistoryCreate) SetTicketID(v int) *AnalysisHistoryCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnalysisHistoryCreate) SetSessionID(v int) *AnalysisHistoryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCriticality sets the "criticality" field.
func (_c *AnalysisHistoryCreate) SetCriticality(v analysishistory.Criticality) *AnalysisHistoryCreate {
	_c.mutation.SetCriticality(v)
	return _c
}

// SetJustification sets the "justification" field.
func (_c *AnalysisHistoryCreate) SetJustification(v map[string]interface{}) *AnalysisHistoryCreate {
	_c.mutation.SetJustification(v)
	return _c
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_c *AnalysisHistoryCreate) SetAnalyzedAt(v time.Time) *AnalysisHistoryCreate {
	_c.mutation.SetAnalyzedAt(v)
	return _c
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_c *AnalysisHistoryCreate) SetNillableAnalyzedAt(v *time.Time) *AnalysisHistoryCreate {
	if v != nil {
		_c.SetAnalyzedAt(*v)
	}
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *AnalysisHistoryCreate) SetTicket(v *Ticket) *AnalysisHistoryCreate {
	return _c.SetTicketID(v.ID)
}

// SetSession sets the "session" edge to the AnalysisSession entity.
func (_c *AnalysisHistoryCreate) SetSession(v *AnalysisSession) *AnalysisHistoryCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AnalysisHistoryMutation object of the builder.
func (_c *AnalysisHistoryCreate) Mutation() *AnalysisHistoryMutation {
	return _c.mutation
}

// Save creates the AnalysisHistory in the database.
func (_c *AnalysisHistoryCreate) Save(ctx context.Context) (*AnalysisHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisHistoryCreate) SaveX(ctx context.Context) *AnalysisHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisHistoryCreate) defaults() {
	if _, ok := _c.mutation.AnalyzedAt(); !ok {
		v := analysishistory.DefaultAnalyzedAt()
		_c.mutation.SetAnalyzedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisHistoryCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "AnalysisHistory.ticket_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnalysisHistory.session_id"`)}
	}
	if _, ok := _c.mutation.Criticality(); !ok {
		return &ValidationError{Name: "criticality", err: errors.New(`ent: missing required field "AnalysisHistory.criticality"`)}
	}
	if v, ok := _c.mutation.Criticality(); ok {
		if err := analysishistory.CriticalityValidator(v); err != nil {
			return &ValidationError{Name: "criticality", err: fmt.Errorf(`ent: validator failed for field "AnalysisHistory.criticality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnalyzedAt(); !ok {
		return &ValidationError{Name: "analyzed_at", err: errors.New(`ent: missing required field "AnalysisHistory.analyzed_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "AnalysisHistory.ticket"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AnalysisHistory.session"`)}
	}
	return nil
}

func (_c *AnalysisHistoryCreate) sqlSave(ctx context.Context) (*AnalysisHistory, error) {
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

func (_c *AnalysisHistoryCreate) createSpec() (*AnalysisHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysishistory.Table, sqlgraph.NewFieldSpec(analysishistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Criticality(); ok {
		_spec.SetField(analysishistory.FieldCriticality, field.TypeEnum, value)
		_node.Criticality = value
	}
	if value, ok := _c.mutation.Justification(); ok {
		_spec.SetField(analysishistory.FieldJustification, field.TypeJSON, value)
		_node.Justification = value
	}
	if value, ok := _c.mutation.AnalyzedAt(); ok {
		_spec.SetField(analysishistory.FieldAnalyzedAt, field.TypeTime, value)
		_node.AnalyzedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysishistory.TicketTable,
			Columns: []string{analysishistory.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TicketID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysishistory.SessionTable,
			Columns: []string{analysishistory.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisHistoryCreateBulk is the builder for creating many AnalysisHistory entities in bulk.
type AnalysisHistoryCreateBulk struct {
	config
	err      error
	builders []*AnalysisHistoryCreate
}

// Save creates the AnalysisHistory entities in the database.
func (_c *AnalysisHistoryCreateBulk) Save(ctx context.Context) ([]*AnalysisHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisHistoryMutation)
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
func (_c *AnalysisHistoryCreateBulk) SaveX(ctx context.Context) []*AnalysisHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
