// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/boardconfig"
	"github.com/talan-labs/cardtriage/ent/boardscope"
	"github.com/talan-labs/cardtriage/ent/documentchunk"
	"github.com/talan-labs/cardtriage/ent/predicate"
	"github.com/talan-labs/cardtriage/ent/ticket"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisHistory = "AnalysisHistory"
	TypeAnalysisSession = "AnalysisSession"
	TypeBoardConfig     = "BoardConfig"
	TypeBoardScope      = "BoardScope"
	TypeDocumentChunk   = "DocumentChunk"
	TypeTicket          = "Ticket"
)

// AnalysisHistoryMutation represents an operation that mutates the AnalysisHistory nodes in the graph.
type AnalysisHistoryMutation struct {
	config
	op             Op
	typ            string
	id             *int
	criticality    *analysishistory.Criticality
	justification  *map[string]interface{}
	analyzed_at    *time.Time
	clearedFields  map[string]struct{}
	ticket         *int
	clearedticket  bool
	session        *int
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*AnalysisHistory, error)
	predicates     []predicate.AnalysisHistory
}

var _ ent.Mutation = (*AnalysisHistoryMutation)(nil)

// analysishistoryOption allows management of the mutation configuration using functional options.
type analysishistoryOption func(*AnalysisHistoryMutation)

// newAnalysisHistoryMutation creates new mutation for the AnalysisHistory entity.
func newAnalysisHistoryMutation(c config, op Op, opts ...analysishistoryOption) *AnalysisHistoryMutation {
	m := &AnalysisHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisHistoryID sets the ID field of the mutation.
func withAnalysisHistoryID(id int) analysishistoryOption {
	return func(m *AnalysisHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisHistory
		)
		m.oldValue = func(ctx context.Context) (*AnalysisHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisHistory sets the old AnalysisHistory of the mutation.
func withAnalysisHistory(node *AnalysisHistory) analysishistoryOption {
	return func(m *AnalysisHistoryMutation) {
		m.oldValue = func(context.Context) (*AnalysisHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *AnalysisHistoryMutation) SetTicketID(i int) {
	m.ticket = &i
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *AnalysisHistoryMutation) TicketID() (r int, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the AnalysisHistory entity.
// If the AnalysisHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisHistoryMutation) OldTicketID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *AnalysisHistoryMutation) ResetTicketID() {
	m.ticket = nil
}

// SetSessionID sets the "session_id" field.
func (m *AnalysisHistoryMutation) SetSessionID(i int) {
	m.session = &i
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnalysisHistoryMutation) SessionID() (r int, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnalysisHistory entity.
// If the AnalysisHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisHistoryMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnalysisHistoryMutation) ResetSessionID() {
	m.session = nil
}

// SetCriticality sets the "criticality" field.
func (m *AnalysisHistoryMutation) SetCriticality(a analysishistory.Criticality) {
	m.criticality = &a
}

// Criticality returns the value of the "criticality" field in the mutation.
func (m *AnalysisHistoryMutation) Criticality() (r analysishistory.Criticality, exists bool) {
	v := m.criticality
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticality returns the old "criticality" field's value of the AnalysisHistory entity.
// If the AnalysisHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisHistoryMutation) OldCriticality(ctx context.Context) (v analysishistory.Criticality, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticality: %w", err)
	}
	return oldValue.Criticality, nil
}

// ResetCriticality resets all changes to the "criticality" field.
func (m *AnalysisHistoryMutation) ResetCriticality() {
	m.criticality = nil
}

// SetJustification sets the "justification" field.
func (m *AnalysisHistoryMutation) SetJustification(value map[string]interface{}) {
	m.justification = &value
}

// Justification returns the value of the "justification" field in the mutation.
func (m *AnalysisHistoryMutation) Justification() (r map[string]interface{}, exists bool) {
	v := m.justification
	if v == nil {
		return
	}
	return *v, true
}

// OldJustification returns the old "justification" field's value of the AnalysisHistory entity.
// If the AnalysisHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisHistoryMutation) OldJustification(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJustification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJustification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJustification: %w", err)
	}
	return oldValue.Justification, nil
}

// ClearJustification clears the value of the "justification" field.
func (m *AnalysisHistoryMutation) ClearJustification() {
	m.justification = nil
	m.clearedFields[analysishistory.FieldJustification] = struct{}{}
}

// JustificationCleared returns if the "justification" field was cleared in this mutation.
func (m *AnalysisHistoryMutation) JustificationCleared() bool {
	_, ok := m.clearedFields[analysishistory.FieldJustification]
	return ok
}

// ResetJustification resets all changes to the "justification" field.
func (m *AnalysisHistoryMutation) ResetJustification() {
	m.justification = nil
	delete(m.clearedFields, analysishistory.FieldJustification)
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (m *AnalysisHistoryMutation) SetAnalyzedAt(t time.Time) {
	m.analyzed_at = &t
}

// AnalyzedAt returns the value of the "analyzed_at" field in the mutation.
func (m *AnalysisHistoryMutation) AnalyzedAt() (r time.Time, exists bool) {
	v := m.analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzedAt returns the old "analyzed_at" field's value of the AnalysisHistory entity.
// If the AnalysisHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisHistoryMutation) OldAnalyzedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzedAt: %w", err)
	}
	return oldValue.AnalyzedAt, nil
}

// ResetAnalyzedAt resets all changes to the "analyzed_at" field.
func (m *AnalysisHistoryMutation) ResetAnalyzedAt() {
	m.analyzed_at = nil
}

// ClearTicket clears the "ticket" edge to the Ticket entity.
func (m *AnalysisHistoryMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[analysishistory.FieldTicketID] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the Ticket entity was cleared.
func (m *AnalysisHistoryMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *AnalysisHistoryMutation) TicketIDs() (ids []int) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *AnalysisHistoryMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// ClearSession clears the "session" edge to the AnalysisSession entity.
func (m *AnalysisHistoryMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[analysishistory.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AnalysisSession entity was cleared.
func (m *AnalysisHistoryMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AnalysisHistoryMutation) SessionIDs() (ids []int) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AnalysisHistoryMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AnalysisHistoryMutation builder.
func (m *AnalysisHistoryMutation) Where(ps ...predicate.AnalysisHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisHistory).
func (m *AnalysisHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisHistoryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.ticket != nil {
		fields = append(fields, analysishistory.FieldTicketID)
	}
	if m.session != nil {
		fields = append(fields, analysishistory.FieldSessionID)
	}
	if m.criticality != nil {
		fields = append(fields, analysishistory.FieldCriticality)
	}
	if m.justification != nil {
		fields = append(fields, analysishistory.FieldJustification)
	}
	if m.analyzed_at != nil {
		fields = append(fields, analysishistory.FieldAnalyzedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysishistory.FieldTicketID:
		return m.TicketID()
	case analysishistory.FieldSessionID:
		return m.SessionID()
	case analysishistory.FieldCriticality:
		return m.Criticality()
	case analysishistory.FieldJustification:
		return m.Justification()
	case analysishistory.FieldAnalyzedAt:
		return m.AnalyzedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysishistory.FieldTicketID:
		return m.OldTicketID(ctx)
	case analysishistory.FieldSessionID:
		return m.OldSessionID(ctx)
	case analysishistory.FieldCriticality:
		return m.OldCriticality(ctx)
	case analysishistory.FieldJustification:
		return m.OldJustification(ctx)
	case analysishistory.FieldAnalyzedAt:
		return m.OldAnalyzedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysishistory.FieldTicketID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case analysishistory.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case analysishistory.FieldCriticality:
		v, ok := value.(analysishistory.Criticality)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticality(v)
		return nil
	case analysishistory.FieldJustification:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJustification(v)
		return nil
	case analysishistory.FieldAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisHistoryMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysishistory.FieldJustification) {
		fields = append(fields, analysishistory.FieldJustification)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisHistoryMutation) ClearField(name string) error {
	switch name {
	case analysishistory.FieldJustification:
		m.ClearJustification()
		return nil
	}
	return fmt.Errorf("unknown AnalysisHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisHistoryMutation) ResetField(name string) error {
	switch name {
	case analysishistory.FieldTicketID:
		m.ResetTicketID()
		return nil
	case analysishistory.FieldSessionID:
		m.ResetSessionID()
		return nil
	case analysishistory.FieldCriticality:
		m.ResetCriticality()
		return nil
	case analysishistory.FieldJustification:
		m.ResetJustification()
		return nil
	case analysishistory.FieldAnalyzedAt:
		m.ResetAnalyzedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.ticket != nil {
		edges = append(edges, analysishistory.EdgeTicket)
	}
	if m.session != nil {
		edges = append(edges, analysishistory.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysishistory.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	case analysishistory.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedticket {
		edges = append(edges, analysishistory.EdgeTicket)
	}
	if m.clearedsession {
		edges = append(edges, analysishistory.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case analysishistory.EdgeTicket:
		return m.clearedticket
	case analysishistory.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisHistoryMutation) ClearEdge(name string) error {
	switch name {
	case analysishistory.EdgeTicket:
		m.ClearTicket()
		return nil
	case analysishistory.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AnalysisHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisHistoryMutation) ResetEdge(name string) error {
	switch name {
	case analysishistory.EdgeTicket:
		m.ResetTicket()
		return nil
	case analysishistory.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AnalysisHistory edge %s", name)
}

// AnalysisSessionMutation represents an operation that mutates the AnalysisSession nodes in the graph.
type AnalysisSessionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	reference        *string
	reanalyse        *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	scopes           map[int]struct{}
	removedscopes    map[int]struct{}
	clearedscopes    bool
	histories        map[int]struct{}
	removedhistories map[int]struct{}
	clearedhistories bool
	done             bool
	oldValue         func(context.Context) (*AnalysisSession, error)
	predicates       []predicate.AnalysisSession
}

var _ ent.Mutation = (*AnalysisSessionMutation)(nil)

// analysissessionOption allows management of the mutation configuration using functional options.
type analysissessionOption func(*AnalysisSessionMutation)

// newAnalysisSessionMutation creates new mutation for the AnalysisSession entity.
func newAnalysisSessionMutation(c config, op Op, opts ...analysissessionOption) *AnalysisSessionMutation {
	m := &AnalysisSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisSessionID sets the ID field of the mutation.
func withAnalysisSessionID(id int) analysissessionOption {
	return func(m *AnalysisSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisSession
		)
		m.oldValue = func(ctx context.Context) (*AnalysisSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisSession sets the old AnalysisSession of the mutation.
func withAnalysisSession(node *AnalysisSession) analysissessionOption {
	return func(m *AnalysisSessionMutation) {
		m.oldValue = func(context.Context) (*AnalysisSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReference sets the "reference" field.
func (m *AnalysisSessionMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *AnalysisSessionMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ResetReference resets all changes to the "reference" field.
func (m *AnalysisSessionMutation) ResetReference() {
	m.reference = nil
}

// SetReanalyse sets the "reanalyse" field.
func (m *AnalysisSessionMutation) SetReanalyse(b bool) {
	m.reanalyse = &b
}

// Reanalyse returns the value of the "reanalyse" field in the mutation.
func (m *AnalysisSessionMutation) Reanalyse() (r bool, exists bool) {
	v := m.reanalyse
	if v == nil {
		return
	}
	return *v, true
}

// OldReanalyse returns the old "reanalyse" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldReanalyse(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReanalyse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReanalyse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReanalyse: %w", err)
	}
	return oldValue.Reanalyse, nil
}

// ResetReanalyse resets all changes to the "reanalyse" field.
func (m *AnalysisSessionMutation) ResetReanalyse() {
	m.reanalyse = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnalysisSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnalysisSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AnalysisSession entity.
// If the AnalysisSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnalysisSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddScopeIDs adds the "scopes" edge to the BoardScope entity by ids.
func (m *AnalysisSessionMutation) AddScopeIDs(ids ...int) {
	if m.scopes == nil {
		m.scopes = make(map[int]struct{})
	}
	for i := range ids {
		m.scopes[ids[i]] = struct{}{}
	}
}

// ClearScopes clears the "scopes" edge to the BoardScope entity.
func (m *AnalysisSessionMutation) ClearScopes() {
	m.clearedscopes = true
}

// ScopesCleared reports if the "scopes" edge to the BoardScope entity was cleared.
func (m *AnalysisSessionMutation) ScopesCleared() bool {
	return m.clearedscopes
}

// RemoveScopeIDs removes the "scopes" edge to the BoardScope entity by IDs.
func (m *AnalysisSessionMutation) RemoveScopeIDs(ids ...int) {
	if m.removedscopes == nil {
		m.removedscopes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.scopes, ids[i])
		m.removedscopes[ids[i]] = struct{}{}
	}
}

// RemovedScopes returns the removed IDs of the "scopes" edge to the BoardScope entity.
func (m *AnalysisSessionMutation) RemovedScopesIDs() (ids []int) {
	for id := range m.removedscopes {
		ids = append(ids, id)
	}
	return
}

// ScopesIDs returns the "scopes" edge IDs in the mutation.
func (m *AnalysisSessionMutation) ScopesIDs() (ids []int) {
	for id := range m.scopes {
		ids = append(ids, id)
	}
	return
}

// ResetScopes resets all changes to the "scopes" edge.
func (m *AnalysisSessionMutation) ResetScopes() {
	m.scopes = nil
	m.clearedscopes = false
	m.removedscopes = nil
}

// AddHistoryIDs adds the "histories" edge to the AnalysisHistory entity by ids.
func (m *AnalysisSessionMutation) AddHistoryIDs(ids ...int) {
	if m.histories == nil {
		m.histories = make(map[int]struct{})
	}
	for i := range ids {
		m.histories[ids[i]] = struct{}{}
	}
}

// ClearHistories clears the "histories" edge to the AnalysisHistory entity.
func (m *AnalysisSessionMutation) ClearHistories() {
	m.clearedhistories = true
}

// HistoriesCleared reports if the "histories" edge to the AnalysisHistory entity was cleared.
func (m *AnalysisSessionMutation) HistoriesCleared() bool {
	return m.clearedhistories
}

// RemoveHistoryIDs removes the "histories" edge to the AnalysisHistory entity by IDs.
func (m *AnalysisSessionMutation) RemoveHistoryIDs(ids ...int) {
	if m.removedhistories == nil {
		m.removedhistories = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.histories, ids[i])
		m.removedhistories[ids[i]] = struct{}{}
	}
}

// RemovedHistories returns the removed IDs of the "histories" edge to the AnalysisHistory entity.
func (m *AnalysisSessionMutation) RemovedHistoriesIDs() (ids []int) {
	for id := range m.removedhistories {
		ids = append(ids, id)
	}
	return
}

// HistoriesIDs returns the "histories" edge IDs in the mutation.
func (m *AnalysisSessionMutation) HistoriesIDs() (ids []int) {
	for id := range m.histories {
		ids = append(ids, id)
	}
	return
}

// ResetHistories resets all changes to the "histories" edge.
func (m *AnalysisSessionMutation) ResetHistories() {
	m.histories = nil
	m.clearedhistories = false
	m.removedhistories = nil
}

// Where appends a list predicates to the AnalysisSessionMutation builder.
func (m *AnalysisSessionMutation) Where(ps ...predicate.AnalysisSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisSession).
func (m *AnalysisSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisSessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.reference != nil {
		fields = append(fields, analysissession.FieldReference)
	}
	if m.reanalyse != nil {
		fields = append(fields, analysissession.FieldReanalyse)
	}
	if m.created_at != nil {
		fields = append(fields, analysissession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, analysissession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysissession.FieldReference:
		return m.Reference()
	case analysissession.FieldReanalyse:
		return m.Reanalyse()
	case analysissession.FieldCreatedAt:
		return m.CreatedAt()
	case analysissession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysissession.FieldReference:
		return m.OldReference(ctx)
	case analysissession.FieldReanalyse:
		return m.OldReanalyse(ctx)
	case analysissession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysissession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysissession.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	case analysissession.FieldReanalyse:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReanalyse(v)
		return nil
	case analysissession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysissession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalysisSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisSessionMutation) ResetField(name string) error {
	switch name {
	case analysissession.FieldReference:
		m.ResetReference()
		return nil
	case analysissession.FieldReanalyse:
		m.ResetReanalyse()
		return nil
	case analysissession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysissession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.scopes != nil {
		edges = append(edges, analysissession.EdgeScopes)
	}
	if m.histories != nil {
		edges = append(edges, analysissession.EdgeHistories)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysissession.EdgeScopes:
		ids := make([]ent.Value, 0, len(m.scopes))
		for id := range m.scopes {
			ids = append(ids, id)
		}
		return ids
	case analysissession.EdgeHistories:
		ids := make([]ent.Value, 0, len(m.histories))
		for id := range m.histories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedscopes != nil {
		edges = append(edges, analysissession.EdgeScopes)
	}
	if m.removedhistories != nil {
		edges = append(edges, analysissession.EdgeHistories)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case analysissession.EdgeScopes:
		ids := make([]ent.Value, 0, len(m.removedscopes))
		for id := range m.removedscopes {
			ids = append(ids, id)
		}
		return ids
	case analysissession.EdgeHistories:
		ids := make([]ent.Value, 0, len(m.removedhistories))
		for id := range m.removedhistories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedscopes {
		edges = append(edges, analysissession.EdgeScopes)
	}
	if m.clearedhistories {
		edges = append(edges, analysissession.EdgeHistories)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case analysissession.EdgeScopes:
		return m.clearedscopes
	case analysissession.EdgeHistories:
		return m.clearedhistories
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisSessionMutation) ResetEdge(name string) error {
	switch name {
	case analysissession.EdgeScopes:
		m.ResetScopes()
		return nil
	case analysissession.EdgeHistories:
		m.ResetHistories()
		return nil
	}
	return fmt.Errorf("unknown AnalysisSession edge %s", name)
}

// BoardConfigMutation represents an operation that mutates the BoardConfig nodes in the graph.
type BoardConfigMutation struct {
	config
	op            Op
	typ           string
	id            *int
	data          *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BoardConfig, error)
	predicates    []predicate.BoardConfig
}

var _ ent.Mutation = (*BoardConfigMutation)(nil)

// boardconfigOption allows management of the mutation configuration using functional options.
type boardconfigOption func(*BoardConfigMutation)

// newBoardConfigMutation creates new mutation for the BoardConfig entity.
func newBoardConfigMutation(c config, op Op, opts ...boardconfigOption) *BoardConfigMutation {
	m := &BoardConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeBoardConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBoardConfigID sets the ID field of the mutation.
func withBoardConfigID(id int) boardconfigOption {
	return func(m *BoardConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *BoardConfig
		)
		m.oldValue = func(ctx context.Context) (*BoardConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BoardConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBoardConfig sets the old BoardConfig of the mutation.
func withBoardConfig(node *BoardConfig) boardconfigOption {
	return func(m *BoardConfigMutation) {
		m.oldValue = func(context.Context) (*BoardConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BoardConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BoardConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BoardConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BoardConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BoardConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetData sets the "data" field.
func (m *BoardConfigMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *BoardConfigMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the BoardConfig entity.
// If the BoardConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardConfigMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *BoardConfigMutation) ResetData() {
	m.data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BoardConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BoardConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BoardConfig entity.
// If the BoardConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BoardConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BoardConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BoardConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BoardConfig entity.
// If the BoardConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BoardConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BoardConfigMutation builder.
func (m *BoardConfigMutation) Where(ps ...predicate.BoardConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BoardConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BoardConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BoardConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BoardConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BoardConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BoardConfig).
func (m *BoardConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BoardConfigMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.data != nil {
		fields = append(fields, boardconfig.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, boardconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, boardconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BoardConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case boardconfig.FieldData:
		return m.Data()
	case boardconfig.FieldCreatedAt:
		return m.CreatedAt()
	case boardconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BoardConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case boardconfig.FieldData:
		return m.OldData(ctx)
	case boardconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case boardconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BoardConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoardConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case boardconfig.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case boardconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case boardconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BoardConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BoardConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BoardConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoardConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BoardConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BoardConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BoardConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BoardConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BoardConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BoardConfigMutation) ResetField(name string) error {
	switch name {
	case boardconfig.FieldData:
		m.ResetData()
		return nil
	case boardconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case boardconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BoardConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BoardConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BoardConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BoardConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BoardConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BoardConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BoardConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BoardConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BoardConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BoardConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BoardConfig edge %s", name)
}

// BoardScopeMutation represents an operation that mutates the BoardScope nodes in the graph.
type BoardScopeMutation struct {
	config
	op             Op
	typ            string
	id             *int
	platform       *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *int
	clearedsession bool
	tickets        map[int]struct{}
	removedtickets map[int]struct{}
	clearedtickets bool
	done           bool
	oldValue       func(context.Context) (*BoardScope, error)
	predicates     []predicate.BoardScope
}

var _ ent.Mutation = (*BoardScopeMutation)(nil)

// boardscopeOption allows management of the mutation configuration using functional options.
type boardscopeOption func(*BoardScopeMutation)

// newBoardScopeMutation creates new mutation for the BoardScope entity.
func newBoardScopeMutation(c config, op Op, opts ...boardscopeOption) *BoardScopeMutation {
	m := &BoardScopeMutation{
		config:        c,
		op:            op,
		typ:           TypeBoardScope,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBoardScopeID sets the ID field of the mutation.
func withBoardScopeID(id int) boardscopeOption {
	return func(m *BoardScopeMutation) {
		var (
			err   error
			once  sync.Once
			value *BoardScope
		)
		m.oldValue = func(ctx context.Context) (*BoardScope, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BoardScope.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBoardScope sets the old BoardScope of the mutation.
func withBoardScope(node *BoardScope) boardscopeOption {
	return func(m *BoardScopeMutation) {
		m.oldValue = func(context.Context) (*BoardScope, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BoardScopeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BoardScopeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BoardScopeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BoardScopeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BoardScope.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *BoardScopeMutation) SetSessionID(i int) {
	m.session = &i
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *BoardScopeMutation) SessionID() (r int, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the BoardScope entity.
// If the BoardScope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardScopeMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *BoardScopeMutation) ResetSessionID() {
	m.session = nil
}

// SetPlatform sets the "platform" field.
func (m *BoardScopeMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *BoardScopeMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the BoardScope entity.
// If the BoardScope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardScopeMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *BoardScopeMutation) ResetPlatform() {
	m.platform = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BoardScopeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BoardScopeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BoardScope entity.
// If the BoardScope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardScopeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BoardScopeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AnalysisSession entity.
func (m *BoardScopeMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[boardscope.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AnalysisSession entity was cleared.
func (m *BoardScopeMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *BoardScopeMutation) SessionIDs() (ids []int) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *BoardScopeMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by ids.
func (m *BoardScopeMutation) AddTicketIDs(ids ...int) {
	if m.tickets == nil {
		m.tickets = make(map[int]struct{})
	}
	for i := range ids {
		m.tickets[ids[i]] = struct{}{}
	}
}

// ClearTickets clears the "tickets" edge to the Ticket entity.
func (m *BoardScopeMutation) ClearTickets() {
	m.clearedtickets = true
}

// TicketsCleared reports if the "tickets" edge to the Ticket entity was cleared.
func (m *BoardScopeMutation) TicketsCleared() bool {
	return m.clearedtickets
}

// RemoveTicketIDs removes the "tickets" edge to the Ticket entity by IDs.
func (m *BoardScopeMutation) RemoveTicketIDs(ids ...int) {
	if m.removedtickets == nil {
		m.removedtickets = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tickets, ids[i])
		m.removedtickets[ids[i]] = struct{}{}
	}
}

// RemovedTickets returns the removed IDs of the "tickets" edge to the Ticket entity.
func (m *BoardScopeMutation) RemovedTicketsIDs() (ids []int) {
	for id := range m.removedtickets {
		ids = append(ids, id)
	}
	return
}

// TicketsIDs returns the "tickets" edge IDs in the mutation.
func (m *BoardScopeMutation) TicketsIDs() (ids []int) {
	for id := range m.tickets {
		ids = append(ids, id)
	}
	return
}

// ResetTickets resets all changes to the "tickets" edge.
func (m *BoardScopeMutation) ResetTickets() {
	m.tickets = nil
	m.clearedtickets = false
	m.removedtickets = nil
}

// Where appends a list predicates to the BoardScopeMutation builder.
func (m *BoardScopeMutation) Where(ps ...predicate.BoardScope) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BoardScopeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BoardScopeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BoardScope, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BoardScopeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BoardScopeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BoardScope).
func (m *BoardScopeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BoardScopeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.session != nil {
		fields = append(fields, boardscope.FieldSessionID)
	}
	if m.platform != nil {
		fields = append(fields, boardscope.FieldPlatform)
	}
	if m.created_at != nil {
		fields = append(fields, boardscope.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BoardScopeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case boardscope.FieldSessionID:
		return m.SessionID()
	case boardscope.FieldPlatform:
		return m.Platform()
	case boardscope.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BoardScopeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case boardscope.FieldSessionID:
		return m.OldSessionID(ctx)
	case boardscope.FieldPlatform:
		return m.OldPlatform(ctx)
	case boardscope.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BoardScope field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoardScopeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case boardscope.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case boardscope.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case boardscope.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BoardScope field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BoardScopeMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BoardScopeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoardScopeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BoardScope numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BoardScopeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BoardScopeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BoardScopeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BoardScope nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BoardScopeMutation) ResetField(name string) error {
	switch name {
	case boardscope.FieldSessionID:
		m.ResetSessionID()
		return nil
	case boardscope.FieldPlatform:
		m.ResetPlatform()
		return nil
	case boardscope.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BoardScope field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BoardScopeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, boardscope.EdgeSession)
	}
	if m.tickets != nil {
		edges = append(edges, boardscope.EdgeTickets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BoardScopeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case boardscope.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case boardscope.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.tickets))
		for id := range m.tickets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BoardScopeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtickets != nil {
		edges = append(edges, boardscope.EdgeTickets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BoardScopeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case boardscope.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.removedtickets))
		for id := range m.removedtickets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BoardScopeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, boardscope.EdgeSession)
	}
	if m.clearedtickets {
		edges = append(edges, boardscope.EdgeTickets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BoardScopeMutation) EdgeCleared(name string) bool {
	switch name {
	case boardscope.EdgeSession:
		return m.clearedsession
	case boardscope.EdgeTickets:
		return m.clearedtickets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BoardScopeMutation) ClearEdge(name string) error {
	switch name {
	case boardscope.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown BoardScope unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BoardScopeMutation) ResetEdge(name string) error {
	switch name {
	case boardscope.EdgeSession:
		m.ResetSession()
		return nil
	case boardscope.EdgeTickets:
		m.ResetTickets()
		return nil
	}
	return fmt.Errorf("unknown BoardScope edge %s", name)
}

// DocumentChunkMutation represents an operation that mutates the DocumentChunk nodes in the graph.
type DocumentChunkMutation struct {
	config
	op              Op
	typ             string
	id              *int
	document_id     *string
	filename        *string
	chunk_index     *int
	addchunk_index  *int
	total_chunks    *int
	addtotal_chunks *int
	content         *string
	content_hash    *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*DocumentChunk, error)
	predicates      []predicate.DocumentChunk
}

var _ ent.Mutation = (*DocumentChunkMutation)(nil)

// documentchunkOption allows management of the mutation configuration using functional options.
type documentchunkOption func(*DocumentChunkMutation)

// newDocumentChunkMutation creates new mutation for the DocumentChunk entity.
func newDocumentChunkMutation(c config, op Op, opts ...documentchunkOption) *DocumentChunkMutation {
	m := &DocumentChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentChunkID sets the ID field of the mutation.
func withDocumentChunkID(id int) documentchunkOption {
	return func(m *DocumentChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentChunk
		)
		m.oldValue = func(ctx context.Context) (*DocumentChunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentChunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentChunk sets the old DocumentChunk of the mutation.
func withDocumentChunk(node *DocumentChunk) documentchunkOption {
	return func(m *DocumentChunkMutation) {
		m.oldValue = func(context.Context) (*DocumentChunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentChunkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentChunkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentChunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentChunkMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentChunkMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentChunkMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentChunkMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentChunkMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentChunkMutation) ResetFilename() {
	m.filename = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *DocumentChunkMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *DocumentChunkMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *DocumentChunkMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *DocumentChunkMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *DocumentChunkMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetTotalChunks sets the "total_chunks" field.
func (m *DocumentChunkMutation) SetTotalChunks(i int) {
	m.total_chunks = &i
	m.addtotal_chunks = nil
}

// TotalChunks returns the value of the "total_chunks" field in the mutation.
func (m *DocumentChunkMutation) TotalChunks() (r int, exists bool) {
	v := m.total_chunks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChunks returns the old "total_chunks" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldTotalChunks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChunks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChunks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChunks: %w", err)
	}
	return oldValue.TotalChunks, nil
}

// AddTotalChunks adds i to the "total_chunks" field.
func (m *DocumentChunkMutation) AddTotalChunks(i int) {
	if m.addtotal_chunks != nil {
		*m.addtotal_chunks += i
	} else {
		m.addtotal_chunks = &i
	}
}

// AddedTotalChunks returns the value that was added to the "total_chunks" field in this mutation.
func (m *DocumentChunkMutation) AddedTotalChunks() (r int, exists bool) {
	v := m.addtotal_chunks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChunks resets all changes to the "total_chunks" field.
func (m *DocumentChunkMutation) ResetTotalChunks() {
	m.total_chunks = nil
	m.addtotal_chunks = nil
}

// SetContent sets the "content" field.
func (m *DocumentChunkMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DocumentChunkMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DocumentChunkMutation) ResetContent() {
	m.content = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentChunkMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentChunkMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentChunkMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentChunkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentChunkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentChunkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DocumentChunkMutation builder.
func (m *DocumentChunkMutation) Where(ps ...predicate.DocumentChunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentChunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentChunk).
func (m *DocumentChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentChunkMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.document_id != nil {
		fields = append(fields, documentchunk.FieldDocumentID)
	}
	if m.filename != nil {
		fields = append(fields, documentchunk.FieldFilename)
	}
	if m.chunk_index != nil {
		fields = append(fields, documentchunk.FieldChunkIndex)
	}
	if m.total_chunks != nil {
		fields = append(fields, documentchunk.FieldTotalChunks)
	}
	if m.content != nil {
		fields = append(fields, documentchunk.FieldContent)
	}
	if m.content_hash != nil {
		fields = append(fields, documentchunk.FieldContentHash)
	}
	if m.created_at != nil {
		fields = append(fields, documentchunk.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentchunk.FieldDocumentID:
		return m.DocumentID()
	case documentchunk.FieldFilename:
		return m.Filename()
	case documentchunk.FieldChunkIndex:
		return m.ChunkIndex()
	case documentchunk.FieldTotalChunks:
		return m.TotalChunks()
	case documentchunk.FieldContent:
		return m.Content()
	case documentchunk.FieldContentHash:
		return m.ContentHash()
	case documentchunk.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentchunk.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentchunk.FieldFilename:
		return m.OldFilename(ctx)
	case documentchunk.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case documentchunk.FieldTotalChunks:
		return m.OldTotalChunks(ctx)
	case documentchunk.FieldContent:
		return m.OldContent(ctx)
	case documentchunk.FieldContentHash:
		return m.OldContentHash(ctx)
	case documentchunk.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentChunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentchunk.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentchunk.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case documentchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case documentchunk.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChunks(v)
		return nil
	case documentchunk.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case documentchunk.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case documentchunk.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentChunkMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, documentchunk.FieldChunkIndex)
	}
	if m.addtotal_chunks != nil {
		fields = append(fields, documentchunk.FieldTotalChunks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentchunk.FieldChunkIndex:
		return m.AddedChunkIndex()
	case documentchunk.FieldTotalChunks:
		return m.AddedTotalChunks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case documentchunk.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChunks(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentChunkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentChunkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentChunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentChunkMutation) ResetField(name string) error {
	switch name {
	case documentchunk.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentchunk.FieldFilename:
		m.ResetFilename()
		return nil
	case documentchunk.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case documentchunk.FieldTotalChunks:
		m.ResetTotalChunks()
		return nil
	case documentchunk.FieldContent:
		m.ResetContent()
		return nil
	case documentchunk.FieldContentHash:
		m.ResetContentHash()
		return nil
	case documentchunk.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentChunkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentChunkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentChunkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DocumentChunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentChunkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DocumentChunk edge %s", name)
}

// TicketMutation represents an operation that mutates the Ticket nodes in the graph.
type TicketMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	external_id        *string
	board_name         *string
	metadata           *map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	board_scope        *int
	clearedboard_scope bool
	histories          map[int]struct{}
	removedhistories   map[int]struct{}
	clearedhistories   bool
	done               bool
	oldValue           func(context.Context) (*Ticket, error)
	predicates         []predicate.Ticket
}

var _ ent.Mutation = (*TicketMutation)(nil)

// ticketOption allows management of the mutation configuration using functional options.
type ticketOption func(*TicketMutation)

// newTicketMutation creates new mutation for the Ticket entity.
func newTicketMutation(c config, op Op, opts ...ticketOption) *TicketMutation {
	m := &TicketMutation{
		config:        c,
		op:            op,
		typ:           TypeTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketID sets the ID field of the mutation.
func withTicketID(id int) ticketOption {
	return func(m *TicketMutation) {
		var (
			err   error
			once  sync.Once
			value *Ticket
		)
		m.oldValue = func(ctx context.Context) (*Ticket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ticket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicket sets the old Ticket of the mutation.
func withTicket(node *Ticket) ticketOption {
	return func(m *TicketMutation) {
		m.oldValue = func(context.Context) (*Ticket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ticket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *TicketMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *TicketMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *TicketMutation) ResetExternalID() {
	m.external_id = nil
}

// SetBoardScopeID sets the "board_scope_id" field.
func (m *TicketMutation) SetBoardScopeID(i int) {
	m.board_scope = &i
}

// BoardScopeID returns the value of the "board_scope_id" field in the mutation.
func (m *TicketMutation) BoardScopeID() (r int, exists bool) {
	v := m.board_scope
	if v == nil {
		return
	}
	return *v, true
}

// OldBoardScopeID returns the old "board_scope_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldBoardScopeID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoardScopeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoardScopeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoardScopeID: %w", err)
	}
	return oldValue.BoardScopeID, nil
}

// ResetBoardScopeID resets all changes to the "board_scope_id" field.
func (m *TicketMutation) ResetBoardScopeID() {
	m.board_scope = nil
}

// SetBoardName sets the "board_name" field.
func (m *TicketMutation) SetBoardName(s string) {
	m.board_name = &s
}

// BoardName returns the value of the "board_name" field in the mutation.
func (m *TicketMutation) BoardName() (r string, exists bool) {
	v := m.board_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBoardName returns the old "board_name" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldBoardName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoardName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoardName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoardName: %w", err)
	}
	return oldValue.BoardName, nil
}

// ClearBoardName clears the value of the "board_name" field.
func (m *TicketMutation) ClearBoardName() {
	m.board_name = nil
	m.clearedFields[ticket.FieldBoardName] = struct{}{}
}

// BoardNameCleared returns if the "board_name" field was cleared in this mutation.
func (m *TicketMutation) BoardNameCleared() bool {
	_, ok := m.clearedFields[ticket.FieldBoardName]
	return ok
}

// ResetBoardName resets all changes to the "board_name" field.
func (m *TicketMutation) ResetBoardName() {
	m.board_name = nil
	delete(m.clearedFields, ticket.FieldBoardName)
}

// SetMetadata sets the "metadata" field.
func (m *TicketMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TicketMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TicketMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[ticket.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TicketMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[ticket.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TicketMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, ticket.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBoardScope clears the "board_scope" edge to the BoardScope entity.
func (m *TicketMutation) ClearBoardScope() {
	m.clearedboard_scope = true
	m.clearedFields[ticket.FieldBoardScopeID] = struct{}{}
}

// BoardScopeCleared reports if the "board_scope" edge to the BoardScope entity was cleared.
func (m *TicketMutation) BoardScopeCleared() bool {
	return m.clearedboard_scope
}

// BoardScopeIDs returns the "board_scope" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BoardScopeID instead. It exists only for internal usage by the builders.
func (m *TicketMutation) BoardScopeIDs() (ids []int) {
	if id := m.board_scope; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBoardScope resets all changes to the "board_scope" edge.
func (m *TicketMutation) ResetBoardScope() {
	m.board_scope = nil
	m.clearedboard_scope = false
}

// AddHistoryIDs adds the "histories" edge to the AnalysisHistory entity by ids.
func (m *TicketMutation) AddHistoryIDs(ids ...int) {
	if m.histories == nil {
		m.histories = make(map[int]struct{})
	}
	for i := range ids {
		m.histories[ids[i]] = struct{}{}
	}
}

// ClearHistories clears the "histories" edge to the AnalysisHistory entity.
func (m *TicketMutation) ClearHistories() {
	m.clearedhistories = true
}

// HistoriesCleared reports if the "histories" edge to the AnalysisHistory entity was cleared.
func (m *TicketMutation) HistoriesCleared() bool {
	return m.clearedhistories
}

// RemoveHistoryIDs removes the "histories" edge to the AnalysisHistory entity by IDs.
func (m *TicketMutation) RemoveHistoryIDs(ids ...int) {
	if m.removedhistories == nil {
		m.removedhistories = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.histories, ids[i])
		m.removedhistories[ids[i]] = struct{}{}
	}
}

// RemovedHistories returns the removed IDs of the "histories" edge to the AnalysisHistory entity.
func (m *TicketMutation) RemovedHistoriesIDs() (ids []int) {
	for id := range m.removedhistories {
		ids = append(ids, id)
	}
	return
}

// HistoriesIDs returns the "histories" edge IDs in the mutation.
func (m *TicketMutation) HistoriesIDs() (ids []int) {
	for id := range m.histories {
		ids = append(ids, id)
	}
	return
}

// ResetHistories resets all changes to the "histories" edge.
func (m *TicketMutation) ResetHistories() {
	m.histories = nil
	m.clearedhistories = false
	m.removedhistories = nil
}

// Where appends a list predicates to the TicketMutation builder.
func (m *TicketMutation) Where(ps ...predicate.Ticket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ticket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ticket).
func (m *TicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.external_id != nil {
		fields = append(fields, ticket.FieldExternalID)
	}
	if m.board_scope != nil {
		fields = append(fields, ticket.FieldBoardScopeID)
	}
	if m.board_name != nil {
		fields = append(fields, ticket.FieldBoardName)
	}
	if m.metadata != nil {
		fields = append(fields, ticket.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, ticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ticket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldExternalID:
		return m.ExternalID()
	case ticket.FieldBoardScopeID:
		return m.BoardScopeID()
	case ticket.FieldBoardName:
		return m.BoardName()
	case ticket.FieldMetadata:
		return m.Metadata()
	case ticket.FieldCreatedAt:
		return m.CreatedAt()
	case ticket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticket.FieldExternalID:
		return m.OldExternalID(ctx)
	case ticket.FieldBoardScopeID:
		return m.OldBoardScopeID(ctx)
	case ticket.FieldBoardName:
		return m.OldBoardName(ctx)
	case ticket.FieldMetadata:
		return m.OldMetadata(ctx)
	case ticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ticket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case ticket.FieldBoardScopeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoardScopeID(v)
		return nil
	case ticket.FieldBoardName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoardName(v)
		return nil
	case ticket.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case ticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Ticket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticket.FieldBoardName) {
		fields = append(fields, ticket.FieldBoardName)
	}
	if m.FieldCleared(ticket.FieldMetadata) {
		fields = append(fields, ticket.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMutation) ClearField(name string) error {
	switch name {
	case ticket.FieldBoardName:
		m.ClearBoardName()
		return nil
	case ticket.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Ticket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMutation) ResetField(name string) error {
	switch name {
	case ticket.FieldExternalID:
		m.ResetExternalID()
		return nil
	case ticket.FieldBoardScopeID:
		m.ResetBoardScopeID()
		return nil
	case ticket.FieldBoardName:
		m.ResetBoardName()
		return nil
	case ticket.FieldMetadata:
		m.ResetMetadata()
		return nil
	case ticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.board_scope != nil {
		edges = append(edges, ticket.EdgeBoardScope)
	}
	if m.histories != nil {
		edges = append(edges, ticket.EdgeHistories)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeBoardScope:
		if id := m.board_scope; id != nil {
			return []ent.Value{*id}
		}
	case ticket.EdgeHistories:
		ids := make([]ent.Value, 0, len(m.histories))
		for id := range m.histories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedhistories != nil {
		edges = append(edges, ticket.EdgeHistories)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeHistories:
		ids := make([]ent.Value, 0, len(m.removedhistories))
		for id := range m.removedhistories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedboard_scope {
		edges = append(edges, ticket.EdgeBoardScope)
	}
	if m.clearedhistories {
		edges = append(edges, ticket.EdgeHistories)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMutation) EdgeCleared(name string) bool {
	switch name {
	case ticket.EdgeBoardScope:
		return m.clearedboard_scope
	case ticket.EdgeHistories:
		return m.clearedhistories
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMutation) ClearEdge(name string) error {
	switch name {
	case ticket.EdgeBoardScope:
		m.ClearBoardScope()
		return nil
	}
	return fmt.Errorf("unknown Ticket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMutation) ResetEdge(name string) error {
	switch name {
	case ticket.EdgeBoardScope:
		m.ResetBoardScope()
		return nil
	case ticket.EdgeHistories:
		m.ResetHistories()
		return nil
	}
	return fmt.Errorf("unknown Ticket edge %s", name)
}
