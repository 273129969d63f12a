// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/boardscope"
	"github.com/talan-labs/cardtriage/ent/predicate"
)

// AnalysisSessionQuery is the builder for querying AnalysisSession entities.
type AnalysisSessionQuery struct {
	config
	ctx           *QueryContext
	order         []analysissession.OrderOption
	inters        []Interceptor
	predicates    []predicate.AnalysisSession
	withScopes    *BoardScopeQuery
	withHistories *AnalysisHistoryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AnalysisSessionQuery builder.
func (_q *AnalysisSessionQuery) Where(ps ...predicate.AnalysisSession) *AnalysisSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AnalysisSessionQuery) Limit(limit int) *AnalysisSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AnalysisSessionQuery) Offset(offset int) *AnalysisSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AnalysisSessionQuery) Unique(unique bool) *AnalysisSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AnalysisSessionQuery) Order(o ...analysissession.OrderOption) *AnalysisSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryScopes chains the current query on the "scopes" edge.
func (_q *AnalysisSessionQuery) QueryScopes() *BoardScopeQuery {
	query := (&BoardScopeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(analysissession.Table, analysissession.FieldID, selector),
			sqlgraph.To(boardscope.Table, boardscope.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysissession.ScopesTable, analysissession.ScopesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHistories chains the current query on the "histories" edge.
func (_q *AnalysisSessionQuery) QueryHistories() *AnalysisHistoryQuery {
	query := (&AnalysisHistoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(analysissession.Table, analysissession.FieldID, selector),
			sqlgraph.To(analysishistory.Table, analysishistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysissession.HistoriesTable, analysissession.HistoriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AnalysisSession entity from the query.
// Returns a *NotFoundError when no AnalysisSession was found.
func (_q *AnalysisSessionQuery) First(ctx context.Context) (*AnalysisSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{analysissession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AnalysisSessionQuery) FirstX(ctx context.Context) *AnalysisSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AnalysisSession ID from the query.
// Returns a *NotFoundError when no AnalysisSession ID was found.
func (_q *AnalysisSessionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{analysissession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AnalysisSessionQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AnalysisSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AnalysisSession entity is found.
// Returns a *NotFoundError when no AnalysisSession entities are found.
func (_q *AnalysisSessionQuery) Only(ctx context.Context) (*AnalysisSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{analysissession.Label}
	default:
		return nil, &NotSingularError{analysissession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AnalysisSessionQuery) OnlyX(ctx context.Context) *AnalysisSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AnalysisSession ID in the query.
// Returns a *NotSingularError when more than one AnalysisSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AnalysisSessionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{analysissession.Label}
	default:
		err = &NotSingularError{analysissession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AnalysisSessionQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AnalysisSessions.
func (_q *AnalysisSessionQuery) All(ctx context.Context) ([]*AnalysisSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AnalysisSession, *AnalysisSessionQuery]()
	return withInterceptors[[]*AnalysisSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AnalysisSessionQuery) AllX(ctx context.Context) []*AnalysisSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AnalysisSession IDs.
func (_q *AnalysisSessionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(analysissession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AnalysisSessionQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AnalysisSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AnalysisSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AnalysisSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AnalysisSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AnalysisSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AnalysisSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AnalysisSessionQuery) Clone() *AnalysisSessionQuery {
	if _q == nil {
		return nil
	}
	return &AnalysisSessionQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]analysissession.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.AnalysisSession{}, _q.predicates...),
		withScopes:    _q.withScopes.Clone(),
		withHistories: _q.withHistories.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithScopes tells the query-builder to eager-load the nodes that are connected to
// the "scopes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnalysisSessionQuery) WithScopes(opts ...func(*BoardScopeQuery)) *AnalysisSessionQuery {
	query := (&BoardScopeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withScopes = query
	return _q
}

// WithHistories tells the query-builder to eager-load the nodes that are connected to
// the "histories" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnalysisSessionQuery) WithHistories(opts ...func(*AnalysisHistoryQuery)) *AnalysisSessionQuery {
	query := (&AnalysisHistoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHistories = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Reference string `json:"reference,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AnalysisSession.Query().
//		GroupBy(analysissession.FieldReference).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AnalysisSessionQuery) GroupBy(field string, fields ...string) *AnalysisSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AnalysisSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = analysissession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Reference string `json:"reference,omitempty"`
//	}
//
//	client.AnalysisSession.Query().
//		Select(analysissession.FieldReference).
//		Scan(ctx, &v)
func (_q *AnalysisSessionQuery) Select(fields ...string) *AnalysisSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AnalysisSessionSelect{AnalysisSessionQuery: _q}
	sbuild.label = analysissession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AnalysisSessionSelect configured with the given aggregations.
func (_q *AnalysisSessionQuery) Aggregate(fns ...AggregateFunc) *AnalysisSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AnalysisSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !analysissession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AnalysisSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AnalysisSession, error) {
	var (
		nodes       = []*AnalysisSession{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withScopes != nil,
			_q.withHistories != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AnalysisSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AnalysisSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withScopes; query != nil {
		if err := _q.loadScopes(ctx, query, nodes,
			func(n *AnalysisSession) { n.Edges.Scopes = []*BoardScope{} },
			func(n *AnalysisSession, e *BoardScope) { n.Edges.Scopes = append(n.Edges.Scopes, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHistories; query != nil {
		if err := _q.loadHistories(ctx, query, nodes,
			func(n *AnalysisSession) { n.Edges.Histories = []*AnalysisHistory{} },
			func(n *AnalysisSession, e *AnalysisHistory) { n.Edges.Histories = append(n.Edges.Histories, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AnalysisSessionQuery) loadScopes(ctx context.Context, query *BoardScopeQuery, nodes []*AnalysisSession, init func(*AnalysisSession), assign func(*AnalysisSession, *BoardScope)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*AnalysisSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(boardscope.FieldSessionID)
	}
	query.Where(predicate.BoardScope(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(analysissession.ScopesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnalysisSessionQuery) loadHistories(ctx context.Context, query *AnalysisHistoryQuery, nodes []*AnalysisSession, init func(*AnalysisSession), assign func(*AnalysisSession, *AnalysisHistory)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*AnalysisSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(analysishistory.FieldSessionID)
	}
	query.Where(predicate.AnalysisHistory(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(analysissession.HistoriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AnalysisSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AnalysisSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(analysissession.Table, analysissession.Columns, sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysissession.FieldID)
		for i := range fields {
			if fields[i] != analysissession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AnalysisSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(analysissession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = analysissession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AnalysisSessionGroupBy is the group-by builder for AnalysisSession entities.
type AnalysisSessionGroupBy struct {
	selector
	build *AnalysisSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AnalysisSessionGroupBy) Aggregate(fns ...AggregateFunc) *AnalysisSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AnalysisSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnalysisSessionQuery, *AnalysisSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AnalysisSessionGroupBy) sqlScan(ctx context.Context, root *AnalysisSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AnalysisSessionSelect is the builder for selecting fields of AnalysisSession entities.
type AnalysisSessionSelect struct {
	*AnalysisSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AnalysisSessionSelect) Aggregate(fns ...AggregateFunc) *AnalysisSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AnalysisSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnalysisSessionQuery, *AnalysisSessionSelect](ctx, _s.AnalysisSessionQuery, _s, _s.inters, v)
}

func (_s *AnalysisSessionSelect) sqlScan(ctx context.Context, root *AnalysisSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
