// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/talan-labs/cardtriage/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/talan-labs/cardtriage/ent/analysishistory"
	"github.com/talan-labs/cardtriage/ent/analysissession"
	"github.com/talan-labs/cardtriage/ent/boardconfig"
	"github.com/talan-labs/cardtriage/ent/boardscope"
	"github.com/talan-labs/cardtriage/ent/documentchunk"
	"github.com/talan-labs/cardtriage/ent/ticket"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisHistory is the client for interacting with the AnalysisHistory builders.
	AnalysisHistory *AnalysisHistoryClient
	// AnalysisSession is the client for interacting with the AnalysisSession builders.
	AnalysisSession *AnalysisSessionClient
	// BoardConfig is the client for interacting with the BoardConfig builders.
	BoardConfig *BoardConfigClient
	// BoardScope is the client for interacting with the BoardScope builders.
	BoardScope *BoardScopeClient
	// DocumentChunk is the client for interacting with the DocumentChunk builders.
	DocumentChunk *DocumentChunkClient
	// Ticket is the client for interacting with the Ticket builders.
	Ticket *TicketClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisHistory = NewAnalysisHistoryClient(c.config)
	c.AnalysisSession = NewAnalysisSessionClient(c.config)
	c.BoardConfig = NewBoardConfigClient(c.config)
	c.BoardScope = NewBoardScopeClient(c.config)
	c.DocumentChunk = NewDocumentChunkClient(c.config)
	c.Ticket = NewTicketClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AnalysisHistory: NewAnalysisHistoryClient(cfg),
		AnalysisSession: NewAnalysisSessionClient(cfg),
		BoardConfig:     NewBoardConfigClient(cfg),
		BoardScope:      NewBoardScopeClient(cfg),
		DocumentChunk:   NewDocumentChunkClient(cfg),
		Ticket:          NewTicketClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AnalysisHistory: NewAnalysisHistoryClient(cfg),
		AnalysisSession: NewAnalysisSessionClient(cfg),
		BoardConfig:     NewBoardConfigClient(cfg),
		BoardScope:      NewBoardScopeClient(cfg),
		DocumentChunk:   NewDocumentChunkClient(cfg),
		Ticket:          NewTicketClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisHistory.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AnalysisHistory, c.AnalysisSession, c.BoardConfig, c.BoardScope,
		c.DocumentChunk, c.Ticket,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnalysisHistory, c.AnalysisSession, c.BoardConfig, c.BoardScope,
		c.DocumentChunk, c.Ticket,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisHistoryMutation:
		return c.AnalysisHistory.mutate(ctx, m)
	case *AnalysisSessionMutation:
		return c.AnalysisSession.mutate(ctx, m)
	case *BoardConfigMutation:
		return c.BoardConfig.mutate(ctx, m)
	case *BoardScopeMutation:
		return c.BoardScope.mutate(ctx, m)
	case *DocumentChunkMutation:
		return c.DocumentChunk.mutate(ctx, m)
	case *TicketMutation:
		return c.Ticket.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisHistoryClient is a client for the AnalysisHistory schema.
type AnalysisHistoryClient struct {
	config
}

// NewAnalysisHistoryClient returns a client for the AnalysisHistory from the given config.
func NewAnalysisHistoryClient(c config) *AnalysisHistoryClient {
	return &AnalysisHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysishistory.Hooks(f(g(h())))`.
func (c *AnalysisHistoryClient) Use(hooks ...Hook) {
	c.hooks.AnalysisHistory = append(c.hooks.AnalysisHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysishistory.Intercept(f(g(h())))`.
func (c *AnalysisHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisHistory = append(c.inters.AnalysisHistory, interceptors...)
}

// Create returns a builder for creating a AnalysisHistory entity.
func (c *AnalysisHistoryClient) Create() *AnalysisHistoryCreate {
	mutation := newAnalysisHistoryMutation(c.config, OpCreate)
	return &AnalysisHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisHistory entities.
func (c *AnalysisHistoryClient) CreateBulk(builders ...*AnalysisHistoryCreate) *AnalysisHistoryCreateBulk {
	return &AnalysisHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisHistoryClient) MapCreateBulk(slice any, setFunc func(*AnalysisHistoryCreate, int)) *AnalysisHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisHistoryCreateBulk{err: fmt.Errorf("calling to AnalysisHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisHistory.
func (c *AnalysisHistoryClient) Update() *AnalysisHistoryUpdate {
	mutation := newAnalysisHistoryMutation(c.config, OpUpdate)
	return &AnalysisHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisHistoryClient) UpdateOne(_m *AnalysisHistory) *AnalysisHistoryUpdateOne {
	mutation := newAnalysisHistoryMutation(c.config, OpUpdateOne, withAnalysisHistory(_m))
	return &AnalysisHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisHistoryClient) UpdateOneID(id int) *AnalysisHistoryUpdateOne {
	mutation := newAnalysisHistoryMutation(c.config, OpUpdateOne, withAnalysisHistoryID(id))
	return &AnalysisHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisHistory.
func (c *AnalysisHistoryClient) Delete() *AnalysisHistoryDelete {
	mutation := newAnalysisHistoryMutation(c.config, OpDelete)
	return &AnalysisHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisHistoryClient) DeleteOne(_m *AnalysisHistory) *AnalysisHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisHistoryClient) DeleteOneID(id int) *AnalysisHistoryDeleteOne {
	builder := c.Delete().Where(analysishistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisHistoryDeleteOne{builder}
}

// Query returns a query builder for AnalysisHistory.
func (c *AnalysisHistoryClient) Query() *AnalysisHistoryQuery {
	return &AnalysisHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisHistory entity by its id.
func (c *AnalysisHistoryClient) Get(ctx context.Context, id int) (*AnalysisHistory, error) {
	return c.Query().Where(analysishistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisHistoryClient) GetX(ctx context.Context, id int) *AnalysisHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a AnalysisHistory.
func (c *AnalysisHistoryClient) QueryTicket(_m *AnalysisHistory) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysishistory.Table, analysishistory.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysishistory.TicketTable, analysishistory.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySession queries the session edge of a AnalysisHistory.
func (c *AnalysisHistoryClient) QuerySession(_m *AnalysisHistory) *AnalysisSessionQuery {
	query := (&AnalysisSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysishistory.Table, analysishistory.FieldID, id),
			sqlgraph.To(analysissession.Table, analysissession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysishistory.SessionTable, analysishistory.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisHistoryClient) Hooks() []Hook {
	return c.hooks.AnalysisHistory
}

// Interceptors returns the client interceptors.
func (c *AnalysisHistoryClient) Interceptors() []Interceptor {
	return c.inters.AnalysisHistory
}

func (c *AnalysisHistoryClient) mutate(ctx context.Context, m *AnalysisHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisHistory mutation op: %q", m.Op())
	}
}

// AnalysisSessionClient is a client for the AnalysisSession schema.
type AnalysisSessionClient struct {
	config
}

// NewAnalysisSessionClient returns a client for the AnalysisSession from the given config.
func NewAnalysisSessionClient(c config) *AnalysisSessionClient {
	return &AnalysisSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysissession.Hooks(f(g(h())))`.
func (c *AnalysisSessionClient) Use(hooks ...Hook) {
	c.hooks.AnalysisSession = append(c.hooks.AnalysisSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysissession.Intercept(f(g(h())))`.
func (c *AnalysisSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisSession = append(c.inters.AnalysisSession, interceptors...)
}

// Create returns a builder for creating a AnalysisSession entity.
func (c *AnalysisSessionClient) Create() *AnalysisSessionCreate {
	mutation := newAnalysisSessionMutation(c.config, OpCreate)
	return &AnalysisSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisSession entities.
func (c *AnalysisSessionClient) CreateBulk(builders ...*AnalysisSessionCreate) *AnalysisSessionCreateBulk {
	return &AnalysisSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisSessionClient) MapCreateBulk(slice any, setFunc func(*AnalysisSessionCreate, int)) *AnalysisSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisSessionCreateBulk{err: fmt.Errorf("calling to AnalysisSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisSession.
func (c *AnalysisSessionClient) Update() *AnalysisSessionUpdate {
	mutation := newAnalysisSessionMutation(c.config, OpUpdate)
	return &AnalysisSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisSessionClient) UpdateOne(_m *AnalysisSession) *AnalysisSessionUpdateOne {
	mutation := newAnalysisSessionMutation(c.config, OpUpdateOne, withAnalysisSession(_m))
	return &AnalysisSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisSessionClient) UpdateOneID(id int) *AnalysisSessionUpdateOne {
	mutation := newAnalysisSessionMutation(c.config, OpUpdateOne, withAnalysisSessionID(id))
	return &AnalysisSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisSession.
func (c *AnalysisSessionClient) Delete() *AnalysisSessionDelete {
	mutation := newAnalysisSessionMutation(c.config, OpDelete)
	return &AnalysisSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisSessionClient) DeleteOne(_m *AnalysisSession) *AnalysisSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisSessionClient) DeleteOneID(id int) *AnalysisSessionDeleteOne {
	builder := c.Delete().Where(analysissession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisSessionDeleteOne{builder}
}

// Query returns a query builder for AnalysisSession.
func (c *AnalysisSessionClient) Query() *AnalysisSessionQuery {
	return &AnalysisSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisSession entity by its id.
func (c *AnalysisSessionClient) Get(ctx context.Context, id int) (*AnalysisSession, error) {
	return c.Query().Where(analysissession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisSessionClient) GetX(ctx context.Context, id int) *AnalysisSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScopes queries the scopes edge of a AnalysisSession.
func (c *AnalysisSessionClient) QueryScopes(_m *AnalysisSession) *BoardScopeQuery {
	query := (&BoardScopeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysissession.Table, analysissession.FieldID, id),
			sqlgraph.To(boardscope.Table, boardscope.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysissession.ScopesTable, analysissession.ScopesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHistories queries the histories edge of a AnalysisSession.
func (c *AnalysisSessionClient) QueryHistories(_m *AnalysisSession) *AnalysisHistoryQuery {
	query := (&AnalysisHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysissession.Table, analysissession.FieldID, id),
			sqlgraph.To(analysishistory.Table, analysishistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysissession.HistoriesTable, analysissession.HistoriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisSessionClient) Hooks() []Hook {
	return c.hooks.AnalysisSession
}

// Interceptors returns the client interceptors.
func (c *AnalysisSessionClient) Interceptors() []Interceptor {
	return c.inters.AnalysisSession
}

func (c *AnalysisSessionClient) mutate(ctx context.Context, m *AnalysisSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisSession mutation op: %q", m.Op())
	}
}

// BoardConfigClient is a client for the BoardConfig schema.
type BoardConfigClient struct {
	config
}

// NewBoardConfigClient returns a client for the BoardConfig from the given config.
func NewBoardConfigClient(c config) *BoardConfigClient {
	return &BoardConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `boardconfig.Hooks(f(g(h())))`.
func (c *BoardConfigClient) Use(hooks ...Hook) {
	c.hooks.BoardConfig = append(c.hooks.BoardConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `boardconfig.Intercept(f(g(h())))`.
func (c *BoardConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.BoardConfig = append(c.inters.BoardConfig, interceptors...)
}

// Create returns a builder for creating a BoardConfig entity.
func (c *BoardConfigClient) Create() *BoardConfigCreate {
	mutation := newBoardConfigMutation(c.config, OpCreate)
	return &BoardConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BoardConfig entities.
func (c *BoardConfigClient) CreateBulk(builders ...*BoardConfigCreate) *BoardConfigCreateBulk {
	return &BoardConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BoardConfigClient) MapCreateBulk(slice any, setFunc func(*BoardConfigCreate, int)) *BoardConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BoardConfigCreateBulk{err: fmt.Errorf("calling to BoardConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BoardConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BoardConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BoardConfig.
func (c *BoardConfigClient) Update() *BoardConfigUpdate {
	mutation := newBoardConfigMutation(c.config, OpUpdate)
	return &BoardConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BoardConfigClient) UpdateOne(_m *BoardConfig) *BoardConfigUpdateOne {
	mutation := newBoardConfigMutation(c.config, OpUpdateOne, withBoardConfig(_m))
	return &BoardConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BoardConfigClient) UpdateOneID(id int) *BoardConfigUpdateOne {
	mutation := newBoardConfigMutation(c.config, OpUpdateOne, withBoardConfigID(id))
	return &BoardConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BoardConfig.
func (c *BoardConfigClient) Delete() *BoardConfigDelete {
	mutation := newBoardConfigMutation(c.config, OpDelete)
	return &BoardConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BoardConfigClient) DeleteOne(_m *BoardConfig) *BoardConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BoardConfigClient) DeleteOneID(id int) *BoardConfigDeleteOne {
	builder := c.Delete().Where(boardconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BoardConfigDeleteOne{builder}
}

// Query returns a query builder for BoardConfig.
func (c *BoardConfigClient) Query() *BoardConfigQuery {
	return &BoardConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBoardConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a BoardConfig entity by its id.
func (c *BoardConfigClient) Get(ctx context.Context, id int) (*BoardConfig, error) {
	return c.Query().Where(boardconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BoardConfigClient) GetX(ctx context.Context, id int) *BoardConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BoardConfigClient) Hooks() []Hook {
	return c.hooks.BoardConfig
}

// Interceptors returns the client interceptors.
func (c *BoardConfigClient) Interceptors() []Interceptor {
	return c.inters.BoardConfig
}

func (c *BoardConfigClient) mutate(ctx context.Context, m *BoardConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BoardConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BoardConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BoardConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BoardConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BoardConfig mutation op: %q", m.Op())
	}
}

// BoardScopeClient is a client for the BoardScope schema.
type BoardScopeClient struct {
	config
}

// NewBoardScopeClient returns a client for the BoardScope from the given config.
func NewBoardScopeClient(c config) *BoardScopeClient {
	return &BoardScopeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `boardscope.Hooks(f(g(h())))`.
func (c *BoardScopeClient) Use(hooks ...Hook) {
	c.hooks.BoardScope = append(c.hooks.BoardScope, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `boardscope.Intercept(f(g(h())))`.
func (c *BoardScopeClient) Intercept(interceptors ...Interceptor) {
	c.inters.BoardScope = append(c.inters.BoardScope, interceptors...)
}

// Create returns a builder for creating a BoardScope entity.
func (c *BoardScopeClient) Create() *BoardScopeCreate {
	mutation := newBoardScopeMutation(c.config, OpCreate)
	return &BoardScopeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BoardScope entities.
func (c *BoardScopeClient) CreateBulk(builders ...*BoardScopeCreate) *BoardScopeCreateBulk {
	return &BoardScopeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BoardScopeClient) MapCreateBulk(slice any, setFunc func(*BoardScopeCreate, int)) *BoardScopeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BoardScopeCreateBulk{err: fmt.Errorf("calling to BoardScopeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BoardScopeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BoardScopeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BoardScope.
func (c *BoardScopeClient) Update() *BoardScopeUpdate {
	mutation := newBoardScopeMutation(c.config, OpUpdate)
	return &BoardScopeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BoardScopeClient) UpdateOne(_m *BoardScope) *BoardScopeUpdateOne {
	mutation := newBoardScopeMutation(c.config, OpUpdateOne, withBoardScope(_m))
	return &BoardScopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BoardScopeClient) UpdateOneID(id int) *BoardScopeUpdateOne {
	mutation := newBoardScopeMutation(c.config, OpUpdateOne, withBoardScopeID(id))
	return &BoardScopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BoardScope.
func (c *BoardScopeClient) Delete() *BoardScopeDelete {
	mutation := newBoardScopeMutation(c.config, OpDelete)
	return &BoardScopeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BoardScopeClient) DeleteOne(_m *BoardScope) *BoardScopeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BoardScopeClient) DeleteOneID(id int) *BoardScopeDeleteOne {
	builder := c.Delete().Where(boardscope.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BoardScopeDeleteOne{builder}
}

// Query returns a query builder for BoardScope.
func (c *BoardScopeClient) Query() *BoardScopeQuery {
	return &BoardScopeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBoardScope},
		inters: c.Interceptors(),
	}
}

// Get returns a BoardScope entity by its id.
func (c *BoardScopeClient) Get(ctx context.Context, id int) (*BoardScope, error) {
	return c.Query().Where(boardscope.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BoardScopeClient) GetX(ctx context.Context, id int) *BoardScope {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a BoardScope.
func (c *BoardScopeClient) QuerySession(_m *BoardScope) *AnalysisSessionQuery {
	query := (&AnalysisSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(boardscope.Table, boardscope.FieldID, id),
			sqlgraph.To(analysissession.Table, analysissession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, boardscope.SessionTable, boardscope.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTickets queries the tickets edge of a BoardScope.
func (c *BoardScopeClient) QueryTickets(_m *BoardScope) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(boardscope.Table, boardscope.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, boardscope.TicketsTable, boardscope.TicketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BoardScopeClient) Hooks() []Hook {
	return c.hooks.BoardScope
}

// Interceptors returns the client interceptors.
func (c *BoardScopeClient) Interceptors() []Interceptor {
	return c.inters.BoardScope
}

func (c *BoardScopeClient) mutate(ctx context.Context, m *BoardScopeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BoardScopeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BoardScopeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BoardScopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BoardScopeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BoardScope mutation op: %q", m.Op())
	}
}

// DocumentChunkClient is a client for the DocumentChunk schema.
type DocumentChunkClient struct {
	config
}

// NewDocumentChunkClient returns a client for the DocumentChunk from the given config.
func NewDocumentChunkClient(c config) *DocumentChunkClient {
	return &DocumentChunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentchunk.Hooks(f(g(h())))`.
func (c *DocumentChunkClient) Use(hooks ...Hook) {
	c.hooks.DocumentChunk = append(c.hooks.DocumentChunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentchunk.Intercept(f(g(h())))`.
func (c *DocumentChunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentChunk = append(c.inters.DocumentChunk, interceptors...)
}

// Create returns a builder for creating a DocumentChunk entity.
func (c *DocumentChunkClient) Create() *DocumentChunkCreate {
	mutation := newDocumentChunkMutation(c.config, OpCreate)
	return &DocumentChunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentChunk entities.
func (c *DocumentChunkClient) CreateBulk(builders ...*DocumentChunkCreate) *DocumentChunkCreateBulk {
	return &DocumentChunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentChunkClient) MapCreateBulk(slice any, setFunc func(*DocumentChunkCreate, int)) *DocumentChunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentChunkCreateBulk{err: fmt.Errorf("calling to DocumentChunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentChunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentChunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentChunk.
func (c *DocumentChunkClient) Update() *DocumentChunkUpdate {
	mutation := newDocumentChunkMutation(c.config, OpUpdate)
	return &DocumentChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentChunkClient) UpdateOne(_m *DocumentChunk) *DocumentChunkUpdateOne {
	mutation := newDocumentChunkMutation(c.config, OpUpdateOne, withDocumentChunk(_m))
	return &DocumentChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentChunkClient) UpdateOneID(id int) *DocumentChunkUpdateOne {
	mutation := newDocumentChunkMutation(c.config, OpUpdateOne, withDocumentChunkID(id))
	return &DocumentChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentChunk.
func (c *DocumentChunkClient) Delete() *DocumentChunkDelete {
	mutation := newDocumentChunkMutation(c.config, OpDelete)
	return &DocumentChunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentChunkClient) DeleteOne(_m *DocumentChunk) *DocumentChunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentChunkClient) DeleteOneID(id int) *DocumentChunkDeleteOne {
	builder := c.Delete().Where(documentchunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentChunkDeleteOne{builder}
}

// Query returns a query builder for DocumentChunk.
func (c *DocumentChunkClient) Query() *DocumentChunkQuery {
	return &DocumentChunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentChunk},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentChunk entity by its id.
func (c *DocumentChunkClient) Get(ctx context.Context, id int) (*DocumentChunk, error) {
	return c.Query().Where(documentchunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentChunkClient) GetX(ctx context.Context, id int) *DocumentChunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DocumentChunkClient) Hooks() []Hook {
	return c.hooks.DocumentChunk
}

// Interceptors returns the client interceptors.
func (c *DocumentChunkClient) Interceptors() []Interceptor {
	return c.inters.DocumentChunk
}

func (c *DocumentChunkClient) mutate(ctx context.Context, m *DocumentChunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentChunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentChunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentChunk mutation op: %q", m.Op())
	}
}

// TicketClient is a client for the Ticket schema.
type TicketClient struct {
	config
}

// NewTicketClient returns a client for the Ticket from the given config.
func NewTicketClient(c config) *TicketClient {
	return &TicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticket.Hooks(f(g(h())))`.
func (c *TicketClient) Use(hooks ...Hook) {
	c.hooks.Ticket = append(c.hooks.Ticket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticket.Intercept(f(g(h())))`.
func (c *TicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.Ticket = append(c.inters.Ticket, interceptors...)
}

// Create returns a builder for creating a Ticket entity.
func (c *TicketClient) Create() *TicketCreate {
	mutation := newTicketMutation(c.config, OpCreate)
	return &TicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Ticket entities.
func (c *TicketClient) CreateBulk(builders ...*TicketCreate) *TicketCreateBulk {
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketClient) MapCreateBulk(slice any, setFunc func(*TicketCreate, int)) *TicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketCreateBulk{err: fmt.Errorf("calling to TicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Ticket.
func (c *TicketClient) Update() *TicketUpdate {
	mutation := newTicketMutation(c.config, OpUpdate)
	return &TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketClient) UpdateOne(_m *Ticket) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicket(_m))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketClient) UpdateOneID(id int) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicketID(id))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Ticket.
func (c *TicketClient) Delete() *TicketDelete {
	mutation := newTicketMutation(c.config, OpDelete)
	return &TicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketClient) DeleteOne(_m *Ticket) *TicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketClient) DeleteOneID(id int) *TicketDeleteOne {
	builder := c.Delete().Where(ticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketDeleteOne{builder}
}

// Query returns a query builder for Ticket.
func (c *TicketClient) Query() *TicketQuery {
	return &TicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a Ticket entity by its id.
func (c *TicketClient) Get(ctx context.Context, id int) (*Ticket, error) {
	return c.Query().Where(ticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketClient) GetX(ctx context.Context, id int) *Ticket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBoardScope queries the board_scope edge of a Ticket.
func (c *TicketClient) QueryBoardScope(_m *Ticket) *BoardScopeQuery {
	query := (&BoardScopeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(boardscope.Table, boardscope.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticket.BoardScopeTable, ticket.BoardScopeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHistories queries the histories edge of a Ticket.
func (c *TicketClient) QueryHistories(_m *Ticket) *AnalysisHistoryQuery {
	query := (&AnalysisHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(analysishistory.Table, analysishistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.HistoriesTable, ticket.HistoriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketClient) Hooks() []Hook {
	return c.hooks.Ticket
}

// Interceptors returns the client interceptors.
func (c *TicketClient) Interceptors() []Interceptor {
	return c.inters.Ticket
}

func (c *TicketClient) mutate(ctx context.Context, m *TicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Ticket mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisHistory, AnalysisSession, BoardConfig, BoardScope, DocumentChunk,
		Ticket []ent.Hook
	}
	inters struct {
		AnalysisHistory, AnalysisSession, BoardConfig, BoardScope, DocumentChunk,
		Ticket []ent.Interceptor
	}
)
