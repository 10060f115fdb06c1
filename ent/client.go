// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/messagenet/bannerd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/audiogroup"
	"github.com/messagenet/bannerd/ent/banner"
	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/ent/staff"
	"github.com/messagenet/bannerd/ent/template"
	"github.com/messagenet/bannerd/ent/wtccommand"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AudioGroup is the client for interacting with the AudioGroup builders.
	AudioGroup *AudioGroupClient
	// Banner is the client for interacting with the Banner builders.
	Banner *BannerClient
	// Hardware is the client for interacting with the Hardware builders.
	Hardware *HardwareClient
	// Staff is the client for interacting with the Staff builders.
	Staff *StaffClient
	// Template is the client for interacting with the Template builders.
	Template *TemplateClient
	// WtcCommand is the client for interacting with the WtcCommand builders.
	WtcCommand *WtcCommandClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AudioGroup = NewAudioGroupClient(c.config)
	c.Banner = NewBannerClient(c.config)
	c.Hardware = NewHardwareClient(c.config)
	c.Staff = NewStaffClient(c.config)
	c.Template = NewTemplateClient(c.config)
	c.WtcCommand = NewWtcCommandClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		AudioGroup: NewAudioGroupClient(cfg),
		Banner:     NewBannerClient(cfg),
		Hardware:   NewHardwareClient(cfg),
		Staff:      NewStaffClient(cfg),
		Template:   NewTemplateClient(cfg),
		WtcCommand: NewWtcCommandClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		AudioGroup: NewAudioGroupClient(cfg),
		Banner:     NewBannerClient(cfg),
		Hardware:   NewHardwareClient(cfg),
		Staff:      NewStaffClient(cfg),
		Template:   NewTemplateClient(cfg),
		WtcCommand: NewWtcCommandClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AudioGroup.
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
		c.AudioGroup, c.Banner, c.Hardware, c.Staff, c.Template, c.WtcCommand,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AudioGroup, c.Banner, c.Hardware, c.Staff, c.Template, c.WtcCommand,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AudioGroupMutation:
		return c.AudioGroup.mutate(ctx, m)
	case *BannerMutation:
		return c.Banner.mutate(ctx, m)
	case *HardwareMutation:
		return c.Hardware.mutate(ctx, m)
	case *StaffMutation:
		return c.Staff.mutate(ctx, m)
	case *TemplateMutation:
		return c.Template.mutate(ctx, m)
	case *WtcCommandMutation:
		return c.WtcCommand.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AudioGroupClient is a client for the AudioGroup schema.
type AudioGroupClient struct {
	config
}

// NewAudioGroupClient returns a client for the AudioGroup from the given config.
func NewAudioGroupClient(c config) *AudioGroupClient {
	return &AudioGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `audiogroup.Hooks(f(g(h())))`.
func (c *AudioGroupClient) Use(hooks ...Hook) {
	c.hooks.AudioGroup = append(c.hooks.AudioGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `audiogroup.Intercept(f(g(h())))`.
func (c *AudioGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.AudioGroup = append(c.inters.AudioGroup, interceptors...)
}

// Create returns a builder for creating a AudioGroup entity.
func (c *AudioGroupClient) Create() *AudioGroupCreate {
	mutation := newAudioGroupMutation(c.config, OpCreate)
	return &AudioGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AudioGroup entities.
func (c *AudioGroupClient) CreateBulk(builders ...*AudioGroupCreate) *AudioGroupCreateBulk {
	return &AudioGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AudioGroupClient) MapCreateBulk(slice any, setFunc func(*AudioGroupCreate, int)) *AudioGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AudioGroupCreateBulk{err: fmt.Errorf("calling to AudioGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AudioGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AudioGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AudioGroup.
func (c *AudioGroupClient) Update() *AudioGroupUpdate {
	mutation := newAudioGroupMutation(c.config, OpUpdate)
	return &AudioGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AudioGroupClient) UpdateOne(_m *AudioGroup) *AudioGroupUpdateOne {
	mutation := newAudioGroupMutation(c.config, OpUpdateOne, withAudioGroup(_m))
	return &AudioGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AudioGroupClient) UpdateOneID(id int) *AudioGroupUpdateOne {
	mutation := newAudioGroupMutation(c.config, OpUpdateOne, withAudioGroupID(id))
	return &AudioGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AudioGroup.
func (c *AudioGroupClient) Delete() *AudioGroupDelete {
	mutation := newAudioGroupMutation(c.config, OpDelete)
	return &AudioGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AudioGroupClient) DeleteOne(_m *AudioGroup) *AudioGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AudioGroupClient) DeleteOneID(id int) *AudioGroupDeleteOne {
	builder := c.Delete().Where(audiogroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AudioGroupDeleteOne{builder}
}

// Query returns a query builder for AudioGroup.
func (c *AudioGroupClient) Query() *AudioGroupQuery {
	return &AudioGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAudioGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a AudioGroup entity by its id.
func (c *AudioGroupClient) Get(ctx context.Context, id int) (*AudioGroup, error) {
	return c.Query().Where(audiogroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AudioGroupClient) GetX(ctx context.Context, id int) *AudioGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AudioGroupClient) Hooks() []Hook {
	return c.hooks.AudioGroup
}

// Interceptors returns the client interceptors.
func (c *AudioGroupClient) Interceptors() []Interceptor {
	return c.inters.AudioGroup
}

func (c *AudioGroupClient) mutate(ctx context.Context, m *AudioGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AudioGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AudioGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AudioGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AudioGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AudioGroup mutation op: %q", m.Op())
	}
}

// BannerClient is a client for the Banner schema.
type BannerClient struct {
	config
}

// NewBannerClient returns a client for the Banner from the given config.
func NewBannerClient(c config) *BannerClient {
	return &BannerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `banner.Hooks(f(g(h())))`.
func (c *BannerClient) Use(hooks ...Hook) {
	c.hooks.Banner = append(c.hooks.Banner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `banner.Intercept(f(g(h())))`.
func (c *BannerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Banner = append(c.inters.Banner, interceptors...)
}

// Create returns a builder for creating a Banner entity.
func (c *BannerClient) Create() *BannerCreate {
	mutation := newBannerMutation(c.config, OpCreate)
	return &BannerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Banner entities.
func (c *BannerClient) CreateBulk(builders ...*BannerCreate) *BannerCreateBulk {
	return &BannerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BannerClient) MapCreateBulk(slice any, setFunc func(*BannerCreate, int)) *BannerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BannerCreateBulk{err: fmt.Errorf("calling to BannerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BannerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BannerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Banner.
func (c *BannerClient) Update() *BannerUpdate {
	mutation := newBannerMutation(c.config, OpUpdate)
	return &BannerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BannerClient) UpdateOne(_m *Banner) *BannerUpdateOne {
	mutation := newBannerMutation(c.config, OpUpdateOne, withBanner(_m))
	return &BannerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BannerClient) UpdateOneID(id int) *BannerUpdateOne {
	mutation := newBannerMutation(c.config, OpUpdateOne, withBannerID(id))
	return &BannerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Banner.
func (c *BannerClient) Delete() *BannerDelete {
	mutation := newBannerMutation(c.config, OpDelete)
	return &BannerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BannerClient) DeleteOne(_m *Banner) *BannerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BannerClient) DeleteOneID(id int) *BannerDeleteOne {
	builder := c.Delete().Where(banner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BannerDeleteOne{builder}
}

// Query returns a query builder for Banner.
func (c *BannerClient) Query() *BannerQuery {
	return &BannerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBanner},
		inters: c.Interceptors(),
	}
}

// Get returns a Banner entity by its id.
func (c *BannerClient) Get(ctx context.Context, id int) (*Banner, error) {
	return c.Query().Where(banner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BannerClient) GetX(ctx context.Context, id int) *Banner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BannerClient) Hooks() []Hook {
	return c.hooks.Banner
}

// Interceptors returns the client interceptors.
func (c *BannerClient) Interceptors() []Interceptor {
	return c.inters.Banner
}

func (c *BannerClient) mutate(ctx context.Context, m *BannerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BannerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BannerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BannerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BannerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Banner mutation op: %q", m.Op())
	}
}

// HardwareClient is a client for the Hardware schema.
type HardwareClient struct {
	config
}

// NewHardwareClient returns a client for the Hardware from the given config.
func NewHardwareClient(c config) *HardwareClient {
	return &HardwareClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hardware.Hooks(f(g(h())))`.
func (c *HardwareClient) Use(hooks ...Hook) {
	c.hooks.Hardware = append(c.hooks.Hardware, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hardware.Intercept(f(g(h())))`.
func (c *HardwareClient) Intercept(interceptors ...Interceptor) {
	c.inters.Hardware = append(c.inters.Hardware, interceptors...)
}

// Create returns a builder for creating a Hardware entity.
func (c *HardwareClient) Create() *HardwareCreate {
	mutation := newHardwareMutation(c.config, OpCreate)
	return &HardwareCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Hardware entities.
func (c *HardwareClient) CreateBulk(builders ...*HardwareCreate) *HardwareCreateBulk {
	return &HardwareCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HardwareClient) MapCreateBulk(slice any, setFunc func(*HardwareCreate, int)) *HardwareCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HardwareCreateBulk{err: fmt.Errorf("calling to HardwareClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HardwareCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HardwareCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Hardware.
func (c *HardwareClient) Update() *HardwareUpdate {
	mutation := newHardwareMutation(c.config, OpUpdate)
	return &HardwareUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HardwareClient) UpdateOne(_m *Hardware) *HardwareUpdateOne {
	mutation := newHardwareMutation(c.config, OpUpdateOne, withHardware(_m))
	return &HardwareUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HardwareClient) UpdateOneID(id int) *HardwareUpdateOne {
	mutation := newHardwareMutation(c.config, OpUpdateOne, withHardwareID(id))
	return &HardwareUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Hardware.
func (c *HardwareClient) Delete() *HardwareDelete {
	mutation := newHardwareMutation(c.config, OpDelete)
	return &HardwareDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HardwareClient) DeleteOne(_m *Hardware) *HardwareDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HardwareClient) DeleteOneID(id int) *HardwareDeleteOne {
	builder := c.Delete().Where(hardware.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HardwareDeleteOne{builder}
}

// Query returns a query builder for Hardware.
func (c *HardwareClient) Query() *HardwareQuery {
	return &HardwareQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHardware},
		inters: c.Interceptors(),
	}
}

// Get returns a Hardware entity by its id.
func (c *HardwareClient) Get(ctx context.Context, id int) (*Hardware, error) {
	return c.Query().Where(hardware.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HardwareClient) GetX(ctx context.Context, id int) *Hardware {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HardwareClient) Hooks() []Hook {
	return c.hooks.Hardware
}

// Interceptors returns the client interceptors.
func (c *HardwareClient) Interceptors() []Interceptor {
	return c.inters.Hardware
}

func (c *HardwareClient) mutate(ctx context.Context, m *HardwareMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HardwareCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HardwareUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HardwareUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HardwareDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Hardware mutation op: %q", m.Op())
	}
}

// StaffClient is a client for the Staff schema.
type StaffClient struct {
	config
}

// NewStaffClient returns a client for the Staff from the given config.
func NewStaffClient(c config) *StaffClient {
	return &StaffClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staff.Hooks(f(g(h())))`.
func (c *StaffClient) Use(hooks ...Hook) {
	c.hooks.Staff = append(c.hooks.Staff, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staff.Intercept(f(g(h())))`.
func (c *StaffClient) Intercept(interceptors ...Interceptor) {
	c.inters.Staff = append(c.inters.Staff, interceptors...)
}

// Create returns a builder for creating a Staff entity.
func (c *StaffClient) Create() *StaffCreate {
	mutation := newStaffMutation(c.config, OpCreate)
	return &StaffCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Staff entities.
func (c *StaffClient) CreateBulk(builders ...*StaffCreate) *StaffCreateBulk {
	return &StaffCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StaffClient) MapCreateBulk(slice any, setFunc func(*StaffCreate, int)) *StaffCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StaffCreateBulk{err: fmt.Errorf("calling to StaffClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StaffCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StaffCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Staff.
func (c *StaffClient) Update() *StaffUpdate {
	mutation := newStaffMutation(c.config, OpUpdate)
	return &StaffUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StaffClient) UpdateOne(_m *Staff) *StaffUpdateOne {
	mutation := newStaffMutation(c.config, OpUpdateOne, withStaff(_m))
	return &StaffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StaffClient) UpdateOneID(id int) *StaffUpdateOne {
	mutation := newStaffMutation(c.config, OpUpdateOne, withStaffID(id))
	return &StaffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Staff.
func (c *StaffClient) Delete() *StaffDelete {
	mutation := newStaffMutation(c.config, OpDelete)
	return &StaffDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StaffClient) DeleteOne(_m *Staff) *StaffDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StaffClient) DeleteOneID(id int) *StaffDeleteOne {
	builder := c.Delete().Where(staff.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StaffDeleteOne{builder}
}

// Query returns a query builder for Staff.
func (c *StaffClient) Query() *StaffQuery {
	return &StaffQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStaff},
		inters: c.Interceptors(),
	}
}

// Get returns a Staff entity by its id.
func (c *StaffClient) Get(ctx context.Context, id int) (*Staff, error) {
	return c.Query().Where(staff.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StaffClient) GetX(ctx context.Context, id int) *Staff {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StaffClient) Hooks() []Hook {
	return c.hooks.Staff
}

// Interceptors returns the client interceptors.
func (c *StaffClient) Interceptors() []Interceptor {
	return c.inters.Staff
}

func (c *StaffClient) mutate(ctx context.Context, m *StaffMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StaffCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StaffUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StaffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StaffDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Staff mutation op: %q", m.Op())
	}
}

// TemplateClient is a client for the Template schema.
type TemplateClient struct {
	config
}

// NewTemplateClient returns a client for the Template from the given config.
func NewTemplateClient(c config) *TemplateClient {
	return &TemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `template.Hooks(f(g(h())))`.
func (c *TemplateClient) Use(hooks ...Hook) {
	c.hooks.Template = append(c.hooks.Template, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `template.Intercept(f(g(h())))`.
func (c *TemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Template = append(c.inters.Template, interceptors...)
}

// Create returns a builder for creating a Template entity.
func (c *TemplateClient) Create() *TemplateCreate {
	mutation := newTemplateMutation(c.config, OpCreate)
	return &TemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Template entities.
func (c *TemplateClient) CreateBulk(builders ...*TemplateCreate) *TemplateCreateBulk {
	return &TemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TemplateClient) MapCreateBulk(slice any, setFunc func(*TemplateCreate, int)) *TemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TemplateCreateBulk{err: fmt.Errorf("calling to TemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Template.
func (c *TemplateClient) Update() *TemplateUpdate {
	mutation := newTemplateMutation(c.config, OpUpdate)
	return &TemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TemplateClient) UpdateOne(_m *Template) *TemplateUpdateOne {
	mutation := newTemplateMutation(c.config, OpUpdateOne, withTemplate(_m))
	return &TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TemplateClient) UpdateOneID(id int) *TemplateUpdateOne {
	mutation := newTemplateMutation(c.config, OpUpdateOne, withTemplateID(id))
	return &TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Template.
func (c *TemplateClient) Delete() *TemplateDelete {
	mutation := newTemplateMutation(c.config, OpDelete)
	return &TemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TemplateClient) DeleteOne(_m *Template) *TemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TemplateClient) DeleteOneID(id int) *TemplateDeleteOne {
	builder := c.Delete().Where(template.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TemplateDeleteOne{builder}
}

// Query returns a query builder for Template.
func (c *TemplateClient) Query() *TemplateQuery {
	return &TemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a Template entity by its id.
func (c *TemplateClient) Get(ctx context.Context, id int) (*Template, error) {
	return c.Query().Where(template.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TemplateClient) GetX(ctx context.Context, id int) *Template {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TemplateClient) Hooks() []Hook {
	return c.hooks.Template
}

// Interceptors returns the client interceptors.
func (c *TemplateClient) Interceptors() []Interceptor {
	return c.inters.Template
}

func (c *TemplateClient) mutate(ctx context.Context, m *TemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Template mutation op: %q", m.Op())
	}
}

// WtcCommandClient is a client for the WtcCommand schema.
type WtcCommandClient struct {
	config
}

// NewWtcCommandClient returns a client for the WtcCommand from the given config.
func NewWtcCommandClient(c config) *WtcCommandClient {
	return &WtcCommandClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wtccommand.Hooks(f(g(h())))`.
func (c *WtcCommandClient) Use(hooks ...Hook) {
	c.hooks.WtcCommand = append(c.hooks.WtcCommand, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wtccommand.Intercept(f(g(h())))`.
func (c *WtcCommandClient) Intercept(interceptors ...Interceptor) {
	c.inters.WtcCommand = append(c.inters.WtcCommand, interceptors...)
}

// Create returns a builder for creating a WtcCommand entity.
func (c *WtcCommandClient) Create() *WtcCommandCreate {
	mutation := newWtcCommandMutation(c.config, OpCreate)
	return &WtcCommandCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WtcCommand entities.
func (c *WtcCommandClient) CreateBulk(builders ...*WtcCommandCreate) *WtcCommandCreateBulk {
	return &WtcCommandCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WtcCommandClient) MapCreateBulk(slice any, setFunc func(*WtcCommandCreate, int)) *WtcCommandCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WtcCommandCreateBulk{err: fmt.Errorf("calling to WtcCommandClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WtcCommandCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WtcCommandCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WtcCommand.
func (c *WtcCommandClient) Update() *WtcCommandUpdate {
	mutation := newWtcCommandMutation(c.config, OpUpdate)
	return &WtcCommandUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WtcCommandClient) UpdateOne(_m *WtcCommand) *WtcCommandUpdateOne {
	mutation := newWtcCommandMutation(c.config, OpUpdateOne, withWtcCommand(_m))
	return &WtcCommandUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WtcCommandClient) UpdateOneID(id int) *WtcCommandUpdateOne {
	mutation := newWtcCommandMutation(c.config, OpUpdateOne, withWtcCommandID(id))
	return &WtcCommandUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WtcCommand.
func (c *WtcCommandClient) Delete() *WtcCommandDelete {
	mutation := newWtcCommandMutation(c.config, OpDelete)
	return &WtcCommandDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WtcCommandClient) DeleteOne(_m *WtcCommand) *WtcCommandDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WtcCommandClient) DeleteOneID(id int) *WtcCommandDeleteOne {
	builder := c.Delete().Where(wtccommand.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WtcCommandDeleteOne{builder}
}

// Query returns a query builder for WtcCommand.
func (c *WtcCommandClient) Query() *WtcCommandQuery {
	return &WtcCommandQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWtcCommand},
		inters: c.Interceptors(),
	}
}

// Get returns a WtcCommand entity by its id.
func (c *WtcCommandClient) Get(ctx context.Context, id int) (*WtcCommand, error) {
	return c.Query().Where(wtccommand.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WtcCommandClient) GetX(ctx context.Context, id int) *WtcCommand {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WtcCommandClient) Hooks() []Hook {
	return c.hooks.WtcCommand
}

// Interceptors returns the client interceptors.
func (c *WtcCommandClient) Interceptors() []Interceptor {
	return c.inters.WtcCommand
}

func (c *WtcCommandClient) mutate(ctx context.Context, m *WtcCommandMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WtcCommandCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WtcCommandUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WtcCommandUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WtcCommandDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WtcCommand mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AudioGroup, Banner, Hardware, Staff, Template, WtcCommand []ent.Hook
	}
	inters struct {
		AudioGroup, Banner, Hardware, Staff, Template, WtcCommand []ent.Interceptor
	}
)
