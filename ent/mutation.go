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
	"github.com/messagenet/bannerd/ent/audiogroup"
	"github.com/messagenet/bannerd/ent/banner"
	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/ent/predicate"
	"github.com/messagenet/bannerd/ent/staff"
	"github.com/messagenet/bannerd/ent/template"
	"github.com/messagenet/bannerd/ent/wtccommand"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAudioGroup = "AudioGroup"
	TypeBanner     = "Banner"
	TypeHardware   = "Hardware"
	TypeStaff      = "Staff"
	TypeTemplate   = "Template"
	TypeWtcCommand = "WtcCommand"
)

// AudioGroupMutation represents an operation that mutates the AudioGroup nodes in the graph.
type AudioGroupMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	name                *string
	device_recnos       *[]int
	appenddevice_recnos []int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AudioGroup, error)
	predicates          []predicate.AudioGroup
}

var _ ent.Mutation = (*AudioGroupMutation)(nil)

// audiogroupOption allows management of the mutation configuration using functional options.
type audiogroupOption func(*AudioGroupMutation)

// newAudioGroupMutation creates new mutation for the AudioGroup entity.
func newAudioGroupMutation(c config, op Op, opts ...audiogroupOption) *AudioGroupMutation {
	m := &AudioGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeAudioGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAudioGroupID sets the ID field of the mutation.
func withAudioGroupID(id int) audiogroupOption {
	return func(m *AudioGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *AudioGroup
		)
		m.oldValue = func(ctx context.Context) (*AudioGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AudioGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAudioGroup sets the old AudioGroup of the mutation.
func withAudioGroup(node *AudioGroup) audiogroupOption {
	return func(m *AudioGroupMutation) {
		m.oldValue = func(context.Context) (*AudioGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AudioGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AudioGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AudioGroupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AudioGroupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AudioGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AudioGroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AudioGroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AudioGroup entity.
// If the AudioGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioGroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AudioGroupMutation) ResetName() {
	m.name = nil
}

// SetDeviceRecnos sets the "device_recnos" field.
func (m *AudioGroupMutation) SetDeviceRecnos(i []int) {
	m.device_recnos = &i
	m.appenddevice_recnos = nil
}

// DeviceRecnos returns the value of the "device_recnos" field in the mutation.
func (m *AudioGroupMutation) DeviceRecnos() (r []int, exists bool) {
	v := m.device_recnos
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceRecnos returns the old "device_recnos" field's value of the AudioGroup entity.
// If the AudioGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudioGroupMutation) OldDeviceRecnos(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceRecnos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceRecnos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceRecnos: %w", err)
	}
	return oldValue.DeviceRecnos, nil
}

// AppendDeviceRecnos adds i to the "device_recnos" field.
func (m *AudioGroupMutation) AppendDeviceRecnos(i []int) {
	m.appenddevice_recnos = append(m.appenddevice_recnos, i...)
}

// AppendedDeviceRecnos returns the list of values that were appended to the "device_recnos" field in this mutation.
func (m *AudioGroupMutation) AppendedDeviceRecnos() ([]int, bool) {
	if len(m.appenddevice_recnos) == 0 {
		return nil, false
	}
	return m.appenddevice_recnos, true
}

// ClearDeviceRecnos clears the value of the "device_recnos" field.
func (m *AudioGroupMutation) ClearDeviceRecnos() {
	m.device_recnos = nil
	m.appenddevice_recnos = nil
	m.clearedFields[audiogroup.FieldDeviceRecnos] = struct{}{}
}

// DeviceRecnosCleared returns if the "device_recnos" field was cleared in this mutation.
func (m *AudioGroupMutation) DeviceRecnosCleared() bool {
	_, ok := m.clearedFields[audiogroup.FieldDeviceRecnos]
	return ok
}

// ResetDeviceRecnos resets all changes to the "device_recnos" field.
func (m *AudioGroupMutation) ResetDeviceRecnos() {
	m.device_recnos = nil
	m.appenddevice_recnos = nil
	delete(m.clearedFields, audiogroup.FieldDeviceRecnos)
}

// Where appends a list predicates to the AudioGroupMutation builder.
func (m *AudioGroupMutation) Where(ps ...predicate.AudioGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AudioGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AudioGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AudioGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AudioGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AudioGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AudioGroup).
func (m *AudioGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AudioGroupMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, audiogroup.FieldName)
	}
	if m.device_recnos != nil {
		fields = append(fields, audiogroup.FieldDeviceRecnos)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AudioGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audiogroup.FieldName:
		return m.Name()
	case audiogroup.FieldDeviceRecnos:
		return m.DeviceRecnos()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AudioGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audiogroup.FieldName:
		return m.OldName(ctx)
	case audiogroup.FieldDeviceRecnos:
		return m.OldDeviceRecnos(ctx)
	}
	return nil, fmt.Errorf("unknown AudioGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AudioGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audiogroup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case audiogroup.FieldDeviceRecnos:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceRecnos(v)
		return nil
	}
	return fmt.Errorf("unknown AudioGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AudioGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AudioGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AudioGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AudioGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AudioGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(audiogroup.FieldDeviceRecnos) {
		fields = append(fields, audiogroup.FieldDeviceRecnos)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AudioGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AudioGroupMutation) ClearField(name string) error {
	switch name {
	case audiogroup.FieldDeviceRecnos:
		m.ClearDeviceRecnos()
		return nil
	}
	return fmt.Errorf("unknown AudioGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AudioGroupMutation) ResetField(name string) error {
	switch name {
	case audiogroup.FieldName:
		m.ResetName()
		return nil
	case audiogroup.FieldDeviceRecnos:
		m.ResetDeviceRecnos()
		return nil
	}
	return fmt.Errorf("unknown AudioGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AudioGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AudioGroupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AudioGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AudioGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AudioGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AudioGroupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AudioGroupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AudioGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AudioGroupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AudioGroup edge %s", name)
}

// BannerMutation represents an operation that mutates the Banner nodes in the graph.
type BannerMutation struct {
	config
	op                                  Op
	typ                                 string
	id                                  *int
	template_recno                      *int
	addtemplate_recno                   *int
	rec_dtsec                           *string
	duration                            *int
	addduration                         *int
	msgtype                             *string
	text1                               *string
	text2                               *string
	text3                               *string
	text4                               *string
	text5                               *string
	details                             *string
	audio_group                         *string
	playtime_duration                   *int
	addplaytime_duration                *int
	flasher_duration                    *int
	addflasher_duration                 *int
	light_signal                        *string
	light_duration                      *int
	addlight_duration                   *int
	audio_tts_gain                      *int
	addaudio_tts_gain                   *int
	flash_new_message                   *string
	visible_time                        *string
	visible_frequency                   *string
	visible_duration                    *string
	record_voice_at_launch_selection    *int
	addrecord_voice_at_launch_selection *int
	record_voice_at_launch              *string
	audio_recorded_gain                 *int
	addaudio_recorded_gain              *int
	pa_delivery_mode                    *string
	audio_repeat                        *string
	speed                               *int
	addspeed                            *int
	priority                            *int
	addpriority                         *int
	expire_priority                     *int
	addexpire_priority                  *int
	priority_duration                   *int
	addpriority_duration                *int
	page_priority_at_launch             *int
	addpage_priority_at_launch          *int
	multimedia_type                     *string
	multimedia_audio_gain               *int
	addmultimedia_audio_gain            *int
	webpage_url                         *string
	video_file                          *string
	show_camera                         *string
	camera_device_id                    *string
	launch_pin                          *string
	clearedFields                       map[string]struct{}
	done                                bool
	oldValue                            func(context.Context) (*Banner, error)
	predicates                          []predicate.Banner
}

var _ ent.Mutation = (*BannerMutation)(nil)

// bannerOption allows management of the mutation configuration using functional options.
type bannerOption func(*BannerMutation)

// newBannerMutation creates new mutation for the Banner entity.
func newBannerMutation(c config, op Op, opts ...bannerOption) *BannerMutation {
	m := &BannerMutation{
		config:        c,
		op:            op,
		typ:           TypeBanner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBannerID sets the ID field of the mutation.
func withBannerID(id int) bannerOption {
	return func(m *BannerMutation) {
		var (
			err   error
			once  sync.Once
			value *Banner
		)
		m.oldValue = func(ctx context.Context) (*Banner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Banner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBanner sets the old Banner of the mutation.
func withBanner(node *Banner) bannerOption {
	return func(m *BannerMutation) {
		m.oldValue = func(context.Context) (*Banner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BannerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BannerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Banner entities.
func (m *BannerMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BannerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BannerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Banner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateRecno sets the "template_recno" field.
func (m *BannerMutation) SetTemplateRecno(i int) {
	m.template_recno = &i
	m.addtemplate_recno = nil
}

// TemplateRecno returns the value of the "template_recno" field in the mutation.
func (m *BannerMutation) TemplateRecno() (r int, exists bool) {
	v := m.template_recno
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateRecno returns the old "template_recno" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldTemplateRecno(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateRecno is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateRecno requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateRecno: %w", err)
	}
	return oldValue.TemplateRecno, nil
}

// AddTemplateRecno adds i to the "template_recno" field.
func (m *BannerMutation) AddTemplateRecno(i int) {
	if m.addtemplate_recno != nil {
		*m.addtemplate_recno += i
	} else {
		m.addtemplate_recno = &i
	}
}

// AddedTemplateRecno returns the value that was added to the "template_recno" field in this mutation.
func (m *BannerMutation) AddedTemplateRecno() (r int, exists bool) {
	v := m.addtemplate_recno
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemplateRecno resets all changes to the "template_recno" field.
func (m *BannerMutation) ResetTemplateRecno() {
	m.template_recno = nil
	m.addtemplate_recno = nil
}

// SetRecDtsec sets the "rec_dtsec" field.
func (m *BannerMutation) SetRecDtsec(s string) {
	m.rec_dtsec = &s
}

// RecDtsec returns the value of the "rec_dtsec" field in the mutation.
func (m *BannerMutation) RecDtsec() (r string, exists bool) {
	v := m.rec_dtsec
	if v == nil {
		return
	}
	return *v, true
}

// OldRecDtsec returns the old "rec_dtsec" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldRecDtsec(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecDtsec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecDtsec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecDtsec: %w", err)
	}
	return oldValue.RecDtsec, nil
}

// ResetRecDtsec resets all changes to the "rec_dtsec" field.
func (m *BannerMutation) ResetRecDtsec() {
	m.rec_dtsec = nil
}

// SetDuration sets the "duration" field.
func (m *BannerMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *BannerMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *BannerMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *BannerMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *BannerMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetMsgtype sets the "msgtype" field.
func (m *BannerMutation) SetMsgtype(s string) {
	m.msgtype = &s
}

// Msgtype returns the value of the "msgtype" field in the mutation.
func (m *BannerMutation) Msgtype() (r string, exists bool) {
	v := m.msgtype
	if v == nil {
		return
	}
	return *v, true
}

// OldMsgtype returns the old "msgtype" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldMsgtype(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMsgtype is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMsgtype requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMsgtype: %w", err)
	}
	return oldValue.Msgtype, nil
}

// ResetMsgtype resets all changes to the "msgtype" field.
func (m *BannerMutation) ResetMsgtype() {
	m.msgtype = nil
}

// SetText1 sets the "text1" field.
func (m *BannerMutation) SetText1(s string) {
	m.text1 = &s
}

// Text1 returns the value of the "text1" field in the mutation.
func (m *BannerMutation) Text1() (r string, exists bool) {
	v := m.text1
	if v == nil {
		return
	}
	return *v, true
}

// OldText1 returns the old "text1" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldText1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText1: %w", err)
	}
	return oldValue.Text1, nil
}

// ResetText1 resets all changes to the "text1" field.
func (m *BannerMutation) ResetText1() {
	m.text1 = nil
}

// SetText2 sets the "text2" field.
func (m *BannerMutation) SetText2(s string) {
	m.text2 = &s
}

// Text2 returns the value of the "text2" field in the mutation.
func (m *BannerMutation) Text2() (r string, exists bool) {
	v := m.text2
	if v == nil {
		return
	}
	return *v, true
}

// OldText2 returns the old "text2" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldText2(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText2: %w", err)
	}
	return oldValue.Text2, nil
}

// ResetText2 resets all changes to the "text2" field.
func (m *BannerMutation) ResetText2() {
	m.text2 = nil
}

// SetText3 sets the "text3" field.
func (m *BannerMutation) SetText3(s string) {
	m.text3 = &s
}

// Text3 returns the value of the "text3" field in the mutation.
func (m *BannerMutation) Text3() (r string, exists bool) {
	v := m.text3
	if v == nil {
		return
	}
	return *v, true
}

// OldText3 returns the old "text3" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldText3(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText3: %w", err)
	}
	return oldValue.Text3, nil
}

// ResetText3 resets all changes to the "text3" field.
func (m *BannerMutation) ResetText3() {
	m.text3 = nil
}

// SetText4 sets the "text4" field.
func (m *BannerMutation) SetText4(s string) {
	m.text4 = &s
}

// Text4 returns the value of the "text4" field in the mutation.
func (m *BannerMutation) Text4() (r string, exists bool) {
	v := m.text4
	if v == nil {
		return
	}
	return *v, true
}

// OldText4 returns the old "text4" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldText4(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText4 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText4 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText4: %w", err)
	}
	return oldValue.Text4, nil
}

// ResetText4 resets all changes to the "text4" field.
func (m *BannerMutation) ResetText4() {
	m.text4 = nil
}

// SetText5 sets the "text5" field.
func (m *BannerMutation) SetText5(s string) {
	m.text5 = &s
}

// Text5 returns the value of the "text5" field in the mutation.
func (m *BannerMutation) Text5() (r string, exists bool) {
	v := m.text5
	if v == nil {
		return
	}
	return *v, true
}

// OldText5 returns the old "text5" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldText5(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText5 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText5 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText5: %w", err)
	}
	return oldValue.Text5, nil
}

// ResetText5 resets all changes to the "text5" field.
func (m *BannerMutation) ResetText5() {
	m.text5 = nil
}

// SetDetails sets the "details" field.
func (m *BannerMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *BannerMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ResetDetails resets all changes to the "details" field.
func (m *BannerMutation) ResetDetails() {
	m.details = nil
}

// SetAudioGroup sets the "audio_group" field.
func (m *BannerMutation) SetAudioGroup(s string) {
	m.audio_group = &s
}

// AudioGroup returns the value of the "audio_group" field in the mutation.
func (m *BannerMutation) AudioGroup() (r string, exists bool) {
	v := m.audio_group
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioGroup returns the old "audio_group" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldAudioGroup(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioGroup: %w", err)
	}
	return oldValue.AudioGroup, nil
}

// ResetAudioGroup resets all changes to the "audio_group" field.
func (m *BannerMutation) ResetAudioGroup() {
	m.audio_group = nil
}

// SetPlaytimeDuration sets the "playtime_duration" field.
func (m *BannerMutation) SetPlaytimeDuration(i int) {
	m.playtime_duration = &i
	m.addplaytime_duration = nil
}

// PlaytimeDuration returns the value of the "playtime_duration" field in the mutation.
func (m *BannerMutation) PlaytimeDuration() (r int, exists bool) {
	v := m.playtime_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaytimeDuration returns the old "playtime_duration" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldPlaytimeDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaytimeDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaytimeDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaytimeDuration: %w", err)
	}
	return oldValue.PlaytimeDuration, nil
}

// AddPlaytimeDuration adds i to the "playtime_duration" field.
func (m *BannerMutation) AddPlaytimeDuration(i int) {
	if m.addplaytime_duration != nil {
		*m.addplaytime_duration += i
	} else {
		m.addplaytime_duration = &i
	}
}

// AddedPlaytimeDuration returns the value that was added to the "playtime_duration" field in this mutation.
func (m *BannerMutation) AddedPlaytimeDuration() (r int, exists bool) {
	v := m.addplaytime_duration
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlaytimeDuration resets all changes to the "playtime_duration" field.
func (m *BannerMutation) ResetPlaytimeDuration() {
	m.playtime_duration = nil
	m.addplaytime_duration = nil
}

// SetFlasherDuration sets the "flasher_duration" field.
func (m *BannerMutation) SetFlasherDuration(i int) {
	m.flasher_duration = &i
	m.addflasher_duration = nil
}

// FlasherDuration returns the value of the "flasher_duration" field in the mutation.
func (m *BannerMutation) FlasherDuration() (r int, exists bool) {
	v := m.flasher_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldFlasherDuration returns the old "flasher_duration" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldFlasherDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlasherDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlasherDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlasherDuration: %w", err)
	}
	return oldValue.FlasherDuration, nil
}

// AddFlasherDuration adds i to the "flasher_duration" field.
func (m *BannerMutation) AddFlasherDuration(i int) {
	if m.addflasher_duration != nil {
		*m.addflasher_duration += i
	} else {
		m.addflasher_duration = &i
	}
}

// AddedFlasherDuration returns the value that was added to the "flasher_duration" field in this mutation.
func (m *BannerMutation) AddedFlasherDuration() (r int, exists bool) {
	v := m.addflasher_duration
	if v == nil {
		return
	}
	return *v, true
}

// ResetFlasherDuration resets all changes to the "flasher_duration" field.
func (m *BannerMutation) ResetFlasherDuration() {
	m.flasher_duration = nil
	m.addflasher_duration = nil
}

// SetLightSignal sets the "light_signal" field.
func (m *BannerMutation) SetLightSignal(s string) {
	m.light_signal = &s
}

// LightSignal returns the value of the "light_signal" field in the mutation.
func (m *BannerMutation) LightSignal() (r string, exists bool) {
	v := m.light_signal
	if v == nil {
		return
	}
	return *v, true
}

// OldLightSignal returns the old "light_signal" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldLightSignal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLightSignal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLightSignal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLightSignal: %w", err)
	}
	return oldValue.LightSignal, nil
}

// ResetLightSignal resets all changes to the "light_signal" field.
func (m *BannerMutation) ResetLightSignal() {
	m.light_signal = nil
}

// SetLightDuration sets the "light_duration" field.
func (m *BannerMutation) SetLightDuration(i int) {
	m.light_duration = &i
	m.addlight_duration = nil
}

// LightDuration returns the value of the "light_duration" field in the mutation.
func (m *BannerMutation) LightDuration() (r int, exists bool) {
	v := m.light_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldLightDuration returns the old "light_duration" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldLightDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLightDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLightDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLightDuration: %w", err)
	}
	return oldValue.LightDuration, nil
}

// AddLightDuration adds i to the "light_duration" field.
func (m *BannerMutation) AddLightDuration(i int) {
	if m.addlight_duration != nil {
		*m.addlight_duration += i
	} else {
		m.addlight_duration = &i
	}
}

// AddedLightDuration returns the value that was added to the "light_duration" field in this mutation.
func (m *BannerMutation) AddedLightDuration() (r int, exists bool) {
	v := m.addlight_duration
	if v == nil {
		return
	}
	return *v, true
}

// ResetLightDuration resets all changes to the "light_duration" field.
func (m *BannerMutation) ResetLightDuration() {
	m.light_duration = nil
	m.addlight_duration = nil
}

// SetAudioTtsGain sets the "audio_tts_gain" field.
func (m *BannerMutation) SetAudioTtsGain(i int) {
	m.audio_tts_gain = &i
	m.addaudio_tts_gain = nil
}

// AudioTtsGain returns the value of the "audio_tts_gain" field in the mutation.
func (m *BannerMutation) AudioTtsGain() (r int, exists bool) {
	v := m.audio_tts_gain
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioTtsGain returns the old "audio_tts_gain" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldAudioTtsGain(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioTtsGain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioTtsGain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioTtsGain: %w", err)
	}
	return oldValue.AudioTtsGain, nil
}

// AddAudioTtsGain adds i to the "audio_tts_gain" field.
func (m *BannerMutation) AddAudioTtsGain(i int) {
	if m.addaudio_tts_gain != nil {
		*m.addaudio_tts_gain += i
	} else {
		m.addaudio_tts_gain = &i
	}
}

// AddedAudioTtsGain returns the value that was added to the "audio_tts_gain" field in this mutation.
func (m *BannerMutation) AddedAudioTtsGain() (r int, exists bool) {
	v := m.addaudio_tts_gain
	if v == nil {
		return
	}
	return *v, true
}

// ResetAudioTtsGain resets all changes to the "audio_tts_gain" field.
func (m *BannerMutation) ResetAudioTtsGain() {
	m.audio_tts_gain = nil
	m.addaudio_tts_gain = nil
}

// SetFlashNewMessage sets the "flash_new_message" field.
func (m *BannerMutation) SetFlashNewMessage(s string) {
	m.flash_new_message = &s
}

// FlashNewMessage returns the value of the "flash_new_message" field in the mutation.
func (m *BannerMutation) FlashNewMessage() (r string, exists bool) {
	v := m.flash_new_message
	if v == nil {
		return
	}
	return *v, true
}

// OldFlashNewMessage returns the old "flash_new_message" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldFlashNewMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlashNewMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlashNewMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlashNewMessage: %w", err)
	}
	return oldValue.FlashNewMessage, nil
}

// ResetFlashNewMessage resets all changes to the "flash_new_message" field.
func (m *BannerMutation) ResetFlashNewMessage() {
	m.flash_new_message = nil
}

// SetVisibleTime sets the "visible_time" field.
func (m *BannerMutation) SetVisibleTime(s string) {
	m.visible_time = &s
}

// VisibleTime returns the value of the "visible_time" field in the mutation.
func (m *BannerMutation) VisibleTime() (r string, exists bool) {
	v := m.visible_time
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibleTime returns the old "visible_time" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldVisibleTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibleTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibleTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibleTime: %w", err)
	}
	return oldValue.VisibleTime, nil
}

// ResetVisibleTime resets all changes to the "visible_time" field.
func (m *BannerMutation) ResetVisibleTime() {
	m.visible_time = nil
}

// SetVisibleFrequency sets the "visible_frequency" field.
func (m *BannerMutation) SetVisibleFrequency(s string) {
	m.visible_frequency = &s
}

// VisibleFrequency returns the value of the "visible_frequency" field in the mutation.
func (m *BannerMutation) VisibleFrequency() (r string, exists bool) {
	v := m.visible_frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibleFrequency returns the old "visible_frequency" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldVisibleFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibleFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibleFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibleFrequency: %w", err)
	}
	return oldValue.VisibleFrequency, nil
}

// ResetVisibleFrequency resets all changes to the "visible_frequency" field.
func (m *BannerMutation) ResetVisibleFrequency() {
	m.visible_frequency = nil
}

// SetVisibleDuration sets the "visible_duration" field.
func (m *BannerMutation) SetVisibleDuration(s string) {
	m.visible_duration = &s
}

// VisibleDuration returns the value of the "visible_duration" field in the mutation.
func (m *BannerMutation) VisibleDuration() (r string, exists bool) {
	v := m.visible_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibleDuration returns the old "visible_duration" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldVisibleDuration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibleDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibleDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibleDuration: %w", err)
	}
	return oldValue.VisibleDuration, nil
}

// ResetVisibleDuration resets all changes to the "visible_duration" field.
func (m *BannerMutation) ResetVisibleDuration() {
	m.visible_duration = nil
}

// SetRecordVoiceAtLaunchSelection sets the "record_voice_at_launch_selection" field.
func (m *BannerMutation) SetRecordVoiceAtLaunchSelection(i int) {
	m.record_voice_at_launch_selection = &i
	m.addrecord_voice_at_launch_selection = nil
}

// RecordVoiceAtLaunchSelection returns the value of the "record_voice_at_launch_selection" field in the mutation.
func (m *BannerMutation) RecordVoiceAtLaunchSelection() (r int, exists bool) {
	v := m.record_voice_at_launch_selection
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordVoiceAtLaunchSelection returns the old "record_voice_at_launch_selection" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldRecordVoiceAtLaunchSelection(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordVoiceAtLaunchSelection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordVoiceAtLaunchSelection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordVoiceAtLaunchSelection: %w", err)
	}
	return oldValue.RecordVoiceAtLaunchSelection, nil
}

// AddRecordVoiceAtLaunchSelection adds i to the "record_voice_at_launch_selection" field.
func (m *BannerMutation) AddRecordVoiceAtLaunchSelection(i int) {
	if m.addrecord_voice_at_launch_selection != nil {
		*m.addrecord_voice_at_launch_selection += i
	} else {
		m.addrecord_voice_at_launch_selection = &i
	}
}

// AddedRecordVoiceAtLaunchSelection returns the value that was added to the "record_voice_at_launch_selection" field in this mutation.
func (m *BannerMutation) AddedRecordVoiceAtLaunchSelection() (r int, exists bool) {
	v := m.addrecord_voice_at_launch_selection
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordVoiceAtLaunchSelection resets all changes to the "record_voice_at_launch_selection" field.
func (m *BannerMutation) ResetRecordVoiceAtLaunchSelection() {
	m.record_voice_at_launch_selection = nil
	m.addrecord_voice_at_launch_selection = nil
}

// SetRecordVoiceAtLaunch sets the "record_voice_at_launch" field.
func (m *BannerMutation) SetRecordVoiceAtLaunch(s string) {
	m.record_voice_at_launch = &s
}

// RecordVoiceAtLaunch returns the value of the "record_voice_at_launch" field in the mutation.
func (m *BannerMutation) RecordVoiceAtLaunch() (r string, exists bool) {
	v := m.record_voice_at_launch
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordVoiceAtLaunch returns the old "record_voice_at_launch" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldRecordVoiceAtLaunch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordVoiceAtLaunch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordVoiceAtLaunch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordVoiceAtLaunch: %w", err)
	}
	return oldValue.RecordVoiceAtLaunch, nil
}

// ResetRecordVoiceAtLaunch resets all changes to the "record_voice_at_launch" field.
func (m *BannerMutation) ResetRecordVoiceAtLaunch() {
	m.record_voice_at_launch = nil
}

// SetAudioRecordedGain sets the "audio_recorded_gain" field.
func (m *BannerMutation) SetAudioRecordedGain(i int) {
	m.audio_recorded_gain = &i
	m.addaudio_recorded_gain = nil
}

// AudioRecordedGain returns the value of the "audio_recorded_gain" field in the mutation.
func (m *BannerMutation) AudioRecordedGain() (r int, exists bool) {
	v := m.audio_recorded_gain
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioRecordedGain returns the old "audio_recorded_gain" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldAudioRecordedGain(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioRecordedGain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioRecordedGain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioRecordedGain: %w", err)
	}
	return oldValue.AudioRecordedGain, nil
}

// AddAudioRecordedGain adds i to the "audio_recorded_gain" field.
func (m *BannerMutation) AddAudioRecordedGain(i int) {
	if m.addaudio_recorded_gain != nil {
		*m.addaudio_recorded_gain += i
	} else {
		m.addaudio_recorded_gain = &i
	}
}

// AddedAudioRecordedGain returns the value that was added to the "audio_recorded_gain" field in this mutation.
func (m *BannerMutation) AddedAudioRecordedGain() (r int, exists bool) {
	v := m.addaudio_recorded_gain
	if v == nil {
		return
	}
	return *v, true
}

// ResetAudioRecordedGain resets all changes to the "audio_recorded_gain" field.
func (m *BannerMutation) ResetAudioRecordedGain() {
	m.audio_recorded_gain = nil
	m.addaudio_recorded_gain = nil
}

// SetPaDeliveryMode sets the "pa_delivery_mode" field.
func (m *BannerMutation) SetPaDeliveryMode(s string) {
	m.pa_delivery_mode = &s
}

// PaDeliveryMode returns the value of the "pa_delivery_mode" field in the mutation.
func (m *BannerMutation) PaDeliveryMode() (r string, exists bool) {
	v := m.pa_delivery_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldPaDeliveryMode returns the old "pa_delivery_mode" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldPaDeliveryMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaDeliveryMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaDeliveryMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaDeliveryMode: %w", err)
	}
	return oldValue.PaDeliveryMode, nil
}

// ResetPaDeliveryMode resets all changes to the "pa_delivery_mode" field.
func (m *BannerMutation) ResetPaDeliveryMode() {
	m.pa_delivery_mode = nil
}

// SetAudioRepeat sets the "audio_repeat" field.
func (m *BannerMutation) SetAudioRepeat(s string) {
	m.audio_repeat = &s
}

// AudioRepeat returns the value of the "audio_repeat" field in the mutation.
func (m *BannerMutation) AudioRepeat() (r string, exists bool) {
	v := m.audio_repeat
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioRepeat returns the old "audio_repeat" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldAudioRepeat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioRepeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioRepeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioRepeat: %w", err)
	}
	return oldValue.AudioRepeat, nil
}

// ResetAudioRepeat resets all changes to the "audio_repeat" field.
func (m *BannerMutation) ResetAudioRepeat() {
	m.audio_repeat = nil
}

// SetSpeed sets the "speed" field.
func (m *BannerMutation) SetSpeed(i int) {
	m.speed = &i
	m.addspeed = nil
}

// Speed returns the value of the "speed" field in the mutation.
func (m *BannerMutation) Speed() (r int, exists bool) {
	v := m.speed
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeed returns the old "speed" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldSpeed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeed: %w", err)
	}
	return oldValue.Speed, nil
}

// AddSpeed adds i to the "speed" field.
func (m *BannerMutation) AddSpeed(i int) {
	if m.addspeed != nil {
		*m.addspeed += i
	} else {
		m.addspeed = &i
	}
}

// AddedSpeed returns the value that was added to the "speed" field in this mutation.
func (m *BannerMutation) AddedSpeed() (r int, exists bool) {
	v := m.addspeed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpeed resets all changes to the "speed" field.
func (m *BannerMutation) ResetSpeed() {
	m.speed = nil
	m.addspeed = nil
}

// SetPriority sets the "priority" field.
func (m *BannerMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *BannerMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *BannerMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *BannerMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *BannerMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetExpirePriority sets the "expire_priority" field.
func (m *BannerMutation) SetExpirePriority(i int) {
	m.expire_priority = &i
	m.addexpire_priority = nil
}

// ExpirePriority returns the value of the "expire_priority" field in the mutation.
func (m *BannerMutation) ExpirePriority() (r int, exists bool) {
	v := m.expire_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldExpirePriority returns the old "expire_priority" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldExpirePriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpirePriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpirePriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpirePriority: %w", err)
	}
	return oldValue.ExpirePriority, nil
}

// AddExpirePriority adds i to the "expire_priority" field.
func (m *BannerMutation) AddExpirePriority(i int) {
	if m.addexpire_priority != nil {
		*m.addexpire_priority += i
	} else {
		m.addexpire_priority = &i
	}
}

// AddedExpirePriority returns the value that was added to the "expire_priority" field in this mutation.
func (m *BannerMutation) AddedExpirePriority() (r int, exists bool) {
	v := m.addexpire_priority
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpirePriority resets all changes to the "expire_priority" field.
func (m *BannerMutation) ResetExpirePriority() {
	m.expire_priority = nil
	m.addexpire_priority = nil
}

// SetPriorityDuration sets the "priority_duration" field.
func (m *BannerMutation) SetPriorityDuration(i int) {
	m.priority_duration = &i
	m.addpriority_duration = nil
}

// PriorityDuration returns the value of the "priority_duration" field in the mutation.
func (m *BannerMutation) PriorityDuration() (r int, exists bool) {
	v := m.priority_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityDuration returns the old "priority_duration" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldPriorityDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityDuration: %w", err)
	}
	return oldValue.PriorityDuration, nil
}

// AddPriorityDuration adds i to the "priority_duration" field.
func (m *BannerMutation) AddPriorityDuration(i int) {
	if m.addpriority_duration != nil {
		*m.addpriority_duration += i
	} else {
		m.addpriority_duration = &i
	}
}

// AddedPriorityDuration returns the value that was added to the "priority_duration" field in this mutation.
func (m *BannerMutation) AddedPriorityDuration() (r int, exists bool) {
	v := m.addpriority_duration
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityDuration resets all changes to the "priority_duration" field.
func (m *BannerMutation) ResetPriorityDuration() {
	m.priority_duration = nil
	m.addpriority_duration = nil
}

// SetPagePriorityAtLaunch sets the "page_priority_at_launch" field.
func (m *BannerMutation) SetPagePriorityAtLaunch(i int) {
	m.page_priority_at_launch = &i
	m.addpage_priority_at_launch = nil
}

// PagePriorityAtLaunch returns the value of the "page_priority_at_launch" field in the mutation.
func (m *BannerMutation) PagePriorityAtLaunch() (r int, exists bool) {
	v := m.page_priority_at_launch
	if v == nil {
		return
	}
	return *v, true
}

// OldPagePriorityAtLaunch returns the old "page_priority_at_launch" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldPagePriorityAtLaunch(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPagePriorityAtLaunch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPagePriorityAtLaunch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPagePriorityAtLaunch: %w", err)
	}
	return oldValue.PagePriorityAtLaunch, nil
}

// AddPagePriorityAtLaunch adds i to the "page_priority_at_launch" field.
func (m *BannerMutation) AddPagePriorityAtLaunch(i int) {
	if m.addpage_priority_at_launch != nil {
		*m.addpage_priority_at_launch += i
	} else {
		m.addpage_priority_at_launch = &i
	}
}

// AddedPagePriorityAtLaunch returns the value that was added to the "page_priority_at_launch" field in this mutation.
func (m *BannerMutation) AddedPagePriorityAtLaunch() (r int, exists bool) {
	v := m.addpage_priority_at_launch
	if v == nil {
		return
	}
	return *v, true
}

// ResetPagePriorityAtLaunch resets all changes to the "page_priority_at_launch" field.
func (m *BannerMutation) ResetPagePriorityAtLaunch() {
	m.page_priority_at_launch = nil
	m.addpage_priority_at_launch = nil
}

// SetMultimediaType sets the "multimedia_type" field.
func (m *BannerMutation) SetMultimediaType(s string) {
	m.multimedia_type = &s
}

// MultimediaType returns the value of the "multimedia_type" field in the mutation.
func (m *BannerMutation) MultimediaType() (r string, exists bool) {
	v := m.multimedia_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMultimediaType returns the old "multimedia_type" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldMultimediaType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMultimediaType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMultimediaType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMultimediaType: %w", err)
	}
	return oldValue.MultimediaType, nil
}

// ResetMultimediaType resets all changes to the "multimedia_type" field.
func (m *BannerMutation) ResetMultimediaType() {
	m.multimedia_type = nil
}

// SetMultimediaAudioGain sets the "multimedia_audio_gain" field.
func (m *BannerMutation) SetMultimediaAudioGain(i int) {
	m.multimedia_audio_gain = &i
	m.addmultimedia_audio_gain = nil
}

// MultimediaAudioGain returns the value of the "multimedia_audio_gain" field in the mutation.
func (m *BannerMutation) MultimediaAudioGain() (r int, exists bool) {
	v := m.multimedia_audio_gain
	if v == nil {
		return
	}
	return *v, true
}

// OldMultimediaAudioGain returns the old "multimedia_audio_gain" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldMultimediaAudioGain(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMultimediaAudioGain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMultimediaAudioGain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMultimediaAudioGain: %w", err)
	}
	return oldValue.MultimediaAudioGain, nil
}

// AddMultimediaAudioGain adds i to the "multimedia_audio_gain" field.
func (m *BannerMutation) AddMultimediaAudioGain(i int) {
	if m.addmultimedia_audio_gain != nil {
		*m.addmultimedia_audio_gain += i
	} else {
		m.addmultimedia_audio_gain = &i
	}
}

// AddedMultimediaAudioGain returns the value that was added to the "multimedia_audio_gain" field in this mutation.
func (m *BannerMutation) AddedMultimediaAudioGain() (r int, exists bool) {
	v := m.addmultimedia_audio_gain
	if v == nil {
		return
	}
	return *v, true
}

// ResetMultimediaAudioGain resets all changes to the "multimedia_audio_gain" field.
func (m *BannerMutation) ResetMultimediaAudioGain() {
	m.multimedia_audio_gain = nil
	m.addmultimedia_audio_gain = nil
}

// SetWebpageURL sets the "webpage_url" field.
func (m *BannerMutation) SetWebpageURL(s string) {
	m.webpage_url = &s
}

// WebpageURL returns the value of the "webpage_url" field in the mutation.
func (m *BannerMutation) WebpageURL() (r string, exists bool) {
	v := m.webpage_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebpageURL returns the old "webpage_url" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldWebpageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebpageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebpageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebpageURL: %w", err)
	}
	return oldValue.WebpageURL, nil
}

// ResetWebpageURL resets all changes to the "webpage_url" field.
func (m *BannerMutation) ResetWebpageURL() {
	m.webpage_url = nil
}

// SetVideoFile sets the "video_file" field.
func (m *BannerMutation) SetVideoFile(s string) {
	m.video_file = &s
}

// VideoFile returns the value of the "video_file" field in the mutation.
func (m *BannerMutation) VideoFile() (r string, exists bool) {
	v := m.video_file
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoFile returns the old "video_file" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldVideoFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoFile: %w", err)
	}
	return oldValue.VideoFile, nil
}

// ResetVideoFile resets all changes to the "video_file" field.
func (m *BannerMutation) ResetVideoFile() {
	m.video_file = nil
}

// SetShowCamera sets the "show_camera" field.
func (m *BannerMutation) SetShowCamera(s string) {
	m.show_camera = &s
}

// ShowCamera returns the value of the "show_camera" field in the mutation.
func (m *BannerMutation) ShowCamera() (r string, exists bool) {
	v := m.show_camera
	if v == nil {
		return
	}
	return *v, true
}

// OldShowCamera returns the old "show_camera" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldShowCamera(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShowCamera is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShowCamera requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShowCamera: %w", err)
	}
	return oldValue.ShowCamera, nil
}

// ResetShowCamera resets all changes to the "show_camera" field.
func (m *BannerMutation) ResetShowCamera() {
	m.show_camera = nil
}

// SetCameraDeviceID sets the "camera_device_id" field.
func (m *BannerMutation) SetCameraDeviceID(s string) {
	m.camera_device_id = &s
}

// CameraDeviceID returns the value of the "camera_device_id" field in the mutation.
func (m *BannerMutation) CameraDeviceID() (r string, exists bool) {
	v := m.camera_device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCameraDeviceID returns the old "camera_device_id" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldCameraDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCameraDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCameraDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCameraDeviceID: %w", err)
	}
	return oldValue.CameraDeviceID, nil
}

// ResetCameraDeviceID resets all changes to the "camera_device_id" field.
func (m *BannerMutation) ResetCameraDeviceID() {
	m.camera_device_id = nil
}

// SetLaunchPin sets the "launch_pin" field.
func (m *BannerMutation) SetLaunchPin(s string) {
	m.launch_pin = &s
}

// LaunchPin returns the value of the "launch_pin" field in the mutation.
func (m *BannerMutation) LaunchPin() (r string, exists bool) {
	v := m.launch_pin
	if v == nil {
		return
	}
	return *v, true
}

// OldLaunchPin returns the old "launch_pin" field's value of the Banner entity.
// If the Banner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BannerMutation) OldLaunchPin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaunchPin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaunchPin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaunchPin: %w", err)
	}
	return oldValue.LaunchPin, nil
}

// ResetLaunchPin resets all changes to the "launch_pin" field.
func (m *BannerMutation) ResetLaunchPin() {
	m.launch_pin = nil
}

// Where appends a list predicates to the BannerMutation builder.
func (m *BannerMutation) Where(ps ...predicate.Banner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BannerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BannerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Banner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BannerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BannerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Banner).
func (m *BannerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BannerMutation) Fields() []string {
	fields := make([]string, 0, 37)
	if m.template_recno != nil {
		fields = append(fields, banner.FieldTemplateRecno)
	}
	if m.rec_dtsec != nil {
		fields = append(fields, banner.FieldRecDtsec)
	}
	if m.duration != nil {
		fields = append(fields, banner.FieldDuration)
	}
	if m.msgtype != nil {
		fields = append(fields, banner.FieldMsgtype)
	}
	if m.text1 != nil {
		fields = append(fields, banner.FieldText1)
	}
	if m.text2 != nil {
		fields = append(fields, banner.FieldText2)
	}
	if m.text3 != nil {
		fields = append(fields, banner.FieldText3)
	}
	if m.text4 != nil {
		fields = append(fields, banner.FieldText4)
	}
	if m.text5 != nil {
		fields = append(fields, banner.FieldText5)
	}
	if m.details != nil {
		fields = append(fields, banner.FieldDetails)
	}
	if m.audio_group != nil {
		fields = append(fields, banner.FieldAudioGroup)
	}
	if m.playtime_duration != nil {
		fields = append(fields, banner.FieldPlaytimeDuration)
	}
	if m.flasher_duration != nil {
		fields = append(fields, banner.FieldFlasherDuration)
	}
	if m.light_signal != nil {
		fields = append(fields, banner.FieldLightSignal)
	}
	if m.light_duration != nil {
		fields = append(fields, banner.FieldLightDuration)
	}
	if m.audio_tts_gain != nil {
		fields = append(fields, banner.FieldAudioTtsGain)
	}
	if m.flash_new_message != nil {
		fields = append(fields, banner.FieldFlashNewMessage)
	}
	if m.visible_time != nil {
		fields = append(fields, banner.FieldVisibleTime)
	}
	if m.visible_frequency != nil {
		fields = append(fields, banner.FieldVisibleFrequency)
	}
	if m.visible_duration != nil {
		fields = append(fields, banner.FieldVisibleDuration)
	}
	if m.record_voice_at_launch_selection != nil {
		fields = append(fields, banner.FieldRecordVoiceAtLaunchSelection)
	}
	if m.record_voice_at_launch != nil {
		fields = append(fields, banner.FieldRecordVoiceAtLaunch)
	}
	if m.audio_recorded_gain != nil {
		fields = append(fields, banner.FieldAudioRecordedGain)
	}
	if m.pa_delivery_mode != nil {
		fields = append(fields, banner.FieldPaDeliveryMode)
	}
	if m.audio_repeat != nil {
		fields = append(fields, banner.FieldAudioRepeat)
	}
	if m.speed != nil {
		fields = append(fields, banner.FieldSpeed)
	}
	if m.priority != nil {
		fields = append(fields, banner.FieldPriority)
	}
	if m.expire_priority != nil {
		fields = append(fields, banner.FieldExpirePriority)
	}
	if m.priority_duration != nil {
		fields = append(fields, banner.FieldPriorityDuration)
	}
	if m.page_priority_at_launch != nil {
		fields = append(fields, banner.FieldPagePriorityAtLaunch)
	}
	if m.multimedia_type != nil {
		fields = append(fields, banner.FieldMultimediaType)
	}
	if m.multimedia_audio_gain != nil {
		fields = append(fields, banner.FieldMultimediaAudioGain)
	}
	if m.webpage_url != nil {
		fields = append(fields, banner.FieldWebpageURL)
	}
	if m.video_file != nil {
		fields = append(fields, banner.FieldVideoFile)
	}
	if m.show_camera != nil {
		fields = append(fields, banner.FieldShowCamera)
	}
	if m.camera_device_id != nil {
		fields = append(fields, banner.FieldCameraDeviceID)
	}
	if m.launch_pin != nil {
		fields = append(fields, banner.FieldLaunchPin)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BannerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case banner.FieldTemplateRecno:
		return m.TemplateRecno()
	case banner.FieldRecDtsec:
		return m.RecDtsec()
	case banner.FieldDuration:
		return m.Duration()
	case banner.FieldMsgtype:
		return m.Msgtype()
	case banner.FieldText1:
		return m.Text1()
	case banner.FieldText2:
		return m.Text2()
	case banner.FieldText3:
		return m.Text3()
	case banner.FieldText4:
		return m.Text4()
	case banner.FieldText5:
		return m.Text5()
	case banner.FieldDetails:
		return m.Details()
	case banner.FieldAudioGroup:
		return m.AudioGroup()
	case banner.FieldPlaytimeDuration:
		return m.PlaytimeDuration()
	case banner.FieldFlasherDuration:
		return m.FlasherDuration()
	case banner.FieldLightSignal:
		return m.LightSignal()
	case banner.FieldLightDuration:
		return m.LightDuration()
	case banner.FieldAudioTtsGain:
		return m.AudioTtsGain()
	case banner.FieldFlashNewMessage:
		return m.FlashNewMessage()
	case banner.FieldVisibleTime:
		return m.VisibleTime()
	case banner.FieldVisibleFrequency:
		return m.VisibleFrequency()
	case banner.FieldVisibleDuration:
		return m.VisibleDuration()
	case banner.FieldRecordVoiceAtLaunchSelection:
		return m.RecordVoiceAtLaunchSelection()
	case banner.FieldRecordVoiceAtLaunch:
		return m.RecordVoiceAtLaunch()
	case banner.FieldAudioRecordedGain:
		return m.AudioRecordedGain()
	case banner.FieldPaDeliveryMode:
		return m.PaDeliveryMode()
	case banner.FieldAudioRepeat:
		return m.AudioRepeat()
	case banner.FieldSpeed:
		return m.Speed()
	case banner.FieldPriority:
		return m.Priority()
	case banner.FieldExpirePriority:
		return m.ExpirePriority()
	case banner.FieldPriorityDuration:
		return m.PriorityDuration()
	case banner.FieldPagePriorityAtLaunch:
		return m.PagePriorityAtLaunch()
	case banner.FieldMultimediaType:
		return m.MultimediaType()
	case banner.FieldMultimediaAudioGain:
		return m.MultimediaAudioGain()
	case banner.FieldWebpageURL:
		return m.WebpageURL()
	case banner.FieldVideoFile:
		return m.VideoFile()
	case banner.FieldShowCamera:
		return m.ShowCamera()
	case banner.FieldCameraDeviceID:
		return m.CameraDeviceID()
	case banner.FieldLaunchPin:
		return m.LaunchPin()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BannerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case banner.FieldTemplateRecno:
		return m.OldTemplateRecno(ctx)
	case banner.FieldRecDtsec:
		return m.OldRecDtsec(ctx)
	case banner.FieldDuration:
		return m.OldDuration(ctx)
	case banner.FieldMsgtype:
		return m.OldMsgtype(ctx)
	case banner.FieldText1:
		return m.OldText1(ctx)
	case banner.FieldText2:
		return m.OldText2(ctx)
	case banner.FieldText3:
		return m.OldText3(ctx)
	case banner.FieldText4:
		return m.OldText4(ctx)
	case banner.FieldText5:
		return m.OldText5(ctx)
	case banner.FieldDetails:
		return m.OldDetails(ctx)
	case banner.FieldAudioGroup:
		return m.OldAudioGroup(ctx)
	case banner.FieldPlaytimeDuration:
		return m.OldPlaytimeDuration(ctx)
	case banner.FieldFlasherDuration:
		return m.OldFlasherDuration(ctx)
	case banner.FieldLightSignal:
		return m.OldLightSignal(ctx)
	case banner.FieldLightDuration:
		return m.OldLightDuration(ctx)
	case banner.FieldAudioTtsGain:
		return m.OldAudioTtsGain(ctx)
	case banner.FieldFlashNewMessage:
		return m.OldFlashNewMessage(ctx)
	case banner.FieldVisibleTime:
		return m.OldVisibleTime(ctx)
	case banner.FieldVisibleFrequency:
		return m.OldVisibleFrequency(ctx)
	case banner.FieldVisibleDuration:
		return m.OldVisibleDuration(ctx)
	case banner.FieldRecordVoiceAtLaunchSelection:
		return m.OldRecordVoiceAtLaunchSelection(ctx)
	case banner.FieldRecordVoiceAtLaunch:
		return m.OldRecordVoiceAtLaunch(ctx)
	case banner.FieldAudioRecordedGain:
		return m.OldAudioRecordedGain(ctx)
	case banner.FieldPaDeliveryMode:
		return m.OldPaDeliveryMode(ctx)
	case banner.FieldAudioRepeat:
		return m.OldAudioRepeat(ctx)
	case banner.FieldSpeed:
		return m.OldSpeed(ctx)
	case banner.FieldPriority:
		return m.OldPriority(ctx)
	case banner.FieldExpirePriority:
		return m.OldExpirePriority(ctx)
	case banner.FieldPriorityDuration:
		return m.OldPriorityDuration(ctx)
	case banner.FieldPagePriorityAtLaunch:
		return m.OldPagePriorityAtLaunch(ctx)
	case banner.FieldMultimediaType:
		return m.OldMultimediaType(ctx)
	case banner.FieldMultimediaAudioGain:
		return m.OldMultimediaAudioGain(ctx)
	case banner.FieldWebpageURL:
		return m.OldWebpageURL(ctx)
	case banner.FieldVideoFile:
		return m.OldVideoFile(ctx)
	case banner.FieldShowCamera:
		return m.OldShowCamera(ctx)
	case banner.FieldCameraDeviceID:
		return m.OldCameraDeviceID(ctx)
	case banner.FieldLaunchPin:
		return m.OldLaunchPin(ctx)
	}
	return nil, fmt.Errorf("unknown Banner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BannerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case banner.FieldTemplateRecno:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateRecno(v)
		return nil
	case banner.FieldRecDtsec:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecDtsec(v)
		return nil
	case banner.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case banner.FieldMsgtype:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMsgtype(v)
		return nil
	case banner.FieldText1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText1(v)
		return nil
	case banner.FieldText2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText2(v)
		return nil
	case banner.FieldText3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText3(v)
		return nil
	case banner.FieldText4:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText4(v)
		return nil
	case banner.FieldText5:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText5(v)
		return nil
	case banner.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case banner.FieldAudioGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioGroup(v)
		return nil
	case banner.FieldPlaytimeDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaytimeDuration(v)
		return nil
	case banner.FieldFlasherDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlasherDuration(v)
		return nil
	case banner.FieldLightSignal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLightSignal(v)
		return nil
	case banner.FieldLightDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLightDuration(v)
		return nil
	case banner.FieldAudioTtsGain:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioTtsGain(v)
		return nil
	case banner.FieldFlashNewMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlashNewMessage(v)
		return nil
	case banner.FieldVisibleTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibleTime(v)
		return nil
	case banner.FieldVisibleFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibleFrequency(v)
		return nil
	case banner.FieldVisibleDuration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibleDuration(v)
		return nil
	case banner.FieldRecordVoiceAtLaunchSelection:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordVoiceAtLaunchSelection(v)
		return nil
	case banner.FieldRecordVoiceAtLaunch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordVoiceAtLaunch(v)
		return nil
	case banner.FieldAudioRecordedGain:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioRecordedGain(v)
		return nil
	case banner.FieldPaDeliveryMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaDeliveryMode(v)
		return nil
	case banner.FieldAudioRepeat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioRepeat(v)
		return nil
	case banner.FieldSpeed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeed(v)
		return nil
	case banner.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case banner.FieldExpirePriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpirePriority(v)
		return nil
	case banner.FieldPriorityDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityDuration(v)
		return nil
	case banner.FieldPagePriorityAtLaunch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPagePriorityAtLaunch(v)
		return nil
	case banner.FieldMultimediaType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMultimediaType(v)
		return nil
	case banner.FieldMultimediaAudioGain:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMultimediaAudioGain(v)
		return nil
	case banner.FieldWebpageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebpageURL(v)
		return nil
	case banner.FieldVideoFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoFile(v)
		return nil
	case banner.FieldShowCamera:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShowCamera(v)
		return nil
	case banner.FieldCameraDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCameraDeviceID(v)
		return nil
	case banner.FieldLaunchPin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaunchPin(v)
		return nil
	}
	return fmt.Errorf("unknown Banner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BannerMutation) AddedFields() []string {
	var fields []string
	if m.addtemplate_recno != nil {
		fields = append(fields, banner.FieldTemplateRecno)
	}
	if m.addduration != nil {
		fields = append(fields, banner.FieldDuration)
	}
	if m.addplaytime_duration != nil {
		fields = append(fields, banner.FieldPlaytimeDuration)
	}
	if m.addflasher_duration != nil {
		fields = append(fields, banner.FieldFlasherDuration)
	}
	if m.addlight_duration != nil {
		fields = append(fields, banner.FieldLightDuration)
	}
	if m.addaudio_tts_gain != nil {
		fields = append(fields, banner.FieldAudioTtsGain)
	}
	if m.addrecord_voice_at_launch_selection != nil {
		fields = append(fields, banner.FieldRecordVoiceAtLaunchSelection)
	}
	if m.addaudio_recorded_gain != nil {
		fields = append(fields, banner.FieldAudioRecordedGain)
	}
	if m.addspeed != nil {
		fields = append(fields, banner.FieldSpeed)
	}
	if m.addpriority != nil {
		fields = append(fields, banner.FieldPriority)
	}
	if m.addexpire_priority != nil {
		fields = append(fields, banner.FieldExpirePriority)
	}
	if m.addpriority_duration != nil {
		fields = append(fields, banner.FieldPriorityDuration)
	}
	if m.addpage_priority_at_launch != nil {
		fields = append(fields, banner.FieldPagePriorityAtLaunch)
	}
	if m.addmultimedia_audio_gain != nil {
		fields = append(fields, banner.FieldMultimediaAudioGain)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BannerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case banner.FieldTemplateRecno:
		return m.AddedTemplateRecno()
	case banner.FieldDuration:
		return m.AddedDuration()
	case banner.FieldPlaytimeDuration:
		return m.AddedPlaytimeDuration()
	case banner.FieldFlasherDuration:
		return m.AddedFlasherDuration()
	case banner.FieldLightDuration:
		return m.AddedLightDuration()
	case banner.FieldAudioTtsGain:
		return m.AddedAudioTtsGain()
	case banner.FieldRecordVoiceAtLaunchSelection:
		return m.AddedRecordVoiceAtLaunchSelection()
	case banner.FieldAudioRecordedGain:
		return m.AddedAudioRecordedGain()
	case banner.FieldSpeed:
		return m.AddedSpeed()
	case banner.FieldPriority:
		return m.AddedPriority()
	case banner.FieldExpirePriority:
		return m.AddedExpirePriority()
	case banner.FieldPriorityDuration:
		return m.AddedPriorityDuration()
	case banner.FieldPagePriorityAtLaunch:
		return m.AddedPagePriorityAtLaunch()
	case banner.FieldMultimediaAudioGain:
		return m.AddedMultimediaAudioGain()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BannerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case banner.FieldTemplateRecno:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemplateRecno(v)
		return nil
	case banner.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	case banner.FieldPlaytimeDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlaytimeDuration(v)
		return nil
	case banner.FieldFlasherDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFlasherDuration(v)
		return nil
	case banner.FieldLightDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLightDuration(v)
		return nil
	case banner.FieldAudioTtsGain:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAudioTtsGain(v)
		return nil
	case banner.FieldRecordVoiceAtLaunchSelection:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordVoiceAtLaunchSelection(v)
		return nil
	case banner.FieldAudioRecordedGain:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAudioRecordedGain(v)
		return nil
	case banner.FieldSpeed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpeed(v)
		return nil
	case banner.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case banner.FieldExpirePriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpirePriority(v)
		return nil
	case banner.FieldPriorityDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityDuration(v)
		return nil
	case banner.FieldPagePriorityAtLaunch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPagePriorityAtLaunch(v)
		return nil
	case banner.FieldMultimediaAudioGain:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMultimediaAudioGain(v)
		return nil
	}
	return fmt.Errorf("unknown Banner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BannerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BannerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BannerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Banner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BannerMutation) ResetField(name string) error {
	switch name {
	case banner.FieldTemplateRecno:
		m.ResetTemplateRecno()
		return nil
	case banner.FieldRecDtsec:
		m.ResetRecDtsec()
		return nil
	case banner.FieldDuration:
		m.ResetDuration()
		return nil
	case banner.FieldMsgtype:
		m.ResetMsgtype()
		return nil
	case banner.FieldText1:
		m.ResetText1()
		return nil
	case banner.FieldText2:
		m.ResetText2()
		return nil
	case banner.FieldText3:
		m.ResetText3()
		return nil
	case banner.FieldText4:
		m.ResetText4()
		return nil
	case banner.FieldText5:
		m.ResetText5()
		return nil
	case banner.FieldDetails:
		m.ResetDetails()
		return nil
	case banner.FieldAudioGroup:
		m.ResetAudioGroup()
		return nil
	case banner.FieldPlaytimeDuration:
		m.ResetPlaytimeDuration()
		return nil
	case banner.FieldFlasherDuration:
		m.ResetFlasherDuration()
		return nil
	case banner.FieldLightSignal:
		m.ResetLightSignal()
		return nil
	case banner.FieldLightDuration:
		m.ResetLightDuration()
		return nil
	case banner.FieldAudioTtsGain:
		m.ResetAudioTtsGain()
		return nil
	case banner.FieldFlashNewMessage:
		m.ResetFlashNewMessage()
		return nil
	case banner.FieldVisibleTime:
		m.ResetVisibleTime()
		return nil
	case banner.FieldVisibleFrequency:
		m.ResetVisibleFrequency()
		return nil
	case banner.FieldVisibleDuration:
		m.ResetVisibleDuration()
		return nil
	case banner.FieldRecordVoiceAtLaunchSelection:
		m.ResetRecordVoiceAtLaunchSelection()
		return nil
	case banner.FieldRecordVoiceAtLaunch:
		m.ResetRecordVoiceAtLaunch()
		return nil
	case banner.FieldAudioRecordedGain:
		m.ResetAudioRecordedGain()
		return nil
	case banner.FieldPaDeliveryMode:
		m.ResetPaDeliveryMode()
		return nil
	case banner.FieldAudioRepeat:
		m.ResetAudioRepeat()
		return nil
	case banner.FieldSpeed:
		m.ResetSpeed()
		return nil
	case banner.FieldPriority:
		m.ResetPriority()
		return nil
	case banner.FieldExpirePriority:
		m.ResetExpirePriority()
		return nil
	case banner.FieldPriorityDuration:
		m.ResetPriorityDuration()
		return nil
	case banner.FieldPagePriorityAtLaunch:
		m.ResetPagePriorityAtLaunch()
		return nil
	case banner.FieldMultimediaType:
		m.ResetMultimediaType()
		return nil
	case banner.FieldMultimediaAudioGain:
		m.ResetMultimediaAudioGain()
		return nil
	case banner.FieldWebpageURL:
		m.ResetWebpageURL()
		return nil
	case banner.FieldVideoFile:
		m.ResetVideoFile()
		return nil
	case banner.FieldShowCamera:
		m.ResetShowCamera()
		return nil
	case banner.FieldCameraDeviceID:
		m.ResetCameraDeviceID()
		return nil
	case banner.FieldLaunchPin:
		m.ResetLaunchPin()
		return nil
	}
	return fmt.Errorf("unknown Banner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BannerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BannerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BannerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BannerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BannerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BannerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BannerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Banner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BannerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Banner edge %s", name)
}

// HardwareMutation represents an operation that mutates the Hardware nodes in the graph.
type HardwareMutation struct {
	config
	op                Op
	typ               string
	id                *int
	device_id         *string
	device_kind       *hardware.DeviceKind
	name              *string
	address           *string
	port              *int
	addport           *int
	password          *string
	auto_address      *bool
	ip_method_config  *string
	ip_method_current *string
	rtsp_port         *int
	addrtsp_port      *int
	connection_status *hardware.ConnectionStatus
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Hardware, error)
	predicates        []predicate.Hardware
}

var _ ent.Mutation = (*HardwareMutation)(nil)

// hardwareOption allows management of the mutation configuration using functional options.
type hardwareOption func(*HardwareMutation)

// newHardwareMutation creates new mutation for the Hardware entity.
func newHardwareMutation(c config, op Op, opts ...hardwareOption) *HardwareMutation {
	m := &HardwareMutation{
		config:        c,
		op:            op,
		typ:           TypeHardware,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHardwareID sets the ID field of the mutation.
func withHardwareID(id int) hardwareOption {
	return func(m *HardwareMutation) {
		var (
			err   error
			once  sync.Once
			value *Hardware
		)
		m.oldValue = func(ctx context.Context) (*Hardware, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Hardware.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHardware sets the old Hardware of the mutation.
func withHardware(node *Hardware) hardwareOption {
	return func(m *HardwareMutation) {
		m.oldValue = func(context.Context) (*Hardware, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HardwareMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HardwareMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Hardware entities.
func (m *HardwareMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HardwareMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HardwareMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Hardware.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeviceID sets the "device_id" field.
func (m *HardwareMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *HardwareMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *HardwareMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetDeviceKind sets the "device_kind" field.
func (m *HardwareMutation) SetDeviceKind(hk hardware.DeviceKind) {
	m.device_kind = &hk
}

// DeviceKind returns the value of the "device_kind" field in the mutation.
func (m *HardwareMutation) DeviceKind() (r hardware.DeviceKind, exists bool) {
	v := m.device_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceKind returns the old "device_kind" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldDeviceKind(ctx context.Context) (v hardware.DeviceKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceKind: %w", err)
	}
	return oldValue.DeviceKind, nil
}

// ResetDeviceKind resets all changes to the "device_kind" field.
func (m *HardwareMutation) ResetDeviceKind() {
	m.device_kind = nil
}

// SetName sets the "name" field.
func (m *HardwareMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *HardwareMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *HardwareMutation) ClearName() {
	m.name = nil
	m.clearedFields[hardware.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *HardwareMutation) NameCleared() bool {
	_, ok := m.clearedFields[hardware.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *HardwareMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, hardware.FieldName)
}

// SetAddress sets the "address" field.
func (m *HardwareMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *HardwareMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *HardwareMutation) ResetAddress() {
	m.address = nil
}

// SetPort sets the "port" field.
func (m *HardwareMutation) SetPort(i int) {
	m.port = &i
	m.addport = nil
}

// Port returns the value of the "port" field in the mutation.
func (m *HardwareMutation) Port() (r int, exists bool) {
	v := m.port
	if v == nil {
		return
	}
	return *v, true
}

// OldPort returns the old "port" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPort: %w", err)
	}
	return oldValue.Port, nil
}

// AddPort adds i to the "port" field.
func (m *HardwareMutation) AddPort(i int) {
	if m.addport != nil {
		*m.addport += i
	} else {
		m.addport = &i
	}
}

// AddedPort returns the value that was added to the "port" field in this mutation.
func (m *HardwareMutation) AddedPort() (r int, exists bool) {
	v := m.addport
	if v == nil {
		return
	}
	return *v, true
}

// ResetPort resets all changes to the "port" field.
func (m *HardwareMutation) ResetPort() {
	m.port = nil
	m.addport = nil
}

// SetPassword sets the "password" field.
func (m *HardwareMutation) SetPassword(s string) {
	m.password = &s
}

// Password returns the value of the "password" field in the mutation.
func (m *HardwareMutation) Password() (r string, exists bool) {
	v := m.password
	if v == nil {
		return
	}
	return *v, true
}

// OldPassword returns the old "password" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldPassword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassword: %w", err)
	}
	return oldValue.Password, nil
}

// ResetPassword resets all changes to the "password" field.
func (m *HardwareMutation) ResetPassword() {
	m.password = nil
}

// SetAutoAddress sets the "auto_address" field.
func (m *HardwareMutation) SetAutoAddress(b bool) {
	m.auto_address = &b
}

// AutoAddress returns the value of the "auto_address" field in the mutation.
func (m *HardwareMutation) AutoAddress() (r bool, exists bool) {
	v := m.auto_address
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoAddress returns the old "auto_address" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldAutoAddress(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoAddress: %w", err)
	}
	return oldValue.AutoAddress, nil
}

// ResetAutoAddress resets all changes to the "auto_address" field.
func (m *HardwareMutation) ResetAutoAddress() {
	m.auto_address = nil
}

// SetIPMethodConfig sets the "ip_method_config" field.
func (m *HardwareMutation) SetIPMethodConfig(s string) {
	m.ip_method_config = &s
}

// IPMethodConfig returns the value of the "ip_method_config" field in the mutation.
func (m *HardwareMutation) IPMethodConfig() (r string, exists bool) {
	v := m.ip_method_config
	if v == nil {
		return
	}
	return *v, true
}

// OldIPMethodConfig returns the old "ip_method_config" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldIPMethodConfig(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPMethodConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPMethodConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPMethodConfig: %w", err)
	}
	return oldValue.IPMethodConfig, nil
}

// ResetIPMethodConfig resets all changes to the "ip_method_config" field.
func (m *HardwareMutation) ResetIPMethodConfig() {
	m.ip_method_config = nil
}

// SetIPMethodCurrent sets the "ip_method_current" field.
func (m *HardwareMutation) SetIPMethodCurrent(s string) {
	m.ip_method_current = &s
}

// IPMethodCurrent returns the value of the "ip_method_current" field in the mutation.
func (m *HardwareMutation) IPMethodCurrent() (r string, exists bool) {
	v := m.ip_method_current
	if v == nil {
		return
	}
	return *v, true
}

// OldIPMethodCurrent returns the old "ip_method_current" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldIPMethodCurrent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPMethodCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPMethodCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPMethodCurrent: %w", err)
	}
	return oldValue.IPMethodCurrent, nil
}

// ResetIPMethodCurrent resets all changes to the "ip_method_current" field.
func (m *HardwareMutation) ResetIPMethodCurrent() {
	m.ip_method_current = nil
}

// SetRtspPort sets the "rtsp_port" field.
func (m *HardwareMutation) SetRtspPort(i int) {
	m.rtsp_port = &i
	m.addrtsp_port = nil
}

// RtspPort returns the value of the "rtsp_port" field in the mutation.
func (m *HardwareMutation) RtspPort() (r int, exists bool) {
	v := m.rtsp_port
	if v == nil {
		return
	}
	return *v, true
}

// OldRtspPort returns the old "rtsp_port" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldRtspPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRtspPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRtspPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRtspPort: %w", err)
	}
	return oldValue.RtspPort, nil
}

// AddRtspPort adds i to the "rtsp_port" field.
func (m *HardwareMutation) AddRtspPort(i int) {
	if m.addrtsp_port != nil {
		*m.addrtsp_port += i
	} else {
		m.addrtsp_port = &i
	}
}

// AddedRtspPort returns the value that was added to the "rtsp_port" field in this mutation.
func (m *HardwareMutation) AddedRtspPort() (r int, exists bool) {
	v := m.addrtsp_port
	if v == nil {
		return
	}
	return *v, true
}

// ResetRtspPort resets all changes to the "rtsp_port" field.
func (m *HardwareMutation) ResetRtspPort() {
	m.rtsp_port = nil
	m.addrtsp_port = nil
}

// SetConnectionStatus sets the "connection_status" field.
func (m *HardwareMutation) SetConnectionStatus(hs hardware.ConnectionStatus) {
	m.connection_status = &hs
}

// ConnectionStatus returns the value of the "connection_status" field in the mutation.
func (m *HardwareMutation) ConnectionStatus() (r hardware.ConnectionStatus, exists bool) {
	v := m.connection_status
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectionStatus returns the old "connection_status" field's value of the Hardware entity.
// If the Hardware object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareMutation) OldConnectionStatus(ctx context.Context) (v hardware.ConnectionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectionStatus: %w", err)
	}
	return oldValue.ConnectionStatus, nil
}

// ResetConnectionStatus resets all changes to the "connection_status" field.
func (m *HardwareMutation) ResetConnectionStatus() {
	m.connection_status = nil
}

// Where appends a list predicates to the HardwareMutation builder.
func (m *HardwareMutation) Where(ps ...predicate.Hardware) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HardwareMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HardwareMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Hardware, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HardwareMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HardwareMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Hardware).
func (m *HardwareMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HardwareMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.device_id != nil {
		fields = append(fields, hardware.FieldDeviceID)
	}
	if m.device_kind != nil {
		fields = append(fields, hardware.FieldDeviceKind)
	}
	if m.name != nil {
		fields = append(fields, hardware.FieldName)
	}
	if m.address != nil {
		fields = append(fields, hardware.FieldAddress)
	}
	if m.port != nil {
		fields = append(fields, hardware.FieldPort)
	}
	if m.password != nil {
		fields = append(fields, hardware.FieldPassword)
	}
	if m.auto_address != nil {
		fields = append(fields, hardware.FieldAutoAddress)
	}
	if m.ip_method_config != nil {
		fields = append(fields, hardware.FieldIPMethodConfig)
	}
	if m.ip_method_current != nil {
		fields = append(fields, hardware.FieldIPMethodCurrent)
	}
	if m.rtsp_port != nil {
		fields = append(fields, hardware.FieldRtspPort)
	}
	if m.connection_status != nil {
		fields = append(fields, hardware.FieldConnectionStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HardwareMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hardware.FieldDeviceID:
		return m.DeviceID()
	case hardware.FieldDeviceKind:
		return m.DeviceKind()
	case hardware.FieldName:
		return m.Name()
	case hardware.FieldAddress:
		return m.Address()
	case hardware.FieldPort:
		return m.Port()
	case hardware.FieldPassword:
		return m.Password()
	case hardware.FieldAutoAddress:
		return m.AutoAddress()
	case hardware.FieldIPMethodConfig:
		return m.IPMethodConfig()
	case hardware.FieldIPMethodCurrent:
		return m.IPMethodCurrent()
	case hardware.FieldRtspPort:
		return m.RtspPort()
	case hardware.FieldConnectionStatus:
		return m.ConnectionStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HardwareMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hardware.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case hardware.FieldDeviceKind:
		return m.OldDeviceKind(ctx)
	case hardware.FieldName:
		return m.OldName(ctx)
	case hardware.FieldAddress:
		return m.OldAddress(ctx)
	case hardware.FieldPort:
		return m.OldPort(ctx)
	case hardware.FieldPassword:
		return m.OldPassword(ctx)
	case hardware.FieldAutoAddress:
		return m.OldAutoAddress(ctx)
	case hardware.FieldIPMethodConfig:
		return m.OldIPMethodConfig(ctx)
	case hardware.FieldIPMethodCurrent:
		return m.OldIPMethodCurrent(ctx)
	case hardware.FieldRtspPort:
		return m.OldRtspPort(ctx)
	case hardware.FieldConnectionStatus:
		return m.OldConnectionStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Hardware field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HardwareMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hardware.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case hardware.FieldDeviceKind:
		v, ok := value.(hardware.DeviceKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceKind(v)
		return nil
	case hardware.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case hardware.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case hardware.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPort(v)
		return nil
	case hardware.FieldPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassword(v)
		return nil
	case hardware.FieldAutoAddress:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoAddress(v)
		return nil
	case hardware.FieldIPMethodConfig:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPMethodConfig(v)
		return nil
	case hardware.FieldIPMethodCurrent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPMethodCurrent(v)
		return nil
	case hardware.FieldRtspPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRtspPort(v)
		return nil
	case hardware.FieldConnectionStatus:
		v, ok := value.(hardware.ConnectionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectionStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Hardware field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HardwareMutation) AddedFields() []string {
	var fields []string
	if m.addport != nil {
		fields = append(fields, hardware.FieldPort)
	}
	if m.addrtsp_port != nil {
		fields = append(fields, hardware.FieldRtspPort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HardwareMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hardware.FieldPort:
		return m.AddedPort()
	case hardware.FieldRtspPort:
		return m.AddedRtspPort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HardwareMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hardware.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPort(v)
		return nil
	case hardware.FieldRtspPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRtspPort(v)
		return nil
	}
	return fmt.Errorf("unknown Hardware numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HardwareMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hardware.FieldName) {
		fields = append(fields, hardware.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HardwareMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HardwareMutation) ClearField(name string) error {
	switch name {
	case hardware.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown Hardware nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HardwareMutation) ResetField(name string) error {
	switch name {
	case hardware.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case hardware.FieldDeviceKind:
		m.ResetDeviceKind()
		return nil
	case hardware.FieldName:
		m.ResetName()
		return nil
	case hardware.FieldAddress:
		m.ResetAddress()
		return nil
	case hardware.FieldPort:
		m.ResetPort()
		return nil
	case hardware.FieldPassword:
		m.ResetPassword()
		return nil
	case hardware.FieldAutoAddress:
		m.ResetAutoAddress()
		return nil
	case hardware.FieldIPMethodConfig:
		m.ResetIPMethodConfig()
		return nil
	case hardware.FieldIPMethodCurrent:
		m.ResetIPMethodCurrent()
		return nil
	case hardware.FieldRtspPort:
		m.ResetRtspPort()
		return nil
	case hardware.FieldConnectionStatus:
		m.ResetConnectionStatus()
		return nil
	}
	return fmt.Errorf("unknown Hardware field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HardwareMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HardwareMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HardwareMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HardwareMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HardwareMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HardwareMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HardwareMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Hardware unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HardwareMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Hardware edge %s", name)
}

// StaffMutation represents an operation that mutates the Staff nodes in the graph.
type StaffMutation struct {
	config
	op            Op
	typ           string
	id            *int
	pin           *string
	gender        *string
	name          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Staff, error)
	predicates    []predicate.Staff
}

var _ ent.Mutation = (*StaffMutation)(nil)

// staffOption allows management of the mutation configuration using functional options.
type staffOption func(*StaffMutation)

// newStaffMutation creates new mutation for the Staff entity.
func newStaffMutation(c config, op Op, opts ...staffOption) *StaffMutation {
	m := &StaffMutation{
		config:        c,
		op:            op,
		typ:           TypeStaff,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStaffID sets the ID field of the mutation.
func withStaffID(id int) staffOption {
	return func(m *StaffMutation) {
		var (
			err   error
			once  sync.Once
			value *Staff
		)
		m.oldValue = func(ctx context.Context) (*Staff, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Staff.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStaff sets the old Staff of the mutation.
func withStaff(node *Staff) staffOption {
	return func(m *StaffMutation) {
		m.oldValue = func(context.Context) (*Staff, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StaffMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StaffMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Staff entities.
func (m *StaffMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StaffMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StaffMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Staff.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPin sets the "pin" field.
func (m *StaffMutation) SetPin(s string) {
	m.pin = &s
}

// Pin returns the value of the "pin" field in the mutation.
func (m *StaffMutation) Pin() (r string, exists bool) {
	v := m.pin
	if v == nil {
		return
	}
	return *v, true
}

// OldPin returns the old "pin" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldPin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPin: %w", err)
	}
	return oldValue.Pin, nil
}

// ResetPin resets all changes to the "pin" field.
func (m *StaffMutation) ResetPin() {
	m.pin = nil
}

// SetGender sets the "gender" field.
func (m *StaffMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *StaffMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *StaffMutation) ResetGender() {
	m.gender = nil
}

// SetName sets the "name" field.
func (m *StaffMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StaffMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Staff entity.
// If the Staff object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaffMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *StaffMutation) ClearName() {
	m.name = nil
	m.clearedFields[staff.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *StaffMutation) NameCleared() bool {
	_, ok := m.clearedFields[staff.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *StaffMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, staff.FieldName)
}

// Where appends a list predicates to the StaffMutation builder.
func (m *StaffMutation) Where(ps ...predicate.Staff) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StaffMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StaffMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Staff, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StaffMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StaffMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Staff).
func (m *StaffMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StaffMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.pin != nil {
		fields = append(fields, staff.FieldPin)
	}
	if m.gender != nil {
		fields = append(fields, staff.FieldGender)
	}
	if m.name != nil {
		fields = append(fields, staff.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StaffMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case staff.FieldPin:
		return m.Pin()
	case staff.FieldGender:
		return m.Gender()
	case staff.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StaffMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case staff.FieldPin:
		return m.OldPin(ctx)
	case staff.FieldGender:
		return m.OldGender(ctx)
	case staff.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Staff field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffMutation) SetField(name string, value ent.Value) error {
	switch name {
	case staff.FieldPin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPin(v)
		return nil
	case staff.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case staff.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Staff field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StaffMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StaffMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaffMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Staff numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StaffMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(staff.FieldName) {
		fields = append(fields, staff.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StaffMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StaffMutation) ClearField(name string) error {
	switch name {
	case staff.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown Staff nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StaffMutation) ResetField(name string) error {
	switch name {
	case staff.FieldPin:
		m.ResetPin()
		return nil
	case staff.FieldGender:
		m.ResetGender()
		return nil
	case staff.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Staff field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StaffMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StaffMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StaffMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StaffMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StaffMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StaffMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StaffMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Staff unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StaffMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Staff edge %s", name)
}

// TemplateMutation represents an operation that mutates the Template nodes in the graph.
type TemplateMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	audio_groups       *[]string
	appendaudio_groups []string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Template, error)
	predicates         []predicate.Template
}

var _ ent.Mutation = (*TemplateMutation)(nil)

// templateOption allows management of the mutation configuration using functional options.
type templateOption func(*TemplateMutation)

// newTemplateMutation creates new mutation for the Template entity.
func newTemplateMutation(c config, op Op, opts ...templateOption) *TemplateMutation {
	m := &TemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemplateID sets the ID field of the mutation.
func withTemplateID(id int) templateOption {
	return func(m *TemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *Template
		)
		m.oldValue = func(ctx context.Context) (*Template, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Template.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemplate sets the old Template of the mutation.
func withTemplate(node *Template) templateOption {
	return func(m *TemplateMutation) {
		m.oldValue = func(context.Context) (*Template, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Template entities.
func (m *TemplateMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemplateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemplateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Template.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAudioGroups sets the "audio_groups" field.
func (m *TemplateMutation) SetAudioGroups(s []string) {
	m.audio_groups = &s
	m.appendaudio_groups = nil
}

// AudioGroups returns the value of the "audio_groups" field in the mutation.
func (m *TemplateMutation) AudioGroups() (r []string, exists bool) {
	v := m.audio_groups
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioGroups returns the old "audio_groups" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldAudioGroups(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioGroups is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioGroups requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioGroups: %w", err)
	}
	return oldValue.AudioGroups, nil
}

// AppendAudioGroups adds s to the "audio_groups" field.
func (m *TemplateMutation) AppendAudioGroups(s []string) {
	m.appendaudio_groups = append(m.appendaudio_groups, s...)
}

// AppendedAudioGroups returns the list of values that were appended to the "audio_groups" field in this mutation.
func (m *TemplateMutation) AppendedAudioGroups() ([]string, bool) {
	if len(m.appendaudio_groups) == 0 {
		return nil, false
	}
	return m.appendaudio_groups, true
}

// ClearAudioGroups clears the value of the "audio_groups" field.
func (m *TemplateMutation) ClearAudioGroups() {
	m.audio_groups = nil
	m.appendaudio_groups = nil
	m.clearedFields[template.FieldAudioGroups] = struct{}{}
}

// AudioGroupsCleared returns if the "audio_groups" field was cleared in this mutation.
func (m *TemplateMutation) AudioGroupsCleared() bool {
	_, ok := m.clearedFields[template.FieldAudioGroups]
	return ok
}

// ResetAudioGroups resets all changes to the "audio_groups" field.
func (m *TemplateMutation) ResetAudioGroups() {
	m.audio_groups = nil
	m.appendaudio_groups = nil
	delete(m.clearedFields, template.FieldAudioGroups)
}

// Where appends a list predicates to the TemplateMutation builder.
func (m *TemplateMutation) Where(ps ...predicate.Template) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Template, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Template).
func (m *TemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemplateMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.audio_groups != nil {
		fields = append(fields, template.FieldAudioGroups)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case template.FieldAudioGroups:
		return m.AudioGroups()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case template.FieldAudioGroups:
		return m.OldAudioGroups(ctx)
	}
	return nil, fmt.Errorf("unknown Template field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case template.FieldAudioGroups:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioGroups(v)
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Template numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(template.FieldAudioGroups) {
		fields = append(fields, template.FieldAudioGroups)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemplateMutation) ClearField(name string) error {
	switch name {
	case template.FieldAudioGroups:
		m.ClearAudioGroups()
		return nil
	}
	return fmt.Errorf("unknown Template nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemplateMutation) ResetField(name string) error {
	switch name {
	case template.FieldAudioGroups:
		m.ResetAudioGroups()
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Template unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Template edge %s", name)
}

// WtcCommandMutation represents an operation that mutates the WtcCommand nodes in the graph.
type WtcCommandMutation struct {
	config
	op                Op
	typ               string
	id                *int
	command           *wtccommand.Command
	source            *wtccommand.Source
	destination       *wtccommand.Destination
	pid               *int
	addpid            *int
	hardware_recno    *int
	addhardware_recno *int
	stream_recno      *int
	addstream_recno   *int
	template_recno    *int
	addtemplate_recno *int
	sequence          *string
	message           *string
	return_node       *string
	flag              *int8
	addflag           *int8
	seq_operation     *int8
	addseq_operation  *int8
	message_type      *int8
	addmessage_type   *int8
	node_name         *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*WtcCommand, error)
	predicates        []predicate.WtcCommand
}

var _ ent.Mutation = (*WtcCommandMutation)(nil)

// wtccommandOption allows management of the mutation configuration using functional options.
type wtccommandOption func(*WtcCommandMutation)

// newWtcCommandMutation creates new mutation for the WtcCommand entity.
func newWtcCommandMutation(c config, op Op, opts ...wtccommandOption) *WtcCommandMutation {
	m := &WtcCommandMutation{
		config:        c,
		op:            op,
		typ:           TypeWtcCommand,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWtcCommandID sets the ID field of the mutation.
func withWtcCommandID(id int) wtccommandOption {
	return func(m *WtcCommandMutation) {
		var (
			err   error
			once  sync.Once
			value *WtcCommand
		)
		m.oldValue = func(ctx context.Context) (*WtcCommand, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WtcCommand.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWtcCommand sets the old WtcCommand of the mutation.
func withWtcCommand(node *WtcCommand) wtccommandOption {
	return func(m *WtcCommandMutation) {
		m.oldValue = func(context.Context) (*WtcCommand, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WtcCommandMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WtcCommandMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WtcCommandMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WtcCommandMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WtcCommand.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommand sets the "command" field.
func (m *WtcCommandMutation) SetCommand(w wtccommand.Command) {
	m.command = &w
}

// Command returns the value of the "command" field in the mutation.
func (m *WtcCommandMutation) Command() (r wtccommand.Command, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldCommand(ctx context.Context) (v wtccommand.Command, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ResetCommand resets all changes to the "command" field.
func (m *WtcCommandMutation) ResetCommand() {
	m.command = nil
}

// SetSource sets the "source" field.
func (m *WtcCommandMutation) SetSource(w wtccommand.Source) {
	m.source = &w
}

// Source returns the value of the "source" field in the mutation.
func (m *WtcCommandMutation) Source() (r wtccommand.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldSource(ctx context.Context) (v wtccommand.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *WtcCommandMutation) ResetSource() {
	m.source = nil
}

// SetDestination sets the "destination" field.
func (m *WtcCommandMutation) SetDestination(w wtccommand.Destination) {
	m.destination = &w
}

// Destination returns the value of the "destination" field in the mutation.
func (m *WtcCommandMutation) Destination() (r wtccommand.Destination, exists bool) {
	v := m.destination
	if v == nil {
		return
	}
	return *v, true
}

// OldDestination returns the old "destination" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldDestination(ctx context.Context) (v wtccommand.Destination, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestination: %w", err)
	}
	return oldValue.Destination, nil
}

// ResetDestination resets all changes to the "destination" field.
func (m *WtcCommandMutation) ResetDestination() {
	m.destination = nil
}

// SetPid sets the "pid" field.
func (m *WtcCommandMutation) SetPid(i int) {
	m.pid = &i
	m.addpid = nil
}

// Pid returns the value of the "pid" field in the mutation.
func (m *WtcCommandMutation) Pid() (r int, exists bool) {
	v := m.pid
	if v == nil {
		return
	}
	return *v, true
}

// OldPid returns the old "pid" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldPid(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPid: %w", err)
	}
	return oldValue.Pid, nil
}

// AddPid adds i to the "pid" field.
func (m *WtcCommandMutation) AddPid(i int) {
	if m.addpid != nil {
		*m.addpid += i
	} else {
		m.addpid = &i
	}
}

// AddedPid returns the value that was added to the "pid" field in this mutation.
func (m *WtcCommandMutation) AddedPid() (r int, exists bool) {
	v := m.addpid
	if v == nil {
		return
	}
	return *v, true
}

// ResetPid resets all changes to the "pid" field.
func (m *WtcCommandMutation) ResetPid() {
	m.pid = nil
	m.addpid = nil
}

// SetHardwareRecno sets the "hardware_recno" field.
func (m *WtcCommandMutation) SetHardwareRecno(i int) {
	m.hardware_recno = &i
	m.addhardware_recno = nil
}

// HardwareRecno returns the value of the "hardware_recno" field in the mutation.
func (m *WtcCommandMutation) HardwareRecno() (r int, exists bool) {
	v := m.hardware_recno
	if v == nil {
		return
	}
	return *v, true
}

// OldHardwareRecno returns the old "hardware_recno" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldHardwareRecno(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHardwareRecno is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHardwareRecno requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHardwareRecno: %w", err)
	}
	return oldValue.HardwareRecno, nil
}

// AddHardwareRecno adds i to the "hardware_recno" field.
func (m *WtcCommandMutation) AddHardwareRecno(i int) {
	if m.addhardware_recno != nil {
		*m.addhardware_recno += i
	} else {
		m.addhardware_recno = &i
	}
}

// AddedHardwareRecno returns the value that was added to the "hardware_recno" field in this mutation.
func (m *WtcCommandMutation) AddedHardwareRecno() (r int, exists bool) {
	v := m.addhardware_recno
	if v == nil {
		return
	}
	return *v, true
}

// ResetHardwareRecno resets all changes to the "hardware_recno" field.
func (m *WtcCommandMutation) ResetHardwareRecno() {
	m.hardware_recno = nil
	m.addhardware_recno = nil
}

// SetStreamRecno sets the "stream_recno" field.
func (m *WtcCommandMutation) SetStreamRecno(i int) {
	m.stream_recno = &i
	m.addstream_recno = nil
}

// StreamRecno returns the value of the "stream_recno" field in the mutation.
func (m *WtcCommandMutation) StreamRecno() (r int, exists bool) {
	v := m.stream_recno
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamRecno returns the old "stream_recno" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldStreamRecno(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamRecno is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamRecno requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamRecno: %w", err)
	}
	return oldValue.StreamRecno, nil
}

// AddStreamRecno adds i to the "stream_recno" field.
func (m *WtcCommandMutation) AddStreamRecno(i int) {
	if m.addstream_recno != nil {
		*m.addstream_recno += i
	} else {
		m.addstream_recno = &i
	}
}

// AddedStreamRecno returns the value that was added to the "stream_recno" field in this mutation.
func (m *WtcCommandMutation) AddedStreamRecno() (r int, exists bool) {
	v := m.addstream_recno
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreamRecno resets all changes to the "stream_recno" field.
func (m *WtcCommandMutation) ResetStreamRecno() {
	m.stream_recno = nil
	m.addstream_recno = nil
}

// SetTemplateRecno sets the "template_recno" field.
func (m *WtcCommandMutation) SetTemplateRecno(i int) {
	m.template_recno = &i
	m.addtemplate_recno = nil
}

// TemplateRecno returns the value of the "template_recno" field in the mutation.
func (m *WtcCommandMutation) TemplateRecno() (r int, exists bool) {
	v := m.template_recno
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateRecno returns the old "template_recno" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldTemplateRecno(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateRecno is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateRecno requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateRecno: %w", err)
	}
	return oldValue.TemplateRecno, nil
}

// AddTemplateRecno adds i to the "template_recno" field.
func (m *WtcCommandMutation) AddTemplateRecno(i int) {
	if m.addtemplate_recno != nil {
		*m.addtemplate_recno += i
	} else {
		m.addtemplate_recno = &i
	}
}

// AddedTemplateRecno returns the value that was added to the "template_recno" field in this mutation.
func (m *WtcCommandMutation) AddedTemplateRecno() (r int, exists bool) {
	v := m.addtemplate_recno
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemplateRecno resets all changes to the "template_recno" field.
func (m *WtcCommandMutation) ResetTemplateRecno() {
	m.template_recno = nil
	m.addtemplate_recno = nil
}

// SetSequence sets the "sequence" field.
func (m *WtcCommandMutation) SetSequence(s string) {
	m.sequence = &s
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *WtcCommandMutation) Sequence() (r string, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldSequence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// ResetSequence resets all changes to the "sequence" field.
func (m *WtcCommandMutation) ResetSequence() {
	m.sequence = nil
}

// SetMessage sets the "message" field.
func (m *WtcCommandMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *WtcCommandMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *WtcCommandMutation) ResetMessage() {
	m.message = nil
}

// SetReturnNode sets the "return_node" field.
func (m *WtcCommandMutation) SetReturnNode(s string) {
	m.return_node = &s
}

// ReturnNode returns the value of the "return_node" field in the mutation.
func (m *WtcCommandMutation) ReturnNode() (r string, exists bool) {
	v := m.return_node
	if v == nil {
		return
	}
	return *v, true
}

// OldReturnNode returns the old "return_node" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldReturnNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReturnNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReturnNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReturnNode: %w", err)
	}
	return oldValue.ReturnNode, nil
}

// ResetReturnNode resets all changes to the "return_node" field.
func (m *WtcCommandMutation) ResetReturnNode() {
	m.return_node = nil
}

// SetFlag sets the "flag" field.
func (m *WtcCommandMutation) SetFlag(i int8) {
	m.flag = &i
	m.addflag = nil
}

// Flag returns the value of the "flag" field in the mutation.
func (m *WtcCommandMutation) Flag() (r int8, exists bool) {
	v := m.flag
	if v == nil {
		return
	}
	return *v, true
}

// OldFlag returns the old "flag" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldFlag(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlag: %w", err)
	}
	return oldValue.Flag, nil
}

// AddFlag adds i to the "flag" field.
func (m *WtcCommandMutation) AddFlag(i int8) {
	if m.addflag != nil {
		*m.addflag += i
	} else {
		m.addflag = &i
	}
}

// AddedFlag returns the value that was added to the "flag" field in this mutation.
func (m *WtcCommandMutation) AddedFlag() (r int8, exists bool) {
	v := m.addflag
	if v == nil {
		return
	}
	return *v, true
}

// ResetFlag resets all changes to the "flag" field.
func (m *WtcCommandMutation) ResetFlag() {
	m.flag = nil
	m.addflag = nil
}

// SetSeqOperation sets the "seq_operation" field.
func (m *WtcCommandMutation) SetSeqOperation(i int8) {
	m.seq_operation = &i
	m.addseq_operation = nil
}

// SeqOperation returns the value of the "seq_operation" field in the mutation.
func (m *WtcCommandMutation) SeqOperation() (r int8, exists bool) {
	v := m.seq_operation
	if v == nil {
		return
	}
	return *v, true
}

// OldSeqOperation returns the old "seq_operation" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldSeqOperation(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeqOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeqOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeqOperation: %w", err)
	}
	return oldValue.SeqOperation, nil
}

// AddSeqOperation adds i to the "seq_operation" field.
func (m *WtcCommandMutation) AddSeqOperation(i int8) {
	if m.addseq_operation != nil {
		*m.addseq_operation += i
	} else {
		m.addseq_operation = &i
	}
}

// AddedSeqOperation returns the value that was added to the "seq_operation" field in this mutation.
func (m *WtcCommandMutation) AddedSeqOperation() (r int8, exists bool) {
	v := m.addseq_operation
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeqOperation resets all changes to the "seq_operation" field.
func (m *WtcCommandMutation) ResetSeqOperation() {
	m.seq_operation = nil
	m.addseq_operation = nil
}

// SetMessageType sets the "message_type" field.
func (m *WtcCommandMutation) SetMessageType(i int8) {
	m.message_type = &i
	m.addmessage_type = nil
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *WtcCommandMutation) MessageType() (r int8, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldMessageType(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// AddMessageType adds i to the "message_type" field.
func (m *WtcCommandMutation) AddMessageType(i int8) {
	if m.addmessage_type != nil {
		*m.addmessage_type += i
	} else {
		m.addmessage_type = &i
	}
}

// AddedMessageType returns the value that was added to the "message_type" field in this mutation.
func (m *WtcCommandMutation) AddedMessageType() (r int8, exists bool) {
	v := m.addmessage_type
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *WtcCommandMutation) ResetMessageType() {
	m.message_type = nil
	m.addmessage_type = nil
}

// SetNodeName sets the "node_name" field.
func (m *WtcCommandMutation) SetNodeName(s string) {
	m.node_name = &s
}

// NodeName returns the value of the "node_name" field in the mutation.
func (m *WtcCommandMutation) NodeName() (r string, exists bool) {
	v := m.node_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeName returns the old "node_name" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldNodeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeName: %w", err)
	}
	return oldValue.NodeName, nil
}

// ResetNodeName resets all changes to the "node_name" field.
func (m *WtcCommandMutation) ResetNodeName() {
	m.node_name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WtcCommandMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WtcCommandMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WtcCommand entity.
// If the WtcCommand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WtcCommandMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WtcCommandMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WtcCommandMutation builder.
func (m *WtcCommandMutation) Where(ps ...predicate.WtcCommand) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WtcCommandMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WtcCommandMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WtcCommand, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WtcCommandMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WtcCommandMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WtcCommand).
func (m *WtcCommandMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WtcCommandMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.command != nil {
		fields = append(fields, wtccommand.FieldCommand)
	}
	if m.source != nil {
		fields = append(fields, wtccommand.FieldSource)
	}
	if m.destination != nil {
		fields = append(fields, wtccommand.FieldDestination)
	}
	if m.pid != nil {
		fields = append(fields, wtccommand.FieldPid)
	}
	if m.hardware_recno != nil {
		fields = append(fields, wtccommand.FieldHardwareRecno)
	}
	if m.stream_recno != nil {
		fields = append(fields, wtccommand.FieldStreamRecno)
	}
	if m.template_recno != nil {
		fields = append(fields, wtccommand.FieldTemplateRecno)
	}
	if m.sequence != nil {
		fields = append(fields, wtccommand.FieldSequence)
	}
	if m.message != nil {
		fields = append(fields, wtccommand.FieldMessage)
	}
	if m.return_node != nil {
		fields = append(fields, wtccommand.FieldReturnNode)
	}
	if m.flag != nil {
		fields = append(fields, wtccommand.FieldFlag)
	}
	if m.seq_operation != nil {
		fields = append(fields, wtccommand.FieldSeqOperation)
	}
	if m.message_type != nil {
		fields = append(fields, wtccommand.FieldMessageType)
	}
	if m.node_name != nil {
		fields = append(fields, wtccommand.FieldNodeName)
	}
	if m.created_at != nil {
		fields = append(fields, wtccommand.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WtcCommandMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wtccommand.FieldCommand:
		return m.Command()
	case wtccommand.FieldSource:
		return m.Source()
	case wtccommand.FieldDestination:
		return m.Destination()
	case wtccommand.FieldPid:
		return m.Pid()
	case wtccommand.FieldHardwareRecno:
		return m.HardwareRecno()
	case wtccommand.FieldStreamRecno:
		return m.StreamRecno()
	case wtccommand.FieldTemplateRecno:
		return m.TemplateRecno()
	case wtccommand.FieldSequence:
		return m.Sequence()
	case wtccommand.FieldMessage:
		return m.Message()
	case wtccommand.FieldReturnNode:
		return m.ReturnNode()
	case wtccommand.FieldFlag:
		return m.Flag()
	case wtccommand.FieldSeqOperation:
		return m.SeqOperation()
	case wtccommand.FieldMessageType:
		return m.MessageType()
	case wtccommand.FieldNodeName:
		return m.NodeName()
	case wtccommand.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WtcCommandMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wtccommand.FieldCommand:
		return m.OldCommand(ctx)
	case wtccommand.FieldSource:
		return m.OldSource(ctx)
	case wtccommand.FieldDestination:
		return m.OldDestination(ctx)
	case wtccommand.FieldPid:
		return m.OldPid(ctx)
	case wtccommand.FieldHardwareRecno:
		return m.OldHardwareRecno(ctx)
	case wtccommand.FieldStreamRecno:
		return m.OldStreamRecno(ctx)
	case wtccommand.FieldTemplateRecno:
		return m.OldTemplateRecno(ctx)
	case wtccommand.FieldSequence:
		return m.OldSequence(ctx)
	case wtccommand.FieldMessage:
		return m.OldMessage(ctx)
	case wtccommand.FieldReturnNode:
		return m.OldReturnNode(ctx)
	case wtccommand.FieldFlag:
		return m.OldFlag(ctx)
	case wtccommand.FieldSeqOperation:
		return m.OldSeqOperation(ctx)
	case wtccommand.FieldMessageType:
		return m.OldMessageType(ctx)
	case wtccommand.FieldNodeName:
		return m.OldNodeName(ctx)
	case wtccommand.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WtcCommand field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WtcCommandMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wtccommand.FieldCommand:
		v, ok := value.(wtccommand.Command)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case wtccommand.FieldSource:
		v, ok := value.(wtccommand.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case wtccommand.FieldDestination:
		v, ok := value.(wtccommand.Destination)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestination(v)
		return nil
	case wtccommand.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPid(v)
		return nil
	case wtccommand.FieldHardwareRecno:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHardwareRecno(v)
		return nil
	case wtccommand.FieldStreamRecno:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamRecno(v)
		return nil
	case wtccommand.FieldTemplateRecno:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateRecno(v)
		return nil
	case wtccommand.FieldSequence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case wtccommand.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case wtccommand.FieldReturnNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReturnNode(v)
		return nil
	case wtccommand.FieldFlag:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlag(v)
		return nil
	case wtccommand.FieldSeqOperation:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeqOperation(v)
		return nil
	case wtccommand.FieldMessageType:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case wtccommand.FieldNodeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeName(v)
		return nil
	case wtccommand.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WtcCommand field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WtcCommandMutation) AddedFields() []string {
	var fields []string
	if m.addpid != nil {
		fields = append(fields, wtccommand.FieldPid)
	}
	if m.addhardware_recno != nil {
		fields = append(fields, wtccommand.FieldHardwareRecno)
	}
	if m.addstream_recno != nil {
		fields = append(fields, wtccommand.FieldStreamRecno)
	}
	if m.addtemplate_recno != nil {
		fields = append(fields, wtccommand.FieldTemplateRecno)
	}
	if m.addflag != nil {
		fields = append(fields, wtccommand.FieldFlag)
	}
	if m.addseq_operation != nil {
		fields = append(fields, wtccommand.FieldSeqOperation)
	}
	if m.addmessage_type != nil {
		fields = append(fields, wtccommand.FieldMessageType)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WtcCommandMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wtccommand.FieldPid:
		return m.AddedPid()
	case wtccommand.FieldHardwareRecno:
		return m.AddedHardwareRecno()
	case wtccommand.FieldStreamRecno:
		return m.AddedStreamRecno()
	case wtccommand.FieldTemplateRecno:
		return m.AddedTemplateRecno()
	case wtccommand.FieldFlag:
		return m.AddedFlag()
	case wtccommand.FieldSeqOperation:
		return m.AddedSeqOperation()
	case wtccommand.FieldMessageType:
		return m.AddedMessageType()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WtcCommandMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wtccommand.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPid(v)
		return nil
	case wtccommand.FieldHardwareRecno:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHardwareRecno(v)
		return nil
	case wtccommand.FieldStreamRecno:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreamRecno(v)
		return nil
	case wtccommand.FieldTemplateRecno:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemplateRecno(v)
		return nil
	case wtccommand.FieldFlag:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFlag(v)
		return nil
	case wtccommand.FieldSeqOperation:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeqOperation(v)
		return nil
	case wtccommand.FieldMessageType:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageType(v)
		return nil
	}
	return fmt.Errorf("unknown WtcCommand numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WtcCommandMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WtcCommandMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WtcCommandMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WtcCommand nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WtcCommandMutation) ResetField(name string) error {
	switch name {
	case wtccommand.FieldCommand:
		m.ResetCommand()
		return nil
	case wtccommand.FieldSource:
		m.ResetSource()
		return nil
	case wtccommand.FieldDestination:
		m.ResetDestination()
		return nil
	case wtccommand.FieldPid:
		m.ResetPid()
		return nil
	case wtccommand.FieldHardwareRecno:
		m.ResetHardwareRecno()
		return nil
	case wtccommand.FieldStreamRecno:
		m.ResetStreamRecno()
		return nil
	case wtccommand.FieldTemplateRecno:
		m.ResetTemplateRecno()
		return nil
	case wtccommand.FieldSequence:
		m.ResetSequence()
		return nil
	case wtccommand.FieldMessage:
		m.ResetMessage()
		return nil
	case wtccommand.FieldReturnNode:
		m.ResetReturnNode()
		return nil
	case wtccommand.FieldFlag:
		m.ResetFlag()
		return nil
	case wtccommand.FieldSeqOperation:
		m.ResetSeqOperation()
		return nil
	case wtccommand.FieldMessageType:
		m.ResetMessageType()
		return nil
	case wtccommand.FieldNodeName:
		m.ResetNodeName()
		return nil
	case wtccommand.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WtcCommand field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WtcCommandMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WtcCommandMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WtcCommandMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WtcCommandMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WtcCommandMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WtcCommandMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WtcCommandMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WtcCommand unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WtcCommandMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WtcCommand edge %s", name)
}
