// Package registry keeps the in-memory device table: one entry per
// hardware row, caching address, credentials, connection status, and the
// per-device slot table. It is rebuilt at startup and refreshed by
// hardware-update envelopes.
package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/messagenet/bannerd/ent"
	"github.com/messagenet/bannerd/ent/hardware"
)

// Device is one registry entry. Address and status are guarded by the
// entry's own mutex; the slot table belongs to the device's worker.
type Device struct {
	Recno    int
	DeviceID string
	Kind     hardware.DeviceKind
	Port     int
	Password string
	RtspPort int

	mu          sync.Mutex
	address     string
	autoAddress bool
	status      hardware.ConnectionStatus

	Slots SlotTable
}

// Address returns the device's current network address; empty when the
// address is not known.
func (d *Device) Address() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.address
}

// AutoAddress reports whether the address was learned at runtime.
func (d *Device) AutoAddress() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.autoAddress
}

// SetAddress replaces the device's address.
func (d *Device) SetAddress(addr string, auto bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.address = addr
	d.autoAddress = auto
}

// ClearLearnedAddress drops a runtime-learned address so the next probe
// re-acquires it. No-op when the address was configured.
func (d *Device) ClearLearnedAddress() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.autoAddress {
		return false
	}
	d.address = ""
	return true
}

// Status returns the device's connection status.
func (d *Device) Status() hardware.ConnectionStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// SetStatus records the device's connection status.
func (d *Device) SetStatus(s hardware.ConnectionStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = s
}

// Registry is the device table keyed by hardware recno.
type Registry struct {
	mu      sync.RWMutex
	byRecno map[int]*Device
	byDevID map[string]*Device
	order   []*Device
	client  *ent.Client
}

// kindOrder is the fixed load order: transport resources must exist
// before the appliance workers that depend on them.
var kindOrder = []hardware.DeviceKind{
	hardware.DeviceKindTransport,
	hardware.DeviceKindIo,
	hardware.DeviceKindAppliance,
}

// Build loads every hardware row in device-kind order.
func Build(ctx context.Context, client *ent.Client) (*Registry, error) {
	r := &Registry{
		byRecno: make(map[int]*Device),
		byDevID: make(map[string]*Device),
		client:  client,
	}
	for _, kind := range kindOrder {
		rows, err := client.Hardware.Query().
			Where(hardware.DeviceKindEQ(kind)).
			Order(ent.Asc(hardware.FieldID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s devices: %w", kind, err)
		}
		for _, row := range rows {
			r.insert(deviceFromRow(row))
		}
	}
	return r, nil
}

func deviceFromRow(row *ent.Hardware) *Device {
	return &Device{
		Recno:       row.ID,
		DeviceID:    row.DeviceID,
		Kind:        row.DeviceKind,
		Port:        row.Port,
		Password:    row.Password,
		RtspPort:    row.RtspPort,
		address:     row.Address,
		autoAddress: row.AutoAddress,
		status:      row.ConnectionStatus,
	}
}

func (r *Registry) insert(d *Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byRecno[d.Recno] = d
	r.byDevID[d.DeviceID] = d
	r.order = append(r.order, d)
}

// Lookup returns the device with the given hardware recno.
func (r *Registry) Lookup(recno int) (*Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byRecno[recno]
	return d, ok
}

// LookupDeviceID returns the device with the given device-id string.
func (r *Registry) LookupDeviceID(id string) (*Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byDevID[id]
	return d, ok
}

// Appliances returns the appliance-kind devices in load order.
func (r *Registry) Appliances() []*Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Device
	for _, d := range r.order {
		if d.Kind == hardware.DeviceKindAppliance {
			out = append(out, d)
		}
	}
	return out
}

// Refresh re-reads one hardware row and updates the cached entry's
// address, credentials, and status. Slot state survives the refresh:
// a hardware update must not blank what the device is showing.
func (r *Registry) Refresh(ctx context.Context, recno int) error {
	row, err := r.client.Hardware.Get(ctx, recno)
	if err != nil {
		return fmt.Errorf("failed to refresh hardware %d: %w", recno, err)
	}
	d, ok := r.Lookup(recno)
	if !ok {
		r.insert(deviceFromRow(row))
		return nil
	}
	d.mu.Lock()
	d.address = row.Address
	d.autoAddress = row.AutoAddress
	d.status = row.ConnectionStatus
	d.Port = row.Port
	d.Password = row.Password
	d.RtspPort = row.RtspPort
	d.mu.Unlock()
	return nil
}
