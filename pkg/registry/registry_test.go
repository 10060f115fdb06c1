package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messagenet/bannerd/ent"
	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/pkg/registry"
	util "github.com/messagenet/bannerd/test/util"
)

func seedHardware(t *testing.T, client *ent.Client, recno int, deviceID string, kind hardware.DeviceKind) {
	t.Helper()
	_, err := client.Hardware.Create().
		SetID(recno).
		SetDeviceID(deviceID).
		SetDeviceKind(kind).
		SetAddress("192.168.1.229").
		SetPassword("pw").
		Save(context.Background())
	require.NoError(t, err)
}

func TestBuildAndLookup(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	seedHardware(t, client, 363, "EVO-363", hardware.DeviceKindAppliance)
	seedHardware(t, client, 100, "NET-100", hardware.DeviceKindTransport)

	reg, err := registry.Build(ctx, client)
	require.NoError(t, err)

	dev, ok := reg.Lookup(363)
	require.True(t, ok)
	assert.Equal(t, "EVO-363", dev.DeviceID)
	assert.Equal(t, "192.168.1.229", dev.Address())

	dev, ok = reg.LookupDeviceID("NET-100")
	require.True(t, ok)
	assert.Equal(t, 100, dev.Recno)

	_, ok = reg.Lookup(999)
	assert.False(t, ok)
}

func TestAppliancesOnlyAndInOrder(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	seedHardware(t, client, 364, "EVO-364", hardware.DeviceKindAppliance)
	seedHardware(t, client, 363, "EVO-363", hardware.DeviceKindAppliance)
	seedHardware(t, client, 100, "NET-100", hardware.DeviceKindTransport)
	seedHardware(t, client, 500, "CAM-500", hardware.DeviceKindIo)

	reg, err := registry.Build(ctx, client)
	require.NoError(t, err)

	apps := reg.Appliances()
	require.Len(t, apps, 2)
	assert.Equal(t, 363, apps[0].Recno)
	assert.Equal(t, 364, apps[1].Recno)
}

func TestRefreshUpdatesEntryKeepsSlots(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	seedHardware(t, client, 363, "EVO-363", hardware.DeviceKindAppliance)
	reg, err := registry.Build(ctx, client)
	require.NoError(t, err)

	dev, _ := reg.Lookup(363)
	require.NoError(t, dev.Slots.Set(0, 345, "FIRE DRILL"))

	require.NoError(t, client.Hardware.UpdateOneID(363).
		SetAddress("192.168.1.230").
		SetPassword("newpw").
		Exec(ctx))

	require.NoError(t, reg.Refresh(ctx, 363))

	assert.Equal(t, "192.168.1.230", dev.Address())
	assert.Equal(t, "newpw", dev.Password)
	// A hardware update must not blank what the device is showing.
	assert.Equal(t, 345, dev.Slots.Get(0).Recno)
}

func TestRefreshInsertsUnknownDevice(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	reg, err := registry.Build(ctx, client)
	require.NoError(t, err)

	seedHardware(t, client, 363, "EVO-363", hardware.DeviceKindAppliance)
	require.NoError(t, reg.Refresh(ctx, 363))

	dev, ok := reg.Lookup(363)
	require.True(t, ok)
	assert.Equal(t, "EVO-363", dev.DeviceID)
}

func TestDeviceClearLearnedAddress(t *testing.T) {
	dev := &registry.Device{}

	dev.SetAddress("192.168.1.229", false)
	assert.False(t, dev.ClearLearnedAddress())
	assert.Equal(t, "192.168.1.229", dev.Address())

	dev.SetAddress("192.168.1.229", true)
	assert.True(t, dev.ClearLearnedAddress())
	assert.Empty(t, dev.Address())
}
