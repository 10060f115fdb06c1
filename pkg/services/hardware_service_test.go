package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messagenet/bannerd/ent"
	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/pkg/services"
	util "github.com/messagenet/bannerd/test/util"
)

func seedAppliance(t *testing.T, client *ent.Client, recno int, deviceID string) *ent.Hardware {
	t.Helper()
	row, err := client.Hardware.Create().
		SetID(recno).
		SetDeviceID(deviceID).
		SetDeviceKind(hardware.DeviceKindAppliance).
		SetAddress("192.168.1.229").
		SetIPMethodConfig("DHCP").
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestHardwareGet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewHardwareService(client)
	seedAppliance(t, client, 363, "EVO-363")

	row, err := svc.Get(context.Background(), 363)
	require.NoError(t, err)
	assert.Equal(t, "EVO-363", row.DeviceID)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestHardwareGetByDeviceID(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewHardwareService(client)
	seedAppliance(t, client, 363, "EVO-363")

	row, err := svc.GetByDeviceID(context.Background(), "EVO-363")
	require.NoError(t, err)
	assert.Equal(t, 363, row.ID)

	_, err = svc.GetByDeviceID(context.Background(), "EVO-999")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestHardwareSetConnectionStatus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewHardwareService(client)
	seedAppliance(t, client, 363, "EVO-363")
	ctx := context.Background()

	require.NoError(t, svc.SetConnectionStatus(ctx, 363, hardware.ConnectionStatusActive))

	row, err := svc.Get(ctx, 363)
	require.NoError(t, err)
	assert.Equal(t, hardware.ConnectionStatusActive, row.ConnectionStatus)
}

func TestHardwareClearAddress(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewHardwareService(client)
	seedAppliance(t, client, 363, "EVO-363")
	ctx := context.Background()

	require.NoError(t, svc.ClearAddress(ctx, 363))

	row, err := svc.Get(ctx, 363)
	require.NoError(t, err)
	assert.Empty(t, row.Address)
}

func TestReportNetworkInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("empty address is a validation error", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewHardwareService(client)
		seedAppliance(t, client, 363, "EVO-363")

		_, err := svc.ReportNetworkInfo(ctx, 363, "DHCP", "DHCP", "")
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown recno", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewHardwareService(client)

		_, err := svc.ReportNetworkInfo(ctx, 999, "DHCP", "DHCP", "192.168.1.230")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("same address is unchanged", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewHardwareService(client)
		seedAppliance(t, client, 363, "EVO-363")

		changed, err := svc.ReportNetworkInfo(ctx, 363, "DHCP", "DHCP", "192.168.1.229")
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("static device is never rewritten", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewHardwareService(client)
		seedAppliance(t, client, 363, "EVO-363")

		changed, err := svc.ReportNetworkInfo(ctx, 363, "STATIC", "STATIC", "192.168.1.230")
		require.NoError(t, err)
		assert.False(t, changed)

		row, err := svc.Get(ctx, 363)
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.229", row.Address)
	})

	t.Run("dhcp device updates address", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewHardwareService(client)
		seedAppliance(t, client, 363, "EVO-363")

		changed, err := svc.ReportNetworkInfo(ctx, 363, "DHCP", "DHCP", "192.168.1.230")
		require.NoError(t, err)
		assert.True(t, changed)

		row, err := svc.Get(ctx, 363)
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.230", row.Address)
		assert.True(t, row.AutoAddress)
		assert.Equal(t, "DHCP", row.IPMethodCurrent)
	})

	t.Run("current method dhcp is sufficient", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewHardwareService(client)
		seedAppliance(t, client, 363, "EVO-363")

		changed, err := svc.ReportNetworkInfo(ctx, 363, "STATIC", "DHCP", "192.168.1.230")
		require.NoError(t, err)
		assert.True(t, changed)
	})
}
