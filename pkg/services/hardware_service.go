package services

import (
	"context"
	"fmt"

	"github.com/messagenet/bannerd/ent"
	"github.com/messagenet/bannerd/ent/hardware"
)

// HardwareService manages device hardware records.
type HardwareService struct {
	client *ent.Client
}

// NewHardwareService creates a new HardwareService
func NewHardwareService(client *ent.Client) *HardwareService {
	return &HardwareService{client: client}
}

// Get retrieves a hardware record by recno.
func (s *HardwareService) Get(ctx context.Context, recno int) (*ent.Hardware, error) {
	row, err := s.client.Hardware.Get(ctx, recno)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hardware %d: %w", recno, err)
	}
	return row, nil
}

// GetByDeviceID retrieves a hardware record by its device-id string.
func (s *HardwareService) GetByDeviceID(ctx context.Context, deviceID string) (*ent.Hardware, error) {
	row, err := s.client.Hardware.Query().
		Where(hardware.DeviceIDEQ(deviceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hardware %q: %w", deviceID, err)
	}
	return row, nil
}

// SetConnectionStatus reflects a device's liveness into its hardware
// record so other processes can observe it.
func (s *HardwareService) SetConnectionStatus(ctx context.Context, recno int, status hardware.ConnectionStatus) error {
	if err := s.client.Hardware.UpdateOneID(recno).
		SetConnectionStatus(status).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to set connection status for %d: %w", recno, err)
	}
	return nil
}

// ClearAddress persists a cleared runtime-learned address.
func (s *HardwareService) ClearAddress(ctx context.Context, recno int) error {
	if err := s.client.Hardware.UpdateOneID(recno).
		SetAddress("").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear address for %d: %w", recno, err)
	}
	return nil
}

// ReportNetworkInfo applies a device's self-reported network state.
// The address is updated only when it differs from the stored one and
// either the configured or the current IP method is DHCP — statically
// addressed devices are never rewritten from a self-report.
// Returns true when the record changed.
func (s *HardwareService) ReportNetworkInfo(ctx context.Context, recno int, ipMethodConfig, ipMethodCurrent, address string) (bool, error) {
	if address == "" {
		return false, NewValidationError("ipAddress", "required")
	}
	row, err := s.Get(ctx, recno)
	if err != nil {
		return false, err
	}
	if row.Address == address {
		return false, nil
	}
	if ipMethodConfig != "DHCP" && ipMethodCurrent != "DHCP" {
		return false, nil
	}
	if err := s.client.Hardware.UpdateOneID(recno).
		SetAddress(address).
		SetAutoAddress(true).
		SetIPMethodCurrent(ipMethodCurrent).
		Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to update network info for %d: %w", recno, err)
	}
	return true, nil
}
