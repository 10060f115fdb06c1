package appliance

import "errors"

var (
	// ErrNoAddress indicates the device has no known network address.
	ErrNoAddress = errors.New("device has no address")

	// ErrConnectFailed indicates every connect attempt failed.
	ErrConnectFailed = errors.New("failed to connect to device")

	// ErrWriteFailed indicates the request could not be written.
	ErrWriteFailed = errors.New("failed to write to device")

	// ErrReadTimeout indicates no response arrived within the read budget.
	ErrReadTimeout = errors.New("timed out reading device response")
)
