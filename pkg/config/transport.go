package config

import "time"

// TransportConfig controls the appliance socket client. The budgets
// mirror the appliance's intermittent connectivity: short, bounded
// attempts with fixed spacing rather than exponential backoff.
type TransportConfig struct {
	// ConnectTimeout is the budget for one TCP connect attempt.
	ConnectTimeout time.Duration

	// ConnectRetries is the number of retries after the first connect
	// attempt; retries+1 attempts total.
	ConnectRetries int

	// RetryDelay spaces consecutive connect or read attempts.
	RetryDelay time.Duration

	// ReadTimeout is the idle budget for one response read.
	ReadTimeout time.Duration

	// ReadRetries is the number of retries after the first read
	// attempt; retries+1 attempts total.
	ReadRetries int

	// PingInterval is how often the liveness probe runs per device.
	PingInterval time.Duration
}

// DefaultTransportConfig returns the built-in transport defaults.
func DefaultTransportConfig() *TransportConfig {
	return &TransportConfig{
		ConnectTimeout: 5 * time.Second,
		ConnectRetries: 5,
		RetryDelay:     1 * time.Second,
		ReadTimeout:    5 * time.Second,
		ReadRetries:    5,
		PingInterval:   5 * time.Minute,
	}
}

func loadTransportConfig() *TransportConfig {
	cfg := DefaultTransportConfig()
	cfg.ConnectTimeout = getEnvDuration("TRANSPORT_CONNECT_TIMEOUT", cfg.ConnectTimeout)
	cfg.ConnectRetries = getEnvInt("TRANSPORT_CONNECT_RETRIES", cfg.ConnectRetries)
	cfg.RetryDelay = getEnvDuration("TRANSPORT_RETRY_DELAY", cfg.RetryDelay)
	cfg.ReadTimeout = getEnvDuration("TRANSPORT_READ_TIMEOUT", cfg.ReadTimeout)
	cfg.ReadRetries = getEnvInt("TRANSPORT_READ_RETRIES", cfg.ReadRetries)
	cfg.PingInterval = getEnvDuration("TRANSPORT_PING_INTERVAL", cfg.PingInterval)
	return cfg
}
