package config

import "time"

// QueueConfig controls how dispatcher workers poll and consume the
// command queue.
type QueueConfig struct {
	// PollInterval is the cooperative delay applied after an empty read.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// ResponseTimeout bounds a request/response round-trip through the
	// queue (write then read until sentinel).
	ResponseTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for workers to
	// drain during shutdown.
	GracefulShutdownTimeout time.Duration

	// PurgeOnStartup removes stale queue rows tagged with this node's
	// name before workers start.
	PurgeOnStartup bool
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      25 * time.Millisecond,
		ResponseTimeout:         10 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
		PurgeOnStartup:          true,
	}
}

func loadQueueConfig() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.PollInterval = getEnvDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval)
	cfg.PollIntervalJitter = getEnvDuration("QUEUE_POLL_JITTER", cfg.PollIntervalJitter)
	cfg.ResponseTimeout = getEnvDuration("QUEUE_RESPONSE_TIMEOUT", cfg.ResponseTimeout)
	cfg.GracefulShutdownTimeout = getEnvDuration("QUEUE_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	cfg.PurgeOnStartup = getEnvOrDefault("QUEUE_PURGE_ON_STARTUP", "true") == "true"
	return cfg
}
