package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, "/var/lib/bannerd", cfg.StateDir)
	assert.Equal(t, "local", cfg.NodeName)

	assert.Equal(t, 100*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, 25*time.Millisecond, cfg.Queue.PollIntervalJitter)
	assert.Equal(t, 10*time.Second, cfg.Queue.ResponseTimeout)
	assert.Equal(t, 30*time.Second, cfg.Queue.GracefulShutdownTimeout)
	assert.True(t, cfg.Queue.PurgeOnStartup)

	assert.Equal(t, 5*time.Second, cfg.Transport.ConnectTimeout)
	assert.Equal(t, 5, cfg.Transport.ConnectRetries)
	assert.Equal(t, time.Second, cfg.Transport.RetryDelay)
	assert.Equal(t, 5*time.Second, cfg.Transport.ReadTimeout)
	assert.Equal(t, 5, cfg.Transport.ReadRetries)
	assert.Equal(t, 5*time.Minute, cfg.Transport.PingInterval)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("STATE_DIR", "/tmp/bannerd-test")
	t.Setenv("NODE_NAME", "node7")
	t.Setenv("QUEUE_POLL_INTERVAL", "250ms")
	t.Setenv("QUEUE_PURGE_ON_STARTUP", "false")
	t.Setenv("TRANSPORT_CONNECT_RETRIES", "2")
	t.Setenv("TRANSPORT_PING_INTERVAL", "30s")

	cfg := LoadFromEnv()

	assert.Equal(t, "/tmp/bannerd-test", cfg.StateDir)
	assert.Equal(t, "node7", cfg.NodeName)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
	assert.False(t, cfg.Queue.PurgeOnStartup)
	assert.Equal(t, 2, cfg.Transport.ConnectRetries)
	assert.Equal(t, 30*time.Second, cfg.Transport.PingInterval)
}

func TestLoadFromEnvMalformedValuesFallBack(t *testing.T) {
	t.Setenv("QUEUE_POLL_INTERVAL", "soon")
	t.Setenv("TRANSPORT_CONNECT_RETRIES", "many")

	cfg := LoadFromEnv()

	assert.Equal(t, 100*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, 5, cfg.Transport.ConnectRetries)
}
