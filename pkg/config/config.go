// Package config holds the runtime configuration for the banner dispatcher.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the top-level application configuration.
type Config struct {
	// StateDir is where per-device journal files live.
	StateDir string

	// NodeName identifies this node in queue envelopes; stale rows for
	// the node are purged at startup.
	NodeName string

	Queue     *QueueConfig
	Transport *TransportConfig
}

// LoadFromEnv builds a Config from the environment, falling back to the
// built-in defaults for anything unset.
func LoadFromEnv() *Config {
	return &Config{
		StateDir:  getEnvOrDefault("STATE_DIR", "/var/lib/bannerd"),
		NodeName:  getEnvOrDefault("NODE_NAME", "local"),
		Queue:     loadQueueConfig(),
		Transport: loadTransportConfig(),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
