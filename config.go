package beacon

import (
	"github.com/hedeqiang/beacon/watcher"
)

// Config holds the global configuration for a Beacon instance.
type Config struct {
	// Poller configures the default polling behavior.
	Poller watcher.PollerConfig
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Poller: watcher.DefaultPollerConfig(),
	}
}
