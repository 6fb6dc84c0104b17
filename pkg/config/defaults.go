package config

import (
	"os"
	"strconv"
	"time"
)

// Default values for configuration.
const (
	DefaultWindowSeconds   = int64(600)
	DefaultRangeMinSeconds = int64(1)
	DefaultRangeMaxSeconds = int64(3600)
	DefaultOutputFormat    = "text"
	DefaultWebhookTimeout  = 10 * time.Second
)

// Environment variable names.
const (
	EnvWindowSeconds = "TIMESLICE_WINDOW_SECONDS"
	EnvOutputFormat  = "TIMESLICE_OUTPUT_FORMAT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			WindowSeconds:   DefaultWindowSeconds,
			RangeMinSeconds: DefaultRangeMinSeconds,
			RangeMaxSeconds: DefaultRangeMaxSeconds,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvWindowSeconds); v != "" {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil && secs >= 1 {
			c.Defaults.WindowSeconds = secs
		}
	}
	if format := os.Getenv(EnvOutputFormat); format != "" {
		c.Output.Format = format
	}
}
