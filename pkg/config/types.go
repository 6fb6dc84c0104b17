// Package config provides configuration loading and validation for timeslice.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Defaults DefaultsConfig  `yaml:"defaults"`
	Output   OutputConfig    `yaml:"output"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// DefaultsConfig carries the window and bounds policy applied when a command
// does not override them. The parsing core never reads this: explicit values
// are passed down from the CLI.
type DefaultsConfig struct {
	// WindowSeconds is the uniform centered-window width for single
	// timestamps and single-column batches.
	WindowSeconds int64 `yaml:"window_seconds"`

	// RangeMinSeconds is the minimum accepted explicit-range duration.
	RangeMinSeconds int64 `yaml:"range_min_seconds"`

	// RangeMaxSeconds is the maximum accepted explicit-range duration.
	// Zero means no upper bound.
	RangeMaxSeconds int64 `yaml:"range_max_seconds"`
}

// OutputConfig selects the default rendering format.
type OutputConfig struct {
	// Format is the report format (text or json).
	Format string `yaml:"format"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerAlways fires after every batch (default).
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerOnErrors fires only when the batch had row errors.
	WebhookTriggerOnErrors WebhookTrigger = "on_errors"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending batch reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "always" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
