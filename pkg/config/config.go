package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if err := validateDefaults(&cfg.Defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	if cfg.Output.Format != "text" && cfg.Output.Format != "json" {
		return fmt.Errorf("output: invalid format %q (must be text or json)", cfg.Output.Format)
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateDefaults(d *DefaultsConfig) error {
	if d.WindowSeconds < 1 {
		return fmt.Errorf("window_seconds must be at least 1, got %d", d.WindowSeconds)
	}
	if d.RangeMinSeconds < 1 {
		return fmt.Errorf("range_min_seconds must be at least 1, got %d", d.RangeMinSeconds)
	}
	if d.RangeMaxSeconds < 0 {
		return fmt.Errorf("range_max_seconds must not be negative, got %d", d.RangeMaxSeconds)
	}
	if d.RangeMaxSeconds != 0 && d.RangeMaxSeconds < d.RangeMinSeconds {
		return fmt.Errorf("range_max_seconds %d is below range_min_seconds %d",
			d.RangeMaxSeconds, d.RangeMinSeconds)
	}
	return nil
}

func validateWebhook(w *WebhookConfig) error {
	if w.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(w.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	switch w.Trigger {
	case "", WebhookTriggerAlways, WebhookTriggerOnErrors, WebhookTriggerNever:
	default:
		return fmt.Errorf("invalid trigger %q (must be always, on_errors, or never)", w.Trigger)
	}
	if w.Trigger == "" {
		w.Trigger = WebhookTriggerAlways
	}

	if w.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if w.Timeout == 0 {
		w.Timeout = DefaultWebhookTimeout
	}

	return nil
}
