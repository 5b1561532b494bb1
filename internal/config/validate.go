package config

import (
	"fmt"
	"strings"
)

// normalize trims and lowercases free-form fields and restores defaults for
// values left empty in the file.
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// Validate checks value ranges after normalization.
func (c *Config) Validate() error {
	if c.Output.MinProgress < 0 || c.Output.MinProgress > 100 {
		return fmt.Errorf("output.min_progress must be between 0 and 100, got %v", c.Output.MinProgress)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
