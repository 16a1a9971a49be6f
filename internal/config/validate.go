package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateExtract(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateStore() error {
	if c.Store.Path == "" {
		return errors.New("store.path must be set")
	}
	return nil
}

func (c *Config) validateExtract() error {
	return c.ExtractOptions().Validate()
}

// Validate checks the bounds of an extraction run.
func (o ExtractOptions) Validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("extract.depth must be >= 0 (got %d)", o.MaxDepth)
	}
	if o.MaxLength <= 0 {
		return fmt.Errorf("extract.length must be positive (got %d)", o.MaxLength)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
