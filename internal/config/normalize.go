package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeStore(); err != nil {
		return err
	}
	c.normalizeExtract()
	return c.normalizeLogging()
}

func (c *Config) normalizeStore() error {
	c.Store.Path = strings.TrimSpace(c.Store.Path)
	if c.Store.Path == "" {
		if value, ok := os.LookupEnv(StorePathEnv); ok && strings.TrimSpace(value) != "" {
			c.Store.Path = strings.TrimSpace(value)
		} else {
			c.Store.Path = defaultStorePath
		}
	}
	var err error
	if c.Store.Path, err = expandPath(c.Store.Path); err != nil {
		return fmt.Errorf("store.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeExtract() {
	c.Extract.Ext = strings.TrimSpace(c.Extract.Ext)
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	} else {
		c.Logging.File = ""
	}
	return nil
}
