package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"wordlister/internal/config"
	"wordlister/internal/logging"
	"wordlister/internal/wordlist"
)

type globalFlags struct {
	wordlist string
	username bool
	config   string
	logLevel string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once, applies global flag overrides,
// and builds the invocation logger on the command's error stream.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if err != nil {
			c.configErr = err
			return
		}
		logger, _ = logging.WithCorrelationID(logger)
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if path := strings.TrimSpace(c.flags.wordlist); path != "" {
		if err := cfg.SetStorePath(path); err != nil {
			return err
		}
	}
	if c.flags.username {
		cfg.Store.AcceptUsernames = true
	}
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	return nil
}

func (c *commandContext) openStore(cmd *cobra.Command) (*wordlist.Store, *slog.Logger, error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	store, err := wordlist.Open(cfg.StoreOptions(), c.logger)
	if err != nil {
		return nil, nil, err
	}
	return store, c.logger, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func addedMessage(submitted, before, after int) string {
	return fmt.Sprintf("Added %d words (including %d new words).", submitted, after-before)
}
