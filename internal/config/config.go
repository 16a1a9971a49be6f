package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Store contains the location of the wordlist and its username policy.
type Store struct {
	Path            string `toml:"path"`
	AcceptUsernames bool   `toml:"accept_usernames"`
}

// Extract contains default parameters for the extract command.
type Extract struct {
	Depth         int    `toml:"depth"`
	Length        int    `toml:"length"`
	Recurse       bool   `toml:"recurse"`
	Ext           string `toml:"ext"`
	KeepExt       bool   `toml:"keep_ext"`
	IncludeHidden bool   `toml:"include_hidden"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// File additionally receives every record. Empty disables it.
	File string `toml:"file"`
}

// Config encapsulates all configuration values for wordlister.
//
// Configuration sections:
//   - Store: wordlist location and username handling
//   - Extract: defaults for directory and file extraction
//   - Logging: log format, level, and optional log file
type Config struct {
	Store   Store   `toml:"store"`
	Extract Extract `toml:"extract"`
	Logging Logging `toml:"logging"`
}

// StoreOptions is the immutable store configuration handed to the wordlist package.
type StoreOptions struct {
	Path            string
	AcceptUsernames bool
}

// ExtractOptions is the immutable configuration of a single extraction run.
type ExtractOptions struct {
	MaxDepth         int
	MaxLength        int
	RecurseIntoFiles bool
	ExtensionFilter  string
	KeepExtension    bool
	IncludeHidden    bool
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// StoreOptions returns the store settings as an immutable value.
func (c *Config) StoreOptions() StoreOptions {
	return StoreOptions{
		Path:            c.Store.Path,
		AcceptUsernames: c.Store.AcceptUsernames,
	}
}

// ExtractOptions returns the configured extraction defaults.
func (c *Config) ExtractOptions() ExtractOptions {
	return ExtractOptions{
		MaxDepth:         c.Extract.Depth,
		MaxLength:        c.Extract.Length,
		RecurseIntoFiles: c.Extract.Recurse,
		ExtensionFilter:  c.Extract.Ext,
		KeepExtension:    c.Extract.KeepExt,
		IncludeHidden:    c.Extract.IncludeHidden,
	}
}

// SetStorePath expands and applies a store path override.
func (c *Config) SetStorePath(value string) error {
	expanded, err := expandPath(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("store path: %w", err)
	}
	if expanded == "" {
		return errors.New("store path must not be empty")
	}
	c.Store.Path = expanded
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
