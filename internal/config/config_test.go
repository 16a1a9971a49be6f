package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wordlister/internal/config"
)

func TestLoadDefaultConfigExpandsStorePath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.StorePathEnv, "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantStore := filepath.Join(tempHome, ".wordlist.lst")
	if cfg.Store.Path != wantStore {
		t.Fatalf("unexpected store path: got %q want %q", cfg.Store.Path, wantStore)
	}
	if cfg.Store.AcceptUsernames {
		t.Fatal("expected usernames to be stripped by default")
	}
	if cfg.Extract.Depth != 2 {
		t.Fatalf("unexpected default depth: %d", cfg.Extract.Depth)
	}
	if cfg.Extract.Length != 16 {
		t.Fatalf("unexpected default length: %d", cfg.Extract.Length)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" || cfg.Logging.File != "" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wordlister.toml")

	type payload struct {
		Store struct {
			Path            string `toml:"path"`
			AcceptUsernames bool   `toml:"accept_usernames"`
		} `toml:"store"`
		Extract struct {
			Depth   int    `toml:"depth"`
			Length  int    `toml:"length"`
			Recurse bool   `toml:"recurse"`
			Ext     string `toml:"ext"`
		} `toml:"extract"`
	}
	custom := payload{}
	custom.Store.Path = filepath.Join(tempDir, "words.lst")
	custom.Store.AcceptUsernames = true
	custom.Extract.Depth = 5
	custom.Extract.Length = 32
	custom.Extract.Recurse = true
	custom.Extract.Ext = " .txt "
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}

	store := cfg.StoreOptions()
	if store.Path != custom.Store.Path {
		t.Fatalf("expected store path from file, got %q", store.Path)
	}
	if !store.AcceptUsernames {
		t.Fatal("expected accept_usernames from file")
	}

	opts := cfg.ExtractOptions()
	if opts.MaxDepth != 5 || opts.MaxLength != 32 {
		t.Fatalf("unexpected extract bounds: %+v", opts)
	}
	if !opts.RecurseIntoFiles {
		t.Fatal("expected recurse from file")
	}
	if opts.ExtensionFilter != ".txt" {
		t.Fatalf("expected trimmed extension filter, got %q", opts.ExtensionFilter)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected default logging level to survive partial file, got %q", cfg.Logging.Level)
	}
}

func TestLoadExpandsLogFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(tempHome, "wordlister.toml")
	data := "[logging]\nfile = \"~/logs/wordlister.log\"\n"
	if err := os.WriteFile(configPath, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(tempHome, "logs", "wordlister.log")
	if cfg.Logging.File != want {
		t.Fatalf("unexpected log file: got %q want %q", cfg.Logging.File, want)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wordlister.toml")
	if err := os.WriteFile(configPath, []byte("[store]\nstash = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestStorePathEnvFallback(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	envPath := filepath.Join(tempDir, "from-env.lst")
	t.Setenv(config.StorePathEnv, envPath)

	cfg, _, _, err := config.Load(filepath.Join(tempDir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Store.Path != envPath {
		t.Fatalf("expected store path from env, got %q", cfg.Store.Path)
	}

	configPath := filepath.Join(tempDir, "wordlister.toml")
	filePath := filepath.Join(tempDir, "from-file.lst")
	if err := os.WriteFile(configPath, []byte("[store]\npath = \""+filepath.ToSlash(filePath)+"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err = config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Store.Path != filepath.Clean(filePath) {
		t.Fatalf("expected config file to win over env, got %q", cfg.Store.Path)
	}
}

func TestSetStorePathExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.Default()
	if err := cfg.SetStorePath("~/lists/words.lst"); err != nil {
		t.Fatalf("SetStorePath: %v", err)
	}
	want := filepath.Join(home, "lists", "words.lst")
	if cfg.Store.Path != want {
		t.Fatalf("got %q want %q", cfg.Store.Path, want)
	}
	if err := cfg.SetStorePath("   "); err == nil {
		t.Fatal("expected error for blank store path")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "accept_usernames") {
		t.Fatalf("sample config missing store section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Store.Path != "~/.wordlist.lst" {
		t.Fatalf("unexpected sample store path %q", cfg.Store.Path)
	}
	if cfg.Extract.Depth != 2 || cfg.Extract.Length != 16 {
		t.Fatalf("sample extract defaults drifted: %+v", cfg.Extract)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	valid := func() config.Config {
		cfg := config.Default()
		cfg.Store.Path = "/tmp/words.lst"
		return cfg
	}

	cfg := valid()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg = valid()
	cfg.Store.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty store path")
	}

	cfg = valid()
	cfg.Extract.Depth = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative depth")
	}

	cfg = valid()
	cfg.Extract.Length = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive length")
	}

	cfg = valid()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}

	cfg = valid()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
