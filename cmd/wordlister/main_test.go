package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordlister/internal/config"
)

type cliTestEnv struct {
	home  string
	store string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.StorePathEnv, "")

	return &cliTestEnv{
		home:  home,
		store: filepath.Join(home, "words.lst"),
	}
}

// run executes the CLI against the env's store with stdin fed from input.
func (e *cliTestEnv) run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, input, append([]string{"--wordlist", e.store}, args...)...)
}

func runCLI(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()
	want := []string{"add", "config", "extract", "info", "show", "truncate"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected subcommand %q", name)
		}
	}
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := env.run(t, "", "--log-level", "loud", "show"); err == nil {
		t.Fatal("expected error for invalid --log-level")
	}
}

func TestConfigFileSuppliesStorePath(t *testing.T) {
	env := setupCLITestEnv(t)
	configPath := filepath.Join(env.home, "wordlister.toml")
	storePath := filepath.Join(env.home, "from-config.lst")

	if _, _, err := runCLI(t, "", "config", "init", "--path", configPath); err != nil {
		t.Fatalf("config init: %v", err)
	}
	// Rewrite the store path in the generated sample.
	writeConfig(t, configPath, "[store]\npath = \""+filepath.ToSlash(storePath)+"\"\n")

	if _, _, err := runCLI(t, "", "--config", configPath, "add", "fromconfig"); err != nil {
		t.Fatalf("add: %v", err)
	}
	stdout, _, err := runCLI(t, "", "--config", configPath, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if stdout != "fromconfig\n" {
		t.Fatalf("unexpected show output %q", stdout)
	}
}

func TestOutputShorthandAliasesWordlist(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, "", "-o", env.store, "add", "x"); err != nil {
		t.Fatalf("add: %v", err)
	}
	stdout, _, err := env.run(t, "", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if stdout != "x\n" {
		t.Fatalf("unexpected show output %q", stdout)
	}

	help, _, err := runCLI(t, "", "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	if strings.Contains(help, "--output") {
		t.Fatalf("alias should be hidden from help: %q", help)
	}
}

func TestLogFileFromConfigReceivesRecords(t *testing.T) {
	env := setupCLITestEnv(t)
	configPath := filepath.Join(env.home, "wordlister.toml")
	logPath := filepath.Join(env.home, "logs", "wordlister.log")
	writeConfig(t, configPath, "[logging]\nlevel = \"debug\"\nfile = \""+filepath.ToSlash(logPath)+"\"\n")

	_, stderr, err := env.run(t, "", "--config", configPath, "add", "logged")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "wordlist rewritten") {
		t.Fatalf("expected store debug record in log file, got %q", content)
	}
	if !strings.Contains(stderr, "wordlist rewritten") {
		t.Fatalf("expected record on stderr too, got %q", stderr)
	}
}
