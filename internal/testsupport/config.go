package testsupport

import (
	"path/filepath"
	"testing"

	"wordlister/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose store lives in a unique temp directory.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Store.Path = filepath.Join(base, "wordlist.lst")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithAcceptUsernames sets the username policy on the test config.
func WithAcceptUsernames(accept bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Store.AcceptUsernames = accept
	}
}

// WithStoreName places the store under the test base directory with the given name.
func WithStoreName(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Store.Path = filepath.Join(b.baseDir, name)
	}
}

// WithExtract lets callers adjust the extraction defaults.
func WithExtract(fn func(*config.Extract)) ConfigOption {
	return func(b *configBuilder) {
		fn(&b.cfg.Extract)
	}
}
