package config

const (
	defaultConfigPath   = "~/.config/wordlister/config.toml"
	projectConfigName   = "wordlister.toml"
	defaultStorePath    = "~/.wordlist.lst"
	defaultExtractDepth = 2
	defaultMaxLength    = 16
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"

	// StorePathEnv overrides the store path when the config file leaves it empty.
	StorePathEnv = "WORDLISTER_WORDLIST"
)

// Default returns a Config populated with repository defaults. The store path
// is resolved during normalization so WORDLISTER_WORDLIST can take effect.
func Default() Config {
	return Config{
		Extract: Extract{
			Depth:  defaultExtractDepth,
			Length: defaultMaxLength,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
