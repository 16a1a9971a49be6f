// Package config loads, normalizes, and validates wordlister configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the WORDLISTER_WORDLIST
// environment fallback for the store location. Commands obtain the immutable
// StoreOptions and ExtractOptions values from here once per invocation and pass
// them explicitly to the packages doing the work.
package config
