// Package main hosts the wordlister CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls on
// the wordlist store and the filesystem extractor: truncating, showing, and
// adding to the store, extracting candidate words from directory trees or file
// contents, and scaffolding configuration. It centralizes configuration
// resolution, global flag overrides, and logger setup so subcommands can focus
// on user-facing output.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
