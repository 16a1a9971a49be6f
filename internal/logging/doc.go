// Package logging assembles structured slog loggers and formatting helpers used
// across wordlister.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and defines the field keys used for diagnostics (component,
// event_type, error_hint, impact, path). The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Diagnostics go to stderr by default so stdout stays reserved for word output.
package logging
