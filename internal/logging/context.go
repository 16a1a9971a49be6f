package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType is the standardized key for machine-readable event names.
	FieldEventType = "event_type"
	// FieldErrorHint is the standardized key for a suggested next step.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldCorrelationID is the standardized structured logging key for invocation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldPath is the standardized key for the filesystem path an event concerns.
	FieldPath = "path"
)

// WithCorrelationID tags logger with a fresh invocation identifier and returns
// both. Every CLI run gets one so JSON logs from a single command can be grouped.
func WithCorrelationID(logger *slog.Logger) (*slog.Logger, string) {
	if logger == nil {
		logger = NewNop()
	}
	id := uuid.NewString()
	return logger.With(String(FieldCorrelationID, id)), id
}
