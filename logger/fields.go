package logger

import (
	"go.uber.org/zap"
)

// Standard field names for structured logging across widgetgen.
// Use these constants instead of raw strings to keep logs queryable.
const (
	// Inputs and outputs
	FieldLayout = "layout" // layout file being processed
	FieldPath   = "path"
	FieldOutput = "output" // file written, or "-" for stdout
	FieldShape  = "shape"  // export shape: full, widgets, function
	FieldFormat = "format" // layout document format

	// Identity
	FieldSession   = "session_id" // one watch/serve run
	FieldComponent = "component"

	// Network
	FieldAddr    = "addr"
	FieldRemote  = "remote"
	FieldClients = "clients"

	// Timing and counts
	FieldDurationMS = "duration_ms"
	FieldCount      = "count"
	FieldBytes      = "bytes"

	// Errors
	FieldError = "error"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("serve").With(logger.FieldSession, id)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
