// Package errors provides error handling for widgetgen.
//
// It re-exports the parts of github.com/cockroachdb/errors the tool relies on
// (stack traces, wrapping, user-facing hints) and declares the sentinel errors
// returned at widgetgen's boundaries: layout loading, shape parsing and config.
//
// The code generator and layout projector never return errors. Only the
// edges that read files or parse user input do.
//
// Usage:
//
//	if err := layout.Validate(); err != nil {
//	    return errors.Wrapf(err, "layout %s", path)
//	}
//
//	return errors.WithHint(err, "valid shapes are full, widgets, function")
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessagef = crdb.WithMessagef
)

// User-facing messages
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetail   = crdb.WithDetail
	WithDetailf  = crdb.WithDetailf
	FlattenHints = crdb.FlattenHints
	GetAllHints  = crdb.GetAllHints
)

// Inspection
var (
	Is        = crdb.Is
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors. Match with errors.Is; wrap to add context.
var (
	// ErrUnknownShape is returned when an export shape name is not one of
	// full, widgets or function.
	ErrUnknownShape = New("unknown export shape")

	// ErrInvalidLayout marks a layout that breaks an element invariant
	// (duplicate id, id without numeric suffix, negative extent).
	ErrInvalidLayout = New("invalid layout")

	// ErrIncompatibleLayout marks a layout document whose declared version
	// is outside the supported schema range.
	ErrIncompatibleLayout = New("incompatible layout version")

	// ErrUnsupportedFormat is returned for layout files that are not
	// JSON, YAML or TOML.
	ErrUnsupportedFormat = New("unsupported layout format")
)

// IsInvalidLayout reports whether err is or wraps ErrInvalidLayout.
func IsInvalidLayout(err error) bool {
	return err != nil && Is(err, ErrInvalidLayout)
}

// InvalidLayoutf creates an ErrInvalidLayout with a formatted reason.
func InvalidLayoutf(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidLayout, format, args...)
}
