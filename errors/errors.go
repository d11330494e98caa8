// Package errors provides wrapping helpers and a structured error type that
// carries user-facing troubleshooting text.
package errors

import (
	"github.com/pkg/errors"
)

// Convenience re-exports, so callers only ever import this package.
var (
	New    = errors.New
	Errorf = errors.Errorf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
)

// Type classifies an Error for message selection.
type Type int

const (
	// Unknown errors are bugs or unclassified failures.
	Unknown Type = iota
	// User errors are caused by incorrect flags, config, or project layout.
	User
	// Enumeration errors occur while discovering or parsing manifests and
	// abort an entire run.
	Enumeration
)

// An Error is an error with a classification and user-facing help text.
type Error struct {
	Cause           error
	Type            Type
	Message         string
	Troubleshooting string
	Link            string
}

func (e *Error) Error() string {
	return render(e)
}

// Unwrap supports errors.Is/As chains through the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// UnknownError wraps an arbitrary error with a generic message.
func UnknownError(cause error, message string) *Error {
	return &Error{
		Cause:   cause,
		Type:    Unknown,
		Message: message,
	}
}
