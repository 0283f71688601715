package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so that outer layers can map it to their
// own status codes.
type ErrorKind string

const (
	// KindMissingField indicates a required input was absent or empty.
	KindMissingField ErrorKind = "MISSING_FIELD"
	// KindInvalidValue indicates an input that is not a positive number.
	KindInvalidValue ErrorKind = "INVALID_VALUE"
	// KindImplausibleUnit indicates a height that is almost certainly not in meters.
	KindImplausibleUnit ErrorKind = "IMPLAUSIBLE_UNIT"
	// KindNotFound indicates the requested calculation does not exist.
	KindNotFound ErrorKind = "NOT_FOUND"
	// KindInternal is the catch-all for unexpected failures.
	KindInternal ErrorKind = "INTERNAL"
)

// Error is a failure carrying a machine-checkable kind and a message that is
// safe to show to a caller.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates an Error with the given kind and message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError wraps cause with a kind and message.
func WrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf reports the kind of err. Errors that are not (or do not wrap) an
// *Error are KindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// ErrCalculationNotFound is returned by history lookups for unknown ids.
var ErrCalculationNotFound = NewError(KindNotFound, "Calculation not found")
