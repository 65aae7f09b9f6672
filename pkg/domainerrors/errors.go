// Package domainerrors defines the coded errors domain logic returns. Codes
// classify the failure for the transport layer; the HTTP boundary owns the
// translation to status codes and wire envelopes.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	// CodeBadRequest covers structurally invalid calls: a required field is
	// missing or the body cannot be decoded. These never reach the kernel.
	CodeBadRequest Code = "BAD_REQUEST"

	// CodeInvalidInput covers values that are present but malformed.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeNotFound covers lookups of entities that do not exist.
	CodeNotFound Code = "NOT_FOUND"

	// CodeInternal covers unexpected faults inside the pipeline. The
	// boundary masks the message before it reaches a caller.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is a domain error with a machine-readable code and a human-readable
// message safe to return to callers (internal errors are masked at the
// boundary, not here).
type Error struct {
	Code    Code
	Message string
	wrapped error
}

// New constructs a domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap constructs a domain error that preserves an underlying cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, wrapped: err}
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

// CodeOf extracts the code from an error, defaulting to CodeInternal so the
// boundary fails safe when handed an unclassified error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
