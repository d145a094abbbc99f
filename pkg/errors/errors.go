// Package errors provides structured error types for the arcgram application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the layout core and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every error produced by the layout core is a configuration error: the
// caller supplied an edge list, ordering, label set, or side specification
// that cannot be resolved. Nothing is retried and nothing is partially drawn;
// a rendering call either completes or fails before the first draw call.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownLabel, "unknown labels in ordering: %v", missing)
//	if errors.Is(err, errors.ErrCodeUnknownLabel) {
//	    // Handle ordering error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout configuration errors
	ErrCodeShape          Code = "SHAPE_ERROR"     // edge list or side spec has an unrecognized shape
	ErrCodeLengthMismatch Code = "LENGTH_MISMATCH" // labels or ordering length differs from node count
	ErrCodeUnknownLabel   Code = "UNKNOWN_LABEL"   // ordering entry resolves to no known label
	ErrCodeUnknownNode    Code = "UNKNOWN_NODE"    // edge references a node absent from the node set
	ErrCodeMixedSign      Code = "MIXED_SIGN"      // numeric side spec mixes positive and negative indices
	ErrCodeEmptyGraph     Code = "EMPTY_GRAPH"     // zero nodes

	// Input/shell errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
