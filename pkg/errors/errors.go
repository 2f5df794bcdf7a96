// Package errors provides structured error types for necklace.
//
// Every failure the tool can report carries a machine-readable [Code] so the
// CLI and tests can tell a bad argument from a malformed report without
// matching on message text.
//
// # Error Codes
//
//   - INVALID_*: argument, path or config validation failures
//   - FILE_NOT_FOUND: the report file does not exist
//   - MALFORMED_*: the report exists but a line does not parse
//   - RECORD_NOT_FOUND: the requested record index is past the end of the report
//   - SHAPE_MISMATCH: the matrix does not fit the three-column layout
//   - INSUFFICIENT_LABELS: the record has fewer labels than nodes plus edges
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "cycle size must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Report errors
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeMalformedMatrix Code = "MALFORMED_MATRIX"
	ErrCodeMalformedRecord Code = "MALFORMED_RECORD"
	ErrCodeRecordNotFound  Code = "RECORD_NOT_FOUND"

	// Drawing errors
	ErrCodeShapeMismatch      Code = "SHAPE_MISMATCH"
	ErrCodeInsufficientLabels Code = "INSUFFICIENT_LABELS"

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
