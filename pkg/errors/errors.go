// Package errors provides structured error types for pctree.
//
// Error codes follow the three-way taxonomy a reduction engine needs:
//   - INVALID_INPUT: a caller-supplied argument is malformed (returned as an
//     error at the API boundary).
//   - INFEASIBLE: a restriction conflicts with ones already applied; this
//     is surfaced as a plain bool by MakeConsecutive and IsValidOrder, never
//     as an error; the code exists for callers that wrap a false result.
//   - BUG: an internal invariant was violated. These panic rather than
//     return, since a caller cannot recover a tree whose invariants no
//     longer hold.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "leaf %d belongs to a different tree", idx)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for pctree's three-way taxonomy.
const (
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInfeasible   Code = "INFEASIBLE"
	ErrCodeBug          Code = "BUG"
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
