// Package errors provides coded error types for contract source metadata
// lookups.
//
// Error codes let the CLI and HTTP host tell apart the failure modes that the
// legacy manifest scan collapses into an empty string:
//   - MANIFEST_UNREADABLE: the build manifest could not be read
//   - REPOSITORY_ABSENT: the manifest declares no repository
//   - INVALID_MANIFEST: the manifest could not be parsed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeRepositoryAbsent, "no repository in %s", path)
//	if errors.Is(err, errors.ErrCodeRepositoryAbsent) {
//	    // fall back to a registry lookup
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeManifestUnreadable, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Manifest errors
	ErrCodeManifestUnreadable Code = "MANIFEST_UNREADABLE"
	ErrCodeRepositoryAbsent   Code = "REPOSITORY_ABSENT"
	ErrCodeInvalidManifest    Code = "INVALID_MANIFEST"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidPackage Code = "INVALID_PACKAGE"

	// Registry errors
	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeNetwork  Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
