// Package errors provides structured error types for the dependgen application.
//
// Error codes follow a hierarchical naming convention:
//   - UNSUPPORTED_*: input the tool does not handle
//   - *_NOT_FOUND: resource missing at the resolved location
//   - NETWORK_*: network-related errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedProvider, "unknown forge host: %s", host)
//	if errors.Is(err, errors.ErrCodeUnsupportedProvider) {
//	    // Handle unsupported URL
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeUnsupportedProvider means the repository URL matches none of the
	// supported forges (GitHub, GitLab, Drupal GitLab).
	ErrCodeUnsupportedProvider Code = "UNSUPPORTED_PROVIDER"

	// ErrCodeBranchResolution means the provider API could not supply a
	// default branch for a repository with no explicit branch.
	ErrCodeBranchResolution Code = "BRANCH_RESOLUTION"

	// ErrCodeManifestNotFound means no manifest file exists at the resolved
	// raw-content URL. Fatal for the root repository, a recoverable skip for
	// dependencies.
	ErrCodeManifestNotFound Code = "MANIFEST_NOT_FOUND"

	// ErrCodeUnresolvedDependency means a dependency name maps to no
	// resolvable repository on any supported provider. Always recoverable;
	// the dependency stays a bare edge in the graph.
	ErrCodeUnresolvedDependency Code = "UNRESOLVED_DEPENDENCY"

	// ErrCodeWriteError means the output document could not be written.
	ErrCodeWriteError Code = "WRITE_ERROR"

	// Network and input errors
	ErrCodeNetwork      Code = "NETWORK_ERROR"
	ErrCodeInvalidInput Code = "INVALID_INPUT"
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
