package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing failures. Each maps to one terminal
// failure mode of a single copy invocation.
const (
	// ErrConfig covers config file and flag validation problems.
	ErrConfig = "CONFIG"
	// ErrHomeDir means the home directory could not be determined when
	// tilde expansion or auto-discovery needed it.
	ErrHomeDir = "HOMEDIR"
	// ErrIdentity means an explicitly named identity file (and its .pub
	// variant) does not exist.
	ErrIdentity = "IDENTITY"
	// ErrRead means a resolved identity file exists but could not be read.
	ErrRead = "READ"
	// ErrNoIdentity means auto-discovery exhausted every file candidate
	// and the agent held nothing.
	ErrNoIdentity = "NO_IDENTITY"
	// ErrEmptyIdentity means resolved key content was empty after trimming.
	ErrEmptyIdentity = "EMPTY_IDENTITY"
	// ErrSpawn means the ssh transport binary could not be launched.
	ErrSpawn = "SPAWN"
	// ErrRemote means the transport ran but exited with a non-zero status.
	ErrRemote = "REMOTE"
)

// Error is a structured error with code, message, suggestion, and optional
// cause. Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrConfig code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrConfig,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface with the formatted three-part output.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var scErr *Error
	if errors.As(err, &scErr) {
		return scErr.Code == code
	}
	return false
}
