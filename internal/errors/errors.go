// Package errors provides structured error types for cutlass operations.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// KindInvalidParameter represents an operation parameter that is out of
	// range, malformed, or mutually exclusive with another parameter.
	KindInvalidParameter ErrorKind = iota
	// KindMissingParameter represents a required value that was never set.
	KindMissingParameter
	// KindPath represents path-related errors.
	KindPath
	// KindIO represents I/O errors.
	KindIO
	// KindCommand represents external command execution errors.
	KindCommand
	// KindCancelled represents cancelled operations.
	KindCancelled
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParameter:
		return "Invalid parameter"
	case KindMissingParameter:
		return "Missing parameter"
	case KindPath:
		return "Path error"
	case KindIO:
		return "I/O error"
	case KindCommand:
		return "Command error"
	case KindCancelled:
		return "Operation cancelled"
	default:
		return "Unknown error"
	}
}

// CommandError represents an error from executing the external engine.
// It carries the full command text and the captured stderr so callers can
// report exactly what was attempted.
type CommandError struct {
	Command    string
	ExitCode   int
	Stderr     string
	Underlying error
}

func (e *CommandError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("failed to execute %s: %v", e.Command, e.Underlying)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("command %s failed with exit code %d: %s", e.Command, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("command %s failed with exit code %d", e.Command, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Underlying
}

// CoreError is the main error type for cutlass operations.
type CoreError struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target matches this error's kind.
func (e *CoreError) Is(target error) bool {
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewInvalidParameter creates an error for an out-of-range or malformed
// operation parameter.
func NewInvalidParameter(format string, args ...any) *CoreError {
	return &CoreError{Kind: KindInvalidParameter, Message: fmt.Sprintf(format, args...)}
}

// NewMissingParameter creates an error for a required value that was never set.
func NewMissingParameter(name string) *CoreError {
	return &CoreError{Kind: KindMissingParameter, Message: fmt.Sprintf("%s is required but was not set", name)}
}

// NewPathError creates a new path-related error.
func NewPathError(message string) *CoreError {
	return &CoreError{Kind: KindPath, Message: message}
}

// NewIOError creates a new I/O error.
func NewIOError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindIO, Message: message, Underlying: underlying}
}

// NewCommandStartError creates an error for when the engine fails to start.
func NewCommandStartError(cmd string, err error) *CoreError {
	cmdErr := &CommandError{Command: cmd, Underlying: err}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// NewCommandFailedError creates an error for when the engine returns a
// non-zero exit status.
func NewCommandFailedError(cmd string, exitCode int, stderr string) *CoreError {
	cmdErr := &CommandError{Command: cmd, ExitCode: exitCode, Stderr: stderr}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// NewCancelledError creates an error for cancelled builds.
func NewCancelledError(underlying error) *CoreError {
	return &CoreError{Kind: KindCancelled, Message: "build was cancelled", Underlying: underlying}
}

// IsKind checks if the error has the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}

// IsInvalidParameter checks if the error is a parameter validation error.
func IsInvalidParameter(err error) bool {
	return IsKind(err, KindInvalidParameter)
}

// IsMissingParameter checks if the error is a missing-parameter error.
func IsMissingParameter(err error) bool {
	return IsKind(err, KindMissingParameter)
}

// AsCommandError extracts the CommandError from an execution failure, if any.
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}

// WrapExecError wraps an exec.ExitError into a CoreError.
func WrapExecError(cmd string, err error, stderr string) *CoreError {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return NewCommandFailedError(cmd, exitErr.ExitCode(), stderr)
	}
	return NewCommandStartError(cmd, err)
}
