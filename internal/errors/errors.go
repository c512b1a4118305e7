// Package errors provides centralized error definitions and error handling
// utilities for tasklist. It defines sentinel errors, semantic error types,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
//   - ValidationError: submitted input was rejected (e.g. empty task text)
//   - IndexError: an operation referenced a task position that does not exist
//
// Both are recoverable: the store leaves its state untouched and the caller
// re-prompts the user.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewValidationError("task text required").WithField("text")
//	err := errors.NewIndexError("toggle", 7, 3)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrTextRequired) { ... }
//
//	var idxErr *errors.IndexError
//	if errors.As(err, &idxErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrTextRequired indicates that submitted task text was empty after trimming.
	ErrTextRequired = New("task text required")
	// ErrIndexOutOfRange indicates that a task index does not address a task.
	ErrIndexOutOfRange = New("task index out of range")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// TaskError is the base interface for all tasklist errors.
type TaskError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Message returns the bare message without type prefix or context.
func (e *baseError) Message() string {
	return e.message
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents rejected user input.
//
// Example:
//
//	err := errors.NewValidationError("task text required").WithField("text")
//	fmt.Println(err) // "validation error [field=text]: task text required"
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField sets the name of the rejected field.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue sets the rejected value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause sets the underlying cause.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%q", fmt.Sprint(e.Value)))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil && e.cause.Error() != e.message {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is matches any *ValidationError, then defers to the cause.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IndexError represents an operation that referenced a task position
// outside the current collection.
//
// Example:
//
//	err := errors.NewIndexError("remove", 5, 2)
//	fmt.Println(err) // "index error [op=remove]: index 5 out of range [0,2)"
type IndexError struct {
	baseError
	Op    string
	Index int
	Len   int
}

// NewIndexError creates a new IndexError for the named operation.
func NewIndexError(op string, index, length int) *IndexError {
	return &IndexError{
		baseError: baseError{
			message:  fmt.Sprintf("index %d out of range [0,%d)", index, length),
			cause:    ErrIndexOutOfRange,
			severity: SeverityInfo,
		},
		Op:    op,
		Index: index,
		Len:   length,
	}
}

// Error returns the formatted error message.
func (e *IndexError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("index error [op=%s]: %s", e.Op, e.message)
	}
	return fmt.Sprintf("index error: %s", e.message)
}

// Is matches any *IndexError and ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	if _, ok := target.(*IndexError); ok {
		return true
	}
	return target == ErrIndexOutOfRange
}

// -----------------------------------------------------------------------------
// Error Classification
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    m.status = errors.UserMessage(err)
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var taskErr TaskError
	if As(err, &taskErr) {
		return taskErr.IsUserFacing()
	}
	return false
}

// UserMessage returns the message to show an end user for err. Typed errors
// yield their bare message; anything else falls back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var m interface{ Message() string }
	if As(err, &m) {
		return m.Message()
	}
	return err.Error()
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement TaskError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var taskErr TaskError
	if As(err, &taskErr) {
		return taskErr.Severity()
	}
	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to load theme")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
