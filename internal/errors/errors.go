// Package errors provides structured CLI errors with categories and
// remediation steps so failures tell the user what to do next.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies what kind of failure occurred.
type ErrorCategory int

const (
	// Argument indicates bad or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration indicates invalid or missing configuration.
	Configuration
	// Prerequisite indicates a missing file, key, or external requirement.
	Prerequisite
	// Runtime indicates a failure during execution.
	Runtime
)

// String returns a human-readable label for the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error carrying a category, optional usage
// string, and remediation steps.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Err         error
}

// Error returns the error message.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an argument error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates an argument error that also shows
// command usage.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a configuration error with remediation steps.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewPrerequisiteError creates a prerequisite error with remediation steps.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Prerequisite,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRuntimeError creates a runtime error with remediation steps.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap converts an existing error into a CLIError with the given category.
// A nil error yields nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapWithMessage wraps an error with an additional outer message.
// A nil error yields nil.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %s", message, err.Error()),
		Remediation: remediation,
		Err:         err,
	}
}

// IsCLIError reports whether err is (or wraps) a CLIError.
func IsCLIError(err error) bool {
	var cliErr *CLIError
	return stderrors.As(err, &cliErr)
}

// AsCLIError extracts the CLIError from err, or nil if there is none.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
