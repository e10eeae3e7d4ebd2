package cli

import (
	apperrors "protoforge/internal/errors"
)

// Exit codes for the protoforge CLI. These codes support scripting and
// CI integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime or generation failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitConfigError indicates invalid or missing configuration
	ExitConfigError = 3

	// ExitMissingPrerequisite indicates a missing file, key, or dependency
	ExitMissingPrerequisite = 4
)

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := apperrors.AsCLIError(err)
	if cliErr == nil {
		return ExitFailure
	}
	switch cliErr.Category {
	case apperrors.Argument:
		return ExitInvalidArguments
	case apperrors.Configuration:
		return ExitConfigError
	case apperrors.Prerequisite:
		return ExitMissingPrerequisite
	default:
		return ExitFailure
	}
}
