package errors

import "fmt"

// MissingDescription returns the error for a generate call with no
// prototype description.
func MissingDescription() *CLIError {
	return NewArgumentErrorWithUsage(
		"no prototype description provided",
		"protoforge generate \"<description>\" [flags]",
		"pass the description as the first argument",
		"or use --from-file to read a saved completion",
		"or pipe the completion text on stdin",
	)
}

// MissingInputFile returns the error for a --from-file path that does
// not exist.
func MissingInputFile(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("input file not found: %s", path),
		"check the path passed to --from-file",
	)
}

// InvalidProvider returns the error for an unrecognized provider name.
func InvalidProvider(name string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("unknown provider %q", name),
		"set provider to one of: openai, gemini",
		"check the provider field in your config file or PROTOFORGE_PROVIDER",
	)
}

// APIKeyMissing returns the error for a provider whose API key is not set.
func APIKeyMissing(provider, envVar string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("%s API key is not set", provider),
		fmt.Sprintf("export %s with your API key", envVar),
		"or add it to a .env file in the working directory",
	)
}

// ConfigFileNotFound returns the error for an explicitly requested config
// file that does not exist.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"run 'protoforge config init' to create one",
	)
}

// ConfigParseError returns the error for a config file that failed to load.
func ConfigParseError(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to parse config file %s: %v", path, err),
		Remediation: []string{
			"check the file is valid JSON",
			"run 'protoforge config init' to regenerate defaults",
		},
		Err: err,
	}
}

// InvalidFlagCombination returns the error for flags that cannot be used
// together.
func InvalidFlagCombination(flags, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination %s: %s", flags, reason),
	)
}

// TimeoutError returns the error for a provider call that exceeded its
// deadline.
func TimeoutError(duration, provider string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("request to %s timed out after %s", provider, duration),
		"increase the timeout in your config file",
		"or retry when the provider is less loaded",
	)
}

// OutputDirNotWritable returns the error for an output directory that
// cannot be created or written.
func OutputDirNotWritable(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("output directory is not writable: %s", path),
		"check directory permissions",
		"or set output_dir to a writable location",
	)
}

// ProjectNotFound returns the error for a project name with no
// materialized directory.
func ProjectNotFound(name string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("no project named %q in the output directory", name),
		"run 'protoforge recent' to list generated projects",
	)
}
