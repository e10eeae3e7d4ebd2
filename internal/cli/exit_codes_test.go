package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "protoforge/internal/errors"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err      error
		expected int
	}{
		"nil is success":          {err: nil, expected: ExitSuccess},
		"plain error is failure":  {err: errors.New("boom"), expected: ExitFailure},
		"argument error":          {err: apperrors.NewArgumentError("bad arg"), expected: ExitInvalidArguments},
		"config error":            {err: apperrors.NewConfigError("bad config"), expected: ExitConfigError},
		"prerequisite error":      {err: apperrors.NewPrerequisiteError("missing"), expected: ExitMissingPrerequisite},
		"runtime error":           {err: apperrors.NewRuntimeError("failed"), expected: ExitFailure},
		"wrapped argument error":  {err: apperrors.Wrap(errors.New("x"), apperrors.Argument), expected: ExitInvalidArguments},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, ExitCode(test.err))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := buildPrompt("ESP32 soil monitor")
	assert.Contains(t, prompt, "ESP32 soil monitor")
	assert.Contains(t, prompt, `"codeSnippets"`)
	assert.Contains(t, prompt, "single JSON object")
}
