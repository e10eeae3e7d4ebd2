package errors

import (
	"strings"
	"testing"
)

func TestMissingDescription(t *testing.T) {
	err := MissingDescription()

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if err.Usage == "" {
		t.Error("Expected non-empty usage")
	}
	if len(err.Remediation) == 0 {
		t.Error("Expected remediation steps")
	}
}

func TestMissingInputFile(t *testing.T) {
	err := MissingInputFile("/path/to/completion.txt")

	if err.Category != Prerequisite {
		t.Errorf("Expected Prerequisite category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "/path/to/completion.txt") {
		t.Error("Expected message to contain path")
	}
}

func TestInvalidProvider(t *testing.T) {
	err := InvalidProvider("claude")

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "claude") {
		t.Error("Expected message to contain provider name")
	}
	if len(err.Remediation) == 0 {
		t.Error("Expected remediation steps")
	}
}

func TestAPIKeyMissing(t *testing.T) {
	err := APIKeyMissing("openai", "OPENAI_API_KEY")

	if err.Category != Prerequisite {
		t.Errorf("Expected Prerequisite category, got %v", err.Category)
	}
	found := false
	for _, step := range err.Remediation {
		if strings.Contains(step, "OPENAI_API_KEY") {
			found = true
		}
	}
	if !found {
		t.Error("Expected remediation to mention the env var")
	}
}

func TestConfigFileNotFound(t *testing.T) {
	err := ConfigFileNotFound("/path/to/config")

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "/path/to/config") {
		t.Error("Expected message to contain path")
	}
}

func TestConfigParseError(t *testing.T) {
	original := &testError{}
	err := ConfigParseError("/path/to/config", original)

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if len(err.Remediation) == 0 {
		t.Error("Expected remediation steps")
	}
	if err.Unwrap() != original {
		t.Error("Expected wrapped error to be preserved")
	}
}

func TestInvalidFlagCombination(t *testing.T) {
	err := InvalidFlagCombination("--from-file --provider", "redundant flags")

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "--from-file --provider") {
		t.Error("Expected message to contain flags")
	}
}

func TestTimeoutError(t *testing.T) {
	err := TimeoutError("2m0s", "openai")

	if err.Category != Runtime {
		t.Errorf("Expected Runtime category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "2m0s") {
		t.Error("Expected message to contain duration")
	}
}

func TestOutputDirNotWritable(t *testing.T) {
	err := OutputDirNotWritable("/readonly/prototypes")

	if err.Category != Runtime {
		t.Errorf("Expected Runtime category, got %v", err.Category)
	}
}

func TestProjectNotFound(t *testing.T) {
	err := ProjectNotFound("soil-monitor")

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "soil-monitor") {
		t.Error("Expected message to contain project name")
	}
}
