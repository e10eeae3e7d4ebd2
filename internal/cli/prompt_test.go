package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protoforge/internal/schema"
)

// The prompt and the validator are two halves of one contract: a model that
// follows the prompt's JSON shape must have every section land in the typed
// view instead of being silently dropped as an unknown key.
func TestBuildPrompt_KeysResolveThroughValidation(t *testing.T) {
	t.Parallel()

	payload := `{
		"overview": {"projectName": "Blinker", "description": "LED blinker", "features": ["blinks"]},
		"techStack": {"hardware": ["ESP32"], "software": ["Arduino IDE"], "protocols": ["MQTT"], "tools": ["Multimeter"]},
		"codeSnippets": [{"fileName": "main.ino", "language": "arduino", "code": "void loop() {}"}],
		"schematic": {"mermaid": "graph TD; A-->B"},
		"bom": [{"partNumber": "R1", "description": "resistor", "quantity": 1, "unitPrice": "$0.02", "link": "https://example.com"}],
		"buildGuide": ["step one", "step two"],
		"commonIssues": [{"problem": "Wifi drops", "solution": "Add retry", "prevention": "Use static IP"}],
		"nextSteps": ["Add deep sleep"]
	}`

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	// Every key exercised here is one the prompt actually asks for.
	prompt := buildPrompt("LED blinker")
	for key := range raw {
		assert.Contains(t, prompt, `"`+key+`"`, "payload key %q is not in the prompt", key)
	}

	res, err := schema.Validate(raw)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Spec.Overview.ProjectName, "overview dropped")
	assert.NotEmpty(t, res.Spec.TechStack.Hardware, "techStack dropped")
	assert.NotEmpty(t, res.Spec.Snippets, "codeSnippets dropped")
	assert.NotEmpty(t, res.Spec.Diagram, "schematic dropped")
	assert.NotEmpty(t, res.Spec.BOM, "bom dropped")
	assert.NotEmpty(t, res.Spec.BuildGuide, "buildGuide dropped")
	assert.NotEmpty(t, res.Spec.Issues, "commonIssues dropped")
	assert.NotEmpty(t, res.Spec.NextSteps, "nextSteps dropped")
	assert.Empty(t, res.Warnings)
}
