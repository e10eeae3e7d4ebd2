package cli

import "fmt"

// buildPrompt wraps a prototype description in the instruction prompt the
// providers are called with. The pipeline tolerates deviations from this
// shape, so the prompt only has to steer, not guarantee.
func buildPrompt(description string) string {
	return fmt.Sprintf(`You are an expert prototyping engineer. Design a buildable prototype for the request below.

Respond with a single JSON object, no prose around it, with this shape:
{
  "overview": {"projectName": "...", "description": "...", "features": ["..."]},
  "techStack": {"hardware": ["..."], "software": ["..."], "protocols": ["..."], "tools": ["..."]},
  "codeSnippets": [{"fileName": "...", "language": "...", "code": "..."}],
  "schematic": {"mermaid": "..."},
  "bom": [{"partNumber": "...", "description": "...", "quantity": 1, "unitPrice": "...", "link": "..."}],
  "buildGuide": ["step one", "step two"],
  "commonIssues": [{"problem": "...", "solution": "...", "prevention": "..."}],
  "nextSteps": ["..."]
}

Omit sections that do not apply. Keep code snippets complete and compilable.

Request: %s`, description)
}
