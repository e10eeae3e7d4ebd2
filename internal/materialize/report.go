package materialize

import (
	"fmt"
	"strings"

	"protoforge/internal/schema"
)

// renderReport aggregates the whole run into report.md: overview, tech
// stack, the manifest of generated paths, and issue/next-step sections
// when present. The report is planned last so it can list every other
// artifact.
func renderReport(spec *schema.Spec, description string, plan []artifact) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Build Report: %s\n\n", displayName(spec, description))

	desc := spec.Overview.Description
	if desc == "" {
		desc = description
	}
	fmt.Fprintf(&sb, "%s\n\n", orPlaceholder(desc))
	fmt.Fprintf(&sb, "- **Category**: %s\n", orPlaceholder(spec.Overview.Category))
	fmt.Fprintf(&sb, "- **Difficulty**: %s\n", orPlaceholder(spec.Overview.Difficulty))
	fmt.Fprintf(&sb, "- **Estimated time**: %s\n\n", orPlaceholder(spec.Overview.EstimatedTime))

	sb.WriteString("## Tech Stack\n\n")
	writeTechList(&sb, spec.TechStack)

	sb.WriteString("\n## Generated Files\n\n")
	for _, a := range plan {
		fmt.Fprintf(&sb, "- `%s` (%s)\n", a.path, a.language)
	}
	sb.WriteString("- `report.md` (markdown)\n")

	if len(spec.Issues) > 0 {
		sb.WriteString("\n## Known Issues\n\n")
		for _, issue := range spec.Issues {
			fmt.Fprintf(&sb, "- %s\n", orPlaceholder(issue.Problem))
		}
	}
	if len(spec.NextSteps) > 0 {
		sb.WriteString("\n## Next Steps\n\n")
		for _, step := range spec.NextSteps {
			fmt.Fprintf(&sb, "- %s\n", step)
		}
	}
	return []byte(sb.String())
}
