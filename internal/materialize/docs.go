package materialize

import (
	"fmt"
	"strings"

	"protoforge/internal/schema"
)

// notSpecified is the placeholder for missing optional text. Partial model
// output degrades to placeholders rather than failing the run.
const notSpecified = "_Not specified_"

// displayName picks a title for documentation: the project name when the
// model provided one, otherwise the original request, otherwise a constant.
func displayName(spec *schema.Spec, description string) string {
	if spec.Overview.ProjectName != "" {
		return spec.Overview.ProjectName
	}
	if d := strings.TrimSpace(description); d != "" {
		// Truncate on rune boundaries so multi-byte titles stay valid UTF-8.
		if r := []rune(d); len(r) > 60 {
			d = string(r[:60]) + "..."
		}
		return d
	}
	return "Untitled Prototype"
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

func renderReadme(spec *schema.Spec, description string) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", displayName(spec, description))

	desc := spec.Overview.Description
	if desc == "" {
		desc = description
	}
	fmt.Fprintf(&sb, "%s\n\n", orPlaceholder(desc))

	sb.WriteString("## Tech Stack\n\n")
	writeTechList(&sb, spec.TechStack)

	sb.WriteString("\n## Package Layout\n\n")
	sb.WriteString("- `code/` - generated source files\n")
	sb.WriteString("- `docs/` - overview, tech stack, build guide, and extra documentation\n")
	sb.WriteString("- `schematics/` - wiring diagram and enclosure notes\n")
	sb.WriteString("- `bom.csv` - bill of materials (when components were specified)\n")
	sb.WriteString("- `report.md` - full generation report\n")
	sb.WriteString("- `prototype.json` - the validated spec this package was generated from\n")
	return []byte(sb.String())
}

func renderOverview(spec *schema.Spec, description string) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Overview\n\n## %s\n\n", displayName(spec, description))

	desc := spec.Overview.Description
	if desc == "" {
		desc = description
	}
	fmt.Fprintf(&sb, "%s\n\n", orPlaceholder(desc))
	fmt.Fprintf(&sb, "- **Category**: %s\n", orPlaceholder(spec.Overview.Category))
	fmt.Fprintf(&sb, "- **Difficulty**: %s\n", orPlaceholder(spec.Overview.Difficulty))
	fmt.Fprintf(&sb, "- **Estimated time**: %s\n", orPlaceholder(spec.Overview.EstimatedTime))
	return []byte(sb.String())
}

func renderTechStack(ts schema.TechStack) []byte {
	var sb strings.Builder
	sb.WriteString("# Tech Stack\n\n")
	writeTechList(&sb, ts)
	return []byte(sb.String())
}

func writeTechList(sb *strings.Builder, ts schema.TechStack) {
	sections := []struct {
		title string
		items []string
	}{
		{"Hardware", ts.Hardware},
		{"Software", ts.Software},
		{"Protocols", ts.Protocols},
		{"Tools", ts.Tools},
	}
	for _, sec := range sections {
		fmt.Fprintf(sb, "### %s\n\n", sec.title)
		if len(sec.items) == 0 {
			sb.WriteString(notSpecified + "\n\n")
			continue
		}
		for _, item := range sec.items {
			fmt.Fprintf(sb, "- %s\n", item)
		}
		sb.WriteString("\n")
	}
}

func renderBuildGuide(steps []string) []byte {
	var sb strings.Builder
	sb.WriteString("# Build Guide\n\n")
	if len(steps) == 1 {
		sb.WriteString(steps[0] + "\n")
		return []byte(sb.String())
	}
	for i, step := range steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	return []byte(sb.String())
}

func renderIssues(issues []schema.Issue) []byte {
	var sb strings.Builder
	sb.WriteString("# Issues and Fixes\n\n")
	for i, issue := range issues {
		fmt.Fprintf(&sb, "## Issue %d\n\n", i+1)
		fmt.Fprintf(&sb, "- **Problem**: %s\n", orPlaceholder(issue.Problem))
		fmt.Fprintf(&sb, "- **Solution**: %s\n", orPlaceholder(issue.Solution))
		fmt.Fprintf(&sb, "- **Prevention**: %s\n\n", orPlaceholder(issue.Prevention))
	}
	return []byte(sb.String())
}

// planGuides renders each extra guide entry as docs/<slug>.md.
func planGuides(guides []schema.Guide) ([]artifact, []string) {
	var plan []artifact
	var warnings []string
	seen := make(map[string]bool)

	for i, g := range guides {
		slug := Slug(g.Title)
		if slug == "" {
			slug = fmt.Sprintf("guide-%d", i+1)
		}
		if seen[slug] {
			warnings = append(warnings, fmt.Sprintf("duplicate guide slug %q; last guide wins", slug))
		}
		seen[slug] = true

		var sb strings.Builder
		title := g.Title
		if title == "" {
			title = fmt.Sprintf("Guide %d", i+1)
		}
		fmt.Fprintf(&sb, "# %s\n\n%s\n", title, orPlaceholder(g.Content))
		plan = append(plan, artifact{
			path:     "docs/" + slug + ".md",
			language: "markdown",
			data:     []byte(sb.String()),
		})
	}
	return plan, warnings
}

func renderThreeD(e schema.Enclosure) []byte {
	var sb strings.Builder
	sb.WriteString("# 3D Printing and Enclosure\n\n")
	fmt.Fprintf(&sb, "## Enclosure\n\n%s\n\n", orPlaceholder(e.Enclosure))
	fmt.Fprintf(&sb, "## Mounting\n\n%s\n", orPlaceholder(e.Mounting))
	return []byte(sb.String())
}
