// Package materialize expands a validated prototype spec into a project
// package on disk: source files under code/, documentation under docs/,
// diagrams under schematics/, plus root-level summary artifacts.
//
// Materialization is planned deterministically first (an ordered list of
// artifacts), then written concurrently; artifact contents never depend on
// wall-clock time, so repeated runs into a fresh directory are byte-identical.
package materialize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"protoforge/internal/schema"
)

// Entry is one generated file in the project manifest.
type Entry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Language string `json:"language"`
}

// Manifest is the output of a materialization run: the ordered file list,
// the validated spec it was produced from, and any advisory warnings
// (validation warnings plus ones raised during planning).
type Manifest struct {
	Files    []Entry
	Spec     *schema.Spec
	Warnings []string
}

// IOError reports a failed file-system operation during artifact writing.
// Artifacts already written stay on disk; there is no rollback.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("materialization failed writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// artifact is one planned file: relative path, content, and language tag.
type artifact struct {
	path     string
	language string
	data     []byte
}

// Materialize writes the project package for spec into targetDir.
// description is the original human request, used as a documentation
// fallback; rawText is the unmodified completion, persisted verbatim.
func Materialize(spec *schema.Spec, targetDir, description, rawText string, warnings []string) (*Manifest, error) {
	// The directory skeleton exists even if later steps partially fail.
	for _, dir := range []string{targetDir, filepath.Join(targetDir, "code"), filepath.Join(targetDir, "docs"), filepath.Join(targetDir, "schematics")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &IOError{Path: dir, Err: err}
		}
	}

	plan, planWarnings := buildPlan(spec, description, rawText, warnings)
	allWarnings := append(append([]string{}, warnings...), planWarnings...)

	if err := writeAll(targetDir, plan); err != nil {
		return nil, err
	}

	manifest := &Manifest{Spec: spec, Warnings: allWarnings}
	for _, a := range plan {
		manifest.Files = append(manifest.Files, Entry{
			Name:     filepath.Base(a.path),
			Path:     a.path,
			Language: a.language,
		})
	}
	return manifest, nil
}

// buildPlan assembles the ordered artifact list. Order here fixes the
// manifest order; the writes themselves are unordered.
func buildPlan(spec *schema.Spec, description, rawText string, warnings []string) ([]artifact, []string) {
	var plan []artifact
	var planWarnings []string

	plan = append(plan, artifact{path: "prototype.raw.txt", language: "text", data: []byte(rawText)})
	plan = append(plan, artifact{path: "prototype.json", language: "json", data: marshalSpec(spec)})

	snippets, snippetWarnings := planSnippets(spec.Snippets)
	planWarnings = append(planWarnings, snippetWarnings...)
	plan = append(plan, snippets...)

	if spec.Diagram != "" {
		diagram := []byte(spec.Diagram + "\n")
		// Two physical copies by contract: consumers read either path.
		plan = append(plan, artifact{path: "schematics/diagram.mmd", language: "mermaid", data: diagram})
		plan = append(plan, artifact{path: "docs/architecture.mmd", language: "mermaid", data: diagram})
	}
	if !spec.ThreeD.IsEmpty() {
		plan = append(plan, artifact{path: "schematics/3d-description.md", language: "markdown", data: renderThreeD(spec.ThreeD)})
	}

	plan = append(plan, artifact{path: "README.md", language: "markdown", data: renderReadme(spec, description)})
	plan = append(plan, artifact{path: "docs/overview.md", language: "markdown", data: renderOverview(spec, description)})
	plan = append(plan, artifact{path: "docs/tech-stack.md", language: "markdown", data: renderTechStack(spec.TechStack)})
	if len(spec.BuildGuide) > 0 {
		plan = append(plan, artifact{path: "docs/build-guide.md", language: "markdown", data: renderBuildGuide(spec.BuildGuide)})
	}
	if len(spec.Issues) > 0 {
		plan = append(plan, artifact{path: "docs/issues-and-fixes.md", language: "markdown", data: renderIssues(spec.Issues)})
	}

	guidePages, guideWarnings := planGuides(spec.Guides)
	planWarnings = append(planWarnings, guideWarnings...)
	plan = append(plan, guidePages...)

	if items := resolvedBOM(spec.BOM); len(items) > 0 {
		plan = append(plan, artifact{path: "bom.csv", language: "csv", data: renderBOMCSV(items)})
		plan = append(plan, artifact{path: "docs/bom.md", language: "markdown", data: renderBOMMarkdown(items)})
	}

	if len(warnings)+len(planWarnings) > 0 {
		all := append(append([]string{}, warnings...), planWarnings...)
		plan = append(plan, artifact{path: "prototype.warnings.txt", language: "text", data: []byte(strings.Join(all, "\n") + "\n")})
	}

	// The report closes the plan so it can list every other artifact.
	plan = append(plan, artifact{path: "report.md", language: "markdown", data: renderReport(spec, description, plan)})
	return plan, planWarnings
}

// writeAll writes planned artifacts concurrently. The writes are independent
// of each other; the first I/O error fails the run once all writes settle.
func writeAll(targetDir string, plan []artifact) error {
	g := new(errgroup.Group)
	for _, a := range plan {
		g.Go(func() error {
			dest := filepath.Join(targetDir, filepath.FromSlash(a.path))
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return &IOError{Path: a.path, Err: err}
			}
			if err := os.WriteFile(dest, a.data, 0644); err != nil {
				return &IOError{Path: a.path, Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}

func marshalSpec(spec *schema.Spec) []byte {
	data, err := json.MarshalIndent(spec.Raw, "", "  ")
	if err != nil {
		// Raw came out of json.Unmarshal, so this cannot normally happen.
		data = []byte("{}")
	}
	return append(data, '\n')
}

func resolvedBOM(items []schema.BOMItem) []schema.BOMItem {
	var out []schema.BOMItem
	for _, it := range items {
		if !it.IsEmpty() {
			out = append(out, it)
		}
	}
	return out
}
