package materialize

import (
	"fmt"
	"path"
	"strings"

	"protoforge/internal/schema"
)

// extByLanguage maps a snippet language to a file extension when a name has
// to be synthesized.
var extByLanguage = map[string]string{
	"arduino":    "ino",
	"ino":        "ino",
	"c":          "c",
	"cpp":        "cpp",
	"c++":        "cpp",
	"python":     "py",
	"micropython": "py",
	"javascript": "js",
	"typescript": "ts",
	"go":         "go",
	"rust":       "rs",
	"java":       "java",
	"html":       "html",
	"css":        "css",
	"json":       "json",
	"yaml":       "yaml",
	"sh":         "sh",
	"bash":       "sh",
	"shell":      "sh",
	"sql":        "sql",
	"markdown":   "md",
}

// langByExt is the reverse direction, used for manifest language tags when
// the snippet carries a name but no language.
var langByExt = map[string]string{
	"ino":  "arduino",
	"c":    "c",
	"h":    "c",
	"cpp":  "cpp",
	"hpp":  "cpp",
	"py":   "python",
	"js":   "javascript",
	"ts":   "typescript",
	"go":   "go",
	"rs":   "rust",
	"java": "java",
	"html": "html",
	"css":  "css",
	"json": "json",
	"yaml": "yaml",
	"yml":  "yaml",
	"sh":   "shell",
	"sql":  "sql",
	"md":   "markdown",
}

// reservedPaths are destinations the materializer itself writes. A snippet
// claiming one would race the generated artifact, so such snippets are
// skipped with a warning. Conditional artifacts are reserved unconditionally
// to keep the outcome independent of which sections the model filled in.
var reservedPaths = map[string]bool{
	"prototype.raw.txt":            true,
	"prototype.json":               true,
	"prototype.warnings.txt":       true,
	"README.md":                    true,
	"report.md":                    true,
	"bom.csv":                      true,
	"docs/overview.md":             true,
	"docs/tech-stack.md":           true,
	"docs/build-guide.md":          true,
	"docs/issues-and-fixes.md":     true,
	"docs/bom.md":                  true,
	"docs/architecture.mmd":        true,
	"schematics/diagram.mmd":       true,
	"schematics/3d-description.md": true,
}

// planSnippets resolves snippet destinations. Snippets with neither name nor
// content are dropped silently. Names containing a path separator keep their
// relative path but stay confined under the project root; a path escaping the
// root or claiming a reserved artifact path is rejected with a warning. On
// duplicate destinations the last snippet wins, flagged with a warning.
func planSnippets(snippets []schema.Snippet) ([]artifact, []string) {
	var plan []artifact
	var warnings []string
	index := make(map[string]int) // destination -> position in plan

	for i, sn := range snippets {
		if sn.FileName == "" && sn.Code == "" {
			continue
		}

		dest, ok := snippetDest(sn, i)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("snippet path %q escapes the project root; skipped", sn.FileName))
			continue
		}
		if reservedPaths[dest] {
			warnings = append(warnings, fmt.Sprintf("snippet destination %q collides with a generated artifact; skipped", dest))
			continue
		}

		a := artifact{
			path:     dest,
			language: snippetLanguage(sn, dest),
			data:     []byte(sn.Code),
		}
		if pos, dup := index[dest]; dup {
			warnings = append(warnings, fmt.Sprintf("duplicate snippet destination %q; last snippet wins", dest))
			plan[pos] = a
			continue
		}
		index[dest] = len(plan)
		plan = append(plan, a)
	}
	return plan, warnings
}

// snippetDest resolves the relative output path for a snippet. ordinal is
// the snippet's position, used to synthesize names for anonymous code.
func snippetDest(sn schema.Snippet, ordinal int) (string, bool) {
	name := strings.ReplaceAll(strings.TrimSpace(sn.FileName), "\\", "/")
	if name == "" {
		ext := extByLanguage[strings.ToLower(sn.Language)]
		if ext == "" {
			ext = "txt"
		}
		return fmt.Sprintf("code/snippet-%d.%s", ordinal+1, ext), true
	}

	if strings.Contains(name, "/") {
		if path.IsAbs(name) {
			return "", false
		}
		clean := path.Clean(name)
		if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
			return "", false
		}
		return clean, true
	}
	if name == "." || name == ".." {
		return "", false
	}
	return "code/" + name, true
}

func snippetLanguage(sn schema.Snippet, dest string) string {
	if lang := strings.ToLower(strings.TrimSpace(sn.Language)); lang != "" {
		return lang
	}
	ext := strings.TrimPrefix(path.Ext(dest), ".")
	if lang, ok := langByExt[ext]; ok {
		return lang
	}
	return "text"
}
