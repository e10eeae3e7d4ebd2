package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// maxDiagnostics caps how many field-level problems a ValidationError carries.
const maxDiagnostics = 25

// Diagnostic names one offending field and why it was rejected.
type Diagnostic struct {
	Path   string // dot-joined field path, "(root)" at the top level
	Reason string
}

// ValidationError reports a raw object whose shape is fundamentally
// incompatible with the prototype contract. Raw carries the best-effort
// decoded object so a human can hand-repair it.
type ValidationError struct {
	Diagnostics []Diagnostic
	Raw         map[string]any
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("schema validation failed (%d problem(s))", len(e.Diagnostics)))
	for _, d := range e.Diagnostics {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", d.Path, d.Reason))
	}
	return sb.String()
}

// Result carries the validated spec together with non-fatal advisories.
// Warnings never abort a run; they are surfaced and persisted for the caller.
type Result struct {
	Spec     *Spec
	Warnings []string
}

// Validate checks a raw decoded object against the minimum structural
// contract and resolves field-name synonyms into canonical typed views.
// Unknown keys are retained on Spec.Raw, never rejected.
func Validate(raw map[string]any) (*Result, error) {
	if raw == nil {
		return nil, &ValidationError{
			Diagnostics: []Diagnostic{{Path: "(root)", Reason: "expected a JSON object, got nothing"}},
		}
	}

	v := &validator{}
	spec := &Spec{Raw: raw}

	if key, val, ok := lookup(raw, overviewAliases); ok {
		spec.Overview = v.parseOverview(key, val)
	}
	if key, val, ok := lookup(raw, techStackAliases); ok {
		spec.TechStack = v.parseTechStack(key, val)
	}
	if key, val, ok := lookup(raw, snippetsAliases); ok {
		spec.Snippets = v.parseSnippets(key, val)
	}
	if key, val, ok := lookup(raw, schematicAliases); ok {
		spec.Diagram = v.parseSchematic(key, val)
	}
	if key, val, ok := lookup(raw, bomAliases); ok {
		spec.BOM = v.parseBOM(key, val)
	}
	if key, val, ok := lookup(raw, buildGuideAliases); ok {
		spec.BuildGuide = v.parseBuildGuide(key, val)
	}
	if key, val, ok := lookup(raw, issuesAliases); ok {
		spec.Issues = v.parseIssues(key, val)
	}
	if key, val, ok := lookup(raw, nextStepsAliases); ok {
		spec.NextSteps = v.parseNextSteps(key, val)
	}
	if key, val, ok := lookup(raw, guidesAliases); ok {
		spec.Guides = v.parseGuides(key, val)
	}
	if key, val, ok := lookup(raw, threeDAliases); ok {
		spec.ThreeD = v.parseThreeD(key, val)
	}

	if len(v.diags) > 0 {
		return nil, &ValidationError{Diagnostics: v.diags, Raw: raw}
	}

	v.collectAbsenceWarnings(spec)
	return &Result{Spec: spec, Warnings: v.warnings}, nil
}

type validator struct {
	diags    []Diagnostic
	warnings []string
}

func (v *validator) fail(path, reason string) {
	if len(v.diags) < maxDiagnostics {
		v.diags = append(v.diags, Diagnostic{Path: path, Reason: reason})
	}
}

func (v *validator) warn(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) collectAbsenceWarnings(spec *Spec) {
	if spec.Overview.ProjectName == "" {
		v.warn("no project name found; documentation will use a fallback title")
	}
	if len(spec.Snippets) == 0 {
		v.warn("no code snippets found; output may be documentation-only")
	}
	if spec.Diagram == "" {
		v.warn("no schematic or diagram provided")
	}
	if len(resolvedBOM(spec.BOM)) == 0 {
		v.warn("no bill of materials entries found")
	}
	if len(spec.BuildGuide) == 0 {
		v.warn("no build guide provided")
	}
}

// resolvedBOM filters out line items with no content at all.
func resolvedBOM(items []BOMItem) []BOMItem {
	var out []BOMItem
	for _, it := range items {
		if !it.IsEmpty() {
			out = append(out, it)
		}
	}
	return out
}

func (v *validator) parseOverview(path string, val any) Overview {
	switch t := val.(type) {
	case map[string]any:
		return Overview{
			ProjectName:   stringAt(t, "projectName", "project_name", "name", "title"),
			Description:   stringAt(t, "description", "summary"),
			Category:      stringAt(t, "category"),
			Difficulty:    stringAt(t, "difficulty"),
			EstimatedTime: stringAt(t, "estimatedTime", "estimated_time"),
		}
	case string:
		v.warn("%s is a plain string; treated as the project description", path)
		return Overview{Description: strings.TrimSpace(t)}
	default:
		v.fail(path, fmt.Sprintf("expected an object, got %s", typeName(val)))
		return Overview{}
	}
}

func (v *validator) parseTechStack(path string, val any) TechStack {
	var ts TechStack
	switch t := val.(type) {
	case map[string]any:
		// Iterate known keys in a fixed order, not the map, so synonym keys
		// merging into one bucket merge deterministically. Unknown buckets
		// survive in Spec.Raw; nothing to validate.
		for _, key := range techBucketOrder {
			bucketVal, present := t[key]
			if !present {
				continue
			}
			canonical := techBucketAliases[key]
			items := v.stringList(path+"."+key, bucketVal)
			switch canonical {
			case "hardware":
				ts.Hardware = append(ts.Hardware, items...)
			case "software":
				ts.Software = append(ts.Software, items...)
			case "protocols":
				ts.Protocols = append(ts.Protocols, items...)
			case "tools":
				ts.Tools = append(ts.Tools, items...)
			}
		}
	case []any:
		v.warn("%s is an uncategorized list; entries were filed under tools", path)
		ts.Tools = v.stringList(path, t)
	case string:
		ts.Tools = []string{t}
	default:
		v.fail(path, fmt.Sprintf("expected a categorized object, got %s", typeName(val)))
	}
	return ts
}

func (v *validator) parseSnippets(path string, val any) []Snippet {
	list, ok := val.([]any)
	if !ok {
		v.fail(path, fmt.Sprintf("expected a list of snippets, got %s", typeName(val)))
		return nil
	}
	var out []Snippet
	for i, item := range list {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		switch t := item.(type) {
		case map[string]any:
			out = append(out, Snippet{
				FileName: stringFromAliases(t, fileNameAliases),
				Code:     stringFromAliases(t, codeAliases),
				Language: stringFromAliases(t, languageAliases),
			})
		case string:
			// A bare string is treated as anonymous code; materialization
			// will synthesize a file name for it.
			out = append(out, Snippet{Code: t})
		default:
			v.fail(itemPath, fmt.Sprintf("expected a snippet object, got %s", typeName(item)))
		}
	}
	return out
}

func (v *validator) parseSchematic(path string, val any) string {
	switch t := val.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		if _, inner, ok := lookup(t, mermaidAliases); ok {
			if s, sok := asString(inner); sok {
				return strings.TrimSpace(s)
			}
			v.fail(path, "diagram source is not a string")
			return ""
		}
		v.warn("%s object has no mermaid or diagram field", path)
		return ""
	default:
		v.fail(path, fmt.Sprintf("expected a diagram string or object, got %s", typeName(val)))
		return ""
	}
}

func (v *validator) parseBOM(path string, val any) []BOMItem {
	switch t := val.(type) {
	case []any:
		return v.parseBOMItems(path, t)
	case map[string]any:
		if key, inner, ok := lookup(t, []string{"components", "items", "parts"}); ok {
			list, lok := inner.([]any)
			if !lok {
				v.fail(path+"."+key, fmt.Sprintf("expected a list of line items, got %s", typeName(inner)))
				return nil
			}
			return v.parseBOMItems(path+"."+key, list)
		}
		v.warn("%s object has no components list", path)
		return nil
	default:
		v.fail(path, fmt.Sprintf("expected a list or components object, got %s", typeName(val)))
		return nil
	}
}

func (v *validator) parseBOMItems(path string, list []any) []BOMItem {
	var out []BOMItem
	for i, item := range list {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		switch t := item.(type) {
		case map[string]any:
			out = append(out, BOMItem{
				PartNumber:  stringAt(t, "partNumber", "part_number", "part"),
				Description: stringFromAliases(t, partDescAliases),
				Quantity:    v.quantityAt(itemPath, t),
				UnitPrice:   stringAt(t, "unitPrice", "unit_price", "price"),
				Link:        stringAt(t, "link", "url"),
			})
		case string:
			out = append(out, BOMItem{Description: t})
		default:
			v.fail(itemPath, fmt.Sprintf("expected a line item object, got %s", typeName(item)))
		}
	}
	return out
}

func (v *validator) quantityAt(path string, obj map[string]any) int {
	val, ok := obj["quantity"]
	if !ok {
		if val, ok = obj["qty"]; !ok {
			return 0
		}
	}
	switch t := val.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
		v.warn("%s.quantity %q is not numeric; defaulting to 1", path, t)
		return 0
	default:
		v.warn("%s.quantity is not numeric; defaulting to 1", path)
		return 0
	}
}

func (v *validator) parseBuildGuide(path string, val any) []string {
	switch t := val.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		return []string{s}
	case []any:
		return v.stringList(path, t)
	case map[string]any:
		// Arbitrary step keys, rendered in natural key order so step2
		// sorts before step10 regardless of input order.
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return naturalLess(keys[i], keys[j]) })
		var steps []string
		for _, k := range keys {
			s, ok := asString(t[k])
			if !ok {
				v.fail(path+"."+k, fmt.Sprintf("expected step text, got %s", typeName(t[k])))
				continue
			}
			steps = append(steps, strings.TrimSpace(s))
		}
		return steps
	default:
		v.fail(path, fmt.Sprintf("expected a string, list, or step mapping, got %s", typeName(val)))
		return nil
	}
}

func (v *validator) parseIssues(path string, val any) []Issue {
	list, ok := val.([]any)
	if !ok {
		v.fail(path, fmt.Sprintf("expected a list of issues, got %s", typeName(val)))
		return nil
	}
	var out []Issue
	for i, item := range list {
		switch t := item.(type) {
		case map[string]any:
			out = append(out, Issue{
				Problem:    stringFromAliases(t, problemAliases),
				Solution:   stringAt(t, "solution", "fix"),
				Prevention: stringFromAliases(t, preventAliases),
			})
		case string:
			out = append(out, Issue{Problem: t})
		default:
			v.fail(fmt.Sprintf("%s[%d]", path, i), fmt.Sprintf("expected an issue object, got %s", typeName(item)))
		}
	}
	return out
}

func (v *validator) parseNextSteps(path string, val any) []string {
	switch t := val.(type) {
	case []any:
		return v.stringList(path, t)
	case string:
		return []string{t}
	default:
		v.fail(path, fmt.Sprintf("expected a list of steps, got %s", typeName(val)))
		return nil
	}
}

func (v *validator) parseGuides(path string, val any) []Guide {
	list, ok := val.([]any)
	if !ok {
		v.fail(path, fmt.Sprintf("expected a list of guides, got %s", typeName(val)))
		return nil
	}
	var out []Guide
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			v.fail(fmt.Sprintf("%s[%d]", path, i), fmt.Sprintf("expected a guide object, got %s", typeName(item)))
			continue
		}
		g := Guide{
			Title:   stringFromAliases(obj, guideTitleAlias),
			Content: stringFromAliases(obj, guideContentAlias),
		}
		if g.Title == "" && g.Content == "" {
			v.warn("%s[%d] has neither title nor content; skipped", path, i)
			continue
		}
		out = append(out, g)
	}
	return out
}

func (v *validator) parseThreeD(path string, val any) Enclosure {
	switch t := val.(type) {
	case string:
		return Enclosure{Enclosure: strings.TrimSpace(t)}
	case map[string]any:
		return Enclosure{
			Enclosure: stringAt(t, "enclosure", "case", "description"),
			Mounting:  stringAt(t, "mounting", "mount"),
		}
	default:
		v.fail(path, fmt.Sprintf("expected a string or object, got %s", typeName(val)))
		return Enclosure{}
	}
}

// stringList coerces a list value to strings, reporting non-scalar entries.
func (v *validator) stringList(path string, val any) []string {
	list, ok := val.([]any)
	if !ok {
		if s, sok := asString(val); sok {
			return []string{s}
		}
		v.fail(path, fmt.Sprintf("expected a list of strings, got %s", typeName(val)))
		return nil
	}
	var out []string
	for i, item := range list {
		s, sok := asString(item)
		if !sok {
			v.fail(fmt.Sprintf("%s[%d]", path, i), fmt.Sprintf("expected a string, got %s", typeName(item)))
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// asString coerces JSON scalars to a string. Objects and arrays do not coerce.
func asString(val any) (string, bool) {
	switch t := val.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case nil:
		return "", true
	default:
		return "", false
	}
}

// stringAt returns the first coercible value among the given keys.
func stringAt(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			if s, sok := asString(v); sok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func stringFromAliases(obj map[string]any, aliases []string) string {
	return stringAt(obj, aliases...)
}

func typeName(val any) string {
	switch val.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}
