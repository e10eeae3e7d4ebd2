// Package schema validates raw model output against the prototype contract.
// The contract is deliberately permissive: unknown keys are retained and
// several fields accept synonymous names, because upstream model vocabulary
// drifts across providers. Validation rejects only structurally incompatible
// input and reports everything else as advisory warnings.
package schema

import "encoding/json"

// Overview holds the project summary fields.
type Overview struct {
	ProjectName   string
	Description   string
	Category      string
	Difficulty    string
	EstimatedTime string
}

// TechStack groups technologies into canonical buckets. Synonymous bucket
// names (hw, softwareStack, ...) collapse into these four at validation.
type TechStack struct {
	Hardware  []string
	Software  []string
	Protocols []string
	Tools     []string
}

// IsEmpty reports whether no bucket has any entries.
func (t TechStack) IsEmpty() bool {
	return len(t.Hardware) == 0 && len(t.Software) == 0 &&
		len(t.Protocols) == 0 && len(t.Tools) == 0
}

// Snippet is one generated source file.
type Snippet struct {
	FileName string
	Code     string
	Language string
}

// BOMItem is one bill-of-materials line. All fields are optional; a zero
// Quantity means unspecified and defaults to 1 when rendered.
type BOMItem struct {
	PartNumber  string
	Description string
	Quantity    int
	UnitPrice   string
	Link        string
}

// IsEmpty reports whether every field of the line item is unset.
func (b BOMItem) IsEmpty() bool {
	return b.PartNumber == "" && b.Description == "" && b.Quantity == 0 &&
		b.UnitPrice == "" && b.Link == ""
}

// Issue is a known problem with its fix and prevention notes.
type Issue struct {
	Problem    string
	Solution   string
	Prevention string
}

// Guide is an extra documentation page.
type Guide struct {
	Title   string
	Content string
}

// Enclosure holds free-form 3D enclosure and mounting notes.
type Enclosure struct {
	Enclosure string
	Mounting  string
}

// IsEmpty reports whether both notes are unset.
func (e Enclosure) IsEmpty() bool { return e.Enclosure == "" && e.Mounting == "" }

// Spec is the validated prototype object. The typed fields are canonical
// views resolved from the raw object; Raw preserves the decoded payload
// unchanged, including unknown keys, and is what gets persisted to
// prototype.json so nothing the model produced is lost.
type Spec struct {
	Overview   Overview
	TechStack  TechStack
	Snippets   []Snippet
	Diagram    string
	BOM        []BOMItem
	BuildGuide []string
	Issues     []Issue
	NextSteps  []string
	Guides     []Guide
	ThreeD     Enclosure

	Raw map[string]any
}

// MarshalJSON serializes the underlying raw object, so persisting a Spec
// round-trips the exact payload the model produced.
func (s Spec) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Raw)
}
