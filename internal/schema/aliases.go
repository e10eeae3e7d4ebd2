package schema

// Field name synonyms are an explicit compatibility contract with a
// non-deterministic producer, resolved once at validation entry via these
// lookup tables. First match wins; preferred names come first.

var (
	overviewAliases   = []string{"overview", "projectOverview"}
	techStackAliases  = []string{"techStack", "tech_stack", "technologies"}
	snippetsAliases   = []string{"codeSnippets", "files", "snippets"}
	schematicAliases  = []string{"schematic", "diagram"}
	bomAliases        = []string{"bom", "billOfMaterials", "bill_of_materials"}
	buildGuideAliases = []string{"buildGuide", "build_guide", "buildSteps"}
	issuesAliases     = []string{"issuesAndFixes", "commonIssues", "issues", "troubleshooting"}
	nextStepsAliases  = []string{"nextSteps", "next_steps"}
	guidesAliases     = []string{"guides"}
	threeDAliases     = []string{"threeDDescription", "enclosure", "3dDescription"}

	fileNameAliases  = []string{"fileName", "filename", "name"}
	codeAliases      = []string{"code", "content"}
	languageAliases  = []string{"language", "extension"}
	mermaidAliases   = []string{"mermaid", "diagram"}
	partDescAliases  = []string{"description", "name"}
	problemAliases   = []string{"problem", "issue"}
	preventAliases   = []string{"prevention", "avoidance"}
	guideTitleAlias  = []string{"title", "name"}
	guideContentAlias = []string{"content", "text"}
)

// techBucketOrder fixes the resolution order for tech-stack keys so that
// synonym keys merging into one bucket always merge in the same order.
var techBucketOrder = []string{
	"hardware", "hw", "hardwareComponents",
	"software", "sw", "softwareStack", "firmware",
	"protocols", "protocol", "communication",
	"tools", "tooling", "equipment",
}

// techBucketAliases maps synonymous tech-stack keys to canonical buckets.
var techBucketAliases = map[string]string{
	"hardware":           "hardware",
	"hw":                 "hardware",
	"hardwareComponents": "hardware",
	"software":           "software",
	"sw":                 "software",
	"softwareStack":      "software",
	"firmware":           "software",
	"protocols":          "protocols",
	"protocol":           "protocols",
	"communication":      "protocols",
	"tools":              "tools",
	"tooling":            "tools",
	"equipment":          "tools",
}

// lookup returns the first present alias and its value.
func lookup(obj map[string]any, aliases []string) (string, any, bool) {
	for _, key := range aliases {
		if v, ok := obj[key]; ok {
			return key, v, true
		}
	}
	return "", nil, false
}
