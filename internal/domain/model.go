package domain

// Severity is the single-letter severity code carried by a Finding.
// The codes mirror rpmlint's output so external linter results map 1:1.
type Severity string

const (
	SeverityError    Severity = "E"
	SeverityWarning  Severity = "W"
	SeverityInfo     Severity = "I"
	SeverityNote     Severity = "N"
	SeverityPedantic Severity = "P"
)

var severityNames = map[Severity]string{
	SeverityError:    "Error",
	SeverityWarning:  "Warning",
	SeverityInfo:     "Info",
	SeverityNote:     "Note",
	SeverityPedantic: "Pedantic",
}

// Name returns the human-readable severity name. Unknown codes (rpmlint can
// emit letters we do not model) display as the raw code.
func (s Severity) Name() string {
	if n, ok := severityNames[s]; ok {
		return n
	}
	return string(s)
}

// Rank orders severities for display (Error highest). It is used only for
// sorting and summary counts, never to decide whether a rule fires.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 5
	case SeverityWarning:
		return 4
	case SeverityInfo:
		return 3
	case SeverityNote:
		return 2
	case SeverityPedantic:
		return 1
	default:
		return 0
	}
}

// Category groups findings for display.
type Category string

const (
	CategoryNaming        Category = "naming"
	CategorySpecQuality   Category = "spec-quality"
	CategoryDependencies  Category = "dependencies"
	CategoryFilePlacement Category = "file-placement"
	CategoryLicensing     Category = "licensing"
	CategoryScriptlets    Category = "scriptlets"
	CategoryMacros        Category = "macros"
	CategoryChangelog     Category = "changelog"
	CategoryRpmlint       Category = "rpmlint"
	CategoryGeneral       Category = "general"
)

var categoryNames = map[Category]string{
	CategoryNaming:        "Package Naming",
	CategorySpecQuality:   "Spec File Quality",
	CategoryDependencies:  "Dependencies",
	CategoryFilePlacement: "File Placement",
	CategoryLicensing:     "Licensing (SPDX)",
	CategoryScriptlets:    "Scriptlets",
	CategoryMacros:        "Macro Usage",
	CategoryChangelog:     "Changelog Format",
	CategoryRpmlint:       "rpmlint Results",
	CategoryGeneral:       "General",
}

// Name returns the display title for the category. Unknown categories fall
// back to the raw key so normalized third-party output still renders.
func (c Category) Name() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return string(c)
}

// Finding is the sole unit of analyzer output. It is constructed once by a
// rule check and never mutated afterwards. Duplicate findings are legal:
// a rule may fire once per offending line.
type Finding struct {
	Category       Category `json:"category"`
	Severity       Severity `json:"severity"`
	Package        string   `json:"package"`
	Tag            string   `json:"tag"`
	Detail         string   `json:"detail"`
	Recommendation string   `json:"recommendation,omitempty"`
}
