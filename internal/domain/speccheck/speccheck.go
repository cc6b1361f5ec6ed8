// Package speccheck validates .spec file text against the Fedora packaging
// guidelines. It is a best-effort line-oriented linter: no macro expansion,
// no %if evaluation, no subpackage modeling. Every anomaly is reported as a
// Finding; only an unreadable file aborts an analysis.
package speccheck

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fatih/camelcase"

	"github.com/yeager/rpm-policy-checker/internal/domain"
)

// specFacts is the structured extraction produced by the header scan.
// It is rebuilt from scratch on every Analyze call.
type specFacts struct {
	hasName        bool
	hasVersion     bool
	hasRelease     bool
	hasSummary     bool
	hasLicense     bool
	hasURL         bool
	hasSource      bool
	hasDescription bool
	hasChangelog   bool
	hasBuildRoot   bool
	hasClean       bool
	licenseValue   string
}

// AnalyzeFile reads path and analyzes it as spec file text. A read failure or
// undecodable content yields a single terminal finding and no further checks.
func AnalyzeFile(path string) []domain.Finding {
	data, err := os.ReadFile(path)
	if err != nil {
		return []domain.Finding{readErrorFinding(err.Error())}
	}
	if !utf8.Valid(data) {
		return []domain.Finding{readErrorFinding("spec file is not valid UTF-8 text")}
	}
	return Analyze(string(data))
}

// Analyze runs all spec file checks over the given text and returns the
// findings in rule evaluation order. The order is deterministic: header scan,
// required fields, license validation, macro conventions, scriptlet safety,
// changelog format.
func Analyze(text string) []domain.Finding {
	lines := splitLines(text)

	var findings []domain.Finding
	facts := scanHeader(lines, &findings)

	checkRequiredFields(facts, &findings)

	if facts.licenseValue != "" {
		findings = append(findings, validateLicense(facts.licenseValue)...)
	}

	scanMacros(lines, &findings)
	scanScriptlets(lines, &findings)
	scanChangelog(lines, &findings)

	return findings
}

func readErrorFinding(detail string) domain.Finding {
	return domain.Finding{
		Category: domain.CategoryGeneral,
		Severity: domain.SeverityError,
		Tag:      "spec-read-error",
		Detail:   detail,
	}
}

// splitLines splits on \n the way the checks expect: a trailing newline does
// not produce a phantom empty last line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// scanHeader walks the line sequence once, recording presence facts and
// validating the first occurrence of Name, Release and Summary inline.
// The License value is captured unconditionally, so the last occurrence wins.
func scanHeader(lines []string, findings *[]domain.Finding) *specFacts {
	facts := &specFacts{}

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		lower := strings.ToLower(stripped)

		switch {
		case strings.HasPrefix(lower, "name:"):
			first := !facts.hasName
			facts.hasName = true
			if first {
				checkPackageName(tagValue(stripped), findings)
			}
		case strings.HasPrefix(lower, "version:"):
			facts.hasVersion = true
		case strings.HasPrefix(lower, "release:"):
			first := !facts.hasRelease
			facts.hasRelease = true
			if first && !strings.Contains(tagValue(stripped), "%{?dist}") {
				*findings = append(*findings, domain.Finding{
					Category:       domain.CategorySpecQuality,
					Severity:       domain.SeverityWarning,
					Tag:            "missing-dist-tag",
					Detail:         "Release field does not contain %{?dist}.",
					Recommendation: "Add %{?dist} to the Release tag for proper distribution tagging.",
				})
			}
		case strings.HasPrefix(lower, "summary:"):
			first := !facts.hasSummary
			facts.hasSummary = true
			if first {
				checkSummary(tagValue(stripped), findings)
			}
		case strings.HasPrefix(lower, "license:"):
			facts.hasLicense = true
			facts.licenseValue = tagValue(stripped)
		case strings.HasPrefix(lower, "url:"):
			facts.hasURL = true
		case strings.HasPrefix(lower, "source") && strings.Contains(lower, ":"):
			facts.hasSource = true
		case strings.HasPrefix(lower, "buildroot:"):
			facts.hasBuildRoot = true
		case stripped == "%description":
			facts.hasDescription = true
		case stripped == "%changelog":
			facts.hasChangelog = true
		case stripped == "%clean":
			facts.hasClean = true
		}
	}

	return facts
}

// tagValue returns the trimmed value after the first colon of a "Tag: value"
// line.
func tagValue(line string) string {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func checkPackageName(name string, findings *[]domain.Finding) {
	if name != strings.ToLower(name) {
		*findings = append(*findings, domain.Finding{
			Category: domain.CategoryNaming,
			Severity: domain.SeverityWarning,
			Tag:      "uppercase-package-name",
			Detail:   fmt.Sprintf("Package name '%s' contains uppercase letters.", name),
			Package:  name,
			Recommendation: fmt.Sprintf(
				"Fedora guidelines recommend lowercase package names; consider '%s'.",
				suggestPackageName(name)),
		})
	}
	if strings.Contains(name, " ") {
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategoryNaming,
			Severity:       domain.SeverityError,
			Tag:            "space-in-package-name",
			Detail:         "Package name contains spaces.",
			Package:        name,
			Recommendation: "Remove spaces from the package name.",
		})
	}
}

// suggestPackageName derives a guideline-conformant lowercase name from a
// camel-cased one, e.g. "MyPackage" becomes "my-package".
func suggestPackageName(name string) string {
	var words []string
	for _, field := range strings.Fields(name) {
		for _, word := range camelcase.Split(field) {
			if w := strings.TrimSpace(word); w != "" {
				words = append(words, strings.ToLower(w))
			}
		}
	}
	if len(words) == 0 {
		return strings.ToLower(name)
	}
	return strings.Join(words, "-")
}

func checkSummary(summary string, findings *[]domain.Finding) {
	if strings.HasSuffix(summary, ".") {
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategorySpecQuality,
			Severity:       domain.SeverityWarning,
			Tag:            "summary-ends-with-dot",
			Detail:         "Summary should not end with a period.",
			Recommendation: "Remove the trailing period from the Summary.",
		})
	}
	if utf8.RuneCountInString(summary) > 80 {
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategorySpecQuality,
			Severity:       domain.SeverityWarning,
			Tag:            "summary-too-long",
			Detail:         "Summary exceeds 80 characters.",
			Recommendation: "Keep the Summary concise (under 80 characters).",
		})
	}
}

func checkRequiredFields(facts *specFacts, findings *[]domain.Finding) {
	required := []struct {
		name    string
		present bool
	}{
		{"name", facts.hasName},
		{"version", facts.hasVersion},
		{"release", facts.hasRelease},
		{"summary", facts.hasSummary},
		{"license", facts.hasLicense},
	}
	for _, field := range required {
		if field.present {
			continue
		}
		title := strings.ToUpper(field.name[:1]) + field.name[1:]
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategorySpecQuality,
			Severity:       domain.SeverityError,
			Tag:            "missing-" + field.name,
			Detail:         fmt.Sprintf("Required field '%s' is missing from spec file.", title),
			Recommendation: fmt.Sprintf("Add the %s tag to the spec file header.", title),
		})
	}

	if !facts.hasURL {
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategorySpecQuality,
			Severity:       domain.SeverityWarning,
			Tag:            "missing-url",
			Detail:         "URL field is missing.",
			Recommendation: "Add a URL pointing to the project's homepage.",
		})
	}

	if !facts.hasSource {
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategorySpecQuality,
			Severity:       domain.SeverityWarning,
			Tag:            "missing-source",
			Detail:         "No Source tag found.",
			Recommendation: "Add a Source0 tag with the upstream tarball URL.",
		})
	}

	if !facts.hasDescription {
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategorySpecQuality,
			Severity:       domain.SeverityError,
			Tag:            "missing-description",
			Detail:         "%description section is missing.",
			Recommendation: "Add a %description section with a detailed package description.",
		})
	}

	if !facts.hasChangelog {
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategoryChangelog,
			Severity:       domain.SeverityWarning,
			Tag:            "missing-changelog",
			Detail:         "%changelog section is missing.",
			Recommendation: "Add a %changelog section with dated entries.",
		})
	}

	if facts.hasBuildRoot {
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategorySpecQuality,
			Severity:       domain.SeverityInfo,
			Tag:            "deprecated-buildroot",
			Detail:         "BuildRoot tag is deprecated in modern RPM.",
			Recommendation: "Remove the BuildRoot tag; RPM sets it automatically.",
		})
	}

	if facts.hasClean {
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategorySpecQuality,
			Severity:       domain.SeverityInfo,
			Tag:            "deprecated-clean-section",
			Detail:         "%clean section is deprecated in modern RPM.",
			Recommendation: "Remove the %clean section; rpmbuild handles cleanup automatically.",
		})
	}
}

// macroChecks are the hardcoded-path conventions. Each check is independent;
// a single line may trigger several.
var macroChecks = []struct {
	substr     string
	macro      string
	skipSource bool
	severity   domain.Severity
	tag        string
	rec        string
}{
	{"/usr/lib/", "%{_libdir}", false, domain.SeverityWarning, "hardcoded-library-path",
		"Use %{_libdir} macro instead of hardcoded library path."},
	{"/usr/bin/", "%{_bindir}", true, domain.SeverityWarning, "hardcoded-bindir",
		"Use %{_bindir} macro instead of hardcoded path."},
	{"/usr/share/", "%{_datadir}", true, domain.SeverityInfo, "hardcoded-datadir",
		"Use %{_datadir} macro for portability."},
	{"/etc/", "%{_sysconfdir}", false, domain.SeverityInfo, "hardcoded-sysconfdir",
		"Use %{_sysconfdir} macro for portability."},
}

func scanMacros(lines []string, findings *[]domain.Finding) {
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "#") {
			continue
		}
		for _, check := range macroChecks {
			if !strings.Contains(stripped, check.substr) || strings.Contains(stripped, check.macro) {
				continue
			}
			if check.skipSource && strings.HasPrefix(stripped, "Source") {
				continue
			}
			*findings = append(*findings, domain.Finding{
				Category: domain.CategoryMacros,
				Severity: check.severity,
				Tag:      check.tag,
				Detail: fmt.Sprintf("Line %d: Hardcoded %s instead of %s.",
					i+1, check.substr, check.macro),
				Recommendation: check.rec,
			})
		}
	}
}

// scriptletMarkers are the section headers that open a scriptlet body.
var scriptletMarkers = map[string]bool{
	"%pre": true, "%post": true, "%preun": true,
	"%postun": true, "%pretrans": true, "%posttrans": true,
}

// sectionState is the two-state machine shared by the scriptlet and
// changelog scans.
type sectionState int

const (
	outsideSection sectionState = iota
	insideSection
)

// scanScriptlets walks the lines once, tracking whether the current line is
// inside a recognized scriptlet section. A scriptlet opens on an exact marker
// line (the marker itself is not content-checked) and closes on any line
// starting with "%" that is not a "%{" macro invocation; the closing line is
// not content-checked either.
func scanScriptlets(lines []string, findings *[]domain.Finding) {
	state := outsideSection
	for i, line := range lines {
		stripped := strings.TrimSpace(line)

		if scriptletMarkers[stripped] {
			state = insideSection
			continue
		}
		if strings.HasPrefix(stripped, "%") && !strings.HasPrefix(stripped, "%{") {
			state = outsideSection
		}
		if state != insideSection {
			continue
		}

		if strings.Contains(stripped, "rm -rf /") || strings.Contains(stripped, "rm -rf $RPM_BUILD_ROOT") {
			*findings = append(*findings, domain.Finding{
				Category:       domain.CategoryScriptlets,
				Severity:       domain.SeverityError,
				Tag:            "dangerous-rm-in-scriptlet",
				Detail:         fmt.Sprintf("Line %d: Dangerous rm -rf in scriptlet.", i+1),
				Recommendation: "Avoid destructive rm commands in scriptlets.",
			})
		}
		if strings.HasPrefix(stripped, "exit") {
			*findings = append(*findings, domain.Finding{
				Category:       domain.CategoryScriptlets,
				Severity:       domain.SeverityWarning,
				Tag:            "exit-in-scriptlet",
				Detail:         fmt.Sprintf("Line %d: 'exit' in scriptlet may cause transaction failure.", i+1),
				Recommendation: "Use 'exit 0' or remove exit calls; scriptlet failures can block RPM transactions.",
			})
		}
	}
}

// changelogEntryPattern matches "* Day Mon DD YYYY Name <email>" entry
// headers. Applied to the raw line, not the trimmed one. Day and month names
// may be localized, so the word classes must cover non-ASCII letters.
var changelogEntryPattern = regexp.MustCompile(`^\*\s+[\p{L}\p{N}_]+\s+[\p{L}\p{N}_]+\s+\d+\s+\d{4}\s+.+\s+<.+@.+>`)

// scanChangelog validates changelog entry headers. The state machine enters
// on the exact "%changelog" line and never exits: by spec convention the
// changelog is the last section, so everything below it is treated as
// changelog content to end of file.
func scanChangelog(lines []string, findings *[]domain.Finding) {
	state := outsideSection
	for i, line := range lines {
		if strings.TrimSpace(line) == "%changelog" {
			state = insideSection
			continue
		}
		if state != insideSection || !strings.HasPrefix(line, "*") {
			continue
		}
		if !changelogEntryPattern.MatchString(line) {
			*findings = append(*findings, domain.Finding{
				Category:       domain.CategoryChangelog,
				Severity:       domain.SeverityWarning,
				Tag:            "malformed-changelog-entry",
				Detail:         fmt.Sprintf("Line %d: Changelog entry does not follow standard format.", i+1),
				Recommendation: "Use format: * Day Mon DD YYYY Name <email> - version-release",
			})
		}
	}
}
