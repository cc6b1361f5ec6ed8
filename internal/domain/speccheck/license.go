package speccheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yeager/rpm-policy-checker/internal/domain"
)

// spdxIdentifiers is a curated allow-list of the SPDX identifiers commonly
// seen in Fedora packages. Not exhaustive; anything absent is reported as
// unrecognized, not rejected.
var spdxIdentifiers = map[string]bool{
	"MIT": true, "Apache-2.0": true, "GPL-2.0-only": true, "GPL-2.0-or-later": true,
	"GPL-3.0-only": true, "GPL-3.0-or-later": true, "LGPL-2.1-only": true,
	"LGPL-2.1-or-later": true, "LGPL-3.0-only": true, "LGPL-3.0-or-later": true,
	"BSD-2-Clause": true, "BSD-3-Clause": true, "MPL-2.0": true, "ISC": true,
	"Zlib": true, "Unlicense": true, "CC0-1.0": true, "AGPL-3.0-only": true,
	"AGPL-3.0-or-later": true, "Artistic-2.0": true, "BSL-1.0": true,
	"CC-BY-4.0": true, "CC-BY-SA-4.0": true, "EPL-2.0": true, "EUPL-1.2": true,
	"WTFPL": true, "0BSD": true,
}

// oldFedoraLicenses are the pre-SPDX Fedora short names. Some overlap with
// SPDX (MIT); those are accepted as SPDX and never flagged as legacy.
var oldFedoraLicenses = map[string]bool{
	"GPLv2": true, "GPLv2+": true, "GPLv3": true, "GPLv3+": true,
	"LGPLv2": true, "LGPLv2+": true, "LGPLv3": true, "LGPLv3+": true,
	"ASL 2.0": true, "BSD": true, "MIT": true,
}

// licenseSplitPattern separates the clauses of a compound license
// expression. Only whitespace-surrounded AND/OR keywords split, so legacy
// names containing spaces ("ASL 2.0") survive intact.
var licenseSplitPattern = regexp.MustCompile(`\s+(?i:AND|OR)\s+`)

// validateLicense checks each clause of a license expression against the
// SPDX and legacy Fedora identifier sets. Clause-level matching lets
// compound expressions like "MIT AND Apache-2.0" validate per part.
func validateLicense(expression string) []domain.Finding {
	var findings []domain.Finding

	for _, part := range licenseSplitPattern.Split(expression, -1) {
		part = strings.Trim(strings.TrimSpace(part), "()")

		switch {
		case oldFedoraLicenses[part] && !spdxIdentifiers[part]:
			findings = append(findings, domain.Finding{
				Category:       domain.CategoryLicensing,
				Severity:       domain.SeverityWarning,
				Tag:            "old-license-identifier",
				Detail:         fmt.Sprintf("License '%s' uses old Fedora format, not SPDX.", part),
				Recommendation: "Fedora 40+ requires SPDX license identifiers. Convert to SPDX format.",
			})
		case !spdxIdentifiers[part]:
			findings = append(findings, domain.Finding{
				Category:       domain.CategoryLicensing,
				Severity:       domain.SeverityInfo,
				Tag:            "unknown-license-identifier",
				Detail:         fmt.Sprintf("License identifier '%s' is not a recognized SPDX identifier.", part),
				Recommendation: "Check https://spdx.org/licenses/ for valid SPDX identifiers.",
			})
		}
	}

	return findings
}

// ValidateLicense exposes license expression validation for consumers other
// than the spec analyzer (the MCP tools use it directly).
func ValidateLicense(expression string) []domain.Finding {
	return validateLicense(expression)
}
