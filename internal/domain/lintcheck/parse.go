package lintcheck

import (
	"regexp"
	"strings"

	"github.com/yeager/rpm-policy-checker/internal/domain"
)

// primaryPattern matches rpmlint's standard "package: X: tag detail" output.
var primaryPattern = regexp.MustCompile(`^(.+?):\s*(\w):\s*(\S+)\s*(.*)`)

// fallbackPattern matches the simpler "tag: detail" format some rpmlint
// versions emit for summary lines.
var fallbackPattern = regexp.MustCompile(`^(\S+):\s*(.*)`)

func parsePrimary(line string) (domain.Finding, bool) {
	m := primaryPattern.FindStringSubmatch(line)
	if m == nil {
		return domain.Finding{}, false
	}
	return domain.Finding{
		Category: domain.CategoryRpmlint,
		Severity: domain.Severity(m[2]),
		Package:  strings.TrimSpace(m[1]),
		Tag:      m[3],
		Detail:   m[4],
	}, true
}

func parseFallback(line string) (domain.Finding, bool) {
	m := fallbackPattern.FindStringSubmatch(line)
	if m == nil {
		return domain.Finding{}, false
	}
	return domain.Finding{
		Category: domain.CategoryRpmlint,
		Severity: domain.SeverityWarning,
		Tag:      m[1],
		Detail:   m[2],
	}, true
}
