// Package lintcheck normalizes rpmlint output into findings. Invocation
// error classification and line parsing live here; the actual subprocess is
// behind the domain.LintRunner port.
package lintcheck

import (
	"context"
	"errors"
	"strings"

	"github.com/yeager/rpm-policy-checker/internal/domain"
)

// Run lints the artifact at path and returns the normalized findings.
// A missing rpmlint binary and a failed invocation each produce a single
// error finding; a clean run with violations produces one finding per
// parseable output line.
func Run(ctx context.Context, path string, runner domain.LintRunner) []domain.Finding {
	result, err := runner.Lint(ctx, path)
	switch {
	case errors.Is(err, domain.ErrToolNotFound):
		return []domain.Finding{{
			Category:       domain.CategoryRpmlint,
			Severity:       domain.SeverityError,
			Tag:            "rpmlint-not-installed",
			Detail:         "rpmlint is not installed.",
			Recommendation: "Install with: sudo dnf install rpmlint",
		}}
	case err != nil:
		return []domain.Finding{{
			Category: domain.CategoryRpmlint,
			Severity: domain.SeverityError,
			Tag:      "rpmlint-error",
			Detail:   err.Error(),
		}}
	}
	// rpmlint exits non-zero whenever it finds problems; the output is the
	// signal, not the exit code.
	return Parse(result.Combined())
}

// Parse converts combined rpmlint stdout and stderr into findings.
//
// Two line formats are recognized. The primary format is
// "package: severity-letter: tag detail". Lines that miss it fall through to
// the simpler "tag: detail" format with an assumed Warning severity, but only
// when they are non-blank and not known noise (separator rules, indented
// continuations, rpmlint's own banner). Everything else is dropped silently.
func Parse(output string) []domain.Finding {
	var findings []domain.Finding

	for _, line := range strings.Split(output, "\n") {
		if finding, ok := parsePrimary(line); ok {
			findings = append(findings, finding)
			continue
		}
		if strings.TrimSpace(line) == "" || isNoise(line) {
			continue
		}
		if finding, ok := parseFallback(line); ok {
			findings = append(findings, finding)
		}
	}

	return findings
}

func isNoise(line string) bool {
	return strings.HasPrefix(line, "---") ||
		strings.HasPrefix(line, " ") ||
		strings.HasPrefix(line, "rpmlint:")
}
