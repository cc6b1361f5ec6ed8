// Package application wires the analyzers together: it routes an artifact
// path to the right checks and concatenates their findings.
package application

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/yeager/rpm-policy-checker/internal/domain"
	"github.com/yeager/rpm-policy-checker/internal/domain/lintcheck"
	"github.com/yeager/rpm-policy-checker/internal/domain/rpmcheck"
	"github.com/yeager/rpm-policy-checker/internal/domain/speccheck"
)

// CheckService dispatches package analysis. It holds no mutable state, so a
// single instance is safe to use from concurrent callers.
type CheckService struct {
	querier domain.PackageQuerier
	linter  domain.LintRunner
}

// NewCheckService creates a CheckService with the given collaborators.
func NewCheckService(querier domain.PackageQuerier, linter domain.LintRunner) *CheckService {
	return &CheckService{querier: querier, linter: linter}
}

// Check analyzes the artifact at path and returns all findings in invocation
// order. Results from sub-analyzers are concatenated as-is: no merging,
// sorting or deduplication happens at this layer.
//
// Routing: *.spec files get the spec analysis, *.rpm files the binary
// analysis, each followed by rpmlint when runLinter is set. Anything else is
// sniffed by its first line; spec-looking content gets the spec analysis
// only, never the linter.
func (s *CheckService) Check(ctx context.Context, path string, runLinter bool) []domain.Finding {
	var findings []domain.Finding

	switch {
	case strings.HasSuffix(path, ".spec"):
		findings = append(findings, speccheck.AnalyzeFile(path)...)
		if runLinter {
			findings = append(findings, lintcheck.Run(ctx, path, s.linter)...)
		}
	case strings.HasSuffix(path, ".rpm"):
		findings = append(findings, rpmcheck.Analyze(ctx, path, s.querier)...)
		if runLinter {
			findings = append(findings, lintcheck.Run(ctx, path, s.linter)...)
		}
	default:
		firstLine, err := peekFirstLine(path)
		if err == nil && looksLikeSpec(firstLine) {
			findings = append(findings, speccheck.AnalyzeFile(path)...)
		} else {
			findings = append(findings, domain.Finding{
				Category:       domain.CategoryGeneral,
				Severity:       domain.SeverityError,
				Tag:            "unknown-file-type",
				Detail:         "File is not a .rpm or .spec file.",
				Recommendation: "Open a .rpm package or .spec file.",
			})
		}
	}

	return findings
}

func looksLikeSpec(firstLine string) bool {
	return strings.Contains(firstLine, "Name:") || strings.Contains(firstLine, "%")
}

func peekFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
