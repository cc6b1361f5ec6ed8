// Package rpmcheck validates a binary RPM package using the metadata exposed
// by an injected query collaborator. The package info query is essential:
// if it fails the analysis stops with a terminal finding. The file list and
// dependency queries are supplementary and skipped silently on failure.
package rpmcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yeager/rpm-policy-checker/internal/domain"
)

// exemptFileDependencies are file-based dependencies so universal that
// flagging them is noise.
var exemptFileDependencies = map[string]bool{
	"/bin/sh":        true,
	"/bin/bash":      true,
	"/sbin/ldconfig": true,
}

// Analyze runs all binary package checks against the artifact at path.
func Analyze(ctx context.Context, path string, querier domain.PackageQuerier) []domain.Finding {
	var findings []domain.Finding

	info, err := querier.QueryInfo(ctx, path)
	if err != nil || info.ExitCode != 0 {
		return append(findings, queryFailureFinding(info, err))
	}

	checkInfo(info.Stdout, &findings)

	if files, err := querier.QueryFileList(ctx, path); err == nil && files.ExitCode == 0 {
		checkFileList(files.Stdout, &findings)
	}

	if deps, err := querier.QueryDependencies(ctx, path); err == nil && deps.ExitCode == 0 {
		checkDependencies(deps.Stdout, &findings)
	}

	return findings
}

// queryFailureFinding maps an essential-query failure to its terminal
// finding. Tool absence, a failed run, and an invocation error (such as a
// timeout) are deliberately distinguishable by tag.
func queryFailureFinding(info domain.ToolResult, err error) domain.Finding {
	switch {
	case errors.Is(err, domain.ErrToolNotFound):
		return domain.Finding{
			Category:       domain.CategoryGeneral,
			Severity:       domain.SeverityError,
			Tag:            "rpm-not-installed",
			Detail:         "rpm command not found.",
			Recommendation: "Install the rpm package to analyze RPM files.",
		}
	case err != nil:
		return domain.Finding{
			Category: domain.CategoryGeneral,
			Severity: domain.SeverityError,
			Tag:      "rpm-error",
			Detail:   err.Error(),
		}
	default:
		detail := strings.TrimSpace(info.Stderr)
		if detail == "" {
			detail = "Failed to query RPM package."
		}
		return domain.Finding{
			Category:       domain.CategoryGeneral,
			Severity:       domain.SeverityError,
			Tag:            "rpm-query-failed",
			Detail:         detail,
			Recommendation: "Ensure the file is a valid RPM package.",
		}
	}
}

// checkInfo scans the human-readable package info text. Each URL header line
// with an empty or "(none)" value is reported.
func checkInfo(info string, findings *[]domain.Finding) {
	for _, line := range strings.Split(info, "\n") {
		if !strings.HasPrefix(line, "URL") {
			continue
		}
		value := ""
		if _, after, ok := strings.Cut(line, ":"); ok {
			value = strings.TrimSpace(after)
		}
		if value == "" || value == "(none)" {
			*findings = append(*findings, domain.Finding{
				Category:       domain.CategorySpecQuality,
				Severity:       domain.SeverityWarning,
				Tag:            "missing-url-in-rpm",
				Detail:         "RPM package has no URL set.",
				Recommendation: "Add a URL tag to the spec file.",
			})
		}
	}
}

func checkFileList(fileList string, findings *[]domain.Finding) {
	for _, path := range strings.Split(fileList, "\n") {
		if strings.HasPrefix(path, "/usr/local/") {
			*findings = append(*findings, domain.Finding{
				Category:       domain.CategoryFilePlacement,
				Severity:       domain.SeverityError,
				Tag:            "file-in-usr-local",
				Detail:         fmt.Sprintf("File installed in /usr/local/: %s", path),
				Recommendation: "RPM packages must not install files under /usr/local/.",
			})
		}
		// Debug build-id metadata legitimately lives under these paths.
		if path == "/usr/lib/.build-id" || strings.Contains(path, "/.build-id/") {
			continue
		}
		if strings.HasPrefix(path, "/tmp/") || strings.HasPrefix(path, "/var/tmp/") {
			*findings = append(*findings, domain.Finding{
				Category:       domain.CategoryFilePlacement,
				Severity:       domain.SeverityError,
				Tag:            "file-in-tmp",
				Detail:         fmt.Sprintf("File installed in temporary directory: %s", path),
				Recommendation: "Do not install files under /tmp/ or /var/tmp/.",
			})
		}
	}
}

func checkDependencies(deps string, findings *[]domain.Finding) {
	for _, dep := range strings.Split(deps, "\n") {
		dep = strings.TrimSpace(dep)
		if !strings.HasPrefix(dep, "/") || strings.HasPrefix(dep, "/usr/") {
			continue
		}
		if exemptFileDependencies[dep] {
			continue
		}
		*findings = append(*findings, domain.Finding{
			Category:       domain.CategoryDependencies,
			Severity:       domain.SeverityInfo,
			Tag:            "file-dependency",
			Detail:         fmt.Sprintf("File-based dependency: %s", dep),
			Recommendation: "Consider using package-based dependencies instead of file paths where possible.",
		})
	}
}
