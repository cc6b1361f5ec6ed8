// Package tui renders finding reports for the terminal.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yeager/rpm-policy-checker/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	recStyle      = lipgloss.NewStyle().Foreground(dim).Italic(true)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// Options controls display-side filtering and header context. Filtering here
// never changes what the analyzers emitted.
type Options struct {
	ShowPedantic bool
	ShowInfo     bool
	Commit       string // dist-git HEAD, empty when not in a repository
}

// Filter applies the display settings to a finding sequence.
func Filter(findings []domain.Finding, opts Options) []domain.Finding {
	out := make([]domain.Finding, 0, len(findings))
	for _, f := range findings {
		if !opts.ShowPedantic && f.Severity == domain.SeverityPedantic {
			continue
		}
		if !opts.ShowInfo && f.Severity == domain.SeverityInfo {
			continue
		}
		out = append(out, f)
	}
	return out
}

// RenderReport renders the findings for one artifact as a styled report.
// Findings are grouped by category in first-appearance order; the analyzer
// ordering within a category is preserved.
func RenderReport(path string, findings []domain.Finding, opts Options) string {
	var b strings.Builder

	title := headerStyle.Render("rpm-policy-checker")
	subtitle := dimStyle.Render(filepath.Base(path))
	header := title + "\n" + subtitle
	if opts.Commit != "" {
		header += "\n" + faintStyle.Render("dist-git "+shortHash(opts.Commit))
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	shown := Filter(findings, opts)
	if len(shown) == 0 {
		b.WriteString("  " + passStyle.Render("All checks passed!") + "\n")
		b.WriteString("  " + dimStyle.Render("No policy issues were found. The package looks good!") + "\n")
		return b.String()
	}

	for _, group := range groupByCategory(shown) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			catStyle.Render(group.category.Name()),
			dimStyle.Render(fmt.Sprintf("(%d)", len(group.findings))),
		))
		for _, f := range group.findings {
			renderFinding(&b, f)
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + separatorLine + "\n\n")
	errors, warnings := countSeverities(shown)
	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("%d issues:", len(shown))))
	b.WriteString("  " + errorTagStyle.Render(fmt.Sprintf("%d errors", errors)))
	b.WriteString("  " + warnTagStyle.Render(fmt.Sprintf("%d warnings", warnings)))
	b.WriteString("\n")

	return b.String()
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	badge := severityStyle(f.Severity).Render(f.Severity.Name())
	line := fmt.Sprintf("    %s  %s", badge, titleStyle.Render(f.Tag))
	if f.Package != "" {
		line += "  " + dimStyle.Render(f.Package)
	}
	b.WriteString(line + "\n")
	if f.Detail != "" {
		b.WriteString("       " + f.Detail + "\n")
	}
	if f.Recommendation != "" {
		b.WriteString("       " + recStyle.Render("↳ "+f.Recommendation) + "\n")
	}
}

func severityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityError:
		return errorTagStyle
	case domain.SeverityWarning:
		return warnTagStyle
	case domain.SeverityInfo:
		return infoTagStyle
	default:
		return dimStyle
	}
}

type categoryGroup struct {
	category domain.Category
	findings []domain.Finding
}

func groupByCategory(findings []domain.Finding) []categoryGroup {
	index := map[domain.Category]int{}
	var groups []categoryGroup
	for _, f := range findings {
		i, ok := index[f.Category]
		if !ok {
			i = len(groups)
			index[f.Category] = i
			groups = append(groups, categoryGroup{category: f.Category})
		}
		groups[i].findings = append(groups[i].findings, f)
	}
	return groups
}

func countSeverities(findings []domain.Finding) (errors, warnings int) {
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityError:
			errors++
		case domain.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
