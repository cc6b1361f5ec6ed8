package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/tui"
	"github.com/yeager/rpm-policy-checker/internal/domain"
)

func TestFilter(t *testing.T) {
	findings := []domain.Finding{
		{Severity: domain.SeverityError, Tag: "e"},
		{Severity: domain.SeverityWarning, Tag: "w"},
		{Severity: domain.SeverityInfo, Tag: "i"},
		{Severity: domain.SeverityPedantic, Tag: "p"},
	}

	all := tui.Filter(findings, tui.Options{ShowPedantic: true, ShowInfo: true})
	assert.Len(t, all, 4)

	noInfo := tui.Filter(findings, tui.Options{ShowPedantic: true, ShowInfo: false})
	assert.Len(t, noInfo, 3)
	for _, f := range noInfo {
		assert.NotEqual(t, domain.SeverityInfo, f.Severity)
	}

	strict := tui.Filter(findings, tui.Options{})
	assert.Len(t, strict, 2)
}

func TestRenderReport_AllChecksPassed(t *testing.T) {
	out := tui.RenderReport("foo.spec", nil, tui.Options{ShowPedantic: true, ShowInfo: true})

	assert.Contains(t, out, "rpm-policy-checker")
	assert.Contains(t, out, "foo.spec")
	assert.Contains(t, out, "All checks passed!")
	assert.Contains(t, out, "No policy issues were found. The package looks good!")
}

func TestRenderReport_FilteredToEmptyCountsAsPass(t *testing.T) {
	findings := []domain.Finding{{Severity: domain.SeverityInfo, Tag: "hardcoded-datadir"}}

	out := tui.RenderReport("foo.spec", findings, tui.Options{ShowPedantic: true, ShowInfo: false})

	assert.Contains(t, out, "All checks passed!")
	assert.NotContains(t, out, "hardcoded-datadir")
}

func TestRenderReport_GroupsAndCounts(t *testing.T) {
	findings := []domain.Finding{
		{
			Category:       domain.CategoryNaming,
			Severity:       domain.SeverityWarning,
			Tag:            "uppercase-package-name",
			Package:        "Foo",
			Detail:         "Package name 'Foo' contains uppercase letters.",
			Recommendation: "Fedora guidelines recommend lowercase package names; consider 'foo'.",
		},
		{
			Category: domain.CategoryScriptlets,
			Severity: domain.SeverityError,
			Tag:      "dangerous-rm-in-scriptlet",
			Detail:   "Line 12: Dangerous rm -rf in scriptlet.",
		},
		{
			Category: domain.CategoryNaming,
			Severity: domain.SeverityError,
			Tag:      "space-in-package-name",
		},
	}

	out := tui.RenderReport("foo.spec", findings, tui.Options{ShowPedantic: true, ShowInfo: true})

	assert.Contains(t, out, "Package Naming")
	assert.Contains(t, out, "Scriptlets")
	assert.Contains(t, out, "uppercase-package-name")
	assert.Contains(t, out, "↳ Fedora guidelines recommend lowercase package names; consider 'foo'.")
	assert.Contains(t, out, "3 issues:")
	assert.Contains(t, out, "2 errors")
	assert.Contains(t, out, "1 warnings")

	// Categories appear in first-appearance order.
	assert.Less(t,
		strings.Index(out, "Package Naming"),
		strings.Index(out, "Scriptlets"))
}

func TestRenderReport_CommitShownTruncated(t *testing.T) {
	out := tui.RenderReport("foo.spec", nil, tui.Options{
		Commit: "0123456789abcdef0123456789abcdef01234567",
	})

	assert.Contains(t, out, "dist-git 0123456789ab")
	assert.NotContains(t, out, "0123456789abc")
}
