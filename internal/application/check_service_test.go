package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeager/rpm-policy-checker/internal/application"
	"github.com/yeager/rpm-policy-checker/internal/domain"
)

type fakeQuerier struct {
	info      domain.ToolResult
	infoErr   error
	infoCalls int
}

func (q *fakeQuerier) QueryInfo(context.Context, string) (domain.ToolResult, error) {
	q.infoCalls++
	return q.info, q.infoErr
}

func (q *fakeQuerier) QueryFileList(context.Context, string) (domain.ToolResult, error) {
	return domain.ToolResult{}, nil
}

func (q *fakeQuerier) QueryDependencies(context.Context, string) (domain.ToolResult, error) {
	return domain.ToolResult{}, nil
}

type fakeLinter struct {
	result domain.ToolResult
	calls  int
}

func (l *fakeLinter) Lint(context.Context, string) (domain.ToolResult, error) {
	l.calls++
	return l.result, nil
}

func tagsOf(findings []domain.Finding) []string {
	tags := make([]string, 0, len(findings))
	for _, f := range findings {
		tags = append(tags, f.Tag)
	}
	return tags
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck_SpecFileRoutesToSpecAnalysis(t *testing.T) {
	querier := &fakeQuerier{}
	linter := &fakeLinter{}
	svc := application.NewCheckService(querier, linter)

	path := writeFile(t, "foo.spec", "Name: foo\n")
	findings := svc.Check(context.Background(), path, false)

	assert.Contains(t, tagsOf(findings), "missing-version")
	assert.Equal(t, 0, querier.infoCalls)
	assert.Equal(t, 0, linter.calls)
}

func TestCheck_SpecFileWithLinter(t *testing.T) {
	linter := &fakeLinter{result: domain.ToolResult{
		Stdout: "foo.spec: E: specfile-error bad macro\n",
	}}
	svc := application.NewCheckService(&fakeQuerier{}, linter)

	path := writeFile(t, "foo.spec", "Name: foo\n")
	findings := svc.Check(context.Background(), path, true)

	assert.Equal(t, 1, linter.calls)
	assert.Contains(t, tagsOf(findings), "specfile-error")
	// Spec findings come first, linter findings after.
	assert.Equal(t, "specfile-error", findings[len(findings)-1].Tag)
}

func TestCheck_RpmFileRoutesToBinaryAnalysis(t *testing.T) {
	querier := &fakeQuerier{info: domain.ToolResult{
		Stdout: "URL         : (none)\n",
	}}
	linter := &fakeLinter{}
	svc := application.NewCheckService(querier, linter)

	findings := svc.Check(context.Background(), "/nonexistent/pkg.rpm", false)

	assert.Equal(t, 1, querier.infoCalls)
	assert.Equal(t, 0, linter.calls)
	assert.Equal(t, []string{"missing-url-in-rpm"}, tagsOf(findings))
}

func TestCheck_RpmFileWithLinter(t *testing.T) {
	querier := &fakeQuerier{info: domain.ToolResult{Stdout: "Name : foo\n"}}
	linter := &fakeLinter{result: domain.ToolResult{
		Stdout: "foo.noarch.rpm: W: no-documentation\n",
	}}
	svc := application.NewCheckService(querier, linter)

	findings := svc.Check(context.Background(), "pkg.rpm", true)

	assert.Equal(t, 1, linter.calls)
	assert.Equal(t, []string{"no-documentation"}, tagsOf(findings))
}

func TestCheck_UnknownExtensionSniffsSpecContent(t *testing.T) {
	linter := &fakeLinter{}
	svc := application.NewCheckService(&fakeQuerier{}, linter)

	path := writeFile(t, "foo.txt", "Name: foo\nVersion: 1\n")
	findings := svc.Check(context.Background(), path, true)

	assert.Contains(t, tagsOf(findings), "missing-release")
	assert.NotContains(t, tagsOf(findings), "unknown-file-type")
	// Sniffed content never goes through the external linter.
	assert.Equal(t, 0, linter.calls)
}

func TestCheck_UnknownExtensionMacroFirstLine(t *testing.T) {
	svc := application.NewCheckService(&fakeQuerier{}, &fakeLinter{})

	path := writeFile(t, "foo.txt", "%global commit abc\n")
	findings := svc.Check(context.Background(), path, false)

	assert.NotContains(t, tagsOf(findings), "unknown-file-type")
}

func TestCheck_UnknownFileType(t *testing.T) {
	svc := application.NewCheckService(&fakeQuerier{}, &fakeLinter{})

	path := writeFile(t, "notes.txt", "just some text\n")
	findings := svc.Check(context.Background(), path, false)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, "unknown-file-type", f.Tag)
	assert.Equal(t, domain.CategoryGeneral, f.Category)
	assert.Equal(t, domain.SeverityError, f.Severity)
	assert.Equal(t, "File is not a .rpm or .spec file.", f.Detail)
	assert.Equal(t, "Open a .rpm package or .spec file.", f.Recommendation)
}

func TestCheck_MissingPathReportsUnknownFileType(t *testing.T) {
	svc := application.NewCheckService(&fakeQuerier{}, &fakeLinter{})

	findings := svc.Check(context.Background(), filepath.Join(t.TempDir(), "gone"), false)

	require.Len(t, findings, 1)
	assert.Equal(t, "unknown-file-type", findings[0].Tag)
}
