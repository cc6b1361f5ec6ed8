package lintcheck_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeager/rpm-policy-checker/internal/domain"
	"github.com/yeager/rpm-policy-checker/internal/domain/lintcheck"
)

// fakeRunner returns a canned lint result.
type fakeRunner struct {
	result domain.ToolResult
	err    error
}

func (r *fakeRunner) Lint(context.Context, string) (domain.ToolResult, error) {
	return r.result, r.err
}

func TestRun_RpmlintNotInstalled(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("running rpmlint: %w", domain.ErrToolNotFound)}

	findings := lintcheck.Run(context.Background(), "pkg.rpm", runner)

	require.Len(t, findings, 1)
	assert.Equal(t, "rpmlint-not-installed", findings[0].Tag)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, "Install with: sudo dnf install rpmlint", findings[0].Recommendation)
}

func TestRun_InvocationError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("rpmlint timed out after 2m0s")}

	findings := lintcheck.Run(context.Background(), "pkg.rpm", runner)

	require.Len(t, findings, 1)
	assert.Equal(t, "rpmlint-error", findings[0].Tag)
	assert.Equal(t, "rpmlint timed out after 2m0s", findings[0].Detail)
}

func TestRun_NonZeroExitStillParses(t *testing.T) {
	// rpmlint exits non-zero whenever it reports problems.
	runner := &fakeRunner{result: domain.ToolResult{
		Stdout:   "foo.noarch.rpm: E: no-changelogname\n",
		ExitCode: 64,
	}}

	findings := lintcheck.Run(context.Background(), "pkg.rpm", runner)

	require.Len(t, findings, 1)
	assert.Equal(t, "no-changelogname", findings[0].Tag)
}

func TestRun_CombinesStdoutAndStderr(t *testing.T) {
	runner := &fakeRunner{result: domain.ToolResult{
		Stdout: "foo.noarch.rpm: W: invalid-license Bogus\n",
		Stderr: "foo.noarch.rpm: E: specfile-error something\n",
	}}

	findings := lintcheck.Run(context.Background(), "pkg.rpm", runner)

	require.Len(t, findings, 2)
	assert.Equal(t, "invalid-license", findings[0].Tag)
	assert.Equal(t, "specfile-error", findings[1].Tag)
}

func TestParse_PrimaryFormat(t *testing.T) {
	findings := lintcheck.Parse("foo-1.0-1.noarch.rpm: W: invalid-license Bogus License\n")

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, domain.CategoryRpmlint, f.Category)
	assert.Equal(t, domain.SeverityWarning, f.Severity)
	assert.Equal(t, "foo-1.0-1.noarch.rpm", f.Package)
	assert.Equal(t, "invalid-license", f.Tag)
	assert.Equal(t, "Bogus License", f.Detail)
}

func TestParse_PrimaryFormatWithoutDetail(t *testing.T) {
	findings := lintcheck.Parse("foo.x86_64: E: statically-linked-binary\n")

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, "statically-linked-binary", findings[0].Tag)
	assert.Equal(t, "", findings[0].Detail)
}

func TestParse_UnknownSeverityLetterPreserved(t *testing.T) {
	findings := lintcheck.Parse("foo.spec: X: odd-tag\n")

	require.Len(t, findings, 1)
	assert.Equal(t, domain.Severity("X"), findings[0].Severity)
}

func TestParse_FallbackFormat(t *testing.T) {
	findings := lintcheck.Parse("configuration: /etc/xdg/rpmlint\n")

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, domain.SeverityWarning, f.Severity)
	assert.Equal(t, "", f.Package)
	assert.Equal(t, "configuration", f.Tag)
	assert.Equal(t, "/etc/xdg/rpmlint", f.Detail)
}

func TestParse_NoiseAndUnparseableLinesDropped(t *testing.T) {
	output := "rpmlint: 2.2.0\n" +
		"----------------------------\n" +
		" wrapped continuation line\n" +
		"1 packages and 0 specfiles checked; 0 errors, 0 warnings.\n" +
		"\n"

	assert.Empty(t, lintcheck.Parse(output))
}

func TestParse_RealisticOutput(t *testing.T) {
	output := "rpmlint: 2.2.0\n" +
		"foo-1.0-1.noarch.rpm: E: no-changelogname\n" +
		"foo-1.0-1.noarch.rpm: W: invalid-license Bogus License\n" +
		"--------------------------------\n" +
		"1 packages and 0 specfiles checked; 1 errors, 1 warnings.\n"

	findings := lintcheck.Parse(output)

	require.Len(t, findings, 2)
	assert.Equal(t, "no-changelogname", findings[0].Tag)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, "invalid-license", findings[1].Tag)
}
