// Package rpmlint implements domain.LintRunner by invoking the rpmlint tool.
package rpmlint

import (
	"context"
	"time"

	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/toolexec"
	"github.com/yeager/rpm-policy-checker/internal/domain"
)

// rpmlint walks every check on the artifact, so it gets a far larger budget
// than the metadata queries.
const lintTimeout = 120 * time.Second

// Runner invokes rpmlint.
type Runner struct{}

// New creates a Runner.
func New() *Runner { return &Runner{} }

// Lint runs rpmlint against the artifact at path.
func (r *Runner) Lint(ctx context.Context, path string) (domain.ToolResult, error) {
	return toolexec.Run(ctx, lintTimeout, "rpmlint", path)
}
