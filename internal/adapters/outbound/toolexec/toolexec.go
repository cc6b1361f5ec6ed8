// Package toolexec runs external tools with a hard timeout, capturing their
// output streams and exit status. Non-zero exit is data, not an error: the
// error return is reserved for invocation failures (missing binary, timeout,
// broken process start).
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/yeager/rpm-policy-checker/internal/domain"
	"github.com/yeager/rpm-policy-checker/internal/logger"
)

// Run executes name with args under the given timeout. Each invocation is an
// isolated process; once started it runs to completion or timeout, there is
// no other cancellation.
func Run(ctx context.Context, timeout time.Duration, name string, args ...string) (domain.ToolResult, error) {
	log := logger.Logger()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := domain.ToolResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	log.Debugf("exec %s %v: exit in %s", name, args, result.Duration)

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return result, fmt.Errorf("%s timed out after %s", name, timeout)
	case errors.Is(err, exec.ErrNotFound):
		return result, fmt.Errorf("%s: %w", name, domain.ErrToolNotFound)
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	default:
		return result, fmt.Errorf("running %s: %w", name, err)
	}
}
