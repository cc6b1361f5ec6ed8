package domain

import (
	"context"
	"errors"
	"time"
)

// ErrToolNotFound reports that the external binary backing a collaborator is
// not installed. Callers must be able to tell this apart from a tool that ran
// and exited non-zero, so adapters wrap exec.ErrNotFound into this sentinel.
var ErrToolNotFound = errors.New("external tool not found")

// ToolResult is the captured outcome of one external tool invocation.
// It never leaves the analyzer layer; consumers only ever see Findings.
type ToolResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Combined returns stdout followed by stderr, the way rpmlint output is
// consumed line by line.
func (r ToolResult) Combined() string {
	return r.Stdout + r.Stderr
}

// PackageQuerier exposes the three independent rpm metadata queries used by
// the binary package analyzer. Each invocation is an isolated process with a
// 30-second ceiling enforced by the implementation.
type PackageQuerier interface {
	// QueryInfo returns the human-readable package info text (rpm -qpi).
	QueryInfo(ctx context.Context, path string) (ToolResult, error)
	// QueryFileList returns the installed file paths (rpm -qpl).
	QueryFileList(ctx context.Context, path string) (ToolResult, error)
	// QueryDependencies returns the runtime capability strings (rpm -qpR).
	QueryDependencies(ctx context.Context, path string) (ToolResult, error)
}

// LintRunner invokes the external linter against an artifact, capturing
// combined output with a 120-second ceiling.
type LintRunner interface {
	Lint(ctx context.Context, path string) (ToolResult, error)
}
