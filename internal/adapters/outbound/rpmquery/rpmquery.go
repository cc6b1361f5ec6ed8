// Package rpmquery implements domain.PackageQuerier by shelling out to the
// rpm tool. Each query is one process with a 30-second ceiling.
package rpmquery

import (
	"context"
	"time"

	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/toolexec"
	"github.com/yeager/rpm-policy-checker/internal/domain"
)

const queryTimeout = 30 * time.Second

// Querier runs rpm metadata queries against binary packages.
type Querier struct{}

// New creates a Querier.
func New() *Querier { return &Querier{} }

// QueryInfo returns the human-readable package info (rpm -qpi).
func (q *Querier) QueryInfo(ctx context.Context, path string) (domain.ToolResult, error) {
	return toolexec.Run(ctx, queryTimeout, "rpm", "-qpi", path)
}

// QueryFileList returns the installed file paths (rpm -qpl).
func (q *Querier) QueryFileList(ctx context.Context, path string) (domain.ToolResult, error) {
	return toolexec.Run(ctx, queryTimeout, "rpm", "-qpl", path)
}

// QueryDependencies returns the runtime dependency capabilities (rpm -qpR).
func (q *Querier) QueryDependencies(ctx context.Context, path string) (domain.ToolResult, error) {
	return toolexec.Run(ctx, queryTimeout, "rpm", "-qpR", path)
}
