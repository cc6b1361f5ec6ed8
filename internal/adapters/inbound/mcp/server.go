// Package mcp exposes the policy checker over the Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with all rpm-policy-checker tools
// registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"rpm-policy-checker",
		version,
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	return s
}
