package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/yeager/rpm-policy-checker/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the rpm-policy-checker MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio)",
		Long:  "Start the rpm-policy-checker MCP server using stdio transport, so AI coding assistants can run policy checks on packages and spec files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewServer(version)
			return server.ServeStdio(s)
		},
	}
}
