package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/rpmfile"
	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/rpmlint"
	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/rpmquery"
	"github.com/yeager/rpm-policy-checker/internal/application"
	"github.com/yeager/rpm-policy-checker/internal/domain/speccheck"
)

// registerTools registers all rpm-policy-checker MCP tools.
func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcplib.NewTool("rpmpolicy_check",
			mcplib.WithDescription("Run Fedora packaging policy checks on a .rpm package or .spec file and return the findings as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the .rpm or .spec file to check"),
			),
			mcplib.WithBoolean("run_rpmlint",
				mcplib.Description("Also run rpmlint on the artifact (default: false)"),
			),
		),
		handleCheck(),
	)

	s.AddTool(
		mcplib.NewTool("rpmpolicy_check_spec_text",
			mcplib.WithDescription("Run the spec file policy checks directly on spec text, without touching the filesystem"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Full text of the spec file"),
			),
		),
		handleCheckSpecText(),
	)

	s.AddTool(
		mcplib.NewTool("rpmpolicy_validate_license",
			mcplib.WithDescription("Validate an RPM License expression against SPDX and legacy Fedora identifiers"),
			mcplib.WithString("expression",
				mcplib.Required(),
				mcplib.Description("License expression, e.g. 'MIT AND Apache-2.0'"),
			),
		),
		handleValidateLicense(),
	)

	s.AddTool(
		mcplib.NewTool("rpmpolicy_inspect",
			mcplib.WithDescription("Read an RPM package header natively (no rpm tool needed) and return its metadata as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the .rpm file"),
			),
		),
		handleInspect(),
	)
}

func handleCheck() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		runRpmlint, _ := request.GetArguments()["run_rpmlint"].(bool)

		svc := application.NewCheckService(rpmquery.New(), rpmlint.New())
		return jsonResult(svc.Check(ctx, path, runRpmlint))
	}
}

func handleCheckSpecText() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(speccheck.Analyze(text))
	}
}

func handleValidateLicense() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		expression, err := request.RequireString("expression")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(speccheck.ValidateLicense(expression))
	}
}

func handleInspect() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		info, err := rpmfile.Read(path)
		if err != nil {
			return errorResult(fmt.Sprintf("inspect failed: %v", err)), nil
		}
		return jsonResult(info)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
