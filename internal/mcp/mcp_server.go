// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sw360/sw360-dashboard/internal/contract"
)

// NewMCPServer initializes and configures the SW360 dashboard MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.RunManager) *server.MCPServer {
	s := server.NewMCPServer(
		"SW360 Dashboard Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: preview_statistics ---
	s.AddTool(mcp.NewTool("preview_statistics",
		mcp.WithDescription("Fetch SW360 catalog data and compute the full statistics set without pushing anything to the metrics gateway."),
		mcp.WithString("group", mcp.Description("Business unit to scope the statistics to (defaults to the full catalog).")),
		mcp.WithString("database", mcp.Description("CouchDB database name (defaults to the configured database).")),
	), h.handlePreviewStatistics)

	// --- 2. Tool: get_collection_runs ---
	s.AddTool(mcp.NewTool("get_collection_runs",
		mcp.WithDescription("List recorded collection runs with their totals and push outcomes."),
	), h.handleGetCollectionRuns)

	// --- 3. Tool: get_run_rankings ---
	s.AddTool(mcp.NewTool("get_run_rankings",
		mcp.WithDescription("List recorded top-N rankings across collection runs."),
		mcp.WithString("kind", mcp.Description("Ranking dimension to filter by."), mcp.Enum("component_releases", "release_projects")),
	), h.handleGetRunRankings)

	// --- 4. Tool: get_run_store_status ---
	s.AddTool(mcp.NewTool("get_run_store_status",
		mcp.WithDescription("Report the run history store backend, size and last run time."),
	), h.handleGetRunStoreStatus)

	return s
}

// StartMCPServer starts the SW360 dashboard MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.RunManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
