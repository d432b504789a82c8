package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sw360/sw360-dashboard/core"
	"github.com/sw360/sw360-dashboard/internal/contract"
	"github.com/sw360/sw360-dashboard/internal/couchstore"
	"github.com/sw360/sw360-dashboard/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.RunManager
}

func (h *toolHandler) handlePreviewStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if g := request.GetString("group", ""); g != "" {
		cfg.Group = g
	}
	if d := request.GetString("database", ""); d != "" {
		cfg.Database = d
	}

	src, err := couchstore.New(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("document store connection failed: %v", err)), nil
	}

	agg, err := core.CollectAggregate(core.WithSuppressProgress(ctx), cfg, src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("collection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(agg, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCollectionRuns(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store := h.mgr.GetRunStore()
	if store == nil {
		return mcp.NewToolResultError("run store is not initialized"), nil
	}

	runs, err := store.GetAllRuns()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to retrieve collection runs: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(runs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRunRankings(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store := h.mgr.GetRunStore()
	if store == nil {
		return mcp.NewToolResultError("run store is not initialized"), nil
	}

	rankings, err := store.GetAllRankings()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to retrieve rankings: %v", err)), nil
	}

	if kind := request.GetString("kind", ""); kind != "" {
		filtered := make([]schema.RankingRecord, 0, len(rankings))
		for _, r := range rankings {
			if r.Kind == kind {
				filtered = append(filtered, r)
			}
		}
		rankings = filtered
	}

	jsonData, _ := json.MarshalIndent(rankings, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRunStoreStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store := h.mgr.GetRunStore()
	if store == nil {
		return mcp.NewToolResultError("run store is not initialized"), nil
	}

	status, err := store.GetStatus()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get run store status: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(status, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
