package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw360/sw360-dashboard/internal/contract"
	mcp_internal "github.com/sw360/sw360-dashboard/internal/mcp"
	"github.com/sw360/sw360-dashboard/internal/runstore"
	"github.com/sw360/sw360-dashboard/schema"
)

func callTool(t *testing.T, mgr contract.RunManager, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	baseCfg := &contract.Config{Database: "sw360db"}
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestGetCollectionRuns(t *testing.T) {
	store := &runstore.MockRunStore{}
	store.On("GetAllRuns").Return([]schema.CollectionRunRecord{
		{RunID: 1, Job: "sw360_exporter", ComponentsTotal: 12, Pushed: true},
	}, nil)
	mgr := &runstore.MockRunManager{}
	mgr.On("GetRunStore").Return(store)

	res := callTool(t, mgr, "get_collection_runs", map[string]any{})
	require.False(t, res.IsError)
	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, "sw360_exporter")
	store.AssertExpectations(t)
}

func TestGetRunRankingsFilterByKind(t *testing.T) {
	store := &runstore.MockRunStore{}
	store.On("GetAllRankings").Return([]schema.RankingRecord{
		{RunID: 1, Kind: "component_releases", Rank: 1, EntityID: "c1", Name: "zlib", Count: 4},
		{RunID: 1, Kind: "release_projects", Rank: 1, EntityID: "r1", Name: "curl", Count: 2},
	}, nil)
	mgr := &runstore.MockRunManager{}
	mgr.On("GetRunStore").Return(store)

	res := callTool(t, mgr, "get_run_rankings", map[string]any{"kind": "component_releases"})
	require.False(t, res.IsError)
	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, "zlib")
	assert.NotContains(t, text, "curl")
}

func TestGetRunStoreStatusError(t *testing.T) {
	store := &runstore.MockRunStore{}
	store.On("GetStatus").Return(schema.RunStoreStatus{}, errors.New("connection lost"))
	mgr := &runstore.MockRunManager{}
	mgr.On("GetRunStore").Return(store)

	res := callTool(t, mgr, "get_run_store_status", map[string]any{})
	require.True(t, res.IsError, "The response should indicate an error state")
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "connection lost")
}

func TestUninitializedRunStore(t *testing.T) {
	mgr := &runstore.MockRunManager{}
	mgr.On("GetRunStore").Return(nil)

	res := callTool(t, mgr, "get_collection_runs", map[string]any{})
	require.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "not initialized")
}
