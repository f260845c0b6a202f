package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// SearchHandler returns the handler function for the search_moods MCP tool.
func SearchHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, EntriesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, EntriesOutput, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = defaultLimit
		}

		matches := stats.Filter(stats.Newest(store.Load()), stats.ContainsText(input.Query))
		return nil, EntriesOutput{Entries: toResults(matches, limit)}, nil
	}
}

// RecentHandler returns the handler function for the recent_moods MCP tool.
func RecentHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input RecentInput) (*mcp.CallToolResult, EntriesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecentInput) (*mcp.CallToolResult, EntriesOutput, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = defaultLimit
		}
		recent := stats.Newest(stats.MostRecentN(store.Load(), limit))
		return nil, EntriesOutput{Entries: toResults(recent, 0)}, nil
	}
}
