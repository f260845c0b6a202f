package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/chris-regnier/moodctl/internal/storage"
)

// NewMoodMCPServer creates an in-memory MCP server exposing mood tools.
// Returns the server and a client transport for connecting to it.
func NewMoodMCPServer(store storage.Storage) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, "", zerolog.Nop())

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered mood tools.
// dataDir is used for cache invalidation after write operations; pass "" to skip.
func CreateMCPServer(store storage.Storage, dataDir string, logger zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "moodctl",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_moods",
		Description: "List the most recent mood entries, newest first",
	}, RecentHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_moods",
		Description: "Search mood entries by tag or note text",
	}, SearchHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter_moods",
		Description: "Filter mood entries by date range and score range",
	}, FilterHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mood_stats",
		Description: "Summary statistics: averages, best and worst entries, streaks",
	}, StatsHandler(store))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_mood",
		Description: "Log a mood with an optional tag and note",
	}, LogMoodHandler(store, dataDir, logger))

	return server
}
