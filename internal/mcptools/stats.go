package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/storage"
)

func optionalFloat(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

// StatsHandler returns the handler function for the mood_stats MCP tool.
func StatsHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, StatsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input StatsInput) (*mcp.CallToolResult, StatsOutput, error) {
		s := stats.Summarize(store.Load(), time.Now())
		out := StatsOutput{
			Total:           s.Total,
			Average:         optionalFloat(s.Average, s.HasAverage),
			Last7Average:    optionalFloat(s.Last7, s.HasLast7),
			Last30Average:   optionalFloat(s.Last30, s.HasLast30),
			CurrentNotAwful: s.CurrentNotAwful,
			CurrentGood:     s.CurrentGood,
			LongestNotAwful: s.LongestNotAwful,
			SinceLatest:     s.SinceLatest,
		}
		if s.HasExtremes {
			best, worst := toResult(s.Best), toResult(s.Worst)
			out.Best, out.Worst = &best, &worst
		}
		return nil, out, nil
	}
}
