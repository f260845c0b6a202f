package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// FilterHandler returns the handler function for the filter_moods MCP tool.
func FilterHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input FilterInput) (*mcp.CallToolResult, EntriesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FilterInput) (*mcp.CallToolResult, EntriesOutput, error) {
		var start, end *stats.Day
		if input.StartDate != "" {
			t, err := parseDate(input.StartDate)
			if err != nil {
				return nil, EntriesOutput{}, fmt.Errorf("invalid start_date %q: %w", input.StartDate, err)
			}
			d := stats.DayOf(t)
			start = &d
		}
		if input.EndDate != "" {
			t, err := parseDate(input.EndDate)
			if err != nil {
				return nil, EntriesOutput{}, fmt.Errorf("invalid end_date %q: %w", input.EndDate, err)
			}
			d := stats.DayOf(t)
			end = &d
		}

		minScore := max(input.MinScore, mood.MinScore)
		maxScore := mood.MaxScore
		if input.MaxScore > 0 {
			maxScore = input.MaxScore
		}

		matches := stats.Filter(stats.Newest(store.Load()), func(e mood.Entry) bool {
			day := stats.DayOf(e.Timestamp)
			if start != nil && day.Time().Before(start.Time()) {
				return false
			}
			if end != nil && day.Time().After(end.Time()) {
				return false
			}
			return e.Score >= minScore && e.Score <= maxScore
		})

		return nil, EntriesOutput{Entries: toResults(matches, input.Limit)}, nil
	}
}
