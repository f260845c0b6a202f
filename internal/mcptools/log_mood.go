package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/shell"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// LogMoodHandler returns the handler function for the log_mood MCP tool.
func LogMoodHandler(store storage.Storage, dataDir string, logger zerolog.Logger) func(ctx context.Context, req *mcp.CallToolRequest, input LogMoodInput) (*mcp.CallToolResult, LogMoodOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LogMoodInput) (*mcp.CallToolResult, LogMoodOutput, error) {
		score, err := mood.ParseScore(input.Mood)
		if err != nil {
			return nil, LogMoodOutput{}, err
		}

		e, err := mood.New(score, input.Tag, input.Note, time.Now())
		if err != nil {
			return nil, LogMoodOutput{}, err
		}
		if err := storage.Append(store, e); err != nil {
			return nil, LogMoodOutput{}, err
		}
		logger.Info().Int("score", e.Score).Msg("mood logged over MCP")

		// Invalidate shell prompt cache (best-effort)
		if dataDir != "" {
			_ = shell.InvalidateCache(dataDir)
		}

		return nil, LogMoodOutput{Entry: toResult(e)}, nil
	}
}
