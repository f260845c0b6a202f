package cmd

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes mood tools
over stdio transport. This allows MCP clients like Claude Desktop to read
and add to your mood log.

Available tools:
  - log_mood: Log a mood with an optional tag and note
  - recent_moods: List the newest entries
  - search_moods: Search tags and notes
  - filter_moods: Filter by date range and score range
  - mood_stats: Averages, best and worst entries, streaks

Example usage in Claude Desktop config:
  {
    "mcpServers": {
      "moodctl": {
        "command": "/path/to/moodctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if store == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(store, appConfig.DataDir, logger)

	// The logger writes to stderr; stdout is reserved for MCP protocol.
	logger.Info().
		Str("backend", appConfig.Storage).
		Str("data_dir", appConfig.DataDir).
		Msg("starting moodctl MCP server (stdio transport)")

	// This blocks until the transport is closed
	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
