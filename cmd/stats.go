package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics, streaks and recent entries",
	Long: `Show the detailed history: overall and windowed averages, best and
worst entries, streaks and the last 30 entries.`,
	Example: `  moodctl stats
  moodctl stats --json`,
	Aliases: []string{"history"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statsRun(cmd.OutOrStdout())
	},
}

func statsRun(w io.Writer) error {
	entries := store.Load()
	if jsonOutput {
		return ui.FormatJSON(w, ui.ToSummaryJSON(stats.Summarize(entries, now())))
	}
	return pageLines(w, ui.DetailedHistory(entries, now()))
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
