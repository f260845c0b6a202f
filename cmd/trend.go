package cmd

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/ui"
)

var (
	trendLimit int
	trendBars  int
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show a sparkline of recent moods",
	Long: `Show a one-line sparkline over the newest entries, the low, high and
average of that window, and bars scaled to the window's best score.`,
	Example: `  moodctl trend
  moodctl trend --limit 14 --bars 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return trendRun(cmd.OutOrStdout(), trendLimit, trendBars)
	},
}

func trendRun(w io.Writer, limit, bars int) error {
	if limit <= 0 {
		return errors.New("--limit must be positive")
	}
	writeLines(w, ui.TrendView(store.Load(), limit, bars, appConfig.BarWidth))
	return nil
}

func init() {
	trendCmd.Flags().IntVarP(&trendLimit, "limit", "l", ui.DefaultTrendSize, "entries in the sparkline")
	trendCmd.Flags().IntVar(&trendBars, "bars", 10, "newest entries drawn as bars (0 = none)")
	rootCmd.AddCommand(trendCmd)
}
