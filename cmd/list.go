package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var (
	listLimit  int
	listSince  string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List mood entries",
	Long:  "List mood entries, newest first.",
	Example: `  moodctl list
  moodctl list --limit 5
  moodctl list --since 7d
  moodctl list --since 2025-03-01 --search work
  moodctl list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(cmd.OutOrStdout(), listLimit, listSince, listSearch)
	},
}

// parseSince accepts a day count ("7d"), a Go duration ("12h") or a local
// date ("2025-03-01").
func parseSince(s string, ref time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err == nil && n >= 0 {
			return ref.Add(-time.Duration(n) * 24 * time.Hour), nil
		}
	}
	if d, err := time.ParseDuration(s); err == nil && d >= 0 {
		return ref.Add(-d), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --since %q (use 7d, 12h or YYYY-MM-DD)", s)
}

func selectEntries(entries []mood.Entry, limit int, since, search string) ([]mood.Entry, error) {
	if since != "" {
		cutoff, err := parseSince(since, now())
		if err != nil {
			return nil, err
		}
		entries = stats.WindowSince(entries, cutoff)
	}
	entries = stats.Filter(stats.Newest(entries), stats.ContainsText(search))
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func listRun(w io.Writer, limit int, since, search string) error {
	entries, err := selectEntries(store.Load(), limit, since, search)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToEntryJSON(entries))
	}

	return pageLines(w, ui.EntryLines(entries))
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 0, "show at most N entries (0 = all)")
	listCmd.Flags().StringVar(&listSince, "since", "", "only entries since 7d, 12h or YYYY-MM-DD")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "match text in tags and notes")
	rootCmd.AddCommand(listCmd)
}
