package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show a month of moods as a calendar",
	Long: `Show one month as a Monday-first grid. Each logged day shows the emoji
and score of its last entry. Defaults to the current month.`,
	Example: `  moodctl calendar
  moodctl calendar 2025-02`,
	Aliases: []string{"cal"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		month := ""
		if len(args) == 1 {
			month = args[0]
		}
		return calendarRun(cmd.OutOrStdout(), month)
	},
}

func calendarRun(w io.Writer, month string) error {
	today := now()
	m := stats.MonthOf(today)
	if month != "" {
		t, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q (use YYYY-MM)", month)
		}
		m = stats.MonthOf(t)
	}
	writeLines(w, ui.CalendarView(store.Load(), m, today))
	return nil
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
