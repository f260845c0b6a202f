package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/notify"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send a desktop reminder if no mood was logged today",
	Long: `Send a desktop notification when nothing has been logged today.
Does nothing otherwise, so it is safe to run from cron or a login hook.

The title and message come from the [reminder] config section.`,
	Example: `  # every evening at 20:00
  0 20 * * * moodctl remind`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return remindRun(cmd.OutOrStdout(), notify.Desktop)
	},
}

func remindRun(w io.Writer, send notify.Sender) error {
	sent, err := notify.Remind(send, store.Load(), now(), appConfig.Reminder.Title, appConfig.Reminder.Message)
	if err != nil {
		return err
	}
	if sent {
		fmt.Fprintln(w, "Reminder sent.")
	} else {
		fmt.Fprintln(w, "Already logged today.")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(remindCmd)
}
