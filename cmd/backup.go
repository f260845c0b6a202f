package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/backup"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var (
	backupOutput string
	backupForce  bool
	restoreYes   bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a compressed snapshot of the mood log",
	Long: `Write every entry to a zstd-compressed JSON snapshot. Snapshots do not
depend on the storage backend, so a log kept in one backend can be
restored into another.`,
	Example: `  moodctl backup
  moodctl backup -o ~/backups/
  moodctl backup -o moods.json.zst --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return backupRun(cmd.OutOrStdout(), backupOutput, backupForce)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the mood log with a backup snapshot",
	Long: `Replace every entry in the current log with the entries of a snapshot
written by "moodctl backup". Asks for confirmation unless --yes is given.`,
	Example: `  moodctl restore moods-20250304-150405.json.zst
  moodctl restore backup.json.zst --yes`,
	Args:     cobra.ExactArgs(1),
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		return restoreRun(cmd.OutOrStdout(), args[0], restoreYes, confirmRestore)
	},
}

func backupRun(w io.Writer, output string, force bool) error {
	ts := now()
	if output == "" {
		output = "."
	}
	path, err := resolveOutputPath(output, backup.DefaultFileName(ts), force)
	if err != nil {
		return err
	}

	entries := store.Load()
	var buf bytes.Buffer
	if err := backup.Write(&buf, entries, appConfig.Storage, ts); err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(w, "Backed up %d entries to %s\n", len(entries), path)
	return nil
}

// confirmFunc asks the user before a destructive step.
type confirmFunc func(prompt string) (bool, error)

func confirmRestore(prompt string) (bool, error) {
	if !ui.IsTerminal(os.Stdin) {
		return false, errors.New("refusing to overwrite the log without a terminal (use --yes)")
	}
	return ui.Confirm(prompt, currentTheme())
}

func restoreRun(w io.Writer, path string, yes bool, confirm confirmFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening backup: %w", err)
	}
	defer f.Close()

	snap, err := backup.Read(f)
	if err != nil {
		return err
	}

	if !yes {
		current := len(store.Load())
		ok, err := confirm(fmt.Sprintf("Replace %d current entries with %d from %s?",
			current, len(snap.Entries), snap.CreatedAt.Local().Format("2006-01-02 15:04")))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Restore cancelled.")
			return nil
		}
	}

	if err := backup.Restore(store, snap); err != nil {
		return err
	}
	if snap.Skipped > 0 {
		logger.Warn().Int("skipped", snap.Skipped).Msg("invalid records skipped during restore")
	}
	fmt.Fprintf(w, "Restored %d entries from %s\n", len(snap.Entries), path)
	return nil
}

func init() {
	backupCmd.Flags().StringVarP(&backupOutput, "output", "o", "", "output file or directory (default current directory)")
	backupCmd.Flags().BoolVar(&backupForce, "force", false, "overwrite an existing backup file")
	restoreCmd.Flags().BoolVarP(&restoreYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
