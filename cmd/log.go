package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/editor"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/present"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var (
	logTag  string
	logNote string
	logEdit bool
)

var logCmd = &cobra.Command{
	Use:   "log <score|great|good|meh|bad|awful>",
	Short: "Log a mood",
	Long: `Log a mood on the 1-10 scale, or by name.

Names map to fixed scores: great 9, good 7, meh 5, bad 3, awful 1.
Use --edit to write the note in your editor.`,
	Example: `  moodctl log 8
  moodctl log good --tag work
  moodctl log meh --note "long day"
  moodctl log 3 --edit`,
	Args:     cobra.ExactArgs(1),
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		return logRun(cmd.OutOrStdout(), args[0], logTag, logNote, logEdit)
	},
}

func logRun(w io.Writer, input, tag, note string, edit bool) error {
	if edit && note != "" {
		return errors.New("--note and --edit cannot be used together")
	}

	score, err := mood.ParseScore(input)
	if err != nil {
		return err
	}

	// The timestamp is fixed before the editor opens.
	pending, err := mood.Stage(score, tag, now())
	if err != nil {
		return err
	}

	if edit {
		label := present.CategoryFor(score).Label()
		note, err = editor.EditNote(editor.ResolveEditor(appConfig.Editor), editor.NoteTemplate(score, label))
		if err != nil {
			return fmt.Errorf("editor: %w", err)
		}
	}

	e, err := pending.Commit(note)
	if err != nil {
		return err
	}
	if err := storage.Append(store, e); err != nil {
		return err
	}
	logger.Debug().Int("score", e.Score).Msg("mood logged")

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToEntryJSON([]mood.Entry{e})[0])
	}
	ui.FormatEntryLogged(w, e)
	return nil
}

func init() {
	logCmd.Flags().StringVarP(&logTag, "tag", "t", "", "short tag for the entry")
	logCmd.Flags().StringVarP(&logNote, "note", "n", "", "note to attach")
	logCmd.Flags().BoolVarP(&logEdit, "edit", "e", false, "write the note in your editor")
	rootCmd.AddCommand(logCmd)
}
