package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/export"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var (
	exportFormat string
	exportOutput string
	exportForce  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the mood log as CSV, JSON or Markdown",
	Long: `Export every entry as CSV, JSON, or a Markdown report with statistics,
a monthly breakdown and the full entry list.

Without --output the export is written to stdout. A Markdown report shown
in a terminal is rendered and paged. If --output names a directory, a
timestamped file name is used inside it.`,
	Example: `  moodctl export --format csv -o moods.csv
  moodctl export --format json > moods.json
  moodctl export --format markdown
  moodctl export --format md -o ~/reports/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportRun(cmd.OutOrStdout(), exportFormat, exportOutput, exportForce)
	},
}

// resolveOutputPath places defaultName inside path when path is a directory
// and refuses to replace an existing file unless force is set.
func resolveOutputPath(path, defaultName string, force bool) (string, error) {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return resolveOutputPath(filepath.Join(path, defaultName), defaultName, force)
		}
		if !force {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	return path, nil
}

func exportRun(w io.Writer, formatName, output string, force bool) error {
	f, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, f, store.Load(), now()); err != nil {
		return err
	}

	if output == "" {
		if f == export.Markdown && ui.IsTerminal(w) {
			theme := currentTheme()
			rendered := ui.RenderMarkdownWithStyle(buf.String(), appConfig.MaxWidth, theme.MarkdownStyle)
			return ui.OutputOrPage(w, rendered+"\n", false, theme)
		}
		_, err := w.Write(buf.Bytes())
		return err
	}

	path, err := resolveOutputPath(output, export.DefaultFileName(f, now()), force)
	if err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return err
	}
	logger.Debug().Str("path", path).Str("format", string(f)).Msg("export written")
	fmt.Fprintf(w, "Exported to %s\n", path)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "export format (csv|json|markdown)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file or directory (default stdout)")
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "overwrite an existing output file")
	rootCmd.AddCommand(exportCmd)
}
