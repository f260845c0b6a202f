package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/editor"
	"github.com/chris-regnier/moodctl/internal/logging"
	"github.com/chris-regnier/moodctl/internal/preferences"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/jsonfile"
	"github.com/chris-regnier/moodctl/internal/storage/markdown"
	"github.com/chris-regnier/moodctl/internal/storage/sqlite"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	verbose        bool
	appConfig      *config.Config
	store          storage.Storage
	logger         = zerolog.Nop()

	// now is swapped in tests.
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "moodctl",
	Short: "A terminal mood journal",
	Long: `moodctl records how you feel on a 1-10 scale, with an optional tag and note,
and shows history, streaks, calendars and trends over your log.

Run without arguments in a terminal to open the interactive logger.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		level := appConfig.LogLevel
		if verbose {
			level = "debug"
		}
		logger = logging.New(os.Stderr, level)

		// Override storage backend from flag
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		store, err = openStore(appConfig.Storage, appConfig.DataDir)
		if err != nil {
			return err
		}
		logger.Debug().Str("backend", appConfig.Storage).Str("path", store.Path()).Msg("storage ready")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to the dashboard
			return dashboardRun(cmd.OutOrStdout())
		}
		prefs := preferences.Load(appConfig.DataDir)
		return ui.RunTUI(store, ui.TUIConfig{
			Editor:      editor.ResolveEditor(appConfig.Editor),
			MaxWidth:    appConfig.MaxWidth,
			Theme:       startupTheme(appConfig, prefs),
			ThemeConfig: appConfig.Theme,
			DataDir:     appConfig.DataDir,
			HistorySize: appConfig.HistorySize,
			BarWidth:    appConfig.BarWidth,
			Logger:      logger,
		}, prefs)
	},
}

// openStore initializes the named storage backend in dataDir.
func openStore(backend, dataDir string) (storage.Storage, error) {
	opt := storage.WithLogger(logger)
	switch backend {
	case "json":
		s, err := jsonfile.New(dataDir, opt)
		if err != nil {
			return nil, fmt.Errorf("initializing json storage: %w", err)
		}
		return s, nil
	case "markdown":
		s, err := markdown.New(dataDir, opt)
		if err != nil {
			return nil, fmt.Errorf("initializing markdown storage: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.New(dataDir, opt)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// startupTheme prefers the preset saved by the TUI over the configured one,
// but only once a preferences file exists.
func startupTheme(cfg *config.Config, prefs preferences.Preferences) ui.Theme {
	tc := cfg.Theme
	if preferences.Exists(cfg.DataDir) && ui.HasPreset(prefs.CurrentTheme) {
		tc.Preset = prefs.CurrentTheme
	}
	return ui.ResolveTheme(tc)
}

// currentTheme is the configured theme for plain command output.
func currentTheme() ui.Theme {
	if appConfig == nil {
		return ui.ResolveTheme(config.ThemeConfig{})
	}
	return ui.ResolveTheme(appConfig.Theme)
}

// writeLines prints view lines, colored only when w is a terminal.
func writeLines(w io.Writer, lines []ui.Line) {
	ui.WriteLines(w, currentTheme(), lines, ui.IsTerminal(w))
}

// pageLines renders view lines for w and pages them on a terminal.
func pageLines(w io.Writer, lines []ui.Line) error {
	var buf bytes.Buffer
	theme := currentTheme()
	ui.WriteLines(&buf, theme, lines, ui.IsTerminal(w))
	return ui.OutputOrPage(w, buf.String(), false, theme)
}

func dashboardRun(w io.Writer) error {
	lines := ui.Dashboard(store.Load(), now(), appConfig.HistorySize, appConfig.BarWidth)
	writeLines(w, lines)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (json|markdown|sqlite)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
