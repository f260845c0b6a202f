package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/present"
	"github.com/chris-regnier/moodctl/internal/shell"
)

// statusData holds the template data for status formatting.
type statusData struct {
	TodayIcon   string
	Streak      int
	StreakIcon  string
	LatestScore int
	LatestFace  string
	Average     string
	Backend     string
	HasToday    bool
}

var (
	statusEnv     bool
	statusRefresh bool
	statusFormat  string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mood prompt status",
	Long: `Show mood status for shell prompt integration.

Outputs the today indicator, the day streak and the 7-day average.
Reads from cache when fresh, reads the log when stale.

Use --env to output shell environment variable assignments.
Use --refresh to force a cache refresh.
Use --format with a Go template for custom output.`,
	Example: `  moodctl status
  moodctl status --env
  moodctl status --refresh
  moodctl status --format "{{.TodayIcon}} {{.Streak}}{{.StreakIcon}} {{.LatestFace}}"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusRun(cmd.OutOrStdout(), statusEnv, statusRefresh, statusFormat)
	},
}

func statusRun(w io.Writer, env, refresh bool, format string) error {
	// Parse cache TTL
	ttl, err := time.ParseDuration(appConfig.Shell.CacheTTL)
	if err != nil {
		ttl = 5 * time.Minute
	}

	// Read or refresh cache
	ts := now()
	cache := shell.ReadCache(appConfig.DataDir)
	if refresh || !cache.IsFresh(ttl, ts) {
		cache = shell.NewCache(shell.ComputeStatus(store.Load(), ts), appConfig.Storage, ts)
		if err := shell.WriteCache(appConfig.DataDir, cache); err != nil {
			// Non-fatal: cache write failure shouldn't break the prompt
			logger.Warn().Err(err).Msg("could not write prompt cache")
		}
	}

	data := buildStatusData(cache)

	if env {
		return outputEnv(w, data)
	}
	if format != "" {
		return outputTemplate(w, data, format)
	}
	return outputDefault(w, data)
}

func buildStatusData(cache *shell.PromptCache) statusData {
	icon := appConfig.Shell.NoTodayIcon
	if cache.Today {
		icon = appConfig.Shell.TodayIcon
	}

	data := statusData{
		TodayIcon:   icon,
		Streak:      cache.Streak,
		StreakIcon:  appConfig.Shell.StreakIcon,
		LatestScore: cache.LatestScore,
		Backend:     cache.StorageBackend,
		HasToday:    cache.Today,
	}
	if cache.LatestScore > 0 {
		data.LatestFace = present.Face(cache.LatestScore)
	}
	if cache.HasAverage7 {
		data.Average = fmt.Sprintf("%.1f", cache.Average7)
	}
	return data
}

func outputEnv(w io.Writer, data statusData) error {
	fmt.Fprintf(w, "export MOODCTL_TODAY=%q\n", data.TodayIcon)
	fmt.Fprintf(w, "export MOODCTL_STREAK=%q\n", fmt.Sprintf("%d", data.Streak))
	fmt.Fprintf(w, "export MOODCTL_STREAK_ICON=%q\n", data.StreakIcon)
	if data.LatestFace != "" {
		fmt.Fprintf(w, "export MOODCTL_LATEST=%q\n", fmt.Sprintf("%d", data.LatestScore))
		fmt.Fprintf(w, "export MOODCTL_FACE=%q\n", data.LatestFace)
	}
	if data.Average != "" {
		fmt.Fprintf(w, "export MOODCTL_AVERAGE=%q\n", data.Average)
	}
	if data.Backend != "" {
		fmt.Fprintf(w, "export MOODCTL_BACKEND=%q\n", data.Backend)
	}
	return nil
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

func outputDefault(w io.Writer, data statusData) error {
	var parts []string

	// Today indicator + streak
	parts = append(parts, fmt.Sprintf("%s %d%s", data.TodayIcon, data.Streak, data.StreakIcon))

	if appConfig.Shell.ShowAverage && data.Average != "" {
		parts = append(parts, "7d "+data.Average)
	}

	// Optional: backend
	if appConfig.Shell.ShowBackend && data.Backend != "" {
		parts = append(parts, data.Backend)
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
	return nil
}

func init() {
	statusCmd.Flags().BoolVar(&statusEnv, "env", false, "output shell environment variable assignments")
	statusCmd.Flags().BoolVar(&statusRefresh, "refresh", false, "force cache refresh")
	statusCmd.Flags().StringVar(&statusFormat, "format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
