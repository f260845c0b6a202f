// Package export writes the mood log as CSV, JSON or a Markdown report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/present"
	"github.com/chris-regnier/moodctl/internal/stats"
)

// Format names an export encoding.
type Format string

const (
	CSV      Format = "csv"
	JSON     Format = "json"
	Markdown Format = "markdown"
)

// Formats lists the supported encodings.
var Formats = []Format{CSV, JSON, Markdown}

// ParseFormat accepts a format name or its usual file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return "", fmt.Errorf("unknown export format %q (use csv, json, or markdown)", s)
	}
}

// Extension is the file extension used for default output names.
func (f Format) Extension() string {
	if f == Markdown {
		return "md"
	}
	return string(f)
}

// DefaultFileName names an export the way the export screen does:
// mood_export_YYYYMMDD_HHMMSS.<ext>.
func DefaultFileName(f Format, now time.Time) string {
	return fmt.Sprintf("mood_export_%s.%s", now.Format("20060102_150405"), f.Extension())
}

// Write encodes entries in the requested format. now stamps the Markdown
// report header.
func Write(w io.Writer, f Format, entries []mood.Entry, now time.Time) error {
	switch f {
	case CSV:
		return WriteCSV(w, entries)
	case JSON:
		return WriteJSON(w, entries)
	case Markdown:
		return WriteMarkdown(w, entries, now)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WriteCSV writes one row per entry in log order. Absent tags and notes
// become empty cells.
func WriteCSV(w io.Writer, entries []mood.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "score", "tag", "note"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			mood.FormatTimestamp(e.Timestamp),
			fmt.Sprintf("%d", e.Score),
			e.TagValue(),
			e.NoteValue(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonEntry struct {
	Timestamp string  `json:"timestamp"`
	Score     int     `json:"score"`
	Tag       *string `json:"tag"`
	Note      *string `json:"note"`
}

// WriteJSON writes the entries in the same shape as the log file, keeping
// non-ASCII text unescaped.
func WriteJSON(w io.Writer, entries []mood.Entry) error {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		out[i] = jsonEntry{
			Timestamp: mood.FormatTimestamp(e.Timestamp),
			Score:     e.Score,
			Tag:       e.Tag,
			Note:      e.Note,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding json export: %w", err)
	}
	return nil
}

// WriteMarkdown writes a report with summary statistics and a monthly
// breakdown, newest month first. Each entry gets one block per score point.
func WriteMarkdown(w io.Writer, entries []mood.Entry, now time.Time) error {
	var b strings.Builder
	b.WriteString("# Mood Tracker Export\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", now.Format("2006-01-02 15:04"))

	if len(entries) == 0 {
		b.WriteString("No mood entries found.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	avg, _ := stats.Average(entries)
	best, worst, _ := stats.Extremes(entries)

	b.WriteString("## Summary Statistics\n\n")
	fmt.Fprintf(&b, "- **Total entries:** %d\n", len(entries))
	fmt.Fprintf(&b, "- **Average mood:** %.1f/10\n", avg)
	fmt.Fprintf(&b, "- **Highest mood:** %d/10 on %s\n", best.Score, stats.DayOf(best.Timestamp))
	fmt.Fprintf(&b, "- **Lowest mood:** %d/10 on %s\n\n", worst.Score, stats.DayOf(worst.Timestamp))

	b.WriteString("## Monthly Breakdown\n\n")
	groups := stats.GroupByMonth(entries)
	for _, m := range stats.MonthsDesc(groups) {
		monthEntries := groups[m]
		monthAvg, _ := stats.Average(monthEntries)

		fmt.Fprintf(&b, "### %s\n\n", m)
		fmt.Fprintf(&b, "**Average mood:** %.1f/10 (%d entries)\n\n", monthAvg, len(monthEntries))

		for _, e := range monthEntries {
			ts := e.Timestamp.Local()
			fmt.Fprintf(&b, "- **%s** at %s %s `%s` (%d/10)",
				ts.Format("2006-01-02"),
				ts.Format("15:04"),
				present.Emoji(e.Score),
				strings.Repeat("█", max(e.Score, 0)),
				e.Score,
			)
			if e.HasNote() {
				for _, line := range strings.Split(e.NoteValue(), "\n") {
					fmt.Fprintf(&b, "\n  > %s", line)
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
