package ui

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/present"
	"github.com/chris-regnier/moodctl/internal/stats"
)

// FormatEntryLogged formats a save confirmation message.
func FormatEntryLogged(w io.Writer, e mood.Entry) {
	fmt.Fprintf(w, "Logged %s %s (%d/10) at %s\n",
		present.CategoryEmoji(e.Score), present.CategoryFor(e.Score).Label(), e.Score,
		e.Timestamp.Local().Format("2006-01-02 15:04"))
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteLines writes view lines followed by a newline, colored with the
// theme when color is true.
func WriteLines(w io.Writer, theme Theme, lines []Line, color bool) {
	if color {
		fmt.Fprintln(w, theme.RenderLines(lines))
		return
	}
	fmt.Fprintln(w, PlainText(lines))
}

// EntryJSON is the JSON representation of an entry in list output.
type EntryJSON struct {
	Timestamp time.Time `json:"timestamp"`
	Score     int       `json:"score"`
	Category  string    `json:"category"`
	Tag       *string   `json:"tag"`
	Note      *string   `json:"note"`
}

// ToEntryJSON converts entries for JSON list output.
func ToEntryJSON(entries []mood.Entry) []EntryJSON {
	out := make([]EntryJSON, len(entries))
	for i, e := range entries {
		out[i] = EntryJSON{
			Timestamp: e.Timestamp,
			Score:     e.Score,
			Category:  string(present.CategoryFor(e.Score)),
			Tag:       e.Tag,
			Note:      e.Note,
		}
	}
	return out
}

// SummaryJSON is the JSON representation of stats.Summary. Absent
// aggregates are null.
type SummaryJSON struct {
	Total           int        `json:"total"`
	Average         *float64   `json:"average"`
	Last7Average    *float64   `json:"last_7_days_average"`
	Last30Average   *float64   `json:"last_30_days_average"`
	Best            *EntryJSON `json:"best"`
	Worst           *EntryJSON `json:"worst"`
	CurrentNotAwful int        `json:"current_not_awful_streak"`
	CurrentGood     int        `json:"current_good_streak"`
	LongestNotAwful int        `json:"longest_not_awful_streak"`
	SinceLatest     *string    `json:"since_latest"`
}

func optionalFloat(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

// ToSummaryJSON converts a summary for JSON output.
func ToSummaryJSON(s stats.Summary) SummaryJSON {
	out := SummaryJSON{
		Total:           s.Total,
		Average:         optionalFloat(s.Average, s.HasAverage),
		Last7Average:    optionalFloat(s.Last7, s.HasLast7),
		Last30Average:   optionalFloat(s.Last30, s.HasLast30),
		CurrentNotAwful: s.CurrentNotAwful,
		CurrentGood:     s.CurrentGood,
		LongestNotAwful: s.LongestNotAwful,
	}
	if s.HasExtremes {
		pair := ToEntryJSON([]mood.Entry{s.Best, s.Worst})
		out.Best, out.Worst = &pair[0], &pair[1]
	}
	if s.HasLatest {
		since := s.SinceLatest
		out.SinceLatest = &since
	}
	return out
}
