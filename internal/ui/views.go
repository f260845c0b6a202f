package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/present"
	"github.com/chris-regnier/moodctl/internal/stats"
)

const (
	// DetailedHistorySize is how many entries the history view lists.
	DetailedHistorySize = 30
	// DefaultTrendSize is how many entries the sparkline covers.
	DefaultTrendSize = 60

	moodAxis  = "lower ←──────────── mood ────────────→ higher"
	bar       = "█"
	noteGlyph = "✏️"
)

func moodStyle(score int) Style {
	return Style(present.ColorKey(score))
}

// OptionLines renders the mood choices with the selected one marked.
func OptionLines(selected int) []Line {
	lines := make([]Line, 0, len(mood.Options))
	for i, o := range mood.Options {
		marker := "( )"
		style := StylePlain
		if i == selected {
			marker = "(x)"
			style = StyleAccent
		}
		lines = append(lines, Line{
			Text:  fmt.Sprintf("  %s %s  %s", marker, present.CategoryEmoji(o.Score), o.Label),
			Style: style,
			Bold:  i == selected,
		})
	}
	return lines
}

// HistoryPanel renders the newest size entries, oldest first, with bars
// scaled to the largest score in that window.
func HistoryPanel(entries []mood.Entry, size, barWidth int) []Line {
	if len(entries) == 0 {
		return []Line{
			Blank,
			L(StyleMuted, "No mood history yet. Log something to get started."),
			Blank,
			L(StyleHighlight, moodAxis),
		}
	}

	window := stats.MostRecentN(entries, size)
	maxScore := present.WindowMax(window)
	lines := make([]Line, 0, len(window)+2)
	for _, e := range window {
		n := present.ScaledBarLength(e.Score, maxScore, barWidth)
		lines = append(lines, L(moodStyle(e.Score), fmt.Sprintf("%s: %-4s %s",
			e.Timestamp.Local().Format("01-02"), present.Face(e.Score), strings.Repeat(bar, n))))
	}
	lines = append(lines, Blank, L(StyleHighlight, moodAxis))
	return lines
}

// Dashboard is the non-interactive home screen: today's date, the latest
// entry and the recent history panel.
func Dashboard(entries []mood.Entry, now time.Time, size, barWidth int) []Line {
	lines := []Line{
		L(StylePlain, "Date: "+now.Format("2006-01-02")),
		Blank,
	}
	if latest, ok := stats.Latest(entries); ok {
		lines = append(lines, L(moodStyle(latest.Score), fmt.Sprintf("Last logged %s ago: %s %s (%d/10)",
			stats.Since(latest.Timestamp, now), present.CategoryEmoji(latest.Score),
			present.CategoryFor(latest.Score).Label(), latest.Score)))
	} else {
		lines = append(lines, L(StyleMuted, "Nothing logged yet. Run \"moodctl log <mood>\"."))
	}
	lines = append(lines, Blank, L(StyleHeader, "Mood History"))
	return append(lines, HistoryPanel(entries, size, barWidth)...)
}

// SummaryLines renders the statistics block of the history view.
func SummaryLines(s stats.Summary) []Line {
	if s.Total == 0 {
		return []Line{L(StyleMuted, "No mood entries yet. Start tracking to see your history here!")}
	}
	lines := []Line{
		L(StylePlain, fmt.Sprintf("Total entries logged: %d 💾", s.Total)),
		L(StylePlain, fmt.Sprintf("Overall average mood: %.1f/10", s.Average)),
	}
	if s.HasLast7 {
		lines = append(lines, L(StyleHighlight, fmt.Sprintf("Last 7 days average: %.1f/10", s.Last7)))
	}
	if s.HasLast30 {
		lines = append(lines, L(StyleHighlight, fmt.Sprintf("Last 30 days average: %.1f/10", s.Last30)))
	}
	if s.HasExtremes {
		lines = append(lines,
			L(StyleSuccess, fmt.Sprintf("Best day: %s (%d/10) %s",
				s.Best.Timestamp.Local().Format("2006-01-02"), s.Best.Score, present.Face(s.Best.Score))),
			L(StyleDanger, fmt.Sprintf("Toughest day: %s (%d/10) %s",
				s.Worst.Timestamp.Local().Format("2006-01-02"), s.Worst.Score, present.Face(s.Worst.Score))),
		)
	}
	if s.HasLatest {
		lines = append(lines, L(StyleMuted, "Last entry: "+s.SinceLatest+" ago"))
	}
	return lines
}

// StreakLines renders the current and longest streaks.
func StreakLines(s stats.Summary) []Line {
	var lines []Line
	if n := s.CurrentNotAwful; n > 0 {
		if n >= 3 {
			lines = append(lines, L(StyleSuccess, fmt.Sprintf("🔥 %d-day 'not awful' streak! Keep it up!", n)))
		} else {
			lines = append(lines, L(StyleHighlight, fmt.Sprintf("%d-day 'not awful' streak", n)))
		}
	}
	if n := s.CurrentGood; n > 0 {
		if n >= 3 {
			lines = append(lines, L(StyleSuccess, fmt.Sprintf("✨ %d-day 'good or better' streak! You're thriving!", n)))
		} else {
			lines = append(lines, L(StyleHighlight, fmt.Sprintf("%d-day 'good or better' streak", n)))
		}
	}
	if s.LongestNotAwful > s.CurrentNotAwful {
		lines = append(lines, L(StyleMuted, fmt.Sprintf("Longest streak ever: %d days", s.LongestNotAwful)))
	}
	if len(lines) == 0 {
		return []Line{L(StyleMuted, "Start building your streaks!")}
	}
	return lines
}

// TimelineLines lists entries newest first with fixed-length bars, so a
// score looks the same wherever it appears.
func TimelineLines(entries []mood.Entry, limit int) []Line {
	recent := stats.Newest(stats.MostRecentN(entries, limit))
	lines := make([]Line, 0, len(recent))
	for _, e := range recent {
		indicator := ""
		if e.HasNote() {
			indicator = " " + noteGlyph
		}
		tag := ""
		if t := e.TagValue(); t != "" {
			tag = " #" + t
		}
		lines = append(lines, L(moodStyle(e.Score), fmt.Sprintf("%s: %-4s [%2d/10] %-8s%s%s",
			e.Timestamp.Local().Format("2006-01-02 15:04"), present.Face(e.Score), e.Score,
			strings.Repeat(bar, present.FixedBarLength(e.Score)), tag, indicator)))
		if e.HasNote() {
			for _, nl := range strings.Split(e.NoteValue(), "\n") {
				lines = append(lines, L(StyleMuted, "  ↳ "+nl))
			}
		}
	}
	return lines
}

// DetailedHistory is the full history screen: statistics, streaks and the
// newest entries.
func DetailedHistory(entries []mood.Entry, now time.Time) []Line {
	s := stats.Summarize(entries, now)
	lines := []Line{L(StyleHeader, "Detailed Mood History: your emotional stock chart 📈📉"), Blank}
	if s.Total == 0 {
		return append(lines, SummaryLines(s)...)
	}
	lines = append(lines, L(StyleHeader, "📊 Statistics"))
	lines = append(lines, SummaryLines(s)...)
	lines = append(lines, Blank, L(StyleHeader, "🔥 Streaks"))
	lines = append(lines, StreakLines(s)...)
	lines = append(lines, Blank, L(StyleHeader, fmt.Sprintf("📝 Recent Entries (last %d)", DetailedHistorySize)))
	return append(lines, TimelineLines(entries, DetailedHistorySize)...)
}

const calendarCellWidth = 4

var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// center pads s on both sides to width, measuring display cells.
func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// CalendarView renders one month as a Monday-first grid. A logged day
// shows the emoji and score of its last entry; today is bold.
func CalendarView(entries []mood.Entry, m stats.Month, today time.Time) []Line {
	cal := stats.MonthCalendar(entries, m)
	todayDay := stats.DayOf(today)

	headers := make([]string, len(weekdayNames))
	for i, n := range weekdayNames {
		headers[i] = center(n, calendarCellWidth)
	}
	headerRow := strings.Join(headers, "  ")
	width := lipgloss.Width(headerRow)
	sep := strings.Repeat("─", width)

	lines := []Line{
		{Text: center(m.String(), width), Style: StyleHeader, Bold: true},
		Blank,
		L(StyleMuted, headerRow),
		L(StyleMuted, sep),
	}

	for _, week := range cal.Weeks {
		spans := make([]Span, 0, 13)
		for i, cell := range week {
			if i > 0 {
				spans = append(spans, Span{Text: "  "})
			}
			spans = append(spans, calendarCell(m, cell, todayDay))
		}
		lines = append(lines, Join(spans...))
	}

	lines = append(lines, Blank, L(StyleMuted, sep))
	if avg, ok := cal.Average(); ok {
		lines = append(lines, L(StyleHighlight, center(
			fmt.Sprintf("Entries: %d  •  Days: %d  •  Average: %.1f/10", len(cal.Entries), cal.DaysLogged(), avg), width)))
	} else {
		lines = append(lines, L(StyleMuted, center("No entries this month", width)))
	}
	return lines
}

func calendarCell(m stats.Month, cell stats.Cell, today stats.Day) Span {
	if cell.Day == 0 {
		return Span{Text: strings.Repeat(" ", calendarCellWidth)}
	}
	isToday := stats.Day{Year: m.Year, Month: m.Month, Day: cell.Day} == today
	if e, ok := cell.Representative(); ok {
		return Span{
			Text:  center(fmt.Sprintf("%s%d", present.Emoji(e.Score), e.Score), calendarCellWidth),
			Style: moodStyle(e.Score),
			Bold:  isToday,
		}
	}
	style := StylePlain
	if isToday {
		style = StyleAccent
	}
	return Span{Text: center(fmt.Sprintf("%2d", cell.Day), calendarCellWidth), Style: style, Bold: isToday}
}

// TrendView draws a sparkline over the newest limit entries followed by
// scaled bars for the newest bars entries.
func TrendView(entries []mood.Entry, limit, bars, barWidth int) []Line {
	window := stats.MostRecentN(entries, limit)
	if len(window) == 0 {
		return []Line{L(StyleMuted, "No mood entries yet.")}
	}

	best, worst, _ := stats.Extremes(window)
	avg, _ := stats.Average(window)
	lines := []Line{
		L(StyleHeader, fmt.Sprintf("Trend (last %d entries)", len(window))),
		Blank,
		L(StyleAccent, "  "+present.Sparkline(window)),
		Blank,
		L(StyleMuted, fmt.Sprintf("  low %d  •  high %d  •  average %.1f/10", worst.Score, best.Score, avg)),
	}
	if bars > 0 {
		lines = append(lines, Blank)
		lines = append(lines, HistoryPanel(window, bars, barWidth)...)
	}
	return lines
}

// EntryLines renders entries one per line in the order given, as used by
// "moodctl list".
func EntryLines(entries []mood.Entry) []Line {
	if len(entries) == 0 {
		return []Line{L(StyleMuted, "No mood entries found.")}
	}
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		text := fmt.Sprintf("%s  %2d/10  %s %-5s",
			e.Timestamp.Local().Format("2006-01-02 15:04"), e.Score,
			present.CategoryEmoji(e.Score), present.CategoryFor(e.Score).Label())
		if t := e.TagValue(); t != "" {
			text += "  #" + t
		}
		if e.HasNote() {
			text += "  " + e.Preview(60)
		}
		lines = append(lines, L(moodStyle(e.Score), strings.TrimRight(text, " ")))
	}
	return lines
}
