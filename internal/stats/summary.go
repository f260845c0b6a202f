package stats

import (
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

// Summary collects the figures shown by the history view, the status
// line, the markdown report and the MCP stats tool.
type Summary struct {
	Total int

	Average    float64
	HasAverage bool
	Last7      float64
	HasLast7   bool
	Last30     float64
	HasLast30  bool

	Best        mood.Entry
	Worst       mood.Entry
	HasExtremes bool

	CurrentNotAwful int
	CurrentGood     int
	LongestNotAwful int

	Latest      mood.Entry
	HasLatest   bool
	SinceLatest string
}

// Summarize computes a Summary relative to now.
func Summarize(entries []mood.Entry, now time.Time) Summary {
	s := Summary{Total: len(entries)}
	s.Average, s.HasAverage = Average(entries)
	s.Last7, s.HasLast7 = Average(LastDays(entries, now, 7))
	s.Last30, s.HasLast30 = Average(LastDays(entries, now, 30))
	s.Best, s.Worst, s.HasExtremes = Extremes(entries)
	s.CurrentNotAwful = CurrentStreak(entries, NotAwful)
	s.CurrentGood = CurrentStreak(entries, GoodOrBetter)
	s.LongestNotAwful = LongestStreak(entries, NotAwful)
	s.Latest, s.HasLatest = Latest(entries)
	if s.HasLatest {
		s.SinceLatest = Since(s.Latest.Timestamp, now)
	}
	return s
}

// LoggedToday reports whether any entry falls on now's local date.
func LoggedToday(entries []mood.Entry, now time.Time) bool {
	today := DayOf(now)
	for _, e := range entries {
		if DayOf(e.Timestamp) == today {
			return true
		}
	}
	return false
}
