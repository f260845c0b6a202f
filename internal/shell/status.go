package shell

import (
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/stats"
)

// Status is what the prompt shows about the mood log.
type Status struct {
	LoggedToday bool
	// DayStreak counts consecutive calendar days with at least one entry,
	// ending today. It is 0 when nothing is logged today.
	DayStreak   int
	LatestScore int
	Average7    float64
	HasAverage7 bool
}

// ComputeStatus derives the prompt status from the log.
func ComputeStatus(entries []mood.Entry, now time.Time) Status {
	byDay := stats.GroupByDay(entries)

	var s Status
	check := now
	for len(byDay[stats.DayOf(check)]) > 0 {
		s.DayStreak++
		check = check.AddDate(0, 0, -1)
	}
	s.LoggedToday = s.DayStreak > 0

	if latest, ok := stats.Latest(entries); ok {
		s.LatestScore = latest.Score
	}
	s.Average7, s.HasAverage7 = stats.Average(stats.LastDays(entries, now, 7))
	return s
}
