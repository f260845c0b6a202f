package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris-regnier/moodctl/internal/mood"
)

var base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

// minutely builds entries one minute apart starting at base.
func minutely(scores ...int) []mood.Entry {
	entries := make([]mood.Entry, len(scores))
	for i, s := range scores {
		entries[i] = mood.Entry{Timestamp: base.Add(time.Duration(i) * time.Minute), Score: s}
	}
	return entries
}

func TestEmptyLogAggregates(t *testing.T) {
	_, ok := Average(nil)
	assert.False(t, ok)

	_, _, ok = Extremes(nil)
	assert.False(t, ok)

	assert.Equal(t, 0, CurrentStreak(nil, NotAwful))
	assert.Equal(t, 0, LongestStreak(nil, NotAwful))
	assert.Empty(t, MostRecentN(nil, 5))
	assert.NotNil(t, MostRecentN(nil, 5))

	_, ok = Latest(nil)
	assert.False(t, ok)
}

func TestStreaks(t *testing.T) {
	entries := minutely(1, 3, 7, 8, 2, 9, 9)

	assert.Equal(t, 2, CurrentStreak(entries, Above(3)))
	assert.Equal(t, 2, LongestStreak(entries, Above(3)))
	assert.Equal(t, 6, LongestStreak(entries, AtLeast(2)))
	assert.Equal(t, 2, CurrentStreak(entries, GoodOrBetter))
}

func TestCurrentStreakZeroWhenLatestFails(t *testing.T) {
	entries := minutely(9, 9, 9, 1)
	assert.Equal(t, 0, CurrentStreak(entries, NotAwful))
	assert.Equal(t, 3, LongestStreak(entries, NotAwful))
}

func TestStreaksSortBeforeCounting(t *testing.T) {
	entries := minutely(1, 3, 7, 8, 2, 9, 9)
	// Shuffle the log order; streaks must follow timestamps.
	shuffled := []mood.Entry{entries[6], entries[0], entries[4], entries[2], entries[5], entries[1], entries[3]}

	assert.Equal(t, 2, CurrentStreak(shuffled, Above(3)))
	assert.Equal(t, 2, LongestStreak(shuffled, Above(3)))
}

func TestEndToEndScenario(t *testing.T) {
	entries := minutely(9, 7, 5, 3, 9)

	avg, ok := Average(entries)
	require.True(t, ok)
	assert.InDelta(t, 6.6, avg, 1e-9)

	best, worst, ok := Extremes(entries)
	require.True(t, ok)
	assert.True(t, best.Timestamp.Equal(entries[0].Timestamp), "first maximum wins")
	assert.Equal(t, 9, best.Score)
	assert.True(t, worst.Timestamp.Equal(entries[3].Timestamp))
	assert.Equal(t, 3, worst.Score)

	recent := MostRecentN(entries, 3)
	require.Len(t, recent, 3)
	assert.Equal(t, []int{5, 3, 9}, scores(recent))
}

func TestMostRecentNSortsAndClamps(t *testing.T) {
	entries := minutely(1, 2, 3)
	reversed := []mood.Entry{entries[2], entries[1], entries[0]}

	assert.Equal(t, []int{2, 3}, scores(MostRecentN(reversed, 2)))
	assert.Equal(t, []int{1, 2, 3}, scores(MostRecentN(reversed, 10)))
	assert.Empty(t, MostRecentN(reversed, 0))
	assert.Empty(t, MostRecentN(reversed, -1))

	// input untouched
	assert.Equal(t, []int{3, 2, 1}, scores(reversed))
}

func TestSortChronologicalIsStable(t *testing.T) {
	a := mood.Entry{Timestamp: base, Score: 4, Tag: mood.StringPtr("first")}
	b := mood.Entry{Timestamp: base, Score: 6, Tag: mood.StringPtr("second")}
	earlier := mood.Entry{Timestamp: base.Add(-time.Hour), Score: 1}

	sorted := SortChronological([]mood.Entry{a, b, earlier})
	require.Len(t, sorted, 3)
	assert.Equal(t, 1, sorted[0].Score)
	assert.Equal(t, "first", sorted[1].TagValue())
	assert.Equal(t, "second", sorted[2].TagValue())
}

func TestWindowSince(t *testing.T) {
	now := base.Add(30 * 24 * time.Hour)
	entries := []mood.Entry{
		{Timestamp: now.Add(-8 * 24 * time.Hour), Score: 2},
		{Timestamp: now.Add(-7 * 24 * time.Hour), Score: 4},
		{Timestamp: now.Add(-time.Hour), Score: 8},
	}

	week := LastDays(entries, now, 7)
	assert.Equal(t, []int{4, 8}, scores(week), "cutoff is inclusive")

	avg, ok := Average(week)
	require.True(t, ok)
	assert.InDelta(t, 6.0, avg, 1e-9)

	assert.Empty(t, WindowSince(entries, now.Add(time.Minute)))
}

func TestExtremesTieBreakFirstOccurrence(t *testing.T) {
	entries := minutely(3, 8, 3, 8)
	best, worst, ok := Extremes(entries)
	require.True(t, ok)
	assert.True(t, best.Timestamp.Equal(entries[1].Timestamp))
	assert.True(t, worst.Timestamp.Equal(entries[0].Timestamp))
}

func TestFilterContainsText(t *testing.T) {
	entries := []mood.Entry{
		{Timestamp: base, Score: 5, Tag: mood.StringPtr("Work")},
		{Timestamp: base, Score: 6, Note: mood.StringPtr("long walk at the park")},
		{Timestamp: base, Score: 7},
	}
	assert.Equal(t, []int{5}, scores(Filter(entries, ContainsText("work"))))
	assert.Equal(t, []int{6}, scores(Filter(entries, ContainsText("PARK"))))
	assert.Len(t, Filter(entries, ContainsText("  ")), 3)
}

func TestSummarize(t *testing.T) {
	now := base.Add(10 * time.Minute)
	s := Summarize(minutely(9, 7, 5, 3, 9), now)

	assert.Equal(t, 5, s.Total)
	assert.True(t, s.HasAverage)
	assert.InDelta(t, 6.6, s.Average, 1e-9)
	assert.True(t, s.HasLast7)
	assert.Equal(t, 1, s.CurrentGood)
	assert.Equal(t, 5, s.CurrentNotAwful)
	assert.Equal(t, 5, s.LongestNotAwful)
	assert.True(t, s.HasLatest)
	assert.Equal(t, "6m", s.SinceLatest)

	empty := Summarize(nil, now)
	assert.False(t, empty.HasAverage)
	assert.False(t, empty.HasExtremes)
	assert.False(t, empty.HasLatest)
	assert.Equal(t, "", empty.SinceLatest)
}

func TestLoggedToday(t *testing.T) {
	entries := minutely(5)
	assert.True(t, LoggedToday(entries, base.Add(2*time.Hour)))
	assert.False(t, LoggedToday(entries, base.Add(48*time.Hour)))
}

func scores(entries []mood.Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}
