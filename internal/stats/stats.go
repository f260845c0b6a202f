// Package stats derives aggregates from the mood log. Every function is
// pure: inputs are never mutated and sorting always works on a copy.
// Aggregates over an empty log return a zero value together with a false
// ok flag instead of failing.
package stats

import (
	"slices"
	"strings"
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

// Predicate selects the scores that extend a streak.
type Predicate func(score int) bool

// NotAwful holds for every score of "bad" or better.
func NotAwful(score int) bool { return score >= 3 }

// GoodOrBetter holds for "good" and "great" scores.
func GoodOrBetter(score int) bool { return score >= 7 }

// Above returns a predicate for scores strictly greater than n.
func Above(n int) Predicate {
	return func(score int) bool { return score > n }
}

// AtLeast returns a predicate for scores greater than or equal to n.
func AtLeast(n int) Predicate {
	return func(score int) bool { return score >= n }
}

// SortChronological returns a copy ordered by timestamp. Equal timestamps
// keep their log order.
func SortChronological(entries []mood.Entry) []mood.Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b mood.Entry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}

// Average returns the mean score. ok is false for an empty log.
func Average(entries []mood.Entry) (avg float64, ok bool) {
	if len(entries) == 0 {
		return 0, false
	}
	sum := 0
	for _, e := range entries {
		sum += e.Score
	}
	return float64(sum) / float64(len(entries)), true
}

// WindowSince keeps entries at or after cutoff, in log order.
func WindowSince(entries []mood.Entry, cutoff time.Time) []mood.Entry {
	out := make([]mood.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// LastDays is WindowSince with a cutoff of n days before now.
func LastDays(entries []mood.Entry, now time.Time, n int) []mood.Entry {
	return WindowSince(entries, now.Add(-time.Duration(n)*24*time.Hour))
}

// Extremes returns the highest and lowest scored entries. On ties the
// first occurrence in log order wins.
func Extremes(entries []mood.Entry) (best, worst mood.Entry, ok bool) {
	if len(entries) == 0 {
		return mood.Entry{}, mood.Entry{}, false
	}
	best, worst = entries[0], entries[0]
	for _, e := range entries[1:] {
		if e.Score > best.Score {
			best = e
		}
		if e.Score < worst.Score {
			worst = e
		}
	}
	return best, worst, true
}

// MostRecentN returns the last n entries in chronological order.
func MostRecentN(entries []mood.Entry, n int) []mood.Entry {
	if n <= 0 {
		return []mood.Entry{}
	}
	sorted := SortChronological(entries)
	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

// Latest returns the chronologically newest entry.
func Latest(entries []mood.Entry) (mood.Entry, bool) {
	recent := MostRecentN(entries, 1)
	if len(recent) == 0 {
		return mood.Entry{}, false
	}
	return recent[0], true
}

// CurrentStreak counts how many of the newest entries in a row satisfy
// pred. Streaks are counted by position, not by calendar day.
func CurrentStreak(entries []mood.Entry, pred Predicate) int {
	sorted := SortChronological(entries)
	streak := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		if !pred(sorted[i].Score) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive entries satisfying
// pred anywhere in the log.
func LongestStreak(entries []mood.Entry, pred Predicate) int {
	longest, run := 0, 0
	for _, e := range SortChronological(entries) {
		if pred(e.Score) {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

// Filter keeps entries for which match returns true, in log order.
func Filter(entries []mood.Entry, match func(mood.Entry) bool) []mood.Entry {
	out := make([]mood.Entry, 0, len(entries))
	for _, e := range entries {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

// ContainsText matches entries whose tag or note contains query,
// case-insensitively. An empty query matches everything.
func ContainsText(query string) func(mood.Entry) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(e mood.Entry) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(e.TagValue()), q) ||
			strings.Contains(strings.ToLower(e.NoteValue()), q)
	}
}

// Newest returns a copy sorted newest first.
func Newest(entries []mood.Entry) []mood.Entry {
	sorted := SortChronological(entries)
	slices.Reverse(sorted)
	return sorted
}
