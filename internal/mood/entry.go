// Package mood defines the mood entry data model and the creation path
// that enforces the 1-10 score range.
package mood

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MinScore = 1
	MaxScore = 10
)

// ErrScoreRange is returned when a score falls outside [MinScore, MaxScore].
var ErrScoreRange = errors.New("mood score out of range")

// TimestampLayout is the layout entries are persisted with.
const TimestampLayout = time.RFC3339Nano

// naiveLayouts are accepted on read for logs written without a UTC offset.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Entry is one mood observation. Tag and Note are nil when absent, which
// keeps "no note" distinct from an empty note through a save/load cycle.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Score     int       `json:"score"`
	Tag       *string   `json:"tag"`
	Note      *string   `json:"note"`
}

// ValidateScore checks whether a score is within the accepted range.
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrScoreRange, score, MinScore, MaxScore)
	}
	return nil
}

// New validates the score and builds an entry stamped with now.
func New(score int, tag, note string, now time.Time) (Entry, error) {
	if err := ValidateScore(score); err != nil {
		return Entry{}, err
	}
	return Entry{
		Timestamp: now,
		Score:     score,
		Tag:       optional(tag),
		Note:      optional(note),
	}, nil
}

// TagValue returns the tag or "" when absent.
func (e Entry) TagValue() string {
	if e.Tag == nil {
		return ""
	}
	return *e.Tag
}

// NoteValue returns the note or "" when absent.
func (e Entry) NoteValue() string {
	if e.Note == nil {
		return ""
	}
	return *e.Note
}

// HasNote reports whether the entry carries a non-empty note.
func (e Entry) HasNote() bool {
	return e.Note != nil && *e.Note != ""
}

// Equal compares all four fields, treating timestamps as instants.
func (e Entry) Equal(o Entry) bool {
	return e.Timestamp.Equal(o.Timestamp) &&
		e.Score == o.Score &&
		equalOptional(e.Tag, o.Tag) &&
		equalOptional(e.Note, o.Note)
}

// FormatTimestamp renders t in the persisted layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp accepts RFC 3339 timestamps and the naive ISO-8601 forms
// (no offset), which are interpreted in local time. A bare date is local
// midnight.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// Preview returns a single-line version of the note cut to at most maxLen
// runes, ellipsis included.
func (e Entry) Preview(maxLen int) string {
	content := []rune(strings.ReplaceAll(e.NoteValue(), "\n", " "))
	if len(content) <= maxLen {
		return string(content)
	}
	if maxLen <= 3 {
		return strings.Repeat(".", max(maxLen, 0))
	}
	return string(content[:maxLen-3]) + "..."
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringPtr returns a pointer to s, or nil for nil-able callers that want
// to keep an empty string as present.
func StringPtr(s string) *string {
	return &s
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
