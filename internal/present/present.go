// Package present maps scores to display hints: category, face glyph,
// neutral color key, emoji and bar lengths. It knows nothing about
// palettes or terminals; the ui package resolves keys to colors.
package present

import (
	"github.com/chris-regnier/moodctl/internal/mood"
)

// Category is one of the five mood buckets.
type Category string

const (
	Great Category = "great"
	Good  Category = "good"
	Meh   Category = "meh"
	Bad   Category = "bad"
	Awful Category = "awful"
)

// Categories lists every bucket, best first.
var Categories = []Category{Great, Good, Meh, Bad, Awful}

// CategoryFor buckets a score: >=9 great, >=7 good, >=5 meh, >=3 bad.
func CategoryFor(score int) Category {
	switch {
	case score >= 9:
		return Great
	case score >= 7:
		return Good
	case score >= 5:
		return Meh
	case score >= 3:
		return Bad
	default:
		return Awful
	}
}

// Label is the capitalized category name.
func (c Category) Label() string {
	switch c {
	case Great:
		return "Great"
	case Good:
		return "Good"
	case Meh:
		return "Meh"
	case Bad:
		return "Bad"
	default:
		return "Awful"
	}
}

// Face returns the ASCII face for the category.
func (c Category) Face() string {
	switch c {
	case Great:
		return ":D"
	case Good:
		return ":)"
	case Meh:
		return ":|"
	case Bad:
		return ":("
	default:
		return ":'("
	}
}

// Emoji is the face shown on the mood selection screen.
func (c Category) Emoji() string {
	switch c {
	case Great:
		return "😄"
	case Good:
		return "🙂"
	case Meh:
		return "😐"
	case Bad:
		return "😞"
	default:
		return "😭"
	}
}

// FixedBarLength is the bar length used by views that must look the same
// whatever else is on screen.
func (c Category) FixedBarLength() int {
	switch c {
	case Great:
		return 8
	case Good:
		return 6
	case Meh:
		return 4
	case Bad:
		return 3
	default:
		return 2
	}
}

// Face returns the ASCII face for a score.
func Face(score int) string {
	return CategoryFor(score).Face()
}

// ColorKey returns the palette-neutral key the UI resolves to a color.
func ColorKey(score int) string {
	return string(CategoryFor(score))
}

// CategoryEmoji returns the selection-screen emoji for a score.
func CategoryEmoji(score int) string {
	return CategoryFor(score).Emoji()
}

// Emoji returns the emoji used by calendars and exports. Its ladder
// (8/6/4/2) is deliberately different from the category ladder.
func Emoji(score int) string {
	switch {
	case score >= 8:
		return "😄"
	case score >= 6:
		return "🙂"
	case score >= 4:
		return "😐"
	case score >= 2:
		return "😕"
	default:
		return "😢"
	}
}

// FixedBarLength returns the category bar length for a score.
func FixedBarLength(score int) int {
	return CategoryFor(score).FixedBarLength()
}

// InvalidMaxScore is the window maximum that yields an empty bar.
const InvalidMaxScore = 100

// ScaledBarLength sizes a bar relative to the largest score in the visible
// window, so the same score can draw differently in different windows.
// Non-empty results are at least 1.
func ScaledBarLength(score, maxScore, maxWidth int) int {
	if maxScore == InvalidMaxScore || maxScore <= 0 || maxWidth <= 0 {
		return 0
	}
	return max(1, score*maxWidth/maxScore)
}

// WindowMax returns the highest score among entries, or 0 when empty.
func WindowMax(entries []mood.Entry) int {
	m := 0
	for _, e := range entries {
		m = max(m, e.Score)
	}
	return m
}

const sparkRamp = " .:-=+*#%@"

// SparkGlyph maps a score onto a ten-step density ramp.
func SparkGlyph(score int) byte {
	idx := min(max(score, mood.MinScore), mood.MaxScore) - 1
	return sparkRamp[idx]
}

// Sparkline renders one glyph per entry in the order given.
func Sparkline(entries []mood.Entry) string {
	b := make([]byte, len(entries))
	for i, e := range entries {
		b[i] = SparkGlyph(e.Score)
	}
	return string(b)
}
