package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style names how a Line should be colored. Besides the fixed roles below,
// a present color key ("great", "good", ...) selects the mood color.
type Style string

const (
	StylePlain     Style = ""
	StyleHeader    Style = "header"
	StyleMuted     Style = "muted"
	StyleAccent    Style = "accent"
	StyleHighlight Style = "highlight"
	StyleSuccess   Style = "success"
	StyleDanger    Style = "danger"
)

// Line is one renderable line: plain text plus a style hint. Views build
// lines without knowing about terminals, so the same view prints to a pipe
// or a TUI and widths are measured before any escape codes are added.
type Line struct {
	Text  string
	Style Style
	Bold  bool
	// Spans, when set, color parts of the line independently; Text then
	// holds their concatenation.
	Spans []Span
}

// Span is a run of text inside a Line with its own style.
type Span struct {
	Text  string
	Style Style
	Bold  bool
}

// Join builds a line from spans.
func Join(spans ...Span) Line {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return Line{Text: b.String(), Spans: spans}
}

// L is shorthand for a styled line.
func L(style Style, text string) Line {
	return Line{Text: text, Style: style}
}

// Blank is an empty line.
var Blank = Line{}

// lipglossStyle resolves a line style against the theme.
func (t Theme) lipglossStyle(s Style) lipgloss.Style {
	base := lipgloss.NewStyle().Background(t.Background)
	switch s {
	case StylePlain:
		return base.Foreground(t.Primary)
	case StyleHeader:
		return base.Foreground(t.Accent).Bold(true)
	case StyleMuted:
		return base.Foreground(t.Muted)
	case StyleAccent:
		return base.Foreground(t.Accent)
	case StyleHighlight:
		return base.Foreground(t.Highlight)
	case StyleSuccess:
		return base.Foreground(t.Success)
	case StyleDanger:
		return base.Foreground(t.Danger)
	default:
		return base.Foreground(t.MoodColor(string(s)))
	}
}

// RenderLines colors lines with the theme and joins them with newlines.
func (t Theme) RenderLines(lines []Line) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l.Spans) == 0 {
			out[i] = t.render(l.Style, l.Bold, l.Text)
			continue
		}
		var b strings.Builder
		for _, sp := range l.Spans {
			b.WriteString(t.render(sp.Style, sp.Bold, sp.Text))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

func (t Theme) render(s Style, bold bool, text string) string {
	st := t.lipglossStyle(s)
	if bold {
		st = st.Bold(true)
	}
	return st.Render(text)
}

// PlainText joins the line texts without any styling.
func PlainText(lines []Line) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return strings.Join(out, "\n")
}

// Boxed frames lines with a single-line border and a centered title. Lines
// are padded to the widest one; the border takes the accent style.
func Boxed(title string, lines []Line) []Line {
	width := lipgloss.Width(title) + 4
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.Text))
	}

	titled := " " + title + " "
	left := (width - lipgloss.Width(titled)) / 2
	right := width - lipgloss.Width(titled) - left
	out := make([]Line, 0, len(lines)+2)
	out = append(out, L(StyleAccent, "┌"+strings.Repeat("─", left)+titled+strings.Repeat("─", right)+"┐"))
	for _, l := range lines {
		body := l.Spans
		if len(body) == 0 {
			body = []Span{{Text: l.Text, Style: l.Style, Bold: l.Bold}}
		}
		spans := make([]Span, 0, len(body)+3)
		spans = append(spans, Span{Text: "│", Style: StyleAccent})
		spans = append(spans, body...)
		spans = append(spans,
			Span{Text: strings.Repeat(" ", width-lipgloss.Width(l.Text))},
			Span{Text: "│", Style: StyleAccent})
		out = append(out, Join(spans...))
	}
	out = append(out, L(StyleAccent, "└"+strings.Repeat("─", width)+"┘"))
	return out
}
