package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/moodctl/internal/config"
)

func TestPlainTextIgnoresStyles(t *testing.T) {
	lines := []Line{
		L(StyleHeader, "Title"),
		Blank,
		Join(Span{Text: "a", Style: StyleDanger}, Span{Text: "b", Style: "great"}),
	}
	if got := PlainText(lines); got != "Title\n\nab" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestRenderLinesKeepsText(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "forest"})
	lines := []Line{
		{Text: "bold header", Style: StyleHeader, Bold: true},
		Join(Span{Text: "left "}, Span{Text: "right", Style: "awful"}),
	}
	got := stripANSI(theme.RenderLines(lines))
	if got != "bold header\nleft right" {
		t.Errorf("RenderLines stripped = %q", got)
	}
}

func TestBoxedAlignsBorders(t *testing.T) {
	boxed := Boxed("MOOD", []Line{
		L(StylePlain, "short"),
		L(StylePlain, "a much longer line"),
		Join(Span{Text: "😄9", Style: "great"}),
	})
	if len(boxed) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(boxed))
	}
	width := lipgloss.Width(boxed[0].Text)
	for i, l := range boxed {
		if w := lipgloss.Width(l.Text); w != width {
			t.Errorf("line %d: width %d, want %d (%q)", i, w, width, l.Text)
		}
	}
	if !strings.Contains(boxed[0].Text, " MOOD ") {
		t.Errorf("expected title in top border, got %q", boxed[0].Text)
	}
	if !strings.HasPrefix(boxed[1].Text, "│short") || !strings.HasSuffix(boxed[1].Text, "│") {
		t.Errorf("unexpected boxed line %q", boxed[1].Text)
	}
}
