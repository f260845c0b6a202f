package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	defaultMarkdownWidth = 80
	defaultMarkdownStyle = "dark"
)

// reportRenderer caches one glamour renderer; building one parses the
// whole style sheet, so it is rebuilt only when width or style change.
type reportRenderer struct {
	r     *glamour.TermRenderer
	width int
	style string
}

var markdownCache reportRenderer

func (c *reportRenderer) get(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = defaultMarkdownWidth
	}
	if style == "" {
		style = defaultMarkdownStyle
	}
	if c.r != nil && c.width == width && c.style == style {
		return c.r, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	c.r, c.width, c.style = r, width, style
	return r, nil
}

// RenderMarkdownWithStyle renders markdown with the named glamour style
// ("dark", "light", "notty", ...). The input is returned unchanged when
// rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	r, err := markdownCache.get(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// RenderMarkdown renders with the dark style.
func RenderMarkdown(content string, width int) string {
	return RenderMarkdownWithStyle(content, width, defaultMarkdownStyle)
}
