package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/present"
)

// DefaultPreset is used when the configured preset is empty or unknown.
const DefaultPreset = "midnight"

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Highlight     lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Success       lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

// Fixed colors for the two middle-low categories; every palette shares them.
const (
	mehColor = lipgloss.Color("#ffaa00")
	badColor = lipgloss.Color("#ff6600")
)

// palette builds a dark preset from the nine palette slots.
func palette(bg, text, muted, high, mid, low, danger, success string) Theme {
	return Theme{
		Primary:       lipgloss.Color(text),
		Secondary:     lipgloss.Color(mid),
		Accent:        lipgloss.Color(high),
		Highlight:     lipgloss.Color(low),
		Muted:         lipgloss.Color(muted),
		Danger:        lipgloss.Color(danger),
		Success:       lipgloss.Color(success),
		Background:    lipgloss.Color(bg),
		MarkdownStyle: "dark",
	}
}

// presetOrder is the cycle order used by the TUI theme switcher.
var presetOrder = []string{
	"midnight",
	"sunrise",
	"forest",
	"neon-midnight",
	"galactic-slushie",
	"retro-arcade-crt",
	"dragonfire-core",
	"oceanic-overdrive",
	"dracula",
	"tokyo-night",
	"catppuccin-mocha",
	"gruvbox-dark",
	"nord",
	"default-dark",
	"default-light",
}

// Built-in presets.
var presets = map[string]Theme{
	"midnight":          palette("#050814", "#f5f5f7", "#8a8fa3", "#ff6bcb", "#7f5af0", "#2cb67d", "#ff4d6a", "#3dd68c"),
	"sunrise":           palette("#1b0a14", "#fff8f0", "#e0c4c0", "#ffb347", "#ff7f50", "#ffd479", "#ff5c8a", "#8bd450"),
	"forest":            palette("#0c1210", "#e9f5ec", "#9bb3a5", "#57e39a", "#3fa27e", "#9ad8a5", "#ff6f61", "#6fe3b1"),
	"neon-midnight":     palette("#0b0f10", "#ebf7ff", "#94a9b4", "#39ff14", "#00efff", "#ffea00", "#ff007c", "#39ff14"),
	"galactic-slushie":  palette("#050505", "#f5f5f5", "#a5a5b3", "#26f7fd", "#94ff2e", "#a46cff", "#ff8a1f", "#26f7fd"),
	"retro-arcade-crt":  palette("#0e0a1f", "#f0f7ff", "#9aa4c0", "#56ff7f", "#ffce28", "#ff4e4e", "#ff4e4e", "#56ff7f"),
	"dragonfire-core":   palette("#121212", "#f2f2f2", "#9ea3a3", "#ff6d00", "#ff2e00", "#f3c623", "#ff2e00", "#2a60a8"),
	"oceanic-overdrive": palette("#02070c", "#e9f8ff", "#8ba7bd", "#005bea", "#00c6b4", "#8df9d1", "#ff7250", "#00c6b4"),
	"dracula":           palette("#282a36", "#f8f8f2", "#6272a4", "#bd93f9", "#ff79c6", "#8be9fd", "#ff5555", "#50fa7b"),
	"tokyo-night":       palette("#1a1b26", "#c0caf5", "#414868", "#7aa2f7", "#bb9af7", "#7dcfff", "#f7768e", "#9ece6a"),
	"catppuccin-mocha":  palette("#1e1e2e", "#cdd6f4", "#585b70", "#f5c2e7", "#89b4fa", "#94e2d5", "#f38ba8", "#a6e3a1"),
	"gruvbox-dark":      palette("#282828", "#ebdbb2", "#928374", "#d79921", "#458588", "#b16286", "#cc241d", "#98971a"),
	"nord":              palette("#2e3440", "#d8dee9", "#4c566a", "#81a1c1", "#b48ead", "#8fbcbb", "#bf616a", "#a3be8c"),
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("33"),
		Highlight:     lipgloss.Color("14"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Success:       lipgloss.Color("10"),
		Background:    lipgloss.Color("235"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Highlight:     lipgloss.Color("30"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Success:       lipgloss.Color("28"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
}

// PresetNames returns the built-in preset names in cycle order.
func PresetNames() []string {
	return slices.Clone(presetOrder)
}

// HasPreset reports whether name is a built-in preset.
func HasPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// NextPreset returns the preset after current in cycle order, wrapping
// around. Unknown names restart the cycle.
func NextPreset(current string) string {
	i := slices.Index(presetOrder, current)
	return presetOrder[(i+1)%len(presetOrder)]
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	preset := cfg.Preset
	if !HasPreset(preset) {
		preset = DefaultPreset
	}
	theme := presets[preset]
	theme.Name = preset

	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Secondary != "" {
		theme.Secondary = lipgloss.Color(cfg.Secondary)
	}
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Highlight != "" {
		theme.Highlight = lipgloss.Color(cfg.Highlight)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Danger != "" {
		theme.Danger = lipgloss.Color(cfg.Danger)
	}
	if cfg.Success != "" {
		theme.Success = lipgloss.Color(cfg.Success)
	}
	if cfg.Background != "" {
		theme.Background = lipgloss.Color(cfg.Background)
	}
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}

	return theme
}

// MoodColor resolves a present color key to a palette color. Unknown keys
// fall back to the primary text color.
func (t Theme) MoodColor(key string) lipgloss.Color {
	switch present.Category(key) {
	case present.Great:
		return t.Success
	case present.Good:
		return t.Highlight
	case present.Meh:
		return mehColor
	case present.Bad:
		return badColor
	case present.Awful:
		return t.Danger
	default:
		return t.Primary
	}
}

// MoodStyle returns the foreground style for a score.
func (t Theme) MoodStyle(score int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.MoodColor(present.ColorKey(score))).Background(t.Background)
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Background(t.Background)
}

// HeaderStyle returns a lipgloss style for headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Background(t.Background)
}

// AccentStyle returns a lipgloss style for accented/focused elements.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background)
}

// DangerStyle returns a lipgloss style for warnings.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger).Background(t.Background)
}

// BorderStyle returns a lipgloss style with a rounded border using secondary color.
func (t Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		BorderBackground(t.Background).
		Background(t.Background).
		Foreground(t.Primary)
}

// bgEscapeCode returns the raw ANSI escape sequence to set the theme's
// background color, for use with terminal control codes like \x1b[K.
func (t Theme) bgEscapeCode() string {
	s := string(t.Background)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[48;5;" + s + "m"
}

// PaintScreen fills every line to termWidth (with optional centering) and pads
// vertically to termHeight, using the theme background color. Each line also
// gets an erase-to-end-of-line so the background reaches the terminal edge
// even when lipgloss.Width undercounts wide glyphs.
func (t Theme) PaintScreen(content string, termWidth, termHeight, contentWidth int) string {
	bgPad := lipgloss.NewStyle().Background(t.Background)
	clearEOL := t.bgEscapeCode() + "\x1b[K"

	leftPad := 0
	if contentWidth > 0 && contentWidth < termWidth {
		leftPad = (termWidth - contentWidth) / 2
	}

	leftStr := ""
	if leftPad > 0 {
		leftStr = bgPad.Render(strings.Repeat(" ", leftPad))
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		rightPad := max(termWidth-leftPad-w, 0)

		var b strings.Builder
		if leftPad > 0 {
			b.WriteString(leftStr)
		}
		b.WriteString(line)
		if rightPad > 0 {
			b.WriteString(bgPad.Render(strings.Repeat(" ", rightPad)))
		}
		b.WriteString(clearEOL)
		lines[i] = b.String()
	}

	emptyLine := bgPad.Render(strings.Repeat(" ", termWidth)) + clearEOL
	for len(lines) < termHeight {
		lines = append(lines, emptyLine)
	}

	return strings.Join(lines[:termHeight], "\n")
}

// ClearLineEnds appends a terminal-level erase-to-end-of-line (\x1b[K) to
// every line. Use it for output produced by lipgloss.Place, which may stop
// short of the terminal width.
func (t Theme) ClearLineEnds(content string) string {
	clearEOL := t.bgEscapeCode() + "\x1b[K"
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = line + clearEOL
	}
	return strings.Join(lines, "\n")
}
