package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/editor"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/preferences"
	"github.com/chris-regnier/moodctl/internal/present"
	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// tuiScreen represents the current screen state.
type tuiScreen int

const (
	screenSelect tuiScreen = iota
	screenNote
	screenHistory
	screenCalendar
)

const maxNoteInputLength = 500

// TUIConfig holds configuration needed by the TUI.
type TUIConfig struct {
	Editor      string             // resolved editor command
	MaxWidth    int                // maximum viewport width (0 = no limit)
	Theme       Theme              // resolved theme
	ThemeConfig config.ThemeConfig // overrides re-applied when the preset changes
	DataDir     string             // where preferences are saved ("" = not saved)
	HistorySize int                // entries in the history panel
	BarWidth    int                // widest scaled bar
	Companion   *Companion         // nil uses a default companion
	Now         func() time.Time   // nil uses time.Now
	Logger      zerolog.Logger
}

type entriesLoadedMsg struct {
	entries []mood.Entry
}

type savedMsg struct {
	entry mood.Entry
	err   error
}

type noteEditedMsg struct {
	note string
	err  error
}

// tuiModel is the Bubble Tea model for the interactive mood logger.
type tuiModel struct {
	store   storage.Storage
	cfg     TUIConfig
	theme   Theme
	prefs   preferences.Preferences
	screen  tuiScreen
	entries []mood.Entry
	// Select screen
	selected int
	// Note screen
	pending   *mood.Pending
	noteInput textinput.Model
	// Detail screens
	viewport viewport.Model
	month    stats.Month
	// Feedback after a save
	companion []Line
	status    string
	// Help overlay
	helpActive bool
	// Common
	width  int
	height int
	ready  bool
	err    error
}

func newTUIModel(store storage.Storage, cfg TUIConfig, prefs preferences.Preferences) tuiModel {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Companion == nil {
		cfg.Companion = NewCompanion(nil)
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = 5
	}
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = 30
	}
	selected := prefs.LastSelectedMoodIndex
	if selected < 0 || selected >= len(mood.Options) {
		selected = mood.DefaultOptionIndex
	}
	return tuiModel{
		store:    store,
		cfg:      cfg,
		theme:    cfg.Theme,
		prefs:    prefs,
		screen:   screenSelect,
		selected: selected,
		month:    stats.MonthOf(cfg.Now()),
	}
}

func (m tuiModel) Init() tea.Cmd {
	return m.loadEntriesCmd
}

func (m tuiModel) loadEntriesCmd() tea.Msg {
	return entriesLoadedMsg{entries: m.store.Load()}
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.entries = msg.entries
		m.refreshViewport()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.companion = m.cfg.Companion.Say(msg.entry.Score)
		m.status = fmt.Sprintf("Saved %s %s at %s",
			present.CategoryEmoji(msg.entry.Score), present.CategoryFor(msg.entry.Score).Label(),
			msg.entry.Timestamp.Local().Format("15:04"))
		return m, m.loadEntriesCmd

	case noteEditedMsg:
		if msg.err != nil {
			m.status = "Editor failed: " + msg.err.Error()
			m.noteInput.Focus()
			return m, textinput.Blink
		}
		return m.commitNote(msg.note)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), m.viewportHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = m.viewportHeight()
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.helpActive {
			switch msg.String() {
			case "?", "esc", "q":
				m.helpActive = false
			}
			return m, nil
		}
		switch m.screen {
		case screenSelect:
			return m.updateSelect(msg)
		case screenNote:
			return m.updateNote(msg)
		case screenHistory:
			return m.updateHistory(msg)
		case screenCalendar:
			return m.updateCalendar(msg)
		}
	}

	if m.screen == screenNote {
		var cmd tea.Cmd
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m tuiModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.selected = (m.selected - 1 + len(mood.Options)) % len(mood.Options)
		m.rememberSelection()
	case "down", "j":
		m.selected = (m.selected + 1) % len(mood.Options)
		m.rememberSelection()
	case "enter":
		return m.startNote()
	case "h":
		m.screen = screenHistory
		m.refreshViewport()
		m.viewport.GotoTop()
	case "c":
		m.screen = screenCalendar
		m.month = stats.MonthOf(m.cfg.Now())
	case "t":
		m.cycleTheme()
	case "v":
		m.prefs.ShowHistoryPanel = !m.prefs.ShowHistoryPanel
		m.savePrefs()
	case "?":
		m.helpActive = true
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// startNote stages the selected mood. The timestamp is fixed here, so the
// time spent typing a note does not move the entry.
func (m tuiModel) startNote() (tea.Model, tea.Cmd) {
	opt := mood.Options[m.selected]
	p, err := mood.Stage(opt.Score, "", m.cfg.Now())
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.pending = p
	m.status = ""

	ti := textinput.New()
	ti.Placeholder = "add a note (enter to save, esc to skip)"
	ti.CharLimit = maxNoteInputLength
	ti.Width = max(m.contentWidth()-4, 10)
	ti.Focus()
	m.noteInput = ti
	m.screen = screenNote
	return m, textinput.Blink
}

func (m tuiModel) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.commitNote(m.noteInput.Value())
	case "esc":
		return m.commitNote("")
	case "ctrl+e":
		return m.editNote()
	}
	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m tuiModel) editNote() (tea.Model, tea.Cmd) {
	opt := mood.Options[m.selected]
	session, err := editor.Prepare(editor.ResolveEditor(m.cfg.Editor),
		m.noteInput.Value()+editor.NoteTemplate(opt.Score, opt.Label))
	if err != nil {
		m.status = "Editor failed: " + err.Error()
		return m, nil
	}
	return m, tea.ExecProcess(session.Cmd, func(err error) tea.Msg {
		if err != nil {
			session.Cleanup()
			return noteEditedMsg{err: err}
		}
		note, err := session.Note()
		return noteEditedMsg{note: note, err: err}
	})
}

// commitNote finalizes the pending entry and saves it in one step.
func (m tuiModel) commitNote(note string) (tea.Model, tea.Cmd) {
	if m.pending == nil {
		m.screen = screenSelect
		return m, nil
	}
	e, err := m.pending.Commit(note)
	m.pending = nil
	m.noteInput.Blur()
	m.screen = screenSelect
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	store := m.store
	return m, func() tea.Msg {
		return savedMsg{entry: e, err: storage.Append(store, e)}
	}
}

func (m tuiModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "h":
		m.screen = screenSelect
		return m, nil
	case "?":
		m.helpActive = true
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m tuiModel) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "c":
		m.screen = screenSelect
	case "left", "h", "p":
		m.month = m.month.Prev()
	case "right", "l", "n":
		m.month = m.month.Next()
	case "?":
		m.helpActive = true
	}
	return m, nil
}

func (m *tuiModel) cycleTheme() {
	tc := m.cfg.ThemeConfig
	tc.Preset = NextPreset(m.theme.Name)
	m.theme = ResolveTheme(tc)
	m.prefs.CurrentTheme = m.theme.Name
	m.savePrefs()
}

func (m *tuiModel) rememberSelection() {
	m.prefs.LastSelectedMoodIndex = m.selected
	m.savePrefs()
}

// savePrefs persists preferences. Failures are logged, not fatal: losing a
// theme choice must never lose a mood entry.
func (m *tuiModel) savePrefs() {
	if m.cfg.DataDir == "" {
		return
	}
	if err := preferences.Save(m.cfg.DataDir, m.prefs); err != nil {
		m.cfg.Logger.Warn().Err(err).Msg("saving preferences")
	}
}

func (m *tuiModel) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.theme.RenderLines(DetailedHistory(m.entries, m.cfg.Now())))
}

func (m tuiModel) viewportHeight() int {
	return max(m.height-2, 1)
}

// contentWidth returns the effective content width, respecting MaxWidth.
func (m tuiModel) contentWidth() int {
	if m.cfg.MaxWidth > 0 && m.width > m.cfg.MaxWidth {
		return m.cfg.MaxWidth
	}
	return m.width
}

// selectLines builds the main screen: the question, the options and,
// when enabled, the recent history panel.
func (m tuiModel) selectLines() []Line {
	now := m.cfg.Now()
	top := []Line{
		L(StylePlain, "Date: "+now.Format("2006-01-02")),
		Blank,
		{Text: "How are you feeling today?", Style: StyleHeader, Bold: true},
		Blank,
		L(StyleMuted, "  [↑/↓ to select, Enter to confirm]"),
		L(StyleHighlight, fmt.Sprintf("  Theme: %s (press t to change)", m.theme.Name)),
		Blank,
	}
	top = append(top, OptionLines(m.selected)...)
	if m.screen == screenNote {
		top = append(top, Blank, L(StyleAccent, "  Note (enter save • esc skip • ctrl+e editor):"))
	}

	lines := Boxed("MOOD TRACKER", top)
	if m.prefs.ShowHistoryPanel {
		lines = append(lines, Boxed("Mood History", HistoryPanel(m.entries, m.cfg.HistorySize, m.cfg.BarWidth))...)
	}
	if len(m.companion) > 0 {
		lines = append(lines, Blank)
		lines = append(lines, m.companion...)
	}
	if m.status != "" {
		lines = append(lines, Blank, L(StyleMuted, m.status))
	}
	return lines
}

func (m tuiModel) View() string {
	if !m.ready {
		// No PaintScreen here: dimensions are unknown until the first WindowSizeMsg.
		return "Loading..."
	}

	if m.helpActive {
		return m.theme.ClearLineEnds(m.helpOverlay())
	}

	cw := m.contentWidth()
	var result string

	switch m.screen {
	case screenSelect, screenNote:
		result = m.theme.RenderLines(m.selectLines())
		if m.screen == screenNote {
			result += "\n  " + m.noteInput.View()
		}
		result += "\n" + m.theme.HelpStyle().Width(cw).Render("↑/↓ select • enter log • h history • c calendar • t theme • ? help • q quit")
	case screenHistory:
		footer := m.theme.HelpStyle().Width(cw).Render("↑/↓ scroll • esc back • q back")
		result = m.viewport.View() + "\n" + footer
	case screenCalendar:
		cal := m.theme.RenderLines(CalendarView(m.entries, m.month, m.cfg.Now()))
		footer := m.theme.HelpStyle().Render("←/→ or h/l to change months • esc or q to go back")
		result = cal + "\n\n" + footer
	}

	return m.theme.PaintScreen(result, m.width, m.height, cw)
}

func (m tuiModel) helpOverlay() string {
	help := m.theme.BorderStyle().
		Padding(1, 2).
		Width(48).
		Render(strings.TrimSpace(`
Logging
  ↑/↓ k/j    choose a mood
  enter      log it, then add a note
  esc        skip the note
  ctrl+e     write the note in $EDITOR

Views
  h          detailed history
  c          calendar (←/→ months)
  v          toggle history panel
  t          next theme

  q          quit     ? close help`))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, help,
		lipgloss.WithWhitespaceBackground(m.theme.Background))
}

// RunTUI launches the interactive mood logger.
func RunTUI(store storage.Storage, cfg TUIConfig, prefs preferences.Preferences) error {
	m := newTUIModel(store, cfg, prefs)
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return err
	}
	if tm, ok := result.(tuiModel); ok && tm.err != nil {
		return tm.err
	}
	return nil
}
