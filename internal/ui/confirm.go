package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is a one-line yes/no prompt. Anything other than "y"
// answers no.
type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.confirmed = true
	case "n", "N", "enter", "esc", "q", "ctrl+c":
		m.confirmed = false
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	prompt := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Render(m.prompt)
	return prompt + " " + m.theme.DangerStyle().Render("[y/N]") + " "
}

// Confirm asks a yes/no question on the terminal; the default is no.
func Confirm(prompt string, theme Theme) (bool, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt, theme: theme})
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
