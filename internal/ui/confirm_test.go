package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris-regnier/moodctl/internal/config"
)

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
	}
	for _, tt := range tests {
		m := confirmModel{prompt: "Replace?", theme: ResolveTheme(config.ThemeConfig{})}
		next, cmd := m.Update(tt.key)
		got := next.(confirmModel)
		if !got.done || got.confirmed != tt.want {
			t.Errorf("%q: done=%v confirmed=%v, want confirmed=%v", tt.key.String(), got.done, got.confirmed, tt.want)
		}
		if cmd == nil {
			t.Errorf("%q: expected quit", tt.key.String())
		}
		if got.View() != "" {
			t.Errorf("%q: expected empty view once answered", tt.key.String())
		}
	}
}

func TestConfirmIgnoresOtherKeys(t *testing.T) {
	m := confirmModel{prompt: "Replace 3 entries?", theme: ResolveTheme(config.ThemeConfig{})}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil || next.(confirmModel).done {
		t.Error("expected unrelated keys to be ignored")
	}
	view := stripANSI(next.View())
	if !strings.Contains(view, "Replace 3 entries?") || !strings.Contains(view, "[y/N]") {
		t.Errorf("unexpected prompt %q", view)
	}
}
