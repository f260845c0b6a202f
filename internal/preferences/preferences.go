// Package preferences persists the small amount of UI state that survives
// between sessions: the chosen theme, the last highlighted mood option and
// whether the history panel is shown.
package preferences

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// FileName is the preferences file inside the data directory.
const FileName = "preferences.json"

// DefaultTheme is the preset used until the user picks another.
const DefaultTheme = "midnight"

// Preferences is the persisted UI state.
type Preferences struct {
	CurrentTheme          string `json:"current_theme"`
	LastSelectedMoodIndex int    `json:"last_selected_mood_index"`
	ShowHistoryPanel      bool   `json:"show_history_panel"`
}

// Defaults returns the preferences used when none are saved.
func Defaults() Preferences {
	return Preferences{
		CurrentTheme:          DefaultTheme,
		LastSelectedMoodIndex: mood.DefaultOptionIndex,
		ShowHistoryPanel:      true,
	}
}

// Path returns the preferences file path for a data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Exists reports whether preferences have been saved in dataDir.
func Exists(dataDir string) bool {
	_, err := os.Stat(Path(dataDir))
	return err == nil
}

// Load reads preferences from dataDir. A missing or unreadable file yields
// the defaults, and keys absent from the file keep their default values.
func Load(dataDir string) Preferences {
	p := Defaults()
	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Defaults()
	}
	if p.CurrentTheme == "" {
		p.CurrentTheme = DefaultTheme
	}
	if p.LastSelectedMoodIndex < 0 || p.LastSelectedMoodIndex >= len(mood.Options) {
		p.LastSelectedMoodIndex = mood.DefaultOptionIndex
	}
	return p
}

// Save writes preferences atomically to dataDir.
func Save(dataDir string, p Preferences) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding preferences: %v", storage.ErrStorage, err)
	}
	return storage.WriteFileAtomic(Path(dataDir), append(data, '\n'))
}
