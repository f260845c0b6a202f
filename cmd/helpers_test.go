package cmd

import (
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/jsonfile"
)

// testNow is the fixed clock used by command tests: a Wednesday morning.
var testNow = time.Date(2025, 3, 12, 9, 30, 0, 0, time.Local)

func setupTestStore(t *testing.T, dir string) storage.Storage {
	t.Helper()
	s, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// setupTestEnv points the command globals at a fresh store and returns
// its data directory.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	store = setupTestStore(t, dir)
	appConfig = &config.Config{
		Storage:     "json",
		DataDir:     dir,
		MaxWidth:    80,
		LogLevel:    "warn",
		HistorySize: 5,
		BarWidth:    30,
		Shell: config.ShellConfig{
			CacheTTL:    "5m",
			TodayIcon:   "✓",
			NoTodayIcon: "✗",
			StreakIcon:  "🔥",
			ShowAverage: true,
		},
		Reminder: config.ReminderConfig{Title: "moodctl", Message: "How are you?"},
	}
	jsonOutput = false

	prev := now
	now = func() time.Time { return testNow }
	t.Cleanup(func() { now = prev })
	return dir
}

// seedEntries saves entries directly, bypassing the commands.
func seedEntries(t *testing.T, entries ...mood.Entry) {
	t.Helper()
	if err := store.Save(entries); err != nil {
		t.Fatalf("seeding entries: %v", err)
	}
}

func at(score int, ts time.Time) mood.Entry {
	return mood.Entry{Timestamp: ts, Score: score}
}
