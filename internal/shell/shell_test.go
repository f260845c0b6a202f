package shell

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

var now = time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)

func at(daysAgo, hour, score int) mood.Entry {
	d := now.AddDate(0, 0, -daysAgo)
	return mood.Entry{Timestamp: time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.Local), Score: score}
}

func TestComputeStatusDayStreak(t *testing.T) {
	entries := []mood.Entry{at(5, 9, 2), at(2, 9, 5), at(1, 9, 7), at(1, 20, 3), at(0, 8, 9)}
	s := ComputeStatus(entries, now)

	if !s.LoggedToday {
		t.Error("expected today to be logged")
	}
	if s.DayStreak != 3 {
		t.Errorf("expected 3-day streak, got %d", s.DayStreak)
	}
	if s.LatestScore != 9 {
		t.Errorf("expected latest score 9, got %d", s.LatestScore)
	}
	if !s.HasAverage7 || s.Average7 != 5.2 {
		t.Errorf("expected 7-day average 5.2, got %v (%v)", s.Average7, s.HasAverage7)
	}
}

func TestComputeStatusNothingToday(t *testing.T) {
	s := ComputeStatus([]mood.Entry{at(1, 9, 7)}, now)
	if s.LoggedToday || s.DayStreak != 0 {
		t.Errorf("expected no streak without today, got %+v", s)
	}

	empty := ComputeStatus(nil, now)
	if empty.HasAverage7 || empty.LatestScore != 0 {
		t.Errorf("expected zero status, got %+v", empty)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if c := ReadCache(dir); c != nil {
		t.Fatal("expected nil cache before write")
	}

	c := NewCache(Status{LoggedToday: true, DayStreak: 4, LatestScore: 7}, "json", now)
	if err := WriteCache(dir, c); err != nil {
		t.Fatalf("WriteCache: %v", err)
	}
	got := ReadCache(dir)
	if got == nil || !got.Today || got.Streak != 4 || got.StorageBackend != "json" || got.TodayDate != "2025-03-10" {
		t.Fatalf("unexpected cache %+v", got)
	}

	if err := InvalidateCache(dir); err != nil {
		t.Fatalf("InvalidateCache: %v", err)
	}
	if ReadCache(dir) != nil {
		t.Error("expected cache removed")
	}
	if err := InvalidateCache(dir); err != nil {
		t.Errorf("invalidating a missing cache should succeed, got %v", err)
	}
}

func TestReadCacheCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(CachePath(dir), []byte("{"), 0600); err != nil {
		t.Fatal(err)
	}
	if ReadCache(dir) != nil {
		t.Error("expected nil for corrupt cache")
	}
}

func TestCacheFreshness(t *testing.T) {
	c := NewCache(Status{}, "json", now)
	if !c.IsFresh(5*time.Minute, now.Add(time.Minute)) {
		t.Error("expected fresh within TTL")
	}
	if c.IsFresh(5*time.Minute, now.Add(6*time.Minute)) {
		t.Error("expected stale after TTL")
	}
	if c.IsFresh(48*time.Hour, now.Add(7*time.Hour)) {
		t.Error("expected stale after midnight")
	}
	var missing *PromptCache
	if missing.IsFresh(time.Hour, now) {
		t.Error("nil cache is never fresh")
	}
}

func TestInitScripts(t *testing.T) {
	for _, name := range Shells {
		var buf bytes.Buffer
		if err := WriteInit(&buf, name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		out := buf.String()
		if !strings.Contains(out, "moodctl status --env") {
			t.Errorf("%s: expected status hook", name)
		}
		if !strings.Contains(out, "moodctl_prompt_info()") {
			t.Errorf("%s: expected prompt helper", name)
		}
		if !strings.Contains(out, "moodctl completion "+name) {
			t.Errorf("%s: expected completion line", name)
		}
	}

	var bash, zsh bytes.Buffer
	_ = WriteInit(&bash, "bash")
	_ = WriteInit(&zsh, "zsh")
	if !strings.Contains(bash.String(), "PROMPT_COMMAND") || strings.Contains(bash.String(), "add-zsh-hook") {
		t.Error("bash: expected only the PROMPT_COMMAND hook")
	}
	if !strings.Contains(zsh.String(), "add-zsh-hook precmd") || strings.Contains(zsh.String(), "PROMPT_COMMAND") {
		t.Error("zsh: expected only the precmd hook")
	}
}

func TestInitUnsupportedShell(t *testing.T) {
	var buf bytes.Buffer
	err := WriteInit(&buf, "fish")
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("expected ErrUnsupportedShell, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("expected nothing written for an unsupported shell")
	}
}
