package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/shell"
)

func TestStatusDefaultOutput(t *testing.T) {
	setupTestEnv(t)
	seedEntries(t,
		at(6, testNow.AddDate(0, 0, -1)),
		at(8, testNow.Add(-time.Hour)),
	)

	var buf bytes.Buffer
	if err := statusRun(&buf, false, false, ""); err != nil {
		t.Fatalf("statusRun: %v", err)
	}
	if got, want := buf.String(), "✓ 2🔥 7d 7.0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStatusNothingToday(t *testing.T) {
	setupTestEnv(t)
	seedEntries(t, at(6, testNow.AddDate(0, 0, -1)))

	var buf bytes.Buffer
	if err := statusRun(&buf, false, false, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "✗ 0🔥") {
		t.Errorf("unexpected status %q", buf.String())
	}
}

func TestStatusEnv(t *testing.T) {
	setupTestEnv(t)
	seedEntries(t, at(9, testNow.Add(-time.Hour)))

	var buf bytes.Buffer
	if err := statusRun(&buf, true, false, ""); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`export MOODCTL_TODAY="✓"`,
		`export MOODCTL_STREAK="1"`,
		`export MOODCTL_LATEST="9"`,
		`export MOODCTL_FACE=":D"`,
		`export MOODCTL_AVERAGE="9.0"`,
		`export MOODCTL_BACKEND="json"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestStatusFormatTemplate(t *testing.T) {
	setupTestEnv(t)
	seedEntries(t, at(4, testNow.Add(-time.Hour)))

	var buf bytes.Buffer
	if err := statusRun(&buf, false, false, "{{.Streak}}{{.StreakIcon}} {{.LatestFace}}"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "1🔥 :(\n" {
		t.Errorf("got %q", got)
	}

	if err := statusRun(&bytes.Buffer{}, false, false, "{{.Nope"); err == nil {
		t.Error("expected error for invalid template")
	}
}

func TestStatusUsesFreshCacheUntilRefresh(t *testing.T) {
	dir := setupTestEnv(t)
	if err := shell.WriteCache(dir, shell.NewCache(shell.Status{}, "json", testNow)); err != nil {
		t.Fatal(err)
	}
	seedEntries(t, at(8, testNow.Add(-time.Minute)))

	var buf bytes.Buffer
	if err := statusRun(&buf, false, false, "{{.HasToday}}"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "false\n" {
		t.Errorf("expected cached status, got %q", buf.String())
	}

	buf.Reset()
	if err := statusRun(&buf, false, true, "{{.HasToday}}"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "true\n" {
		t.Errorf("expected refreshed status, got %q", buf.String())
	}
}
