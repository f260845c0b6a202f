package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestRemindSendsWhenNothingToday(t *testing.T) {
	setupTestEnv(t)
	seedEntries(t, at(6, testNow.AddDate(0, 0, -1)))

	var gotTitle, gotMessage string
	send := func(title, message string) error {
		gotTitle, gotMessage = title, message
		return nil
	}

	var buf bytes.Buffer
	if err := remindRun(&buf, send); err != nil {
		t.Fatal(err)
	}
	if gotTitle != "moodctl" || gotMessage != "How are you?" {
		t.Errorf("unexpected notification %q / %q", gotTitle, gotMessage)
	}
	if buf.String() != "Reminder sent.\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRemindQuietAfterLogging(t *testing.T) {
	setupTestEnv(t)
	seedEntries(t, at(6, testNow.Add(-time.Hour)))

	send := func(string, string) error {
		t.Error("no notification expected")
		return nil
	}
	var buf bytes.Buffer
	if err := remindRun(&buf, send); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Already logged today.\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRemindSurfacesError(t *testing.T) {
	setupTestEnv(t)
	send := func(string, string) error { return errors.New("no notification daemon") }
	if err := remindRun(&bytes.Buffer{}, send); err == nil {
		t.Error("expected error")
	}
}
