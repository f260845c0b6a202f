package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveEditorConfig(t *testing.T) {
	result := ResolveEditor("nano")
	if result != "nano" {
		t.Errorf("expected nano, got %q", result)
	}
}

func TestResolveEditorEnvEditor(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	t.Setenv("VISUAL", "code")
	result := ResolveEditor("")
	if result != "vim" {
		t.Errorf("expected vim (from EDITOR), got %q", result)
	}
}

func TestResolveEditorEnvVisual(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "code")
	result := ResolveEditor("")
	if result != "code" {
		t.Errorf("expected code (from VISUAL), got %q", result)
	}
}

func TestResolveEditorFallback(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	result := ResolveEditor("")
	if result != "vi" {
		t.Errorf("expected vi (fallback), got %q", result)
	}
}

func TestEditNoteUntouchedTemplateIsEmpty(t *testing.T) {
	// 'true' exits without touching the file, leaving only comments.
	note, err := EditNote("true", NoteTemplate(7, "Good"))
	if err != nil {
		t.Fatalf("EditNote: %v", err)
	}
	if note != "" {
		t.Errorf("note = %q, want empty", note)
	}
}

// fakeEditor writes a shell script that replaces the edited file with body.
func fakeEditor(t *testing.T, body string) string {
	t.Helper()
	script := filepath.Join(t.TempDir(), "edit.sh")
	content := "#!/bin/sh\nprintf '" + body + "' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
	return script
}

func TestEditNoteWrittenByScript(t *testing.T) {
	note, err := EditNote(fakeEditor(t, `long walk\n# ignored\nfelt calmer\n`), NoteTemplate(9, "Great"))
	if err != nil {
		t.Fatalf("EditNote: %v", err)
	}
	if note != "long walk\nfelt calmer" {
		t.Errorf("note = %q", note)
	}
}

func TestEditNoteEditorFailure(t *testing.T) {
	if _, err := EditNote("false", "x"); err == nil {
		t.Error("expected error from failing editor")
	}
	if _, err := EditNote("   ", "x"); err == nil {
		t.Error("expected error for empty editor command")
	}
}

func TestStripComments(t *testing.T) {
	got := StripComments("  \n  # header\nline one  \n\n  #x\nline two\n")
	if got != "line one\n\nline two" {
		t.Errorf("StripComments = %q", got)
	}
	if !strings.Contains(NoteTemplate(5, "Meh"), "Meh (5/10)") {
		t.Error("template should mention the mood")
	}
}

func TestPrepareSessionRoundTrip(t *testing.T) {
	s, err := Prepare(fakeEditor(t, `slept badly\n`), NoteTemplate(3, "Bad"))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if err := s.Cmd.Run(); err != nil {
		t.Fatalf("running editor: %v", err)
	}
	note, err := s.Note()
	if err != nil {
		t.Fatalf("Note: %v", err)
	}
	if note != "slept badly" {
		t.Errorf("note = %q", note)
	}
	if _, err := os.Stat(s.path); !os.IsNotExist(err) {
		t.Error("expected temp file to be removed")
	}
}
