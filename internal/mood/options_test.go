package mood

import (
	"errors"
	"testing"
	"time"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{" 10 ", 10, false},
		{"Great", 9, false},
		{"awful", 1, false},
		{"0", 0, true},
		{"11", 0, true},
		{"fine", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseScore(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseScore(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScore(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestOptionsDefaultIsMeh(t *testing.T) {
	if Options[DefaultOptionIndex].Name != "meh" {
		t.Errorf("default option = %q, want meh", Options[DefaultOptionIndex].Name)
	}
}

func TestStageCommit(t *testing.T) {
	stagedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	p, err := Stage(9, "work", stagedAt)
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}

	e, err := p.Commit("  shipped the release  ")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !e.Timestamp.Equal(stagedAt) {
		t.Errorf("timestamp = %v, want staging time %v", e.Timestamp, stagedAt)
	}
	if e.NoteValue() != "shipped the release" || e.TagValue() != "work" {
		t.Errorf("got tag %q note %q", e.TagValue(), e.NoteValue())
	}

	if _, err := p.Commit("again"); err == nil {
		t.Error("expected second Commit to fail")
	}
}

func TestStageRejectsOutOfRange(t *testing.T) {
	if _, err := Stage(0, "", time.Now()); !errors.Is(err, ErrScoreRange) {
		t.Errorf("Stage(0) err = %v, want ErrScoreRange", err)
	}
}

func TestCommitWithoutNote(t *testing.T) {
	p, _ := Stage(5, "", time.Now())
	e, err := p.Commit("")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if e.Note != nil {
		t.Errorf("expected absent note, got %q", *e.Note)
	}
}
