package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// commentPrefix marks help lines in the note buffer that are dropped on save.
const commentPrefix = "#"

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// NoteTemplate is the buffer shown when writing a note for a mood.
func NoteTemplate(score int, label string) string {
	return fmt.Sprintf("\n# Logging %s (%d/10).\n# Write an optional note above. Lines starting with '#' are ignored.\n# Leave the buffer empty to save the mood without a note.\n", label, score)
}

// Session is a note buffer prepared for an editor. Callers that need to
// run the process themselves (the TUI suspends its program for it) use
// Cmd directly and then call Note.
type Session struct {
	Cmd  *exec.Cmd
	path string
}

// Prepare writes the template to a temp file and builds the editor command
// for it. The command is not started.
func Prepare(editorCmd string, template string) (*Session, error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty editor command")
	}

	tmp, err := os.CreateTemp("", "moodctl-note-*.txt")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(template); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	cmdArgs := append(parts[1:], tmpName)
	return &Session{Cmd: exec.Command(parts[0], cmdArgs...), path: tmpName}, nil
}

// Note reads the edited buffer back, removes the temp file and returns
// the note with comment lines dropped.
func (s *Session) Note() (string, error) {
	defer s.Cleanup()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return StripComments(string(data)), nil
}

// Cleanup removes the temp file.
func (s *Session) Cleanup() {
	os.Remove(s.path)
}

// EditNote opens the template in an editor attached to the terminal and
// returns the note the user wrote, with comment lines removed and
// surrounding whitespace trimmed. An empty result means no note.
func EditNote(editorCmd string, template string) (string, error) {
	s, err := Prepare(editorCmd, template)
	if err != nil {
		return "", err
	}
	s.Cmd.Stdin = os.Stdin
	s.Cmd.Stdout = os.Stdout
	s.Cmd.Stderr = os.Stderr
	if err := s.Cmd.Run(); err != nil {
		s.Cleanup()
		return "", fmt.Errorf("editor exited with error: %w", err)
	}
	return s.Note()
}

// StripComments drops comment lines and trims the remainder.
func StripComments(buf string) string {
	var kept []string
	for _, line := range strings.Split(buf, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), commentPrefix) {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t\r"))
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
