package mood

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Option is one of the fixed choices offered when logging a mood.
type Option struct {
	Name  string
	Label string
	Score int
}

// Options is the discrete set offered by the selection screen, best first.
var Options = []Option{
	{Name: "great", Label: "Great", Score: 9},
	{Name: "good", Label: "Good", Score: 7},
	{Name: "meh", Label: "Meh", Score: 5},
	{Name: "bad", Label: "Bad", Score: 3},
	{Name: "awful", Label: "Awful", Score: 1},
}

// DefaultOptionIndex selects "Meh".
const DefaultOptionIndex = 2

// OptionByName resolves an option by its name, case-insensitively.
func OptionByName(name string) (Option, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, o := range Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// ParseScore accepts either a numeric score or an option name.
func ParseScore(s string) (int, error) {
	if o, ok := OptionByName(s); ok {
		return o.Score, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid mood %q: use 1-10 or one of great, good, meh, bad, awful", s)
	}
	if err := ValidateScore(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Pending is a staged entry waiting for its optional note. Staging fixes
// the score, tag and timestamp; Commit only attaches the note, so the
// entry saved afterwards is decided in a single step.
type Pending struct {
	score     int
	tag       string
	stagedAt  time.Time
	committed bool
}

// Stage validates the score and captures the creation time.
func Stage(score int, tag string, now time.Time) (*Pending, error) {
	if err := ValidateScore(score); err != nil {
		return nil, err
	}
	return &Pending{score: score, tag: tag, stagedAt: now}, nil
}

// Score returns the staged score.
func (p *Pending) Score() int { return p.score }

// StagedAt returns the timestamp the entry will carry.
func (p *Pending) StagedAt() time.Time { return p.stagedAt }

// Commit finalizes the entry. A blank note is stored as absent.
func (p *Pending) Commit(note string) (Entry, error) {
	if p.committed {
		return Entry{}, fmt.Errorf("pending entry already committed")
	}
	p.committed = true
	return New(p.score, p.tag, note, p.stagedAt)
}
