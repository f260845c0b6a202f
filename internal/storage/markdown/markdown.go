package markdown

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rs/zerolog"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/present"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// FileName is the log file created under the data directory.
const FileName = "moods.md"

// Store implements storage.Storage as a Markdown file whose YAML
// front-matter holds the log. The body is a readable table regenerated on
// every save and ignored on load.
type Store struct {
	path   string
	logger zerolog.Logger
}

// New creates a new Markdown file storage backend.
func New(dataDir string, opts ...storage.Option) (*Store, error) {
	o := storage.ApplyOptions(opts)
	s := &Store{
		path:   filepath.Join(dataDir, FileName),
		logger: o.Logger.With().Str("backend", "markdown").Logger(),
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the log file.
func (s *Store) Path() string {
	return s.path
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

// Init creates the data directory and an empty log when none exists.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: checking log file: %v", storage.ErrStorage, err)
	}
	return storage.WriteFileAtomic(s.path, marshal(nil))
}

type frontMatter struct {
	Entries []any `yaml:"entries"`
}

// Load parses the front-matter and returns every valid entry in file order.
func (s *Store) Load() []mood.Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("reading mood log")
		}
		return []mood.Entry{}
	}

	var fm frontMatter
	if _, err := frontmatter.Parse(bytes.NewReader(data), &fm); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("parsing front-matter")
		return []mood.Entry{}
	}

	entries := make([]mood.Entry, 0, len(fm.Entries))
	for i, item := range fm.Entries {
		rec, ok := toRecord(item)
		if !ok {
			s.logger.Warn().Int("index", i).Msg("skipping corrupted entry: not a mapping")
			continue
		}
		e, err := storage.DecodeRecord(rec)
		if err != nil {
			s.logger.Warn().Err(err).Int("index", i).Msg("skipping corrupted entry")
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// Save rewrites the whole file in the given order.
func (s *Store) Save(entries []mood.Entry) error {
	if err := storage.WriteFileAtomic(s.path, marshal(entries)); err != nil {
		return err
	}
	s.logger.Debug().Int("entries", len(entries)).Msg("saved mood log")
	return nil
}

// toRecord normalizes the map types YAML decoders produce.
func toRecord(item any) (map[string]any, bool) {
	switch m := item.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		rec := make(map[string]any, len(m))
		for k, v := range m {
			rec[fmt.Sprint(k)] = v
		}
		return rec, true
	default:
		return nil, false
	}
}

func marshal(entries []mood.Entry) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	if len(entries) == 0 {
		b.WriteString("entries: []\n")
	} else {
		b.WriteString("entries:\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "  - timestamp: %s\n", strconv.Quote(mood.FormatTimestamp(e.Timestamp)))
			fmt.Fprintf(&b, "    score: %d\n", e.Score)
			fmt.Fprintf(&b, "    tag: %s\n", yamlOptional(e.Tag))
			fmt.Fprintf(&b, "    note: %s\n", yamlOptional(e.Note))
		}
	}
	b.WriteString("---\n\n")
	b.WriteString("# Mood Log\n\n")
	if len(entries) == 0 {
		b.WriteString("No mood entries yet.\n")
		return []byte(b.String())
	}
	b.WriteString("| Date | Time | Mood | Score | Tag | Note |\n")
	b.WriteString("|------|------|------|-------|-----|------|\n")
	for _, e := range entries {
		ts := e.Timestamp.Local()
		fmt.Fprintf(&b, "| %s | %s | `%s` | %d/10 | %s | %s |\n",
			ts.Format("2006-01-02"),
			ts.Format("15:04"),
			present.Face(e.Score),
			e.Score,
			tableCell(e.TagValue()),
			tableCell(e.NoteValue()),
		)
	}
	return []byte(b.String())
}

func yamlOptional(s *string) string {
	if s == nil {
		return "null"
	}
	return strconv.Quote(*s)
}

func tableCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}
