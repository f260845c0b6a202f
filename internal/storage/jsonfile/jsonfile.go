// Package jsonfile stores the mood log as a single JSON array.
package jsonfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// FileName is the log file created under the data directory.
const FileName = "moods.json"

// record fixes the field order of the persisted form.
type record struct {
	Timestamp string  `json:"timestamp"`
	Score     int     `json:"score"`
	Tag       *string `json:"tag"`
	Note      *string `json:"note"`
}

// Store implements storage.Storage on top of one JSON file.
type Store struct {
	path   string
	logger zerolog.Logger
}

// New creates a JSON file storage backend and initializes the log.
func New(dataDir string, opts ...storage.Option) (*Store, error) {
	o := storage.ApplyOptions(opts)
	s := &Store{
		path:   filepath.Join(dataDir, FileName),
		logger: o.Logger.With().Str("backend", "json").Logger(),
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

// Close is a no-op for the JSON backend.
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
	return storage.WriteFileAtomic(s.path, []byte("[]\n"))
}

// Load reads every valid entry in file order.
func (s *Store) Load() []mood.Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("reading mood log")
		}
		return []mood.Entry{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("mood log is not a JSON array")
		return []mood.Entry{}
	}

	entries := make([]mood.Entry, 0, len(raw))
	for i, item := range raw {
		var rec map[string]any
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()
		if err := dec.Decode(&rec); err != nil {
			s.logger.Warn().Err(err).Int("index", i).Msg("skipping corrupted entry")
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

// preserveUnreadable copies a log that is not a JSON array to
// moods.json.corrupt-<time> so the rewrite that follows cannot lose it.
func (s *Store) preserveUnreadable() error {
	data, err := os.ReadFile(s.path)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var raw []json.RawMessage
	if json.Unmarshal(data, &raw) == nil {
		return nil
	}
	aside := s.path + ".corrupt-" + time.Now().Format("20060102-150405.000000")
	if err := storage.WriteFileAtomic(aside, data); err != nil {
		return err
	}
	s.logger.Warn().Str("path", s.path).Str("copy", aside).Msg("unreadable mood log copied aside before rewrite")
	return nil
}

// Save rewrites the whole log in the given order. An existing log that
// cannot be parsed is copied aside first.
func (s *Store) Save(entries []mood.Entry) error {
	records := make([]record, len(entries))
	for i, e := range entries {
		records[i] = record{
			Timestamp: mood.FormatTimestamp(e.Timestamp),
			Score:     e.Score,
			Tag:       e.Tag,
			Note:      e.Note,
		}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding log: %v", storage.ErrStorage, err)
	}
	data = append(data, '\n')
	if err := s.preserveUnreadable(); err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(s.path, data); err != nil {
		return err
	}
	s.logger.Debug().Int("entries", len(entries)).Msg("saved mood log")
	return nil
}
