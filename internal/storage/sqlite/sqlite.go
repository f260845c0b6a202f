package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "github.com/tursodatabase/go-libsql"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// FileName is the database created under the data directory.
const FileName = "moodctl.db"

// Store implements storage.Storage using SQLite via Turso/libSQL.
type Store struct {
	db     *sql.DB
	path   string
	logger zerolog.Logger
}

// New creates a new SQLite storage backend.
func New(dataDir string, opts ...storage.Option) (*Store, error) {
	o := storage.ApplyOptions(opts)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, FileName)
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	s := &Store{
		db:     db,
		path:   dbPath,
		logger: o.Logger.With().Str("backend", "sqlite").Logger(),
	}

	// Enable WAL mode
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}

	if err := s.Init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Init creates the schema. It is safe to call repeatedly.
func (s *Store) Init() error {
	// score is left untyped so rows edited by hand with a bad value can
	// still be read and skipped.
	schema := `
		CREATE TABLE IF NOT EXISTS moods (
			seq       INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			score,
			tag       TEXT,
			note      TEXT
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// DB exposes the underlying handle for maintenance and tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns every valid row in insertion order.
func (s *Store) Load() []mood.Entry {
	rows, err := s.db.Query("SELECT timestamp, score, tag, note FROM moods ORDER BY seq")
	if err != nil {
		s.logger.Warn().Err(err).Msg("querying moods")
		return []mood.Entry{}
	}
	defer rows.Close()

	entries := []mood.Entry{}
	i := 0
	for rows.Next() {
		var ts string
		var score any
		var tag, note sql.NullString
		if err := rows.Scan(&ts, &score, &tag, &note); err != nil {
			s.logger.Warn().Err(err).Int("index", i).Msg("skipping unreadable row")
			i++
			continue
		}
		if b, ok := score.([]byte); ok {
			score = string(b)
		}
		rec := map[string]any{"timestamp": ts, "score": score}
		if tag.Valid {
			rec["tag"] = tag.String
		}
		if note.Valid {
			rec["note"] = note.String
		}
		e, err := storage.DecodeRecord(rec)
		if err != nil {
			s.logger.Warn().Err(err).Int("index", i).Msg("skipping corrupted entry")
			i++
			continue
		}
		entries = append(entries, e)
		i++
	}
	if err := rows.Err(); err != nil {
		s.logger.Warn().Err(err).Msg("iterating moods")
	}
	return entries
}

// Save replaces the table contents in a single transaction.
func (s *Store) Save(entries []mood.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM moods"); err != nil {
		return fmt.Errorf("%w: clearing moods: %v", storage.ErrStorage, err)
	}

	for _, e := range entries {
		_, err := tx.Exec(
			"INSERT INTO moods (timestamp, score, tag, note) VALUES (?, ?, ?, ?)",
			mood.FormatTimestamp(e.Timestamp),
			e.Score,
			nullString(e.Tag),
			nullString(e.Note),
		)
		if err != nil {
			return fmt.Errorf("%w: inserting entry: %v", storage.ErrStorage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", storage.ErrStorage, err)
	}
	s.logger.Debug().Int("entries", len(entries)).Msg("saved mood log")
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
