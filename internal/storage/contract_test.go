package storage_test

import (
	"errors"
	"math"
	"os"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/jsonfile"
	"github.com/chris-regnier/moodctl/internal/storage/markdown"
	"github.com/chris-regnier/moodctl/internal/storage/sqlite"
)

type rawRecord struct {
	timestamp string
	score     string // written verbatim so tests can plant bad values
	tag       string
}

// backend opens a store in dir and knows how to plant raw records that
// bypass validation.
type backend struct {
	open  func(t *testing.T, dir string) storage.Storage
	plant func(t *testing.T, s storage.Storage, recs []rawRecord)
	// garbage overwrites the log with unparseable content.
	garbage func(t *testing.T, s storage.Storage)
}

func openJSON(t *testing.T, dir string) storage.Storage {
	t.Helper()
	s, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("creating json storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func openMarkdown(t *testing.T, dir string) storage.Storage {
	t.Helper()
	s, err := markdown.New(dir)
	if err != nil {
		t.Fatalf("creating markdown storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func openSQLite(t *testing.T, dir string) storage.Storage {
	t.Helper()
	s, err := sqlite.New(dir)
	if err != nil {
		t.Fatalf("creating sqlite storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

var backends = map[string]backend{
	"JSON": {
		open: openJSON,
		plant: func(t *testing.T, s storage.Storage, recs []rawRecord) {
			content := "[\n"
			for i, r := range recs {
				if i > 0 {
					content += ",\n"
				}
				content += `{"timestamp": "` + r.timestamp + `", "score": ` + r.score + `, "tag": "` + r.tag + `", "note": null}`
			}
			writeRaw(t, s.Path(), content+"\n]\n")
		},
		garbage: func(t *testing.T, s storage.Storage) {
			writeRaw(t, s.Path(), "{not json")
		},
	},
	"Markdown": {
		open: openMarkdown,
		plant: func(t *testing.T, s storage.Storage, recs []rawRecord) {
			content := "---\nentries:\n"
			for _, r := range recs {
				content += "  - timestamp: \"" + r.timestamp + "\"\n"
				content += "    score: " + r.score + "\n"
				content += "    tag: \"" + r.tag + "\"\n"
				content += "    note: null\n"
			}
			writeRaw(t, s.Path(), content+"---\n\n# Mood Log\n")
		},
		garbage: func(t *testing.T, s storage.Storage) {
			writeRaw(t, s.Path(), "---\nentries: [unterminated\n---\n")
		},
	},
	"SQLite": {
		open: openSQLite,
		plant: func(t *testing.T, s storage.Storage, recs []rawRecord) {
			db := s.(*sqlite.Store).DB()
			for _, r := range recs {
				var score any = r.score
				if _, err := db.Exec(
					"INSERT INTO moods (timestamp, score, tag) VALUES (?, ?, ?)",
					r.timestamp, score, r.tag,
				); err != nil {
					t.Fatalf("planting row: %v", err)
				}
			}
		},
		garbage: nil,
	},
}

func entryAt(t *testing.T, score int, tag, note *string, at time.Time) mood.Entry {
	t.Helper()
	if err := mood.ValidateScore(score); err != nil {
		t.Fatalf("bad fixture score: %v", err)
	}
	return mood.Entry{Timestamp: at, Score: score, Tag: tag, Note: note}
}

func runContractTests(t *testing.T, name string, b backend) {
	t.Run(name, func(t *testing.T) {
		t.Run("Fresh store is empty", func(t *testing.T) {
			s := b.open(t, t.TempDir())
			if got := s.Load(); len(got) != 0 {
				t.Errorf("expected empty log, got %d entries", len(got))
			}
		})

		t.Run("Init is idempotent", func(t *testing.T) {
			dir := t.TempDir()
			s := b.open(t, dir)
			e := entryAt(t, 7, mood.StringPtr("work"), nil, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
			if err := storage.Append(s, e); err != nil {
				t.Fatalf("Append: %v", err)
			}
			if err := s.Init(); err != nil {
				t.Fatalf("second Init: %v", err)
			}
			if got := s.Load(); len(got) != 1 {
				t.Errorf("Init clobbered existing log: got %d entries", len(got))
			}
		})

		t.Run("Round trip keeps order and absent fields", func(t *testing.T) {
			s := b.open(t, t.TempDir())
			base := time.Date(2025, 3, 1, 8, 30, 0, 123456000, time.UTC)
			want := []mood.Entry{
				entryAt(t, 9, mood.StringPtr("run"), mood.StringPtr("felt | strong"), base),
				entryAt(t, 1, nil, nil, base.Add(2*time.Hour)),
				entryAt(t, 5, mood.StringPtr(""), mood.StringPtr(""), base.Add(26*time.Hour)),
				entryAt(t, 3, nil, mood.StringPtr("line one\nline \"two\""), base.Add(-time.Hour)),
			}
			if err := s.Save(want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got := s.Load()
			if len(got) != len(want) {
				t.Fatalf("Load returned %d entries, want %d", len(got), len(want))
			}
			for i := range want {
				if !got[i].Equal(want[i]) {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
				}
			}
			if got[1].Tag != nil || got[1].Note != nil {
				t.Error("absent tag/note came back as present")
			}
			if got[2].Tag == nil || got[2].Note == nil {
				t.Error("empty tag/note came back as absent")
			}
		})

		t.Run("Reopen sees saved entries", func(t *testing.T) {
			dir := t.TempDir()
			s := b.open(t, dir)
			e := entryAt(t, 6, nil, mood.StringPtr("ok"), time.Date(2025, 4, 2, 18, 0, 0, 0, time.UTC))
			if err := storage.Append(s, e); err != nil {
				t.Fatalf("Append: %v", err)
			}
			s.Close()

			reopened := b.open(t, dir)
			got := reopened.Load()
			if len(got) != 1 || !got[0].Equal(e) {
				t.Errorf("reopened log = %+v, want [%+v]", got, e)
			}
		})

		t.Run("Append adds at the end", func(t *testing.T) {
			s := b.open(t, t.TempDir())
			base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
			for i, score := range []int{4, 8, 2} {
				if err := storage.Append(s, entryAt(t, score, nil, nil, base.Add(time.Duration(i)*time.Minute))); err != nil {
					t.Fatalf("Append: %v", err)
				}
			}
			got := s.Load()
			if len(got) != 3 || got[0].Score != 4 || got[2].Score != 2 {
				t.Errorf("unexpected log after appends: %+v", got)
			}
		})

		t.Run("Append rejects out-of-range score", func(t *testing.T) {
			s := b.open(t, t.TempDir())
			err := storage.Append(s, mood.Entry{Timestamp: time.Now(), Score: 11})
			if !errors.Is(err, storage.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if got := s.Load(); len(got) != 0 {
				t.Errorf("invalid entry was persisted: %+v", got)
			}
		})

		t.Run("Corrupted records are skipped", func(t *testing.T) {
			s := b.open(t, t.TempDir())
			b.plant(t, s, []rawRecord{
				{"2025-01-01T09:00:00Z", "7", "a"},
				{"2025-01-02T09:00:00Z", "3", "b"},
				{"2025-01-03T09:00:00Z", `"abc"`, "c"},
				{"2025-01-04T09:00:00Z", "9", "d"},
				{"2025-01-05T09:00:00Z", "5", "e"},
			})
			got := s.Load()
			if len(got) != 4 {
				t.Fatalf("expected 4 valid entries, got %d: %+v", len(got), got)
			}
			want := []string{"a", "b", "d", "e"}
			for i, tag := range want {
				if got[i].TagValue() != tag {
					t.Errorf("entry %d tag = %q, want %q", i, got[i].TagValue(), tag)
				}
			}
		})

		t.Run("Out-of-range and bad timestamps are skipped", func(t *testing.T) {
			s := b.open(t, t.TempDir())
			b.plant(t, s, []rawRecord{
				{"2025-01-01T09:00:00Z", "0", "zero"},
				{"yesterday", "5", "when"},
				{"2025-01-03T09:00:00", "8", "naive"},
			})
			got := s.Load()
			if len(got) != 1 || got[0].TagValue() != "naive" {
				t.Errorf("expected only the naive-timestamp entry, got %+v", got)
			}
		})

		t.Run("Hand-edited ISO forms survive the next append", func(t *testing.T) {
			s := b.open(t, t.TempDir())
			b.plant(t, s, []rawRecord{
				{"2025-03-01", "7", "date"},
				{"2025-03-01T10:00:00.123456+05:30", "5", "offset"},
				{"2025-03-01T10:00:00Z", "7.5", "fraction"},
				{"2025-03-01T10:00", "3", "minutes"},
			})
			got := s.Load()
			if len(got) != 4 {
				t.Fatalf("expected 4 entries, got %d: %+v", len(got), got)
			}
			if want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local); !got[0].Timestamp.Equal(want) {
				t.Errorf("date-only entry at %v, want local midnight", got[0].Timestamp)
			}
			if got[2].Score != 7 {
				t.Errorf("fractional score = %d, want 7", got[2].Score)
			}

			later := entryAt(t, 6, nil, nil, time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC))
			if err := storage.Append(s, later); err != nil {
				t.Fatalf("Append: %v", err)
			}
			after := s.Load()
			if len(after) != 5 {
				t.Fatalf("append lost entries: got %d, want 5", len(after))
			}
			for i, tag := range []string{"date", "offset", "fraction", "minutes"} {
				if after[i].TagValue() != tag {
					t.Errorf("entry %d tag = %q, want %q", i, after[i].TagValue(), tag)
				}
			}
		})

		if b.garbage != nil {
			t.Run("Unparseable log reads as empty", func(t *testing.T) {
				s := b.open(t, t.TempDir())
				b.garbage(t, s)
				if got := s.Load(); len(got) != 0 {
					t.Errorf("expected empty log, got %+v", got)
				}
			})
		}
	})
}

func TestStorageBackends(t *testing.T) {
	for name, b := range backends {
		runContractTests(t, name, b)
	}
}

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name    string
		rec     map[string]any
		want    int
		wantErr bool
	}{
		{"int", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": 4}, 4, false},
		{"integral float", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": 6.0}, 6, false},
		{"fractional float", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": 6.5}, 6, false},
		{"fractional number", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": json.Number("7.5")}, 7, false},
		{"fractional string", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": "9.9"}, 9, false},
		{"truncates below range", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": 0.5}, 0, true},
		{"truncates above range", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": 10.5}, 10, false},
		{"NaN string", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": "NaN"}, 0, true},
		{"infinite float", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": math.Inf(1)}, 0, true},
		{"huge float", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": 1e300}, 0, true},
		{"date-only timestamp", map[string]any{"timestamp": "2025-03-01", "score": 3}, 3, false},
		{"numeric string", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": "8"}, 8, false},
		{"time value", map[string]any{"timestamp": time.Now(), "score": 2}, 2, false},
		{"missing score", map[string]any{"timestamp": "2025-01-01T00:00:00Z"}, 0, true},
		{"missing timestamp", map[string]any{"score": 5}, 0, true},
		{"bool score", map[string]any{"timestamp": "2025-01-01T00:00:00Z", "score": true}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := storage.DecodeRecord(tt.rec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && e.Score != tt.want {
				t.Errorf("score = %d, want %d", e.Score, tt.want)
			}
		})
	}
}

func TestDecodeRecordNonStringTag(t *testing.T) {
	e, err := storage.DecodeRecord(map[string]any{
		"timestamp": "2025-01-01T00:00:00Z",
		"score":     5,
		"tag":       42,
		"note":      "fine",
	})
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if e.Tag != nil {
		t.Errorf("non-string tag should decode as absent, got %q", *e.Tag)
	}
	if e.NoteValue() != "fine" {
		t.Errorf("note = %q", e.NoteValue())
	}
}
