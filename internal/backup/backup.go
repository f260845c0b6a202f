// Package backup writes and reads zstd-compressed snapshots of the mood
// log. A snapshot is backend-neutral, so a log kept in SQLite can be
// restored into the JSON or Markdown store and back.
package backup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// Version is the snapshot layout written by this package.
const Version = 1

// ErrFormat is returned for input that is not a readable snapshot.
var ErrFormat = errors.New("invalid backup")

// maxPayload bounds the decompressed size accepted by Read.
var maxPayload int64 = 256 << 20

// Snapshot is the decoded content of a backup file.
type Snapshot struct {
	Version   int
	CreatedAt time.Time
	Backend   string
	Entries   []mood.Entry
	// Skipped counts records that failed validation on read.
	Skipped int
}

type header struct {
	Version   int              `json:"version"`
	CreatedAt string           `json:"created_at"`
	Backend   string           `json:"backend"`
	Entries   []map[string]any `json:"entries"`
}

// DefaultFileName names a backup like moods-20250304-150405.json.zst.
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("moods-%s.json.zst", now.Format("20060102-150405"))
}

// Write encodes entries with their metadata and compresses the result.
func Write(w io.Writer, entries []mood.Entry, backend string, now time.Time) error {
	h := header{
		Version:   Version,
		CreatedAt: mood.FormatTimestamp(now),
		Backend:   backend,
		Entries:   make([]map[string]any, len(entries)),
	}
	for i, e := range entries {
		h.Entries[i] = map[string]any{
			"timestamp": mood.FormatTimestamp(e.Timestamp),
			"score":     e.Score,
			"tag":       e.Tag,
			"note":      e.Note,
		}
	}
	payload, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating zstd encoder: %w", err)
	}
	if _, err := enc.Write(payload); err != nil {
		enc.Close()
		return fmt.Errorf("compressing backup: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("compressing backup: %w", err)
	}
	return nil
}

// Read decompresses and decodes a snapshot. Individual bad records are
// skipped the same way the stores skip them.
func Read(r io.Reader) (Snapshot, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(0), zstd.WithDecoderMaxMemory(uint64(maxPayload)))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	defer dec.Close()

	payload, err := io.ReadAll(io.LimitReader(dec, maxPayload+1))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if int64(len(payload)) > maxPayload {
		return Snapshot{}, fmt.Errorf("%w: decompressed snapshot exceeds %d bytes", ErrFormat, maxPayload)
	}

	var h header
	d := json.NewDecoder(bytes.NewReader(payload))
	d.UseNumber()
	if err := d.Decode(&h); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if h.Version != Version {
		return Snapshot{}, fmt.Errorf("%w: unsupported version %d", ErrFormat, h.Version)
	}

	snap := Snapshot{
		Version: h.Version,
		Backend: h.Backend,
		Entries: make([]mood.Entry, 0, len(h.Entries)),
	}
	if t, err := mood.ParseTimestamp(h.CreatedAt); err == nil {
		snap.CreatedAt = t
	}
	for _, rec := range h.Entries {
		e, err := storage.DecodeRecord(rec)
		if err != nil {
			snap.Skipped++
			continue
		}
		snap.Entries = append(snap.Entries, e)
	}
	return snap, nil
}

// Restore replaces the contents of s with the snapshot entries.
func Restore(s storage.Storage, snap Snapshot) error {
	return s.Save(snap.Entries)
}
