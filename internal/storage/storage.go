package storage

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/rs/zerolog"
)

// Sentinel errors for storage operations.
var (
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// Storage persists the full mood log. Load never fails: a missing,
// unreadable or malformed log reads as empty and individual corrupt
// records are skipped. Save errors are always surfaced.
type Storage interface {
	Init() error
	Load() []mood.Entry
	Save(entries []mood.Entry) error
	Path() string
	Close() error
}

// Options holds settings shared by all backends.
type Options struct {
	Logger zerolog.Logger
}

// Option configures a backend.
type Option func(*Options)

// WithLogger sets the logger used for diagnostics about skipped records.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// ApplyOptions resolves options with a disabled logger as the default.
func ApplyOptions(opts []Option) Options {
	o := Options{Logger: zerolog.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Append adds one entry to the log and rewrites it.
func Append(s Storage, e mood.Entry) error {
	if err := mood.ValidateScore(e.Score); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	entries := s.Load()
	entries = append(entries, e)
	return s.Save(entries)
}

// DecodeRecord turns one loosely typed persisted record into an entry.
// Records without a parseable timestamp or a numeric score in range are
// rejected so the caller can skip them. Fractional scores are truncated.
func DecodeRecord(rec map[string]any) (mood.Entry, error) {
	rawTS, ok := rec["timestamp"]
	if !ok || rawTS == nil {
		return mood.Entry{}, fmt.Errorf("missing timestamp")
	}
	var ts time.Time
	switch v := rawTS.(type) {
	case string:
		t, err := mood.ParseTimestamp(v)
		if err != nil {
			return mood.Entry{}, err
		}
		ts = t
	case time.Time:
		ts = v
	default:
		return mood.Entry{}, fmt.Errorf("timestamp has type %T", rawTS)
	}

	rawScore, ok := rec["score"]
	if !ok || rawScore == nil {
		return mood.Entry{}, fmt.Errorf("missing score")
	}
	score, err := decodeScore(rawScore)
	if err != nil {
		return mood.Entry{}, err
	}
	if err := mood.ValidateScore(score); err != nil {
		return mood.Entry{}, err
	}

	return mood.Entry{
		Timestamp: ts,
		Score:     score,
		Tag:       decodeOptional(rec["tag"]),
		Note:      decodeOptional(rec["note"]),
	}, nil
}

func decodeScore(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return truncateScore(n)
	case interface {
		Int64() (int64, error)
		Float64() (float64, error)
	}:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("score: %v", err)
		}
		return truncateScore(f)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("score %q is not numeric", n)
		}
		return truncateScore(f)
	default:
		return 0, fmt.Errorf("score has type %T", v)
	}
}

// truncateScore drops the fractional part toward zero, so 7.5 reads as 7.
// Values that cannot be a score at all are rejected before the cast.
func truncateScore(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("score %v is not a usable number", f)
	}
	return int(math.Trunc(f)), nil
}

func decodeOptional(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
