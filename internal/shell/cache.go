package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"github.com/chris-regnier/moodctl/internal/storage"
)

const cacheFileName = ".prompt-cache"

// PromptCache holds cached prompt status data.
type PromptCache struct {
	Today          bool      `json:"today"`
	Streak         int       `json:"streak"`
	LatestScore    int       `json:"latest_score"`
	Average7       float64   `json:"average_7d"`
	HasAverage7    bool      `json:"has_average_7d"`
	TodayDate      string    `json:"today_date"`
	StorageBackend string    `json:"storage_backend"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewCache builds a cache record from a freshly computed status.
func NewCache(s Status, backend string, now time.Time) *PromptCache {
	return &PromptCache{
		Today:          s.LoggedToday,
		Streak:         s.DayStreak,
		LatestScore:    s.LatestScore,
		Average7:       s.Average7,
		HasAverage7:    s.HasAverage7,
		TodayDate:      now.Format("2006-01-02"),
		StorageBackend: backend,
		UpdatedAt:      now,
	}
}

// CachePath returns the full path to the prompt cache file.
func CachePath(dataDir string) string {
	return filepath.Join(dataDir, cacheFileName)
}

// ReadCache reads the prompt cache from disk. Returns nil if the cache
// does not exist or cannot be parsed.
func ReadCache(dataDir string) *PromptCache {
	data, err := os.ReadFile(CachePath(dataDir))
	if err != nil {
		return nil
	}
	var c PromptCache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return &c
}

// WriteCache writes the prompt cache to disk.
func WriteCache(dataDir string, c *PromptCache) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: encoding prompt cache: %v", storage.ErrStorage, err)
	}
	return storage.WriteFileAtomic(CachePath(dataDir), data)
}

// IsFresh returns true if the cache is still valid given the TTL.
// A cache is stale if the TTL has elapsed or the date has changed (midnight rollover).
func (c *PromptCache) IsFresh(ttl time.Duration, now time.Time) bool {
	if c == nil {
		return false
	}

	// Date changed: always stale
	if c.TodayDate != now.Format("2006-01-02") {
		return false
	}

	return now.Sub(c.UpdatedAt) <= ttl
}

// InvalidateCache removes the prompt cache file.
func InvalidateCache(dataDir string) error {
	path := CachePath(dataDir)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
