package mcptools

import (
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/present"
)

const defaultLimit = 10

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func toResult(e mood.Entry) EntryResult {
	return EntryResult{
		Timestamp: mood.FormatTimestamp(e.Timestamp),
		Date:      e.Timestamp.Local().Format("2006-01-02"),
		Score:     e.Score,
		Category:  string(present.CategoryFor(e.Score)),
		Face:      present.Face(e.Score),
		Tag:       e.TagValue(),
		Note:      e.NoteValue(),
	}
}

// toResults converts entries in order, stopping after limit when it is positive.
func toResults(entries []mood.Entry, limit int) []EntryResult {
	results := make([]EntryResult, 0, len(entries))
	for _, e := range entries {
		if limit > 0 && len(results) >= limit {
			break
		}
		results = append(results, toResult(e))
	}
	return results
}
