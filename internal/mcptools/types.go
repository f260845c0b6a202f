package mcptools

// EntryResult is the common output format for entry-related MCP tools.
type EntryResult struct {
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
	Score     int    `json:"score"`
	Category  string `json:"category"`
	Face      string `json:"face"`
	Tag       string `json:"tag,omitempty"`
	Note      string `json:"note,omitempty"`
}

// EntriesOutput is the output schema for tools returning entries.
type EntriesOutput struct {
	Entries []EntryResult `json:"entries"`
}

// LogMoodInput is the input schema for the log_mood MCP tool.
type LogMoodInput struct {
	Mood string `json:"mood" jsonschema-description:"Score 1-10 or one of great, good, meh, bad, awful"`
	Tag  string `json:"tag,omitempty" jsonschema-description:"Optional short tag"`
	Note string `json:"note,omitempty" jsonschema-description:"Optional free-text note"`
}

// LogMoodOutput is the output schema for the log_mood MCP tool.
type LogMoodOutput struct {
	Entry EntryResult `json:"entry"`
}

// RecentInput is the input schema for the recent_moods MCP tool.
type RecentInput struct {
	Limit int `json:"limit,omitempty" jsonschema-description:"Maximum number of entries to return (default 10)"`
}

// SearchInput is the input schema for the search_moods MCP tool.
type SearchInput struct {
	Query string `json:"query" jsonschema-description:"Text to search for in tags and notes"`
	Limit int    `json:"limit,omitempty" jsonschema-description:"Maximum number of results to return"`
}

// FilterInput is the input schema for the filter_moods MCP tool.
type FilterInput struct {
	StartDate string `json:"start_date,omitempty" jsonschema-description:"ISO date lower bound (inclusive)"`
	EndDate   string `json:"end_date,omitempty" jsonschema-description:"ISO date upper bound (inclusive)"`
	MinScore  int    `json:"min_score,omitempty" jsonschema-description:"Lowest score to include"`
	MaxScore  int    `json:"max_score,omitempty" jsonschema-description:"Highest score to include"`
	Limit     int    `json:"limit,omitempty" jsonschema-description:"Maximum number of results"`
}

// StatsInput is the input schema for the mood_stats MCP tool.
type StatsInput struct{}

// StatsOutput is the output schema for the mood_stats MCP tool. Averages
// are omitted when their window holds no entries.
type StatsOutput struct {
	Total           int          `json:"total"`
	Average         *float64     `json:"average,omitempty"`
	Last7Average    *float64     `json:"last_7_days_average,omitempty"`
	Last30Average   *float64     `json:"last_30_days_average,omitempty"`
	Best            *EntryResult `json:"best,omitempty"`
	Worst           *EntryResult `json:"worst,omitempty"`
	CurrentNotAwful int          `json:"current_not_awful_streak"`
	CurrentGood     int          `json:"current_good_streak"`
	LongestNotAwful int          `json:"longest_not_awful_streak"`
	SinceLatest     string       `json:"since_latest,omitempty"`
}
