package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gookit/validate"
	"github.com/spf13/viper"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// ThemeConfig selects a color preset and optional per-color overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Success       string `mapstructure:"success"`
	Highlight     string `mapstructure:"highlight"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// ShellConfig holds shell integration configuration.
type ShellConfig struct {
	CacheTTL    string `mapstructure:"cache_ttl"`
	TodayIcon   string `mapstructure:"today_icon"`
	NoTodayIcon string `mapstructure:"no_today_icon"`
	StreakIcon  string `mapstructure:"streak_icon"`
	ShowAverage bool   `mapstructure:"show_average"`
	ShowBackend bool   `mapstructure:"show_backend"`
}

// ReminderConfig controls the desktop notification sent by "moodctl remind".
type ReminderConfig struct {
	Title   string `mapstructure:"title"`
	Message string `mapstructure:"message"`
}

// Config holds the application configuration.
type Config struct {
	Storage     string         `mapstructure:"storage" validate:"required|in:json,markdown,sqlite"`
	DataDir     string         `mapstructure:"data_dir" validate:"required"`
	Editor      string         `mapstructure:"editor"`
	MaxWidth    int            `mapstructure:"max_width" validate:"required|min:20"`
	LogLevel    string         `mapstructure:"log_level" validate:"required|in:debug,info,warn,error"`
	HistorySize int            `mapstructure:"history_size" validate:"required|min:1"`
	BarWidth    int            `mapstructure:"bar_width" validate:"required|min:1"`
	Theme       ThemeConfig    `mapstructure:"theme"`
	Shell       ShellConfig    `mapstructure:"shell"`
	Reminder    ReminderConfig `mapstructure:"reminder"`
}

// DefaultDataDir returns the default data directory (~/.mood_tracker/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mood_tracker")
	}
	return filepath.Join(home, ".mood_tracker")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "json")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("editor", "")
	v.SetDefault("max_width", 80)
	v.SetDefault("log_level", "warn")
	v.SetDefault("history_size", 5)
	v.SetDefault("bar_width", 30)
	v.SetDefault("theme.preset", "midnight")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("shell.cache_ttl", "5m")
	v.SetDefault("shell.today_icon", "✓")
	v.SetDefault("shell.no_today_icon", "✗")
	v.SetDefault("shell.streak_icon", "🔥")
	v.SetDefault("shell.show_average", true)
	v.SetDefault("shell.show_backend", false)
	v.SetDefault("reminder.title", "moodctl")
	v.SetDefault("reminder.message", "How are you feeling today? Take a second to log your mood.")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "moodctl"))
		}
		v.AddConfigPath(filepath.Join(DefaultDataDir()))
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: MOODCTL_STORAGE, MOODCTL_DATA_DIR, etc.
	v.SetEnvPrefix("MOODCTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	v := validate.Struct(c)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalid, v.Errors.One())
	}
	return nil
}
