package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Catalog Settings
	ListLatencyMS   int `yaml:"list_latency_ms"`
	UploadLatencyMS int `yaml:"upload_latency_ms"`

	// UI Settings
	ColorTheme        string `yaml:"color_theme"`
	DisplayDateFormat string `yaml:"display_date_format"`
	DescriptionLines  int    `yaml:"description_lines"`
	CardWidth         int    `yaml:"card_width"`
	CopyOnSelect      bool   `yaml:"copy_on_select"`

	// Watching
	WatchCatalog    bool `yaml:"watch_catalog"`
	WatchDebounceMS int  `yaml:"watch_debounce_ms"`

	// Host Integration
	Editor      string `yaml:"editor"`
	ImageViewer string `yaml:"image_viewer"`

	// Export
	ExportDir string `yaml:"export_dir"`

	// Diagnostics
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		ListLatencyMS:     500,
		UploadLatencyMS:   1500,
		ColorTheme:        "auto",
		DisplayDateFormat: "2006-01-02",
		DescriptionLines:  2,
		CardWidth:         34,
		CopyOnSelect:      false,
		WatchCatalog:      true,
		WatchDebounceMS:   300,
		Editor:            "",
		ImageViewer:       "",
		ExportDir:         "",
		LogLevel:          "info",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// A missing file means defaults
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults backfills values that are empty or out of range.
// Zero latencies are honoured; negative ones are not.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.ListLatencyMS < 0 {
		c.ListLatencyMS = def.ListLatencyMS
	}
	if c.UploadLatencyMS < 0 {
		c.UploadLatencyMS = def.UploadLatencyMS
	}
	if c.DisplayDateFormat == "" {
		c.DisplayDateFormat = def.DisplayDateFormat
	}
	if c.DescriptionLines <= 0 {
		c.DescriptionLines = def.DescriptionLines
	}
	if c.CardWidth < 20 {
		c.CardWidth = def.CardWidth
	}
	if c.WatchDebounceMS <= 0 {
		c.WatchDebounceMS = def.WatchDebounceMS
	}
	if !isValidTheme(c.ColorTheme) {
		c.ColorTheme = def.ColorTheme
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		c.LogLevel = def.LogLevel
	}
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ListLatency is the simulated delay of a catalog listing
func (c *Config) ListLatency() time.Duration {
	return time.Duration(c.ListLatencyMS) * time.Millisecond
}

// UploadLatency is the simulated delay of an artwork upload
func (c *Config) UploadLatency() time.Duration {
	return time.Duration(c.UploadLatencyMS) * time.Millisecond
}

// WatchDebounce is the quiet period before a catalog change triggers a refresh
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

func isValidTheme(theme string) bool {
	validThemes := []string{"auto", "dark", "light", "none"}
	for _, valid := range validThemes {
		if theme == valid {
			return true
		}
	}
	return false
}
