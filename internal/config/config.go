// Package config provides configuration management for sarf with Viper integration.
package config

import (
	"sync"

	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755
	filePerm = 0644
)

// Config represents the complete configuration for sarf.
type Config struct {
	Browser         BrowserConfig             `mapstructure:"browser" toml:"browser"`
	SearchShortcuts map[string]SearchShortcut `mapstructure:"search_shortcuts" toml:"search_shortcuts"`
	History         HistoryConfig             `mapstructure:"history" toml:"history"`
	Sidebar         SidebarConfig             `mapstructure:"sidebar" toml:"sidebar"`
	Engine          EngineConfig              `mapstructure:"engine" toml:"engine"`
	Logging         LoggingConfig             `mapstructure:"logging" toml:"logging"`
}

// BrowserConfig holds navigation defaults.
type BrowserConfig struct {
	// HomeURL is loaded by new tabs.
	HomeURL string `mapstructure:"home_url" toml:"home_url"`
	// SearchURL is the search template; %s is replaced by the escaped query.
	SearchURL string `mapstructure:"search_url" toml:"search_url"`
}

// SearchShortcut represents a "!key query" bang shortcut.
type SearchShortcut struct {
	URL         string `mapstructure:"url" toml:"url" json:"url"`
	Description string `mapstructure:"description" toml:"description" json:"description"`
}

// HistoryPolicy selects how visits are inserted into the history log.
type HistoryPolicy string

const (
	// HistoryPolicyDedup skips a visit equal to the most recent entry.
	HistoryPolicyDedup HistoryPolicy = "dedup"
	// HistoryPolicyAlways inserts every visit.
	HistoryPolicyAlways HistoryPolicy = "always"
)

// HistoryConfig holds in-memory history settings.
type HistoryConfig struct {
	Capacity int           `mapstructure:"capacity" toml:"capacity"`
	Policy   HistoryPolicy `mapstructure:"policy" toml:"policy"`
}

// SidebarConfig holds sidebar settings. Widths are in layout units of the
// active window (cells for the terminal); 0 keeps the built-in width.
type SidebarConfig struct {
	OpenOnStart   bool `mapstructure:"open_on_start" toml:"open_on_start"`
	CompactWidth  int  `mapstructure:"compact_width" toml:"compact_width"`
	ExpandedWidth int  `mapstructure:"expanded_width" toml:"expanded_width"`
}

// EngineKind selects the content engine.
type EngineKind string

const (
	EngineChromedp   EngineKind = "chromedp"
	EnginePlaywright EngineKind = "playwright"
)

// EngineConfig holds content engine settings.
type EngineConfig struct {
	Kind     EngineKind `mapstructure:"kind" toml:"kind"`
	Headless bool       `mapstructure:"headless" toml:"headless"`
	// ExecPath overrides the browser executable.
	ExecPath  string `mapstructure:"exec_path" toml:"exec_path"`
	UserAgent string `mapstructure:"user_agent" toml:"user_agent"`
	// Install downloads the playwright driver and browser when missing.
	Install bool `mapstructure:"install" toml:"install"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
	// File receives logs while the terminal window is running.
	// Empty means $XDG_STATE_HOME/sarf/logs/sarf.log.
	File       string `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
}

// Shortcuts returns the bang shortcut templates keyed by shortcut.
func (c *Config) Shortcuts() map[string]string {
	out := make(map[string]string, len(c.SearchShortcuts))
	for key, s := range c.SearchShortcuts {
		out[key] = s.URL
	}
	return out
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}
