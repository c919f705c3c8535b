package config

import "github.com/bnema/sarf/internal/domain/entity"

// Default configuration constants
const (
	defaultHomeURL   = "https://duckduckgo.com/"
	defaultSearchURL = "https://duckduckgo.com/?q=%s"

	defaultMaxLogSizeMB  = 10
	defaultMaxBackups    = 3
	defaultMaxLogAgeDays = 7
)

// DefaultConfig returns the default configuration values for sarf.
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			HomeURL:   defaultHomeURL,
			SearchURL: defaultSearchURL,
		},
		SearchShortcuts: map[string]SearchShortcut{
			"g": {
				URL:         "https://www.google.com/search?q=%s",
				Description: "Google search",
			},
			"gh": {
				URL:         "https://github.com/search?q=%s",
				Description: "GitHub search",
			},
			"ddg": {
				URL:         "https://duckduckgo.com/?q=%s",
				Description: "DuckDuckGo search",
			},
			"w": {
				URL:         "https://en.wikipedia.org/wiki/Special:Search?search=%s",
				Description: "Wikipedia search",
			},
		},
		History: HistoryConfig{
			Capacity: entity.DefaultHistoryCapacity,
			Policy:   HistoryPolicyDedup,
		},
		Sidebar: SidebarConfig{
			OpenOnStart: true,
		},
		Engine: EngineConfig{
			Kind:     EngineChromedp,
			Headless: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
		},
	}
}
