package config

import (
	"fmt"
	"strings"
)

const maxHistoryCapacity = 1000

// validateConfig checks every value and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Browser.HomeURL == "" {
		validationErrors = append(validationErrors, "browser.home_url cannot be empty")
	}
	if config.Browser.SearchURL == "" {
		validationErrors = append(validationErrors, "browser.search_url cannot be empty")
	} else if !strings.Contains(config.Browser.SearchURL, "%s") {
		validationErrors = append(validationErrors, "browser.search_url must contain %s placeholder for the search query")
	}

	for key, shortcut := range config.SearchShortcuts {
		if strings.ContainsAny(key, " \t") {
			validationErrors = append(validationErrors, fmt.Sprintf("search_shortcuts.%s: key cannot contain whitespace", key))
		}
		if shortcut.URL == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("search_shortcuts.%s.url cannot be empty", key))
		}
	}

	if config.History.Capacity < 1 || config.History.Capacity > maxHistoryCapacity {
		validationErrors = append(validationErrors, fmt.Sprintf("history.capacity must be between 1 and %d (got: %d)", maxHistoryCapacity, config.History.Capacity))
	}
	switch config.History.Policy {
	case HistoryPolicyDedup, HistoryPolicyAlways:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("history.policy must be one of: dedup, always (got: %s)", config.History.Policy))
	}

	if config.Sidebar.CompactWidth < 0 {
		validationErrors = append(validationErrors, "sidebar.compact_width must be non-negative")
	}
	if config.Sidebar.ExpandedWidth < 0 {
		validationErrors = append(validationErrors, "sidebar.expanded_width must be non-negative")
	}
	if config.Sidebar.CompactWidth > 0 && config.Sidebar.ExpandedWidth > 0 &&
		config.Sidebar.CompactWidth > config.Sidebar.ExpandedWidth {
		validationErrors = append(validationErrors, "sidebar.compact_width cannot exceed sidebar.expanded_width")
	}

	switch config.Engine.Kind {
	case EngineChromedp, EnginePlaywright:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("engine.kind must be one of: chromedp, playwright (got: %s)", config.Engine.Kind))
	}

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// normalizeConfig canonicalizes enum spellings before validation.
func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(string(config.Engine.Kind))) {
	case "", "chromedp", "cdp", "chrome":
		config.Engine.Kind = EngineChromedp
	case "playwright", "pw":
		config.Engine.Kind = EnginePlaywright
	}

	switch strings.ToLower(strings.TrimSpace(string(config.History.Policy))) {
	case "", string(HistoryPolicyDedup):
		config.History.Policy = HistoryPolicyDedup
	case string(HistoryPolicyAlways):
		config.History.Policy = HistoryPolicyAlways
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}

	config.Browser.HomeURL = strings.TrimSpace(config.Browser.HomeURL)
	config.Browser.SearchURL = strings.TrimSpace(config.Browser.SearchURL)
	config.Engine.ExecPath = strings.TrimSpace(config.Engine.ExecPath)
}
