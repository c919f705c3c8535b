package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config and log file locations.
func (r *ConfigRenderer) RenderPaths(configFile, logFile string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s\n%s %s %s",
		icon.Render(IconConfig), r.theme.Subtle.Render("Config"), r.theme.Normal.Render(configFile),
		icon.Render(IconLogs), r.theme.Subtle.Render("Logs  "), r.theme.Normal.Render(logFile),
	)
}

// RenderError renders an error line.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.ErrorStyle.Render(err.Error()))
}
