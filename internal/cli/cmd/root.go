// Package cmd provides Cobra CLI commands for sarf.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/sarf/internal/cli/styles"
	"github.com/bnema/sarf/internal/domain/build"
)

var (
	buildInfo build.Info
	theme     = styles.NewTheme()
	rootCmd   = &cobra.Command{
		Use:   "sarf",
		Short: "A tabbed browser shell for the terminal",
		Long: `Sarf - a tabbed browser shell drawn in your terminal.

Pages are rendered by a headless Chromium driven through chromedp or
playwright. The terminal shows the chrome: a header with window controls,
an address input and a tab strip, a history/settings sidebar and the
content area.

Use 'sarf browse' to start browsing, or 'sarf layout' to inspect the
window geometry without starting an engine.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}
