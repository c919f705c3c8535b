package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/sarf/internal/bootstrap"
)

var (
	browseEngine   string
	browseHeadless bool
)

var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Launch the terminal browser",
	Long: `Launch the terminal browser.

If a URL is provided, the first tab opens it. Plain words are searched and
"!bang query" shortcuts from the config are expanded. Otherwise the first
tab opens the home page.

Logs are written to the log file while the browser runs
(see 'sarf config path').

Examples:
  sarf browse                        # Open the home page
  sarf browse example.com            # Open a URL
  sarf browse '!gh bubbletea'        # Use a search shortcut
  sarf browse --engine playwright    # Render with playwright`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := bootstrap.BrowseOptions{Engine: browseEngine}
		if len(args) == 1 {
			opts.URL = args[0]
		}
		if cmd.Flags().Changed("headless") {
			opts.Headless = &browseHeadless
		}
		return bootstrap.Browse(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVarP(&browseEngine, "engine", "e", "",
		"content engine ("+joinNames(bootstrap.Engines().Names())+"), overrides engine.kind")
	browseCmd.Flags().BoolVar(&browseHeadless, "headless", true, "run the engine without a visible browser window")
}
