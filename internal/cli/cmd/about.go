package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sarf/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(theme).Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
