package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sarf/internal/cli/styles"
	"github.com/bnema/sarf/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where sarf keeps its files and print the effective configuration.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config and log file locations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderer := styles.NewConfigRenderer(theme)
		configFile, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		logFile, err := config.GetLogFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPaths(configFile, logFile))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration sarf would run with: the config file merged
with defaults and SARF_* environment variables.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		mgr, err := config.NewManager()
		if err != nil {
			return err
		}
		if err := mgr.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return config.Encode(mgr.Get(), cmd.OutOrStdout())
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return config.EncodeSchema(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}
