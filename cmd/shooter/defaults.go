package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Copy it to ~/.shooter/config.yaml (or any file passed with --config) and
edit the values you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
