package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mzhdanov/dashline/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning YAML",
	Long: `Print the embedded default tuning to stdout. Save it to
~/.dashline/configs/runner.yaml (or pass it via --config) to customize.

Example:
  dashline config > ~/.dashline/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
