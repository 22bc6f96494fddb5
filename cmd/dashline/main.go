// dashline is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	dashline play            - Play a run
//	dashline scores          - Show the best recorded runs
//	dashline serve           - Start SSH server for remote play
//	dashline config          - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.dashline/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dashline",
	Short: "Dashline - an endless runner in your terminal",
	Long: `Dashline is a terminal endless runner: jump over blocks, crouch
under bars, and clear the gaps for as long as you can while the pace
ratchets up every five seconds.

Available commands:
  play     - Play a run
  scores   - View the best recorded runs
  serve    - Start SSH server for remote play
  config   - Print the default tuning YAML

Examples:
  dashline play
  dashline play --preset forgiving
  dashline play --seed 42 --renderer ascii
  dashline serve --ssh :2222
  dashline scores --interactive`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dashline/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
