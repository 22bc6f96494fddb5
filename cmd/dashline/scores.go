package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mzhdanov/dashline/internal/platform/tui"
	"github.com/mzhdanov/dashline/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top recorded runs.

Examples:
  dashline scores
  dashline scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Dashline - best runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dashline play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "Rank", "Score", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %-12s  %s\n", i+1, r.Score, fmt.Sprintf("%.1fs", r.Duration), player, dateStr)
	}

	best, err := store.BestScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
