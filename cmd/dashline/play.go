package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mzhdanov/dashline/internal/config"
	"github.com/mzhdanov/dashline/internal/platform/tui"
	"github.com/mzhdanov/dashline/internal/storage"
)

var (
	flagConfig   string
	flagPreset   string
	flagRenderer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump
  Down/S     - Crouch (hold)
  Enter      - Start
  R          - Restart (after game over)
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Preset options:
  forgiving - Smaller hitbox, wider spacing
  standard  - Default tuning
  brutal    - Larger hitbox, faster scroll

Examples:
  dashline play
  dashline play --preset brutal
  dashline play --seed 42
  dashline play --config ./my-tuning.yaml --renderer ascii`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Tuning preset: forgiving, standard, brutal")
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "ansi", "Screen renderer: ansi or ascii")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	renderer, err := tui.RendererByName(flagRenderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Renderer: renderer,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadTuning loads and validates the runner config with the preset applied.
// Presets are applied before validation so a preset can never smuggle in an
// unclearable tuning.
func loadTuning() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPreset != "" {
		config.ApplyPreset(&cfg, config.Preset(flagPreset))
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("preset %q: %w", flagPreset, err)
		}
	}
	return cfg, nil
}
