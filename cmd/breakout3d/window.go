package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout3d/internal/platform/gfx"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Breakout3D in a desktop window rendered with Ebitengine.

Controls are the same as in the terminal. Drag with a mouse button held
to orbit the free camera; the wheel zooms. Esc or Q quits.

Examples:
  breakout3d window
  breakout3d window --width 1920 --height 1080 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 1280, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 720, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := gfx.DefaultOptions()
	opts.Config = gameConfig
	opts.Difficulty = difficulty
	opts.Player = player()
	opts.Width = flagWidth
	opts.Height = flagHeight
	opts.TPS = flagFPS
	opts.Store = store
	opts.Logger = logger

	logger.Info("run started", "difficulty", difficulty, "window", fmt.Sprintf("%dx%d", flagWidth, flagHeight))
	game, err := gfx.Run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	res := game.Result()
	logger.Info("run finished", "outcome", res.Outcome, "score", res.Score, "duration", res.Duration)
}
