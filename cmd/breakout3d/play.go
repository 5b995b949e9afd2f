package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout3d/internal/core"
	"github.com/vovakirdan/breakout3d/internal/platform/tui"
	"github.com/vovakirdan/breakout3d/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Breakout3D in the terminal.

Without --difficulty a menu lets you pick the difficulty and browse the
run history. After a game you return to the menu.

Controls:
  Left/Right/A/D - Move paddle
  Space          - Launch ball
  1-4            - Camera: front, low, side, free
  Mouse/Wheel    - Orbit and zoom the free camera
  P              - Pause
  R              - Restart (after game over)
  Esc/B          - Back to menu (paused or game over)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Examples:
  breakout3d play
  breakout3d play --difficulty easy
  breakout3d play --theme neon
  breakout3d play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTheme, "theme", "default", "Color theme: default, mono, neon, pastel")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := applyTheme(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// An explicit difficulty skips the menu
	if cmd.Flags().Changed("difficulty") {
		if err := playOnce(store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, tui.ViewTop)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		difficulty = menuResult.Difficulty
		if err := playOnce(store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
	}
}

// playOnce runs one terminal game with the resolved configuration.
func playOnce(store *storage.Store, cfg core.RuntimeConfig) error {
	logger.Info("run started", "difficulty", difficulty, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	game, err := tui.Run(tui.Options{
		Config:     gameConfig,
		Difficulty: difficulty,
		Player:     player(),
		Runtime:    cfg,
		Store:      store,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	res := game.Result()
	logger.Info("run finished", "outcome", res.Outcome, "score", res.Score, "duration", res.Duration)
	return nil
}
