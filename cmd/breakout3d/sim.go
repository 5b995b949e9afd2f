package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout3d/internal/breakout"
	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/storage"
)

var (
	flagFrames int
	flagDT     float64
	flagSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Play one game without a screen, with the paddle following the ball.

The run uses a fixed time step, so the same configuration always ends
in the same state. The final state hash makes runs easy to compare.

Examples:
  breakout3d sim
  breakout3d sim --frames 50000 --dt 0.01
  breakout3d sim --difficulty hard --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 20000, "Maximum number of frames to simulate")
	simCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60, "Seconds per frame")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the run to the history database")
}

func runSim(_ *cobra.Command, _ []string) {
	if flagFrames <= 0 || flagDT <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --frames and --dt must be positive")
		os.Exit(1)
	}

	cfg := gameConfig
	config.ApplyPreset(&cfg, difficulty)
	g := breakout.New(cfg)

	events := breakout.NewAutopilot().Run(g, flagFrames, flagDT)
	res := g.Result()
	snap := g.Snapshot()

	fmt.Println(g.Summary())
	fmt.Printf("  %-10s %s\n", "Frames", humanize.Comma(int64(g.World().Tick)))
	fmt.Printf("  %-10s %s\n", "Score", humanize.Comma(int64(res.Score)))
	fmt.Printf("  %-10s %d cracked, %d destroyed, %d missed\n", "Bricks", events.Cracks, events.Kills, events.Misses)
	fmt.Printf("  %-10s %d paddle, %d wall\n", "Bounces", events.PaddleHits, events.WallHits)
	fmt.Printf("  %-10s %016x\n", "Hash", snap.Hash())

	logger.Info("sim finished",
		"outcome", res.Outcome,
		"score", res.Score,
		"frames", g.World().Tick,
		"duration", res.Duration,
	)

	if !flagSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		GameID:        g.ID(),
		Player:        "autopilot",
		Score:         res.Score,
		Outcome:       res.Outcome,
		LivesLeft:     res.LivesLeft,
		BricksCleared: res.BricksCleared,
		Difficulty:    string(difficulty),
		Duration:      res.Duration,
	})
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  %-10s %s\n", "Saved", id)
}
