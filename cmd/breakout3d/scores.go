package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout3d/internal/breakout"
	"github.com/vovakirdan/breakout3d/internal/platform/tui"
	"github.com/vovakirdan/breakout3d/internal/storage"
)

var (
	flagRecent      bool
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best runs, or the most recent ones with --recent.

Examples:
  breakout3d scores
  breakout3d scores --recent --limit 20
  breakout3d scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in a full-screen table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	view := tui.ViewTop
	if flagRecent {
		view = tui.ViewRecent
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height, view); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(breakout.ID, flagLimit)
	} else {
		runs, err = store.TopRuns(breakout.ID, flagLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Breakout 3D - %s\n", view)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout3d play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %-6s  %-8s  %s\n", "Rank", "Score", "Player", "Result", "Level", "Played")
	fmt.Printf("  %-4s  %-10s  %-12s  %-6s  %-8s  %s\n", "----", "-----", "------", "------", "-----", "------")

	now := time.Now()
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-12s  %-6s  %-8s  %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			orDash(r.Player),
			r.Outcome,
			orDash(r.Difficulty),
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		)
	}

	stats, err := store.Stats(breakout.ID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %s  Runs: %d  Wins: %d  Bricks: %s  Played: %s\n",
		humanize.Comma(int64(stats.HighScore)),
		stats.Runs,
		stats.Wins,
		humanize.Comma(stats.BricksCleared),
		stats.PlayTime.Round(time.Second),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
