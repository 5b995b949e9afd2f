// breakout3d is a 3D Breakout game for the terminal, a desktop window
// and SSH.
//
// Usage:
//
//	breakout3d play          - Play in the terminal
//	breakout3d window        - Play in a desktop window
//	breakout3d serve         - Start SSH server for remote play
//	breakout3d sim           - Run a headless autopilot game
//	breakout3d scores        - Show run history
//	breakout3d config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.breakout3d/runs.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error (default: warn)
//
// Terminal commands (play, serve) also take --theme: default, mono, neon
// or pastel.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout3d/internal/config"
	"github.com/vovakirdan/breakout3d/internal/platform/tui"
	"github.com/vovakirdan/breakout3d/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagTheme      string
)

// Resolved by the root command before any subcommand runs.
var (
	logger     *log.Logger
	gameConfig config.Breakout
	difficulty config.DifficultyPreset
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout3d",
	Short: "Breakout3D - Break bricks in a 3D arena",
	Long: `Breakout3D is a Breakout game played in a 3D arena seen through an
orbiting camera. It runs in the terminal, in a desktop window or over SSH.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless autopilot game
  scores   - View run history
  config   - Print the effective configuration

Examples:
  breakout3d play
  breakout3d play --difficulty hard
  breakout3d window --fps 120
  breakout3d serve --ssh :2222
  breakout3d sim --frames 20000 --save`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and resolves the configuration shared by all
// commands. A custom config that fails to load stops the program.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout3d",
		Level:           level,
	})

	gameConfig, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if difficulty, err = config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	logger.Debug("configuration loaded", "config", flagConfig, "difficulty", difficulty)
	return nil
}

// openStore opens the run history. Failure is not fatal: the game still
// works without saving runs.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history, runs will not be saved", "error", err)
		return nil
	}
	return store
}

// applyTheme selects the terminal color theme.
func applyTheme() error {
	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}
	tui.SetTheme(theme)
	return nil
}

// player names the local user in run history.
func player() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
