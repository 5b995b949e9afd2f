package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout3d/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after the search path and the
difficulty preset are applied. Redirect it to a file to start a custom
config.

Search order:
  --config <path>
  ~/.breakout3d/configs/breakout3d.yaml
  ./configs/breakout3d.yaml
  built-in defaults

Examples:
  breakout3d config
  breakout3d config --difficulty hard
  breakout3d config --defaults > ~/.breakout3d/configs/breakout3d.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg := gameConfig
	config.ApplyPreset(&cfg, difficulty)
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
