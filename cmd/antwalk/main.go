// antwalk runs Langton's ant on a bounded grid until it reaches the edge,
// saves the final grid as an image and reports how many cells are dark.
//
// Usage:
//
//	antwalk                  - Same as 'antwalk run'
//	antwalk run              - Walk, save the image, print the dark-cell count
//	antwalk view             - Walk, then explore the final grid in the terminal
//	antwalk serve            - Start SSH server that shows each visitor a walk
//	antwalk runs             - Show stored walks
//	antwalk config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.antwalk, ./configs)
//	--db <path>         - Run history database (default: ~/.antwalk/runs.db)
//	--log-level <level> - debug, info, warn or error
//	--no-store          - Do not record walks
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagNoStore  bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "antwalk",
	Short: "Langton's ant on a bounded grid",
	Long: `antwalk walks Langton's ant across a grid of light cells. On a light
cell the ant turns right, on a dark cell it turns left; either way it flips
the cell and moves one step. The walk ends when the ant reaches the outer
ring of the grid.

Available commands:
  run      - Walk, save the final grid as an image and print the dark-cell count
  view     - Walk, then explore the final grid in the terminal
  serve    - Start SSH server for remote viewing
  runs     - Show stored walks
  config   - Print the effective configuration

Running antwalk without a command is the same as 'antwalk run'.

Examples:
  antwalk
  antwalk run --height 101 --width 101 --output walk.png
  antwalk view
  antwalk serve --ssh :2222
  antwalk runs --longest`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runRun,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoStore, "no-store", false, "Do not record walks in the history database")

	// The root command runs a walk, so it takes the same flags as 'run'
	addGridFlags(rootCmd)
	addRunFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}
