package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antwalk/internal/ant"
	"github.com/vovakirdan/antwalk/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Walk the ant, then explore the final grid",
	Long: `Walk the ant to the edge of the grid and show the final grid in the
terminal. Large grids are shrunk so that the whole grid fits; a character
is drawn dark if any cell it covers is dark. The ant's final cell is
marked with @.

Controls:
  Arrows/hjkl  - Pan
  + / -        - Zoom in / out
  f            - Fit the whole grid
  c            - Centre on the ant
  ?            - More help
  q            - Quit

Examples:
  antwalk view
  antwalk view --height 256 --width 256`,
	RunE: runView,
}

func init() {
	addGridFlags(viewCmd)
}

func runView(cmd *cobra.Command, _ []string) error {
	antCfg, err := gridConfig(cmd)
	if err != nil {
		return err
	}

	a, err := ant.New(antCfg)
	if err != nil {
		return err
	}

	res, err := tui.RunViewer(cmd.Context(), a, terminalSize())
	if errors.Is(err, tui.ErrClosedEarly) {
		logger.Info("viewer closed before the walk finished")
		return nil
	}
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	fmt.Printf("Dark cells: %d\n", res.DarkCells)

	if store := openHistory(); store != nil {
		defer store.Close()
		recordRun(store, res, "")
	}
	return nil
}
