package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/antwalk/internal/platform/tui"
	"github.com/vovakirdan/antwalk/internal/storage"
)

var (
	flagLimit       int
	flagLongest     bool
	flagInteractive bool
	flagClear       bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show stored walks",
	Long: `Display walks recorded in the run history database.

Examples:
  antwalk runs
  antwalk runs --limit 5
  antwalk runs --longest
  antwalk runs --interactive
  antwalk runs --clear`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of walks to show")
	runsCmd.Flags().BoolVar(&flagLongest, "longest", false, "Sort by number of steps instead of date")
	runsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse walks in a table")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored walks")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	// Reading history works even when recording is disabled
	store, err := storage.Open(appCfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	}

	if flagInteractive {
		size := terminalSize()
		return tui.RunHistory(store, size.ScreenW, size.ScreenH)
	}

	var runs []storage.RunRecord
	title := "Recent walks"
	if flagLongest {
		title = "Longest walks"
		runs, err = store.LongestRuns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No walks recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'antwalk run' to record one!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-5s  %-11s  %10s  %8s  %-11s  %-16s\n", "ID", "Grid", "Steps", "Dark", "End", "Date")
	fmt.Fprintf(out, "  %-5s  %-11s  %10s  %8s  %-11s  %-16s\n", "--", "----", "-----", "----", "---", "----")

	for _, r := range runs {
		fmt.Fprintf(out, "  %-5d  %-11s  %10s  %8s  %-11s  %-16s\n",
			r.ID,
			fmt.Sprintf("%dx%d", r.Height, r.Width),
			humanize.Comma(int64(r.Steps)),
			humanize.Comma(int64(r.DarkCells)),
			fmt.Sprintf("(%d,%d)", r.FinalRow, r.FinalCol),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	// Show totals
	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Total: %d walks, longest %s steps\n", stats.Runs, humanize.Comma(int64(stats.MaxSteps)))
	}
	return nil
}
