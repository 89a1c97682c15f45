package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antwalk/internal/ant"
	"github.com/vovakirdan/antwalk/internal/driver"
	"github.com/vovakirdan/antwalk/internal/export"
	"github.com/vovakirdan/antwalk/internal/metrics"
)

var (
	flagOutput      string
	flagFormat      string
	flagMetricsFile string
	flagProfile     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Walk the ant and save the final grid",
	Long: `Walk the ant from its start cell until it reaches the outer ring of the
grid, save the final grid as an image and print the number of dark cells.

The image format follows the output file extension (bmp, png or txt)
unless --format is given. Dark cells are black, light cells are white.

Examples:
  antwalk run
  antwalk run --height 101 --width 101
  antwalk run --row 10 --col 20 --output walk.png
  antwalk run --output grid.out --format txt
  antwalk run --metrics-file /var/lib/node_exporter/antwalk.prom
  antwalk run --profile --log-level debug`,
	RunE: runRun,
}

func init() {
	addGridFlags(runCmd)
	addRunFlags(runCmd)
}

// addRunFlags registers the output and instrumentation flags.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output image path (overrides config)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format: bmp, png, txt (default: from extension)")
	cmd.Flags().StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the walk")
	cmd.Flags().BoolVar(&flagProfile, "profile", false, "Log memory use of the walk")
}

func runRun(cmd *cobra.Command, _ []string) error {
	antCfg, err := gridConfig(cmd)
	if err != nil {
		return err
	}

	output := appCfg.Output.Path
	if cmd.Flags().Changed("output") {
		output = flagOutput
	}
	format := appCfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = flagFormat
	}

	a, err := ant.New(antCfg)
	if err != nil {
		return err
	}

	var observers []driver.Observer
	var m *metrics.Metrics
	if flagMetricsFile != "" {
		m = metrics.New()
		observers = append(observers, m)
	}
	if flagProfile {
		observers = append(observers, metrics.NewMemoryObserver(logger))
	}

	logger.Debug("starting walk", "grid", describe(antCfg))
	res, err := driver.Run(cmd.Context(), a, observers...)
	if err != nil {
		return err
	}

	if err := export.Save(output, format, a.Grid()); err != nil {
		return err
	}

	fmt.Printf("Dark cells: %d\n", res.DarkCells)
	logger.Info("walk finished",
		"steps", res.Steps,
		"dark", res.DarkCells,
		"end", fmt.Sprintf("(%d,%d)", res.Row, res.Col),
		"output", output,
		"elapsed", res.Elapsed,
	)

	if m != nil {
		if err := m.WriteTextfile(flagMetricsFile); err != nil {
			return err
		}
		logger.Debug("metrics written", "path", flagMetricsFile)
	}

	if store := openHistory(); store != nil {
		defer store.Close()
		recordRun(store, res, output)
	}
	return nil
}
