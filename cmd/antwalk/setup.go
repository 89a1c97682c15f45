package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/antwalk/internal/ant"
	"github.com/vovakirdan/antwalk/internal/config"
	"github.com/vovakirdan/antwalk/internal/core"
	"github.com/vovakirdan/antwalk/internal/driver"
	"github.com/vovakirdan/antwalk/internal/storage"
)

var (
	// Effective configuration after flags are applied
	appCfg config.Config
	logger *log.Logger

	// Grid flags, shared by every command that walks
	flagHeight int
	flagWidth  int
	flagRow    int
	flagCol    int
)

// setup loads the configuration, applies global flag overrides and
// creates the logger. It runs before every command.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoStore {
		cfg.Storage.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appCfg = cfg
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "antwalk",
		Level:           cfg.LogLevel(),
	})
	return nil
}

// addGridFlags registers the grid size and start position overrides.
func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells (overrides config)")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells (overrides config)")
	cmd.Flags().IntVar(&flagRow, "row", 0, "Start row (default: centre)")
	cmd.Flags().IntVar(&flagCol, "col", 0, "Start column (default: centre)")
}

// gridConfig returns the walk configuration with flag overrides applied.
func gridConfig(cmd *cobra.Command) (ant.Config, error) {
	cfg := appCfg
	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}

	antCfg := cfg.AntConfig()
	if flags.Changed("row") {
		antCfg.StartRow = flagRow
	}
	if flags.Changed("col") {
		antCfg.StartCol = flagCol
	}

	if err := antCfg.Validate(); err != nil {
		return ant.Config{}, err
	}
	return antCfg, nil
}

// openHistory opens the run history when recording is enabled.
// Failures are logged and yield a nil store; recording is best-effort.
func openHistory() *storage.Store {
	if !appCfg.Storage.Enabled {
		return nil
	}
	store, err := storage.Open(appCfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "db", appCfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// recordRun saves a finished walk. Errors are logged, never returned.
func recordRun(store *storage.Store, res driver.Result, outputPath string) {
	if store == nil || !res.Done {
		return
	}
	id, err := store.SaveRun(storage.RecordFromResult(res, outputPath))
	if err != nil {
		logger.Warn("could not record walk", "error", err)
		return
	}
	logger.Debug("walk recorded", "id", id, "db", appCfg.Storage.DBPath)
}

// terminalSize returns the size of the terminal on stdout, or the defaults.
func terminalSize() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// describe formats a grid configuration for log lines.
func describe(cfg ant.Config) string {
	return fmt.Sprintf("%dx%d from (%d,%d)", cfg.Height, cfg.Width, cfg.StartRow, cfg.StartCol)
}
