// Package config provides YAML-based run configuration for antwalk.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/antwalk/internal/ant"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all settings for a run.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Start   *StartConfig  `yaml:"start,omitempty"` // nil = centre of the grid
	Output  OutputConfig  `yaml:"output"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig defines the grid dimensions.
type GridConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// StartConfig defines the ant's starting cell.
type StartConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// OutputConfig defines where the final grid is written.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // Empty = infer from Path
}

// StorageConfig defines run history persistence.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db"`
}

// LogConfig defines logging behaviour.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks the configuration for values no run can use.
// Start position checks are left to ant.Config.Validate.
func (c Config) Validate() error {
	if c.Grid.Height <= 0 || c.Grid.Width <= 0 {
		return fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalid, c.Grid.Height, c.Grid.Width)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// AntConfig returns the simulator configuration.
func (c Config) AntConfig() ant.Config {
	cfg := ant.CenteredConfig(c.Grid.Height, c.Grid.Width)
	if c.Start != nil {
		cfg.StartRow = c.Start.Row
		cfg.StartCol = c.Start.Col
	}
	return cfg
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
