package config

import (
	_ "embed"
)

//go:embed defaults/antwalk.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 1024x1024 grid with the
// ant in the centre, written to ant_walk.bmp.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Height: 1024,
			Width:  1024,
		},
		Output: OutputConfig{
			Path: "ant_walk.bmp",
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.antwalk/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
