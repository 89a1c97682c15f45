package export

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/vovakirdan/antwalk/internal/ant"
)

// Palette indices for Image.
const (
	DarkIndex  uint8 = 0
	LightIndex uint8 = 1
)

// Palette maps dark cells to black and light cells to white.
var Palette = color.Palette{color.Black, color.White}

// Image converts a grid to a two-color image.
// Pixel (x, y) is cell (row y, column x).
func Image(g *ant.Grid) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, g.Width(), g.Height()), Palette)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.Light(row, col) {
				img.SetColorIndex(col, row, LightIndex)
			} else {
				img.SetColorIndex(col, row, DarkIndex)
			}
		}
	}
	return img
}

// Save writes the grid to path. An empty format is inferred from the
// path's extension. Parent directories are created as needed.
func Save(path, format string, g *ant.Grid) error {
	path, err := ExpandHome(path)
	if err != nil {
		return err
	}

	if format == "" {
		format, err = FormatFor(path)
		if err != nil {
			return err
		}
	}
	enc, err := Lookup(format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: cannot create %s: %w", path, err)
	}

	if err := enc(f, Image(g)); err != nil {
		f.Close()
		return fmt.Errorf("export: cannot encode %s as %s: %w", path, format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: cannot close %s: %w", path, err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("export: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
