package ant

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New when the grid dimensions or the
// starting position cannot describe a walk.
var ErrInvalidConfig = errors.New("ant: invalid configuration")

// Config describes the grid and where the ant starts on it.
type Config struct {
	Height   int // Number of rows
	Width    int // Number of columns
	StartRow int // Initial row, 0 <= StartRow < Height
	StartCol int // Initial column, 0 <= StartCol < Width
}

// DefaultConfig returns a 1024x1024 grid with the ant in the centre.
func DefaultConfig() Config {
	return CenteredConfig(1024, 1024)
}

// CenteredConfig returns a config for a height x width grid with the ant
// starting at (height/2, width/2).
func CenteredConfig(height, width int) Config {
	return Config{
		Height:   height,
		Width:    width,
		StartRow: height / 2,
		StartCol: width / 2,
	}
}

// Validate checks that the grid is non-empty and the start is addressable.
// A start on the outer ring is valid; such an ant is done before its first step.
func (c Config) Validate() error {
	if c.Height <= 0 || c.Width <= 0 {
		return fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidConfig, c.Height, c.Width)
	}
	if c.StartRow < 0 || c.StartRow >= c.Height || c.StartCol < 0 || c.StartCol >= c.Width {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid",
			ErrInvalidConfig, c.StartRow, c.StartCol, c.Height, c.Width)
	}
	return nil
}

// Ant is a single Langton's ant together with the grid it owns.
// It is not safe for concurrent use; independent walks need independent Ants.
type Ant struct {
	cfg     Config
	grid    *Grid
	row     int
	col     int
	heading Heading
	dark    int // Cells currently dark; +1 on light->dark, -1 on dark->light
	steps   int
	done    bool
}

// New creates an ant facing Up on an all-light grid.
func New(cfg Config) (*Ant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Ant{
		cfg:     cfg,
		grid:    newGrid(cfg.Height, cfg.Width),
		row:     cfg.StartRow,
		col:     cfg.StartCol,
		heading: Up,
	}
	a.done = !a.grid.Interior(a.row, a.col)
	return a, nil
}

// Step advances the ant by one move. It is a no-op once the ant is done.
//
// The ant turns right on a light cell and left on a dark one, flips the
// cell it is standing on, moves one cell forward and stops for good as
// soon as it lands on the outer ring.
func (a *Ant) Step() {
	if a.done {
		return
	}

	if a.grid.Light(a.row, a.col) {
		a.heading = a.heading.Clockwise()
	} else {
		a.heading = a.heading.CounterClockwise()
	}

	if a.grid.toggle(a.row, a.col) {
		a.dark--
	} else {
		a.dark++
	}

	dRow, dCol := a.heading.Delta()
	a.row += dRow
	a.col += dCol
	a.steps++

	// The ring is only ever a final position, so the ant never leaves the grid.
	a.done = !a.grid.Interior(a.row, a.col)
}

// Done reports whether the ant has reached the outer ring.
func (a *Ant) Done() bool {
	return a.done
}

// Grid returns the grid. Callers must treat it as read-only.
func (a *Ant) Grid() *Grid {
	return a.grid
}

// DarkCells returns the number of cells currently dark.
func (a *Ant) DarkCells() int {
	return a.dark
}

// Position returns the ant's current cell.
func (a *Ant) Position() (row, col int) {
	return a.row, a.col
}

// Heading returns the direction the ant is facing.
func (a *Ant) Heading() Heading {
	return a.heading
}

// Steps returns the number of moves made so far.
func (a *Ant) Steps() int {
	return a.steps
}

// Config returns the configuration the ant was created with.
func (a *Ant) Config() Config {
	return a.cfg
}
