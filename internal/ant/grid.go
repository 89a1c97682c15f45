package ant

// Grid is the board the ant walks on.
// Cells are stored in row-major order: index = row*width + col.
// A true cell is light, a false cell is dark.
//
// The exported API is read-only; only the ant flips cells.
type Grid struct {
	height int
	width  int
	cells  []bool
}

// newGrid creates a grid with every cell light.
func newGrid(height, width int) *Grid {
	g := &Grid{
		height: height,
		width:  width,
		cells:  make([]bool, height*width),
	}
	for i := range g.cells {
		g.cells[i] = true
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// InBounds returns true if (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Interior returns true if (row, col) is inside the grid and not on the
// outermost ring of cells.
func (g *Grid) Interior(row, col int) bool {
	return row > 0 && row < g.height-1 && col > 0 && col < g.width-1
}

// Light reports whether the cell at (row, col) is light.
// Out-of-bounds coordinates read as light.
func (g *Grid) Light(row, col int) bool {
	if !g.InBounds(row, col) {
		return true
	}
	return g.cells[g.index(row, col)]
}

// toggle flips the cell at (row, col) and returns its new color.
// Callers guarantee (row, col) is in bounds.
func (g *Grid) toggle(row, col int) bool {
	i := g.index(row, col)
	g.cells[i] = !g.cells[i]
	return g.cells[i]
}

// CountDark scans the whole grid and returns the number of dark cells.
func (g *Grid) CountDark() int {
	count := 0
	for _, light := range g.cells {
		if !light {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		height: g.height,
		width:  g.width,
		cells:  cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i, light := range g.cells {
		if light != other.cells[i] {
			return false
		}
	}
	return true
}
