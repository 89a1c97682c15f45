package tui

import (
	"github.com/vovakirdan/antwalk/internal/ant"
	"github.com/vovakirdan/antwalk/internal/core"
)

// Glyphs used to draw the grid.
const (
	glyphDark  = '█'
	glyphLight = '·'
	glyphAnt   = '@'
)

// Viewport maps screen characters onto blocks of grid cells.
// Each character covers scale×scale cells; scale is always a power of two.
// Grid row 0 is drawn at the top, matching the exported image.
type Viewport struct {
	gridH, gridW int
	width        int // Characters available for the grid
	height       int
	scale        int
	row, col     int // Grid cell shown in the top-left character
}

// NewViewport creates a viewport for a gridH×gridW grid shown in
// width×height characters, zoomed to fit.
func NewViewport(gridH, gridW, width, height int) *Viewport {
	v := &Viewport{
		gridH:  core.Max(1, gridH),
		gridW:  core.Max(1, gridW),
		width:  core.Max(0, width),
		height: core.Max(0, height),
	}
	v.Fit()
	return v
}

// Scale returns the number of grid cells per character side.
func (v *Viewport) Scale() int {
	return v.scale
}

// Origin returns the grid cell drawn in the top-left character.
func (v *Viewport) Origin() (row, col int) {
	return v.row, v.col
}

// Size returns the viewport size in characters.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// maxScale is the smallest power of two that fits the whole grid in one character.
func (v *Viewport) maxScale() int {
	side := core.Max(v.gridH, v.gridW)
	s := 1
	for s < side {
		s <<= 1
	}
	return s
}

// Fit picks the smallest scale that shows the whole grid and resets the origin.
func (v *Viewport) Fit() {
	limit := v.maxScale()
	v.scale = 1
	for v.scale < limit && !v.fits(v.scale) {
		v.scale <<= 1
	}
	v.row, v.col = 0, 0
}

func (v *Viewport) fits(scale int) bool {
	return ceilDiv(v.gridW, scale) <= v.width && ceilDiv(v.gridH, scale) <= v.height
}

// ZoomIn halves the scale, keeping the centre cell in place.
func (v *Viewport) ZoomIn() {
	if v.scale <= 1 {
		return
	}
	row, col := v.Center()
	v.scale >>= 1
	v.CenterOn(row, col)
}

// ZoomOut doubles the scale, keeping the centre cell in place.
func (v *Viewport) ZoomOut() {
	if v.scale >= v.maxScale() {
		return
	}
	row, col := v.Center()
	v.scale <<= 1
	v.CenterOn(row, col)
}

// Pan moves the view by the given number of characters.
func (v *Viewport) Pan(dRows, dCols int) {
	v.row += dRows * v.scale
	v.col += dCols * v.scale
	v.clamp()
}

// Center returns the grid cell under the middle of the viewport.
func (v *Viewport) Center() (row, col int) {
	visible := v.Bounds()
	if visible.Empty() {
		return v.row, v.col
	}
	col, row = visible.Center()
	return row, col
}

// CenterOn scrolls so that the given cell is as close to the middle as possible.
func (v *Viewport) CenterOn(row, col int) {
	v.row = row - v.height*v.scale/2
	v.col = col - v.width*v.scale/2
	v.clamp()
}

// Resize changes the viewport size, keeping the centre cell in place.
func (v *Viewport) Resize(width, height int) {
	row, col := v.Center()
	v.width = core.Max(0, width)
	v.height = core.Max(0, height)
	v.CenterOn(row, col)
}

// clamp keeps the origin inside the grid and avoids scrolling past its far edge.
func (v *Viewport) clamp() {
	v.row = core.Clamp(v.row, 0, core.Max(0, v.gridH-v.height*v.scale))
	v.col = core.Clamp(v.col, 0, core.Max(0, v.gridW-v.width*v.scale))
}

// Bounds returns the part of the grid currently visible.
// X and W are columns, Y and H are rows.
func (v *Viewport) Bounds() core.Rect {
	view := core.NewRect(v.col, v.row, v.width*v.scale, v.height*v.scale)
	return view.Intersect(core.NewRect(0, 0, v.gridW, v.gridH))
}

// Block returns the grid cells covered by the character at (x, y).
// The result is empty when the character lies past the grid edge.
func (v *Viewport) Block(x, y int) core.Rect {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return core.Rect{}
	}
	block := core.NewRect(v.col+x*v.scale, v.row+y*v.scale, v.scale, v.scale)
	return block.Intersect(core.NewRect(0, 0, v.gridW, v.gridH))
}

// CellAt returns the screen character that shows the given grid cell.
func (v *Viewport) CellAt(row, col int) (x, y int, ok bool) {
	if !v.Bounds().Contains(col, row) {
		return 0, 0, false
	}
	return (col - v.col) / v.scale, (row - v.row) / v.scale, true
}

// Draw paints the grid into the screen starting at screen row top.
// A character is dark if any cell in its block is dark.
// The ant's cell is drawn on top in red.
func (v *Viewport) Draw(s *core.Screen, g *ant.Grid, antRow, antCol, top int) {
	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			block := v.Block(x, y)
			if block.Empty() {
				continue
			}
			if blockHasDark(g, block) {
				s.SetCell(x, top+y, glyphDark, core.ColorWhite)
			} else {
				s.SetCell(x, top+y, glyphLight, core.ColorDarkGray)
			}
		}
	}

	if x, y, ok := v.CellAt(antRow, antCol); ok {
		s.SetCell(x, top+y, glyphAnt, core.ColorRed)
	}
}

func blockHasDark(g *ant.Grid, block core.Rect) bool {
	for row := block.Y; row < block.Bottom(); row++ {
		for col := block.X; col < block.Right(); col++ {
			if !g.Light(row, col) {
				return true
			}
		}
	}
	return false
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
