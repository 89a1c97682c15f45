package tui

import (
	"testing"

	"github.com/vovakirdan/antwalk/internal/ant"
	"github.com/vovakirdan/antwalk/internal/core"
)

// finished5x5 returns the 5×5 walk from the centre run to completion.
// Dark cells: (1,1) (1,2) (1,3) (2,2) (2,3) (3,1) (3,2); the ant ends at (1,0).
func finished5x5(t *testing.T) *ant.Ant {
	t.Helper()
	a, err := ant.New(ant.CenteredConfig(5, 5))
	if err != nil {
		t.Fatalf("ant.New() failed: %v", err)
	}
	for !a.Done() {
		a.Step()
	}
	return a
}

func TestViewportFit(t *testing.T) {
	tests := []struct {
		name          string
		gridH, gridW  int
		width, height int
		expected      int
	}{
		{"small grid fits at 1:1", 8, 8, 80, 20, 1},
		{"exact fit", 20, 80, 80, 20, 1},
		{"one row too many", 21, 80, 80, 20, 2},
		{"default grid in a terminal", 1024, 1024, 80, 22, 64},
		{"wide grid", 16, 400, 100, 30, 4},
		{"zero-size view", 100, 100, 0, 0, 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(tc.gridH, tc.gridW, tc.width, tc.height)
			if v.Scale() != tc.expected {
				t.Errorf("Scale() = %d, expected %d", v.Scale(), tc.expected)
			}
			if row, col := v.Origin(); row != 0 || col != 0 {
				t.Errorf("Origin() = (%d, %d), expected (0, 0)", row, col)
			}
		})
	}
}

func TestViewportZoomKeepsCenter(t *testing.T) {
	v := NewViewport(1024, 1024, 80, 22)

	row, col := v.Center()
	if row != 512 || col != 512 {
		t.Fatalf("Center() = (%d, %d), expected (512, 512)", row, col)
	}

	v.ZoomIn()
	if v.Scale() != 32 {
		t.Fatalf("Scale() after ZoomIn = %d, expected 32", v.Scale())
	}
	row, col = v.Center()
	if row != 512 || col != 512 {
		t.Errorf("Center() after ZoomIn = (%d, %d), expected (512, 512)", row, col)
	}

	v.ZoomOut()
	v.ZoomOut()
	if v.Scale() != 128 {
		t.Errorf("Scale() after two ZoomOut = %d, expected 128", v.Scale())
	}
}

func TestViewportZoomLimits(t *testing.T) {
	v := NewViewport(8, 8, 80, 20)
	v.ZoomIn()
	if v.Scale() != 1 {
		t.Errorf("ZoomIn at 1:1 should be a no-op, scale = %d", v.Scale())
	}

	for i := 0; i < 10; i++ {
		v.ZoomOut()
	}
	if v.Scale() != 8 {
		t.Errorf("ZoomOut should stop at the whole grid in one character, scale = %d", v.Scale())
	}
}

func TestViewportPanClamps(t *testing.T) {
	v := NewViewport(100, 100, 10, 10)
	for v.Scale() > 1 {
		v.ZoomIn()
	}

	v.CenterOn(50, 50)
	if row, col := v.Origin(); row != 45 || col != 45 {
		t.Fatalf("Origin() after CenterOn = (%d, %d), expected (45, 45)", row, col)
	}

	v.Pan(1, 2)
	if row, col := v.Origin(); row != 46 || col != 47 {
		t.Errorf("Origin() after Pan = (%d, %d), expected (46, 47)", row, col)
	}

	v.Pan(-100, -100)
	if row, col := v.Origin(); row != 0 || col != 0 {
		t.Errorf("Pan should clamp at the top-left, got (%d, %d)", row, col)
	}

	v.Pan(1000, 1000)
	if row, col := v.Origin(); row != 90 || col != 90 {
		t.Errorf("Pan should clamp at the bottom-right, got (%d, %d)", row, col)
	}
}

func TestViewportPanMovesByScale(t *testing.T) {
	v := NewViewport(64, 64, 4, 4)
	v.ZoomIn() // scale 8
	v.CenterOn(0, 0)

	v.Pan(1, 1)
	if row, col := v.Origin(); row != 8 || col != 8 {
		t.Errorf("Origin() = (%d, %d), expected one block (8, 8)", row, col)
	}
}

func TestViewportResizeKeepsCenter(t *testing.T) {
	v := NewViewport(100, 100, 10, 10)
	for v.Scale() > 1 {
		v.ZoomIn()
	}
	v.CenterOn(40, 60)

	v.Resize(20, 6)
	if w, h := v.Size(); w != 20 || h != 6 {
		t.Errorf("Size() = %dx%d, expected 20x6", w, h)
	}
	row, col := v.Center()
	if row != 40 || col != 60 {
		t.Errorf("Center() after Resize = (%d, %d), expected (40, 60)", row, col)
	}
}

func TestViewportBlocks(t *testing.T) {
	v := NewViewport(5, 5, 3, 3)
	if v.Scale() != 2 {
		t.Fatalf("Scale() = %d, expected 2", v.Scale())
	}

	if got := v.Block(0, 0); got != core.NewRect(0, 0, 2, 2) {
		t.Errorf("Block(0, 0) = %+v", got)
	}
	if got := v.Block(2, 2); got != core.NewRect(4, 4, 1, 1) {
		t.Errorf("Block(2, 2) should be clipped to the grid, got %+v", got)
	}
	if !v.Block(3, 0).Empty() {
		t.Error("Block outside the viewport should be empty")
	}
	if got := v.Bounds(); got != core.NewRect(0, 0, 5, 5) {
		t.Errorf("Bounds() = %+v, expected whole grid", got)
	}

	x, y, ok := v.CellAt(3, 4)
	if !ok || x != 2 || y != 1 {
		t.Errorf("CellAt(3, 4) = (%d, %d, %v), expected (2, 1, true)", x, y, ok)
	}
	if _, _, ok := v.CellAt(5, 0); ok {
		t.Error("CellAt outside the grid should not be ok")
	}
}

func TestViewportDrawOneToOne(t *testing.T) {
	a := finished5x5(t)
	g := a.Grid()
	antRow, antCol := a.Position()

	v := NewViewport(5, 5, 10, 10)
	s := core.NewScreen(10, 11)
	v.Draw(s, g, antRow, antCol, 1)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			got := s.GetCell(col, row+1)
			switch {
			case row == antRow && col == antCol:
				if got.Rune != glyphAnt || got.Color != core.ColorRed {
					t.Errorf("ant cell (%d, %d) = %+v", row, col, got)
				}
			case g.Light(row, col):
				if got.Rune != glyphLight {
					t.Errorf("light cell (%d, %d) drawn as %q", row, col, got.Rune)
				}
			default:
				if got.Rune != glyphDark {
					t.Errorf("dark cell (%d, %d) drawn as %q", row, col, got.Rune)
				}
			}
		}
	}

	// Row above the grid and columns past it stay blank
	if s.Get(0, 0) != ' ' || s.Get(5, 1) != ' ' {
		t.Error("Draw wrote outside the grid area")
	}
}

func TestViewportDrawAggregates(t *testing.T) {
	a := finished5x5(t)
	antRow, antCol := a.Position()

	v := NewViewport(5, 5, 3, 3)
	s := core.NewScreen(3, 3)
	v.Draw(s, a.Grid(), antRow, antCol, 0)

	expected := []string{
		"@█·",
		"██·",
		"···",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}
