package ant_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/antwalk/internal/ant"
)

func mustNew(t *testing.T, cfg ant.Config) *ant.Ant {
	t.Helper()
	a, err := ant.New(cfg)
	if err != nil {
		t.Fatalf("New(%+v) failed: %v", cfg, err)
	}
	return a
}

// runToEnd steps the ant until it is done and returns the cells it flipped, in order.
func runToEnd(t *testing.T, a *ant.Ant) [][2]int {
	t.Helper()
	var flipped [][2]int
	limit := a.Config().Height * a.Config().Width * 1000
	for !a.Done() {
		if len(flipped) > limit {
			t.Fatalf("ant did not finish within %d steps", limit)
		}
		row, col := a.Position()
		flipped = append(flipped, [2]int{row, col})
		a.Step()
	}
	return flipped
}

func TestNewDefaults(t *testing.T) {
	a := mustNew(t, ant.DefaultConfig())

	row, col := a.Position()
	if row != 512 || col != 512 {
		t.Errorf("expected start (512,512), got (%d,%d)", row, col)
	}
	if a.Heading() != ant.Up {
		t.Errorf("expected initial heading Up, got %v", a.Heading())
	}
	if a.DarkCells() != 0 {
		t.Errorf("expected 0 dark cells, got %d", a.DarkCells())
	}
	if a.Done() {
		t.Error("ant in the centre should not be done")
	}
	if a.Grid().Height() != 1024 || a.Grid().Width() != 1024 {
		t.Errorf("expected 1024x1024 grid, got %dx%d", a.Grid().Height(), a.Grid().Width())
	}
}

func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  ant.Config
	}{
		{"zero height", ant.Config{Height: 0, Width: 5, StartRow: 0, StartCol: 0}},
		{"negative width", ant.Config{Height: 5, Width: -1, StartRow: 2, StartCol: 0}},
		{"row below grid", ant.Config{Height: 5, Width: 5, StartRow: -1, StartCol: 2}},
		{"row past grid", ant.Config{Height: 5, Width: 5, StartRow: 5, StartCol: 2}},
		{"col past grid", ant.Config{Height: 5, Width: 5, StartRow: 2, StartCol: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := ant.New(tc.cfg)
			if err == nil {
				t.Fatalf("expected error, got ant at %v", a.Snapshot())
			}
			if !errors.Is(err, ant.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestStartOnRingIsDone(t *testing.T) {
	starts := [][2]int{{0, 2}, {4, 2}, {2, 0}, {2, 4}, {0, 0}}
	for _, s := range starts {
		a := mustNew(t, ant.Config{Height: 5, Width: 5, StartRow: s[0], StartCol: s[1]})
		if !a.Done() {
			t.Errorf("ant starting at %v should be done immediately", s)
		}
		a.Step()
		if a.Steps() != 0 || a.DarkCells() != 0 {
			t.Errorf("ant starting at %v should never move, got %+v", s, a.Snapshot())
		}
	}
}

func TestFirstStepsOn5x5(t *testing.T) {
	a := mustNew(t, ant.Config{Height: 5, Width: 5, StartRow: 2, StartCol: 2})

	a.Step()
	snap := a.Snapshot()
	if snap.Heading != ant.Right {
		t.Errorf("step 1: expected heading Right, got %v", snap.Heading)
	}
	if a.Grid().Light(2, 2) {
		t.Error("step 1: cell (2,2) should be dark")
	}
	if snap.DarkCells != 1 {
		t.Errorf("step 1: expected 1 dark cell, got %d", snap.DarkCells)
	}
	if snap.Row != 2 || snap.Col != 3 {
		t.Errorf("step 1: expected position (2,3), got (%d,%d)", snap.Row, snap.Col)
	}
	if snap.State != ant.StateRunning {
		t.Errorf("step 1: expected running, got %v", snap.State)
	}

	a.Step()
	snap = a.Snapshot()
	if snap.Heading != ant.Down {
		t.Errorf("step 2: expected heading Down, got %v", snap.Heading)
	}
	if a.Grid().Light(2, 3) {
		t.Error("step 2: cell (2,3) should be dark")
	}
	if snap.DarkCells != 2 {
		t.Errorf("step 2: expected 2 dark cells, got %d", snap.DarkCells)
	}
	if snap.Row != 1 || snap.Col != 3 {
		t.Errorf("step 2: expected position (1,3), got (%d,%d)", snap.Row, snap.Col)
	}
	if snap.State != ant.StateRunning {
		t.Errorf("step 2: expected running, got %v", snap.State)
	}
}

func TestFullWalkOn5x5(t *testing.T) {
	a := mustNew(t, ant.Config{Height: 5, Width: 5, StartRow: 2, StartCol: 2})
	flipped := runToEnd(t, a)

	expected := [][2]int{
		{2, 2}, {2, 3}, {1, 3}, {1, 2}, {2, 2}, {2, 1},
		{3, 1}, {3, 2}, {2, 2}, {2, 1}, {1, 1},
	}
	if len(flipped) != len(expected) {
		t.Fatalf("expected %d steps, got %d: %v", len(expected), len(flipped), flipped)
	}
	for i := range expected {
		if flipped[i] != expected[i] {
			t.Errorf("step %d flipped %v, expected %v", i+1, flipped[i], expected[i])
		}
	}

	snap := a.Snapshot()
	if snap.Row != 1 || snap.Col != 0 {
		t.Errorf("expected final position (1,0), got (%d,%d)", snap.Row, snap.Col)
	}
	if snap.Heading != ant.Left {
		t.Errorf("expected final heading Left, got %v", snap.Heading)
	}
	if snap.DarkCells != 7 || a.Grid().CountDark() != 7 {
		t.Errorf("expected 7 dark cells, counter=%d scan=%d", snap.DarkCells, a.Grid().CountDark())
	}
	if snap.State != ant.StateDone {
		t.Errorf("expected done, got %v", snap.State)
	}
}

func TestMinimalGridFinishesInOneStep(t *testing.T) {
	a := mustNew(t, ant.Config{Height: 3, Width: 3, StartRow: 1, StartCol: 1})
	if a.Done() {
		t.Fatal("ant on the single interior cell should not start done")
	}

	a.Step()
	if !a.Done() {
		t.Fatal("3x3 grid should finish after exactly one step")
	}
	if a.Steps() != 1 || a.DarkCells() != 1 {
		t.Errorf("expected 1 step and 1 dark cell, got %+v", a.Snapshot())
	}
	row, col := a.Position()
	if row != 1 || col != 2 {
		t.Errorf("expected final position (1,2), got (%d,%d)", row, col)
	}
}

func TestGoldenTrace8x8(t *testing.T) {
	a := mustNew(t, ant.CenteredConfig(8, 8))
	flipped := runToEnd(t, a)

	expected := [][2]int{
		{4, 4}, {4, 5}, {3, 5}, {3, 4}, {4, 4}, {4, 3}, {5, 3}, {5, 4}, {4, 4}, {4, 3},
		{3, 3}, {3, 2}, {4, 2}, {4, 3}, {3, 3}, {3, 4}, {4, 4}, {4, 3}, {3, 3}, {3, 2},
		{2, 2}, {2, 1}, {3, 1}, {3, 2}, {2, 2}, {2, 3}, {1, 3}, {1, 2}, {2, 2}, {2, 3},
		{3, 3}, {3, 2}, {2, 2}, {2, 3}, {1, 3}, {1, 4},
	}
	if len(flipped) != len(expected) {
		t.Fatalf("expected %d steps, got %d", len(expected), len(flipped))
	}
	for i := range expected {
		if flipped[i] != expected[i] {
			t.Fatalf("step %d flipped %v, expected %v", i+1, flipped[i], expected[i])
		}
	}

	row, col := a.Position()
	if row != 0 || col != 4 {
		t.Errorf("expected final position (0,4), got (%d,%d)", row, col)
	}
	if a.DarkCells() != 10 {
		t.Errorf("expected 10 dark cells, got %d", a.DarkCells())
	}
}

func TestKnownOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ant.Config
		steps    int
		dark     int
		row, col int
		heading  ant.Heading
	}{
		{"5x7 off-centre", ant.Config{Height: 5, Width: 7, StartRow: 2, StartCol: 3}, 20, 6, 0, 1, ant.Down},
		{"7x7 corner", ant.Config{Height: 7, Width: 7, StartRow: 1, StartCol: 1}, 2, 2, 0, 2, ant.Down},
		{"11x11", ant.CenteredConfig(11, 11), 209, 39, 1, 0, ant.Left},
		{"101x101", ant.CenteredConfig(101, 101), 11655, 907, 27, 0, ant.Left},
		{"1024x1024 default", ant.DefaultConfig(), 35679, 3679, 27, 0, ant.Left},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustNew(t, tc.cfg)
			for !a.Done() {
				a.Step()
			}

			snap := a.Snapshot()
			if snap.Steps != tc.steps {
				t.Errorf("steps = %d, expected %d", snap.Steps, tc.steps)
			}
			if snap.DarkCells != tc.dark {
				t.Errorf("dark cells = %d, expected %d", snap.DarkCells, tc.dark)
			}
			if snap.Row != tc.row || snap.Col != tc.col {
				t.Errorf("final position = (%d,%d), expected (%d,%d)", snap.Row, snap.Col, tc.row, tc.col)
			}
			if snap.Heading != tc.heading {
				t.Errorf("final heading = %v, expected %v", snap.Heading, tc.heading)
			}
		})
	}
}

func TestInvariantsEveryStep(t *testing.T) {
	a := mustNew(t, ant.CenteredConfig(31, 23))
	g := a.Grid()

	for !a.Done() {
		a.Step()

		row, col := a.Position()
		if !g.InBounds(row, col) {
			t.Fatalf("step %d: position (%d,%d) out of bounds", a.Steps(), row, col)
		}
		if !g.Interior(row, col) && !a.Done() {
			t.Fatalf("step %d: ant on ring at (%d,%d) but not done", a.Steps(), row, col)
		}
		if a.DarkCells() != g.CountDark() {
			t.Fatalf("step %d: counter %d != scanned %d", a.Steps(), a.DarkCells(), g.CountDark())
		}
	}
}

func TestStepAfterDoneIsNoop(t *testing.T) {
	a := mustNew(t, ant.CenteredConfig(11, 11))
	for !a.Done() {
		a.Step()
	}

	before := a.Snapshot()
	grid := a.Grid().Clone()

	for i := 0; i < 10; i++ {
		a.Step()
	}

	if a.Snapshot() != before {
		t.Errorf("snapshot changed after done: %+v vs %+v", a.Snapshot(), before)
	}
	if !a.Grid().Equal(grid) {
		t.Error("grid changed after done")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := ant.Config{Height: 64, Width: 48, StartRow: 30, StartCol: 20}

	a1 := mustNew(t, cfg)
	a2 := mustNew(t, cfg)
	for !a1.Done() {
		a1.Step()
	}
	for !a2.Done() {
		a2.Step()
	}

	if a1.Snapshot() != a2.Snapshot() {
		t.Errorf("snapshots differ: %+v vs %+v", a1.Snapshot(), a2.Snapshot())
	}
	if !a1.Grid().Equal(a2.Grid()) {
		t.Error("grids differ between identical runs")
	}
}
