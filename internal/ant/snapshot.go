package ant

// State is the lifecycle state of an ant.
type State string

const (
	StateRunning State = "running"
	StateDone    State = "done"
)

// Snapshot captures the ant's scalar state for determinism testing and reporting.
type Snapshot struct {
	Row       int
	Col       int
	Heading   Heading
	DarkCells int
	Steps     int
	State     State
}

// Snapshot returns the current snapshot.
func (a *Ant) Snapshot() Snapshot {
	state := StateRunning
	if a.done {
		state = StateDone
	}

	return Snapshot{
		Row:       a.row,
		Col:       a.col,
		Heading:   a.heading,
		DarkCells: a.dark,
		Steps:     a.steps,
		State:     state,
	}
}
