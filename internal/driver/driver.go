// Package driver runs an ant to completion and reports the outcome.
// Instrumentation lives here, around the loop, never inside ant.Step.
package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/antwalk/internal/ant"
)

// checkEvery is how many steps run between context checks.
const checkEvery = 1 << 14

// Result summarises a finished (or interrupted) walk.
type Result struct {
	Config    ant.Config
	Steps     int
	DarkCells int
	Row       int // Final position
	Col       int
	Heading   ant.Heading
	Done      bool // False when the walk was interrupted
	Elapsed   time.Duration
}

// Observer receives notifications around a run.
type Observer interface {
	RunStarted(cfg ant.Config)
	RunFinished(res Result)
}

// FinishedFunc adapts a plain function to an Observer that only cares
// about the final result.
type FinishedFunc func(res Result)

// RunStarted implements Observer.
func (f FinishedFunc) RunStarted(ant.Config) {}

// RunFinished implements Observer.
func (f FinishedFunc) RunFinished(res Result) {
	f(res)
}

// Run steps the ant until it is done.
// If ctx is cancelled first, Run returns the progress so far and the wrapped
// context error; observers are still notified.
func Run(ctx context.Context, a *ant.Ant, observers ...Observer) (Result, error) {
	for _, o := range observers {
		o.RunStarted(a.Config())
	}

	start := time.Now()
	var runErr error
	for n := 0; !a.Done(); n++ {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				runErr = fmt.Errorf("driver: interrupted after %d steps: %w", a.Steps(), err)
				break
			}
		}
		a.Step()
	}

	res := resultOf(a, time.Since(start))
	for _, o := range observers {
		o.RunFinished(res)
	}
	return res, runErr
}

func resultOf(a *ant.Ant, elapsed time.Duration) Result {
	snap := a.Snapshot()
	return Result{
		Config:    a.Config(),
		Steps:     snap.Steps,
		DarkCells: snap.DarkCells,
		Row:       snap.Row,
		Col:       snap.Col,
		Heading:   snap.Heading,
		Done:      snap.State == ant.StateDone,
		Elapsed:   elapsed,
	}
}
