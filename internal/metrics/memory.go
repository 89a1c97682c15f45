package metrics

import (
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/antwalk/internal/ant"
	"github.com/vovakirdan/antwalk/internal/driver"
)

// MemoryObserver logs heap usage before and after a run.
type MemoryObserver struct {
	logger *log.Logger
	before runtime.MemStats
}

// NewMemoryObserver creates an observer that reports through logger.
func NewMemoryObserver(logger *log.Logger) *MemoryObserver {
	return &MemoryObserver{logger: logger}
}

// RunStarted implements driver.Observer.
func (o *MemoryObserver) RunStarted(cfg ant.Config) {
	runtime.ReadMemStats(&o.before)
	o.logger.Debug("memory before run",
		"grid", cfg.Height*cfg.Width,
		"heap", humanize.IBytes(o.before.HeapAlloc),
	)
}

// RunFinished implements driver.Observer.
func (o *MemoryObserver) RunFinished(res driver.Result) {
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	o.logger.Info("memory profile",
		"heap", humanize.IBytes(after.HeapAlloc),
		"total_alloc", humanize.IBytes(after.TotalAlloc-o.before.TotalAlloc),
		"mallocs", after.Mallocs-o.before.Mallocs,
		"gc_cycles", after.NumGC-o.before.NumGC,
		"steps", res.Steps,
	)
}

var _ driver.Observer = (*MemoryObserver)(nil)
