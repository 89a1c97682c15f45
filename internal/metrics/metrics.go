// Package metrics provides driver observers for Prometheus metrics and
// memory profiling.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/antwalk/internal/ant"
	"github.com/vovakirdan/antwalk/internal/driver"
)

// Metrics records run statistics on a private Prometheus registry.
type Metrics struct {
	registry    *prometheus.Registry
	runs        prometheus.Counter
	interrupted prometheus.Counter
	steps       prometheus.Counter
	darkCells   prometheus.Gauge
	duration    prometheus.Histogram
}

// New creates a Metrics with all collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "antwalk_runs_total",
			Help: "Total number of finished walks",
		}),
		interrupted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "antwalk_runs_interrupted_total",
			Help: "Total number of walks stopped before the ant reached the edge",
		}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "antwalk_steps_total",
			Help: "Total number of ant steps across all walks",
		}),
		darkCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "antwalk_dark_cells",
			Help: "Dark cells left on the grid by the last walk",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "antwalk_run_duration_seconds",
			Help:    "Wall time of a walk",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	m.registry.MustRegister(m.runs, m.interrupted, m.steps, m.darkCells, m.duration)
	return m
}

// RunStarted implements driver.Observer.
func (m *Metrics) RunStarted(ant.Config) {}

// RunFinished implements driver.Observer.
// Interrupted walks only bump their own counter.
func (m *Metrics) RunFinished(res driver.Result) {
	if !res.Done {
		m.interrupted.Inc()
		return
	}
	m.runs.Inc()
	m.steps.Add(float64(res.Steps))
	m.darkCells.Set(float64(res.DarkCells))
	m.duration.Observe(res.Elapsed.Seconds())
}

// Handler returns an HTTP handler serving the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteTextfile writes the metrics in text exposition format, suitable for
// the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: cannot write %s: %w", path, err)
	}
	return nil
}

var _ driver.Observer = (*Metrics)(nil)
