// Package metrics exposes training progress as Prometheus metrics.
//
// Metrics include:
//   - Current loss per run (gauge)
//   - Completed iterations per run (counter)
//   - Graph size of the last iteration (gauge)
//   - Backward pass latency (histogram)
//
// Every run is labeled by its seed so concurrent sweep runs do not collide.
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "micrograd"
	subsystem = "train"
)

// Metrics holds the collectors shared by all runs registered with one registry.
type Metrics struct {
	// Loss is the loss of the most recent iteration.
	// Labels: seed
	Loss *prometheus.GaugeVec

	// IterationsTotal counts completed iterations.
	// Labels: seed
	IterationsTotal *prometheus.CounterVec

	// GraphNodes is the tape length after the most recent backward pass.
	// Labels: seed
	GraphNodes *prometheus.GaugeVec

	// BackwardSeconds measures the duration of each backward pass.
	BackwardSeconds prometheus.Histogram
}

// New creates and registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Loss: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "loss",
			Help:      "Sum squared error of the most recent iteration.",
		}, []string{"seed"}),
		IterationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "iterations_total",
			Help:      "Number of completed training iterations.",
		}, []string{"seed"}),
		GraphNodes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "graph_nodes",
			Help:      "Nodes on the tape after the most recent backward pass.",
		}, []string{"seed"}),
		BackwardSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "backward_seconds",
			Help:      "Duration of the backward pass.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
}

// Run returns a Recorder bound to one training run.
func (m *Metrics) Run(seed int64) *Recorder {
	if m == nil {
		return nil
	}
	label := strconv.FormatInt(seed, 10)
	return &Recorder{
		loss:       m.Loss.WithLabelValues(label),
		iterations: m.IterationsTotal.WithLabelValues(label),
		nodes:      m.GraphNodes.WithLabelValues(label),
		backward:   m.BackwardSeconds,
	}
}

// Recorder records the progress of a single run.
type Recorder struct {
	loss       prometheus.Gauge
	iterations prometheus.Counter
	nodes      prometheus.Gauge
	backward   prometheus.Observer
}

// ObserveIteration records one completed iteration.
func (r *Recorder) ObserveIteration(loss float64, nodes int, backward time.Duration) {
	if r == nil {
		return
	}
	r.loss.Set(loss)
	r.iterations.Inc()
	r.nodes.Set(float64(nodes))
	r.backward.Observe(backward.Seconds())
}

// WriteFile writes everything gathered by g to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteFile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
