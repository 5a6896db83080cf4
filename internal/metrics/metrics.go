// SPDX-License-Identifier: MIT

// Package metrics collects Prometheus metrics for graph builds and writes
// them in the text exposition format for node-exporter style scraping.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Build results.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Recorder owns a private registry so that several recorders never clash.
type Recorder struct {
	registry   *prometheus.Registry
	builds     *prometheus.CounterVec
	entities   *prometheus.GaugeVec
	violations *prometheus.CounterVec
	duration   prometheus.Histogram
}

// New registers the tissuenet collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tissuenet_builds_total",
				Help: "Total number of graph builds by result",
			},
			[]string{"result"},
		),
		entities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tissuenet_graph_entities",
				Help: "Entities in the last built graph",
			},
			[]string{"kind"},
		),
		violations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tissuenet_consistency_violations_total",
				Help: "Consistency violations found by kind",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tissuenet_build_duration_seconds",
				Help:    "Duration of graph builds",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
	}
	r.registry.MustRegister(r.builds, r.entities, r.violations, r.duration)
	return r
}

// ObserveBuild records one build attempt.
func (r *Recorder) ObserveBuild(elapsed time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultFailed
	}
	r.builds.WithLabelValues(result).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// ObserveGraph sets the entity gauges.
func (r *Recorder) ObserveGraph(vertices, bonds, cells int) {
	r.entities.WithLabelValues("vertex").Set(float64(vertices))
	r.entities.WithLabelValues("bond").Set(float64(bonds))
	r.entities.WithLabelValues("cell").Set(float64(cells))
}

// ObserveViolation counts one consistency violation of the given kind.
func (r *Recorder) ObserveViolation(kind string) {
	r.violations.WithLabelValues(kind).Inc()
}

// WriteFile atomically writes all metrics to path.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
