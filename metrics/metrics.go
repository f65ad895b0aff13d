// SPDX-License-Identifier: MIT

// Package metrics exposes pipeline counters on a private Prometheus registry.
//
// A Recorder is optional everywhere it is accepted: every method is a no-op on a
// nil *Recorder. Batch jobs dump the registry once at exit with WriteTextfile,
// in the format read by the node-exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/runcsp/instance"
)

const (
	namespace = "runcsp"

	// RelationLabel names the relation a clause counter belongs to.
	RelationLabel = "relation"
)

// Recorder owns the pipeline metrics.
type Recorder struct {
	registry *prometheus.Registry

	instances     prometheus.Counter
	clauses       *prometheus.CounterVec
	batches       prometheus.Counter
	batchDuration prometheus.Summary
	evaluations   prometheus.Counter
	conflictRatio prometheus.Histogram
}

// NewRecorder builds a Recorder and registers its collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		instances: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "instances_total",
				Help:      "Number of CSP instances produced by loaders, converters or generators",
			},
		),
		clauses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "clauses_total",
				Help:      "Number of clauses in produced instances, by relation",
			},
			[]string{RelationLabel},
		),
		batches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batches_total",
				Help:      "Number of merged batch instances",
			},
		),
		batchDuration: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Namespace:  namespace,
				Name:       "batch_duration_seconds",
				Help:       "Wall time of a Batch call",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
		),
		evaluations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Number of instances scored against an assignment",
			},
		),
		conflictRatio: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "conflict_ratio",
				Help:      "Fraction of violated clauses per evaluated instance",
				Buckets:   prometheus.LinearBuckets(0, 0.05, 21),
			},
		),
	}
	r.registry.MustRegister(r.instances, r.clauses, r.batches, r.batchDuration, r.evaluations, r.conflictRatio)

	return r
}

// Registry exposes the underlying registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveInstances counts instances and their clauses per relation.
func (r *Recorder) ObserveInstances(instances []*instance.Instance) {
	if r == nil {
		return
	}
	for _, in := range instances {
		if in == nil {
			continue
		}
		r.instances.Inc()
		for _, name := range in.Language().Names() {
			r.clauses.WithLabelValues(name).Add(float64(in.NumClauses(name)))
		}
	}
}

// ObserveBatch records one Batch call that produced n merged instances.
func (r *Recorder) ObserveBatch(n int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.batches.Add(float64(n))
	r.batchDuration.Observe(elapsed.Seconds())
}

// ObserveEvaluation records the conflict ratio of one evaluated instance.
func (r *Recorder) ObserveEvaluation(conflictRatio float64) {
	if r == nil {
		return
	}
	r.evaluations.Inc()
	r.conflictRatio.Observe(conflictRatio)
}

// WriteTextfile writes the current registry contents to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("WriteTextfile: %w", err)
	}

	return nil
}
