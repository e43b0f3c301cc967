// Package metrics exposes analysis runs as Prometheus metrics.
//
// A *Recorder implements analysis.Recorder:
//
//	reg := prometheus.NewRegistry()
//	rec, err := metrics.New(reg)
//	report, err := analysis.Analyze(spec, analysis.WithRecorder(rec))
//
// Families (namespace "routenet"):
//
//	routenet_algorithm_duration_seconds{category,algorithm,outcome}  histogram
//	routenet_fallbacks_total{category}                               counter
//
// outcome is one of OutcomeSuccess, OutcomeDisconnected, OutcomeNegativeCycle
// or OutcomeError.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/routenet/prim_kruskal"
	"github.com/katalvlaran/routenet/shortestpath"
)

const namespace = "routenet"

// Outcome label values.
const (
	OutcomeSuccess       = "success"
	OutcomeDisconnected  = "disconnected"
	OutcomeNegativeCycle = "negative_cycle"
	OutcomeError         = "error"
)

// Recorder records algorithm timings and fallbacks. Safe for concurrent use.
type Recorder struct {
	duration  *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
}

// New creates the collectors and registers them on reg. Collectors already
// registered on reg by an earlier New are reused.
func New(reg prometheus.Registerer) (*Recorder, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "algorithm_duration_seconds",
		Help:      "Wall time of one algorithm run by category, algorithm and outcome.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"category", "algorithm", "outcome"})

	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fallbacks_total",
		Help:      "Times a category selected its alternative because the recommended algorithm failed.",
	}, []string{"category"})

	var err error
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if fallbacks, err = register(reg, fallbacks); err != nil {
		return nil, err
	}

	return &Recorder{duration: duration, fallbacks: fallbacks}, nil
}

// register adds c to reg, returning the existing collector when an equal one
// is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("metrics: register: %w", err)
	}

	return c, nil
}

// ObserveRun implements analysis.Recorder.
func (r *Recorder) ObserveRun(category, algorithm string, elapsed time.Duration, err error) {
	r.duration.WithLabelValues(category, algorithm, Outcome(err)).Observe(elapsed.Seconds())
}

// ObserveFallback implements analysis.Recorder.
func (r *Recorder) ObserveFallback(category string) {
	r.fallbacks.WithLabelValues(category).Inc()
}

// Outcome classifies a run error into an outcome label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return OutcomeDisconnected
	case errors.Is(err, shortestpath.ErrNegativeCycle):
		return OutcomeNegativeCycle
	default:
		return OutcomeError
	}
}
