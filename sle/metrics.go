// SPDX-License-Identifier: MIT
// Package sle: Prometheus instrumentation.

package sle

import (
	"errors"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "gaussjordan"

// Outcome label values.
const (
	OutcomeUnique     = "unique"
	OutcomeNoSolution = "no_solution"
	OutcomeInfinite   = "infinite"
	OutcomeDivergent  = "divergent"
	OutcomeError      = "error"
)

// Metrics holds the solver collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	solves      *prometheus.CounterVec
	iterations  prometheus.Histogram
	unconverged prometheus.Counter
	divergences prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "sle",
			Name:      "solves_total",
			Help:      "Systems solved, by solver and outcome.",
		}, []string{"solver", "outcome"}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "sor",
			Name:      "iterations",
			Help:      "SOR sweeps per completed run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		unconverged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "sor",
			Name:      "unconverged_total",
			Help:      "SOR runs that hit the iteration cap.",
		}),
		divergences: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "sor",
			Name:      "divergences_total",
			Help:      "SOR runs aborted on a non-finite estimate.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.solves, m.iterations, m.unconverged, m.divergences} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Solves exposes the outcome counter vector (solver, outcome).
func (m *Metrics) Solves() *prometheus.CounterVec { return m.solves }

// Iterations exposes the SOR iteration histogram.
func (m *Metrics) Iterations() prometheus.Histogram { return m.iterations }

// Divergences exposes the SOR divergence counter.
func (m *Metrics) Divergences() prometheus.Counter { return m.divergences }

// Unconverged exposes the counter of SOR runs that hit the cap.
func (m *Metrics) Unconverged() prometheus.Counter { return m.unconverged }

// Outcome maps a solver error to its outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeUnique
	case errors.Is(err, ErrNoSolution):
		return OutcomeNoSolution
	case errors.Is(err, ErrInfiniteSolutions):
		return OutcomeInfinite
	case errors.Is(err, ErrDivergent):
		return OutcomeDivergent
	default:
		return OutcomeError
	}
}

func (m *Metrics) observeSolve(solver string, err error) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(solver, Outcome(err)).Inc()
}

func (m *Metrics) observeIterations(res Result) {
	if m == nil {
		return
	}
	m.iterations.Observe(float64(res.Iterations))
	if !res.Converged {
		m.unconverged.Inc()
	}
}

func (m *Metrics) observeDivergence() {
	if m == nil {
		return
	}
	m.divergences.Inc()
}

// Instrument wraps s so that every call is counted under the given solver
// label. A nil m returns s unchanged.
func Instrument(solver string, s Solver, m *Metrics) Solver {
	if m == nil {
		return s
	}

	return func(a, f *matrix.Dense) (*matrix.Dense, error) {
		x, err := s(a, f)
		m.observeSolve(solver, err)

		return x, err
	}
}
