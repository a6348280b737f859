// SPDX-License-Identifier: MIT

// Package sle: functional configuration for the SOR solver.
//
// Design:
//   - Option / Options with documented defaults (single source of truth).
//   - WithX constructors validate eagerly and panic on nonsensical values
//     (programmer error); runtime data problems are returned as errors.
//   - gatherOptions resolves a ...Option list into an Options value.
package sle

import "math"

// ---------- Defaults ----------

const (
	// DefaultRelaxation is the SOR relaxation factor w. 1.0 is Gauss–Seidel.
	DefaultRelaxation = 1.0

	// DefaultEpsilon is the absolute per-entry tolerance between successive
	// SOR estimates that counts as converged.
	DefaultEpsilon = 1e-10

	// DefaultMaxIterations caps the number of SOR sweeps.
	DefaultMaxIterations = 1000
)

// ---------- Panic messages ----------

const (
	panicRelaxationInvalid = "sle: WithRelaxation: w must be finite and > 0"
	panicEpsilonInvalid    = "sle: WithEpsilon: eps must be finite and >= 0"
	panicMaxItersInvalid   = "sle: WithMaxIterations: n must be >= 0"
)

// Option mutates Options. Safe to apply repeatedly; the last setter wins.
type Option func(*Options)

// Options is the resolved SOR configuration.
type Options struct {
	relaxation float64  // > 0; DefaultRelaxation
	eps        float64  // >= 0; DefaultEpsilon
	maxIters   int      // >= 0; DefaultMaxIterations
	metrics    *Metrics // optional
}

// Relaxation returns the effective w.
func (o Options) Relaxation() float64 { return o.relaxation }

// Epsilon returns the effective convergence tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxIterations returns the effective iteration cap.
func (o Options) MaxIterations() int { return o.maxIters }

// WithRelaxation sets the relaxation factor w.
//
// Behavior highlights:
//   - 0 < w < 1 under-relaxes, w = 1 is Gauss–Seidel, 1 < w < 2 over-relaxes.
//   - w >= 2 is accepted; such runs usually diverge and report ErrDivergent.
//
// Panics when w is not finite or w <= 0.
func WithRelaxation(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		panic(panicRelaxationInvalid)
	}

	return func(o *Options) { o.relaxation = w }
}

// WithEpsilon sets the convergence tolerance. The comparison is strict, so
// eps = 0 never converges and the run stops at the cap.
// Panics when eps is not finite or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations sets the iteration cap. n = 0 returns the zero vector
// unconverged. Panics when n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxItersInvalid)
	}

	return func(o *Options) { o.maxIters = n }
}

// WithMetrics reports iteration counts and divergences to m. nil disables.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

func defaultOptions() Options {
	return Options{
		relaxation: DefaultRelaxation,
		eps:        DefaultEpsilon,
		maxIters:   DefaultMaxIterations,
	}
}

// gatherOptions applies opts over the defaults. nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ResolveOptions exposes the effective configuration for a list of options.
func ResolveOptions(opts ...Option) Options { return gatherOptions(opts...) }
