// SPDX-License-Identifier: MIT

// Package sle solves systems of linear equations A·x = f.
//
// Two families of solvers live here:
//
//   - Elimination: Solve runs gauss.DirectMotion and gauss.CounterMotion on
//     copies of (A, f), reads the ranks of the reduced system and classifies
//     it as having no solution, infinitely many, or exactly one. SolveNaive
//     and SolveMaxElement fix the pivot strategy.
//   - Iteration: SOR (successive over-relaxation) refines an estimate from
//     the zero vector until successive estimates agree within eps or the
//     iteration cap is hit. w = 1 is Gauss–Seidel.
//
// Both are adapted to the common Solver signature so callers (the harness,
// the slebench CLI) can run them interchangeably. Around them:
//
//   - Stability perturbs A and f and reports the RMS change of the solution.
//   - BestRelaxation sweeps w over (0, 2) and reports the fastest factor.
//   - Metrics exports solve outcomes and SOR iteration counts to Prometheus.
//
// Errors:
//
//	ErrNoSolution, ErrInfiniteSolutions  classification (inside *ClassificationError)
//	ErrDivergent                         non-finite SOR estimate (inside *DivergenceError)
//	ErrNotSquare, ErrDimensionMismatch   shape preconditions (re-exported from matrix)
//
// Only column 0 of f is iterated by SOR; elimination carries every column of f.
package sle
