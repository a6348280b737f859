// SPDX-License-Identifier: MIT
// Package sle: successive over-relaxation.

package sle

import (
	"math"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// Result is the outcome of an SOR run.
type Result struct {
	// Solution is the last estimate, an n×1 matrix.
	Solution *matrix.Dense
	// Iterations is the number of sweeps performed: the converging sweep
	// when Converged, the cap otherwise.
	Iterations int
	// Converged reports whether successive estimates agreed within eps.
	Converged bool
}

// SOR solves A·x = f by successive over-relaxation starting from x = 0.
//
// Each sweep computes, row by row,
//
//	sum   = f[i] - Σ_{j<i} A[i][j]·cur[j] - Σ_{j≥i} A[i][j]·prev[j]
//	cur[i] = prev[i] + w/A[i][i]·sum
//
// then checks every entry of cur is finite (else *DivergenceError) and stops
// once |cur[i]-prev[i]| < eps for every i. Only column 0 of f is used.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrDimensionMismatch (f rows differ from
// A or f has no columns), ErrDivergent.
// Complexity: O(iterations·n²).
func SOR(a, f *matrix.Dense, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(a); err != nil {
		return Result{}, sleErrorf(opSOR, err)
	}
	if err := matrix.ValidateSameRows(a, f); err != nil {
		return Result{}, sleErrorf(opSOR, err)
	}
	if f.Cols() == 0 && f.Rows() > 0 {
		return Result{}, sleErrorf(opSOR, &matrix.ShapeError{
			Op: opSOR, ARows: a.Rows(), ACols: a.Cols(), BRows: f.Rows(), BCols: 0, Err: ErrDimensionMismatch,
		})
	}

	n := a.Rows()
	w := o.relaxation
	prev := make([]float64, n)
	cur := make([]float64, n)
	res := Result{}
	var i, j int
	for res.Iterations < o.maxIters {
		res.Iterations++
		for i = 0; i < n; i++ {
			row := a.MustRow(i)
			sum := f.MustRow(i)[0]
			for j = 0; j < i; j++ {
				sum -= row[j] * cur[j]
			}
			for j = i; j < n; j++ {
				sum -= row[j] * prev[j]
			}
			cur[i] = prev[i] + w/row[i]*sum
		}

		for i = 0; i < n; i++ {
			if math.IsNaN(cur[i]) || math.IsInf(cur[i], 0) {
				o.metrics.observeDivergence()
				return Result{}, sleErrorf(opSOR, &DivergenceError{Iteration: res.Iterations, Row: i})
			}
		}

		if closeAll(cur, prev, o.eps) {
			res.Converged = true
			prev, cur = cur, prev
			break
		}
		prev, cur = cur, prev
	}

	res.Solution = matrix.Column(prev...)
	o.metrics.observeIterations(res)

	return res, nil
}

// closeAll reports whether |x[i]-y[i]| < eps for every i.
func closeAll(x, y []float64, eps float64) bool {
	for i := range x {
		if !(math.Abs(x[i]-y[i]) < eps) {
			return false
		}
	}

	return true
}

// SORSolver adapts SOR to the Solver signature. The last estimate is returned
// even when the cap is hit; divergence and shape problems are errors.
func SORSolver(opts ...Option) Solver {
	return func(a, f *matrix.Dense) (*matrix.Dense, error) {
		res, err := SOR(a, f, opts...)
		if err != nil {
			return nil, err
		}

		return res.Solution, nil
	}
}
