// SPDX-License-Identifier: MIT
// Package sle: sensitivity of a solver to input noise.

package sle

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// DefaultPerturbation is the half-width of the uniform noise used by Stability.
const DefaultPerturbation = 1e-3

// Stability measures how much solve's answer moves under small noise.
//
// It solves A·x = f, then adds independent uniform noise from [-delta, delta)
// to every entry of A and to column 0 of f (A first, row-major, then f),
// solves again and returns the root-mean-square difference of column 0 of
// the two solutions. A nil rng uses matrix.NewRNG(0).
//
// Errors: ErrInvalidParameter for a negative or non-finite delta; any error
// from either solve is returned as is.
func Stability(a, f *matrix.Dense, solve Solver, rng *rand.Rand, delta float64) (float64, error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		return 0, sleErrorf(opStability, ErrInvalidParameter)
	}
	if err := matrix.ValidateSameRows(a, f); err != nil {
		return 0, sleErrorf(opStability, err)
	}
	if rng == nil {
		rng = matrix.NewRNG(0)
	}

	x1, err := solve(a, f)
	if err != nil {
		return 0, err
	}

	b := a.Clone()
	g := f.Clone()
	noise := func() float64 { return (2*rng.Float64() - 1) * delta }
	for i := 0; i < b.Rows(); i++ {
		row := b.MustRow(i)
		for j := range row {
			row[j] += noise()
		}
	}
	if g.Cols() > 0 {
		for i := 0; i < g.Rows(); i++ {
			g.MustRow(i)[0] += noise()
		}
	}

	x2, err := solve(b, g)
	if err != nil {
		return 0, err
	}

	if x1.Cols() == 0 || x2.Cols() == 0 {
		return 0, nil
	}

	return matrix.ColumnRMSDiff(x1, x2, 0)
}
