// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide deviation statistics between two solutions of the same system,
//     as used by perturbation (stability) analysis.
//
// Determinism & Performance:
//   - Columns are gathered in fixed i-order; the norm is gonum's floats.Distance.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const opColumnRMSDiff = "ColumnRMSDiff"

// ColumnRMSDiff returns sqrt(mean((a[i][col] - b[i][col])²)) over the rows
// both matrices share. Zero shared rows yield 0.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrOutOfRange when col is outside either matrix.
//
// Complexity: O(min(a.Rows(), b.Rows())).
func ColumnRMSDiff(a, b *Dense, col int) (float64, error) {
	if a == nil || b == nil {
		return 0, matrixErrorf(opColumnRMSDiff, ErrNilMatrix)
	}
	n := min(a.r, b.r)
	if n == 0 {
		return 0, nil
	}
	if col < 0 || col >= a.c || col >= b.c {
		return 0, fmt.Errorf("%s(col=%d): %w", opColumnRMSDiff, col, ErrOutOfRange)
	}
	x, y := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = a.data[i*a.c+col]
		y[i] = b.data[i*b.c+col]
	}

	// ‖x-y‖₂ / √n
	return floats.Distance(x, y, 2) / math.Sqrt(float64(n)), nil
}
