// SPDX-License-Identifier: MIT
// Package gauss: determinant, rank and inverse on top of the two passes.

package gauss

import (
	"math"
	"sort"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// eliminate runs max-element direct motion on a copy of a.
func eliminate(a *matrix.Dense) (*matrix.Dense, int) {
	cp := a.Clone()
	swaps, _ := DirectMotion(cp, nil, MaxElement{}) // cannot fail: non-nil, rows×0 companion

	return cp, swaps
}

// diagonalProduct multiplies the diagonal in descending order of value.
func diagonalProduct(m *matrix.Dense) float64 {
	diag := m.Diagonal()
	sort.Sort(sort.Reverse(sort.Float64Slice(diag)))
	det := 1.0
	for _, v := range diag {
		det *= v
	}

	return det
}

// Determinant returns the product of the diagonal after max-element direct
// motion on a copy of a. Row swaps are applied physically and no (-1)^swaps
// factor is applied, so the result can differ in sign from the mathematical
// determinant when the elimination swapped an odd number of times; use
// SignedDeterminant for the corrected value. The determinant of a 0×0
// matrix is 1.
//
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: O(n³).
func Determinant(a *matrix.Dense) (float64, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, gaussErrorf(opDeterminant, err)
	}
	m, _ := eliminate(a)

	return diagonalProduct(m), nil
}

// SignedDeterminant is Determinant multiplied by (-1)^swaps.
func SignedDeterminant(a *matrix.Dense) (float64, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, gaussErrorf(opDeterminant, err)
	}
	m, swaps := eliminate(a)
	det := diagonalProduct(m)
	if swaps%2 == 1 {
		det = -det
	}

	return det, nil
}

// Rank counts the leading rows of the max-element echelon form of a that
// are not all zero within ZeroTolerance, stopping at the first zero row.
// A nil matrix has rank 0.
func Rank(a *matrix.Dense) int {
	if a == nil {
		return 0
	}
	m, _ := eliminate(a)

	return echelonRank(m)
}

// echelonRank counts leading non-zero rows of an already eliminated matrix.
func echelonRank(m *matrix.Dense) int {
	rank := 0
	for rank < m.Rows() && !m.IsZeroRow(rank, ZeroTolerance) {
		rank++
	}

	return rank
}

// Inverse returns a⁻¹ computed by Gauss–Jordan elimination of [a | I].
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrSingular when |Determinant(a)| is
// within matrix.EqualityTolerance of zero.
// Complexity: O(n³).
func Inverse(a *matrix.Dense) (*matrix.Dense, error) {
	det, err := Determinant(a)
	if err != nil {
		return nil, gaussErrorf(opInverse, err)
	}
	if math.Abs(det) <= matrix.EqualityTolerance {
		return nil, gaussErrorf(opInverse, ErrSingular)
	}

	n := a.Rows()
	work := a.Clone()
	inv, err := matrix.Identity(n)
	if err != nil {
		return nil, gaussErrorf(opInverse, err)
	}
	if _, err = DirectMotion(work, inv, MaxElement{}); err != nil {
		return nil, gaussErrorf(opInverse, err)
	}
	if err = CounterMotion(work, inv); err != nil {
		return nil, gaussErrorf(opInverse, err)
	}

	return inv, nil
}
