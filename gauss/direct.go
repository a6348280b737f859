// SPDX-License-Identifier: MIT
// Package gauss: forward elimination (direct motion).

package gauss

import (
	"github.com/katalvlaran/gaussjordan/matrix"
)

// companion returns b, or an explicit rows×0 matrix when b is nil.
func companion(a, b *matrix.Dense) *matrix.Dense {
	if b != nil {
		return b
	}
	empty, _ := matrix.NewZeros(a.Rows(), 0) // rows >= 0 always

	return empty
}

// DirectMotion reduces a to row echelon form in place, applying every row
// operation to b in lockstep, and returns the number of row swaps performed.
//
// The column pointer only moves forward: a column found to have no pivot at
// or below the current row is never revisited. When the columns run out the
// pass stops early. b may be nil (no companion); otherwise it must have the
// same row count as a.
//
// Errors: ErrNilMatrix when a is nil, ErrDimensionMismatch on a row-count conflict.
// Complexity: O(min(r,c)·r·(c+k)) for a k-column companion.
func DirectMotion(a, b *matrix.Dense, s Strategy) (int, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, gaussErrorf(opDirectMotion, err)
	}
	b = companion(a, b)
	if err := matrix.ValidateSameRows(a, b); err != nil {
		return 0, gaussErrorf(opDirectMotion, err)
	}
	if s == nil {
		s = MaxElement{}
	}

	rows, cols := a.Shape()
	steps := min(rows, cols)
	swaps := 0
	col := 0
	var pivot, below, j int
	for row := 0; row < steps; row++ {
		// Advance to the first column that still has a pivot at or below row.
		for pivot = rows; col < cols; col++ {
			if pivot = s.FindPivot(row, col, a); pivot < rows {
				break
			}
		}
		if col >= cols {
			break
		}

		if pivot != row {
			_ = a.SwapRows(row, pivot) // both indices are in range
			_ = b.SwapRows(row, pivot)
			swaps++
		}

		ar, br := a.MustRow(row), b.MustRow(row)
		lead := ar[col]
		for below = row + 1; below < rows; below++ {
			ab, bb := a.MustRow(below), b.MustRow(below)
			coef := ab[col] / lead
			if coef == 0 {
				continue
			}
			ab[col] = 0
			for j = col + 1; j < cols; j++ {
				ab[j] -= coef * ar[j]
			}
			for j = range bb {
				bb[j] -= coef * br[j]
			}
		}
		col++
	}

	return swaps, nil
}

// GetDirectMotion is DirectMotion on copies: a and b are left untouched and
// the transformed pair is returned together with the swap count. A nil b
// yields a rows×0 companion in the result.
func GetDirectMotion(a, b *matrix.Dense, s Strategy) (ra, rb *matrix.Dense, swaps int, err error) {
	if err = matrix.ValidateNotNil(a); err != nil {
		return nil, nil, 0, gaussErrorf(opDirectMotion, err)
	}
	ra = a.Clone()
	rb = companion(a, b).Clone()
	if swaps, err = DirectMotion(ra, rb, s); err != nil {
		return nil, nil, 0, err
	}

	return ra, rb, swaps, nil
}
