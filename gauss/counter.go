// SPDX-License-Identifier: MIT
// Package gauss: backward pass (counter motion) to reduced row echelon form.

package gauss

import (
	"github.com/katalvlaran/gaussjordan/matrix"
)

// leadingColumn returns the index of the first entry of row that is non-zero
// within ZeroTolerance, or len(row) for an all-zero row.
func leadingColumn(row []float64) int {
	for j, v := range row {
		if !IsZero(v) {
			return j
		}
	}

	return len(row)
}

// IsEchelon reports whether the leading non-zero column strictly increases
// from row to row. All-zero rows are skipped by the check.
func IsEchelon(a *matrix.Dense) bool {
	if a == nil {
		return false
	}
	prev := -1
	for i := 0; i < a.Rows(); i++ {
		row := a.MustRow(i)
		lead := leadingColumn(row)
		if lead == len(row) {
			continue
		}
		if prev >= lead {
			return false
		}
		prev = lead
	}

	return true
}

// CounterMotion turns a row echelon a into reduced row echelon form in place,
// mirroring every operation on b. Rows are processed bottom-up: each non-zero
// row is divided by its leading entry (a from that column on, b entirely)
// and that column is then cleared in every row above.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch on a row-count conflict,
// ErrNotEchelonForm when a is not in row echelon form. Inputs are untouched
// on error.
func CounterMotion(a, b *matrix.Dense) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return gaussErrorf(opCounterMotion, err)
	}
	b = companion(a, b)
	if err := matrix.ValidateSameRows(a, b); err != nil {
		return gaussErrorf(opCounterMotion, err)
	}
	if !IsEchelon(a) {
		return gaussErrorf(opCounterMotion, ErrNotEchelonForm)
	}

	cols := a.Cols()
	var up, j int
	for row := a.Rows() - 1; row >= 0; row-- {
		ar, br := a.MustRow(row), b.MustRow(row)
		lead := leadingColumn(ar)
		if lead == cols {
			continue
		}

		p := ar[lead]
		ar[lead] = 1
		for j = lead + 1; j < cols; j++ {
			ar[j] /= p
		}
		for j = range br {
			br[j] /= p
		}

		for up = 0; up < row; up++ {
			au, bu := a.MustRow(up), b.MustRow(up)
			coef := au[lead]
			if coef == 0 {
				continue
			}
			au[lead] = 0
			for j = lead + 1; j < cols; j++ {
				au[j] -= coef * ar[j]
			}
			for j = range bu {
				bu[j] -= coef * br[j]
			}
		}
	}

	return nil
}

// GetCounterMotion is CounterMotion on copies of a and b.
func GetCounterMotion(a, b *matrix.Dense) (ra, rb *matrix.Dense, err error) {
	if err = matrix.ValidateNotNil(a); err != nil {
		return nil, nil, gaussErrorf(opCounterMotion, err)
	}
	ra = a.Clone()
	rb = companion(a, b).Clone()
	if err = CounterMotion(ra, rb); err != nil {
		return nil, nil, err
	}

	return ra, rb, nil
}
