// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set.

package gauss

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
)

var (
	// ErrNotEchelonForm is returned by CounterMotion when the leading non-zero
	// columns of A do not strictly increase from row to row.
	ErrNotEchelonForm = errors.New("gauss: matrix is not in row echelon form")

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported so
	// callers of this package need not import matrix just to match it.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNotSquare is matrix.ErrNotSquare (Determinant, Inverse).
	ErrNotSquare = matrix.ErrNotSquare

	// ErrSingular is matrix.ErrSingular (Inverse).
	ErrSingular = matrix.ErrSingular
)

// Operation tags.
const (
	opDirectMotion  = "DirectMotion"
	opCounterMotion = "CounterMotion"
	opDeterminant   = "Determinant"
	opInverse       = "Inverse"
)

// gaussErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
