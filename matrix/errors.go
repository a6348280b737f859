// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (optionally wrapped with context) and
// tests check them via errors.Is. No function panics on user-triggered input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrInvalidShape is returned for negative dimensions or ragged literals.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// determinant is zero within EqualityTolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ShapeError carries the operand shapes of a failed shape check.
// It unwraps to its sentinel (ErrDimensionMismatch or ErrNotSquare), so callers
// keep matching with errors.Is and may use errors.As for the dimensions.
type ShapeError struct {
	Op           string // operation tag, e.g. "Mul"
	ARows, ACols int    // left operand shape
	BRows, BCols int    // right operand shape (equal to A for unary checks)
	Err          error  // sentinel
}

// Error formats "Op: AxB vs CxD: sentinel".
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %dx%d vs %dx%d: %v", e.Op, e.ARows, e.ACols, e.BRows, e.BCols, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ShapeError) Unwrap() error { return e.Err }

// mismatch builds a ShapeError for a binary operation.
func mismatch(op string, a, b *Dense) error {
	return &ShapeError{Op: op, ARows: a.r, ACols: a.c, BRows: b.r, BCols: b.c, Err: ErrDimensionMismatch}
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
