// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common shape checks.
//  - Keep kernels in this package and in gauss/sle minimal by delegating
//    nil/shape guards here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Shape violations are reported as *ShapeError so callers can inspect the
//    offending dimensions with errors.As.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape", mismatch("SameShape", a, b))
	}

	return nil
}

// ValidateSameRows ensures a and b have the same number of rows, the
// precondition of every lockstep row operation on a coefficient matrix and its
// companion.
func ValidateSameRows(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameRows", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameRows", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameRows", mismatch("SameRows", a, b))
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNotSquare (inside *ShapeError).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", &ShapeError{
			Op: "Square", ARows: m.r, ACols: m.c, BRows: m.r, BCols: m.c, Err: ErrNotSquare,
		})
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}
