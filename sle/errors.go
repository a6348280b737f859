// SPDX-License-Identifier: MIT
// Package sle: sentinel errors and their structured carriers.

package sle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
)

var (
	// ErrNoSolution reports an inconsistent system: rank(A) < rank(A|f).
	ErrNoSolution = errors.New("sle: system has no solutions")

	// ErrInfiniteSolutions reports a consistent system with free unknowns.
	ErrInfiniteSolutions = errors.New("sle: system has infinitely many solutions")

	// ErrDivergent reports that SOR produced a NaN or infinite estimate.
	ErrDivergent = errors.New("sle: iteration diverged")

	// ErrInvalidParameter reports a nonsensical numeric argument
	// (negative perturbation, non-positive sweep step).
	ErrInvalidParameter = errors.New("sle: invalid parameter")

	// ErrNotSquare is matrix.ErrNotSquare.
	ErrNotSquare = matrix.ErrNotSquare

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// ClassificationError carries the ranks behind a NoSolution or Infinite verdict.
// It unwraps to ErrNoSolution or ErrInfiniteSolutions.
type ClassificationError struct {
	Class    Classification
	RankA    int // rank of the reduced coefficient matrix
	RankAug  int // rank of the augmented system, max(RankA, last non-zero row of f + 1)
	Unknowns int // columns of A
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%v (rank A=%d, rank A|f=%d, unknowns=%d)",
		e.Unwrap(), e.RankA, e.RankAug, e.Unknowns)
}

// Unwrap returns the sentinel matching Class.
func (e *ClassificationError) Unwrap() error {
	if e.Class == NoSolution {
		return ErrNoSolution
	}

	return ErrInfiniteSolutions
}

// DivergenceError locates the first non-finite SOR estimate.
type DivergenceError struct {
	Iteration int // 1-based
	Row       int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("%v: non-finite estimate at iteration %d, row %d",
		ErrDivergent, e.Iteration, e.Row)
}

// Unwrap returns ErrDivergent.
func (e *DivergenceError) Unwrap() error { return ErrDivergent }

// Operation tags.
const (
	opSolve          = "Solve"
	opSOR            = "SOR"
	opStability      = "Stability"
	opBestRelaxation = "BestRelaxation"
)

func sleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
