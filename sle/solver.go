// SPDX-License-Identifier: MIT
// Package sle: elimination-based solver and the three-way classification.

package sle

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/gauss"
	"github.com/katalvlaran/gaussjordan/matrix"
)

// Solver solves A·x = f. Implementations must not mutate a or f.
type Solver func(a, f *matrix.Dense) (*matrix.Dense, error)

// Classification is the solution-set verdict for a system.
type Classification int

const (
	// Unique: exactly one solution.
	Unique Classification = iota
	// NoSolution: the system is inconsistent.
	NoSolution
	// Infinite: the system is consistent with free unknowns.
	Infinite
)

// String implements fmt.Stringer.
func (c Classification) String() string {
	switch c {
	case Unique:
		return "unique"
	case NoSolution:
		return "no_solution"
	case Infinite:
		return "infinite"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Classify applies the rank rule to a rows×cols system: rankAug is raised to
// at least rankA; rankA < rankAug is inconsistent; rankA < min(rows, cols)
// leaves free unknowns; anything else is unique.
func Classify(rankA, rankAug, rows, cols int) Classification {
	rankAug = max(rankAug, rankA)
	switch {
	case rankA < rankAug:
		return NoSolution
	case rankA < min(rows, cols):
		return Infinite
	default:
		return Unique
	}
}

// augmentedRank is 1 + the index of the bottom-most row of f that is not
// all zero within gauss.ZeroTolerance, or 0 when f is entirely zero.
func augmentedRank(f *matrix.Dense) int {
	for i := f.Rows() - 1; i >= 0; i-- {
		if !f.IsZeroRow(i, gauss.ZeroTolerance) {
			return i + 1
		}
	}

	return 0
}

// Solve reduces copies of (a, f) to reduced row echelon form with the given
// pivot strategy and classifies the system.
//
// On a Unique verdict it returns the transformed f: for a square full-rank a
// this is x, one column per column of f. Otherwise it returns a
// *ClassificationError wrapping ErrNoSolution or ErrInfiniteSolutions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ).
// Complexity: O(r·c·(c+k)).
func Solve(a, f *matrix.Dense, s gauss.Strategy) (*matrix.Dense, error) {
	if err := matrix.ValidateSameRows(a, f); err != nil {
		return nil, sleErrorf(opSolve, err)
	}
	ea, ef, _, err := gauss.GetDirectMotion(a, f, s)
	if err != nil {
		return nil, sleErrorf(opSolve, err)
	}
	if err = gauss.CounterMotion(ea, ef); err != nil {
		return nil, sleErrorf(opSolve, err)
	}

	rows, cols := a.Shape()
	rankA := gauss.Rank(ea)
	rankAug := max(augmentedRank(ef), rankA)
	if class := Classify(rankA, rankAug, rows, cols); class != Unique {
		return nil, &ClassificationError{Class: class, RankA: rankA, RankAug: rankAug, Unknowns: cols}
	}

	return ef, nil
}

// SolveNaive is Solve with gauss.Naive pivoting.
func SolveNaive(a, f *matrix.Dense) (*matrix.Dense, error) { return Solve(a, f, gauss.Naive{}) }

// SolveMaxElement is Solve with gauss.MaxElement pivoting; prefer it for
// ill-conditioned systems.
func SolveMaxElement(a, f *matrix.Dense) (*matrix.Dense, error) {
	return Solve(a, f, gauss.MaxElement{})
}

// ForPivot returns the elimination Solver for p.
func ForPivot(p gauss.Pivot) Solver {
	if p == gauss.PivotNaive {
		return SolveNaive
	}

	return SolveMaxElement
}

var (
	_ Solver = SolveNaive
	_ Solver = SolveMaxElement
)
