// SPDX-License-Identifier: MIT
// Package gauss: pivot strategies.

package gauss

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// ZeroTolerance is the absolute threshold below which an entry is treated as
// zero by elimination decisions (pivot search, echelon checks, rank readout).
const ZeroTolerance = 1e-9

// IsZero reports whether |v| <= ZeroTolerance.
func IsZero(v float64) bool { return math.Abs(v) <= ZeroTolerance }

// Strategy selects the pivot row for column col, searching rows row..Rows()-1.
// It returns the chosen row index, or a.Rows() when every candidate is zero
// within ZeroTolerance. Callers guarantee 0 <= row < Rows() and 0 <= col < Cols().
type Strategy interface {
	FindPivot(row, col int, a *matrix.Dense) int
}

// Naive picks the first row whose entry in col is non-zero.
type Naive struct{}

// FindPivot implements Strategy.
func (Naive) FindPivot(row, col int, a *matrix.Dense) int {
	rows := a.Rows()
	for r := row; r < rows; r++ {
		if !IsZero(a.MustRow(r)[col]) {
			return r
		}
	}

	return rows
}

// MaxElement picks the row with the largest |a[r][col]| (partial pivoting).
// Ties keep the earliest row. A column whose maximum is zero yields "not found".
type MaxElement struct{}

// FindPivot implements Strategy.
func (MaxElement) FindPivot(row, col int, a *matrix.Dense) int {
	rows := a.Rows()
	if row >= rows {
		return rows
	}
	pivot := row
	best := math.Abs(a.MustRow(row)[col])
	for r := row + 1; r < rows; r++ {
		if v := math.Abs(a.MustRow(r)[col]); best < v {
			pivot, best = r, v
		}
	}
	if IsZero(best) {
		return rows
	}

	return pivot
}

// Pivot names a built-in Strategy, for configuration surfaces.
type Pivot int

const (
	// PivotNaive selects Naive.
	PivotNaive Pivot = iota
	// PivotMaxElement selects MaxElement.
	PivotMaxElement
)

// Strategy returns the implementation for p. Unknown values fall back to MaxElement.
func (p Pivot) Strategy() Strategy {
	if p == PivotNaive {
		return Naive{}
	}

	return MaxElement{}
}

// String returns "naive" or "max_element".
func (p Pivot) String() string {
	switch p {
	case PivotNaive:
		return "naive"
	case PivotMaxElement:
		return "max_element"
	default:
		return fmt.Sprintf("Pivot(%d)", int(p))
	}
}

// ParsePivot maps "naive" / "max_element" (case-insensitive, '-' accepted) to a Pivot.
func ParsePivot(s string) (Pivot, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "naive", "usual":
		return PivotNaive, nil
	case "max_element", "max", "partial":
		return PivotMaxElement, nil
	default:
		return 0, fmt.Errorf("gauss: unknown pivot strategy %q", s)
	}
}
