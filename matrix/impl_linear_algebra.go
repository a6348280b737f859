// SPDX-License-Identifier: MIT
// Package matrix provides whole-matrix arithmetic on Dense values:
// element-wise addition and subtraction, matrix multiplication, scaling and
// tolerance-based equality. All functions perform strict fail-fast validation
// and return ErrDimensionMismatch (inside a *ShapeError) on shape conflicts.
//
// Notes:
//   - Operands are never mutated; results are freshly allocated.
//   - Loops run over the flat row-major buffers in fixed i→k→j order.

package matrix

import "math"

// EqualityTolerance is the absolute per-element tolerance used by Equal and by
// derived computations that compare against zero (e.g. the singularity check
// in Inverse). It is intentionally looser than the elimination tolerance.
const EqualityTolerance = 1e-5

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opScale    = "Scale"
	opIdentity = "Identity"
)

// addSub is the shared kernel for Add/Sub: C = A + sign*B.
func addSub(a, b *Dense, sign float64, op string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for k := range a.data {
		out.data[k] = a.data[k] + sign*b.data[k]
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Requires a.Cols() == b.Rows(); the result is a.Rows()×b.Cols().
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, mismatch(opMul, a, b))
	}
	n, inner, p := a.r, a.c, b.c
	out := &Dense{r: n, c: p, data: make([]float64, n*p)}
	var i, k, j int
	var aik float64
	for i = 0; i < n; i++ {
		orow := out.data[i*p : (i+1)*p]
		for k = 0; k < inner; k++ {
			aik = a.data[i*inner+k]
			if aik == 0 {
				continue
			}
			brow := b.data[k*p : (k+1)*p]
			for j = 0; j < p; j++ {
				orow[j] += aik * brow[j]
			}
		}
	}

	return out, nil
}

// Scale returns alpha*m as a new matrix.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// Identity returns the n×n identity matrix I_n.
// Negative n returns ErrInvalidShape.
func Identity(n int) (*Dense, error) {
	I, err := NewDense(n, n, 0)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// Equal reports whether a and b have the same shape and every pair of
// elements differs by at most EqualityTolerance.
func Equal(a, b *Dense) bool { return EqualTol(a, b, EqualityTolerance) }

// EqualTol is Equal with an explicit absolute tolerance. NaN never compares equal.
func EqualTol(a, b *Dense, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !(math.Abs(a.data[k]-b.data[k]) <= tol) {
			return false
		}
	}

	return true
}

// IsZeroRow reports whether every element of row i is within tol of zero.
// Rows outside the matrix report false.
func (m *Dense) IsZeroRow(i int, tol float64) bool {
	if i < 0 || i >= m.r {
		return false
	}
	for _, v := range m.row(i) {
		if math.Abs(v) > tol {
			return false
		}
	}

	return true
}

// Diagonal returns the main diagonal (length min(rows, cols)).
func (m *Dense) Diagonal() []float64 {
	n := min(m.r, m.c)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// IsFinite reports whether every element is neither NaN nor ±Inf.
func (m *Dense) IsFinite() bool {
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
