// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Expose row views so elimination kernels can run flat loops over a single row.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set/Row: O(1); SwapRows: O(c); Clone/Transpose: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxSwapRows = "SwapRows"
	ctxResize   = "Resize"
	ctxFromRows = "FromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// maxElements bounds rows*cols so the backing buffer length (and its byte
// size) never overflows int.
const maxElements = math.MaxInt / 8

// checkShape rejects negative dimensions and shapes whose element count would
// overflow the backing buffer.
func checkShape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return cols == 0 || rows <= maxElements/cols
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an rows×cols matrix with every element set to fill.
//
// Zero rows or zero columns are legal; negative dimensions and shapes whose
// element count overflows int return ErrInvalidShape.
// Complexity: O(rows*cols).
func NewDense(rows, cols int, fill float64) (*Dense, error) {
	if !checkShape(rows, cols) {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidShape)
	}
	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	if fill != 0 {
		m.fill(fill)
	}

	return m, nil
}

// NewZeros returns a zero-initialized rows×cols matrix.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols, 0) }

// FromRows builds a Dense from a rectangular literal, copying the values.
//
// Behavior highlights:
//   - An empty literal yields a 0×0 matrix.
//   - Rows of differing lengths return ErrInvalidShape naming the first offender.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), cols, ErrInvalidShape)
		}
	}
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// MustFromRows is FromRows for literals known to be rectangular; it panics on
// ErrInvalidShape. Intended for package-level fixtures and examples.
func MustFromRows(rows [][]float64) *Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Column builds an n×1 matrix from values (the usual right-hand-side shape).
func Column(values ...float64) *Dense {
	m := &Dense{r: len(values), c: 1, data: make([]float64, len(values))}
	copy(m.data, values)

	return m
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a mutable view of row i backed by the matrix storage.
// Writes through the slice are visible in m. The view's capacity is clipped to
// the row, so append never clobbers the next row.
//
// Errors: ErrOutOfRange when i<0 or i>=Rows().
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return m.row(i), nil
}

// RowCopy returns an independent copy of row i (the read-only access path).
func (m *Dense) RowCopy(i int) ([]float64, error) {
	r, err := m.Row(i)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(r))
	copy(out, r)

	return out, nil
}

// row is the unchecked row view used by kernels that validated bounds upfront.
func (m *Dense) row(i int) []float64 {
	lo := i * m.c
	hi := lo + m.c

	return m.data[lo:hi:hi]
}

// MustRow returns the row view of a row index the caller has already
// validated against Rows(). It panics on an out-of-range index, the same way
// slice indexing does.
func (m *Dense) MustRow(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(denseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}

	return m.row(i)
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri, rj := m.row(i), m.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// Resize reshapes m to rows×cols, discarding existing data and filling every
// element with fill. Row views taken before the call are invalidated.
func (m *Dense) Resize(rows, cols int, fill float64) error {
	if !checkShape(rows, cols) {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxResize, rows, cols, ErrInvalidShape)
	}
	m.r, m.c = rows, cols
	m.data = make([]float64, rows*cols)
	if fill != 0 {
		m.fill(fill)
	}

	return nil
}

// Fit refills m with fill keeping its current shape.
func (m *Dense) Fit(fill float64) { m.fill(fill) }

func (m *Dense) fill(v float64) {
	for k := range m.data {
		m.data[k] = v
	}
}

// Transpose transposes m in place: the result has swapped dimensions and
// m[i][j] becomes the former m[j][i].
// Complexity: O(r*c) time, O(r*c) scratch.
func (m *Dense) Transpose() {
	out := make([]float64, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[base+j]
		}
	}
	m.r, m.c = m.c, m.r
	m.data = out
}

// T returns a transposed copy of m, leaving m untouched.
func (m *Dense) T() *Dense {
	cp := m.Clone()
	cp.Transpose()

	return cp
}

// Clone returns a deep copy (new buffer, same shape).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// CopyFrom overwrites m with a deep copy of src, adopting its shape.
func (m *Dense) CopyFrom(src *Dense) {
	m.r, m.c = src.r, src.c
	m.data = make([]float64, len(src.data))
	copy(m.data, src.data)
}

// ToRows returns the contents as a freshly allocated nested slice.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// String provides a readable row-wise dump for diagnostics.
// Format: one "[a, b, c]" line per row.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
