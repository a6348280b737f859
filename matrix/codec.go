// SPDX-License-Identifier: MIT
// Package matrix: text and JSON codecs.
//
// Formats:
//   - Format renders the bordered table written to answer files:
//     a dashed separator line, then "| v | v |" rows each followed by a separator.
//   - WriteText/ParseText use a plain whitespace layout: a "rows cols" header
//     line followed by one line per row.
//   - JSON marshals as a nested array of rows; matrices without elements
//     (0×N, N×0) marshal as {"rows":r,"cols":c} so their shape survives.

package matrix

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fractional digits used by Format callers
// that have no preference.
const DefaultPrecision = 2

// Format renders m as a bordered fixed-precision table. Columns are padded to
// the widest formatted value. Empty matrices render as "".
func (m *Dense) Format(prec int) string {
	if m.r == 0 || m.c == 0 {
		return ""
	}
	if prec < 0 {
		prec = DefaultPrecision
	}
	cells := make([]string, len(m.data))
	width := 0
	for k, v := range m.data {
		cells[k] = strconv.FormatFloat(v, 'f', prec, 64)
		width = max(width, len(cells[k]))
	}
	width++
	sep := strings.Repeat("-", width*m.c+2*m.c+1)

	var b strings.Builder
	b.WriteString(sep)
	b.WriteByte('\n')
	for i := 0; i < m.r; i++ {
		b.WriteByte('|')
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, " %-*s|", width, cells[i*m.c+j])
		}
		b.WriteByte('\n')
		b.WriteString(sep)
		b.WriteByte('\n')
	}

	return b.String()
}

// WriteText writes m as "rows cols" followed by one whitespace-separated line
// per row using the shortest round-tripping representation.
func WriteText(w io.Writer, m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("WriteText", err)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j, v := range m.row(i) {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// TextDecoder reads consecutive matrices in the WriteText layout from one
// stream.
type TextDecoder struct {
	sc *bufio.Scanner
}

// NewTextDecoder returns a decoder reading from r.
func NewTextDecoder(r io.Reader) *TextDecoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &TextDecoder{sc: sc}
}

func (d *TextDecoder) next() (string, bool) {
	if !d.sc.Scan() {
		return "", false
	}

	return d.sc.Text(), true
}

// Decode reads the next matrix. A missing header, a negative or overflowing
// shape, or fewer values than the header announces yields ErrInvalidShape;
// io.EOF is returned when the stream holds no further tokens.
//
// Values are buffered as they arrive, so a header announcing a huge shape
// never allocates more than the stream actually carries.
func (d *TextDecoder) Decode() (*Dense, error) {
	var dims [2]int
	for k := range dims {
		tok, ok := d.next()
		if !ok {
			if err := d.sc.Err(); err != nil {
				return nil, matrixErrorf("ParseText", err)
			}
			if k == 0 {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("ParseText: missing header: %w", ErrInvalidShape)
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("ParseText: header %q: %w", tok, err)
		}
		dims[k] = n
	}
	rows, cols := dims[0], dims[1]
	if !checkShape(rows, cols) {
		return nil, fmt.Errorf("ParseText(%d,%d): %w", rows, cols, ErrInvalidShape)
	}

	total := rows * cols
	data := make([]float64, 0, min(total, 1<<12))
	for k := 0; k < total; k++ {
		tok, ok := d.next()
		if !ok {
			if err := d.sc.Err(); err != nil {
				return nil, matrixErrorf("ParseText", err)
			}
			return nil, fmt.Errorf("ParseText: got %d of %d values: %w", k, total, ErrInvalidShape)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseText: value %d: %w", k, err)
		}
		data = append(data, v)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// ParseText reads one matrix in the layout produced by WriteText. An empty
// stream yields ErrInvalidShape.
func ParseText(r io.Reader) (*Dense, error) {
	m, err := NewTextDecoder(r).Decode()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ParseText: missing header: %w", ErrInvalidShape)
	}

	return m, err
}

// jsonShape is the encoding of matrices with no elements, whose shape a
// nested row array cannot carry.
type jsonShape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// MarshalJSON encodes m as a nested array of rows, or as {"rows":r,"cols":c}
// when m has no elements.
func (m *Dense) MarshalJSON() ([]byte, error) {
	if m.r == 0 || m.c == 0 {
		return json.Marshal(jsonShape{Rows: m.r, Cols: m.c})
	}

	return json.Marshal(m.ToRows())
}

// UnmarshalJSON decodes either form produced by MarshalJSON, rejecting ragged
// rows and invalid shapes. A bare [] decodes as 0×0.
func (m *Dense) UnmarshalJSON(b []byte) error {
	if t := bytes.TrimSpace(b); len(t) > 0 && t[0] == '{' {
		var sh jsonShape
		if err := json.Unmarshal(t, &sh); err != nil {
			return err
		}
		if sh.Rows != 0 && sh.Cols != 0 {
			return fmt.Errorf("UnmarshalJSON: shape %dx%d without rows: %w", sh.Rows, sh.Cols, ErrInvalidShape)
		}
		d, err := NewDense(sh.Rows, sh.Cols, 0)
		if err != nil {
			return err
		}
		*m = *d

		return nil
	}

	var rows [][]float64
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	d, err := FromRows(rows)
	if err != nil {
		return err
	}
	*m = *d

	return nil
}
