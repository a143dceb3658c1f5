// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Without) for vertex deletion.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Without: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxWithout = "Without" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int64 weights.
//   - r,c hold dimensions (rows, cols); zero is legal (the empty graph).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>=0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrBadShape if rows < 0 or cols < 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewSquareFromRows copies row-oriented data into a new n×n Dense.
//
// Errors:
//   - ErrNonSquare if any row length differs from len(rows).
//
// The input is deep-copied: later mutation of rows never reaches the matrix.
// Complexity: Time O(n²), Space O(n²).
func NewSquareFromRows(rows [][]int64) (*Dense, error) {
	n := len(rows)
	d := &Dense{r: n, c: n, data: make([]int64, n*n)}

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("NewSquareFromRows: row %d has %d values, want %d: %w",
				i, len(rows[i]), n, ErrNonSquare)
		}
		copy(d.data[i*n:(i+1)*n], rows[i])
	}

	return d, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange for invalid indices.
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set writes v at (row, col).
// Errors: ErrOutOfRange for invalid indices.
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]int64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// RowsCopy materializes the matrix as freshly allocated row slices.
func (m *Dense) RowsCopy() [][]int64 {
	out := make([][]int64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]int64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Equal reports whether m and o have the same shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Without returns a copy of the square matrix with row k and column k deleted.
// Relative order of the remaining entries is preserved.
//
// Errors:
//   - ErrNonSquare if m is not square.
//   - ErrOutOfRange if k is not in [0, n).
//
// Complexity: Time O(n²), Space O(n²).
func (m *Dense) Without(k int) (*Dense, error) {
	if m.r != m.c {
		return nil, denseErrorf(ctxWithout, k, k, ErrNonSquare)
	}
	n := m.r
	if k < 0 || k >= n {
		return nil, denseErrorf(ctxWithout, k, k, ErrOutOfRange)
	}

	out := &Dense{r: n - 1, c: n - 1, data: make([]int64, (n-1)*(n-1))}
	var (
		i, j   int // source indices
		oi, oj int // destination indices
	)
	for i, oi = 0, 0; i < n; i++ {
		if i == k {
			continue
		}
		for j, oj = 0, 0; j < n; j++ {
			if j == k {
				continue
			}
			out.data[oi*out.c+oj] = m.data[i*n+j]
			oj++
		}
		oi++
	}

	return out, nil
}

// String renders the matrix one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
