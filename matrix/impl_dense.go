// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce finite-only values from a single source of truth.
//
// AI-Hints:
//   - Node property matrices and adjacency matrices of a network are both *Dense.
//   - Propensity tables of the simulation engine are *Dense scanned with Do (row-major).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Sum: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxAdd     = "Add"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxSetRow  = "SetRow"  // method tag used in error wrappers
	ctxFromRow = "FromRow" // ctor tag for NewFromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns the n×n identity matrix.
// It is the default adjacency of a freshly built network (self entries only).
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewFromRows copies a row-literal [][]float64 into a new Dense.
// MAIN DESCRIPTION:
//   - Ingest caller-supplied rows, validating shape and numeric policy first.
//
// Implementation:
//   - Stage 1: reject empty input or empty first row (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows (ErrDimensionMismatch) and NaN/Inf (ErrNaNInf).
//   - Stage 3: copy row by row.
//
// Behavior highlights:
//   - The result never aliases the input slices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d columns, want %d: %w",
				ctxFromRow, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxFromRow, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set/Add) wrap the sentinel with coordinates.
// Complexity: O(1).
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
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Add increments the value at (row, col) by delta.
// Used for multiplicity bookkeeping (edge counts) where read-modify-write
// through At/Set would double the bounds checks.
// Complexity: O(1).
func (m *Dense) Add(row, col int, delta float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAdd, row, col, err)
	}
	nv := m.data[off] + delta
	if math.IsNaN(nv) || math.IsInf(nv, 0) {
		return denseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[off] = nv

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow replaces row i with v, validating length and numeric policy before
// any write (all-or-nothing).
//
// Errors:
//   - ErrOutOfRange (bad row), ErrDimensionMismatch (len(v) != Cols()), ErrNaNInf.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SetRow(i int, v []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(v) != m.c {
		return denseErrorf(ctxSetRow, i, len(v), ErrDimensionMismatch)
	}
	var j int
	for j = 0; j < m.c; j++ {
		if math.IsNaN(v[j]) || math.IsInf(v[j], 0) {
			return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// Fill overwrites every element with v (no policy check; callers pass constants).
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	var k int
	for k = range m.data {
		m.data[k] = v
	}
}

// Clone returns a deep copy. Mutations of the copy never affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows exports the matrix as freshly allocated row slices.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Sum returns the sum of all elements using Neumaier compensated summation.
// MAIN DESCRIPTION:
//   - Drift-resistant total used for periodic re-derivation of running sums
//     that are otherwise maintained incrementally.
//
// Implementation:
//   - Stage 1: row-major scan.
//   - Stage 2: carry the lost low-order bits in a compensation term.
//
// Determinism:
//   - Fixed i→j order; identical inputs give bitwise identical results.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Sum() float64 {
	return compensatedSum(m.data)
}

// compensatedSum is Neumaier's variant of Kahan summation.
func compensatedSum(xs []float64) float64 {
	var sum, comp, t float64
	for _, x := range xs {
		t = sum + x
		if math.Abs(sum) >= math.Abs(x) {
			comp += (sum - t) + x
		} else {
			comp += (x - t) + sum
		}
		sum = t
	}

	return sum + comp
}

// String HUMAN-READABLE dump of rows for diagnostics.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//   - One line per row: "[a, b, c]".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
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

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order. The simulation engine relies on this order for
//     reproducible event selection.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}
