// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/AddAt return errors instead of panicking.
//   - Offer both traversal orders the sparse engine needs: Do (row-major) and
//     DoColumns (column-major), each with a deterministic fixed loop order.
//
// Complexity quicksheet:
//   - NewDense/NewZeros: O(r*c) zero-init; At/Set/AddAt: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxAddAt = "AddAt" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over a Scalar element type.
//   - r,c hold dimensions (rows, cols); zero is legal (empty matrices).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Scalar] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64]    = (*Dense[float64])(nil)
	_ Matrix[int]        = (*Dense[int])(nil)
	_ Matrix[complex128] = (*Dense[complex128])(nil)
	_ fmt.Stringer       = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions; use NewZeros when 0×N or N×0 is meaningful
//     (e.g. the dense realisation of an empty sparse matrix).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK[T](rows, cols), nil
}

// NewZeros returns an r×c zero matrix and, unlike NewDense, accepts zero
// dimensions. Negative dimensions yield ErrInvalidDimensions.
// Complexity: O(r*c).
func NewZeros[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK[T](rows, cols), nil
}

// newDenseZeroOK allocates without validation; callers guarantee rows,cols >= 0.
func newDenseZeroOK[T Scalar](rows, cols int) *Dense[T] {
	// make() zero-fills deterministically; len may be zero.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewDenseFromSlice copies a row-major slice into a new rows×cols Dense.
//
// Errors:
//   - ErrInvalidDimensions for negative dimensions.
//   - ErrBadShape when len(data) != rows*cols.
//
// Complexity: O(r*c).
func NewDenseFromSlice[T Scalar](rows, cols int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFromSlice(%d,%d): len=%d: %w", rows, cols, len(data), ErrBadShape)
	}
	m := newDenseZeroOK[T](rows, cols)
	copy(m.data, data) // detach from caller's buffer

	return m, nil
}

// NewDenseFromRows builds a Dense from a slice of equally long rows.
// An empty input yields a 0×0 matrix.
//
// Errors:
//   - ErrBadShape when rows are ragged.
//
// Complexity: O(r*c).
func NewDenseFromRows[T Scalar](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return newDenseZeroOK[T](0, 0), nil
	}
	c := len(rows[0])
	m := newDenseZeroOK[T](r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cols, want %d: %w", i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a Shape value, the same form the
// sparse containers report.
// Complexity: O(1).
func (m *Dense[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap with coordinates and method name.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
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
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// AddAt accumulates v into (row, col): m[row,col] += v.
// MAIN DESCRIPTION:
//   - Accumulating write; this is how duplicate sparse entries collapse
//     under addition when a sparse matrix is materialised densely.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) AddAt(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAddAt, row, col, err)
	}
	m.data[off] += v

	return nil
}

// Clone returns a deep copy (new buffer).
// The returned dynamic type is *Dense[T].
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	return m.Copy()
}

// Copy is Clone with the concrete return type.
// Complexity: O(r*c).
func (m *Dense[T]) Copy() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// RawRowMajor exposes the backing row-major buffer (len Rows()*Cols()).
// The slice is shared: writes are visible through At. Intended for
// fast-paths in sibling packages; prefer At/Set elsewhere.
func (m *Dense[T]) RawRowMajor() []T { return m.data }

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// DoColumns visits each element in column-major order: all rows of column 0,
// then column 1, and so on. Stops early when f returns false.
// MAIN DESCRIPTION:
//   - Full-element traversal in the order the sparse dense→COO conversion
//     promises to its callers.
//
// Implementation:
//   - Outer loop over columns, inner loop over rows; strided reads of the
//     row-major buffer (offset i*c + j).
//
// Determinism:
//   - Fixed j→i order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) DoColumns(f func(i, j int, v T) bool) {
	var i, j int

	for j = 0; j < m.c; j++ { // iterate columns deterministically
		for i = 0; i < m.r; i++ { // then rows within the column
			if !f(i, j, m.data[i*m.c+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
