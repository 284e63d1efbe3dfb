// SPDX-License-Identifier: MIT

// Package sparse - coordinate (triplet) container.
//
// Purpose:
//   - Append-only, duplicate-tolerant (row, col, value) store; the natural
//     format for assembling a sparse matrix before compressing it.
//   - Insertion order is preserved; no sortedness is promised.
//
// Invariants:
//   - every row index < nrows, every col index < ncols;
//   - the three parallel slices always have identical length.
//
// Complexity quicksheet:
//   - Push: amortised O(1); PushMatrix: O(r*c); Triplets: O(nnz).

package sparse

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/lvsparse/matrix"
)

// Triplet is one (row, col, value) entry.
type Triplet[T matrix.Scalar] struct {
	Row, Col int
	Value    T
}

// CooMatrix is a sparse matrix in coordinate format.
// Duplicate (row, col) pairs are allowed; they are resolved only when the
// matrix is materialised (summed) or compressed (combined).
type CooMatrix[T matrix.Scalar] struct {
	nrows, ncols int
	rowIdx       []int
	colIdx       []int
	values       []T
}

// NewCoo returns an empty nrows×ncols COO matrix.
// Zero dimensions are legal; negative ones yield ErrInvalidShape.
// Only WithCapacity applies here; WithCombinator has no effect until the
// matrix is compressed, so pass it to CSRFromCoo / CSCFromCoo instead.
func NewCoo[T matrix.Scalar](nrows, ncols int, opts ...Option[T]) (*CooMatrix[T], error) {
	if nrows < 0 || ncols < 0 {
		return nil, fmt.Errorf("NewCoo(%d,%d): %w", nrows, ncols, ErrInvalidShape)
	}
	o := gatherOptions(opts...)

	return &CooMatrix[T]{
		nrows:  nrows,
		ncols:  ncols,
		rowIdx: make([]int, 0, o.capacity),
		colIdx: make([]int, 0, o.capacity),
		values: make([]T, 0, o.capacity),
	}, nil
}

// TryFromTriplets builds a COO matrix from parallel slices, taking ownership
// of them (the caller must not modify them afterwards).
//
// Errors:
//   - ErrInvalidShape for negative dimensions;
//   - ErrLengthMismatch when the slices differ in length;
//   - ErrIndexOutOfBounds for any row >= nrows or col >= ncols (or negative).
//
// Complexity: O(nnz).
func TryFromTriplets[T matrix.Scalar](nrows, ncols int, rows, cols []int, values []T) (*CooMatrix[T], error) {
	if nrows < 0 || ncols < 0 {
		return nil, fmt.Errorf("TryFromTriplets(%d,%d): %w", nrows, ncols, ErrInvalidShape)
	}
	if len(rows) != len(cols) || len(cols) != len(values) {
		return nil, fmt.Errorf("TryFromTriplets: rows=%d cols=%d values=%d: %w",
			len(rows), len(cols), len(values), ErrLengthMismatch)
	}
	for k := range rows {
		if rows[k] < 0 || rows[k] >= nrows || cols[k] < 0 || cols[k] >= ncols {
			return nil, fmt.Errorf("TryFromTriplets: triplet %d at (%d,%d) in %d×%d: %w",
				k, rows[k], cols[k], nrows, ncols, ErrIndexOutOfBounds)
		}
	}

	return &CooMatrix[T]{nrows: nrows, ncols: ncols, rowIdx: rows, colIdx: cols, values: values}, nil
}

// Rows returns the number of rows. O(1).
func (m *CooMatrix[T]) Rows() int { return m.nrows }

// Cols returns the number of columns. O(1).
func (m *CooMatrix[T]) Cols() int { return m.ncols }

// Shape returns (rows, cols). O(1).
func (m *CooMatrix[T]) Shape() matrix.Shape { return matrix.Shape{Rows: m.nrows, Cols: m.ncols} }

// NNZ returns the number of stored triplets, duplicates included. O(1).
func (m *CooMatrix[T]) NNZ() int { return len(m.values) }

// RowIndices returns the stored row indices in insertion order (shared; do not modify).
func (m *CooMatrix[T]) RowIndices() []int { return m.rowIdx }

// ColIndices returns the stored column indices in insertion order (shared; do not modify).
func (m *CooMatrix[T]) ColIndices() []int { return m.colIdx }

// Values returns the stored values in insertion order (shared; do not modify).
func (m *CooMatrix[T]) Values() []T { return m.values }

// Push appends the triplet (i, j, v). Zero values are stored as given.
// Returns ErrIndexOutOfBounds when (i, j) lies outside the shape; the matrix
// is left untouched in that case.
func (m *CooMatrix[T]) Push(i, j int, v T) error {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return fmt.Errorf("CooMatrix.Push(%d,%d) in %d×%d: %w", i, j, m.nrows, m.ncols, ErrIndexOutOfBounds)
	}
	m.rowIdx = append(m.rowIdx, i)
	m.colIdx = append(m.colIdx, j)
	m.values = append(m.values, v)

	return nil
}

// PushMatrix appends every element of block (zeros included) as a triplet,
// with the block's (0, 0) placed at (r, c). Elements are appended in
// column-major order of the block.
//
// The whole block must fit; otherwise ErrIndexOutOfBounds is returned and
// nothing is appended.
//
// Complexity: O(block rows * block cols).
func (m *CooMatrix[T]) PushMatrix(r, c int, block matrix.Matrix[T]) error {
	if err := matrix.ValidateNotNil(block); err != nil {
		return sparseErrorf("CooMatrix.PushMatrix", ErrNilMatrix)
	}
	br, bc := block.Rows(), block.Cols()
	if r < 0 || c < 0 || r > m.nrows-br || c > m.ncols-bc {
		return fmt.Errorf("CooMatrix.PushMatrix: %d×%d block at (%d,%d) in %d×%d: %w",
			br, bc, r, c, m.nrows, m.ncols, ErrIndexOutOfBounds)
	}

	m.rowIdx = slices.Grow(m.rowIdx, br*bc)
	m.colIdx = slices.Grow(m.colIdx, br*bc)
	m.values = slices.Grow(m.values, br*bc)
	n := len(m.values)
	err := eachColumnMajor(block, func(i, j int, v T) {
		m.rowIdx = append(m.rowIdx, r+i)
		m.colIdx = append(m.colIdx, c+j)
		m.values = append(m.values, v)
	})
	if err != nil {
		// Roll back to keep the all-or-nothing contract.
		m.rowIdx, m.colIdx, m.values = m.rowIdx[:n], m.colIdx[:n], m.values[:n]
		return sparseErrorf("CooMatrix.PushMatrix", err)
	}

	return nil
}

// Triplets yields the stored entries in insertion order.
func (m *CooMatrix[T]) Triplets() iter.Seq[Triplet[T]] {
	return func(yield func(Triplet[T]) bool) {
		for k := range m.values {
			if !yield(Triplet[T]{Row: m.rowIdx[k], Col: m.colIdx[k], Value: m.values[k]}) {
				return
			}
		}
	}
}

// Disassemble hands the three parallel slices to the caller and leaves m
// empty (same shape, no entries). This is how conversions consume a COO
// matrix without keeping two copies of its data alive.
func (m *CooMatrix[T]) Disassemble() (rows, cols []int, values []T) {
	rows, cols, values = m.rowIdx, m.colIdx, m.values
	m.rowIdx, m.colIdx, m.values = nil, nil, nil

	return rows, cols, values
}

// Clone returns an independent deep copy.
func (m *CooMatrix[T]) Clone() *CooMatrix[T] {
	return &CooMatrix[T]{
		nrows:  m.nrows,
		ncols:  m.ncols,
		rowIdx: append([]int(nil), m.rowIdx...),
		colIdx: append([]int(nil), m.colIdx...),
		values: append([]T(nil), m.values...),
	}
}

// String renders the shape and triplets, one per line. Debug only.
func (m *CooMatrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "COO %d×%d nnz=%d\n", m.nrows, m.ncols, len(m.values))
	for k := range m.values {
		fmt.Fprintf(&b, "(%d, %d) %v\n", m.rowIdx[k], m.colIdx[k], m.values[k])
	}

	return b.String()
}
