// SPDX-License-Identifier: MIT

// Package sparse - compressed (CSR / CSC) container.
//
// Purpose:
//   - One generic engine, CsMatrix[T, C], holds offsets, minor indices and
//     values; C fixes the orientation at compile time.
//   - Two trust tiers: validating constructors (NewCSR, NewCSC, ViewCSR,
//     ViewCSC, TryFromParts) and the unexported fromPartsUnchecked used by
//     the algorithms of this package once they have established the
//     invariants themselves.
//
// Invariants (checked by validateParts):
//   - len(offsets) == nmajor+1, offsets[0] == 0, non-decreasing,
//     offsets[nmajor] == nnz;
//   - minor indices strictly increasing within each lane and < nminor;
//   - len(minorIdx) == len(values) == nnz.
//
// Storage:
//   - owned: buffers belong to the matrix; ValuesMut hands out the values.
//   - borrowed view: buffers belong to the caller; ValuesMut fails with
//     ErrReadOnly and ToOwned copies.
//     Structure is immutable in both cases.

package sparse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvsparse/matrix"
)

// CsMatrix is a compressed sparse matrix with orientation C.
type CsMatrix[T matrix.Scalar, C Compression] struct {
	nrows, ncols int
	offsets      []int // len nmajor+1
	minorIdx     []int // len nnz
	values       []T   // len nnz
	owned        bool

	// sharedStructure marks offsets and minorIdx as borrowed from another
	// matrix even when the values are owned.
	sharedStructure bool
}

// CSR is a row-compressed matrix: lanes are rows.
type CSR[T matrix.Scalar] = CsMatrix[T, RowMajor]

// CSC is a column-compressed matrix: lanes are columns.
type CSC[T matrix.Scalar] = CsMatrix[T, ColMajor]

// fromPartsUnchecked assembles a CsMatrix without any validation.
//
// The caller MUST guarantee every invariant listed in the file header for
// orientation C and shape nrows×ncols. Breaking them is not reported here;
// it surfaces later as wrong results or index panics. Only algorithms of
// this package call it, immediately after producing the parts.
func fromPartsUnchecked[T matrix.Scalar, C Compression](
	nrows, ncols int, offsets, minorIdx []int, values []T, owned bool,
) *CsMatrix[T, C] {
	return &CsMatrix[T, C]{
		nrows:    nrows,
		ncols:    ncols,
		offsets:  offsets,
		minorIdx: minorIdx,
		values:   values,
		owned:    owned,
	}
}

// validateParts checks the compressed-format invariants for orientation C.
// It returns ErrInvalidShape for negative dimensions and a *StructureError
// for the first violation found, scanning lanes in order.
//
// Complexity: O(nmajor + nnz).
func validateParts[C Compression](nrows, ncols int, offsets, minorIdx []int, nvalues int) error {
	if nrows < 0 || ncols < 0 {
		return ErrInvalidShape
	}
	s := strategy[C]()
	nmajor, nminor := s.NMajor(nrows, ncols), s.NMinor(nrows, ncols)

	if len(offsets) != nmajor+1 {
		return structureErr(ErrInvalidOffsets, -1, -1, "len(offsets)=%d, want %d", len(offsets), nmajor+1)
	}
	if offsets[0] != 0 {
		return structureErr(ErrInvalidOffsets, 0, -1, "offsets[0]=%d, want 0", offsets[0])
	}
	if len(minorIdx) != nvalues {
		return structureErr(ErrLengthMismatch, -1, -1, "len(minor indices)=%d, len(values)=%d", len(minorIdx), nvalues)
	}
	if offsets[nmajor] != len(minorIdx) {
		return structureErr(ErrInvalidOffsets, nmajor, -1, "offsets[%d]=%d, want nnz=%d", nmajor, offsets[nmajor], len(minorIdx))
	}

	for k := 0; k < nmajor; k++ {
		start, end := offsets[k], offsets[k+1]
		if end < start || end > len(minorIdx) {
			return structureErr(ErrInvalidOffsets, k, -1, "lane range [%d,%d) invalid for nnz=%d", start, end, len(minorIdx))
		}
		prev := -1
		for p := start; p < end; p++ {
			j := minorIdx[p]
			if j < 0 || j >= nminor {
				return structureErr(ErrMinorIndexOutOfBounds, k, p, "index %d, minor dimension %d", j, nminor)
			}
			if j <= prev {
				return structureErr(ErrUnsortedMinorIndices, k, p, "index %d after %d", j, prev)
			}
			prev = j
		}
	}

	return nil
}

// TryFromParts validates the parts and builds an owned matrix of
// orientation C, taking ownership of the slices.
//
// Errors:
//   - ErrInvalidShape for negative dimensions;
//   - *StructureError (matches ErrMalformedStructure and its Kind).
func TryFromParts[T matrix.Scalar, C Compression](
	nrows, ncols int, offsets, minorIdx []int, values []T,
) (*CsMatrix[T, C], error) {
	if err := validateParts[C](nrows, ncols, offsets, minorIdx, len(values)); err != nil {
		return nil, sparseErrorf("TryFromParts "+strategy[C]().Name(), err)
	}

	return fromPartsUnchecked[T, C](nrows, ncols, offsets, minorIdx, values, true), nil
}

// NewCSR validates and builds an owned CSR from row offsets, column indices
// and values.
func NewCSR[T matrix.Scalar](nrows, ncols int, rowOffsets, colIdx []int, values []T) (*CSR[T], error) {
	return TryFromParts[T, RowMajor](nrows, ncols, rowOffsets, colIdx, values)
}

// NewCSC validates and builds an owned CSC from column offsets, row indices
// and values.
func NewCSC[T matrix.Scalar](nrows, ncols int, colOffsets, rowIdx []int, values []T) (*CSC[T], error) {
	return TryFromParts[T, ColMajor](nrows, ncols, colOffsets, rowIdx, values)
}

// ViewCSR validates caller-owned buffers and wraps them as a read-only CSR.
// The caller keeps ownership and must not change the buffers while the view
// is in use.
func ViewCSR[T matrix.Scalar](nrows, ncols int, rowOffsets, colIdx []int, values []T) (*CSR[T], error) {
	m, err := NewCSR(nrows, ncols, rowOffsets, colIdx, values)
	if err != nil {
		return nil, err
	}
	m.owned = false

	return m, nil
}

// ViewCSC is the column-compressed counterpart of ViewCSR.
func ViewCSC[T matrix.Scalar](nrows, ncols int, colOffsets, rowIdx []int, values []T) (*CSC[T], error) {
	m, err := NewCSC(nrows, ncols, colOffsets, rowIdx, values)
	if err != nil {
		return nil, err
	}
	m.owned = false

	return m, nil
}

// Zero returns the empty nrows×ncols matrix of orientation C (no stored
// entries, offsets all zero).
func Zero[T matrix.Scalar, C Compression](nrows, ncols int) (*CsMatrix[T, C], error) {
	if nrows < 0 || ncols < 0 {
		return nil, fmt.Errorf("Zero(%d,%d): %w", nrows, ncols, ErrInvalidShape)
	}
	nmajor := strategy[C]().NMajor(nrows, ncols)

	return fromPartsUnchecked[T, C](nrows, ncols, make([]int, nmajor+1), []int{}, []T{}, true), nil
}

// ZeroCSR returns the empty nrows×ncols CSR.
func ZeroCSR[T matrix.Scalar](nrows, ncols int) (*CSR[T], error) { return Zero[T, RowMajor](nrows, ncols) }

// ZeroCSC returns the empty nrows×ncols CSC.
func ZeroCSC[T matrix.Scalar](nrows, ncols int) (*CSC[T], error) { return Zero[T, ColMajor](nrows, ncols) }

// Rows returns the number of rows. O(1).
func (m *CsMatrix[T, C]) Rows() int { return m.nrows }

// Cols returns the number of columns. O(1).
func (m *CsMatrix[T, C]) Cols() int { return m.ncols }

// Shape returns (rows, cols). O(1).
func (m *CsMatrix[T, C]) Shape() matrix.Shape { return matrix.Shape{Rows: m.nrows, Cols: m.ncols} }

// NNZ returns the number of stored entries, explicit zeros included. O(1).
func (m *CsMatrix[T, C]) NNZ() int { return len(m.values) }

// NMajor returns the number of lanes (rows for CSR, columns for CSC).
func (m *CsMatrix[T, C]) NMajor() int { return len(m.offsets) - 1 }

// NMinor returns the lane length (columns for CSR, rows for CSC).
func (m *CsMatrix[T, C]) NMinor() int { return strategy[C]().NMinor(m.nrows, m.ncols) }

// Format returns "CSR" or "CSC".
func (m *CsMatrix[T, C]) Format() string { return strategy[C]().Name() }

// Offsets returns the lane offsets (shared; do not modify).
func (m *CsMatrix[T, C]) Offsets() []int { return m.offsets }

// MinorIndices returns the stored minor indices (shared; do not modify).
func (m *CsMatrix[T, C]) MinorIndices() []int { return m.minorIdx }

// Values returns the stored values (shared; do not modify through this
// accessor, use ValuesMut).
func (m *CsMatrix[T, C]) Values() []T { return m.values }

// Owned reports whether m owns its buffers.
func (m *CsMatrix[T, C]) Owned() bool { return m.owned }

// ValuesMut returns the values for in-place mutation. Only owned matrices
// allow it; a borrowed view returns ErrReadOnly.
func (m *CsMatrix[T, C]) ValuesMut() ([]T, error) {
	if !m.owned {
		return nil, sparseErrorf(m.Format()+".ValuesMut", ErrReadOnly)
	}

	return m.values, nil
}

// Clone returns an owned deep copy.
func (m *CsMatrix[T, C]) Clone() *CsMatrix[T, C] {
	return fromPartsUnchecked[T, C](m.nrows, m.ncols,
		slices.Clone(m.offsets), slices.Clone(m.minorIdx), slices.Clone(m.values), true)
}

// ToOwned returns m itself when it already owns its buffers, otherwise an
// owned copy.
func (m *CsMatrix[T, C]) ToOwned() *CsMatrix[T, C] {
	if m.owned {
		return m
	}

	return m.Clone()
}

// Disassemble returns (offsets, minor indices, values). An owned matrix
// hands over its buffers and must not be used afterwards; a view returns
// copies. Structure borrowed from another matrix (Scale, Div) is copied
// too, so the returned slices never alias a live matrix.
func (m *CsMatrix[T, C]) Disassemble() (offsets, minorIdx []int, values []T) {
	if !m.owned {
		return slices.Clone(m.offsets), slices.Clone(m.minorIdx), slices.Clone(m.values)
	}
	offsets, minorIdx, values = m.offsets, m.minorIdx, m.values
	if m.sharedStructure {
		offsets, minorIdx = slices.Clone(offsets), slices.Clone(minorIdx)
	}
	m.offsets, m.minorIdx, m.values = nil, nil, nil

	return offsets, minorIdx, values
}

// find locates (row, col) in its lane by binary search.
// Returns the position in minorIdx/values and whether it is stored.
func (m *CsMatrix[T, C]) find(row, col int) (int, bool) {
	s := strategy[C]()
	k, j := s.Major(row, col), s.Minor(row, col)
	lo, hi := m.offsets[k], m.offsets[k+1]
	p, ok := slices.BinarySearch(m.minorIdx[lo:hi], j)

	return lo + p, ok
}

// Get returns the stored value at (row, col) and true, or the zero value
// and false when the entry is implicit (not stored) or out of range.
//
// Complexity: O(log lane length).
func (m *CsMatrix[T, C]) Get(row, col int) (T, bool) {
	var zero T
	if row < 0 || row >= m.nrows || col < 0 || col >= m.ncols {
		return zero, false
	}
	p, ok := m.find(row, col)
	if !ok {
		return zero, false
	}

	return m.values[p], true
}

// At is the bounds-checked read: implicit entries read as zero,
// out-of-range coordinates return ErrIndexOutOfBounds.
func (m *CsMatrix[T, C]) At(row, col int) (T, error) {
	if row < 0 || row >= m.nrows || col < 0 || col >= m.ncols {
		var zero T
		return zero, fmt.Errorf("%s.At(%d,%d) in %d×%d: %w", m.Format(), row, col, m.nrows, m.ncols, ErrIndexOutOfBounds)
	}
	v, _ := m.Get(row, col)

	return v, nil
}

// Equal reports whether m and other have the same shape, structure and
// values. Explicit zeros count as structure: a matrix with a stored zero is
// not Equal to one without it.
func (m *CsMatrix[T, C]) Equal(other *CsMatrix[T, C]) bool {
	if other == nil {
		return false
	}

	return m.nrows == other.nrows && m.ncols == other.ncols &&
		slices.Equal(m.offsets, other.offsets) &&
		slices.Equal(m.minorIdx, other.minorIdx) &&
		slices.Equal(m.values, other.values)
}

// String renders the format, shape and stored triplets. Debug only.
func (m *CsMatrix[T, C]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d×%d nnz=%d\n", m.Format(), m.nrows, m.ncols, len(m.values))
	for t := range m.Triplets() {
		fmt.Fprintf(&b, "(%d, %d) %v\n", t.Row, t.Col, t.Value)
	}

	return b.String()
}
