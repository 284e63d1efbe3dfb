// SPDX-License-Identifier: MIT

// Package sparse - conversions between the coordinate and compressed forms
// and between the two compressed orientations.
//
// COO → CS (the core path):
//   1. map (row, col) to (major, minor) through the orientation C;
//   2. sort by (major, minor) with an unstable sort, skipped when the keys
//      are already ordered;
//   3. one walk: a key equal to the last emitted one is folded into it with
//      the combinator, otherwise a new entry is emitted and its lane counted;
//   4. lane counts → offsets; trusted constructor.
//
// CS → CS (orientation change):
//   counting/bucket transpose, O(nnz + nmajor + nminor), no comparison sort.
//   Walking source lanes in order fills every destination lane with
//   ascending minor indices.

package sparse

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvsparse/matrix"
)

// keyed is one triplet in (major, minor) coordinates.
type keyed[T matrix.Scalar] struct {
	major, minor int
	value        T
}

func compareKeyed[T matrix.Scalar](a, b keyed[T]) int {
	if c := cmp.Compare(a.major, b.major); c != 0 {
		return c
	}

	return cmp.Compare(a.minor, b.minor)
}

// cooToCs consumes coo and compresses it along orientation C, folding
// duplicates with combine.
//
// Complexity: O(nnz log nnz) for the sort, O(nnz + nmajor) otherwise.
func cooToCs[T matrix.Scalar, C Compression](coo *CooMatrix[T], combine func(prev, cur T) T) *CsMatrix[T, C] {
	s := strategy[C]()
	nrows, ncols := coo.nrows, coo.ncols
	rows, cols, vals := coo.Disassemble()

	entries := make([]keyed[T], len(vals))
	for k := range vals {
		entries[k] = keyed[T]{major: s.Major(rows[k], cols[k]), minor: s.Minor(rows[k], cols[k]), value: vals[k]}
	}
	if !slices.IsSortedFunc(entries, compareKeyed[T]) {
		slices.SortFunc(entries, compareKeyed[T])
	}

	counts := make([]int, s.NMajor(nrows, ncols))
	minorIdx := make([]int, 0, len(entries))
	values := make([]T, 0, len(entries))
	lastMajor, lastMinor := -1, -1
	for _, e := range entries {
		if e.major == lastMajor && e.minor == lastMinor {
			values[len(values)-1] = combine(values[len(values)-1], e.value)
			continue
		}
		minorIdx = append(minorIdx, e.minor)
		values = append(values, e.value)
		counts[e.major]++
		lastMajor, lastMinor = e.major, e.minor
	}

	return fromPartsUnchecked[T, C](nrows, ncols, OffsetsFromCounts(counts), minorIdx, values, true)
}

// CSRFromCoo compresses coo into CSR. Duplicate (row, col) pairs are
// combined (summed by default, see WithCombinator).
//
// Only WithCombinator applies here; WithCapacity is a NewCoo option and
// has no effect on the conversion.
//
// coo is consumed: on success it is left empty with its shape intact.
// Returns ErrNilMatrix for a nil coo.
func CSRFromCoo[T matrix.Scalar](coo *CooMatrix[T], opts ...Option[T]) (*CSR[T], error) {
	if coo == nil {
		return nil, sparseErrorf("CSRFromCoo", ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	return cooToCs[T, RowMajor](coo, o.combine), nil
}

// CSCFromCoo is the column-compressed counterpart of CSRFromCoo and honors
// the same options.
func CSCFromCoo[T matrix.Scalar](coo *CooMatrix[T], opts ...Option[T]) (*CSC[T], error) {
	if coo == nil {
		return nil, sparseErrorf("CSCFromCoo", ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	return cooToCs[T, ColMajor](coo, o.combine), nil
}

// csToCoo lists the stored entries of m in native (major, minor) order.
func csToCoo[T matrix.Scalar, C Compression](m *CsMatrix[T, C]) *CooMatrix[T] {
	nnz := m.NNZ()
	coo := &CooMatrix[T]{
		nrows:  m.nrows,
		ncols:  m.ncols,
		rowIdx: make([]int, 0, nnz),
		colIdx: make([]int, 0, nnz),
		values: make([]T, 0, nnz),
	}
	for t := range m.Triplets() {
		coo.rowIdx = append(coo.rowIdx, t.Row)
		coo.colIdx = append(coo.colIdx, t.Col)
		coo.values = append(coo.values, t.Value)
	}

	return coo
}

// CooFromCSR lists the entries of m row by row. Explicit zeros are kept.
func CooFromCSR[T matrix.Scalar](m *CSR[T]) (*CooMatrix[T], error) {
	if m == nil {
		return nil, sparseErrorf("CooFromCSR", ErrNilMatrix)
	}

	return csToCoo(m), nil
}

// CooFromCSC lists the entries of m column by column. Explicit zeros are kept.
func CooFromCSC[T matrix.Scalar](m *CSC[T]) (*CooMatrix[T], error) {
	if m == nil {
		return nil, sparseErrorf("CooFromCSC", ErrNilMatrix)
	}

	return csToCoo(m), nil
}

// transposeLanes redistributes a compressed structure along its minor axis:
// the result has nminor lanes whose minor indices are the source majors.
//
// Complexity: O(nnz + nmajor + nminor).
func transposeLanes[T matrix.Scalar](nminor int, offsets, minorIdx []int, values []T) ([]int, []int, []T) {
	counts := make([]int, nminor)
	for _, j := range minorIdx {
		counts[j]++
	}
	outOffsets := OffsetsFromCounts(counts)
	next := slices.Clone(outOffsets[:nminor])

	outMinor := make([]int, len(minorIdx))
	outValues := make([]T, len(values))
	for k := 0; k+1 < len(offsets); k++ {
		for p := offsets[k]; p < offsets[k+1]; p++ {
			j := minorIdx[p]
			q := next[j]
			next[j]++
			outMinor[q] = k
			outValues[q] = values[p]
		}
	}

	return outOffsets, outMinor, outValues
}

// reorient returns m laid out along orientation CTo. When the orientations
// already agree the result is a read-only view sharing m's buffers;
// otherwise the entries are redistributed by transposeLanes.
func reorient[T matrix.Scalar, CFrom, CTo Compression](m *CsMatrix[T, CFrom]) *CsMatrix[T, CTo] {
	if sameCompression[CFrom, CTo]() {
		return fromPartsUnchecked[T, CTo](m.nrows, m.ncols, m.offsets, m.minorIdx, m.values, false)
	}
	offsets, minorIdx, values := transposeLanes(m.NMinor(), m.offsets, m.minorIdx, m.values)

	return fromPartsUnchecked[T, CTo](m.nrows, m.ncols, offsets, minorIdx, values, true)
}

// CSCFromCSR converts m to column-compressed form by a bucket transpose.
// m is not modified; explicit zeros are carried over.
func CSCFromCSR[T matrix.Scalar](m *CSR[T]) (*CSC[T], error) {
	if m == nil {
		return nil, sparseErrorf("CSCFromCSR", ErrNilMatrix)
	}

	return reorient[T, RowMajor, ColMajor](m), nil
}

// CSRFromCSC converts m to row-compressed form by a bucket transpose.
func CSRFromCSC[T matrix.Scalar](m *CSC[T]) (*CSR[T], error) {
	if m == nil {
		return nil, sparseErrorf("CSRFromCSC", ErrNilMatrix)
	}

	return reorient[T, ColMajor, RowMajor](m), nil
}

// TransposeCSR returns the transpose of m as a CSC that shares m's buffers:
// the row lanes of m are exactly the column lanes of mᵀ. O(1).
// The result is a read-only view.
func TransposeCSR[T matrix.Scalar](m *CSR[T]) (*CSC[T], error) {
	if m == nil {
		return nil, sparseErrorf("TransposeCSR", ErrNilMatrix)
	}

	return fromPartsUnchecked[T, ColMajor](m.ncols, m.nrows, m.offsets, m.minorIdx, m.values, false), nil
}

// TransposeCSC returns the transpose of m as a CSR sharing m's buffers. O(1).
func TransposeCSC[T matrix.Scalar](m *CSC[T]) (*CSR[T], error) {
	if m == nil {
		return nil, sparseErrorf("TransposeCSC", ErrNilMatrix)
	}

	return fromPartsUnchecked[T, RowMajor](m.ncols, m.nrows, m.offsets, m.minorIdx, m.values, false), nil
}
