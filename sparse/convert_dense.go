// SPDX-License-Identifier: MIT

package sparse

import (
	"iter"

	"github.com/katalvlaran/lvsparse/matrix"
)

// eachColumnMajor visits every cell of m column by column: all rows of
// column 0, then column 1, and so on. *matrix.Dense takes the DoColumns
// fast path; any other Matrix is read through At.
func eachColumnMajor[T matrix.Scalar](m matrix.Matrix[T], fn func(i, j int, v T)) error {
	if d, ok := m.(*matrix.Dense[T]); ok {
		d.DoColumns(func(i, j int, v T) bool {
			fn(i, j, v)
			return true
		})
		return nil
	}
	rows, cols := m.Rows(), m.Cols()
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			fn(i, j, v)
		}
	}

	return nil
}

// eachRowMajor visits every cell of m row by row.
func eachRowMajor[T matrix.Scalar](m matrix.Matrix[T], fn func(i, j int, v T)) error {
	if d, ok := m.(*matrix.Dense[T]); ok {
		d.Do(func(i, j int, v T) bool {
			fn(i, j, v)
			return true
		})
		return nil
	}
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			fn(i, j, v)
		}
	}

	return nil
}

// CooFromDense lists the non-zero cells of d in column-major order.
// Zero cells are never stored. Any matrix.Matrix is accepted, including the
// gonum adapter.
//
// Complexity: O(rows*cols).
func CooFromDense[T matrix.Scalar](d matrix.Matrix[T]) (*CooMatrix[T], error) {
	if err := matrix.ValidateNotNil(d); err != nil {
		return nil, sparseErrorf("CooFromDense", ErrNilMatrix)
	}
	coo := &CooMatrix[T]{nrows: d.Rows(), ncols: d.Cols()}
	var zero T
	err := eachColumnMajor(d, func(i, j int, v T) {
		if v != zero {
			coo.rowIdx = append(coo.rowIdx, i)
			coo.colIdx = append(coo.colIdx, j)
			coo.values = append(coo.values, v)
		}
	})
	if err != nil {
		return nil, sparseErrorf("CooFromDense", err)
	}

	return coo, nil
}

// addTriplets materialises a triplet stream into a fresh zero matrix,
// adding (not overwriting) every value into its cell.
func addTriplets[T matrix.Scalar](op string, nrows, ncols int, seq iter.Seq[Triplet[T]]) (*matrix.Dense[T], error) {
	d, err := matrix.NewZeros[T](nrows, ncols)
	if err != nil {
		return nil, sparseErrorf(op, err)
	}
	for t := range seq {
		if err = d.AddAt(t.Row, t.Col, t.Value); err != nil {
			return nil, sparseErrorf(op, err)
		}
	}

	return d, nil
}

// DenseFromCoo materialises c; duplicate triplets are summed.
//
// Complexity: O(rows*cols + nnz).
func DenseFromCoo[T matrix.Scalar](c *CooMatrix[T]) (*matrix.Dense[T], error) {
	if c == nil {
		return nil, sparseErrorf("DenseFromCoo", ErrNilMatrix)
	}

	return addTriplets("DenseFromCoo", c.nrows, c.ncols, c.Triplets())
}

// DenseFromCSR materialises m.
func DenseFromCSR[T matrix.Scalar](m *CSR[T]) (*matrix.Dense[T], error) {
	if m == nil {
		return nil, sparseErrorf("DenseFromCSR", ErrNilMatrix)
	}

	return addTriplets("DenseFromCSR", m.nrows, m.ncols, m.Triplets())
}

// DenseFromCSC materialises m.
func DenseFromCSC[T matrix.Scalar](m *CSC[T]) (*matrix.Dense[T], error) {
	if m == nil {
		return nil, sparseErrorf("DenseFromCSC", ErrNilMatrix)
	}

	return addTriplets("DenseFromCSC", m.nrows, m.ncols, m.Triplets())
}

// denseToCs compresses the non-zero cells of d along orientation C.
// The traversal already follows storage order (rows for CSR, columns for
// CSC), so lanes are closed as they are walked and no sort is needed.
//
// Complexity: O(rows*cols).
func denseToCs[T matrix.Scalar, C Compression](op string, d matrix.Matrix[T]) (*CsMatrix[T, C], error) {
	if err := matrix.ValidateNotNil(d); err != nil {
		return nil, sparseErrorf(op, ErrNilMatrix)
	}
	s := strategy[C]()
	nrows, ncols := d.Rows(), d.Cols()
	counts := make([]int, s.NMajor(nrows, ncols))
	var (
		minorIdx []int
		values   []T
		zero     T
	)
	visit := func(i, j int, v T) {
		if v == zero {
			return
		}
		counts[s.Major(i, j)]++
		minorIdx = append(minorIdx, s.Minor(i, j))
		values = append(values, v)
	}

	walk := eachColumnMajor[T]
	if sameCompression[C, RowMajor]() {
		walk = eachRowMajor[T]
	}
	if err := walk(d, visit); err != nil {
		return nil, sparseErrorf(op, err)
	}
	if minorIdx == nil {
		minorIdx, values = []int{}, []T{}
	}

	return fromPartsUnchecked[T, C](nrows, ncols, OffsetsFromCounts(counts), minorIdx, values, true), nil
}

// CSRFromDense compresses the non-zero cells of d row by row.
func CSRFromDense[T matrix.Scalar](d matrix.Matrix[T]) (*CSR[T], error) {
	return denseToCs[T, RowMajor]("CSRFromDense", d)
}

// CSCFromDense compresses the non-zero cells of d column by column.
func CSCFromDense[T matrix.Scalar](d matrix.Matrix[T]) (*CSC[T], error) {
	return denseToCs[T, ColMajor]("CSCFromDense", d)
}
