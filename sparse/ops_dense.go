// SPDX-License-Identifier: MIT

// Package sparse - mixed dense/sparse element-wise operations.
//
// Every function returns a new *matrix.Dense; neither operand is modified.
// The dense side may be any matrix.Matrix (Dense, the gonum adapter, ...).
// Shapes are checked before any cell is touched.

package sparse

import (
	"github.com/katalvlaran/lvsparse/matrix"
)

// checkDenseSparse validates a dense/sparse operand pair in order:
// nil operands, then shape.
func checkDenseSparse[T matrix.Scalar, C Compression](
	op string, d matrix.Matrix[T], s *CsMatrix[T, C], denseLeft bool,
) error {
	if err := matrix.ValidateNotNil(d); err != nil || s == nil {
		return sparseErrorf(op, ErrNilMatrix)
	}
	ds := matrix.ShapeOf(d)
	if ds != s.Shape() {
		if denseLeft {
			return shapeMismatch(op, ds, s.Shape())
		}
		return shapeMismatch(op, s.Shape(), ds)
	}

	return nil
}

// accumulate adds f(v) into out for every stored entry of s.
func accumulate[T matrix.Scalar, C Compression](op string, out *matrix.Dense[T], s *CsMatrix[T, C], f func(T) T) error {
	for t := range s.Triplets() {
		if err := out.AddAt(t.Row, t.Col, f(t.Value)); err != nil {
			return sparseErrorf(op, err)
		}
	}

	return nil
}

// SubDenseCs returns d − s as a dense matrix.
//
// Errors: ErrNilMatrix; *ShapeMismatchError.
// Complexity: O(rows*cols + nnz).
func SubDenseCs[T matrix.Scalar, C Compression](d matrix.Matrix[T], s *CsMatrix[T, C]) (*matrix.Dense[T], error) {
	const op = "SubDenseCs"
	if err := checkDenseSparse(op, d, s, true); err != nil {
		return nil, err
	}
	out, err := matrix.DenseOf(d)
	if err != nil {
		return nil, sparseErrorf(op, err)
	}
	if err = accumulate(op, out, s, negate[T]); err != nil {
		return nil, err
	}

	return out, nil
}

// SubCsDense returns s − d as a dense matrix: d is negated into a fresh
// matrix and the stored entries of s are added on top.
//
// Errors: ErrNilMatrix; *ShapeMismatchError.
// Complexity: O(rows*cols + nnz).
func SubCsDense[T matrix.Scalar, C Compression](s *CsMatrix[T, C], d matrix.Matrix[T]) (*matrix.Dense[T], error) {
	const op = "SubCsDense"
	if err := checkDenseSparse(op, d, s, false); err != nil {
		return nil, err
	}
	out, err := matrix.Neg(d)
	if err != nil {
		return nil, sparseErrorf(op, err)
	}
	if err = accumulate(op, out, s, identity[T]); err != nil {
		return nil, err
	}

	return out, nil
}

// AddDenseCs returns d + s as a dense matrix.
//
// Errors: ErrNilMatrix; *ShapeMismatchError.
func AddDenseCs[T matrix.Scalar, C Compression](d matrix.Matrix[T], s *CsMatrix[T, C]) (*matrix.Dense[T], error) {
	const op = "AddDenseCs"
	if err := checkDenseSparse(op, d, s, true); err != nil {
		return nil, err
	}
	out, err := matrix.DenseOf(d)
	if err != nil {
		return nil, sparseErrorf(op, err)
	}
	if err = accumulate(op, out, s, identity[T]); err != nil {
		return nil, err
	}

	return out, nil
}
