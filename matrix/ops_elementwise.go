// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise dense kernels (Add, Sub, Neg, Scale) and comparisons
//     (Equal, AllClose) used by the sparse engine and as reference oracles
//     in its tests.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on the Dense fast-path, i→j otherwise).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opNeg      = "Neg"
	opScale    = "Scale"
	opEqual    = "Equal"
	opAllClose = "AllClose"
)

// ewBinary computes out[i,j] = f(a[i,j], b[i,j]) for identically shaped a, b.
// Dense×Dense runs over the flat buffers; any other pairing uses At.
// Time: O(r*c). Space: O(r*c).
func ewBinary[T Scalar](op string, a, b Matrix[T], f func(x, y T) T) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	r, c := a.Rows(), a.Cols()
	out := newDenseZeroOK[T](r, c)

	// Dense fast-path: single pass over both flat row-major buffers.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range out.data {
				out.data[idx] = f(da.data[idx], db.data[idx])
			}
			return out, nil
		}
	}

	// Generic fallback via At (still deterministic).
	var i, j int
	var x, y T
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if x, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			if y, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			out.data[i*c+j] = f(x, y)
		}
	}

	return out, nil
}

// ewUnary computes out[i,j] = f(a[i,j]).
// Time: O(r*c). Space: O(r*c).
func ewUnary[T Scalar](op string, a Matrix[T], f func(x T) T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	r, c := a.Rows(), a.Cols()
	out := newDenseZeroOK[T](r, c)

	if da, ok := a.(*Dense[T]); ok {
		for idx, v := range da.data {
			out.data[idx] = f(v)
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(op, err)
			}
			out.data[i*c+j] = f(v)
		}
	}

	return out, nil
}

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T Scalar](a, b Matrix[T]) (*Dense[T], error) {
	return ewBinary(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a − b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Scalar](a, b Matrix[T]) (*Dense[T], error) {
	return ewBinary(opSub, a, b, func(x, y T) T { return x - y })
}

// Neg returns −a.
// Complexity: O(r*c).
func Neg[T Scalar](a Matrix[T]) (*Dense[T], error) {
	return ewUnary(opNeg, a, func(x T) T { return -x })
}

// Scale returns alpha·a.
// Complexity: O(r*c).
func Scale[T Scalar](a Matrix[T], alpha T) (*Dense[T], error) {
	return ewUnary(opScale, a, func(x T) T { return x * alpha })
}

// Equal reports whether a and b have the same shape and bitwise-equal
// elements (NaN never equals NaN). Shape differences return (false, nil).
// Complexity: O(r*c), early exit on first difference.
func Equal[T Scalar](a, b Matrix[T]) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			y, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if x != y {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix[float64], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // bounds guaranteed by the shape check
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
