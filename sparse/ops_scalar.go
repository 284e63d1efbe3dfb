// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/matrix"
)

// mapValues returns a matrix with m's structure and f applied to every
// stored value. Offsets and minor indices are shared with m and flagged as
// such; the values are a new owned buffer.
func mapValues[T matrix.Scalar, C Compression](m *CsMatrix[T, C], f func(T) T) *CsMatrix[T, C] {
	values := make([]T, len(m.values))
	for p, v := range m.values {
		values[p] = f(v)
	}
	out := fromPartsUnchecked[T, C](m.nrows, m.ncols, m.offsets, m.minorIdx, values, true)
	out.sharedStructure = true

	return out
}

// Scale returns alpha·m. Zeros produced by the product stay stored.
// Complexity: O(nnz).
func Scale[T matrix.Scalar, C Compression](m *CsMatrix[T, C], alpha T) (*CsMatrix[T, C], error) {
	if m == nil {
		return nil, sparseErrorf("Scale", ErrNilMatrix)
	}

	return mapValues(m, func(v T) T { return v * alpha }), nil
}

// Div returns m/alpha. An exactly zero alpha is rejected with
// ErrDivideByZero for every element type, floats included.
// Complexity: O(nnz).
func Div[T matrix.Scalar, C Compression](m *CsMatrix[T, C], alpha T) (*CsMatrix[T, C], error) {
	if m == nil {
		return nil, sparseErrorf("Div", ErrNilMatrix)
	}
	var zero T
	if alpha == zero {
		return nil, fmt.Errorf("Div(%v): %w", alpha, ErrDivideByZero)
	}

	return mapValues(m, func(v T) T { return v / alpha }), nil
}
