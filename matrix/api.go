// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic duplication.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Scalar](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c).
func ZerosLike[T Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros[T](m.Rows(), m.Cols())
}

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Sum is an alias for Add: element-wise a + b.
func Sum[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// DenseOf materialises any Matrix into a fresh, independent Dense.
// Complexity: O(r*c).
func DenseOf[T Scalar](m Matrix[T]) (*Dense[T], error) {
	return ewUnary("DenseOf", m, func(x T) T { return x })
}
