// SPDX-License-Identifier: MIT

package sparse

import "github.com/katalvlaran/lvsparse/matrix"

func identity[T matrix.Scalar](v T) T { return v }

func negate[T matrix.Scalar](v T) T { return -v }

func subOps[T matrix.Scalar]() MergeOps[T] {
	return MergeOps[T]{
		Both:      func(l, r T) T { return l - r },
		LeftOnly:  identity[T],
		RightOnly: negate[T],
	}
}

// Sub returns a − b element-wise. Entries stored only in a pass through,
// entries stored only in b are negated, shared entries are subtracted.
// Exact cancellations stay as explicit zeros. The result has a's
// orientation.
//
// Errors: ErrNilMatrix; *ShapeMismatchError (matches ErrShapeMismatch).
//
// Complexity: O(nnz(a) + nnz(b)), plus O(nnz(b) + nminor) when b has the
// other orientation.
func Sub[T matrix.Scalar, CL, CR Compression](a *CsMatrix[T, CL], b *CsMatrix[T, CR]) (*CsMatrix[T, CL], error) {
	return merge("Sub", a, b, subOps[T]())
}

// SubCSRCSR returns a − b for two CSR operands.
func SubCSRCSR[T matrix.Scalar](a, b *CSR[T]) (*CSR[T], error) { return Sub(a, b) }

// SubCSRCSC returns a − b as CSR; b is read along its rows.
func SubCSRCSC[T matrix.Scalar](a *CSR[T], b *CSC[T]) (*CSR[T], error) { return Sub(a, b) }

// SubCSCCSR returns a − b as CSC; b is read along its columns.
func SubCSCCSR[T matrix.Scalar](a *CSC[T], b *CSR[T]) (*CSC[T], error) { return Sub(a, b) }

// SubCSCCSC returns a − b for two CSC operands.
func SubCSCCSC[T matrix.Scalar](a, b *CSC[T]) (*CSC[T], error) { return Sub(a, b) }
