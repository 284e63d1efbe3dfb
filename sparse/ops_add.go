// SPDX-License-Identifier: MIT

package sparse

import "github.com/katalvlaran/lvsparse/matrix"

func addOps[T matrix.Scalar]() MergeOps[T] {
	return MergeOps[T]{
		Both:      func(l, r T) T { return l + r },
		LeftOnly:  identity[T],
		RightOnly: identity[T],
	}
}

// Add returns a + b element-wise with a's orientation. Like Sub it keeps
// explicit zeros produced by cancellation.
//
// Errors: ErrNilMatrix; *ShapeMismatchError.
func Add[T matrix.Scalar, CL, CR Compression](a *CsMatrix[T, CL], b *CsMatrix[T, CR]) (*CsMatrix[T, CL], error) {
	return merge("Add", a, b, addOps[T]())
}
