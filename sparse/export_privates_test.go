// SPDX-License-Identifier: MIT

package sparse

// Test bridge: exposes unexported helpers to sparse_test only. Compiled
// with the tests, invisible to importers.

import "github.com/katalvlaran/lvsparse/matrix"

// Panic message exports to avoid magic strings in tests.
const (
	PanicNilCombinator_TestOnly    = panicNilCombinator
	PanicNegativeCapacity_TestOnly = panicNegativeCapacity
)

// CSRFromPartsUnchecked_TestOnly forwards to the trusted constructor.
func CSRFromPartsUnchecked_TestOnly[T matrix.Scalar](nrows, ncols int, offsets, idx []int, values []T) *CSR[T] {
	return fromPartsUnchecked[T, RowMajor](nrows, ncols, offsets, idx, values, true)
}

// TransposeLanes_TestOnly forwards to the bucket transpose kernel.
func TransposeLanes_TestOnly[T matrix.Scalar](nminor int, offsets, idx []int, values []T) ([]int, []int, []T) {
	return transposeLanes(nminor, offsets, idx, values)
}

// CapacityOf_TestOnly reports the effective capacity after applying opts.
func CapacityOf_TestOnly[T matrix.Scalar](opts ...Option[T]) int {
	return gatherOptions(opts...).capacity
}

// Combine_TestOnly applies the effective combinator after applying opts.
func Combine_TestOnly[T matrix.Scalar](prev, cur T, opts ...Option[T]) T {
	return gatherOptions(opts...).combine(prev, cur)
}
