// SPDX-License-Identifier: MIT

// Package sparse - merge-join engine for element-wise binary operations.
//
// MAIN DESCRIPTION:
//   - Two compressed operands of equal shape are read as ascending
//     (major, minor) streams and walked in lock step:
//     left key < right key  → LeftOnly(l), advance left;
//     left key > right key  → RightOnly(r), advance right;
//     keys equal            → Both(l, r), advance both;
//     one stream exhausted  → drain the other one-sidedly.
//   - The emitted stream is already sorted, so lane counts + offsets finish
//     the result without any sort.
//
// Behavior highlights:
//   - Result orientation follows the left operand. A right operand of the
//     other orientation is read against its minor axis first (bucket
//     transpose), so both streams share the same axis order.
//   - Results are never pruned: a combination that yields exactly zero is
//     kept as an explicit zero.
//   - Shape mismatch is reported before any traversal.
//
// Complexity:
//   - O(nnz₁ + nnz₂) for equal orientations, plus O(nnz₂ + nminor) for the
//     minor-axis read of a differently oriented right operand.
//   - Output buffers are sized nnz₁ + nnz₂ up front.

package sparse

import (
	"github.com/katalvlaran/lvsparse/matrix"
)

// MergeOps are the three transforms of a merge-join. All must be non-nil.
type MergeOps[T matrix.Scalar] struct {
	Both      func(l, r T) T // entry stored in both operands
	LeftOnly  func(l T) T    // entry stored only in the left operand
	RightOnly func(r T) T    // entry stored only in the right operand
}

func (o MergeOps[T]) valid() bool {
	return o.Both != nil && o.LeftOnly != nil && o.RightOnly != nil
}

// cursor walks the stored entries of a compressed structure in ascending
// (major, minor) order. major always names the lane holding pos.
type cursor[T matrix.Scalar] struct {
	offsets  []int
	minorIdx []int
	values   []T
	major    int
	pos      int
}

func newCursor[T matrix.Scalar, C Compression](m *CsMatrix[T, C]) *cursor[T] {
	c := &cursor[T]{offsets: m.offsets, minorIdx: m.minorIdx, values: m.values}
	c.skipEmptyLanes()

	return c
}

func (c *cursor[T]) done() bool { return c.pos >= len(c.values) }

func (c *cursor[T]) skipEmptyLanes() {
	for c.major < len(c.offsets)-1 && c.pos >= c.offsets[c.major+1] {
		c.major++
	}
}

func (c *cursor[T]) advance() {
	c.pos++
	c.skipEmptyLanes()
}

func (c *cursor[T]) minor() int { return c.minorIdx[c.pos] }

func (c *cursor[T]) value() T { return c.values[c.pos] }

// compare orders the current keys of c and o lexicographically.
func (c *cursor[T]) compare(o *cursor[T]) int {
	switch {
	case c.major < o.major:
		return -1
	case c.major > o.major:
		return 1
	case c.minor() < o.minor():
		return -1
	case c.minor() > o.minor():
		return 1
	}

	return 0
}

// mergeJoin combines two same-shape, same-orientation matrices entry by entry.
func mergeJoin[T matrix.Scalar, C Compression](a, b *CsMatrix[T, C], ops MergeOps[T]) *CsMatrix[T, C] {
	capacity := a.NNZ() + b.NNZ()
	counts := make([]int, a.NMajor())
	minorIdx := make([]int, 0, capacity)
	values := make([]T, 0, capacity)

	emit := func(major, minor int, v T) {
		counts[major]++
		minorIdx = append(minorIdx, minor)
		values = append(values, v)
	}

	l, r := newCursor(a), newCursor(b)
	for !l.done() && !r.done() {
		switch l.compare(r) {
		case -1:
			emit(l.major, l.minor(), ops.LeftOnly(l.value()))
			l.advance()
		case 1:
			emit(r.major, r.minor(), ops.RightOnly(r.value()))
			r.advance()
		default:
			emit(l.major, l.minor(), ops.Both(l.value(), r.value()))
			l.advance()
			r.advance()
		}
	}
	for ; !l.done(); l.advance() {
		emit(l.major, l.minor(), ops.LeftOnly(l.value()))
	}
	for ; !r.done(); r.advance() {
		emit(r.major, r.minor(), ops.RightOnly(r.value()))
	}

	return fromPartsUnchecked[T, C](a.nrows, a.ncols, OffsetsFromCounts(counts), minorIdx, values, true)
}

// merge checks operands and operators, aligns b to a's orientation and runs
// the merge-join.
func merge[T matrix.Scalar, CL, CR Compression](
	op string, a *CsMatrix[T, CL], b *CsMatrix[T, CR], ops MergeOps[T],
) (*CsMatrix[T, CL], error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(op, ErrNilMatrix)
	}
	if !ops.valid() {
		return nil, sparseErrorf(op, ErrInvalidOperator)
	}
	if a.nrows != b.nrows || a.ncols != b.ncols {
		return nil, shapeMismatch(op, a.Shape(), b.Shape())
	}

	return mergeJoin(a, reorient[T, CR, CL](b), ops), nil
}

// Merge applies an arbitrary element-wise binary operation to a and b by
// merge-join. The result has a's orientation; neither operand is modified.
//
// Errors:
//   - ErrNilMatrix for a nil operand;
//   - ErrInvalidOperator when any field of ops is nil;
//   - *ShapeMismatchError when the shapes differ.
func Merge[T matrix.Scalar, CL, CR Compression](
	a *CsMatrix[T, CL], b *CsMatrix[T, CR], ops MergeOps[T],
) (*CsMatrix[T, CL], error) {
	return merge("Merge", a, b, ops)
}
