// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvsparse/matrix"
)

// Lane is one major lane of a compressed matrix: the row of a CSR or the
// column of a CSC. Minor and Values alias the matrix buffers.
type Lane[T matrix.Scalar] struct {
	Major  int
	Minor  []int
	Values []T
}

// Len returns the number of stored entries in the lane.
func (l Lane[T]) Len() int { return len(l.Minor) }

// Lane returns major lane k, minor indices ascending.
// Returns ErrIndexOutOfBounds when k is not in [0, NMajor()).
func (m *CsMatrix[T, C]) Lane(k int) (Lane[T], error) {
	if k < 0 || k >= m.NMajor() {
		return Lane[T]{}, fmt.Errorf("%s.Lane(%d) of %d: %w", m.Format(), k, m.NMajor(), ErrIndexOutOfBounds)
	}

	return m.lane(k), nil
}

func (m *CsMatrix[T, C]) lane(k int) Lane[T] {
	lo, hi := m.offsets[k], m.offsets[k+1]

	return Lane[T]{Major: k, Minor: m.minorIdx[lo:hi], Values: m.values[lo:hi]}
}

// Lanes yields every major lane in order, empty lanes included.
// The sequence is restartable.
func (m *CsMatrix[T, C]) Lanes() iter.Seq2[int, Lane[T]] {
	return func(yield func(int, Lane[T]) bool) {
		for k := 0; k < m.NMajor(); k++ {
			if !yield(k, m.lane(k)) {
				return
			}
		}
	}
}

// Triplets yields the stored entries in ascending (major, minor) order,
// labelled with their (row, col) coordinates.
func (m *CsMatrix[T, C]) Triplets() iter.Seq[Triplet[T]] {
	s := strategy[C]()

	return func(yield func(Triplet[T]) bool) {
		for k := 0; k < m.NMajor(); k++ {
			for p := m.offsets[k]; p < m.offsets[k+1]; p++ {
				i, j := s.RowCol(k, m.minorIdx[p])
				if !yield(Triplet[T]{Row: i, Col: j, Value: m.values[p]}) {
					return
				}
			}
		}
	}
}
