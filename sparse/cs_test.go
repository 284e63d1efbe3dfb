// SPDX-License-Identifier: MIT

package sparse_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

func TestTryFromParts_Valid(t *testing.T) {
	t.Parallel()

	m, err := sparse.TryFromParts[int, sparse.RowMajor](3, 4,
		[]int{0, 1, 2, 5}, []int{1, 3, 0, 2, 3}, []int{2, 4, 1, 1, 2})
	require.NoError(t, err)
	require.Equal(t, "CSR", m.Format())
	require.Equal(t, 5, m.NNZ())
	require.Equal(t, 3, m.NMajor())
	require.Equal(t, 4, m.NMinor())
	require.True(t, m.Owned())

	// Empty lanes and empty shapes.
	_, err = sparse.NewCSC[int](3, 2, []int{0, 0, 0}, nil, nil)
	require.NoError(t, err)
	_, err = sparse.NewCSR[int](0, 5, []int{0}, nil, nil)
	require.NoError(t, err)
	_, err = sparse.NewCSR[int](5, 0, []int{0, 0, 0, 0, 0, 0}, nil, nil)
	require.NoError(t, err)
}

func TestTryFromParts_StructureErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		offsets []int
		idx     []int
		values  []int
		kind    error
		lane    int
	}{
		{"OffsetsTooShort", []int{0, 1, 2}, []int{0, 1}, []int{1, 1}, sparse.ErrInvalidOffsets, -1},
		{"OffsetsTooLong", []int{0, 1, 2, 2, 2}, []int{0, 1}, []int{1, 1}, sparse.ErrInvalidOffsets, -1},
		{"FirstNotZero", []int{1, 1, 2, 2}, []int{0, 1}, []int{1, 1}, sparse.ErrInvalidOffsets, 0},
		{"LastNotNNZ", []int{0, 1, 2, 3}, []int{0, 1}, []int{1, 1}, sparse.ErrInvalidOffsets, 3},
		{"Decreasing", []int{0, 2, 1, 2}, []int{0, 1}, []int{1, 1}, sparse.ErrInvalidOffsets, 1},
		{"MinorTooLarge", []int{0, 1, 2, 2}, []int{0, 4}, []int{1, 1}, sparse.ErrMinorIndexOutOfBounds, 1},
		{"MinorNegative", []int{0, 1, 2, 2}, []int{-1, 0}, []int{1, 1}, sparse.ErrMinorIndexOutOfBounds, 0},
		{"Unsorted", []int{0, 2, 2, 2}, []int{3, 1}, []int{1, 1}, sparse.ErrUnsortedMinorIndices, 0},
		{"Duplicate", []int{0, 0, 2, 2}, []int{1, 1}, []int{1, 1}, sparse.ErrUnsortedMinorIndices, 1},
		{"LengthMismatch", []int{0, 1, 2, 2}, []int{0, 1}, []int{1}, sparse.ErrLengthMismatch, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := sparse.NewCSR(3, 4, tc.offsets, tc.idx, tc.values)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.kind)
			require.ErrorIs(t, err, sparse.ErrMalformedStructure)

			var se *sparse.StructureError
			require.True(t, errors.As(err, &se))
			require.Equal(t, tc.lane, se.Lane)
		})
	}

	_, err := sparse.NewCSR[int](-1, 2, []int{0}, nil, nil)
	require.ErrorIs(t, err, sparse.ErrInvalidShape)
}

func TestView_ReadOnly(t *testing.T) {
	t.Parallel()

	offsets, idx, vals := []int{0, 1, 3}, []int{2, 0, 1}, []float64{1, 2, 3}
	v, err := sparse.ViewCSR(2, 3, offsets, idx, vals)
	require.NoError(t, err)
	require.False(t, v.Owned())

	_, err = v.ValuesMut()
	require.ErrorIs(t, err, sparse.ErrReadOnly)

	// Same read contract as an owned matrix.
	x, ok := v.Get(1, 1)
	require.True(t, ok)
	require.Equal(t, 3.0, x)

	owned := v.ToOwned()
	require.True(t, owned.Owned())
	require.True(t, owned.Equal(v))
	w, err := owned.ValuesMut()
	require.NoError(t, err)
	w[0] = 100
	require.Equal(t, 1.0, vals[0], "ToOwned copies the caller's buffers")

	require.Same(t, owned, owned.ToOwned())

	// Disassembling a view copies.
	_, _, dv := v.Disassemble()
	dv[0] = -1
	require.Equal(t, 1.0, vals[0])

	_, err = sparse.ViewCSC(2, 3, []int{0, 1}, idx, vals)
	require.ErrorIs(t, err, sparse.ErrInvalidOffsets)
}

func TestValuesMut_Owned(t *testing.T) {
	t.Parallel()

	m := MustCSC(t, 2, 2, []int{0, 1, 2}, []int{1, 0}, []int{4, 5})
	w, err := m.ValuesMut()
	require.NoError(t, err)
	w[1] = 50

	x, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 50, x)
}

func TestGetAt(t *testing.T) {
	t.Parallel()

	// [[1 0 3]
	//  [0 5 0]]
	m := MustCSR(t, 2, 3, []int{0, 2, 3}, []int{0, 2, 1}, []int{1, 3, 5})

	tests := []struct {
		i, j   int
		want   int
		stored bool
	}{
		{0, 0, 1, true},
		{0, 1, 0, false},
		{0, 2, 3, true},
		{1, 1, 5, true},
		{1, 2, 0, false},
		{5, 0, 0, false},
		{0, -1, 0, false},
	}
	for _, tc := range tests {
		v, ok := m.Get(tc.i, tc.j)
		require.Equal(t, tc.stored, ok, "(%d,%d)", tc.i, tc.j)
		require.Equal(t, tc.want, v, "(%d,%d)", tc.i, tc.j)
	}

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestLanes_And_Triplets(t *testing.T) {
	t.Parallel()

	// CSC of [[1 0 3]
	//         [0 5 0]]
	m := MustCSC(t, 2, 3, []int{0, 1, 2, 3}, []int{0, 1, 0}, []int{1, 5, 3})

	l, err := m.Lane(2)
	require.NoError(t, err)
	require.Equal(t, 2, l.Major)
	require.Equal(t, []int{0}, l.Minor)
	require.Equal(t, []int{3}, l.Values)
	require.Equal(t, 1, l.Len())

	_, err = m.Lane(3)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)

	var majors []int
	for k, lane := range m.Lanes() {
		require.Equal(t, k, lane.Major)
		majors = append(majors, k)
	}
	require.Equal(t, []int{0, 1, 2}, majors)

	// Native (major, minor) order, labelled (row, col).
	require.Equal(t, []sparse.Triplet[int]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 5},
		{Row: 0, Col: 2, Value: 3},
	}, slices.Collect(m.Triplets()))
}

func TestZero_Clone_Equal(t *testing.T) {
	t.Parallel()

	z, err := sparse.ZeroCSR[float64](3, 2)
	require.NoError(t, err)
	require.Equal(t, 0, z.NNZ())
	require.Equal(t, []int{0, 0, 0, 0}, z.Offsets())

	zc, err := sparse.ZeroCSC[float64](3, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, zc.Offsets())

	_, err = sparse.ZeroCSR[float64](-1, 2)
	require.ErrorIs(t, err, sparse.ErrInvalidShape)

	m := MustCSR(t, 2, 2, []int{0, 1, 2}, []int{1, 0}, []float64{1, 2})
	c := m.Clone()
	require.True(t, c.Equal(m))
	w, err := c.ValuesMut()
	require.NoError(t, err)
	w[0] = 0 // explicit zero: still stored, so no longer Equal
	require.False(t, c.Equal(m))
	require.False(t, m.Equal(nil))

	require.Contains(t, m.String(), "CSR 2×2 nnz=2")
	require.Contains(t, m.String(), "(1, 0) 2")
}

func TestTrustedConstructor_NoValidation(t *testing.T) {
	t.Parallel()

	// The trusted path takes parts as given; callers own the invariants.
	m := sparse.CSRFromPartsUnchecked_TestOnly(1, 2, []int{0, 1}, []int{1}, []int{7})
	v, ok := m.Get(0, 1)
	require.True(t, ok)
	require.Equal(t, 7, v)
}
