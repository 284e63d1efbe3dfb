// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvsparse/sparse"
)

func TestScale_Div(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, 2, 3, []int{0, 2, 3}, []int{0, 2, 1}, []float64{1, 3, 5})

	s, err := sparse.Scale(m, 2.0)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 6, 10}, s.Values())
	require.Equal(t, m.Offsets(), s.Offsets())
	require.Equal(t, m.MinorIndices(), s.MinorIndices())

	d, err := sparse.Div(m, 4.0)
	require.NoError(t, err)
	require.True(t, floats.EqualApprox([]float64{0.25, 0.75, 1.25}, d.Values(), 1e-15))

	// Scaling by zero keeps the structure: explicit zeros.
	z, err := sparse.Scale(m, 0.0)
	require.NoError(t, err)
	require.Equal(t, 3, z.NNZ())

	// The input values are untouched and the result owns its values.
	require.Equal(t, []float64{1, 3, 5}, m.Values())
	w, err := s.ValuesMut()
	require.NoError(t, err)
	w[0] = -7
	require.Equal(t, 1.0, m.Values()[0])
}

func TestDiv_ByZero(t *testing.T) {
	t.Parallel()

	mi := MustCSC(t, 1, 1, []int{0, 1}, []int{0}, []int{4})
	_, err := sparse.Div(mi, 0)
	require.ErrorIs(t, err, sparse.ErrDivideByZero)

	mf := MustCSR(t, 1, 1, []int{0, 1}, []int{0}, []float64{4})
	_, err = sparse.Div(mf, 0.0)
	require.ErrorIs(t, err, sparse.ErrDivideByZero)

	q, err := sparse.Div(mi, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1}, q.Values(), "integer division truncates")

	_, err = sparse.Scale[int, sparse.RowMajor](nil, 2)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Div[int, sparse.RowMajor](nil, 2)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestScale_ViewInput(t *testing.T) {
	t.Parallel()

	v, err := sparse.ViewCSR(1, 2, []int{0, 2}, []int{0, 1}, []complex128{1 + 1i, 2})
	require.NoError(t, err)
	s, err := sparse.Scale(v, 1i)
	require.NoError(t, err)
	require.True(t, s.Owned())
	require.Equal(t, []complex128{-1 + 1i, 2i}, s.Values())
}

func TestScale_DisassembleDoesNotAliasSource(t *testing.T) {
	t.Parallel()

	m := MustCSR(t, 2, 2, []int{0, 1, 2}, []int{0, 1}, []int{1, 2})
	s, err := sparse.Scale(m, 3)
	require.NoError(t, err)
	off, minor, vals := s.Disassemble()
	off[1], minor[0], vals[0] = 2, 1, -1

	require.Equal(t, []int{0, 1, 2}, m.Offsets())
	require.Equal(t, []int{0, 1}, m.MinorIndices())
	got, ok := m.Get(1, 1)
	require.True(t, ok)
	require.Equal(t, 2, got)

	// Same for a view over caller-owned buffers.
	offsets, minorIdx := []int{0, 1, 2}, []int{1, 0}
	v, err := sparse.ViewCSR(2, 2, offsets, minorIdx, []int{5, 6})
	require.NoError(t, err)
	d, err := sparse.Div(v, 5)
	require.NoError(t, err)
	dOff, dMinor, _ := d.Disassemble()
	dOff[1], dMinor[1] = 0, 1

	require.Equal(t, []int{0, 1, 2}, offsets)
	require.Equal(t, []int{1, 0}, minorIdx)
	got, ok = v.Get(1, 0)
	require.True(t, ok)
	require.Equal(t, 6, got)
}
