// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures shared by the dense tests.
//   - hide masks *Dense so kernels take their generic At/Set fallback.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Useful to assert fast-path == fallback.
type hide[T matrix.Scalar] struct{ matrix.Matrix[T] }

// MustDense allocates an r×c zero Dense or fails the test.
func MustDense[T matrix.Scalar](t *testing.T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewZeros[T](r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c Dense from a row-major slice or fails.
func NewFilledDense[T matrix.Scalar](t *testing.T, r, c int, data []T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFromSlice(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails.
func MustAt[T matrix.Scalar](t *testing.T, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
