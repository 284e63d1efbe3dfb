// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   - Deterministic generators (fixed seeds) for COO / CSR / CSC inputs used
//     by the property-style tests.
//   - Must* wrappers that fail the test instead of returning errors.
//   - Values are drawn from [-9, 9] \ {0}, so generated matrices never hold
//     explicit zeros unless a test adds them on purpose.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Number of random cases per property.
const propertyCases = 64

// Largest side of a generated matrix.
const maxDim = 7

// hide wraps a Matrix to mask *matrix.Dense and force the At-based paths.
type hide[T matrix.Scalar] struct{ matrix.Matrix[T] }

// newRand returns a deterministic generator for case n of a property.
func newRand(n int) *rand.Rand {
	return rand.New(rand.NewSource(int64(1000 + n)))
}

// nonZero draws a value in [-9, 9] without 0.
func nonZero(rng *rand.Rand) int {
	v := rng.Intn(18) - 9
	if v >= 0 {
		v++
	}

	return v
}

// randomShape draws a shape in [0, maxDim]², empty dimensions included.
func randomShape(rng *rand.Rand) (int, int) {
	return rng.Intn(maxDim + 1), rng.Intn(maxDim + 1)
}

// randomCoo draws up to nnz triplets in arbitrary order. With dups=false
// every (row, col) appears at most once.
func randomCoo(t *testing.T, rng *rand.Rand, nrows, ncols, nnz int, dups bool) *sparse.CooMatrix[int] {
	t.Helper()
	coo, err := sparse.NewCoo[int](nrows, ncols)
	require.NoError(t, err)
	if nrows == 0 || ncols == 0 {
		return coo
	}
	seen := make(map[[2]int]bool)
	for k := 0; k < nnz; k++ {
		i, j := rng.Intn(nrows), rng.Intn(ncols)
		if !dups && seen[[2]int{i, j}] {
			continue
		}
		seen[[2]int{i, j}] = true
		require.NoError(t, coo.Push(i, j, nonZero(rng)))
	}

	return coo
}

// randomCSR draws a CSR without explicit zeros.
func randomCSR(t *testing.T, rng *rand.Rand, nrows, ncols int) *sparse.CSR[int] {
	t.Helper()
	coo := randomCoo(t, rng, nrows, ncols, rng.Intn(nrows*ncols+1), false)
	m, err := sparse.CSRFromCoo(coo)
	require.NoError(t, err)

	return m
}

// randomCSC draws a CSC without explicit zeros.
func randomCSC(t *testing.T, rng *rand.Rand, nrows, ncols int) *sparse.CSC[int] {
	t.Helper()
	coo := randomCoo(t, rng, nrows, ncols, rng.Intn(nrows*ncols+1), false)
	m, err := sparse.CSCFromCoo(coo)
	require.NoError(t, err)

	return m
}

// randomDense draws a dense matrix where roughly half the cells are zero.
func randomDense(t *testing.T, rng *rand.Rand, nrows, ncols int) *matrix.Dense[int] {
	t.Helper()
	data := make([]int, nrows*ncols)
	for k := range data {
		if rng.Intn(2) == 0 {
			data[k] = nonZero(rng)
		}
	}
	d, err := matrix.NewDenseFromSlice(nrows, ncols, data)
	require.NoError(t, err)

	return d
}

// MustDenseRows builds a Dense from rows or fails.
func MustDenseRows[T matrix.Scalar](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// MustCoo builds a COO from parallel slices or fails.
func MustCoo[T matrix.Scalar](t *testing.T, nrows, ncols int, rows, cols []int, values []T) *sparse.CooMatrix[T] {
	t.Helper()
	c, err := sparse.TryFromTriplets(nrows, ncols, rows, cols, values)
	require.NoError(t, err)

	return c
}

// MustCSR validates parts into a CSR or fails.
func MustCSR[T matrix.Scalar](t *testing.T, nrows, ncols int, offsets, idx []int, values []T) *sparse.CSR[T] {
	t.Helper()
	m, err := sparse.NewCSR(nrows, ncols, offsets, idx, values)
	require.NoError(t, err)

	return m
}

// MustCSC validates parts into a CSC or fails.
func MustCSC[T matrix.Scalar](t *testing.T, nrows, ncols int, offsets, idx []int, values []T) *sparse.CSC[T] {
	t.Helper()
	m, err := sparse.NewCSC(nrows, ncols, offsets, idx, values)
	require.NoError(t, err)

	return m
}

// cooDense materialises a COO or fails.
func cooDense[T matrix.Scalar](t *testing.T, c *sparse.CooMatrix[T]) *matrix.Dense[T] {
	t.Helper()
	d, err := sparse.DenseFromCoo(c)
	require.NoError(t, err)

	return d
}

// csrDense materialises a CSR or fails.
func csrDense[T matrix.Scalar](t *testing.T, m *sparse.CSR[T]) *matrix.Dense[T] {
	t.Helper()
	d, err := sparse.DenseFromCSR(m)
	require.NoError(t, err)

	return d
}

// cscDense materialises a CSC or fails.
func cscDense[T matrix.Scalar](t *testing.T, m *sparse.CSC[T]) *matrix.Dense[T] {
	t.Helper()
	d, err := sparse.DenseFromCSC(m)
	require.NoError(t, err)

	return d
}

// requireSameDense compares two dense matrices by shape and buffer and
// prints a go-cmp diff on mismatch.
func requireSameDense[T matrix.Scalar](t *testing.T, want, got *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, matrix.ShapeOf[T](want), matrix.ShapeOf[T](got), "shape")
	if diff := cmp.Diff(want.RawRowMajor(), got.RawRowMajor()); diff != "" {
		t.Fatalf("dense mismatch (-want +got):\n%s", diff)
	}
}

// parts is a comparable snapshot of a compressed matrix.
type parts[T matrix.Scalar] struct {
	Rows, Cols int
	Offsets    []int
	Minor      []int
	Values     []T
}

func csParts[T matrix.Scalar, C sparse.Compression](m *sparse.CsMatrix[T, C]) parts[T] {
	return parts[T]{
		Rows:    m.Rows(),
		Cols:    m.Cols(),
		Offsets: m.Offsets(),
		Minor:   m.MinorIndices(),
		Values:  m.Values(),
	}
}

// requireParts compares a compressed matrix against expected parts with a
// go-cmp diff. Empty and nil slices compare equal.
func requireParts[T matrix.Scalar, C sparse.Compression](t *testing.T, want parts[T], got *sparse.CsMatrix[T, C]) {
	t.Helper()
	if diff := cmp.Diff(want, csParts(got), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("%s parts mismatch (-want +got):\n%s", got.Format(), diff)
	}
}
