// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge gonum's *mat.Dense into the Matrix[float64] contract so the
//     sparse conversions accept gonum matrices directly (At/Set fallback).
//   - Copy helpers in both directions for callers that want a Dense[float64]
//     or need to hand results back to gonum routines.
//
// Notes:
//   - gonum panics on out-of-range At/Set and refuses zero-sized NewDense;
//     the adapter checks bounds first and maps both cases to sentinels.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum adapts a *mat.Dense to Matrix[float64]. Reads and writes go straight
// to the wrapped matrix (no copy).
type Gonum struct {
	m *mat.Dense
}

var _ Matrix[float64] = (*Gonum)(nil)

// WrapGonum wraps m. Returns ErrNilMatrix for a nil pointer.
func WrapGonum(m *mat.Dense) (*Gonum, error) {
	if m == nil {
		return nil, matrixErrorf("WrapGonum", ErrNilMatrix)
	}

	return &Gonum{m: m}, nil
}

// Unwrap returns the underlying gonum matrix.
func (g *Gonum) Unwrap() *mat.Dense { return g.m }

// Rows returns the number of rows. O(1).
func (g *Gonum) Rows() int {
	r, _ := g.m.Dims()
	return r
}

// Cols returns the number of columns. O(1).
func (g *Gonum) Cols() int {
	_, c := g.m.Dims()
	return c
}

func (g *Gonum) inBounds(i, j int) bool {
	r, c := g.m.Dims()
	return i >= 0 && i < r && j >= 0 && j < c
}

// At reads (i, j) or returns ErrOutOfRange.
func (g *Gonum) At(i, j int) (float64, error) {
	if !g.inBounds(i, j) {
		return 0, fmt.Errorf("Gonum.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return g.m.At(i, j), nil
}

// Set writes (i, j) or returns ErrOutOfRange.
func (g *Gonum) Set(i, j int, v float64) error {
	if !g.inBounds(i, j) {
		return fmt.Errorf("Gonum.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	g.m.Set(i, j, v)

	return nil
}

// Clone deep-copies the wrapped matrix.
func (g *Gonum) Clone() Matrix[float64] {
	return &Gonum{m: mat.DenseCopyOf(g.m)}
}

// FromGonum copies any gonum matrix into a new Dense[float64].
// Complexity: O(r*c).
func FromGonum(m mat.Matrix) (*Dense[float64], error) {
	if m == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := m.Dims()
	out := newDenseZeroOK[float64](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}

	return out, nil
}

// ToGonum copies m into a freshly allocated *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrInvalidDimensions for 0×N / N×0 (gonum has no empty dense matrix).
//
// Complexity: O(r*c).
func ToGonum(m Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf("ToGonum", ErrInvalidDimensions)
	}

	// Dense fast-path: gonum's row-major layout matches ours; hand over a copy.
	if d, ok := m.(*Dense[float64]); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)
		return mat.NewDense(r, c, buf), nil
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToGonum", err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}
