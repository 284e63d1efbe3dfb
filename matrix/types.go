// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the dense collaborator interface.
// This file contains ONLY domain-facing types; errors live in errors.go and
// the concrete Dense implementation in impl_dense.go.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the numeric capability set every element type must provide:
// value copy, comparison with the zero value, and the arithmetic operators
// + - * / plus unary negation.
//
// Callers that need a policy the operators cannot express (e.g. a custom
// duplicate combinator) pass it as an explicit function value.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Matrix is a two-dimensional mutable array of T values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}

// Shape is a (rows, cols) pair. It is comparable and prints as "r×c".
type Shape struct {
	Rows, Cols int
}

// ShapeOf reads the shape of m once.
func ShapeOf[T Scalar](m Matrix[T]) Shape {
	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// String renders the shape as "r×c".
func (s Shape) String() string { return fmt.Sprintf("%d×%d", s.Rows, s.Cols) }
