// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set and the two typed errors of the engine.
//
// All exported functions return these sentinels (bare, wrapped with
// fmt.Errorf("op: %w", ...), or inside a typed error) and tests match them
// with errors.Is. No public entry point panics on user input; only the
// functional-option constructors panic, on programmer error.
//
// ERROR PRIORITY (checked in this order by every entry point):
// nil operand -> shape -> structural violations.

package sparse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsparse/matrix"
)

var (
	// ErrNilMatrix indicates a nil sparse or dense operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrInvalidShape is returned for negative row or column counts.
	ErrInvalidShape = errors.New("sparse: invalid shape")

	// ErrIndexOutOfBounds indicates a (row, col) outside the matrix shape
	// (COO insertion, element lookup, lane lookup).
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrShapeMismatch is the structural-mismatch sentinel: the operands of a
	// binary operation disagree in shape. Always delivered inside a
	// *ShapeMismatchError carrying both shapes.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrMalformedStructure is the umbrella for every invariant violation a
	// validating constructor can detect. A *StructureError matches both this
	// sentinel and its specific kind below.
	ErrMalformedStructure = errors.New("sparse: malformed structure")

	// ErrInvalidOffsets: wrong offsets length, offsets[0] != 0,
	// decreasing offsets, or offsets[nmajor] != nnz.
	ErrInvalidOffsets = errors.New("sparse: invalid offsets")

	// ErrMinorIndexOutOfBounds: a stored minor index is negative or >= the
	// minor dimension.
	ErrMinorIndexOutOfBounds = errors.New("sparse: minor index out of bounds")

	// ErrUnsortedMinorIndices: minor indices within a lane are not strictly
	// increasing (unsorted or duplicated).
	ErrUnsortedMinorIndices = errors.New("sparse: minor indices unsorted or duplicated")

	// ErrLengthMismatch: parallel sequences (indices/values, COO triplets)
	// differ in length.
	ErrLengthMismatch = errors.New("sparse: length mismatch")

	// ErrReadOnly is returned when mutating the values of a borrowed view.
	ErrReadOnly = errors.New("sparse: read-only view")

	// ErrDivideByZero is returned by Div for an exactly zero divisor.
	ErrDivideByZero = errors.New("sparse: division by zero")

	// ErrInvalidOperator is returned by Merge when a MergeOps field is nil.
	ErrInvalidOperator = errors.New("sparse: invalid merge operator")
)

// sparseErrorf wraps err with an operation tag: "<op>: <err>".
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ShapeMismatchError reports a binary operation over operands of different
// shapes. It is produced before any traversal; no partial result exists.
//
// errors.Is matches ErrShapeMismatch and matrix.ErrDimensionMismatch.
type ShapeMismatchError struct {
	Op          string       // operation name, e.g. "Sub"
	Left, Right matrix.Shape // operand shapes as given
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: left %v, right %v: %v", e.Op, e.Left, e.Right, ErrShapeMismatch)
}

// Unwrap exposes both the sparse and the dense dimension sentinels.
func (e *ShapeMismatchError) Unwrap() []error {
	return []error{ErrShapeMismatch, matrix.ErrDimensionMismatch}
}

func shapeMismatch(op string, left, right matrix.Shape) error {
	return &ShapeMismatchError{Op: op, Left: left, Right: right}
}

// StructureError reports the first invariant violation found by a validating
// constructor. Lane and Pos locate it (-1 when not applicable).
//
// errors.Is matches ErrMalformedStructure and Kind.
type StructureError struct {
	Kind   error  // ErrInvalidOffsets, ErrMinorIndexOutOfBounds, ErrUnsortedMinorIndices or ErrLengthMismatch
	Lane   int    // major lane, or -1
	Pos    int    // position in the minor-index array, or -1
	Detail string // human-readable specifics
}

func (e *StructureError) Error() string {
	msg := e.Kind.Error()
	if e.Lane >= 0 {
		msg += fmt.Sprintf(" (lane %d", e.Lane)
		if e.Pos >= 0 {
			msg += fmt.Sprintf(", pos %d", e.Pos)
		}
		msg += ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap exposes the specific kind and the umbrella sentinel.
func (e *StructureError) Unwrap() []error {
	return []error{e.Kind, ErrMalformedStructure}
}

func structureErr(kind error, lane, pos int, format string, args ...any) *StructureError {
	return &StructureError{Kind: kind, Lane: lane, Pos: pos, Detail: fmt.Sprintf(format, args...)}
}
