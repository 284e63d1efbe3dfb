// SPDX-License-Identifier: MIT

// Package matrix provides the dense collaborator used by the sparse engine.
//
// What
//
//   - Dense[T]: a row-major, bounds-checked dense matrix over any Scalar
//     element type (integers, floats, complex numbers).
//   - Matrix[T]: the minimal interface the sparse package needs from a dense
//     type: shape, element read/write, deep clone.
//   - Element-wise Add/Sub/Neg/Scale kernels with *Dense fast-paths.
//   - gonum interop: Gonum wraps a *mat.Dense so it satisfies Matrix[float64];
//     FromGonum / ToGonum copy between the two representations.
//
// Why
//
//	The sparse conversion routines (dense → COO, dense → CSR/CSC and back)
//	only need shape queries, At/Set and a column-major traversal. Keeping
//	that contract in its own package lets the sparse code run against
//	Dense[T] (fast-path over the flat buffer) or any foreign matrix through
//	the generic At/Set fallback.
//
// Determinism
//
//	All kernels use fixed loop orders (i→j for row-major, j→i for
//	column-major traversal). No map iteration, no randomness.
//
// Errors
//
//	Public accessors never panic on bad indices; they return ErrOutOfRange
//	wrapped with the method name and coordinates. Use errors.Is to match.
//
// Complexity
//
//   - NewDense / NewZeros: O(r*c) zero-init.
//   - At / Set / AddAt: O(1).
//   - Clone, Do, DoColumns, Apply, element-wise ops: O(r*c).
package matrix
