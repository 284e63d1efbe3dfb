// SPDX-License-Identifier: MIT

// Package sparse converts numeric matrices between coordinate and compressed
// sparse forms and does element-wise arithmetic on them by merge-join.
//
// Formats
//
//   - CooMatrix[T]: coordinate (triplet) store. Append-only, unsorted,
//     duplicates allowed; the assembly format.
//   - CsMatrix[T, C]: compressed storage with orientation C. CSR[T] (rows
//     are lanes) and CSC[T] (columns are lanes) are aliases for the two
//     orientations RowMajor and ColMajor.
//
// Conversions
//
//	dense ──CooFromDense──▶ COO ──CSRFromCoo / CSCFromCoo──▶ CSR / CSC
//	  ▲                      │                                │
//	  └──────DenseFromCoo────┘      CSCFromCSR / CSRFromCSC ◀─┘
//	  └──────DenseFromCSR / DenseFromCSC / CSRFromDense / CSCFromDense
//
//	COO → compressed sorts (major, minor) keys and folds duplicates; the
//	default fold is addition, WithCombinator replaces it. The sort is not
//	stable, so only a commutative and associative combinator gives a result
//	independent of insertion order.
//
// Arithmetic
//
//	Sub, Add and the general Merge walk two operands as sorted streams and
//	emit the result in order, O(nnz₁ + nnz₂). Operands may differ in
//	orientation; the result follows the left one. Exact cancellations are
//	kept as explicit zeros. SubDenseCs, SubCsDense and AddDenseCs mix a
//	dense and a compressed operand; Scale and Div map stored values.
//
// Trust tiers
//
//	NewCSR, NewCSC, ViewCSR, ViewCSC and TryFromParts check every structural
//	invariant and report a *StructureError. Results of the algorithms here
//	are assembled without re-checking, since the algorithms produce valid
//	parts by construction.
//
// Errors
//
//	Binary operations on different shapes return *ShapeMismatchError
//	(errors.Is ErrShapeMismatch) before touching any entry. Only the
//	functional options panic, and only on programmer error.
//
// Concurrency
//
//	Every routine is synchronous and allocates its own output; independent
//	inputs may be processed from several goroutines. A CooMatrix passed to
//	CSRFromCoo/CSCFromCoo is consumed and left empty.
package sparse
