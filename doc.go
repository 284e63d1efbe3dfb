// SPDX-License-Identifier: MIT

// Package lvsparse is a sparse-matrix toolkit: coordinate and compressed
// (CSR / CSC) storage, conversions between them and dense matrices, and
// element-wise arithmetic by sorted-stream merge.
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/: generic Dense[T], the Matrix[T] contract, element-wise dense
//	         kernels and gonum interop
//	sparse/: CooMatrix, CsMatrix (CSR/CSC), conversions, Sub/Add/Merge,
//	         scalar maps
//
// Quick example:
//
//	[[1 0 3]      COO (column-major)        CSR
//	 [0 5 0]]  →  (0,0,1) (1,1,5) (0,2,3) → offsets [0 2 3]
//	                                          cols    [0 2 1]
//	                                          values  [1 3 5]
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse
