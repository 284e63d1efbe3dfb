// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for COO construction and
// COO → compressed conversion. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option[T].
//
// Where each option applies:
//   - WithCapacity:   NewCoo only.
//   - WithCombinator: CSRFromCoo and CSCFromCoo only.
//
// An option passed to an entry point it does not apply to is ignored.
package sparse

import "github.com/katalvlaran/lvsparse/matrix"

// ---------- Defaults (single source of truth) ----------

// DefaultCapacity is the initial triplet capacity of a new CooMatrix.
// Zero lets append grow the buffers on demand.
const DefaultCapacity = 0

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilCombinator    = "sparse: WithCombinator: combinator must not be nil"
	panicNegativeCapacity = "sparse: WithCapacity: capacity must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option[T matrix.Scalar] func(*options[T])

// options stores the effective configuration after applying Option setters.
type options[T matrix.Scalar] struct {
	combine  func(prev, cur T) T // duplicate resolution; default addition
	capacity int                 // initial COO capacity; DefaultCapacity
}

// WithCombinator sets the function used to merge triplets sharing a
// (row, col) during COO → compressed conversion: the stored value becomes
// combine(prev, cur). Read by CSRFromCoo and CSCFromCoo; NewCoo ignores it.
//
// Behavior highlights:
//   - The conversion sorts with an unstable sort, so the order in which
//     duplicates reach combine is unspecified. Only a commutative and
//     associative combine (sum, max, min, product) gives a deterministic
//     result; anything else yields one of the possible orderings.
//
// Panics when combine is nil (programmer error).
func WithCombinator[T matrix.Scalar](combine func(prev, cur T) T) Option[T] {
	if combine == nil {
		panic(panicNilCombinator)
	}

	return func(o *options[T]) { o.combine = combine }
}

// WithCapacity pre-sizes a new CooMatrix for n triplets. Read by NewCoo;
// the conversions ignore it.
// Panics when n < 0 (programmer error).
func WithCapacity[T matrix.Scalar](n int) Option[T] {
	if n < 0 {
		panic(panicNegativeCapacity)
	}

	return func(o *options[T]) { o.capacity = n }
}

// addCombine is the default duplicate combinator.
func addCombine[T matrix.Scalar](prev, cur T) T { return prev + cur }

// defaultOptions returns the documented defaults.
func defaultOptions[T matrix.Scalar]() options[T] {
	return options[T]{
		combine:  addCombine[T],
		capacity: DefaultCapacity,
	}
}

// gatherOptions applies user options over the defaults, skipping nil entries.
func gatherOptions[T matrix.Scalar](user ...Option[T]) options[T] {
	o := defaultOptions[T]()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
