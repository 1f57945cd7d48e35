// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for reader construction and for
// the type-coercing facade. This file defines:
//   - Option / Options (functional options with internal state) for NewDense,
//     NewCSC, NewSeed and Bind;
//   - ReaderOption[T] for NewReader;
//   - documented defaults (constants);
//   - gatherOptions / gatherReaderOptions helpers (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on nonsensical values (programmer error).
//   - Validation of borrowed buffers is never optional.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEagerIndex builds a Seed's column index on first extraction
	// (false) instead of at construction (true).
	DefaultEagerIndex = false

	// DefaultLogical reads integer stores as KindInteger.
	DefaultLogical = false

	// DefaultLocalIndices makes facade sparse extraction report absolute
	// indices. When true, indices are relative to first.
	DefaultLocalIndices = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilMaterializeHook = "matrix: WithOnMaterialize: hook must be non-nil"
)

// ---------- Construction options ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective construction configuration after applying
// Option setters. Fields are unexported; constructors accept ...Option.
type Options struct {
	eagerIndex    bool          // DefaultEagerIndex
	logical       bool          // DefaultLogical
	onMaterialize func(nnz int) // nil ⇒ no hook
}

// WithEagerIndex makes NewSeed build its column index during construction
// rather than on first use. Ignored by Dense and CSC.
func WithEagerIndex() Option {
	return func(o *Options) { o.eagerIndex = true }
}

// WithLogical declares an integer store as logical: every stored value must
// be 0, 1 or IntNA, and Kind() reports KindLogical. Construction of a
// floating-point store with this option fails with ErrMalformedLayout.
func WithLogical() Option {
	return func(o *Options) { o.logical = true }
}

// WithOnMaterialize registers a hook invoked exactly once when a Seed builds
// its column index, with the number of indexed entries. The hook runs after
// the index is in place and may read from the same Seed. Ignored by Dense
// and CSC. Panics if fn is nil.
func WithOnMaterialize(fn func(nnz int)) Option {
	if fn == nil {
		panic(panicNilMaterializeHook)
	}

	return func(o *Options) { o.onMaterialize = fn }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eagerIndex: DefaultEagerIndex,
		logical:    DefaultLogical,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// ---------- Facade options ----------

// ReaderOption configures a Reader[T].
type ReaderOption[T Value] func(*readerOptions[T])

type readerOptions[T Value] struct {
	empty T    // value for structurally absent entries in dense extraction
	local bool // DefaultLocalIndices
}

// WithEmpty sets the value that structurally absent entries of sparse
// variants read back as in dense extraction. The default is 0. The value is
// passed to the variant unchanged; dense variants have no absent entries
// and never use it.
func WithEmpty[T Value](v T) ReaderOption[T] {
	return func(o *readerOptions[T]) { o.empty = v }
}

// WithLocalIndices makes sparse extraction report indices relative to the
// start of the requested range (idx - first).
func WithLocalIndices[T Value]() ReaderOption[T] {
	return func(o *readerOptions[T]) { o.local = true }
}

// gatherReaderOptions applies opts over the defaults.
func gatherReaderOptions[T Value](opts ...ReaderOption[T]) readerOptions[T] {
	o := readerOptions[T]{local: DefaultLocalIndices}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
