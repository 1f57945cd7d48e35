// SPDX-License-Identifier: MIT

// Package matrix defines the uniform read-only access contract over
// matrices stored in different physical layouts.
//
// What & Why:
//
//	The Matrix interface lets numerical code pull rows and columns out of a
//	dense column-major buffer, a compressed-sparse-column triplet, or an
//	unordered "seed" triplet list through the same calls, without converting
//	the whole matrix. The concrete variant is chosen once, at construction
//	(NewDense, NewCSC, NewSeed or Bind); every later call is plain interface
//	dispatch to that variant.
//
// Complexity:
//
//	Rows(), Cols(), Kind(), Layout() and NNZ() run in O(1).
//	Row/Col extraction is proportional to the requested range; see each
//	variant for its per-axis cost.
package matrix

import "github.com/katalvlaran/linmat/matrix/storage"

// Value is the set of element types a store may hold and a caller may
// request: int for integer and logical data, float64 for floating-point.
type Value = storage.Number

// IntNA is the integer "missing" marker. Non-finite floating-point values
// read through an integer buffer yield IntNA, and IntNA read through a
// float64 buffer yields NaN.
const IntNA = storage.IntNA

// Matrix is a read-only view over one externally owned matrix.
//
// Every extraction method fills buf[0:last-first] with the dense values of
// the requested row (columns first..last-1) or column (rows first..last-1),
// coercing the stored values to the buffer's element type. Structurally
// absent entries of sparse variants read as 0.
//
// Errors (checked before any write):
//   - ErrOutOfRange if the index is outside the matrix or the range is invalid;
//   - ErrDimensionMismatch if len(buf) < last-first.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// Kind returns the element kind of the backing store.
	Kind() Kind

	// Layout returns the physical layout of the backing store.
	Layout() Layout

	RowInt(r int, buf []int, first, last int) error
	RowFloat(r int, buf []float64, first, last int) error
	ColInt(c int, buf []int, first, last int) error
	ColFloat(c int, buf []float64, first, last int) error
}

// SparseMatrix is a Matrix that can also report only its stored entries.
//
// The Sparse* methods write the n stored entries whose orthogonal index lies
// in [first,last) into vals[:n] and idx[:n] (absolute, ascending) and return
// n. Both buffers must hold at least last-first elements.
type SparseMatrix interface {
	Matrix

	// NNZ returns the number of stored entries. Complexity: O(1).
	NNZ() int

	SparseRowInt(r int, vals []int, idx []int, first, last int) (int, error)
	SparseRowFloat(r int, vals []float64, idx []int, first, last int) (int, error)
	SparseColInt(c int, vals []int, idx []int, first, last int) (int, error)
	SparseColFloat(c int, vals []float64, idx []int, first, last int) (int, error)
}

// filler is the package-private side of every variant: dense extraction
// with a caller-chosen value for absent entries, for one index or a block
// of them. Reader[T] uses it to propagate WithEmpty; the public methods and
// free functions call it with 0.
type filler interface {
	rowInt(r int, buf []int, first, last int, empty int) error
	rowFloat(r int, buf []float64, first, last int, empty float64) error
	colInt(c int, buf []int, first, last int, empty int) error
	colFloat(c int, buf []float64, first, last int, empty float64) error

	rowsInt(rows []int, buf []int, first, last int, empty int) error
	rowsFloat(rows []int, buf []float64, first, last int, empty float64) error
	colsInt(cols []int, buf []int, first, last int, empty int) error
	colsFloat(cols []int, buf []float64, first, last int, empty float64) error
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix       = (*Dense[float64])(nil)
	_ Matrix       = (*Dense[int])(nil)
	_ SparseMatrix = (*CSC[float64])(nil)
	_ SparseMatrix = (*CSC[int])(nil)
	_ SparseMatrix = (*Seed[float64])(nil)
	_ SparseMatrix = (*Seed[int])(nil)
	_ filler       = (*Dense[float64])(nil)
	_ filler       = (*CSC[int])(nil)
	_ filler       = (*Seed[float64])(nil)
)
