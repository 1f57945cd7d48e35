// Package matrix offers read-only, layout-agnostic row and column access to
// externally owned matrices.
//
// The matrix package provides:
//
//   - Dense[S]: column-major nrow*ncol buffers; contiguous columns, strided rows.
//   - CSC[S]: compressed-sparse-column value/index/pointer triplets; binary
//     search within a column, per-column search for rows.
//   - Seed[S]: unordered (value, row, col) triplets, indexed once on first
//     use and cached for the handle's lifetime.
//   - Matrix / SparseMatrix: the uniform contract all three satisfy.
//   - Reader[T]: a facade that reads any Matrix as int or float64, with a
//     caller-chosen value for absent sparse entries.
//   - Bind: one-time dispatch from a buffer description (Source) to a variant.
//
// Buffers are borrowed, never copied or freed; values are extracted into
// caller-owned slices sized from Rows()/Cols(). Constructors validate every
// structural invariant up front and fail with ErrMalformedLayout; accessors
// fail with ErrOutOfRange before writing anything.
//
// Quick example:
//
//	m, _ := matrix.NewCSC(3, 2,
//		[]float64{1, 2.7, 5},  // values
//		[]int{0, 1, 2},        // row indices
//		[]int{0, 2, 3})        // column pointers
//	col := make([]int, m.Rows())
//	_ = m.ColInt(0, col, 0, m.Rows()) // col == [1 2 0]
//
// See the examples in this package for usage patterns.
package matrix
