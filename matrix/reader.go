// SPDX-License-Identifier: MIT

// Package matrix - type-coercing facade.
//
// Purpose:
//   - Present one Matrix through a single output element type T (int or
//     float64), whatever the store type underneath.
//   - Carry the caller's value for structurally absent entries (WithEmpty)
//     and the index convention for sparse output (WithLocalIndices) down to
//     the bound variant unchanged.
//
// Coercion (storage.Caster):
//   - same kind → identity; int → float64 exact;
//   - float64 → int truncates toward zero, NaN/±Inf → IntNA.
//
// AI-Hints:
//   - Hold Reader[float64] and Reader[int] side by side over the same
//     Matrix to serve both kinds from one store.
//   - The free functions Row/Col/SparseRow/SparseCol do the same dispatch
//     for a bare Matrix, with default options.

package matrix

import "fmt"

// Reader extracts values of type T from any Matrix.
type Reader[T Value] struct {
	m      Matrix
	fill   filler       // nil for foreign Matrix implementations
	sparse SparseMatrix // nil when m is not sparse-capable
	shift  sparseFiller // nil when m is not one of ours
	opts   readerOptions[T]
}

// readerErrorf wraps an error with the facade context.
func readerErrorf(method string, err error) error {
	return fmt.Errorf("Reader.%s: %w", method, err)
}

// NewReader binds a facade of output type T to m.
//
// Errors:
//   - ErrNilMatrix if m is nil;
//   - ErrUnsupportedAxis if a non-zero WithEmpty or WithLocalIndices is
//     requested for a Matrix implemented outside this package, which has no
//     way to receive them.
func NewReader[T Value](m Matrix, opts ...ReaderOption[T]) (*Reader[T], error) {
	const method = "New"
	if m == nil {
		return nil, readerErrorf(method, ErrNilMatrix)
	}
	r := &Reader[T]{m: m, opts: gatherReaderOptions(opts...)}
	r.fill, _ = m.(filler)
	r.sparse, _ = m.(SparseMatrix)
	r.shift, _ = m.(sparseFiller)

	var zero T
	if r.fill == nil && r.opts.empty != zero {
		return nil, readerErrorf(method, ErrUnsupportedAxis)
	}
	if r.sparse != nil && r.shift == nil && r.opts.local {
		return nil, readerErrorf(method, ErrUnsupportedAxis)
	}

	return r, nil
}

// Matrix returns the bound matrix.
func (r *Reader[T]) Matrix() Matrix { return r.m }

// Empty returns the value absent entries read back as.
func (r *Reader[T]) Empty() T { return r.opts.empty }

// Row fills buf[:last-first] with row i, columns [first,last).
func (r *Reader[T]) Row(i int, buf []T, first, last int) error {
	if r.fill == nil {
		return Row(r.m, i, buf, first, last)
	}
	switch b := any(buf).(type) {
	case []int:
		return r.fill.rowInt(i, b, first, last, any(r.opts.empty).(int))
	case []float64:
		return r.fill.rowFloat(i, b, first, last, any(r.opts.empty).(float64))
	}

	return readerErrorf("Row", ErrUnsupportedAxis)
}

// Col fills buf[:last-first] with column j, rows [first,last).
func (r *Reader[T]) Col(j int, buf []T, first, last int) error {
	if r.fill == nil {
		return Col(r.m, j, buf, first, last)
	}
	switch b := any(buf).(type) {
	case []int:
		return r.fill.colInt(j, b, first, last, any(r.opts.empty).(int))
	case []float64:
		return r.fill.colFloat(j, b, first, last, any(r.opts.empty).(float64))
	}

	return readerErrorf("Col", ErrUnsupportedAxis)
}

// FullRow fills buf[:Cols()] with row i.
func (r *Reader[T]) FullRow(i int, buf []T) error {
	return r.Row(i, buf, 0, r.m.Cols())
}

// FullCol fills buf[:Rows()] with column j.
func (r *Reader[T]) FullCol(j int, buf []T) error {
	return r.Col(j, buf, 0, r.m.Rows())
}

// Rows fills buf with rows idx[k], columns [first,last), as a
// len(idx)×(last-first) column-major block (see the package function Rows).
func (r *Reader[T]) Rows(idx []int, buf []T, first, last int) error {
	if r.fill == nil {
		return Rows(r.m, idx, buf, first, last)
	}

	return fillRows(r.fill, idx, buf, first, last, r.opts.empty)
}

// Cols fills buf with columns idx[k], rows [first,last), as consecutive
// runs of last-first values (see the package function Cols).
func (r *Reader[T]) Cols(idx []int, buf []T, first, last int) error {
	if r.fill == nil {
		return Cols(r.m, idx, buf, first, last)
	}

	return fillCols(r.fill, idx, buf, first, last, r.opts.empty)
}

// SparseRow writes the stored entries of row i in columns [first,last) into
// vals/idx and returns their count. Fails with ErrUnsupportedAxis when the
// bound matrix is not sparse-capable.
func (r *Reader[T]) SparseRow(i int, vals []T, idx []int, first, last int) (int, error) {
	if r.sparse == nil {
		return 0, readerErrorf("SparseRow", ErrUnsupportedAxis)
	}
	if r.shift == nil {
		return SparseRow(r.sparse, i, vals, idx, first, last)
	}
	shift := r.shiftFor(first)
	switch v := any(vals).(type) {
	case []int:
		return r.shift.sparseRowInt(i, v, idx, first, last, shift)
	case []float64:
		return r.shift.sparseRowFloat(i, v, idx, first, last, shift)
	}

	return 0, readerErrorf("SparseRow", ErrUnsupportedAxis)
}

// SparseCol writes the stored entries of column j in rows [first,last) into
// vals/idx and returns their count. Fails with ErrUnsupportedAxis when the
// bound matrix is not sparse-capable.
func (r *Reader[T]) SparseCol(j int, vals []T, idx []int, first, last int) (int, error) {
	if r.sparse == nil {
		return 0, readerErrorf("SparseCol", ErrUnsupportedAxis)
	}
	if r.shift == nil {
		return SparseCol(r.sparse, j, vals, idx, first, last)
	}
	shift := r.shiftFor(first)
	switch v := any(vals).(type) {
	case []int:
		return r.shift.sparseColInt(j, v, idx, first, last, shift)
	case []float64:
		return r.shift.sparseColFloat(j, v, idx, first, last, shift)
	}

	return 0, readerErrorf("SparseCol", ErrUnsupportedAxis)
}

func (r *Reader[T]) shiftFor(first int) int {
	if r.opts.local {
		return first
	}

	return 0
}

// ---------- Generic free functions (default options) ----------

// Row fills buf[:last-first] with row i of m, dispatching on T.
func Row[T Value](m Matrix, i int, buf []T, first, last int) error {
	switch b := any(buf).(type) {
	case []int:
		return m.RowInt(i, b, first, last)
	case []float64:
		return m.RowFloat(i, b, first, last)
	}

	return ErrUnsupportedAxis
}

// Col fills buf[:last-first] with column j of m, dispatching on T.
func Col[T Value](m Matrix, j int, buf []T, first, last int) error {
	switch b := any(buf).(type) {
	case []int:
		return m.ColInt(j, b, first, last)
	case []float64:
		return m.ColFloat(j, b, first, last)
	}

	return ErrUnsupportedAxis
}

// SparseRow writes the stored entries of row i of m, dispatching on T.
func SparseRow[T Value](m SparseMatrix, i int, vals []T, idx []int, first, last int) (int, error) {
	switch v := any(vals).(type) {
	case []int:
		return m.SparseRowInt(i, v, idx, first, last)
	case []float64:
		return m.SparseRowFloat(i, v, idx, first, last)
	}

	return 0, ErrUnsupportedAxis
}

// SparseCol writes the stored entries of column j of m, dispatching on T.
func SparseCol[T Value](m SparseMatrix, j int, vals []T, idx []int, first, last int) (int, error) {
	switch v := any(vals).(type) {
	case []int:
		return m.SparseColInt(j, v, idx, first, last)
	case []float64:
		return m.SparseColFloat(j, v, idx, first, last)
	}

	return 0, ErrUnsupportedAxis
}

// Rows fills buf with rows idx[k] of m, columns [first,last), as a
// len(idx)×(last-first) column-major block:
//
//	buf[(j-first)*len(idx) + k] = m[idx[k], j]
//
// Indices may repeat and come in any order. Every index, the range and
// len(buf) >= len(idx)*(last-first) are checked before anything is written.
// Errors: ErrOutOfRange, ErrDimensionMismatch.
func Rows[T Value](m Matrix, idx []int, buf []T, first, last int) error {
	if f, ok := m.(filler); ok {
		var zero T
		return fillRows(f, idx, buf, first, last, zero)
	}
	if err := validateBlock(idx, m.Rows(), first, last, m.Cols(), len(buf)); err != nil {
		return blockErrorf("Matrix", ctxRows, len(idx), first, last, err)
	}

	// Foreign matrix: gather one row at a time.
	n := len(idx)
	row := make([]T, last-first)
	for k, i := range idx {
		if err := Row(m, i, row, first, last); err != nil {
			return err
		}
		for j, v := range row {
			buf[j*n+k] = v
		}
	}

	return nil
}

// Cols fills buf with columns idx[k] of m, rows [first,last), as
// consecutive runs of last-first values:
//
//	buf[k*(last-first) + (i-first)] = m[i, idx[k]]
//
// Checks and errors as Rows.
func Cols[T Value](m Matrix, idx []int, buf []T, first, last int) error {
	if f, ok := m.(filler); ok {
		var zero T
		return fillCols(f, idx, buf, first, last, zero)
	}
	if err := validateBlock(idx, m.Cols(), first, last, m.Rows(), len(buf)); err != nil {
		return blockErrorf("Matrix", ctxCols, len(idx), first, last, err)
	}

	w := last - first
	for k, j := range idx {
		if err := Col(m, j, buf[k*w:(k+1)*w], first, last); err != nil {
			return err
		}
	}

	return nil
}

func fillRows[T Value](f filler, idx []int, buf []T, first, last int, empty T) error {
	switch b := any(buf).(type) {
	case []int:
		return f.rowsInt(idx, b, first, last, any(empty).(int))
	case []float64:
		return f.rowsFloat(idx, b, first, last, any(empty).(float64))
	}

	return ErrUnsupportedAxis
}

func fillCols[T Value](f filler, idx []int, buf []T, first, last int, empty T) error {
	switch b := any(buf).(type) {
	case []int:
		return f.colsInt(idx, b, first, last, any(empty).(int))
	case []float64:
		return f.colsFloat(idx, b, first, last, any(empty).(float64))
	}

	return ErrUnsupportedAxis
}

// FullRow fills buf[:m.Cols()] with row i of m.
func FullRow[T Value](m Matrix, i int, buf []T) error {
	return Row(m, i, buf, 0, m.Cols())
}

// FullCol fills buf[:m.Rows()] with column j of m.
func FullCol[T Value](m Matrix, j int, buf []T) error {
	return Col(m, j, buf, 0, m.Rows())
}

// FullSparseRow writes every stored entry of row i of m.
func FullSparseRow[T Value](m SparseMatrix, i int, vals []T, idx []int) (int, error) {
	return SparseRow(m, i, vals, idx, 0, m.Cols())
}

// FullSparseCol writes every stored entry of column j of m.
func FullSparseCol[T Value](m SparseMatrix, j int, vals []T, idx []int) (int, error) {
	return SparseCol(m, j, vals, idx, 0, m.Rows())
}
