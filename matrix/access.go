// SPDX-License-Identifier: MIT

// Package matrix - shared extraction surface of all variants.
//
// Purpose:
//   - Implement the Matrix and SparseMatrix methods once, on top of the
//     storage kernels, for any store element type S.
//   - Variants (Dense, CSC, Seed) embed accessor/sparseAccessor and only
//     supply their storage.Store through source; the lazy Seed builds it on
//     first call.
//   - Every call validates index → range → buffers before touching the
//     store, so a failing call writes nothing and never triggers lazy work.
//
// Complexity quicksheet:
//   - Metadata: O(1); extraction: see storage kernels.

package matrix

import "github.com/katalvlaran/linmat/matrix/storage"

// ---------- method tags used in error wrappers ----------

const (
	ctxRow       = "Row"
	ctxCol       = "Col"
	ctxSparseRow = "SparseRow"
	ctxSparseCol = "SparseCol"
	ctxRows      = "Rows"
	ctxCols      = "Cols"
	ctxAt        = "At"
	ctxView      = "ColView"
)

// source yields the store a variant reads from, ready for extraction.
type source[S Value] interface {
	store() *storage.Store[S]
}

// accessor implements Matrix for a variant.
type accessor[S Value] struct {
	src        source[S]
	name       string // variant name for error context
	kind       Kind
	layout     Layout
	nrow, ncol int
}

// Rows returns the number of rows. Complexity: O(1).
func (a *accessor[S]) Rows() int { return a.nrow }

// Cols returns the number of columns. Complexity: O(1).
func (a *accessor[S]) Cols() int { return a.ncol }

// Kind returns the element kind of the backing store.
func (a *accessor[S]) Kind() Kind { return a.kind }

// Layout returns the physical layout of the backing store.
func (a *accessor[S]) Layout() Layout { return a.layout }

// RowInt fills buf[:last-first] with row r, columns [first,last).
func (a *accessor[S]) RowInt(r int, buf []int, first, last int) error {
	return a.rowInt(r, buf, first, last, 0)
}

// RowFloat fills buf[:last-first] with row r, columns [first,last).
func (a *accessor[S]) RowFloat(r int, buf []float64, first, last int) error {
	return a.rowFloat(r, buf, first, last, 0)
}

// ColInt fills buf[:last-first] with column c, rows [first,last).
func (a *accessor[S]) ColInt(c int, buf []int, first, last int) error {
	return a.colInt(c, buf, first, last, 0)
}

// ColFloat fills buf[:last-first] with column c, rows [first,last).
func (a *accessor[S]) ColFloat(c int, buf []float64, first, last int) error {
	return a.colFloat(c, buf, first, last, 0)
}

func (a *accessor[S]) rowInt(r int, buf []int, first, last int, empty int) error {
	return extractRow(a, r, buf, first, last, empty)
}

func (a *accessor[S]) rowFloat(r int, buf []float64, first, last int, empty float64) error {
	return extractRow(a, r, buf, first, last, empty)
}

func (a *accessor[S]) colInt(c int, buf []int, first, last int, empty int) error {
	return extractCol(a, c, buf, first, last, empty)
}

func (a *accessor[S]) colFloat(c int, buf []float64, first, last int, empty float64) error {
	return extractCol(a, c, buf, first, last, empty)
}

// extractRow validates and then runs the dense row kernel.
func extractRow[S, D Value](a *accessor[S], r int, buf []D, first, last int, empty D) error {
	if err := validateAccess(r, a.nrow, first, last, a.ncol, len(buf)); err != nil {
		return accessErrorf(a.name, ctxRow, r, first, last, err)
	}
	storage.Row(a.src.store(), r, buf, first, last, empty)

	return nil
}

// extractCol validates and then runs the dense column kernel.
func extractCol[S, D Value](a *accessor[S], c int, buf []D, first, last int, empty D) error {
	if err := validateAccess(c, a.ncol, first, last, a.nrow, len(buf)); err != nil {
		return accessErrorf(a.name, ctxCol, c, first, last, err)
	}
	storage.Col(a.src.store(), c, buf, first, last, empty)

	return nil
}

func (a *accessor[S]) rowsInt(rows []int, buf []int, first, last int, empty int) error {
	return extractRowBlock(a, rows, buf, first, last, empty)
}

func (a *accessor[S]) rowsFloat(rows []int, buf []float64, first, last int, empty float64) error {
	return extractRowBlock(a, rows, buf, first, last, empty)
}

func (a *accessor[S]) colsInt(cols []int, buf []int, first, last int, empty int) error {
	return extractColBlock(a, cols, buf, first, last, empty)
}

func (a *accessor[S]) colsFloat(cols []int, buf []float64, first, last int, empty float64) error {
	return extractColBlock(a, cols, buf, first, last, empty)
}

// extractRowBlock validates every row index and then runs the block kernel.
func extractRowBlock[S, D Value](a *accessor[S], rows []int, buf []D, first, last int, empty D) error {
	if err := validateBlock(rows, a.nrow, first, last, a.ncol, len(buf)); err != nil {
		return blockErrorf(a.name, ctxRows, len(rows), first, last, err)
	}
	storage.RowBlock(a.src.store(), rows, buf, first, last, empty)

	return nil
}

// extractColBlock validates every column index and then runs the block kernel.
func extractColBlock[S, D Value](a *accessor[S], cols []int, buf []D, first, last int, empty D) error {
	if err := validateBlock(cols, a.ncol, first, last, a.nrow, len(buf)); err != nil {
		return blockErrorf(a.name, ctxCols, len(cols), first, last, err)
	}
	storage.ColBlock(a.src.store(), cols, buf, first, last, empty)

	return nil
}

// ---------- sparse surface ----------

// sparseFiller is the package-private sparse side: extraction with an index
// shift, used by Reader[T] for range-local indices.
type sparseFiller interface {
	sparseRowInt(r int, vals []int, idx []int, first, last, shift int) (int, error)
	sparseRowFloat(r int, vals []float64, idx []int, first, last, shift int) (int, error)
	sparseColInt(c int, vals []int, idx []int, first, last, shift int) (int, error)
	sparseColFloat(c int, vals []float64, idx []int, first, last, shift int) (int, error)
}

// sparseAccessor implements SparseMatrix for a sparse-capable variant.
type sparseAccessor[S Value] struct {
	accessor[S]
	nnz int
}

// NNZ returns the number of stored entries. Complexity: O(1).
func (a *sparseAccessor[S]) NNZ() int { return a.nnz }

// SparseRowInt writes the stored entries of row r in columns [first,last).
func (a *sparseAccessor[S]) SparseRowInt(r int, vals []int, idx []int, first, last int) (int, error) {
	return a.sparseRowInt(r, vals, idx, first, last, 0)
}

// SparseRowFloat writes the stored entries of row r in columns [first,last).
func (a *sparseAccessor[S]) SparseRowFloat(r int, vals []float64, idx []int, first, last int) (int, error) {
	return a.sparseRowFloat(r, vals, idx, first, last, 0)
}

// SparseColInt writes the stored entries of column c in rows [first,last).
func (a *sparseAccessor[S]) SparseColInt(c int, vals []int, idx []int, first, last int) (int, error) {
	return a.sparseColInt(c, vals, idx, first, last, 0)
}

// SparseColFloat writes the stored entries of column c in rows [first,last).
func (a *sparseAccessor[S]) SparseColFloat(c int, vals []float64, idx []int, first, last int) (int, error) {
	return a.sparseColFloat(c, vals, idx, first, last, 0)
}

func (a *sparseAccessor[S]) sparseRowInt(r int, vals []int, idx []int, first, last, shift int) (int, error) {
	return extractSparseRow(&a.accessor, r, vals, idx, first, last, shift)
}

func (a *sparseAccessor[S]) sparseRowFloat(r int, vals []float64, idx []int, first, last, shift int) (int, error) {
	return extractSparseRow(&a.accessor, r, vals, idx, first, last, shift)
}

func (a *sparseAccessor[S]) sparseColInt(c int, vals []int, idx []int, first, last, shift int) (int, error) {
	return extractSparseCol(&a.accessor, c, vals, idx, first, last, shift)
}

func (a *sparseAccessor[S]) sparseColFloat(c int, vals []float64, idx []int, first, last, shift int) (int, error) {
	return extractSparseCol(&a.accessor, c, vals, idx, first, last, shift)
}

func extractSparseRow[S, D Value](a *accessor[S], r int, vals []D, idx []int, first, last, shift int) (int, error) {
	if err := validateAccess(r, a.nrow, first, last, a.ncol, len(vals), len(idx)); err != nil {
		return 0, accessErrorf(a.name, ctxSparseRow, r, first, last, err)
	}

	return storage.SparseRow(a.src.store(), r, vals, idx, first, last, shift), nil
}

func extractSparseCol[S, D Value](a *accessor[S], c int, vals []D, idx []int, first, last, shift int) (int, error) {
	if err := validateAccess(c, a.ncol, first, last, a.nrow, len(vals), len(idx)); err != nil {
		return 0, accessErrorf(a.name, ctxSparseCol, c, first, last, err)
	}

	return storage.SparseCol(a.src.store(), c, vals, idx, first, last, shift), nil
}
