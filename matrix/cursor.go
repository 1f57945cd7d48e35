// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/linmat/matrix/storage"

// RowCursor extracts rows from a CSC-indexed matrix while remembering, per
// column, where the previous row was found. Requests for the same, next or
// previous row cost O(last-first) instead of O((last-first) · log nnz_c).
// Changing [first,last) between calls is allowed and resets the cache.
//
// A RowCursor belongs to one caller; it is not safe for concurrent use. The
// matrix it came from stays immutable.
type RowCursor[S Value] struct {
	a   *accessor[S]
	st  *storage.Store[S]
	cur *storage.RowCursor
}

func newRowCursor[S Value](a *accessor[S], st *storage.Store[S]) *RowCursor[S] {
	return &RowCursor[S]{a: a, st: st, cur: storage.NewRowCursor(st.Index, st.Ptr)}
}

// RowInt fills buf[:last-first] with row r; absent entries read as 0.
func (rc *RowCursor[S]) RowInt(r int, buf []int, first, last int) error {
	return cursorRow(rc, r, buf, first, last)
}

// RowFloat fills buf[:last-first] with row r; absent entries read as 0.
func (rc *RowCursor[S]) RowFloat(r int, buf []float64, first, last int) error {
	return cursorRow(rc, r, buf, first, last)
}

// SparseRowInt writes the stored entries of row r in columns [first,last)
// and returns their count.
func (rc *RowCursor[S]) SparseRowInt(r int, vals []int, idx []int, first, last int) (int, error) {
	return cursorSparseRow(rc, r, vals, idx, first, last)
}

// SparseRowFloat writes the stored entries of row r in columns [first,last)
// and returns their count.
func (rc *RowCursor[S]) SparseRowFloat(r int, vals []float64, idx []int, first, last int) (int, error) {
	return cursorSparseRow(rc, r, vals, idx, first, last)
}

func cursorRow[S, D Value](rc *RowCursor[S], r int, buf []D, first, last int) error {
	a := rc.a
	if err := validateAccess(r, a.nrow, first, last, a.ncol, len(buf)); err != nil {
		return accessErrorf(a.name+"Cursor", ctxRow, r, first, last, err)
	}
	storage.CursorRowDense(rc.cur, rc.st.Values, r, buf, first, last, 0)

	return nil
}

func cursorSparseRow[S, D Value](rc *RowCursor[S], r int, vals []D, idx []int, first, last int) (int, error) {
	a := rc.a
	if err := validateAccess(r, a.nrow, first, last, a.ncol, len(vals), len(idx)); err != nil {
		return 0, accessErrorf(a.name+"Cursor", ctxSparseRow, r, first, last, err)
	}

	return storage.CursorRowPairs(rc.cur, rc.st.Values, r, vals, idx, first, last, 0), nil
}
