// SPDX-License-Identifier: MIT

// Package matrix - compressed-sparse-column reader.
//
// Purpose:
//   - Serve column extraction with two binary searches over the sorted row
//     indices of one column run, then a scatter (dense mode) or a copy
//     (sparse mode).
//   - Serve row extraction by searching every column of [first,last) for the
//     row. CSC has no row index, so this axis costs
//     O((last-first) · log nnz_c); that asymmetry is inherent to the layout.
//     RowCursor amortises it for sequential row scans.
//
// AI-Hints:
//   - For row-major traversal of a whole CSC matrix, take one RowCursor and
//     walk rows in order; each step is one comparison per column.
//   - ColRun gives the raw (values, rows) run of a column without copying.

package matrix

import "github.com/katalvlaran/linmat/matrix/storage"

// CSC reads a borrowed compressed-sparse-column triplet of element type S.
// The handle is immutable and safe for concurrent reads.
type CSC[S Value] struct {
	sparseAccessor[S]
	st storage.Store[S]
}

// NewCSC binds a rows×cols CSC matrix: values and rowIdx hold one entry per
// stored element, colPtr holds cols+1 offsets.
// MAIN DESCRIPTION:
//   - Every CSC invariant is checked here, once; no partially usable handle
//     is ever returned.
//
// Errors:
//   - ErrMalformedLayout (length mismatch, colPtr[0] != 0,
//     colPtr[cols] != nnz, decreasing pointers, unsorted or out-of-bounds
//     row indices, logical violation).
//
// Complexity:
//   - Time O(cols + nnz). No copies.
func NewCSC[S Value](rows, cols int, values []S, rowIdx, colPtr []int, opts ...Option) (*CSC[S], error) {
	const ctor = "NewCSC"
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if err := ValidateCSCLayout(rows, cols, len(values), rowIdx, colPtr); err != nil {
		return nil, buildErrorf(ctor, err)
	}
	kind, err := validateKind(values, o)
	if err != nil {
		return nil, buildErrorf(ctor, err)
	}

	// Stage 2: wrap.
	m := &CSC[S]{
		st: storage.Store[S]{
			Format: storage.FormatCSC,
			NRow:   rows,
			NCol:   cols,
			Values: values,
			Index:  rowIdx,
			Ptr:    colPtr,
		},
	}
	m.sparseAccessor = sparseAccessor[S]{
		accessor: accessor[S]{src: m, name: "CSC", kind: kind, layout: LayoutCSC, nrow: rows, ncol: cols},
		nnz:      len(values),
	}

	return m, nil
}

func (m *CSC[S]) store() *storage.Store[S] { return &m.st }

// State always reports StateReady: the layout is already indexed.
func (m *CSC[S]) State() State { return StateReady }

// ColRun returns the stored values and row indices of column c that fall in
// rows [first,last). Both slices alias the borrowed buffers and must be
// treated as read-only.
// Errors: ErrOutOfRange. Complexity: O(log nnz_c).
func (m *CSC[S]) ColRun(c, first, last int) ([]S, []int, error) {
	return colRun(&m.accessor, &m.st, c, first, last)
}

// RowCursor returns a new cursor for sequential row access. Cursors are
// cheap, owned by the caller and not safe for concurrent use.
func (m *CSC[S]) RowCursor() *RowCursor[S] {
	return newRowCursor(&m.accessor, &m.st)
}

// colRun is shared by CSC and Seed.
func colRun[S Value](a *accessor[S], st *storage.Store[S], c, first, last int) ([]S, []int, error) {
	if err := validateAccess(c, a.ncol, first, last, a.nrow); err != nil {
		return nil, nil, accessErrorf(a.name, ctxView, c, first, last, err)
	}
	lo, hi := storage.ColSpan(st.Index, st.Ptr, c, first, last)

	return st.Values[lo:hi:hi], st.Index[lo:hi:hi], nil
}
