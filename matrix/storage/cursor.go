// SPDX-License-Identifier: MIT

package storage

import "sort"

// RowCursor speeds up row access on a CSC store by remembering, for every
// column, the position of the first entry whose row index is not below the
// current row. Moving to an adjacent row then costs one comparison per
// column instead of a binary search.
//
// The cursor is tied to one column range: asking for a different
// [first,last) resets every cached position. Positions are allocated on
// first use, so a cursor that never serves a row costs nothing.
//
// A RowCursor is not safe for concurrent use.
type RowCursor struct {
	idx, ptr    []int
	pos         []int // per column: first position with row >= row
	row         int
	first, last int
}

// NewRowCursor returns a cursor over the given CSC row indices and column
// pointers. Both slices are borrowed.
func NewRowCursor(idx, ptr []int) *RowCursor {
	return &RowCursor{idx: idx, ptr: ptr}
}

// Seek moves the cursor to row r for columns [first,last).
// Complexity: O(last-first) for r equal or adjacent to the previous row,
// O((last-first) · log nnz_c) otherwise.
func (cur *RowCursor) Seek(r, first, last int) {
	ncol := len(cur.ptr) - 1

	// Stage 1: lazily allocate, or reset on a range change. Reset state is
	// "row 0": each column positioned at its first entry.
	if cur.pos == nil || first != cur.first || last != cur.last {
		if cur.pos == nil {
			cur.pos = make([]int, ncol)
		}
		copy(cur.pos, cur.ptr[:ncol])
		cur.row, cur.first, cur.last = 0, first, last
	}
	if r == cur.row {
		return
	}

	// Stage 2: move each column position toward r.
	var c, p int
	switch {
	case r == cur.row+1:
		for c = first; c < last; c++ {
			p = cur.pos[c]
			if p != cur.ptr[c+1] && cur.idx[p] < r {
				cur.pos[c]++
			}
		}
	case r+1 == cur.row:
		for c = first; c < last; c++ {
			p = cur.pos[c]
			if p != cur.ptr[c] && cur.idx[p-1] >= r {
				cur.pos[c]--
			}
		}
	case r > cur.row:
		for c = first; c < last; c++ {
			p = cur.pos[c]
			cur.pos[c] = p + sort.SearchInts(cur.idx[p:cur.ptr[c+1]], r)
		}
	default:
		for c = first; c < last; c++ {
			p = cur.ptr[c]
			cur.pos[c] = p + sort.SearchInts(cur.idx[p:cur.pos[c]], r)
		}
	}
	cur.row = r
}

// Hit reports the value position for column c at the current row, and
// whether column c stores an entry there.
func (cur *RowCursor) Hit(c int) (int, bool) {
	p := cur.pos[c]

	return p, p != cur.ptr[c+1] && cur.idx[p] == cur.row
}

// CursorRowDense is SparseRowDense driven by a cursor.
func CursorRowDense[S, D Number](cur *RowCursor, vals []S, r int, dst []D, first, last int, empty D) {
	cast := Caster[S, D]()
	cur.Seek(r, first, last)
	fill(dst[:last-first], empty)
	for c := first; c < last; c++ {
		if k, ok := cur.Hit(c); ok {
			dst[c-first] = cast(vals[k])
		}
	}
}

// CursorRowPairs is SparseRowPairs driven by a cursor.
func CursorRowPairs[S, D Number](cur *RowCursor, vals []S, r int, out []D, outIdx []int, first, last, shift int) int {
	cast := Caster[S, D]()
	cur.Seek(r, first, last)
	n := 0
	for c := first; c < last; c++ {
		if k, ok := cur.Hit(c); ok {
			out[n] = cast(vals[k])
			outIdx[n] = c - shift
			n++
		}
	}

	return n
}
