// SPDX-License-Identifier: MIT

package storage

import "slices"

// RowBlock writes rows rows[k], columns [first,last), into dst as a
// len(rows)×(last-first) column-major block:
//
//	dst[(j-first)*len(rows) + k] = M[rows[k], j]
//
// Rows may repeat and come in any order.
func RowBlock[S, D Number](s *Store[S], rows []int, dst []D, first, last int, empty D) {
	if s.Format == FormatDense {
		DenseRowBlock(s.Values, s.NRow, rows, dst, first, last)

		return
	}
	SparseRowBlock(s.Values, s.Index, s.Ptr, rows, dst, first, last, empty)
}

// ColBlock writes columns cols[k], rows [first,last), into dst as
// consecutive runs of last-first values:
//
//	dst[k*(last-first) + (i-first)] = M[i, cols[k]]
func ColBlock[S, D Number](s *Store[S], cols []int, dst []D, first, last int, empty D) {
	w := last - first
	for k, c := range cols {
		Col(s, c, dst[k*w:(k+1)*w], first, last, empty)
	}
}

// DenseRowBlock is RowBlock over a column-major buffer. Each column of the
// range is visited once and gathered at the requested rows.
// Complexity: O(len(rows)·(last-first)).
func DenseRowBlock[S, D Number](store []S, nrow int, rows []int, dst []D, first, last int) {
	cast := Caster[S, D]()
	n := len(rows)
	for j := first; j < last; j++ {
		col := store[j*nrow : (j+1)*nrow]
		out := dst[(j-first)*n : (j-first+1)*n]
		for k, r := range rows {
			out[k] = cast(col[r])
		}
	}
}

// SparseRowBlock is RowBlock over a CSC store.
//   - ascending rows: one RowCursor walks them, each step costing one
//     comparison per column for adjacent rows;
//   - any other order: one binary search per (row, column).
//
// Complexity: O(len(rows)·(last-first)) plus searches.
func SparseRowBlock[S, D Number](vals []S, idx, ptr []int, rows []int, dst []D, first, last int, empty D) {
	cast := Caster[S, D]()
	n := len(rows)
	fill(dst[:n*(last-first)], empty)

	if slices.IsSorted(rows) {
		cur := NewRowCursor(idx, ptr)
		for k, r := range rows {
			cur.Seek(r, first, last)
			for j := first; j < last; j++ {
				if p, ok := cur.Hit(j); ok {
					dst[(j-first)*n+k] = cast(vals[p])
				}
			}
		}

		return
	}

	for k, r := range rows {
		for j := first; j < last; j++ {
			if p, ok := RowPos(idx, ptr, j, r); ok {
				dst[(j-first)*n+k] = cast(vals[p])
			}
		}
	}
}
