// SPDX-License-Identifier: MIT

package storage

import (
	"cmp"
	"slices"
)

// Compress turns unordered (value, row, col) triplets into a CSC store of
// nrow×ncol. Triplets must be in bounds and free of duplicate coordinates,
// and ncol+1 must not overflow (matrix.ValidateSeedLayout checks all three).
//
// Implementation:
//   - Stage 1: if the triplets are already column-major (col asc, then row
//     asc) the borrowed values and rows are reused as is; only Ptr is built.
//   - Stage 2: otherwise bucket positions by column (counting sort), order
//     each bucket by row and gather values and rows into fresh slices.
//
// Complexity: O(nnz + ncol) when presorted, O(nnz + ncol + Σ nnz_c·log nnz_c)
// otherwise. Space: O(ncol) presorted, O(nnz + ncol) otherwise.
func Compress[S Number](vals []S, rows, cols []int, nrow, ncol int) Store[S] {
	ptr := make([]int, ncol+1)
	for _, c := range cols {
		ptr[c+1]++ // per-column counts, shifted by one
	}
	for c := 0; c < ncol; c++ {
		ptr[c+1] += ptr[c] // prefix sum → column starts
	}

	out := Store[S]{Format: FormatCSC, NRow: nrow, NCol: ncol, Ptr: ptr}
	if ColumnMajor(rows, cols) {
		out.Values, out.Index = vals, rows

		return out
	}

	// Stage 2: counting sort of positions by column.
	order := make([]int, len(vals))
	next := slices.Clone(ptr[:ncol])
	for k, c := range cols {
		order[next[c]] = k
		next[c]++
	}
	for c := 0; c < ncol; c++ {
		slices.SortFunc(order[ptr[c]:ptr[c+1]], func(a, b int) int {
			return cmp.Compare(rows[a], rows[b])
		})
	}

	out.Values = make([]S, len(vals))
	out.Index = make([]int, len(vals))
	for k, o := range order {
		out.Values[k] = vals[o]
		out.Index[k] = rows[o]
	}

	return out
}

// ColumnMajor reports whether the coordinates are strictly ordered by
// column and then by row.
// Complexity: O(nnz).
func ColumnMajor(rows, cols []int) bool {
	for k := 1; k < len(cols); k++ {
		if cols[k] < cols[k-1] || (cols[k] == cols[k-1] && rows[k] <= rows[k-1]) {
			return false
		}
	}

	return true
}
