// SPDX-License-Identifier: MIT

package storage

import "sort"

// ColSpan returns the positions [lo,hi) within idx holding the entries of
// column c whose row index lies in [first,last). Row indices must be
// strictly increasing inside each column run.
// Complexity: O(log nnz_c).
func ColSpan(idx, ptr []int, c, first, last int) (lo, hi int) {
	start := ptr[c]
	run := idx[start:ptr[c+1]]

	// Stage 1: skip entries above the range.
	a := 0
	if first > 0 {
		a = sort.SearchInts(run, first)
	}
	// Stage 2: stop at the first entry at or past last.
	b := a + sort.SearchInts(run[a:], last)

	return start + a, start + b
}

// RowPos locates row r inside column c. It returns the position of the
// first entry with row index >= r and whether that entry is exactly r.
// Complexity: O(log nnz_c).
func RowPos(idx, ptr []int, c, r int) (int, bool) {
	lo, hi := ptr[c], ptr[c+1]
	k := lo + sort.SearchInts(idx[lo:hi], r)

	return k, k < hi && idx[k] == r
}

// SparseColDense fills dst[:last-first] with empty and scatters the stored
// entries of column c that fall in [first,last) at their row offset.
// Complexity: O(last-first + log nnz_c).
func SparseColDense[S, D Number](vals []S, idx, ptr []int, c int, dst []D, first, last int, empty D) {
	cast := Caster[S, D]()
	fill(dst[:last-first], empty)
	lo, hi := ColSpan(idx, ptr, c, first, last)
	for k := lo; k < hi; k++ {
		dst[idx[k]-first] = cast(vals[k])
	}
}

// SparseColPairs copies the stored (value, row) pairs of column c that fall
// in [first,last) into out/outIdx and returns how many were written.
// Row indices are reduced by shift.
// Complexity: O(log nnz_c + hits).
func SparseColPairs[S, D Number](vals []S, idx, ptr []int, c int, out []D, outIdx []int, first, last, shift int) int {
	cast := Caster[S, D]()
	lo, hi := ColSpan(idx, ptr, c, first, last)
	n := hi - lo
	for k := 0; k < n; k++ {
		out[k] = cast(vals[lo+k])
		outIdx[k] = idx[lo+k] - shift
	}

	return n
}

// SparseRowDense fills dst[:last-first] with empty and writes the stored
// entry of row r for every column in [first,last) that has one.
// CSC has no row index, so each column is searched independently; this is
// the expensive axis of the layout. RowCursor amortises sequential scans.
// Complexity: O((last-first) · log nnz_c).
func SparseRowDense[S, D Number](vals []S, idx, ptr []int, r int, dst []D, first, last int, empty D) {
	cast := Caster[S, D]()
	fill(dst[:last-first], empty)
	for c := first; c < last; c++ {
		if k, ok := RowPos(idx, ptr, c, r); ok {
			dst[c-first] = cast(vals[k])
		}
	}
}

// SparseRowPairs copies the stored entries of row r for columns in
// [first,last) as (value, column) pairs and returns how many were written.
// Column indices are reduced by shift.
// Complexity: O((last-first) · log nnz_c).
func SparseRowPairs[S, D Number](vals []S, idx, ptr []int, r int, out []D, outIdx []int, first, last, shift int) int {
	cast := Caster[S, D]()
	n := 0
	for c := first; c < last; c++ {
		if k, ok := RowPos(idx, ptr, c, r); ok {
			out[n] = cast(vals[k])
			outIdx[n] = c - shift
			n++
		}
	}

	return n
}
