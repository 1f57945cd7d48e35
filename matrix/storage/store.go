// SPDX-License-Identifier: MIT

package storage

// Format names the physical arrangement of a Store.
type Format uint8

const (
	// FormatDense is a single column-major buffer of NRow*NCol values.
	FormatDense Format = iota + 1
	// FormatCSC is a compressed-sparse-column value/index/pointer triplet.
	FormatCSC
)

// Store is a non-owning view over the buffers of one matrix.
//   - FormatDense: Values holds NRow*NCol entries, offset = c*NRow + r.
//   - FormatCSC:   Values/Index hold nnz entries, Ptr holds NCol+1 offsets.
//
// A Store never copies, grows or frees its slices; their lifetime is the
// caller's responsibility.
type Store[S Number] struct {
	Format     Format
	NRow, NCol int
	Values     []S
	Index      []int // row index per stored value (CSC only)
	Ptr        []int // column start offsets (CSC only)
}

// NNZ returns the number of stored entries (NRow*NCol for dense stores).
// Complexity: O(1).
func (s *Store[S]) NNZ() int {
	if s.Format == FormatCSC {
		return s.Ptr[s.NCol]
	}

	return len(s.Values)
}

// Col writes rows [first,last) of column c into dst[:last-first], using
// empty for structurally absent entries.
func Col[S, D Number](s *Store[S], c int, dst []D, first, last int, empty D) {
	if s.Format == FormatDense {
		DenseCol(s.Values, s.NRow, c, dst, first, last)

		return
	}
	SparseColDense(s.Values, s.Index, s.Ptr, c, dst, first, last, empty)
}

// Row writes columns [first,last) of row r into dst[:last-first], using
// empty for structurally absent entries.
func Row[S, D Number](s *Store[S], r int, dst []D, first, last int, empty D) {
	if s.Format == FormatDense {
		DenseRow(s.Values, s.NRow, r, dst, first, last)

		return
	}
	SparseRowDense(s.Values, s.Index, s.Ptr, r, dst, first, last, empty)
}

// SparseCol writes the stored entries of column c with row index in
// [first,last) into vals/idx and returns their count. Indices are reduced
// by shift (0 for absolute indices, first for range-local ones).
// s must be a FormatCSC store.
func SparseCol[S, D Number](s *Store[S], c int, vals []D, idx []int, first, last, shift int) int {
	return SparseColPairs(s.Values, s.Index, s.Ptr, c, vals, idx, first, last, shift)
}

// SparseRow is the row-axis counterpart of SparseCol.
func SparseRow[S, D Number](s *Store[S], r int, vals []D, idx []int, first, last, shift int) int {
	return SparseRowPairs(s.Values, s.Index, s.Ptr, r, vals, idx, first, last, shift)
}

// fill sets every element of dst to v.
func fill[D Number](dst []D, v D) {
	for k := range dst {
		dst[k] = v
	}
}
