// SPDX-License-Identifier: MIT

// Package storage provides the low-level extraction kernels behind the
// linmat/matrix readers.
//
// What & Why:
//
//	Every kernel here works on raw borrowed slices (a column-major dense
//	buffer, or a compressed-sparse-column value/index/pointer triplet) and
//	writes into caller-owned destination slices. Kernels know nothing about
//	handles, options or type dispatch: the store element type S and the
//	destination element type D are fixed by the caller through generics,
//	and the S→D conversion is taken from Caster.
//
// Contract:
//
//	Kernels assume their arguments were validated by the caller (index in
//	range, 0 <= first <= last <= extent, destination long enough). They
//	never allocate on the extraction path and never panic on validated
//	input. Compress is the only allocating helper and runs once per lazily
//	indexed matrix.
//
// Complexity:
//
//	DenseCol / DenseRow:           O(last-first).
//	SparseColDense / Pairs:        O(log nnz_c + hits) after an O(last-first) fill.
//	SparseRowDense / Pairs:        O((last-first) · log nnz_c).
//	RowCursor.Seek (adjacent row): O(last-first).
//	Compress:                      O(nnz + ncol + Σ nnz_c·log nnz_c).
package storage
