// Package linmat is a read-only matrix access layer: one interface for
// pulling rows and columns out of dense, compressed-sparse-column and
// lazily indexed triplet matrices without converting them.
//
// What is in the box?
//
//	• Uniform contract: Matrix / SparseMatrix with row, column and
//	  non-zero extraction over a [first,last) range
//	• Three layouts: Dense (column-major), CSC, Seed (unordered triplets,
//	  indexed on first use under sync.Once)
//	• Transparent coercion: read any store as int or float64
//	• Borrowed buffers: no copies of the source data, no allocation on the
//	  extraction path
//	• Eager validation: malformed layouts are rejected at construction
//
// Under the hood, everything is organized under two packages:
//
//	matrix/         : contracts, variants, Reader facade, Bind dispatch
//	matrix/storage/ : generic extraction kernels and the coercion table
//
// Quick ASCII example (the same 3×2 matrix in three layouts):
//
//	    | 1   .  |   dense: [1 2.7 0 | 0 0 5]
//	    | 2.7 .  |   csc:   x=[1 2.7 5] i=[0 1 2] p=[0 2 3]
//	    | .   5  |   seed:  (5,2,1) (1,0,0) (2.7,1,0)
//
//	go get github.com/katalvlaran/linmat/matrix
package linmat
