// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide one small, deterministic logical matrix in every layout so each
//     test can assert against the same picture.
//   • Keep fixtures finite and well-formed; malformed inputs are built inline
//     by the tests that need them.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linmat/matrix"
)

// Fixture shape and contents (row-major picture):
//
//	| 0    1.5  0  |
//	| 2.7  0    0  |
//	| 0    0   -3  |
//	| 4    6    0  |
const (
	fixRows = 4
	fixCols = 3
	fixNNZ  = 5
)

var (
	// fixDense is the fixture in column-major order.
	fixDense = []float64{
		0, 2.7, 0, 4,
		1.5, 0, 0, 6,
		0, 0, -3, 0,
	}

	// CSC form.
	fixX = []float64{2.7, 4, 1.5, 6, -3}
	fixI = []int{1, 3, 0, 3, 2}
	fixP = []int{0, 2, 4, 5}

	// Seed form, deliberately shuffled.
	seedX = []float64{-3, 6, 2.7, 1.5, 4}
	seedR = []int{2, 3, 1, 0, 3}
	seedC = []int{2, 1, 0, 1, 0}
)

// fixAt returns the fixture value at (r, c).
func fixAt(r, c int) float64 {
	return fixDense[c*fixRows+r]
}

// fill returns a slice of n copies of v; used as a "poisoned" buffer to
// detect writes.
func fill[T matrix.Value](n int, v T) []T {
	out := make([]T, n)
	for k := range out {
		out[k] = v
	}

	return out
}

// mustDense builds a Dense or fails the test.
func mustDense[S matrix.Value](tb testing.TB, rows, cols int, values []S, opts ...matrix.Option) *matrix.Dense[S] {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols, values, opts...)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// mustCSC builds a CSC or fails the test.
func mustCSC[S matrix.Value](tb testing.TB, rows, cols int, values []S, idx, ptr []int, opts ...matrix.Option) *matrix.CSC[S] {
	tb.Helper()
	m, err := matrix.NewCSC(rows, cols, values, idx, ptr, opts...)
	if err != nil {
		tb.Fatalf("NewCSC(%d,%d): %v", rows, cols, err)
	}

	return m
}

// mustSeed builds a Seed or fails the test.
func mustSeed[S matrix.Value](tb testing.TB, rows, cols int, values []S, ri, ci []int, opts ...matrix.Option) *matrix.Seed[S] {
	tb.Helper()
	m, err := matrix.NewSeed(rows, cols, values, ri, ci, opts...)
	if err != nil {
		tb.Fatalf("NewSeed(%d,%d): %v", rows, cols, err)
	}

	return m
}

// named pairs a variant with a label for subtests.
type named struct {
	name string
	m    matrix.Matrix
}

// fixtureVariants returns the fixture in all three layouts. The Seed is
// fresh (unbound) on every call.
func fixtureVariants(tb testing.TB) []named {
	tb.Helper()

	return []named{
		{"dense", mustDense(tb, fixRows, fixCols, fixDense)},
		{"csc", mustCSC(tb, fixRows, fixCols, fixX, fixI, fixP)},
		{"seed", mustSeed(tb, fixRows, fixCols, seedX, seedR, seedC)},
	}
}

// sparseVariants returns the sparse-capable fixture variants.
func sparseVariants(tb testing.TB) []named {
	tb.Helper()

	return []named{
		{"csc", mustCSC(tb, fixRows, fixCols, fixX, fixI, fixP)},
		{"seed", mustSeed(tb, fixRows, fixCols, seedX, seedR, seedC)},
	}
}

// hide wraps any Matrix to hide its concrete type, so the facade treats it
// as a Matrix implemented outside the package.
type hide struct{ matrix.Matrix }
