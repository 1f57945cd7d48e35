// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Readers MUST return these sentinels and tests MUST check them
// via errors.Is. No reader panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with
// fmt.Errorf("<Type>.<Method>(...): %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil → index → range → buffer length. Construction reports the first
// violated invariant only.

var (
	// ErrOutOfRange indicates a row or column index outside the matrix, or an
	// extraction range with first > last or last > extent.
	// Detected per call, before anything is written to the caller's buffer.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrMalformedLayout signals a construction-time invariant violation:
	// buffer-length mismatch, non-monotonic column pointers, unsorted or
	// out-of-bounds stored indices, duplicate coordinates in a seed, or a
	// store whose element kind does not match the declared one.
	// Construction fails and no handle is returned.
	ErrMalformedLayout = errors.New("matrix: malformed layout")

	// ErrUnsupportedAxis marks an operation the bound variant does not
	// offer, e.g. sparse extraction through a reader bound to a dense matrix,
	// or a Source naming an unknown layout.
	ErrUnsupportedAxis = errors.New("matrix: operation not supported by this layout")

	// ErrDimensionMismatch indicates a caller buffer shorter than the
	// requested range.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates negative matrix dimensions. It is always
	// reported together with ErrMalformedLayout.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil Matrix was handed to the facade.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// accessErrorf wraps a sentinel with the reader name, method and the
// requested index/range, e.g. "CSC.Col(3,[0,5)): matrix: index out of range".
func accessErrorf(name, method string, i, first, last int, err error) error {
	return fmt.Errorf("%s.%s(%d,[%d,%d)): %w", name, method, i, first, last, err)
}

// blockErrorf is accessErrorf for multi-index calls, e.g.
// "Seed.Rows(3 indices,[0,4)): position 1: ...".
func blockErrorf(name, method string, n, first, last int, err error) error {
	return fmt.Errorf("%s.%s(%d indices,[%d,%d)): %w", name, method, n, first, last, err)
}

// buildErrorf wraps a construction failure with the constructor name.
func buildErrorf(ctor string, err error) error {
	return fmt.Errorf("%s: %w", ctor, err)
}
