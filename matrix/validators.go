// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for argument and layout checks.
//  - Keep readers minimal by delegating index/range/buffer/layout checks here.
//  - Return plain sentinel errors tagged with the validator name so call sites
//    can wrap uniformly.
//
// Determinism & Performance:
//  - Per-call validators (index, range, buffer) are O(1) and allocate nothing.
//  - Layout validators run once per constructor and are linear in the buffers,
//    except ValidateSeedLayout which also keeps an O(nnz) coordinate set.
//
// Note:
//  - Composite checks follow a fixed order: index → range → buffer.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// malformedf reports a layout violation with a formatted detail.
func malformedf(tag, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), ErrMalformedLayout)
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateRange ensures 0 <= first <= last <= n.
// Complexity: O(1).
func ValidateRange(first, last, n int) error {
	if first < 0 || last < first || last > n {
		return validatorErrorf("ValidateRange", ErrOutOfRange)
	}

	return nil
}

// ValidateBuffer ensures a caller buffer of length have can hold need values.
// Complexity: O(1).
func ValidateBuffer(have, need int) error {
	if have < need {
		return validatorErrorf("ValidateBuffer", ErrDimensionMismatch)
	}

	return nil
}

// validateAccess is the composite per-call check: index → range → buffers.
func validateAccess(i, extent, first, last, span int, bufs ...int) error {
	if err := ValidateIndex(i, extent); err != nil {
		return err
	}
	if err := ValidateRange(first, last, span); err != nil {
		return err
	}
	for _, n := range bufs {
		if err := ValidateBuffer(n, last-first); err != nil {
			return err
		}
	}

	return nil
}

// validateBlock is validateAccess for a list of indices: every index, then
// the range, then one buffer of len(idx)*(last-first) values.
func validateBlock(idx []int, extent, first, last, span, buf int) error {
	for k, i := range idx {
		if err := ValidateIndex(i, extent); err != nil {
			return fmt.Errorf("position %d: %w", k, err)
		}
	}
	if err := ValidateRange(first, last, span); err != nil {
		return err
	}
	w := last - first
	if w != 0 && len(idx) > math.MaxInt/w {
		return validatorErrorf("validateBlock", ErrDimensionMismatch)
	}

	return ValidateBuffer(buf, len(idx)*w)
}

// ValidateShape ensures rows >= 0 and cols >= 0.
// Errors: ErrMalformedLayout joined with ErrInvalidDimensions.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", errors.Join(ErrMalformedLayout, ErrInvalidDimensions))
	}

	return nil
}

// ValidateDenseLayout checks a column-major store of n values against the
// declared shape: n == rows*cols, with rows*cols representable as an int.
// Complexity: O(1).
func ValidateDenseLayout(rows, cols, n int) error {
	const tag = "ValidateDenseLayout"
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return malformedf(tag, "%dx%d cells overflow int", rows, cols)
	}
	if n != rows*cols {
		return malformedf(tag, "%d values for a %dx%d matrix", n, rows, cols)
	}

	return nil
}

// ValidateCSCLayout checks the compressed-sparse-column invariants:
//   - len(rowIdx) == nnz, len(colPtr) == cols+1;
//   - colPtr[0] == 0, colPtr[cols] == nnz, colPtr non-decreasing;
//   - within each column, row indices strictly increasing and in [0, rows).
//
// Complexity: O(cols + nnz).
func ValidateCSCLayout(rows, cols, nnz int, rowIdx, colPtr []int) error {
	const tag = "ValidateCSCLayout"
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if len(rowIdx) != nnz {
		return malformedf(tag, "%d row indices for %d values", len(rowIdx), nnz)
	}
	if len(colPtr) != cols+1 {
		return malformedf(tag, "%d column pointers for %d columns", len(colPtr), cols)
	}
	if colPtr[0] != 0 {
		return malformedf(tag, "first column pointer is %d", colPtr[0])
	}
	if colPtr[cols] != nnz {
		return malformedf(tag, "last column pointer is %d, want %d", colPtr[cols], nnz)
	}

	// Stage 1: pointers must never decrease (checked for every column before
	// any pointer is used to slice rowIdx).
	var c, k int
	for c = 0; c < cols; c++ {
		if colPtr[c+1] < colPtr[c] {
			return malformedf(tag, "column pointers decrease at column %d", c)
		}
	}

	// Stage 2: per-column row indices.
	for c = 0; c < cols; c++ {
		prev := -1
		for k = colPtr[c]; k < colPtr[c+1]; k++ {
			ri := rowIdx[k]
			if ri < 0 || ri >= rows {
				return malformedf(tag, "row index %d out of bounds in column %d", ri, c)
			}
			if ri <= prev {
				return malformedf(tag, "row indices not strictly increasing in column %d", c)
			}
			prev = ri
		}
	}

	return nil
}

// coord is a (row, col) pair used for duplicate detection.
type coord struct{ r, c int }

// ValidateSeedLayout checks an unordered triplet list: matching lengths,
// in-bounds coordinates and no duplicate (row, col) pair.
// Complexity: O(nnz) time, O(nnz) space for the coordinate set.
func ValidateSeedLayout(rows, cols, nnz int, rowIdx, colIdx []int) error {
	const tag = "ValidateSeedLayout"
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if cols == math.MaxInt {
		return malformedf(tag, "%d columns leave no room for column pointers", cols)
	}
	if len(rowIdx) != nnz || len(colIdx) != nnz {
		return malformedf(tag, "%d row and %d column indices for %d values", len(rowIdx), len(colIdx), nnz)
	}

	// Presorted input is duplicate-free iff strictly ordered; skip the set.
	sorted := true
	for k := 0; k < nnz; k++ {
		if rowIdx[k] < 0 || rowIdx[k] >= rows || colIdx[k] < 0 || colIdx[k] >= cols {
			return malformedf(tag, "triplet %d at (%d,%d) out of bounds", k, rowIdx[k], colIdx[k])
		}
		if k > 0 && sorted {
			sorted = colIdx[k] > colIdx[k-1] || (colIdx[k] == colIdx[k-1] && rowIdx[k] > rowIdx[k-1])
		}
	}
	if sorted {
		return nil
	}

	seen := make(map[coord]struct{}, nnz)
	for k := 0; k < nnz; k++ {
		key := coord{rowIdx[k], colIdx[k]}
		if _, dup := seen[key]; dup {
			return malformedf(tag, "duplicate coordinate (%d,%d)", key.r, key.c)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// ValidateLogical ensures every value is 0, 1 or IntNA.
// Complexity: O(n).
func ValidateLogical(values []int) error {
	for k, v := range values {
		if v != 0 && v != 1 && v != IntNA {
			return malformedf("ValidateLogical", "value %d at position %d is not logical", v, k)
		}
	}

	return nil
}

// validateKind resolves the element kind of store S under opts. A logical
// declaration is only valid for integer stores, whose values it then checks.
func validateKind[S Value](values []S, opts Options) (Kind, error) {
	kind := kindOf[S]()
	if !opts.logical {
		return kind, nil
	}
	ints, ok := any(values).([]int)
	if !ok {
		return 0, malformedf("validateKind", "logical declared for a %s store", kind)
	}
	if err := ValidateLogical(ints); err != nil {
		return 0, err
	}

	return KindLogical, nil
}
