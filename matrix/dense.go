// SPDX-License-Identifier: MIT

// Package matrix - Dense ("ordinary") reader over a column-major buffer.
//
// Purpose:
//   - Read rows and columns straight out of a borrowed nrow*ncol buffer with
//     the explicit index formula c*nrow + r.
//   - Columns are contiguous (a single copy); rows are strided by nrow.
//   - ColView exposes a column range without copying when the caller wants
//     the store's own element type.
//
// AI-Hints:
//   - Prefer column access on large dense matrices; row access touches one
//     element per nrow stride and defeats the cache.
//   - Use ColView in tight loops over float64 stores to skip the copy.
//
// Complexity quicksheet:
//   - NewDense: O(1) (plus O(n) for logical checks); Col/Row: O(last-first);
//     ColView/At: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linmat/matrix/storage"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense reads a column-major buffer of element type S.
//   - the buffer is borrowed: Dense never copies, resizes or frees it;
//   - the buffer must not change while the Dense is in use.
type Dense[S Value] struct {
	accessor[S]
	st storage.Store[S]
}

// NewDense binds a rows×cols column-major buffer.
// MAIN DESCRIPTION:
//   - Validates the shape and len(values) == rows*cols, then wraps the
//     buffer without copying.
//
// Errors:
//   - ErrMalformedLayout (wrong length, negative shape, logical violation).
//
// Complexity:
//   - Time O(1), or O(rows*cols) under WithLogical.
func NewDense[S Value](rows, cols int, values []S, opts ...Option) (*Dense[S], error) {
	const ctor = "NewDense"
	o := gatherOptions(opts...)

	// Stage 1: validate the borrowed buffer against the declared shape.
	if err := ValidateDenseLayout(rows, cols, len(values)); err != nil {
		return nil, buildErrorf(ctor, err)
	}
	kind, err := validateKind(values, o)
	if err != nil {
		return nil, buildErrorf(ctor, err)
	}

	// Stage 2: wrap.
	m := &Dense[S]{
		st: storage.Store[S]{Format: storage.FormatDense, NRow: rows, NCol: cols, Values: values},
	}
	m.accessor = accessor[S]{src: m, name: "Dense", kind: kind, layout: LayoutDense, nrow: rows, ncol: cols}

	return m, nil
}

func (m *Dense[S]) store() *storage.Store[S] { return &m.st }

// State always reports StateReady: a dense buffer needs no index.
func (m *Dense[S]) State() State { return StateReady }

// At returns the element at (r, c).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense[S]) At(r, c int) (S, error) {
	if err := ValidateIndex(r, m.nrow); err != nil {
		var zero S
		return zero, accessErrorf(m.name, ctxAt, r, c, c+1, err)
	}
	if err := ValidateIndex(c, m.ncol); err != nil {
		var zero S
		return zero, accessErrorf(m.name, ctxAt, r, c, c+1, err)
	}

	return m.st.Values[c*m.nrow+r], nil
}

// ColView returns rows [first,last) of column c as a sub-slice of the
// borrowed buffer. The result aliases the caller's storage and must be
// treated as read-only.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense[S]) ColView(c, first, last int) ([]S, error) {
	if err := validateAccess(c, m.ncol, first, last, m.nrow); err != nil {
		return nil, accessErrorf(m.name, ctxView, c, first, last, err)
	}
	off := c * m.nrow

	return m.st.Values[off+first : off+last : off+last], nil
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense[S]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.nrow; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.ncol; j++ {
			fmt.Fprintf(&sb, "%v", m.st.Values[j*m.nrow+i])
			if j < m.ncol-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
