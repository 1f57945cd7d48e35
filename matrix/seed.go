// SPDX-License-Identifier: MIT

// Package matrix - seed ("lazy") sparse reader.
//
// Purpose:
//   - Accept (value, row, col) triplets in any order and defer indexing
//     until the first extraction: callers that touch few entries never pay
//     for a full sort.
//   - On first use, build a CSC-equivalent store exactly once
//     (storage.Compress) and serve every later call from it.
//
// State machine:
//   - StateUnbound → StateReady, at most once, never reversed.
//   - The transition runs under sync.Once, so concurrent first access is
//     safe and materializes a single time.
//
// AI-Hints:
//   - Triplets already in column-major order are indexed without copying.
//   - Use WithEagerIndex when first-call latency matters more than
//     construction time.

package matrix

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/linmat/matrix/storage"
)

// Seed reads borrowed unordered triplets of element type S.
type Seed[S Value] struct {
	sparseAccessor[S]

	values         []S   // borrowed
	rowIdx, colIdx []int // borrowed
	onMaterialize  func(nnz int)

	once   sync.Once
	st     storage.Store[S] // built by materialize; owned by the Seed
	ready  atomic.Bool
	builds atomic.Int64
}

// NewSeed binds a rows×cols triplet list: values[k] sits at
// (rowIdx[k], colIdx[k]).
// MAIN DESCRIPTION:
//   - Lengths, bounds and uniqueness of coordinates are checked here; the
//     column index itself is built on first extraction (or now, under
//     WithEagerIndex).
//
// Errors:
//   - ErrMalformedLayout (length mismatch, out-of-bounds or duplicate
//     coordinates, logical violation).
//
// Complexity:
//   - Time O(nnz), Space O(nnz) for the duplicate check on unsorted input.
func NewSeed[S Value](rows, cols int, values []S, rowIdx, colIdx []int, opts ...Option) (*Seed[S], error) {
	const ctor = "NewSeed"
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if err := ValidateSeedLayout(rows, cols, len(values), rowIdx, colIdx); err != nil {
		return nil, buildErrorf(ctor, err)
	}
	kind, err := validateKind(values, o)
	if err != nil {
		return nil, buildErrorf(ctor, err)
	}

	// Stage 2: wrap in the unbound state.
	m := &Seed[S]{
		values:        values,
		rowIdx:        rowIdx,
		colIdx:        colIdx,
		onMaterialize: o.onMaterialize,
	}
	m.sparseAccessor = sparseAccessor[S]{
		accessor: accessor[S]{src: m, name: "Seed", kind: kind, layout: LayoutSeed, nrow: rows, ncol: cols},
		nnz:      len(values),
	}

	// Stage 3: optional eager transition.
	if o.eagerIndex {
		m.Materialize()
	}

	return m, nil
}

// store materializes on first use. The hook runs in the goroutine that
// built the index, after once.Do has returned, so it may read the Seed.
func (m *Seed[S]) store() *storage.Store[S] {
	if m.ready.Load() {
		return &m.st
	}
	built := false
	m.once.Do(func() {
		m.materialize()
		built = true
	})
	if built && m.onMaterialize != nil {
		m.onMaterialize(m.nnz)
	}

	return &m.st
}

func (m *Seed[S]) materialize() {
	m.st = storage.Compress(m.values, m.rowIdx, m.colIdx, m.nrow, m.ncol)
	m.builds.Add(1)
	m.ready.Store(true)
}

// Materialize moves the Seed to StateReady now. Idempotent.
func (m *Seed[S]) Materialize() {
	m.store()
}

// State reports whether the column index has been built.
func (m *Seed[S]) State() State {
	if m.ready.Load() {
		return StateReady
	}

	return StateUnbound
}

// Materializations reports how many times the column index was built:
// 0 before first use, 1 afterwards.
func (m *Seed[S]) Materializations() int {
	return int(m.builds.Load())
}

// ColRun returns the stored values and row indices of column c in rows
// [first,last), materializing if needed. Slices alias the Seed's index (or
// the borrowed buffers for presorted input) and must be treated as
// read-only.
// Errors: ErrOutOfRange.
func (m *Seed[S]) ColRun(c, first, last int) ([]S, []int, error) {
	if err := validateAccess(c, m.ncol, first, last, m.nrow); err != nil {
		return nil, nil, accessErrorf(m.name, ctxView, c, first, last, err)
	}

	return colRun(&m.accessor, m.store(), c, first, last)
}

// RowCursor materializes if needed and returns a new cursor for sequential
// row access.
func (m *Seed[S]) RowCursor() *RowCursor[S] {
	return newRowCursor(&m.accessor, m.store())
}
