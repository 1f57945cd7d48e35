// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowCursor_MatchesRowAccess walks rows forwards, backwards and with
// jumps, changing the range on the way, and compares with plain RowFloat.
func TestRowCursor_MatchesRowAccess(t *testing.T) {
	csc := mustCSC(t, fixRows, fixCols, fixX, fixI, fixP)
	seed := mustSeed(t, fixRows, fixCols, seedX, seedR, seedC)

	type step struct{ r, first, last int }
	steps := []step{
		{0, 0, 3}, {1, 0, 3}, {2, 0, 3}, {3, 0, 3},
		{2, 0, 3}, {1, 0, 3}, {3, 0, 3}, {0, 0, 3},
		{0, 1, 3}, {1, 1, 3}, {3, 0, 2}, {2, 2, 3},
	}

	cursors := map[string]*matrix.RowCursor[float64]{
		"csc":  csc.RowCursor(),
		"seed": seed.RowCursor(),
	}
	for name, cur := range cursors {
		t.Run(name, func(t *testing.T) {
			got := make([]float64, fixCols)
			want := make([]float64, fixCols)
			for _, s := range steps {
				require.NoError(t, cur.RowFloat(s.r, got, s.first, s.last))
				require.NoError(t, csc.RowFloat(s.r, want, s.first, s.last))
				require.Equal(t, want[:s.last-s.first], got[:s.last-s.first], "step %+v", s)
			}
		})
	}
}

// TestRowCursor_Sparse checks stored-entry rows and int coercion.
func TestRowCursor_Sparse(t *testing.T) {
	cur := mustCSC(t, fixRows, fixCols, fixX, fixI, fixP).RowCursor()

	vals := make([]int, fixCols)
	idx := make([]int, fixCols)
	var total int
	for r := 0; r < fixRows; r++ {
		n, err := cur.SparseRowInt(r, vals, idx, 0, fixCols)
		require.NoError(t, err)
		total += n
	}
	require.Equal(t, fixNNZ, total)

	n, err := cur.SparseRowInt(1, vals, idx, 0, fixCols)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 2, vals[0])
	require.Equal(t, 0, idx[0])

	fv := make([]float64, fixCols)
	n, err = cur.SparseRowFloat(3, fv, idx, 0, fixCols)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, fv[:n])

	ints := make([]int, fixCols)
	require.NoError(t, cur.RowInt(2, ints, 0, fixCols))
	require.Equal(t, []int{0, 0, -3}, ints)
}

// TestRowCursor_Errors: bad requests fail without touching the buffer.
func TestRowCursor_Errors(t *testing.T) {
	cur := mustCSC(t, fixRows, fixCols, fixX, fixI, fixP).RowCursor()

	buf := fill(fixCols, 8.0)
	require.ErrorIs(t, cur.RowFloat(fixRows, buf, 0, fixCols), matrix.ErrOutOfRange)
	require.ErrorIs(t, cur.RowFloat(0, buf, 2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, cur.RowFloat(0, buf[:1], 0, fixCols), matrix.ErrDimensionMismatch)
	require.Equal(t, fill(fixCols, 8.0), buf)
}
