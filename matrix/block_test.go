// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linmat/matrix"
	"github.com/stretchr/testify/require"
)

// rowLists covers the cursor path (ascending) and the search path.
var rowLists = map[string][]int{
	"ascending": {0, 2, 3},
	"all":       {0, 1, 2, 3},
	"shuffled":  {3, 1, 0},
	"repeated":  {2, 2, 0},
	"empty":     {},
}

// TestRows_MatchRowAccess compares every block cell with per-row extraction.
func TestRows_MatchRowAccess(t *testing.T) {
	variants := append(fixtureVariants(t), named{"foreign", hide{mustCSC(t, fixRows, fixCols, fixX, fixI, fixP)}})
	for _, v := range variants {
		for name, rows := range rowLists {
			t.Run(v.name+"/"+name, func(t *testing.T) {
				first, last := 1, fixCols
				w, n := last-first, len(rows)
				block := make([]float64, n*w)
				require.NoError(t, matrix.Rows(v.m, rows, block, first, last))

				row := make([]float64, w)
				for k, r := range rows {
					require.NoError(t, v.m.RowFloat(r, row, first, last))
					for j := 0; j < w; j++ {
						require.Equal(t, row[j], block[j*n+k], "row %d col %d", r, first+j)
					}
				}
			})
		}
	}
}

// TestCols_MatchColAccess compares every block run with per-column extraction.
func TestCols_MatchColAccess(t *testing.T) {
	variants := append(fixtureVariants(t), named{"foreign", hide{mustDense(t, fixRows, fixCols, fixDense)}})
	cols := []int{2, 0, 2}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			first, last := 1, fixRows
			w := last - first
			block := make([]int, len(cols)*w)
			require.NoError(t, matrix.Cols(v.m, cols, block, first, last))

			col := make([]int, w)
			for k, c := range cols {
				require.NoError(t, v.m.ColInt(c, col, first, last))
				require.Equal(t, col, block[k*w:(k+1)*w])
			}
		})
	}
}

// TestReaderBlocks_Empty: absent entries in a row block read as the
// reader's empty value.
func TestReaderBlocks_Empty(t *testing.T) {
	rd, err := matrix.NewReader(mustSeed(t, fixRows, fixCols, seedX, seedR, seedC), matrix.WithEmpty(-1))
	require.NoError(t, err)

	// rows 1 and 3, all columns; column-major 2×3
	block := make([]int, 6)
	require.NoError(t, rd.Rows([]int{1, 3}, block, 0, fixCols))
	require.Equal(t, []int{2, 4, -1, 6, -1, -1}, block)

	// columns 1 then 0, rows [0,2)
	cb := make([]int, 4)
	require.NoError(t, rd.Cols([]int{1, 0}, cb, 0, 2))
	require.Equal(t, []int{1, -1, -1, 2}, cb)
}

// TestBlocks_ValidateBeforeWriting: a bad index anywhere in the list, a bad
// range or a short buffer fails with nothing written and no materialization.
func TestBlocks_ValidateBeforeWriting(t *testing.T) {
	const poison = -7.0
	cases := []struct {
		name        string
		idx         []int
		first, last int
		buf         int
		want        error
	}{
		{"last index out of range", []int{0, 1, fixRows}, 0, fixCols, 9, matrix.ErrOutOfRange},
		{"negative index", []int{-1}, 0, fixCols, 3, matrix.ErrOutOfRange},
		{"first > last", []int{0}, 2, 1, 3, matrix.ErrOutOfRange},
		{"last > ncol", []int{0}, 0, fixCols + 1, 8, matrix.ErrOutOfRange},
		{"short buffer", []int{0, 1}, 0, fixCols, 5, matrix.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustSeed(t, fixRows, fixCols, seedX, seedR, seedC)
			buf := fill(tc.buf, poison)
			require.ErrorIs(t, matrix.Rows(m, tc.idx, buf, tc.first, tc.last), tc.want)
			require.Equal(t, fill(tc.buf, poison), buf)
			require.Equal(t, matrix.StateUnbound, m.State())

			require.ErrorIs(t, matrix.Rows[float64](hide{m}, tc.idx, buf, tc.first, tc.last), tc.want)
			require.Equal(t, fill(tc.buf, poison), buf)
		})
	}

	err := matrix.Cols(mustDense(t, fixRows, fixCols, fixDense), []int{1, fixCols}, make([]float64, 8), 0, fixRows)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Cols(2 indices,[0,4)): position 1")
}
