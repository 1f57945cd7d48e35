// SPDX-License-Identifier: MIT

package storage_test

import (
	"testing"

	"github.com/katalvlaran/linmat/matrix/storage"
	"github.com/stretchr/testify/require"
)

// TestDenseCol checks full and partial column copies, same-type and coerced.
func TestDenseCol(t *testing.T) {
	got := make([]float64, fixRows)
	storage.DenseCol(fixDense, fixRows, 0, got, 0, fixRows)
	require.Equal(t, []float64{0, 2.7, 0, 4}, got)

	part := make([]int, 2)
	storage.DenseCol(fixDense, fixRows, 1, part, 2, 4)
	require.Equal(t, []int{0, 6}, part)
}

// TestDenseRow checks the strided row copy.
func TestDenseRow(t *testing.T) {
	got := make([]float64, fixCols)
	storage.DenseRow(fixDense, fixRows, 3, got, 0, fixCols)
	require.Equal(t, []float64{4, 6, 0}, got)

	part := make([]int, 2)
	storage.DenseRow(fixDense, fixRows, 1, part, 0, 2)
	require.Equal(t, []int{2, 0}, part)
}

// TestDenseEmptyRange ensures first == last writes nothing.
func TestDenseEmptyRange(t *testing.T) {
	buf := []float64{-1}
	storage.DenseCol(fixDense, fixRows, 2, buf, 3, 3)
	storage.DenseRow(fixDense, fixRows, 2, buf, 1, 1)
	require.Equal(t, []float64{-1}, buf)
}
