// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linmat/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that no options equal the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultEagerIndex, o.EagerIndex)
	require.Equal(t, matrix.DefaultLogical, o.Logical)
	require.False(t, o.HasMaterializeFn)

	r := matrix.GatherReaderOptionsSnapshot_TestOnly[float64]()
	require.Equal(t, matrix.DefaultLocalIndices, r.Local)
	require.Zero(t, r.Empty)
}

// 2) TestOptions_EachSetterTogglesOneField ensures each Option touches exactly its field.
func TestOptions_EachSetterTogglesOneField(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEagerIndex())
	require.Equal(t, matrix.OptionsSnapshot{EagerIndex: true}, o)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithLogical(), matrix.WithLogical()) // idempotent
	require.Equal(t, matrix.OptionsSnapshot{Logical: true}, o)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithOnMaterialize(func(int) {}))
	require.Equal(t, matrix.OptionsSnapshot{HasMaterializeFn: true}, o)

	r := matrix.GatherReaderOptionsSnapshot_TestOnly(matrix.WithEmpty(3), matrix.WithEmpty(-2)) // last wins
	require.Equal(t, matrix.ReaderOptionsSnapshot[int]{Empty: -2}, r)

	r = matrix.GatherReaderOptionsSnapshot_TestOnly(matrix.WithLocalIndices[int]())
	require.Equal(t, matrix.ReaderOptionsSnapshot[int]{Local: true}, r)
}

// 3) TestWithOnMaterialize_NilPanics guards against a nil hook.
func TestWithOnMaterialize_NilPanics(t *testing.T) {
	require.PanicsWithValue(t, matrix.PanicNilMaterializeHook, func() {
		matrix.WithOnMaterialize(nil)
	})
}

// 4) TestOptions_IgnoredByEagerLayouts: seed-only options are harmless elsewhere.
func TestOptions_IgnoredByEagerLayouts(t *testing.T) {
	called := false
	hook := matrix.WithOnMaterialize(func(int) { called = true })

	d := mustDense(t, fixRows, fixCols, fixDense, matrix.WithEagerIndex(), hook)
	c := mustCSC(t, fixRows, fixCols, fixX, fixI, fixP, matrix.WithEagerIndex(), hook)
	require.NoError(t, d.ColFloat(0, make([]float64, fixRows), 0, fixRows))
	require.NoError(t, c.ColFloat(0, make([]float64, fixRows), 0, fixRows))
	require.False(t, called)
}
