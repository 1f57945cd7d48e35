// SPDX-License-Identifier: MIT

package storage_test

// 4×3 fixture shared by the kernel tests (row-major picture):
//
//	| 0    1.5  0  |
//	| 2.7  0    0  |
//	| 0    0   -3  |
//	| 4    6    0  |
const (
	fixRows = 4
	fixCols = 3
)

// fixDense is the fixture in column-major order.
var fixDense = []float64{
	0, 2.7, 0, 4, // column 0
	1.5, 0, 0, 6, // column 1
	0, 0, -3, 0, // column 2
}

// fixCSC is the fixture in CSC form.
var (
	fixX = []float64{2.7, 4, 1.5, 6, -3}
	fixI = []int{1, 3, 0, 3, 2}
	fixP = []int{0, 2, 4, 5}
)

// fixAt returns the fixture value at (r, c).
func fixAt(r, c int) float64 {
	return fixDense[c*fixRows+r]
}
