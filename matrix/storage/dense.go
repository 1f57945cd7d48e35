// SPDX-License-Identifier: MIT

package storage

// DenseCol copies rows [first,last) of column c of a column-major buffer
// into dst[:last-first]: dst[i-first] = store[c*nrow+i].
// When S and D coincide the copy is a single memmove.
// Complexity: O(last-first).
func DenseCol[S, D Number](store []S, nrow, c int, dst []D, first, last int) {
	src := store[c*nrow+first : c*nrow+last] // contiguous run
	if same, ok := any(dst).([]S); ok {
		copy(same, src)

		return
	}
	cast := Caster[S, D]()
	for k, v := range src {
		dst[k] = cast(v)
	}
}

// DenseRow copies columns [first,last) of row r of a column-major buffer
// into dst[:last-first]: dst[j-first] = store[j*nrow+r].
// Each step jumps nrow elements, so this is the cache-unfriendly axis of a
// dense store. Callers scanning large matrices should prefer columns.
// Complexity: O(last-first).
func DenseRow[S, D Number](store []S, nrow, r int, dst []D, first, last int) {
	cast := Caster[S, D]()
	off := first*nrow + r // offset of (r, first)
	for k := 0; k < last-first; k++ {
		dst[k] = cast(store[off])
		off += nrow // next column, same row
	}
}
