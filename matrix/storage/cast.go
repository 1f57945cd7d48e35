// SPDX-License-Identifier: MIT

package storage

import "math"

// Number is the set of element types a store may hold and a caller may
// request. Integer and logical stores use int, floating-point stores use
// float64.
type Number interface {
	int | float64
}

// IntNA is the integer "missing" marker. Non-finite floating-point values
// and values outside the int range read back as IntNA through an integer
// destination; IntNA reads back as NaN through a float64 destination.
const IntNA = math.MinInt

// Bounds for float64→int conversion; outside this window Go leaves the
// result implementation-defined.
const (
	maxIntFloat = float64(math.MaxInt) // rounds up to 2^63, hence the strict < below
	minIntFloat = float64(math.MinInt)
)

// Caster returns the S→D coercion used by every kernel.
//
// Coercion table:
//
//	S == D             identity
//	int     → float64  exact widening; IntNA → NaN
//	float64 → int      truncation toward zero; NaN, ±Inf and out-of-range → IntNA
//
// The returned function captures nothing, so obtaining it on every call is
// allocation-free.
func Caster[S, D Number]() func(S) D {
	var (
		s S
		d D
	)
	_, srcFloat := any(s).(float64)
	_, dstInt := any(d).(int)
	switch {
	case srcFloat && dstInt:
		return narrow[S, D]
	case !srcFloat && !dstInt:
		return widen[S, D]
	}

	return identity[S, D]
}

// identity covers S == D.
func identity[S, D Number](v S) D {
	return D(v)
}

// widen converts an int held in S into a float64 held in D, mapping IntNA
// to NaN.
func widen[S, D Number](v S) D {
	if int(v) == IntNA {
		nan := math.NaN()

		return D(nan)
	}

	return D(v)
}

// narrow truncates a float64 held in S into an int held in D.
func narrow[S, D Number](v S) D {
	f := float64(v)
	if math.IsNaN(f) || f >= maxIntFloat || f < minIntFloat {
		na := IntNA // variable, so the conversion below is not a constant one

		return D(na)
	}

	return D(math.Trunc(f))
}
