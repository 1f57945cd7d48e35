// SPDX-License-Identifier: MIT

package matrix

// Kind is the element kind of a backing store.
type Kind uint8

const (
	// KindInteger marks an []int store.
	KindInteger Kind = iota + 1
	// KindFloat marks a []float64 store.
	KindFloat
	// KindLogical marks an []int store restricted to {0, 1, IntNA}.
	KindLogical
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindLogical:
		return "logical"
	default:
		return "unknown"
	}
}

// Layout is the physical arrangement of a backing store.
type Layout uint8

const (
	// LayoutDense is a column-major nrow*ncol buffer.
	LayoutDense Layout = iota + 1
	// LayoutCSC is a compressed-sparse-column value/index/pointer triplet.
	LayoutCSC
	// LayoutSeed is an unordered (value, row, col) triplet list indexed on
	// first use.
	LayoutSeed
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutDense:
		return "dense"
	case LayoutCSC:
		return "csc"
	case LayoutSeed:
		return "seed"
	default:
		return "unknown"
	}
}

// State is the lifecycle state of a reader.
// Dense and CSC readers are always StateReady; a Seed starts StateUnbound and
// moves to StateReady exactly once, on first extraction.
type State uint8

const (
	// StateUnbound: metadata available, index not yet built.
	StateUnbound State = iota
	// StateReady: every extraction can be served without further setup.
	StateReady
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == StateReady {
		return "ready"
	}

	return "unbound"
}

// kindOf maps a store element type to its default Kind.
func kindOf[S Value]() Kind {
	var s S
	if _, ok := any(s).(float64); ok {
		return KindFloat
	}

	return KindInteger
}
