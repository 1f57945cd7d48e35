// SPDX-License-Identifier: MIT
// Package matrix - binding facade.
//
// Purpose:
//   - Turn a description of borrowed buffers (Source) into the right
//     variant with one dispatch, so callers holding "some matrix-like object"
//     never switch on layout or element kind themselves.
//   - Keep no logic of its own: every check lives in the constructors.
//
// AI-Hints:
//   - Use Bind when the layout is only known at run time; use NewDense/NewCSC/
//     NewSeed when it is static and the concrete type's extras (ColView,
//     ColRun, RowCursor) are wanted.
//   - BindSparse is Bind plus a guarantee that NNZ and Sparse* are available.

package matrix

// Source describes the buffers of one externally owned matrix. Every slice
// is borrowed and must outlive the bound handle unchanged.
//
// Field use by layout:
//
//	LayoutDense: Ints or Floats (column-major, Rows*Cols values).
//	LayoutCSC:   Ints or Floats, RowIndex, ColPtr, NNZ.
//	LayoutSeed:  Ints or Floats, RowIndex, ColIndex, NNZ.
//
// Kind selects the store: KindFloat reads Floats, KindInteger and
// KindLogical read Ints. Exactly one of Ints/Floats may be set.
type Source struct {
	Layout     Layout
	Kind       Kind
	Rows, Cols int
	Ints       []int
	Floats     []float64
	RowIndex   []int
	ColIndex   []int
	ColPtr     []int
	NNZ        int // declared number of stored entries (sparse layouts)
}

// Bind validates src and returns the matching variant behind Matrix.
//
// Errors:
//   - ErrMalformedLayout: store/kind mismatch, declared NNZ disagreeing with
//     the buffers, or any constructor invariant;
//   - ErrUnsupportedAxis: unknown layout or kind.
func Bind(src Source, opts ...Option) (Matrix, error) {
	const ctor = "Bind"
	switch src.Kind {
	case KindFloat:
		if src.Ints != nil {
			return nil, buildErrorf(ctor, malformedf("Source", "integer values supplied for a float matrix"))
		}
		return bindStore(src, src.Floats, opts)
	case KindInteger, KindLogical:
		if src.Floats != nil {
			return nil, buildErrorf(ctor, malformedf("Source", "float values supplied for a %s matrix", src.Kind))
		}
		if src.Kind == KindLogical {
			opts = append(opts[:len(opts):len(opts)], WithLogical())
		}
		return bindStore(src, src.Ints, opts)
	}

	return nil, buildErrorf(ctor, ErrUnsupportedAxis)
}

// BindSparse is Bind restricted to sparse-capable layouts.
// Errors: as Bind, plus ErrUnsupportedAxis for LayoutDense.
func BindSparse(src Source, opts ...Option) (SparseMatrix, error) {
	if src.Layout == LayoutDense {
		return nil, buildErrorf("BindSparse", ErrUnsupportedAxis)
	}
	m, err := Bind(src, opts...)
	if err != nil {
		return nil, err
	}

	return m.(SparseMatrix), nil
}

// bindStore performs the one-time layout dispatch for store type S.
func bindStore[S Value](src Source, values []S, opts []Option) (Matrix, error) {
	const ctor = "Bind"
	if (src.Layout == LayoutCSC || src.Layout == LayoutSeed) && src.NNZ != len(values) {
		return nil, buildErrorf(ctor, malformedf("Source", "declared nnz %d, %d values supplied", src.NNZ, len(values)))
	}

	// Typed nil pointers must not leak out as non-nil interfaces.
	var (
		m   Matrix
		err error
	)
	switch src.Layout {
	case LayoutDense:
		var d *Dense[S]
		if d, err = NewDense(src.Rows, src.Cols, values, opts...); err == nil {
			m = d
		}
	case LayoutCSC:
		var c *CSC[S]
		if c, err = NewCSC(src.Rows, src.Cols, values, src.RowIndex, src.ColPtr, opts...); err == nil {
			m = c
		}
	case LayoutSeed:
		var s *Seed[S]
		if s, err = NewSeed(src.Rows, src.Cols, values, src.RowIndex, src.ColIndex, opts...); err == nil {
			m = s
		}
	default:
		err = buildErrorf(ctor, ErrUnsupportedAxis)
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}
