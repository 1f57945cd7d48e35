// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot and panic messages
//
// Purpose:
//   - Expose the effective construction and facade options to matrix_test
//     ONLY, so option tests can check each setter in isolation.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update GatherOptionsSnapshot_TestOnly accordingly.

// PanicNilMaterializeHook is the message WithOnMaterialize(nil) panics with.
const PanicNilMaterializeHook = panicNilMaterializeHook

// OptionsSnapshot is a read-only view of Options.
type OptionsSnapshot struct {
	EagerIndex       bool
	Logical          bool
	HasMaterializeFn bool
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		EagerIndex:       o.eagerIndex,
		Logical:          o.logical,
		HasMaterializeFn: o.onMaterialize != nil,
	}
}

// ReaderOptionsSnapshot is a read-only view of readerOptions[T].
type ReaderOptionsSnapshot[T Value] struct {
	Empty T
	Local bool
}

// GatherReaderOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherReaderOptionsSnapshot_TestOnly[T Value](opts ...ReaderOption[T]) ReaderOptionsSnapshot[T] {
	o := gatherReaderOptions(opts...)

	return ReaderOptionsSnapshot[T]{Empty: o.empty, Local: o.local}
}
