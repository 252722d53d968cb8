// Package textstore provides a piece-table text store for a document under
// continuous mutation. The document is the ordered concatenation of pieces
// referencing two backing buffers: the immutable original text and an
// append-only buffer of insertions. A derived line index, fully rebuilt after
// every edit, backs line queries and offset/position conversion.
//
// The store never fails on out-of-range numeric input: every operation clamps
// its arguments and degrades to a well-defined result. This is the contract
// consumers such as a renderer or an input layer rely on.
//
// Basic usage:
//
//	st := textstore.NewFromString("World")
//	st.Insert(0, "Hello ")          // "Hello World"
//	st.Delete(5, 6)                 // "Hello"
//
//	pos := st.OffsetToPosition(3)   // (1:4)
//	off := st.PositionToOffset(pos) // 3
//
// Snapshots capture the full state for history:
//
//	snap := st.TakeSnapshot()
//	st.Insert(0, "scratch ")
//	st.Restore(snap)                // back to the captured content
//
// The store guards its state with a mutex so snapshots and reads are safe
// from other goroutines, but all operations are synchronous and run to
// completion; there is no internal scheduling.
package textstore
