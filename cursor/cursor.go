// Package cursor provides a position-based transform iterator: an adapter
// that wraps a cursor into a sequence and applies a caller-supplied function
// at dereference time, without materializing a new container.
//
// A cursor is a plain value denoting a position. Its capabilities are
// expressed as interface constraints, so requesting an operation the cursor
// type does not support fails at compile time.
//
// Multi-pass note: dereferencing the same position twice yields equal results
// only when the transform is pure with respect to position. The adapter never
// caches, and when the transform returns a freshly computed value (rather
// than a pointer into the sequence) no reference stability across
// dereferences is guaranteed.
package cursor

// Forward is the capability contract for a position type that moves forward
// through a sequence and compares for equality.
//
// Next returns the successor position and leaves the receiver untouched;
// cursors are values and are copied freely. Validity rules (when a position
// may be dereferenced or advanced) belong to the sequence the cursor points
// into, nothing here checks them.
type Forward[P any] interface {
	Next() P
	Equal(other P) bool
}

// Bidi is a Forward cursor that can also move backward.
type Bidi[P any] interface {
	Forward[P]
	Prev() P
}
