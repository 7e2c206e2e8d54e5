// Package seqs provides sequence types whose positions satisfy the cursor
// capability contracts: a slice cursor and a doubly linked list (both
// bidirectional), and a singly linked list (forward-only).
package seqs

import "github.com/csimplestring/cursor-go/cursor"

var _ cursor.Bidi[Slice[string]] = Slice[string]{}

// Slice is a cursor into a Go slice. Begin and End bracket the full slice;
// positions compare by index, so only cursors into the same slice are
// meaningfully comparable.
type Slice[T any] struct {
	s []T
	i int
}

func Begin[T any](s []T) Slice[T] {
	return Slice[T]{s: s, i: 0}
}

// End is the past-the-end position. Dereferencing it is out of bounds and
// panics, same as indexing the slice at len(s).
func End[T any](s []T) Slice[T] {
	return Slice[T]{s: s, i: len(s)}
}

// At returns the position at index i.
func At[T any](s []T, i int) Slice[T] {
	return Slice[T]{s: s, i: i}
}

func (c Slice[T]) Next() Slice[T] {
	return Slice[T]{s: c.s, i: c.i + 1}
}

func (c Slice[T]) Prev() Slice[T] {
	return Slice[T]{s: c.s, i: c.i - 1}
}

func (c Slice[T]) Equal(other Slice[T]) bool {
	return c.i == other.i
}

// Get returns the pointed-to element.
func (c Slice[T]) Get() T {
	return c.s[c.i]
}

// Ref returns a pointer to the pointed-to element, for transforms that
// mutate in place or avoid copying.
func (c Slice[T]) Ref() *T {
	return &c.s[c.i]
}

func (c Slice[T]) Set(v T) {
	c.s[c.i] = v
}

func (c Slice[T]) Index() int {
	return c.i
}
