package cursor

// Func produces the dereference result for a position. It receives the
// cursor itself, not the pointed-to value, so it can do position-aware work:
// read through a pointer, mutate then read, or project into another type.
// A Func returning a pointer is forwarded as-is by Transform.Value, without
// copying the pointee.
type Func[P, V any] func(pos P) V

// Transform adapts a cursor into an iterator whose dereference applies a
// transform function. It holds a copy of the cursor and a copy of the
// function; it does not own the sequence being iterated, nor any state the
// function captures, and it adds no validity or error state of its own.
type Transform[P Forward[P], V any] struct {
	pos P
	fn  Func[P, V]
}

// New wraps pos with fn. Both are stored by copy.
func New[P Forward[P], V any](pos P, fn Func[P, V]) *Transform[P, V] {
	return &Transform[P, V]{pos: pos, fn: fn}
}

// Value dereferences the adapter by invoking the transform with the current
// position and returns the result unchanged. There is no caching: calling
// Value twice calls the transform twice. Failures raised by the transform
// propagate to the caller as-is.
func (t *Transform[P, V]) Value() V {
	return t.fn(t.pos)
}

// Advance moves the adapter one step forward and returns the receiver,
// already at the new position.
func (t *Transform[P, V]) Advance() *Transform[P, V] {
	t.pos = t.pos.Next()
	return t
}

// PostAdvance moves the adapter one step forward but returns a copy still at
// the old position.
func (t *Transform[P, V]) PostAdvance() Transform[P, V] {
	old := *t
	t.pos = t.pos.Next()
	return old
}

// Equal reports whether both adapters denote the same position. Transform
// functions are never compared: two adapters over equal positions are equal
// even when their functions differ.
func (t *Transform[P, V]) Equal(other *Transform[P, V]) bool {
	return t.pos.Equal(other.pos)
}

// EqualPos compares the adapter against a bare cursor, so an unwrapped
// sentinel can terminate a traversal. Equality is symmetric: t.EqualPos(p)
// holds exactly when p.Equal(t.Pos()) does.
func (t *Transform[P, V]) EqualPos(pos P) bool {
	return t.pos.Equal(pos)
}

// Pos returns the wrapped cursor at its current position.
func (t *Transform[P, V]) Pos() P {
	return t.pos
}

// Clone returns an independent adapter at the same position, sharing the
// same transform function value.
func (t *Transform[P, V]) Clone() *Transform[P, V] {
	c := *t
	return &c
}

// Retreat moves the adapter one step backward and returns the receiver. It
// is a free function so the Bidi constraint is checked at the call site:
// retreating an adapter over a forward-only cursor does not compile.
func Retreat[P Bidi[P], V any](t *Transform[P, V]) *Transform[P, V] {
	t.pos = t.pos.Prev()
	return t
}

// PostRetreat moves the adapter one step backward, returning a copy at the
// old position.
func PostRetreat[P Bidi[P], V any](t *Transform[P, V]) Transform[P, V] {
	old := *t
	t.pos = t.pos.Prev()
	return old
}
