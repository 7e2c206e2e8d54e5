package algo

import (
	"github.com/barweiss/go-tuple"
	"github.com/samber/mo"

	"github.com/csimplestring/cursor-go/cursor"
)

// Find returns the first dereferenced value in [begin, end) satisfying pred,
// or None when no value does.
func Find[P cursor.Forward[P], V any](begin, end *cursor.Transform[P, V], pred func(V) bool) mo.Option[V] {
	for it := begin.Clone(); !it.Equal(end); it.Advance() {
		if v := it.Value(); pred(v) {
			return mo.Some(v)
		}
	}
	return mo.None[V]()
}

// Enumerate pairs every dereferenced value in [begin, end) with its offset
// from begin.
func Enumerate[P cursor.Forward[P], V any](begin, end *cursor.Transform[P, V]) []tuple.T2[int, V] {
	var res []tuple.T2[int, V]
	i := 0
	for it := begin.Clone(); !it.Equal(end); it.Advance() {
		res = append(res, tuple.New2(i, it.Value()))
		i++
	}
	return res
}
