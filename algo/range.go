// Package algo provides generic algorithms over transform iterator ranges:
// traversal, collection, bulk insertion, distance, search and a go-linq
// bridge. A range is a begin/end adapter pair over the same sequence;
// traversal advances begin until it equals end. Bounds are never checked
// beyond that equality, exactly as with the raw cursors.
package algo

import (
	"github.com/csimplestring/cursor-go/cursor"
	"github.com/csimplestring/cursor-go/seqs"
)

// ForEach applies fn to every dereferenced value in [begin, end).
func ForEach[P cursor.Forward[P], V any](begin, end *cursor.Transform[P, V], fn func(V)) {
	for it := begin.Clone(); !it.Equal(end); it.Advance() {
		fn(it.Value())
	}
}

// Collect copies the dereferenced values of [begin, end) into a new slice.
func Collect[P cursor.Forward[P], V any](begin, end *cursor.Transform[P, V]) []V {
	return AppendTo(nil, begin, end)
}

// AppendTo bulk-inserts the dereferenced values of [begin, end) at the end
// of dst, counting elements by repeated advance-until-equal.
func AppendTo[P cursor.Forward[P], V any](dst []V, begin, end *cursor.Transform[P, V]) []V {
	for it := begin.Clone(); !it.Equal(end); it.Advance() {
		dst = append(dst, it.Value())
	}
	return dst
}

// CollectUntil collects dereferenced values from begin until the adapter's
// position equals the bare sentinel cursor end. The sentinel does not need
// to be wrapped.
func CollectUntil[P cursor.Forward[P], V any](begin *cursor.Transform[P, V], end P) []V {
	var res []V
	for it := begin.Clone(); !it.EqualPos(end); it.Advance() {
		res = append(res, it.Value())
	}
	return res
}

// ExtendList bulk-inserts the dereferenced values of [begin, end) at the
// back of l, preserving order.
func ExtendList[P cursor.Forward[P], V any](l *seqs.List[V], begin, end *cursor.Transform[P, V]) {
	for it := begin.Clone(); !it.Equal(end); it.Advance() {
		l.PushBack(it.Value())
	}
}
