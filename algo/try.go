package algo

import (
	"github.com/rotisserie/eris"

	"github.com/csimplestring/cursor-go/cursor"
	"github.com/csimplestring/cursor-go/errno"
)

// TryCollect maps every dereferenced value of [begin, end) through mapper,
// stopping at the first failure.
func TryCollect[P cursor.Forward[P], V any, R any](begin, end *cursor.Transform[P, V], mapper func(V) (R, error)) ([]R, error) {
	if begin == nil || end == nil {
		return nil, errno.NilCursor("transform iterator")
	}

	var res []R
	for it := begin.Clone(); !it.Equal(end); it.Advance() {
		v := it.Value()
		r, err := mapper(v)
		if err != nil {
			return nil, eris.Wrapf(err, "mapping value %v", v)
		}
		res = append(res, r)
	}
	return res, nil
}
