package algo

import (
	"github.com/ahmetb/go-linq/v3"

	"github.com/csimplestring/cursor-go/cursor"
)

// Query exposes [begin, end) as a go-linq query, so a transformed view can
// flow into linq pipelines without collecting it first. Every call to
// Iterate restarts from begin; the transform runs again for each pass.
func Query[P cursor.Forward[P], V any](begin, end *cursor.Transform[P, V]) linq.Query {
	return linq.Query{
		Iterate: func() linq.Iterator {
			it := begin.Clone()
			return func() (interface{}, bool) {
				if it.Equal(end) {
					return nil, false
				}
				v := it.Value()
				it.Advance()
				return v, true
			}
		},
	}
}
