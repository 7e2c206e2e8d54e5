package algo

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/csimplestring/cursor-go/cursor"
	"github.com/csimplestring/cursor-go/errno"
	"github.com/csimplestring/cursor-go/internal/util"
)

// Distinct collects the dereferenced values of [begin, end), dropping
// structural duplicates. Values are keyed by structural hash so V does not
// have to be comparable with ==.
func Distinct[P cursor.Forward[P], V any](begin, end *cursor.Transform[P, V]) ([]V, error) {
	if begin == nil || end == nil {
		return nil, errno.NilCursor("transform iterator")
	}

	seen := mapset.NewSet[uint64]()
	var res []V
	for it := begin.Clone(); !it.Equal(end); it.Advance() {
		v := it.Value()
		h, err := util.HashStruct(v)
		if err != nil {
			return nil, errno.HashingError(err)
		}
		if seen.Add(h) {
			res = append(res, v)
		}
	}
	return res, nil
}
