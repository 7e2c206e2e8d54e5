package algo

import (
	"github.com/csimplestring/cursor-go/cursor"
	"github.com/csimplestring/cursor-go/errno"
)

// Distance counts the steps from one cursor to another by repeated advance.
// to must be reachable from from by forward movement, otherwise Distance
// never terminates, same as counting distance on any non random-access
// position type.
func Distance[P cursor.Forward[P]](from, to P) int {
	n := 0
	for it := from; !it.Equal(to); it = it.Next() {
		n++
	}
	return n
}

// AdvanceBy returns p moved n steps forward.
func AdvanceBy[P cursor.Forward[P]](p P, n int) (P, error) {
	if n < 0 {
		return p, errno.NegativeCount(n)
	}
	for i := 0; i < n; i++ {
		p = p.Next()
	}
	return p, nil
}

// RetreatBy returns p moved n steps backward. The cursor must be
// bidirectional.
func RetreatBy[P cursor.Bidi[P]](p P, n int) (P, error) {
	if n < 0 {
		return p, errno.NegativeCount(n)
	}
	for i := 0; i < n; i++ {
		p = p.Prev()
	}
	return p, nil
}
