package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csimplestring/cursor-go/errno"
	"github.com/csimplestring/cursor-go/seqs"
)

func TestDistance_CountsByAdvancing(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	assert.Equal(t, 5, Distance(seqs.Begin(s), seqs.End(s)))
	assert.Equal(t, 0, Distance(seqs.Begin(s), seqs.Begin(s)))

	l := seqs.NewSList("a", "b", "c")
	assert.Equal(t, 3, Distance(l.Front(), l.End()))
}

func TestAdvanceBy_MovesForward(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	p, err := AdvanceBy(seqs.Begin(s), 3)
	assert.NoError(t, err)
	assert.Equal(t, 4, p.Get())

	p, err = AdvanceBy(seqs.Begin(s), 0)
	assert.NoError(t, err)
	assert.True(t, p.Equal(seqs.Begin(s)))
}

func TestAdvanceBy_RejectsNegativeCounts(t *testing.T) {
	s := []int{1, 2, 3}

	_, err := AdvanceBy(seqs.Begin(s), -1)
	assert.ErrorIs(t, err, errno.ErrIllegalArgument)
}

func TestRetreatBy_MovesBackward(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	p, err := RetreatBy(seqs.End(s), 2)
	assert.NoError(t, err)
	assert.Equal(t, 4, p.Get())

	_, err = RetreatBy(seqs.End(s), -2)
	assert.ErrorIs(t, err, errno.ErrIllegalArgument)
}
