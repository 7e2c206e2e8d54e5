package algo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/csimplestring/cursor-go/cursor"
	"github.com/csimplestring/cursor-go/errno"
	"github.com/csimplestring/cursor-go/seqs"
)

// tag is not comparable with == because of the Labels slice; Distinct keys
// it by structural hash instead.
type tag struct {
	ID     uuid.UUID
	Labels []string
}

func TestDistinct_DropsStructuralDuplicates(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()
	tags := []tag{
		{ID: id1, Labels: []string{"a", "b"}},
		{ID: id2, Labels: []string{"c"}},
		{ID: id1, Labels: []string{"a", "b"}},
	}

	begin := cursor.New(seqs.Begin(tags), seqs.Slice[tag].Get)
	end := cursor.New(seqs.End(tags), seqs.Slice[tag].Get)

	got, err := Distinct(begin, end)
	assert.NoError(t, err)
	assert.Equal(t, []tag{tags[0], tags[1]}, got)
}

func TestDistinct_SeesTheTransformedValues(t *testing.T) {
	input := []int{1, 2, 3, 11, 12}
	lastDigit := func(c seqs.Slice[int]) int { return c.Get() % 10 }

	begin := cursor.New(seqs.Begin(input), lastDigit)
	end := cursor.New(seqs.End(input), lastDigit)

	got, err := Distinct(begin, end)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestDistinct_NilCursor(t *testing.T) {
	begin, _ := intRange([]int{1})

	_, err := Distinct(begin, nil)
	assert.ErrorIs(t, err, errno.ErrNullPointer)
}
