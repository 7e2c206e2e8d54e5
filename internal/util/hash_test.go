package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStruct_StructuralEquality(t *testing.T) {
	type item struct {
		Name   string
		Labels []string
	}

	a := item{Name: "x", Labels: []string{"a"}}
	b := item{Name: "x", Labels: []string{"a"}}
	c := item{Name: "y", Labels: []string{"a"}}

	ha, err := HashStruct(a)
	assert.NoError(t, err)
	assert.Equal(t, ha, MustHashStruct(b))
	assert.NotEqual(t, ha, MustHashStruct(c))
}
