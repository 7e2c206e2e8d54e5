package util

import "github.com/mitchellh/hashstructure/v2"

// HashStruct returns a structural hash of v, usable as a set key for values
// that are not comparable with ==.
func HashStruct(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}

func MustHashStruct(v any) uint64 {
	ret, err := HashStruct(v)
	if err != nil {
		panic(err)
	}
	return ret
}
