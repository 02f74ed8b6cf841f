package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZipMaps(t *testing.T) {
	a := map[string]int{"x": 1, "y": 2, "z": 3}
	b := map[string]int{"x": 10, "y": 20}

	zipped := ZipMaps(a, b)
	assert.Equal(t, map[string][]int{
		"x": {1, 10},
		"y": {2, 20},
	}, zipped)

	assert.Empty(t, ZipMaps[string, int]())
	assert.Empty(t, ZipMaps(a, map[string]int{}))
}

func TestMergeWith(t *testing.T) {
	dst := map[string]int{"a": 1, "b": 2}
	src := map[string]int{"b": 3, "c": 4}

	out := MergeWith(dst, src, func(old, new int) int { return old + new })
	assert.Equal(t, map[string]int{"a": 1, "b": 5, "c": 4}, out)

	// dst is updated in place.
	assert.Equal(t, 5, dst["b"])
}

func TestCombinations(t *testing.T) {
	xs := []int{1, 2, 3}

	assert.Equal(t, [][]int{
		{1}, {2}, {3},
		{1, 2}, {1, 3}, {2, 3},
		{1, 2, 3},
	}, Combinations(xs, 1, 0))

	assert.Equal(t, [][]int{
		{1, 2}, {1, 3}, {2, 3},
	}, Combinations(xs, 2, 2))

	assert.Nil(t, Combinations([]int{}, 1, 0))
}
