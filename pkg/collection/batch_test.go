package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2, 3}}, Chunk([]int{1, 2, 3}, 5))
	assert.Nil(t, Chunk([]int{1}, 0))
	assert.Nil(t, Chunk([]int{}, 3))
}

func TestChunkInto(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, ChunkInto([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1}, {2}, {3}}, ChunkInto([]int{1, 2, 3}, 3))
	assert.Nil(t, ChunkInto([]int{1}, 0))
}

func TestBatchByWeight(t *testing.T) {
	id := func(x float64) float64 { return x }

	batches := BatchByWeight([]float64{4, 4, 4, 9, 2}, id, 8)
	require.Len(t, batches, 4)
	assert.Equal(t, []float64{4, 4}, batches[0].Items)
	assert.Equal(t, 8.0, batches[0].Total)
	assert.Equal(t, []float64{4}, batches[1].Items)
	assert.Equal(t, []float64{9}, batches[2].Items)
	assert.Equal(t, []float64{2}, batches[3].Items)

	// An overweight element still lands in its own batch.
	heavy := BatchByWeight([]float64{20}, id, 8)
	require.Len(t, heavy, 1)
	assert.Equal(t, 20.0, heavy[0].Total)
}

func TestBatchIntoByWeightOrdered(t *testing.T) {
	id := func(x float64) float64 { return x }

	batches, err := BatchIntoByWeight([]float64{3, 3, 3, 3, 3, 3}, id, 3, false)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	for _, b := range batches {
		assert.Equal(t, 6.0, b.Total)
	}
}

func TestBatchIntoByWeightBalanced(t *testing.T) {
	id := func(x float64) float64 { return x }

	xs := []float64{9, 1, 4, 6, 2, 8}
	batches, err := BatchIntoByWeight(xs, id, 3, true)
	require.NoError(t, err)
	require.Len(t, batches, 3)

	// Lightest first, and every element accounted for exactly once.
	var all []float64
	var prev float64
	for _, b := range batches {
		assert.GreaterOrEqual(t, b.Total, prev)
		prev = b.Total
		all = append(all, b.Items...)
	}
	assert.True(t, EqualElems(xs, all))

	// Greedy balance on this input: 9+1, 4+6, 2+8.
	assert.Equal(t, 10.0, batches[0].Total)
	assert.Equal(t, 10.0, batches[1].Total)
	assert.Equal(t, 10.0, batches[2].Total)
}

func TestBatchIntoByWeightErrors(t *testing.T) {
	id := func(x float64) float64 { return x }
	_, err := BatchIntoByWeight([]float64{1}, id, 0, false)
	assert.Error(t, err)
	_, err = BatchIntoByWeight([]float64{1}, id, 2, true)
	assert.Error(t, err)
}
