package rolling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetOrCompile(t *testing.T) {
	cache := NewCache[float64, float64]()

	comp := Compiler[float64, float64]{Fn: sum, Window: 3}
	r1, err := cache.GetOrCompile("sum", comp)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	r2, err := cache.GetOrCompile("sum", comp)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, r1([]float64{1, 2, 3}), r2([]float64{1, 2, 3}))

	// Different window, different entry.
	comp.Window = 5
	_, err = cache.GetOrCompile("sum", comp)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())

	// Different strategy, different entry.
	comp.Strategy = StrategyWindowed
	_, err = cache.GetOrCompile("sum", comp)
	require.NoError(t, err)
	assert.Equal(t, 3, cache.Len())

	r, ok := cache.Get(Key{Name: "sum", Window: 3, Strategy: StrategyDirect})
	require.True(t, ok)
	assert.Equal(t, []float64{1, 3, 6}, r([]float64{1, 2, 3}))

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	_, ok = cache.Get(Key{Name: "sum", Window: 3, Strategy: StrategyDirect})
	assert.False(t, ok)
}

func TestCacheCompileFailureNotStored(t *testing.T) {
	cache := NewCache[float64, float64]()
	_, err := cache.GetOrCompile("bad", Compiler[float64, float64]{Fn: nil, Window: 3})
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}
