package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, Flatten([][]int{{1, 2}, {}, {3, 4}}))
	assert.Equal(t, []int{}, Flatten[int](nil))
}

func TestDeepFlatten(t *testing.T) {
	nested := []interface{}{
		1,
		[]interface{}{2, []int{3, 4}},
		map[string]interface{}{"a": 5, "b": []int{6}},
		"leaf",
	}
	assert.Equal(t,
		[]interface{}{1, 2, 3, 4, 5, 6, "leaf"},
		DeepFlatten(nested))
}

func TestDeepFlattenLeaves(t *testing.T) {
	// Strings and byte slices are leaves, not character containers.
	assert.Equal(t, []interface{}{"ab"}, DeepFlatten("ab"))
	assert.Equal(t, []interface{}{[]byte("ab")}, DeepFlatten([]byte("ab")))
	assert.Equal(t, []interface{}{7}, DeepFlatten(7))
	assert.Equal(t, []interface{}{nil}, DeepFlatten(nil))
}

func TestDeepExtract(t *testing.T) {
	data := map[string]interface{}{
		"metrics": map[string]interface{}{
			"latency": []interface{}{[]int{1, 2}, 3},
		},
	}

	out, err := DeepExtract(data, "metrics", "latency")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2, 3}, out)

	out, err = DeepExtract(data, "metrics", "latency", 0)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2}, out)

	_, err = DeepExtract(data, "missing")
	assert.Error(t, err)
	_, err = DeepExtract(data, "metrics", "latency", "oops")
	assert.Error(t, err)
	_, err = DeepExtract(data, "metrics", "latency", 9)
	assert.Error(t, err)
}
