package rolling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sodalite-io/genutil/pkg/floats"
)

func testMatrix(t *testing.T) floats.Matrix {
	t.Helper()
	m, err := floats.MatrixFromRows(
		[]float64{1, 10},
		[]float64{2, 20},
		[]float64{3, 30},
		[]float64{4, 40},
	)
	require.NoError(t, err)
	return m
}

func TestRoll2D(t *testing.T) {
	blockSum := func(block floats.Matrix) float64 {
		var s float64
		for i := 0; i < block.Rows(); i++ {
			s += floats.Slice(block.Row(i)).Sum()
		}
		return s
	}

	r, err := Roll2D(blockSum, 2)
	require.NoError(t, err)

	// Row windows: [r0], [r0 r1], [r1 r2], [r2 r3].
	assert.Equal(t, floats.Slice{11, 33, 55, 77}, r(testMatrix(t)))
}

func TestRoll2DVec(t *testing.T) {
	colMeans := func(block floats.Matrix, out []float64) {
		for j := 0; j < block.Cols(); j++ {
			out[j] = block.ColSum(j) / float64(block.Rows())
		}
	}

	r, err := Roll2DVec(colMeans, 2)
	require.NoError(t, err)

	out := r(testMatrix(t))
	assert.Equal(t, 4, out.Rows())
	assert.Equal(t, 2, out.Cols())
	assert.Equal(t, []float64{1, 10}, out.Row(0))
	assert.Equal(t, []float64{1.5, 15}, out.Row(1))
	assert.Equal(t, []float64{2.5, 25}, out.Row(2))
	assert.Equal(t, []float64{3.5, 35}, out.Row(3))
}

func TestRoll2DEmpty(t *testing.T) {
	blockSum := func(block floats.Matrix) float64 { return 0 }
	r, err := Roll2D(blockSum, 3)
	require.NoError(t, err)
	assert.Empty(t, r(floats.NewMatrix(0, 0)))
}

func TestRoll2DErrors(t *testing.T) {
	var precondition *PreconditionError
	var compile *CompileError

	_, err := Roll2D(nil, 2)
	assert.ErrorAs(t, err, &compile)
	_, err = Roll2D(func(floats.Matrix) float64 { return 0 }, 0)
	assert.ErrorAs(t, err, &precondition)
	_, err = Roll2DVec(nil, 2)
	assert.ErrorAs(t, err, &compile)
	_, err = Roll2DVec(func(floats.Matrix, []float64) {}, -1)
	assert.ErrorAs(t, err, &precondition)
}

func TestRollColumns(t *testing.T) {
	r, err := Roll[float64, float64](sum, 2)
	require.NoError(t, err)

	out := RollColumns(r)(testMatrix(t))
	assert.Equal(t, floats.Slice{1, 3, 5, 7}, out.Col(0))
	assert.Equal(t, floats.Slice{10, 30, 50, 70}, out.Col(1))
}
