package rolling

import (
	"github.com/sodalite-io/genutil/pkg/floats"
)

// Func2D maps a block of rows (a row-window view) to a single value.
type Func2D func(block floats.Matrix) float64

// VecFunc2D maps a block of rows to one value per column, filling the
// pre-sized out slice in place. Filling a caller-allocated slice avoids a
// per-position allocation in the rolled loop.
type VecFunc2D func(block floats.Matrix, out []float64)

// Rolled2D applies a 2D-to-scalar function to every sliding row-window,
// producing one value per input row.
type Rolled2D func(m floats.Matrix) floats.Slice

// Rolled2DVec applies a 2D-to-vector function to every sliding
// row-window, producing a matrix with the input's shape.
type Rolled2DVec func(m floats.Matrix) floats.Matrix

// Roll2D compiles a 2D-to-scalar window function with the usual boundary
// rule over rows: position i sees rows max(0, i-n+1) through i.
func Roll2D(f Func2D, n int) (Rolled2D, error) {
	if n < 1 {
		return nil, preconditionErrorf("window size %d, must be >= 1", n)
	}
	if f == nil {
		return nil, compileErrorf("nil window function")
	}
	return func(m floats.Matrix) floats.Slice {
		out := make(floats.Slice, m.Rows())
		for i := 0; i < m.Rows(); i++ {
			lo := i - n + 1
			if lo < 0 {
				lo = 0
			}
			out[i] = f(m.RowWindow(lo, i+1))
		}
		return out
	}, nil
}

// Roll2DVec compiles a 2D-to-vector window function. Each output row i is
// filled in place by f from the row-window ending at i.
func Roll2DVec(f VecFunc2D, n int) (Rolled2DVec, error) {
	if n < 1 {
		return nil, preconditionErrorf("window size %d, must be >= 1", n)
	}
	if f == nil {
		return nil, compileErrorf("nil window function")
	}
	return func(m floats.Matrix) floats.Matrix {
		out := floats.NewMatrix(m.Rows(), m.Cols())
		for i := 0; i < m.Rows(); i++ {
			lo := i - n + 1
			if lo < 0 {
				lo = 0
			}
			f(m.RowWindow(lo, i+1), out.Row(i))
		}
		return out
	}, nil
}

// RollColumns lifts a compiled 1D roller to a 2D input, applying it down
// each column independently and producing a same-shape matrix.
func RollColumns(r Rolled[float64, float64]) func(m floats.Matrix) floats.Matrix {
	return func(m floats.Matrix) floats.Matrix {
		out := floats.NewMatrix(m.Rows(), m.Cols())
		for j := 0; j < m.Cols(); j++ {
			out.SetCol(j, r(m.Col(j)))
		}
		return out
	}
}
