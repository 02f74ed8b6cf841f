package floats

import "fmt"

// Matrix is a row-major 2D float64 grid. Rows are observations, columns
// are independent series. Row slicing is cheap (a contiguous view);
// column access copies.
type Matrix struct {
	rows, cols int
	data       []float64
}

func NewMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// MatrixFromRows builds a matrix from row slices, which must all have the
// same length.
func MatrixFromRows(rows ...[]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

func (m Matrix) Rows() int { return m.rows }
func (m Matrix) Cols() int { return m.cols }

func (m Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

func (m Matrix) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// Row returns row i as a view into the matrix storage.
func (m Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// RowWindow returns rows [lo, hi) as a view sharing the same storage.
func (m Matrix) RowWindow(lo, hi int) Matrix {
	return Matrix{rows: hi - lo, cols: m.cols, data: m.data[lo*m.cols : hi*m.cols]}
}

// Col returns a copy of column j.
func (m Matrix) Col(j int) Slice {
	out := make(Slice, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

func (m Matrix) SetCol(j int, col []float64) {
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j] = col[i]
	}
}

// ColSum sums column j over all rows.
func (m Matrix) ColSum(j int) float64 {
	var sum float64
	for i := 0; i < m.rows; i++ {
		sum += m.data[i*m.cols+j]
	}
	return sum
}
