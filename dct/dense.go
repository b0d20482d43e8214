package dct

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ForwardDense applies the 2D Type-II DCT to a gonum matrix and returns the
// coefficients as a new dense matrix of the same dimensions.
func ForwardDense(m mat.Matrix, opts ...*Options) (*mat.Dense, error) {
	out, err := transformDense(m, Forward, opts)
	if err != nil {
		return nil, fmt.Errorf("forward dense: %w", err)
	}
	return out, nil
}

// InverseDense applies the 2D Type-III DCT (inverse of ForwardDense) to a
// gonum matrix and returns the samples as a new dense matrix of the same
// dimensions.
func InverseDense(m mat.Matrix, opts ...*Options) (*mat.Dense, error) {
	out, err := transformDense(m, Inverse, opts)
	if err != nil {
		return nil, fmt.Errorf("inverse dense: %w", err)
	}
	return out, nil
}

func transformDense(m mat.Matrix, dir Direction, opts []*Options) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrEmptyInput
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyInput
	}
	a := newArray(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.data[i*c+j] = m.At(i, j)
		}
	}
	out, err := Transform(a, dir, opts...)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(r, c, out.data), nil
}

// GridToDense copies a rectangular grid indexed [row][col] into a gonum
// dense matrix.
func GridToDense(g [][]float64) (*mat.Dense, error) {
	a, err := FromGrid(g)
	if err != nil {
		return nil, fmt.Errorf("grid to dense: %w", err)
	}
	return mat.NewDense(a.shape[0], a.shape[1], a.data), nil
}

// DenseToGrid copies a gonum matrix into a nested [row][col] grid.
func DenseToGrid(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = m.At(i, j)
		}
		out[i] = row
	}
	return out
}
