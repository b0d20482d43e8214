package dct

import "fmt"

// Array is a dense, row-major array of float64 samples with rank 1, 2 or 3.
// The zero value is not usable; construct arrays with NewArray, FromVector,
// FromGrid or FromVolume.
type Array struct {
	shape  []int
	stride []int
	data   []float64
}

// strides computes row-major strides for shape: the last axis is contiguous.
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		st[d] = acc
		acc *= shape[d]
	}
	return st
}

// newArray allocates a zeroed array of the given shape. The caller must have
// validated the shape.
func newArray(shape ...int) *Array {
	sh := make([]int, len(shape))
	copy(sh, shape)
	n := 1
	for _, dim := range sh {
		n *= dim
	}
	return &Array{shape: sh, stride: strides(sh), data: make([]float64, n)}
}

// NewArray allocates a zeroed array of the given shape. The rank must be
// 1, 2 or 3 and every dimension must be at least 1.
func NewArray(shape ...int) (*Array, error) {
	if len(shape) < 1 || len(shape) > 3 {
		return nil, fmt.Errorf("new array: rank %d: %w", len(shape), ErrShapeMismatch)
	}
	for d, dim := range shape {
		if dim < 1 {
			return nil, fmt.Errorf("new array: dimension %d is %d: %w", d, dim, ErrEmptyInput)
		}
	}
	return newArray(shape...), nil
}

// FromVector builds a rank-1 array from x. The data is copied; the returned
// array does not alias the input.
func FromVector(x []float64) (*Array, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("from vector: %w", ErrEmptyInput)
	}
	a := newArray(len(x))
	copy(a.data, x)
	return a, nil
}

// FromGrid builds a rank-2 array from a rectangular grid indexed [row][col].
// Every row must have the same, non-zero length. The data is copied; the
// returned array does not alias the input.
func FromGrid(g [][]float64) (*Array, error) {
	h := len(g)
	if h == 0 || len(g[0]) == 0 {
		return nil, fmt.Errorf("from grid: %w", ErrEmptyInput)
	}
	w := len(g[0])
	for y, row := range g {
		if len(row) != w {
			return nil, fmt.Errorf("from grid: row %d has %d columns, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	a := newArray(h, w)
	for y, row := range g {
		copy(a.data[y*w:(y+1)*w], row)
	}
	return a, nil
}

// FromVolume builds a rank-3 array from a volume indexed [row][col][depth].
// Every row must have the same, non-zero number of columns and every cell
// the same, non-zero depth. The data is copied; the returned array does not
// alias the input.
func FromVolume(v [][][]float64) (*Array, error) {
	h := len(v)
	if h == 0 || len(v[0]) == 0 || len(v[0][0]) == 0 {
		return nil, fmt.Errorf("from volume: %w", ErrEmptyInput)
	}
	w := len(v[0])
	d := len(v[0][0])
	for y, row := range v {
		if len(row) != w {
			return nil, fmt.Errorf("from volume: row %d has %d columns, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		for x, cell := range row {
			if len(cell) != d {
				return nil, fmt.Errorf("from volume: cell (%d,%d) has depth %d, want %d: %w", y, x, len(cell), d, ErrNonRectangular)
			}
		}
	}
	a := newArray(h, w, d)
	for y, row := range v {
		for x, cell := range row {
			base := (y*w + x) * d
			copy(a.data[base:base+d], cell)
		}
	}
	return a, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int {
	sh := make([]int, len(a.shape))
	copy(sh, a.shape)
	return sh
}

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.data) }

// offset maps a multi-index to a position in the flat backing slice.
func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic("dct: wrong number of indices")
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic("dct: index out of range")
		}
		off += i * a.stride[d]
	}
	return off
}

// At returns the element at the given multi-index. It panics if the number
// of indices does not match the rank or an index is out of range.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.offset(idx)]
}

// Set stores v at the given multi-index. It panics if the number of indices
// does not match the rank or an index is out of range.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.offset(idx)] = v
}

// Vector returns a copy of a rank-1 array as a plain slice.
func (a *Array) Vector() ([]float64, error) {
	if a.Rank() != 1 {
		return nil, fmt.Errorf("vector: rank %d: %w", a.Rank(), ErrShapeMismatch)
	}
	return a.vector(), nil
}

// Grid returns a copy of a rank-2 array as a nested [row][col] grid.
func (a *Array) Grid() ([][]float64, error) {
	if a.Rank() != 2 {
		return nil, fmt.Errorf("grid: rank %d: %w", a.Rank(), ErrShapeMismatch)
	}
	return a.grid(), nil
}

// Volume returns a copy of a rank-3 array as a nested [row][col][depth]
// volume.
func (a *Array) Volume() ([][][]float64, error) {
	if a.Rank() != 3 {
		return nil, fmt.Errorf("volume: rank %d: %w", a.Rank(), ErrShapeMismatch)
	}
	return a.volume(), nil
}

func (a *Array) vector() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

func (a *Array) grid() [][]float64 {
	h, w := a.shape[0], a.shape[1]
	out := make([][]float64, h)
	for y := 0; y < h; y++ {
		row := make([]float64, w)
		copy(row, a.data[y*w:(y+1)*w])
		out[y] = row
	}
	return out
}

func (a *Array) volume() [][][]float64 {
	h, w, d := a.shape[0], a.shape[1], a.shape[2]
	out := make([][][]float64, h)
	for y := 0; y < h; y++ {
		row := make([][]float64, w)
		for x := 0; x < w; x++ {
			cell := make([]float64, d)
			base := (y*w + x) * d
			copy(cell, a.data[base:base+d])
			row[x] = cell
		}
		out[y] = row
	}
	return out
}

// depthSlices reorders a rank-3 array into depth-major [depth][row][col]
// slices.
func (a *Array) depthSlices() [][][]float64 {
	h, w, d := a.shape[0], a.shape[1], a.shape[2]
	out := make([][][]float64, d)
	for k := 0; k < d; k++ {
		slice := make([][]float64, h)
		for y := 0; y < h; y++ {
			row := make([]float64, w)
			for x := 0; x < w; x++ {
				row[x] = a.data[(y*w+x)*d+k]
			}
			slice[y] = row
		}
		out[k] = slice
	}
	return out
}
