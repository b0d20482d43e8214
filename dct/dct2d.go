package dct

import "fmt"

// Forward2D applies the 2D Type-II DCT to a rectangular grid indexed
// [row][col]. The grid need not be square; its dimensions determine the
// transform sizes. Returns a new grid of the same dimensions.
func Forward2D(g [][]float64, opts ...*Options) ([][]float64, error) {
	out, err := transform2D(g, Forward, opts)
	if err != nil {
		return nil, fmt.Errorf("forward 2d: %w", err)
	}
	return out, nil
}

// Inverse2D applies the 2D Type-III DCT (inverse of Forward2D) to a
// rectangular grid indexed [row][col]. Returns a new grid of the same
// dimensions.
func Inverse2D(g [][]float64, opts ...*Options) ([][]float64, error) {
	out, err := transform2D(g, Inverse, opts)
	if err != nil {
		return nil, fmt.Errorf("inverse 2d: %w", err)
	}
	return out, nil
}

func transform2D(g [][]float64, dir Direction, opts []*Options) ([][]float64, error) {
	a, err := FromGrid(g)
	if err != nil {
		return nil, err
	}
	out, err := Transform(a, dir, opts...)
	if err != nil {
		return nil, err
	}
	return out.grid(), nil
}
