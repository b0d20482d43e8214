package dct

import "fmt"

// Forward3D applies the 2D Type-II DCT to every depth slice of a volume
// indexed [row][col][depth]. The depth axis is treated as a stack of
// independent channels and is not transformed. The result is returned
// depth-major: len(v[0][0]) coefficient grids indexed [depth][row][col].
// Use StackDepth to restore [row][col][depth] indexing.
func Forward3D(v [][][]float64, opts ...*Options) ([][][]float64, error) {
	out, err := transform3D(v, Forward, opts)
	if err != nil {
		return nil, fmt.Errorf("forward 3d: %w", err)
	}
	return out, nil
}

// Inverse3D applies the 2D Type-III DCT to every depth slice of a volume
// indexed [row][col][depth]. Like Forward3D it returns the result
// depth-major, indexed [depth][row][col]. To round-trip a volume through
// Forward3D, restack the coefficients first: StackDepth(Forward3D(v)) is
// the coefficient volume in input layout, and
// StackDepth(Inverse3D(StackDepth(Forward3D(v)))) reproduces v.
func Inverse3D(v [][][]float64, opts ...*Options) ([][][]float64, error) {
	out, err := transform3D(v, Inverse, opts)
	if err != nil {
		return nil, fmt.Errorf("inverse 3d: %w", err)
	}
	return out, nil
}

func transform3D(v [][][]float64, dir Direction, opts []*Options) ([][][]float64, error) {
	a, err := FromVolume(v)
	if err != nil {
		return nil, err
	}
	out, err := Transform(a, dir, opts...)
	if err != nil {
		return nil, err
	}
	return out.depthSlices(), nil
}

// DepthSlices reorders a volume indexed [row][col][depth] into depth-major
// [depth][row][col] slices, the layout returned by Forward3D and Inverse3D.
func DepthSlices(v [][][]float64) ([][][]float64, error) {
	a, err := FromVolume(v)
	if err != nil {
		return nil, fmt.Errorf("depth slices: %w", err)
	}
	return a.depthSlices(), nil
}

// StackDepth is the inverse of DepthSlices: it restacks depth-major
// [depth][row][col] slices into a volume indexed [row][col][depth], the
// layout accepted by Forward3D and Inverse3D. It matches numpy's
// stack(slices, axis=2).
func StackDepth(slices [][][]float64) ([][][]float64, error) {
	d := len(slices)
	if d == 0 || len(slices[0]) == 0 || len(slices[0][0]) == 0 {
		return nil, fmt.Errorf("stack depth: %w", ErrEmptyInput)
	}
	h := len(slices[0])
	w := len(slices[0][0])
	for k, s := range slices {
		if len(s) != h {
			return nil, fmt.Errorf("stack depth: slice %d has %d rows, want %d: %w", k, len(s), h, ErrNonRectangular)
		}
		for y, row := range s {
			if len(row) != w {
				return nil, fmt.Errorf("stack depth: slice %d row %d has %d columns, want %d: %w", k, y, len(row), w, ErrNonRectangular)
			}
		}
	}
	out := make([][][]float64, h)
	for y := 0; y < h; y++ {
		row := make([][]float64, w)
		for x := 0; x < w; x++ {
			cell := make([]float64, d)
			for k := 0; k < d; k++ {
				cell[k] = slices[k][y][x]
			}
			row[x] = cell
		}
		out[y] = row
	}
	return out, nil
}
