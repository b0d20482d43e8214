package dct

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Direction selects between the forward (Type-II) and inverse (Type-III)
// transform.
type Direction int

const (
	// Forward applies the Type-II DCT.
	Forward Direction = iota
	// Inverse applies the Type-III DCT.
	Inverse
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// kernel returns the 1D transform for the direction.
func (d Direction) kernel() (func(dst, src []float64), error) {
	switch d {
	case Forward:
		return forward1D, nil
	case Inverse:
		return inverse1D, nil
	default:
		return nil, fmt.Errorf("unknown direction %d", int(d))
	}
}

// transformAxes returns the axis order of the full transform for a given
// rank: the only axis for rank 1, rows then columns for ranks 2 and 3. The
// depth axis of a rank-3 array is never transformed.
func transformAxes(rank int) []int {
	if rank == 1 {
		return []int{0}
	}
	return []int{1, 0}
}

// Transform applies the full separable transform to a in the given
// direction. Rank-1 arrays are transformed along their only axis; rank-2
// and rank-3 arrays along axis 1 (rows) and then axis 0 (columns). The
// depth axis of a rank-3 array is left untouched, so a volume transforms as
// a stack of independent depth channels.
//
// The input is not modified; the result is a new array of the same shape.
func Transform(a *Array, dir Direction, opts ...*Options) (*Array, error) {
	if a == nil || len(a.data) == 0 {
		return nil, fmt.Errorf("transform: %w", ErrEmptyInput)
	}
	set := settings(opts)
	src := a
	for _, ax := range transformAxes(a.Rank()) {
		dst := newArray(a.shape...)
		if err := axisPass(dst, src, ax, dir, set); err != nil {
			return nil, fmt.Errorf("transform: %w", err)
		}
		src = dst
	}
	return src, nil
}

// TransformAxis applies the 1D transform along a single axis of a, leaving
// every other axis untouched. The input is not modified; the result is a
// new array of the same shape.
func TransformAxis(a *Array, axis int, dir Direction, opts ...*Options) (*Array, error) {
	if a == nil || len(a.data) == 0 {
		return nil, fmt.Errorf("transform axis: %w", ErrEmptyInput)
	}
	if axis < 0 || axis >= a.Rank() {
		return nil, fmt.Errorf("transform axis: axis %d of rank-%d array: %w", axis, a.Rank(), ErrInvalidAxis)
	}
	out := newArray(a.shape...)
	if err := axisPass(out, a, axis, dir, settings(opts)); err != nil {
		return nil, fmt.Errorf("transform axis: %w", err)
	}
	return out, nil
}

// axisPass transforms every line of src along axis ax into dst. dst and src
// have the same shape and must not alias. The lines are independent, so
// with Workers > 1 they are split into contiguous chunks and transformed
// concurrently; each pass still completes before the next one starts.
func axisPass(dst, src *Array, ax int, dir Direction, set *Options) error {
	kern, err := dir.kernel()
	if err != nil {
		return err
	}
	n := src.shape[ax]
	lines := len(src.data) / n
	if set.Logger != nil {
		set.Logger.Debug("dct axis pass", "direction", dir.String(), "axis", ax, "lines", lines, "length", n)
	}
	if set.Workers < 2 || lines == 1 {
		transformLines(dst, src, ax, 0, lines, kern)
		return nil
	}
	var g errgroup.Group
	g.SetLimit(set.Workers)
	chunk := (lines + set.Workers - 1) / set.Workers
	for start := 0; start < lines; start += chunk {
		end := start + chunk
		if end > lines {
			end = lines
		}
		g.Go(func() error {
			transformLines(dst, src, ax, start, end, kern)
			return nil
		})
	}
	return g.Wait()
}

// transformLines runs the 1D kernel over the half-open line range [from, to)
// along axis ax. Line li starts at (li/stride)*n*stride + li%stride and its
// elements are stride apart.
func transformLines(dst, src *Array, ax, from, to int, kern func(dst, src []float64)) {
	n := src.shape[ax]
	step := src.stride[ax]
	var buf, res []float64
	if step != 1 {
		buf = make([]float64, n)
		res = make([]float64, n)
	}
	for li := from; li < to; li++ {
		base := (li/step)*n*step + li%step
		if step == 1 {
			// Lines along the last axis are contiguous: no gather needed.
			kern(dst.data[base:base+n], src.data[base:base+n])
			continue
		}
		for j := 0; j < n; j++ {
			buf[j] = src.data[base+j*step]
		}
		kern(res, buf)
		for j := 0; j < n; j++ {
			dst.data[base+j*step] = res[j]
		}
	}
}
