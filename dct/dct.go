package dct

import (
	"fmt"
	"math"
)

// forward1D applies the 1D Type-II DCT (orthonormal) to src, writing the
// coefficients to dst. len(dst) must equal len(src) and the slices must not
// alias.
func forward1D(dst, src []float64) {
	n := len(src)
	scale0 := math.Sqrt(1.0 / float64(n))
	scaleK := math.Sqrt(2.0 / float64(n))
	for k := 0; k < n; k++ {
		scale := scaleK
		if k == 0 {
			scale = scale0
		}
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += src[i] * math.Cos(math.Pi*float64(k)*float64(2*i+1)/(2.0*float64(n)))
		}
		dst[k] = scale * sum
	}
}

// inverse1D applies the 1D Type-III DCT (inverse of Type-II, orthonormal) to
// src, writing the samples to dst. len(dst) must equal len(src) and the
// slices must not alias.
func inverse1D(dst, src []float64) {
	n := len(src)
	scale0 := math.Sqrt(1.0 / float64(n))
	scaleK := math.Sqrt(2.0 / float64(n))
	for i := 0; i < n; i++ {
		sum := scale0 * src[0]
		for k := 1; k < n; k++ {
			sum += scaleK * src[k] * math.Cos(math.Pi*float64(k)*float64(2*i+1)/(2.0*float64(n)))
		}
		dst[i] = sum
	}
}

// Forward1D applies the 1D Type-II DCT to x and returns the coefficient
// vector. The input is not modified.
func Forward1D(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("forward 1d: %w", ErrEmptyInput)
	}
	out := make([]float64, len(x))
	forward1D(out, x)
	return out, nil
}

// Inverse1D applies the 1D Type-III DCT (inverse of Forward1D) to X and
// returns the reconstructed samples. The input is not modified.
func Inverse1D(X []float64) ([]float64, error) {
	if len(X) == 0 {
		return nil, fmt.Errorf("inverse 1d: %w", ErrEmptyInput)
	}
	out := make([]float64, len(X))
	inverse1D(out, X)
	return out, nil
}
