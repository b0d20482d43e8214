// Package dct implements the Type-II Discrete Cosine Transform and its
// inverse (Type-III) over 1-, 2- and 3-dimensional arrays of float64
// samples.
//
// The 1D DCT-II formula (orthonormal, matching the scipy/numpy/cv2
// convention):
//
//	X[k] = scale(k) * sum_{i=0}^{N-1} x[i] * cos(pi * k * (2i+1) / (2N))
//	scale(0) = sqrt(1/N), scale(k>0) = sqrt(2/N)
//
// and the 1D DCT-III, its inverse under the same scaling:
//
//	x[i] = scale(0)*X[0] + sum_{k=1}^{N-1} scale(k) * X[k] * cos(pi * k * (2i+1) / (2N))
//
// The transform matrix is orthonormal, so inverse(forward(x)) reproduces x
// up to floating-point rounding and the coefficient vector carries the same
// energy as the input sequence.
//
// Multi-dimensional transforms are separable. The 2D transform applies the
// 1D transform to each row, then to each column of the intermediate result;
// the same rows-then-columns order is used in both directions (for an
// orthonormal separable transform the pass order only affects intermediate
// values, not the result). The 3D transform treats the third index as a
// stack of independent channels: the 2D transform runs on every depth
// slice, and the depth axis itself is never transformed.
//
// Forward3D and Inverse3D return their result depth-major — D stacked H×W
// slices indexed [d][h][w] for an [h][w][d] input. StackDepth restores
// [h][w][d] indexing.
//
// Every operation is a pure function: inputs are validated up front
// (ErrEmptyInput, ErrNonRectangular), never mutated, and results are always
// freshly allocated. The kernels are direct O(N²) summations with no
// truncation, windowing or padding. This is a reference implementation; for
// large inputs an FFT-based DCT is orders of magnitude faster.
package dct
