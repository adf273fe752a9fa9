// Package fft implements the two-dimensional real/half-complex Fourier
// transform and its companion shift and cosine-transform kernels used by the
// gridder and inverse transformer.
//
// The radix-2 complex butterfly itself is delegated to
// github.com/MeKo-Christian/algo-fft's one-dimensional Plan; this package
// owns only the real/half-complex row packing, the shift-theorem sign flips,
// and the discrete cosine transform used to deconvolve the gridding
// function.
package fft
