package fft

import "math"

// CosTran computes a one-dimensional cosine transform of a pseudo-continuous
// half-function. in holds ninp samples spanning inwid grid cells of the
// output's fundamental period; out receives len(out) samples of the
// transformed, symmetric function, with the first half mirrored into the
// second half.
//
// This is used to deconvolve the gridding convolution function from the
// uv-plane transfer function (rxft/ryft), a one-dimensional problem since
// the convolution function is separable in x and y.
func CosTran(in []float64, inwid float64, out []float64) {
	nout := len(out)
	if nout == 0 {
		return
	}
	half := nout/2 + 1
	if half > nout {
		half = nout
	}
	for j := 0; j < half; j++ {
		angleStep := math.Pi * float64(j) / inwid
		sum := 0.0
		for i, v := range in {
			sum += v * math.Cos(angleStep*float64(i))
		}
		out[j] = sum
	}
	for j := half; j < nout; j++ {
		out[j] = out[nout-j]
	}
}
