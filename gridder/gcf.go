package gridder

import "github.com/sabourke/difmap-sub005/internal/fft"

// UVGCF builds the Gaussian gridding convolution function and cosine-
// transforms it along each axis to fill the grid's reciprocal-FT arrays
// (Rxft, Ryft), normalized so each starts at 1.
func (g *Gridder) UVGCF() {
	samples := make([]float64, ngcf)
	for i := range samples {
		x := gcfHalfWidthPixels * float64(i) / float64(ngcf-1)
		samples[i] = g.gcfWeight(x)
	}

	fft.CosTran(samples, gcfHalfWidthPixels, g.grid.Rxft)
	fft.CosTran(samples, gcfHalfWidthPixels, g.grid.Ryft)

	normalize(g.grid.Rxft)
	normalize(g.grid.Ryft)
}

func normalize(a []float64) {
	if len(a) == 0 || a[0] == 0 {
		return
	}
	peak := a[0]
	for i := range a {
		a[i] /= peak
	}
}
