package mapbeam

import (
	"fmt"
	"math"

	"github.com/sabourke/difmap-sub005/internal/vecmath"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a grid plane over the cleanable inner quarter.
type Stats struct {
	Mean, RMS float64
	Peak      float64 // signed value of largest |pixel|
	PeakIx    int
	PeakIy    int
}

// MapStats computes Stats over g.Map's cleanable inner quarter.
func (g *Grid) MapStats() (Stats, error) {
	return g.planeStats(g.Map)
}

// BeamStats computes Stats over g.Beam's cleanable inner quarter.
func (g *Grid) BeamStats() (Stats, error) {
	return g.planeStats(g.Beam)
}

// planeStats runs a two-pass reduction over the cleanable inner quarter of
// plane: a first pass collects the windowed pixels row by row, using
// vecmath.MaxAbs to test each row's largest magnitude against the running
// peak before falling back to a scalar scan of the winning row for its
// exact index and sign; a second pass computes mean and RMS from the
// collected values via gonum's stat package.
func (g *Grid) planeStats(plane []float64) (Stats, error) {
	stride := g.Stride()
	n := (g.IxMax - g.IxMin + 1) * (g.IyMax - g.IyMin + 1)
	if n <= 0 {
		return Stats{}, fmt.Errorf("mapbeam: planeStats: empty cleanable area")
	}

	values := make([]float64, 0, n)
	var peak float64
	peakIx, peakIy := g.IxMin, g.IyMin
	peakAbs := -1.0
	for iy := g.IyMin; iy <= g.IyMax; iy++ {
		base := iy * stride
		row := plane[base+g.IxMin : base+g.IxMax+1]
		values = append(values, row...)

		if vecmath.MaxAbs(row) <= peakAbs {
			continue
		}
		for ix := g.IxMin; ix <= g.IxMax; ix++ {
			v := plane[base+ix]
			if a := math.Abs(v); a > peakAbs {
				peakAbs = a
				peak = v
				peakIx, peakIy = ix, iy
			}
		}
	}

	mean := stat.Mean(values, nil)
	rms := stat.StdDev(values, nil)

	return Stats{
		Mean:   mean,
		RMS:    rms,
		Peak:   peak,
		PeakIx: peakIx,
		PeakIy: peakIy,
	}, nil
}
