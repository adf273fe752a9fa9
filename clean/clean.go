package clean

import (
	"fmt"
	"math"

	"github.com/sabourke/difmap-sub005/diagnostics"
	"github.com/sabourke/difmap-sub005/internal/geom"
	"github.com/sabourke/difmap-sub005/internal/vecmath"
	"github.com/sabourke/difmap-sub005/mapbeam"
	"github.com/sabourke/difmap-sub005/obs"
)

// StopReason names why a Clean run ended.
type StopReason int

const (
	// StopMaxComponents means the iteration limit was reached.
	StopMaxComponents StopReason = iota
	// StopCutoff means the peak residual fell to or below Options.Cutoff.
	StopCutoff
	// StopNegative means a negative peak was found while MaxComponents
	// was negative, requesting stop-on-first-negative.
	StopNegative
)

func (r StopReason) String() string {
	switch r {
	case StopCutoff:
		return "cutoff"
	case StopNegative:
		return "negative peak"
	default:
		return "max components"
	}
}

// Report summarizes one Clean run.
type Report struct {
	Components int
	TotalFlux  float64
	Stop       StopReason

	ResidualMean float64
	ResidualRMS  float64
	ResidualPeak float64
}

// searchRange is one window converted to an inclusive pixel-index box.
type searchRange struct {
	xa, xb, ya, yb int
}

// Clean repeatedly finds the strongest residual peak within opts.Windows
// (or the grid's whole cleanable area, if no windows are given), subtracts
// a loop-gain-scaled, beam-shaped copy of it from g.Map, and appends a
// delta component to model, until a stopping condition is met. It reports
// progress through sink every 50 components.
func Clean(g *mapbeam.Grid, model *obs.Model, opts Options, sink diagnostics.Sink) (Report, error) {
	if sink == nil {
		sink = diagnostics.Discard
	}
	if !(opts.Gain > 0) || opts.Gain > 1 {
		return Report{}, fmt.Errorf("clean: Clean: gain=%v: %w", opts.Gain, ErrInvalidGain)
	}

	stride := g.Stride()
	bmax := mapbeam.At(g.Beam, stride, g.PeakIx(), g.PeakIy())
	if bmax == 0 {
		return Report{}, ErrBeamZero
	}

	ranges, err := searchRanges(g, opts.Windows)
	if err != nil {
		return Report{}, fmt.Errorf("clean: Clean: %w", err)
	}

	maxIter := opts.MaxComponents
	stopOnNegative := maxIter < 0
	if stopOnNegative {
		maxIter = -maxIter
	}

	rep := Report{}
	iter := 0
	for ; iter < maxIter; iter++ {
		peakIx, peakIy, peakVal, found := searchPeak(g.Map, stride, ranges)
		if !found {
			rep.Stop = StopCutoff
			break
		}

		peakJy := peakVal / bmax
		if math.Abs(peakJy) <= opts.Cutoff {
			rep.Stop = StopCutoff
			break
		}
		if stopOnNegative && peakJy < 0 {
			rep.Stop = StopNegative
			break
		}

		component := opts.Gain * peakVal
		subtractBeam(g, peakIx, peakIy, component)

		x := float64(peakIx-g.PeakIx()) * g.Xinc
		y := float64(peakIy-g.PeakIy()) * g.Yinc
		model.Add(obs.Component{
			Kind: obs.Delta,
			X:    x,
			Y:    y,
			Flux: opts.Gain * peakJy,
			Free: true,
		})

		rep.Components++
		rep.TotalFlux += opts.Gain * peakJy

		if (iter+1)%50 == 0 {
			sink.Infof("clean: %d components, %.4g Jy total, peak %.4g Jy/beam", rep.Components, rep.TotalFlux, peakJy)
		}
	}
	// rep.Stop's zero value is StopMaxComponents, the correct reason when
	// the loop above ran to completion without an earlier break.

	if opts.Compress {
		model.Compress()
	}

	stats, err := g.MapStats()
	if err != nil {
		return rep, fmt.Errorf("clean: Clean: %w", err)
	}
	rep.ResidualMean = stats.Mean
	rep.ResidualRMS = stats.RMS
	rep.ResidualPeak = stats.Peak

	return rep, nil
}

// searchRanges converts windows into pixel-index boxes clipped to the
// grid's cleanable area. An empty window list searches the whole area.
func searchRanges(g *mapbeam.Grid, windows []geom.Window) ([]searchRange, error) {
	if len(windows) == 0 {
		return []searchRange{{xa: g.IxMin, xb: g.IxMax, ya: g.IyMin, yb: g.IyMax}}, nil
	}

	ranges := make([]searchRange, 0, len(windows))
	for _, w := range windows {
		xa, xb, ya, yb, ok := geom.PixelRange(w, g.IxMin, g.IxMax, g.IyMin, g.IyMax, g.PeakIx(), g.PeakIy(), g.Xinc, g.Yinc)
		if !ok {
			continue
		}
		ranges = append(ranges, searchRange{xa: xa, xb: xb, ya: ya, yb: yb})
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("clean: no window overlaps the cleanable area")
	}
	return ranges, nil
}

// searchPeak finds the pixel of largest absolute value across ranges.
func searchPeak(plane []float64, stride int, ranges []searchRange) (ix, iy int, val float64, found bool) {
	best := -1.0
	for _, r := range ranges {
		for y := r.ya; y <= r.yb; y++ {
			base := y * stride
			for x := r.xa; x <= r.xb; x++ {
				v := plane[base+x]
				if a := math.Abs(v); a > best {
					best = a
					val = v
					ix, iy = x, y
					found = true
				}
			}
		}
	}
	return
}

// subtractBeam subtracts component*beam, centered at (peakIx, peakIy),
// from g.Map. The beam's own center sits at (g.PeakIx(), g.PeakIy()), so
// the overlay is shifted by that offset; pixels whose shifted beam index
// falls outside the grid are skipped.
func subtractBeam(g *mapbeam.Grid, peakIx, peakIy int, component float64) {
	stride := g.Stride()
	bcx, bcy := g.PeakIx(), g.PeakIy()

	for by := 0; by < g.Ny; by++ {
		my := peakIy + (by - bcy)
		if my < 0 || my >= g.Ny {
			continue
		}
		beamBase := by * stride
		mapBase := my * stride

		rowStart, rowEnd := -1, -1
		for bx := 0; bx < g.Nx; bx++ {
			mx := peakIx + (bx - bcx)
			if mx < 0 || mx >= g.Nx {
				if rowStart >= 0 {
					subtractRow(g, mapBase, beamBase, rowStart, rowEnd, peakIx-bcx, component)
					rowStart, rowEnd = -1, -1
				}
				continue
			}
			if rowStart < 0 {
				rowStart = bx
			}
			rowEnd = bx
		}
		if rowStart >= 0 {
			subtractRow(g, mapBase, beamBase, rowStart, rowEnd, peakIx-bcx, component)
		}
	}
}

// subtractRow subtracts component*beam[beamBase+bx] from
// g.Map[mapBase+bx+offset] for bx in [rowStart,rowEnd], using a vectorized
// block when the whole run lies within bounds and a pixel-by-pixel scalar
// fallback is unnecessary (the caller has already clipped to valid bx).
func subtractRow(g *mapbeam.Grid, mapBase, beamBase, rowStart, rowEnd, offset int, component float64) {
	n := rowEnd - rowStart + 1
	beamSlice := g.Beam[beamBase+rowStart : beamBase+rowStart+n]
	mapSlice := g.Map[mapBase+rowStart+offset : mapBase+rowStart+offset+n]

	scaled := make([]float64, n)
	vecmath.ScaleBlock(scaled, beamSlice, component)
	negate(scaled)
	vecmath.AddBlockInPlace(mapSlice, scaled)
}

func negate(a []float64) {
	for i := range a {
		a[i] = -a[i]
	}
}
