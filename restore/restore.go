package restore

import (
	"fmt"
	"math"

	"github.com/sabourke/difmap-sub005/internal/vecmath"
	"github.com/sabourke/difmap-sub005/mapbeam"
	"github.com/sabourke/difmap-sub005/obs"
)

// Report summarizes one Restore run.
type Report struct {
	Components int
	mapbeam.Stats
}

// Restore convolves model's components with the restoring beam described
// by opts and adds (or, with WithSubtract, subtracts) the result into
// g.Map in place. Delta components are convolved with the beam itself;
// gaussian components are first convolved with the beam via the Wild
// (1970) closed form, and their peak flux rescaled to preserve total
// component flux under the resulting (generally broader) gaussian. Any
// other component kind fails the run with ErrUnsupportedComponent.
func Restore(g *mapbeam.Grid, model obs.Model, opts Options) (Report, error) {
	bmaj, bmin, pa := opts.Bmaj, opts.Bmin, opts.PA
	if bmin > bmaj {
		bmaj, bmin = bmin, bmaj
	}
	beam := gaussianShape{Major: bmaj, Minor: bmin, PA: pa}

	stride := g.Stride()
	if opts.NoResidual {
		for iy := 0; iy < g.Ny; iy++ {
			for ix := 0; ix < g.Nx; ix++ {
				mapbeam.Set(g.Map, stride, ix, iy, 0)
			}
		}
	} else if opts.Smooth {
		smoothResidual(g.Map, stride, g.IxMin, g.IxMax, g.IyMin, g.IyMax)
	}

	for _, cmp := range model.Components {
		var shape gaussianShape
		switch cmp.Kind {
		case obs.Delta:
			shape = beam
		case obs.Gaussian:
			shape = convolveGaussians(beam, gaussianShape{
				Major: cmp.Major,
				Minor: cmp.Ratio * cmp.Major,
				PA:    cmp.Phi,
			})
		default:
			return Report{}, fmt.Errorf("restore: Restore: component kind %v: %w", cmp.Kind, ErrUnsupportedComponent)
		}

		flux := cmp.Flux * bmaj * bmin / (shape.Major * shape.Minor)
		if cmp.SpecIndex != 0 && cmp.Freq0 != 0 && opts.Freq != 0 {
			flux *= math.Pow(opts.Freq/cmp.Freq0, cmp.SpecIndex)
		}

		addComponent(g, cmp.X, cmp.Y, flux, shape, opts.Subtract)
	}

	stats, err := g.MapStats()
	if err != nil {
		return Report{}, fmt.Errorf("restore: Restore: %w", err)
	}
	return Report{Components: len(model.Components), Stats: stats}, nil
}

// addComponent adds (or subtracts) one gaussian of the given peak flux and
// shape, centered at (x, y) radians from the map center, into g.Map.
func addComponent(g *mapbeam.Grid, x, y, flux float64, shape gaussianShape, subtract bool) {
	sigmaMinor := shape.Minor * fwhmToSigma
	sigmaMajor := shape.Major * fwhmToSigma
	minFac := 0.5 / (sigmaMinor * sigmaMinor)
	majFac := 0.5 / (sigmaMajor * sigmaMajor)

	xMinor := g.Xinc * math.Cos(shape.PA)
	yMinor := -g.Yinc * math.Sin(shape.PA)
	xMajor := g.Xinc * math.Sin(shape.PA)
	yMajor := g.Yinc * math.Cos(shape.PA)

	modX := float64(g.PeakIx()) + x/g.Xinc
	modY := float64(g.PeakIy()) + y/g.Yinc
	imodX := int(math.Round(modX))
	imodY := int(math.Round(modY))

	nxPix := int(nsigma * sigmaMajor / g.Xinc)
	nyPix := int(nsigma * sigmaMajor / g.Yinc)

	xa, xb := clampRange(imodX-nxPix, imodX+nxPix, g.Nx-1)
	ya, yb := clampRange(imodY-nyPix, imodY+nyPix, g.Ny-1)

	stride := g.Stride()
	sign := flux
	if subtract {
		sign = -flux
	}

	n := xb - xa + 1
	if n <= 0 {
		return
	}
	row := make([]float64, n)

	for iy := ya; iy <= yb; iy++ {
		fy := modY - float64(iy)
		base := iy * stride
		for i, ix := 0, xa; ix <= xb; i, ix = i+1, ix+1 {
			fx := modX - float64(ix)
			minor := xMinor*fx + yMinor*fy
			major := xMajor*fx + yMajor*fy
			arg := minFac*minor*minor + majFac*major*major
			row[i] = tabulatedGaussian(arg)
		}
		vecmath.ScaleBlockInPlace(row, sign)
		vecmath.AddBlockInPlace(g.Map[base+xa:base+xa+n], row)
	}
}

// clampRange clips [lo,hi] to [0,max], returning an empty (lo>hi) range
// if the interval falls entirely outside.
func clampRange(lo, hi, max int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > max {
		hi = max
	}
	return lo, hi
}
