package gridder

import (
	"fmt"

	"github.com/sabourke/difmap-sub005/internal/fft"
)

// UVTrans applies the half-complex shift-theorem permutation to plane (the
// grid's Map or Beam array), inverse-transforms it with rescale=false, and
// multiplies each resulting image pixel by Rxft[ix]·Ryft[iy] to deconvolve
// the gridding function.
func (g *Gridder) UVTrans(plane []float64) error {
	fft.ConjShift(g.grid.Nx, g.grid.Ny, plane)

	if err := g.plan.Inverse(plane, false); err != nil {
		return fmt.Errorf("gridder: UVTrans: %w", err)
	}

	stride := g.grid.Stride()
	for iy := 0; iy < g.grid.Ny; iy++ {
		ry := g.grid.Ryft[iy]
		base := iy * stride
		for ix := 0; ix < g.grid.Nx; ix++ {
			plane[base+ix] *= g.grid.Rxft[ix] * ry
		}
	}
	return nil
}
