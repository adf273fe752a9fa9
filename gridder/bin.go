package gridder

import (
	"fmt"

	"github.com/sabourke/difmap-sub005/internal/fft"
	"github.com/sabourke/difmap-sub005/obs"
)

// UVBin clears the grid's uniform-weighting bin matrix and populates it
// with per-bin visibility counts for vis. It is a no-op (the grid ends up
// zeroed) when uniform weighting is not selected.
//
// Returns the same discard accounting Build would compute, so callers can
// report uv-range/undersampling rejection percentages even when only
// binning (not yet gridding) has run.
func (g *Gridder) UVBin(vis []obs.Visibility) (Report, error) {
	g.grid.ClearBins()

	kept, rep, err := g.collect(vis)
	if err != nil {
		return rep, fmt.Errorf("gridder: UVBin: %w", err)
	}
	if g.opts.UniformBinWidth <= 0 {
		return rep, nil
	}

	utopix := 1 / (g.grid.Uinc * g.opts.UniformBinWidth)
	vtopix := 1 / (g.grid.Vinc * g.opts.UniformBinWidth)
	nu, nv := g.grid.Nx/4, g.grid.Ny/2

	binned := 0
	for _, v := range kept {
		bu := fft.RoundHalfAway(v.U * utopix)
		bv := fft.RoundHalfAway(v.V*vtopix) + nv/2
		if bu < 0 || bu >= nu || bv < 0 || bv >= nv {
			rep.DiscardedUndersampled++
			continue
		}
		g.incrementBin(bu, bv, nu)
		if bu == 0 {
			mirrorBv := nv - 1 - bv
			if mirrorBv != bv {
				g.incrementBin(bu, mirrorBv, nu)
			}
		}
		binned++
	}
	rep.finalizePercentages()
	return rep, nil
}

func (g *Gridder) incrementBin(bu, bv, nu int) {
	g.grid.Bins[bv*nu+bu]++
}

// binCountAt returns the uniform-weighting bin count visibility v falls
// into, or 0 if it falls outside the bin matrix (the caller then skips
// the sample).
func (g *Gridder) binCountAt(v obs.Visibility) int {
	if g.opts.UniformBinWidth <= 0 {
		return 0
	}
	utopix := 1 / (g.grid.Uinc * g.opts.UniformBinWidth)
	vtopix := 1 / (g.grid.Vinc * g.opts.UniformBinWidth)
	nu, nv := g.grid.Nx/4, g.grid.Ny/2
	bu := fft.RoundHalfAway(v.U * utopix)
	bv := fft.RoundHalfAway(v.V*vtopix) + nv/2
	if bu < 0 || bu >= nu || bv < 0 || bv >= nv {
		return 0
	}
	return g.grid.Bins[bv*nu+bu]
}
