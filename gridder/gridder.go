package gridder

import (
	"fmt"
	"math"

	"github.com/sabourke/difmap-sub005/internal/fft"
	"github.com/sabourke/difmap-sub005/mapbeam"
	"github.com/sabourke/difmap-sub005/obs"
)

// nmask is the Nyquist safety margin, in grid pixels, kept clear of the
// edge of the UV grid and the half-width of the gridding convolution
// function's footprint.
const nmask = 2

// gcfHalfWidthPixels and gcfHWHMPixels parameterize the Gaussian gridding
// convolution function: it is sampled out to nmask+0.5 target pixels and has
// a half-width at half-maximum of 0.7 target pixels.
const (
	gcfHalfWidthPixels = float64(nmask) + 0.5
	gcfHWHMPixels      = 0.7
	ngcf               = 301
)

// Gridder builds a dirty map and/or dirty beam into a mapbeam.Grid from
// selected visibility data.
type Gridder struct {
	grid *mapbeam.Grid
	plan *fft.Plan2D
	opts Options

	gcfSigma float64 // Gaussian sigma, in target pixels, derived from the HWHM
}

// New builds a Gridder targeting g, applying opts.
func New(g *mapbeam.Grid, opts ...Option) (*Gridder, error) {
	plan, err := fft.NewPlan2D(g.Nx, g.Ny)
	if err != nil {
		return nil, fmt.Errorf("gridder: New: %w", err)
	}
	return &Gridder{
		grid:     g,
		plan:     plan,
		opts:     Apply(opts...),
		gcfSigma: gcfHWHMPixels / math.Sqrt(2*math.Ln2),
	}, nil
}

// Report summarizes one Build call: how many visibilities were used or
// discarded, and (for the beam) the weighted moments used to estimate the
// clean-beam shape and map noise.
type Report struct {
	Total                 int
	DiscardedRange         int
	DiscardedUndersampled  int
	PercentDiscardedRange  float64
	PercentDiscardedBinned float64

	// Beam-only weighted moments, populated by BuildBeam.
	MuUU, MuVV, MuUV float64
	SumW             float64
	SumW2OverWt      float64

	EstBeamPA  float64
	EstBeamMin float64
	EstBeamMaj float64
	EstNoise   float64
}

func (r *Report) finalizePercentages() {
	if r.Total == 0 {
		return
	}
	r.PercentDiscardedRange = 100 * float64(r.DiscardedRange) / float64(r.Total)
	r.PercentDiscardedBinned = 100 * float64(r.DiscardedUndersampled) / float64(r.Total)
}

// gcfWeight evaluates the Gaussian gridding convolution function at an
// offset of dx target pixels from its center.
func (g *Gridder) gcfWeight(dx float64) float64 {
	return math.Exp(-0.5 * (dx / g.gcfSigma) * (dx / g.gcfSigma))
}

// collect gathers every usable visibility from vis, applying the
// observation-level uv-range filter and the Nyquist safety margin. It
// returns the in-range, in-limit visibilities alongside a Report already
// populated with the discard counts.
func (g *Gridder) collect(vis []obs.Visibility) ([]obs.Visibility, Report, error) {
	ulimit := g.grid.Uinc * (float64(g.grid.Nx)/4 - nmask)
	vlimit := g.grid.Vinc * (float64(g.grid.Ny)/4 - nmask)

	var rep Report
	kept := make([]obs.Visibility, 0, len(vis))
	for _, v := range vis {
		rep.Total++
		if !v.Usable(g.opts.UVMin, g.opts.UVMax) {
			rep.DiscardedRange++
			continue
		}
		if math.Abs(v.U) > ulimit || math.Abs(v.V) > vlimit {
			rep.DiscardedUndersampled++
			continue
		}
		kept = append(kept, v)
	}
	rep.finalizePercentages()
	if len(kept) == 0 {
		return nil, rep, fmt.Errorf("gridder: collect: %w", ErrNoData)
	}
	return kept, rep, nil
}
