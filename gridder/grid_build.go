package gridder

import (
	"fmt"
	"math"

	"github.com/sabourke/difmap-sub005/internal/fft"
	"github.com/sabourke/difmap-sub005/internal/vecmath"
	"github.com/sabourke/difmap-sub005/obs"
)

// sampleWeight computes the per-sample weight for v: the product of an
// optional Gaussian taper, an optional radial (uv-distance) factor, an
// optional error-power factor, and an optional uniform-weighting bin
// reciprocal. It returns ok=false if uniform weighting is selected and v
// falls outside the bin matrix (no bin count to normalize by).
func (g *Gridder) sampleWeight(v obs.Visibility) (weight float64, ok bool) {
	weight = 1

	if g.opts.TaperValue > 0 {
		r2 := v.U*v.U + v.V*v.V
		weight *= math.Exp(math.Log(g.opts.TaperValue) * r2 / (g.opts.TaperRadius * g.opts.TaperRadius))
	}
	if g.opts.Radial {
		weight *= math.Hypot(v.U, v.V)
	}
	if g.opts.ErrPow < -0.001 {
		weight *= math.Pow(math.Abs(v.Wt), -g.opts.ErrPow/2)
	}
	if g.opts.UniformBinWidth > 0 {
		count := g.binCountAt(v)
		if count == 0 {
			return 0, false
		}
		weight /= float64(count)
	}
	return weight, true
}

// buildPlane convolves vis into plane (the grid's Map or Beam array) using
// the Gaussian gridding function, accumulating beam moments into rep when
// accumulateMoments is true. forBeam selects the (1,0) datum used for the
// dirty beam; otherwise each visibility's observed-minus-model residual is
// gridded.
func (g *Gridder) buildPlane(plane []float64, vis []obs.Visibility, forBeam, accumulateMoments bool, rep *Report) {
	nx, ny := g.grid.Nx, g.grid.Ny
	stride := g.grid.Stride()
	nc := nx/2 + 1
	uinc, vinc := g.grid.Uinc, g.grid.Vinc

	var weights, us, vs, sqOverWt []float64
	if accumulateMoments {
		weights = make([]float64, 0, len(vis))
		us = make([]float64, 0, len(vis))
		vs = make([]float64, 0, len(vis))
		sqOverWt = make([]float64, 0, len(vis))
	}

	for _, v := range vis {
		weight, ok := g.sampleWeight(v)
		if !ok {
			continue
		}

		var datum complex128
		if forBeam {
			datum = complex(1, 0)
		} else {
			datum = v.Residual()
		}

		if accumulateMoments {
			weights = append(weights, weight)
			us = append(us, v.U)
			vs = append(vs, v.V)
			if v.Wt > 0 {
				sqOverWt = append(sqOverWt, weight*weight/v.Wt)
			}
		}

		ucenter := v.U / uinc
		vcenter := v.V / vinc
		iu0 := fft.RoundHalfAway(ucenter)
		iv0 := fft.RoundHalfAway(vcenter)

		for di := -nmask; di <= nmask; di++ {
			dx := float64(di) - (ucenter - float64(iu0))
			kx := g.gcfWeight(dx)
			iu := iu0 + di

			for dj := -nmask; dj <= nmask; dj++ {
				dy := float64(dj) - (vcenter - float64(iv0))
				ky := g.gcfWeight(dy)

				iuStore, ivStore, conjugate, inRange := fold(iu, iv0+dj, nc, ny)
				if !inRange {
					continue
				}

				val := datum * complex(weight*kx*ky, 0)
				if conjugate {
					val = complex(real(val), -imag(val))
				}
				base := ivStore*stride + 2*iuStore
				plane[base] += real(val)
				plane[base+1] += imag(val)
			}
		}
	}

	if accumulateMoments {
		accumulateBeamMoments(rep, weights, us, vs, sqOverWt)
	}
}

// accumulateBeamMoments reduces the per-visibility weight/u/v samples
// collected by buildPlane into rep's weighted second moments, using
// vecmath's batch arithmetic in place of a per-sample scalar loop:
// weightedU = weight .* u (MulBlock), then each moment is a weighted dot
// product (DotProduct) normalized by the summed weight (Sum).
func accumulateBeamMoments(rep *Report, weights, us, vs, sqOverWt []float64) {
	rep.SumW = vecmath.Sum(weights)
	rep.SumW2OverWt = vecmath.Sum(sqOverWt)
	if rep.SumW <= 0 {
		return
	}

	weightedU := make([]float64, len(weights))
	weightedV := make([]float64, len(weights))
	vecmath.MulBlock(weightedU, weights, us)
	vecmath.MulBlock(weightedV, weights, vs)

	rep.MuUU = vecmath.DotProduct(weightedU, us) / rep.SumW
	rep.MuVV = vecmath.DotProduct(weightedV, vs) / rep.SumW
	rep.MuUV = vecmath.DotProduct(weightedU, vs) / rep.SumW
}

// fold maps a raw (possibly out-of-range or negative-u) grid index to its
// storage location in the half-complex grid: negative-u columns are
// reflected into the stored non-negative half with their imaginary part
// conjugated (Hermitian symmetry), and v wraps modulo Ny to match the FFT
// bin order internal/fft.Plan2D produces.
func fold(iu, iv, nc, ny int) (iuStore, ivStore int, conjugate, inRange bool) {
	if iu < 0 {
		iu = -iu
		iv = -iv
		conjugate = true
	}
	if iu >= nc {
		return 0, 0, false, false
	}
	iv = ((iv % ny) + ny) % ny
	return iu, iv, conjugate, true
}

// BuildBeam grids the dirty beam (a unit datum at every usable visibility's
// location) into the grid's Beam array, accumulating the weighted moments
// used to estimate the clean-beam shape and map noise.
func (g *Gridder) BuildBeam(vis []obs.Visibility) (Report, error) {
	g.grid.ClearBeam()
	kept, rep, err := g.collect(vis)
	if err != nil {
		return rep, fmt.Errorf("gridder: BuildBeam: %w", err)
	}

	g.UVGCF()
	g.buildPlane(g.grid.Beam, kept, true, true, &rep)

	if rep.SumW <= 0 {
		return rep, fmt.Errorf("gridder: BuildBeam: %w", ErrNoData)
	}
	vecmath.ScaleBlockInPlace(g.grid.Beam, 1/(2*rep.SumW))

	rep.EstBeamPA = -0.5 * math.Atan2(2*rep.MuUV, rep.MuUU-rep.MuVV)
	trace := rep.MuUU + rep.MuVV
	disc := math.Sqrt(math.Max(0, (rep.MuUU-rep.MuVV)*(rep.MuUU-rep.MuVV)+4*rep.MuUV*rep.MuUV))
	lambdaMax := (trace + disc) / 2
	lambdaMin := (trace - disc) / 2
	const beamFudge = 0.7
	if lambdaMin > 0 {
		rep.EstBeamMaj = beamFudge / math.Sqrt(lambdaMin)
	}
	if lambdaMax > 0 {
		rep.EstBeamMin = beamFudge / math.Sqrt(lambdaMax)
	}
	if rep.SumW > 0 {
		rep.EstNoise = math.Sqrt(rep.SumW2OverWt) / rep.SumW
	}

	return rep, nil
}

// BuildMap grids the dirty map (each usable visibility's observed-minus-
// model residual) into the grid's Map array, normalized by the same weight
// sum convention as BuildBeam.
func (g *Gridder) BuildMap(vis []obs.Visibility) (Report, error) {
	g.grid.ClearMap()
	kept, rep, err := g.collect(vis)
	if err != nil {
		return rep, fmt.Errorf("gridder: BuildMap: %w", err)
	}

	sumW := 0.0
	for _, v := range kept {
		w, ok := g.sampleWeight(v)
		if ok {
			sumW += w
		}
	}
	if sumW <= 0 {
		return rep, fmt.Errorf("gridder: BuildMap: %w", ErrNoData)
	}

	g.buildPlane(g.grid.Map, kept, false, false, &rep)
	vecmath.ScaleBlockInPlace(g.grid.Map, 1/(2*sumW))
	return rep, nil
}
