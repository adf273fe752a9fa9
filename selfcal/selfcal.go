package selfcal

import (
	"fmt"

	"github.com/sabourke/difmap-sub005/diagnostics"
	"github.com/sabourke/difmap-sub005/obs"
)

// Report summarizes one Selfcal run.
type Report struct {
	Bins           int
	Iterations     []int
	ResidualBefore float64
	ResidualAfter  float64
	Rejected       int     // corrections replaced by a neutral value
	NormFactor     float64 // geometric mean amplitude correction divided out
}

// Selfcal solves for, smooths, and applies per-antenna complex gain
// corrections across sub, binning its integrations by
// opts.SolutionInterval (or opts.SingleSolution), running a damped
// least-squares gain solve per bin, rejecting corrections that exceed
// opts.MaxAmpRatio/opts.MaxPhase, smoothing the accepted per-bin
// corrections across time with a Gaussian kernel, and finally correcting
// sub.Integrations[*].Vis in place. If !opts.Float, the resulting
// amplitude corrections are renormalized so the sub-array's overall flux
// scale is preserved.
func Selfcal(sub *obs.Subarray, opts Options, sink diagnostics.Sink) (Report, error) {
	if sink == nil {
		sink = diagnostics.Discard
	}
	nstat := len(sub.Stations)
	if nstat < 2 {
		return Report{}, ErrTooFewStations
	}
	if opts.LoopGain <= 0 || opts.LoopGain > 1 {
		opts.LoopGain = DefaultOptions().LoopGain
	}

	bins := buildBins(sub, opts.SolutionInterval, opts.SingleSolution)
	if len(bins) == 0 {
		return Report{}, fmt.Errorf("selfcal: Selfcal: %w", ErrNoUsableData)
	}

	gaufac := gaussianTaperFactor(opts)

	rep := Report{Bins: len(bins), Iterations: make([]int, len(bins))}
	binCors := make([][]obs.AntennaCorrection, len(bins))
	var anyUsable bool

	for bi, b := range bins {
		usable := usableBaselines(sub, b, opts.MinStations)
		m := newRatioMatrix(nstat)
		for ut := b.first; ut <= b.last; ut++ {
			accumulateRatios(m, sub, sub.Integrations[ut], usable, gaufac)
		}

		gain := make([]complex128, nstat)
		for i := range gain {
			gain[i] = 1
		}
		before := residual(m, gain)
		final, iters := solveGain(sub, m, gain, opts)
		rep.Iterations[bi] = iters
		rep.ResidualBefore += before
		rep.ResidualAfter += final

		cors := buildCorrections(m, gain, opts)
		for _, c := range cors {
			if c.State == obs.Calibrated {
				anyUsable = true
			}
			if c.State == obs.Flagged {
				rep.Rejected++
			}
		}
		binCors[bi] = cors

		sink.Infof("selfcal: bin %d/%d (%d integrations): residual %.4g -> %.4g in %d iterations",
			bi+1, len(bins), b.last-b.first+1, before, final, iters)
	}

	if !anyUsable {
		return rep, fmt.Errorf("selfcal: Selfcal: %w", ErrNoUsableData)
	}

	if !opts.Float {
		rep.NormFactor = normalizeAcrossBins(binCors)
	} else {
		rep.NormFactor = 1
	}

	sigma := solutionSigma(opts.SolutionInterval)
	for ut, integ := range sub.Integrations {
		cors := binCors[binIndexFor(bins, ut)]
		if len(bins) > 1 && sigma > 0 {
			cors = interpolateCorrections(bins, sub, binCors, integ.UT, sigma, nstat)
		}
		applyCorrections(sub, &sub.Integrations[ut], cors, opts.DoAmp, opts.DoPhase)
	}

	rep.ResidualBefore /= float64(len(bins))
	rep.ResidualAfter /= float64(len(bins))
	return rep, nil
}

// binIndexFor returns the index of the bin integration index ut falls in.
func binIndexFor(bins []bin, ut int) int {
	for i, b := range bins {
		if ut >= b.first && ut <= b.last {
			return i
		}
	}
	return len(bins) - 1
}

// normalizeAcrossBins rescales every bin's calibrated amplitude
// corrections by one shared geometric mean taken over all bins
// combined, preserving the sub-array's overall flux scale while leaving
// the relative, time-varying shape of the solution untouched.
func normalizeAcrossBins(binCors [][]obs.AntennaCorrection) float64 {
	var flat []obs.AntennaCorrection
	for _, cors := range binCors {
		flat = append(flat, cors...)
	}
	mean := normalizeCorrections(flat)

	i := 0
	for _, cors := range binCors {
		for j := range cors {
			cors[j] = flat[i]
			i++
		}
	}
	return mean
}

// usableBaselines reports, per baseline, whether it has at least one
// usable, model-predicted visibility anywhere within bin b. If fewer than
// minStations distinct stations have such data in the bin, every baseline
// of the bin is reported unusable. Closure-array pruning (count_tel's
// iterative removal of stations left with a single usable baseline) is
// not reproduced.
func usableBaselines(sub *obs.Subarray, b bin, minStations int) []bool {
	usable := make([]bool, len(sub.Baselines))
	seen := make(map[int]bool)
	for ut := b.first; ut <= b.last; ut++ {
		vis := sub.Integrations[ut].Vis
		for i, v := range vis {
			if i >= len(usable) {
				break
			}
			if v.Usable(0, 0) && v.ModAmp != 0 {
				usable[i] = true
				seen[sub.Baselines[i].TelA] = true
				seen[sub.Baselines[i].TelB] = true
			}
		}
	}
	if len(seen) < minStations {
		for i := range usable {
			usable[i] = false
		}
	}
	return usable
}
