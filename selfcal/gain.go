package selfcal

import (
	"math"
	"math/cmplx"

	"github.com/sabourke/difmap-sub005/obs"
)

// weightedRatio is the weighted sum of observed/model visibility ratios
// accumulated for one ordered telescope pair, along with the summed
// weight that went into it.
type weightedRatio struct {
	sum    complex128
	weight float64
}

// ratioMatrix is the nstat-by-nstat matrix of weightedRatio sums that
// getgain solves against; ratioMatrix[a][b] and ratioMatrix[b][a] are
// complex conjugates of one another by construction.
type ratioMatrix [][]weightedRatio

func newRatioMatrix(nstat int) ratioMatrix {
	m := make(ratioMatrix, nstat)
	for i := range m {
		m[i] = make([]weightedRatio, nstat)
	}
	return m
}

// gaussianTaperFactor returns the negative exponent coefficient gaufac of
// the weight factor 1-exp(gaufac*r^2) that sum_ratios applies to
// down-weight short baselines, or 0 if no taper is configured.
func gaussianTaperFactor(opts Options) float64 {
	if opts.GaussianTaperValue <= 0 || opts.GaussianTaperValue >= 1 || opts.GaussianTaperRadius <= 0 {
		return 0
	}
	return math.Log(1-opts.GaussianTaperValue) / (opts.GaussianTaperRadius * opts.GaussianTaperRadius)
}

// accumulateRatios sums the weighted observed/model ratio of every usable
// visibility on every baseline of integration integ into m, including the
// conjugate baseline entry, per sum_ratios.
func accumulateRatios(m ratioMatrix, sub *obs.Subarray, integ obs.Integration, usable []bool, gaufac float64) {
	for base, v := range integ.Vis {
		if base >= len(sub.Baselines) || !usable[base] || !v.Usable(0, 0) || v.ModAmp == 0 {
			continue
		}
		bl := sub.Baselines[base]
		ita, itb := bl.TelA, bl.TelB

		wt := v.Wt * v.ModAmp * v.ModAmp
		if gaufac != 0 {
			wt *= 1 - math.Exp(gaufac*(v.U*v.U+v.V*v.V))
		}
		wt *= math.Abs(sub.Stations[ita].AntWt * sub.Stations[itb].AntWt)
		if wt <= 0 {
			continue
		}

		amp := wt * v.Amp / v.ModAmp
		phs := v.Phs - v.ModPhs
		sinv, cosv := math.Sincos(phs)
		ratio := complex(amp*cosv, amp*sinv)

		m[ita][itb].sum += ratio
		m[ita][itb].weight += wt
		m[itb][ita].sum += cmplx.Conj(ratio)
		m[itb][ita].weight += wt
	}
}

// residual computes slfdif: the weighted mean squared deviation of
// gain[a]*conj(gain[b]) from m[a][b].sum, over every ordered pair.
func residual(m ratioMatrix, gain []complex128) float64 {
	var sumResid, sumWeight float64
	for a, row := range m {
		for b, cell := range row {
			if cell.weight <= 0 {
				continue
			}
			diff := gain[a]*cmplx.Conj(gain[b]) - cell.sum
			sumResid += cell.weight * (real(diff)*real(diff) + imag(diff)*imag(diff))
			sumWeight += cell.weight
		}
	}
	if sumResid > 0 && sumWeight > 0 {
		return sumResid / sumWeight
	}
	return 0
}

// updateGain performs one getgain pass: for each station a, holding every
// other station's gain fixed, solves the least-squares update
//
//	gain_a = SUM_b(weight_ab * gain_b * ratio_ab) / SUM_b(weight_ab * |gain_b|^2)
//
// blends it with the previous estimate by loopGain, then applies the
// antenna-fixed/phase-only/amp-only reductions before writing gain in
// place.
func updateGain(sub *obs.Subarray, m ratioMatrix, gain []complex128, opts Options) {
	nstat := len(gain)
	next := make([]complex128, nstat)

	for a := 0; a < nstat; a++ {
		var top complex128
		var bot float64
		for b := 0; b < nstat; b++ {
			cell := m[a][b]
			if cell.weight <= 0 {
				continue
			}
			top += complex(cell.weight, 0) * gain[b] * cell.sum
			bot += cell.weight * (real(gain[b])*real(gain[b]) + imag(gain[b])*imag(gain[b]))
		}

		if bot > 0 {
			estimate := top / complex(bot, 0)
			next[a] = complex(1-opts.LoopGain, 0)*gain[a] + complex(opts.LoopGain, 0)*estimate
		}
		if bot <= 0 || next[a] == 0 {
			next[a] = gain[a]
		}
	}

	for a := 0; a < nstat; a++ {
		switch {
		case stationFixed(sub, a):
			next[a] = 1
		case !opts.DoPhase:
			next[a] = complex(cmplx.Abs(next[a]), 0)
		case !opts.DoAmp:
			if amp := cmplx.Abs(next[a]); amp > 0 {
				next[a] /= complex(amp, 0)
			} else {
				next[a] = 1
			}
		}
		gain[a] = next[a]
	}
}

// stationFixed reports whether station i's gain is pinned to 1+0i.
func stationFixed(sub *obs.Subarray, i int) bool {
	return sub.Stations[i].AntFix
}

// solveGain iterates updateGain until successive-iteration residual
// improvement falls below opts.ConvergenceTol times the first iteration's
// residual, or opts.MaxIterations is reached. gain must start at a valid
// initial estimate (1+0i per station is standard) and is updated in
// place.
func solveGain(sub *obs.Subarray, m ratioMatrix, gain []complex128, opts Options) (finalResidual float64, iterations int) {
	var initial float64
	prev := residual(m, gain)

	for iterations = 1; iterations <= opts.MaxIterations; iterations++ {
		updateGain(sub, m, gain, opts)
		cur := residual(m, gain)
		if iterations == 1 {
			initial = cur
		}
		if initial > 0 && math.Abs(cur-prev) <= opts.ConvergenceTol*initial {
			prev = cur
			break
		}
		prev = cur
	}
	return prev, iterations
}
