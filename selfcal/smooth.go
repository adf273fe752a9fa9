package selfcal

import (
	"math"

	"github.com/sabourke/difmap-sub005/obs"
)

const (
	erfTableSize = 16
	erfNSigma    = 2.5
	sqrt2        = 1.4142135623730951
)

var (
	erfTable    [erfTableSize + 1]float64
	erfConv     float64
	erfTableSet bool
)

// initErfTable fills erfTable with a rational approximation to erf(z)/2,
// sampled out to erfNSigma standard deviations, per get_area.
func initErfTable() {
	if erfTableSet {
		return
	}
	erfTableSet = true
	erfConv = ((erfTableSize - 1) * sqrt2) / erfNSigma
	for i := 0; i <= erfTableSize; i++ {
		z := float64(i) / erfConv
		t := 1.0 / (1.0 + 0.47047*z)
		erfTable[i] = 0.5 - (0.1740121*t*(1+-0.2754975*t*(1+-7.7999287*t)))*math.Exp(-z*z)
	}
}

// halfErf interpolates the tabulated erf(z)/2 at the signed argument z.
func halfErf(z float64) float64 {
	initErfTable()
	sign := 1.0
	if z < 0 {
		sign = -1.0
	}
	pos := erfConv * sign * z
	idx := int(pos)
	if idx >= erfTableSize {
		return sign * erfTable[erfTableSize]
	}
	frac := pos - float64(idx)
	return sign * (erfTable[idx] + frac*(erfTable[idx+1]-erfTable[idx]))
}

// gaussianArea returns the integral, between xa and xb, of a gaussian of
// standard deviation sigma centered on zero, normalized to area 1 over
// (-inf,inf), per get_area.
func gaussianArea(xa, xb, sigma float64) float64 {
	za := xa / (sqrt2 * sigma)
	zb := xb / (sqrt2 * sigma)
	return math.Abs(halfErf(za) - halfErf(zb))
}

// solutionSigma converts a solution interval (seconds) to the standard
// deviation of the Gaussian smoothing kernel applied across bin
// boundaries, matching difmap's fixed ratio between the two.
func solutionSigma(solutionInterval float64) float64 {
	return solutionInterval * 0.37478125
}

// interpolateCorrections blends the per-bin corrections in binCors onto
// integration time ut, weighting each bin by the area of a Gaussian
// kernel of the given standard deviation, centered on ut, that falls
// within that bin's time range. Amplitudes are blended as a weighted
// geometric mean, phases as a weighted circular mean; a bin contributes
// nothing if its correction is Uncalibrated.
func interpolateCorrections(bins []bin, sub *obs.Subarray, binCors [][]obs.AntennaCorrection, ut, sigma float64, nstat int) []obs.AntennaCorrection {
	out := make([]obs.AntennaCorrection, nstat)
	if sigma <= 0 || len(bins) <= 1 {
		return nearestBinCorrections(bins, sub, binCors, ut, nstat)
	}

	for a := 0; a < nstat; a++ {
		var sumW, sumLogAmp, sumSin, sumCos float64
		for bi, b := range bins {
			cor := binCors[bi][a]
			if cor.State == obs.Uncalibrated {
				continue
			}
			begut := sub.Integrations[b.first].UT
			endut := sub.Integrations[b.last].UT
			w := gaussianArea(begut-ut, endut-ut, sigma)
			if w <= 0 {
				continue
			}
			sumW += w
			sumLogAmp += w * math.Log(cor.AmpCor)
			sinv, cosv := math.Sincos(cor.PhsCor)
			sumSin += w * sinv
			sumCos += w * cosv
		}
		if sumW <= 0 {
			out[a] = obs.AntennaCorrection{AmpCor: 1, PhsCor: 0, State: obs.Uncalibrated}
			continue
		}
		out[a] = obs.AntennaCorrection{
			AmpCor: math.Exp(sumLogAmp / sumW),
			PhsCor: math.Atan2(sumSin, sumCos),
			State:  obs.Calibrated,
		}
	}
	return out
}

// nearestBinCorrections falls back to the single nearest bin's
// corrections when there is nothing meaningful to smooth across (one bin
// total, or a non-positive kernel width).
func nearestBinCorrections(bins []bin, sub *obs.Subarray, binCors [][]obs.AntennaCorrection, ut float64, nstat int) []obs.AntennaCorrection {
	best, bestDist := 0, math.Inf(1)
	for i, b := range bins {
		d := math.Abs(b.center - ut)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	out := make([]obs.AntennaCorrection, nstat)
	copy(out, binCors[best])
	return out
}
